// Package sharestate encodes a bounded participant list into the
// compact `p` URL query token and back. The token is a `;`-separated
// list of `name|zone|lang` triples with percent-encoded fields. Decode
// is all-or-nothing at the list level: a token that does not yield at
// least two valid participants yields none, so a corrupt shared link
// falls back to a clean default state instead of a confusing
// single-participant view.
package sharestate

import (
	"net/url"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/codeGROOVE-dev/meetTZ/pkg/registry"
)

// Participant-count bounds, enforced by clamping rather than erroring.
const (
	MinParticipants = 2
	MaxParticipants = 6
)

const (
	recordSep = ";"
	fieldSep  = "|"
)

// Codec validates zones and languages against an injected registry.
type Codec struct {
	reg *registry.Registry
}

// NewCodec returns a codec bound to the given registry.
func NewCodec(reg *registry.Registry) *Codec {
	return &Codec{reg: reg}
}

// Encode serializes participants into the token. Participants without a
// zone are dropped and the list is capped at MaxParticipants. The empty
// list encodes to "".
func (*Codec) Encode(participants []registry.Participant) string {
	var records []string
	for _, p := range participants {
		if p.Zone == "" {
			continue
		}
		if len(records) >= MaxParticipants {
			break
		}
		records = append(records, strings.Join([]string{
			url.QueryEscape(p.Name),
			url.QueryEscape(p.Zone),
			url.QueryEscape(string(p.Lang)),
		}, fieldSep))
	}
	return strings.Join(records, recordSep)
}

// Decode parses a token back into participants. Structurally invalid
// records, unknown zones and unknown languages are dropped one by one;
// if fewer than MinParticipants survive, the whole decode yields nil.
// Each decoded participant is assigned a fresh row identifier.
func (c *Codec) Decode(token string) []registry.Participant {
	if token == "" {
		return nil
	}

	var participants []registry.Participant
	for _, record := range strings.Split(token, recordSep) {
		if len(participants) >= MaxParticipants {
			break
		}
		fields := strings.Split(record, fieldSep)
		if len(fields) != 3 {
			continue
		}
		name, err1 := url.QueryUnescape(fields[0])
		zone, err2 := url.QueryUnescape(fields[1])
		lang, err3 := url.QueryUnescape(fields[2])
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		if zone == "" || !c.reg.KnownZone(zone) {
			continue
		}
		if !registry.ValidLanguage(registry.Language(lang)) {
			continue
		}
		participants = append(participants, registry.Participant{
			ID:   NewID(),
			Name: strings.TrimSpace(name),
			Zone: zone,
			Lang: registry.Language(lang),
		})
	}

	if len(participants) < MinParticipants {
		return nil
	}
	return participants
}

// DefaultParticipants is the fallback state when no token is present or
// decoding fails closed: two blank rows the user fills in.
func DefaultParticipants() []registry.Participant {
	return []registry.Participant{
		{ID: NewID(), Lang: registry.LangEN},
		{ID: NewID(), Lang: registry.LangEN},
	}
}

// NewID returns a short alphanumeric row identifier.
func NewID() string {
	id, err := gonanoid.Generate("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", 7)
	if err != nil {
		return ""
	}
	return id
}

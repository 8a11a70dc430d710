// Package registry defines the immutable city, timezone and language
// registry shared by the catalog, the share-state codec and the
// presentation layers. A Registry is built once at startup and passed
// to whatever needs it; nothing in this package holds mutable state.
package registry

import (
	"github.com/gosimple/slug"
)

// Language is one of the seven supported participant language codes.
type Language string

// Supported language codes.
const (
	LangEN Language = "EN"
	LangFR Language = "FR"
	LangES Language = "ES"
	LangDE Language = "DE"
	LangPT Language = "PT"
	LangJA Language = "JA"
	LangHI Language = "HI"
)

// Languages returns the supported language codes in display order.
func Languages() []Language {
	return []Language{LangEN, LangFR, LangES, LangDE, LangPT, LangJA, LangHI}
}

// ValidLanguage reports whether code is one of the supported languages.
func ValidLanguage(code Language) bool {
	switch code {
	case LangEN, LangFR, LangES, LangDE, LangPT, LangJA, LangHI:
		return true
	default:
		return false
	}
}

// City is a registry entry for a named city. Entries are created from
// the static table at startup and never mutated.
type City struct {
	Name    string // display name, e.g. "New York"
	Country string
	Zone    string // IANA zone identifier
	Lang    Language
}

// TimezoneOption is a (IANA identifier, display label) pair offered in
// the timezone picker.
type TimezoneOption struct {
	Zone  string
	Label string
}

// Participant is one row of a comparison: a free-text name, an IANA
// zone (may be empty, in which case the participant is excluded from
// overlap computation) and a greeting language.
type Participant struct {
	ID   string
	Name string
	Zone string
	Lang Language
}

// Registry is the immutable set of known cities, timezone options and
// valid zones. Construct with New or NewDefault and share freely;
// all methods are safe for concurrent use.
type Registry struct {
	cities   map[string]City
	cityKeys []string
	options  []TimezoneOption
	zones    map[string]struct{}
}

// New builds a Registry from a city table and a timezone picker list.
// City keys are derived from display names with slug.Make, so "São
// Paulo" is addressable as "sao-paulo". The known-zone set accepted by
// the share-state codec is the union of picker zones and city zones.
func New(cities []City, options []TimezoneOption) *Registry {
	r := &Registry{
		cities: make(map[string]City, len(cities)),
		zones:  make(map[string]struct{}, len(cities)+len(options)),
	}
	for _, c := range cities {
		key := slug.Make(c.Name)
		if _, dup := r.cities[key]; dup {
			continue
		}
		r.cities[key] = c
		r.cityKeys = append(r.cityKeys, key)
		r.zones[c.Zone] = struct{}{}
	}
	for _, opt := range options {
		r.options = append(r.options, opt)
		r.zones[opt.Zone] = struct{}{}
	}
	return r
}

// NewDefault builds the Registry from the built-in city and timezone
// tables.
func NewDefault() *Registry {
	return New(defaultCities, defaultTimezones)
}

// City looks up a city by its slug key.
func (r *Registry) City(key string) (City, bool) {
	c, ok := r.cities[key]
	return c, ok
}

// CityKeys returns the city keys in table order.
func (r *Registry) CityKeys() []string {
	keys := make([]string, len(r.cityKeys))
	copy(keys, r.cityKeys)
	return keys
}

// Timezones returns the timezone picker options.
func (r *Registry) Timezones() []TimezoneOption {
	opts := make([]TimezoneOption, len(r.options))
	copy(opts, r.options)
	return opts
}

// KnownZone reports whether zone is accepted by this registry.
func (r *Registry) KnownZone(zone string) bool {
	_, ok := r.zones[zone]
	return ok
}

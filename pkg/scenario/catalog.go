// Package scenario deterministically generates the catalog of two- and
// three-city comparison scenarios that drive the static meeting pages.
// Generation combines a curated base list, programmatic cross-region
// pairs and an explicit supplemental list; every stage runs through the
// same dedup gate, so slugs are globally unique regardless of
// generation order.
package scenario

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/codeGROOVE-dev/meetTZ/pkg/registry"
	"github.com/codeGROOVE-dev/meetTZ/pkg/sharestate"
)

// Caps on the programmatically generated portion of the catalog.
const (
	maxAdditionalPairs  = 300
	maxAdditionalTriads = 70
)

// Scenario is one generated comparison page: a stable slug, the city
// keys in narrative order, and a derived title.
type Scenario struct {
	Slug   string
	Title  string
	Cities []string
}

// Catalog is the full generated scenario set. Build it once with
// NewCatalog and share it; it is immutable afterwards.
type Catalog struct {
	reg       *registry.Registry
	codec     *sharestate.Codec
	scenarios []Scenario
	bySlug    map[string]int
}

// NewCatalog generates the catalog against the given registry.
func NewCatalog(reg *registry.Registry) *Catalog {
	c := &Catalog{
		reg:    reg,
		codec:  sharestate.NewCodec(reg),
		bySlug: make(map[string]int),
	}

	b := builder{reg: reg, seenIdentity: make(map[string]bool), seenSlug: make(map[string]bool)}

	// Curated base scenarios keep their authored city order.
	for _, pair := range basePairs {
		b.add(pair[:])
	}
	for _, triad := range baseTriads {
		b.add(triad[:])
	}

	// Programmatic pairs are stored sorted so (A,B) and (B,A) are one
	// entry by construction, not just by dedup.
	additionalPairs := 0
	addPair := func(a, c2 string) {
		if additionalPairs >= maxAdditionalPairs {
			return
		}
		keys := []string{a, c2}
		sort.Strings(keys)
		if b.add(keys) {
			additionalPairs++
		}
	}
	crossJoin := func(group1, group2 []string, maxPairs int) {
		count := 0
		for _, c1 := range group1 {
			for _, c2 := range group2 {
				if count >= maxPairs {
					return
				}
				if c1 == c2 {
					continue
				}
				before := additionalPairs
				addPair(c1, c2)
				if additionalPairs > before {
					count++
				}
			}
		}
	}

	crossJoin([]string{"london"}, topCities[1:min(16, len(topCities))], 50)
	crossJoin([]string{"new-york"}, topCities[2:min(17, len(topCities))], 50)
	crossJoin([]string{"san-francisco"}, topCities[3:min(15, len(topCities))], 40)
	crossJoin(usCities, europeCities, 100)
	crossJoin(usCities, asiaCities, 100)
	crossJoin(europeCities, asiaCities, 80)
	crossJoin([]string{"london"}, europeCities[3:], 30)
	crossJoin([]string{"new-york"}, usCities[4:], 20)
	crossJoin(usCities[:2], latamCities, 15)

	for _, pair := range supplementalPairs {
		addPair(pair[0], pair[1])
	}

	additionalTriads := 0
	for _, triad := range supplementalTriads {
		if additionalTriads >= maxAdditionalTriads {
			break
		}
		keys := []string{triad[0], triad[1], triad[2]}
		sort.Strings(keys)
		if b.add(keys) {
			additionalTriads++
		}
	}

	c.scenarios = b.scenarios
	for i, s := range c.scenarios {
		c.bySlug[s.Slug] = i
	}
	return c
}

// All returns every scenario in generation order.
func (c *Catalog) All() []Scenario {
	out := make([]Scenario, len(c.scenarios))
	copy(out, c.scenarios)
	return out
}

// Len reports the catalog size.
func (c *Catalog) Len() int { return len(c.scenarios) }

// BySlug looks a scenario up by its slug.
func (c *Catalog) BySlug(slug string) (Scenario, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Scenario{}, false
	}
	return c.scenarios[i], true
}

// Related returns up to limit scenarios sharing at least one city with
// the named scenario, in catalog order.
func (c *Catalog) Related(slug string, limit int) []Scenario {
	current, ok := c.BySlug(slug)
	if !ok {
		return nil
	}
	in := make(map[string]bool, len(current.Cities))
	for _, key := range current.Cities {
		in[key] = true
	}

	var related []Scenario
	for _, s := range c.scenarios {
		if len(related) >= limit {
			break
		}
		if s.Slug == slug {
			continue
		}
		for _, key := range s.Cities {
			if in[key] {
				related = append(related, s)
				break
			}
		}
	}
	return related
}

// PrefillQuery builds the "p=..." query string that pre-fills the
// comparison view with the named cities as participants. The token is
// escaped as a whole: its record separator is a semicolon, which
// url.ParseQuery drops from any pair that carries it raw.
func (c *Catalog) PrefillQuery(cityKeys []string) string {
	var participants []registry.Participant
	for _, key := range cityKeys {
		city, ok := c.reg.City(key)
		if !ok {
			continue
		}
		participants = append(participants, registry.Participant{
			Name: city.Name,
			Zone: city.Zone,
			Lang: city.Lang,
		})
	}
	return "p=" + url.QueryEscape(c.codec.Encode(participants))
}

// Slug joins city keys with hyphens. Keys are already slugs, so the
// result is URL-safe by construction.
func Slug(cityKeys []string) string {
	return strings.Join(cityKeys, "-")
}

// builder appends scenarios behind a dedup gate. Scenario identity is
// the sorted city-key set for every arity, so two triads with the same
// cities in a different narrative order collapse to one entry; the slug
// set is tracked as well to keep slug uniqueness independent of the
// identity rule.
type builder struct {
	reg          *registry.Registry
	seenIdentity map[string]bool
	seenSlug     map[string]bool
	scenarios    []Scenario
}

func (b *builder) add(cityKeys []string) bool {
	for _, key := range cityKeys {
		if _, ok := b.reg.City(key); !ok {
			return false
		}
	}

	sorted := make([]string, len(cityKeys))
	copy(sorted, cityKeys)
	sort.Strings(sorted)
	identity := fmt.Sprintf("%d:%s", len(sorted), Slug(sorted))

	slug := Slug(cityKeys)
	if b.seenIdentity[identity] || b.seenSlug[slug] {
		return false
	}
	b.seenIdentity[identity] = true
	b.seenSlug[slug] = true

	stored := make([]string, len(cityKeys))
	copy(stored, cityKeys)
	b.scenarios = append(b.scenarios, Scenario{
		Slug:   slug,
		Title:  b.title(stored),
		Cities: stored,
	})
	return true
}

func (b *builder) title(cityKeys []string) string {
	names := make([]string, len(cityKeys))
	for i, key := range cityKeys {
		if city, ok := b.reg.City(key); ok {
			names[i] = city.Name
		} else {
			names[i] = key
		}
	}
	switch len(names) {
	case 2:
		return fmt.Sprintf("Meeting time between %s and %s", names[0], names[1])
	case 3:
		return fmt.Sprintf("Meeting time between %s, %s, and %s", names[0], names[1], names[2])
	default:
		return "Meeting time between " + strings.Join(names, ", ")
	}
}

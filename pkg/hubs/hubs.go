// Package hubs assembles the curated listing pages ("hubs") that group
// catalog scenarios by region pairing. Selection is deterministic:
// scenarios are scored by how many major cities they involve, then
// ordered score-descending with slug as the tiebreak.
package hubs

import (
	"sort"

	"github.com/codeGROOVE-dev/meetTZ/pkg/scenario"
)

// Hub is one curated listing page.
type Hub struct {
	Slug          string
	Title         string
	Description   string
	ScenarioSlugs []string
}

// Directory is the generated hub set. Build once with NewDirectory.
type Directory struct {
	hubs   []Hub
	bySlug map[string]int
}

// Region membership sets for the hub filters.
var (
	usCities = set("new-york", "san-francisco", "chicago", "los-angeles", "denver", "phoenix")

	europeCities = set("london", "berlin", "paris", "amsterdam", "madrid", "rome",
		"zurich", "stockholm", "warsaw", "dublin", "lisbon")

	asiaCities = set("tokyo", "singapore", "sydney", "mumbai", "dubai", "hong-kong",
		"seoul", "shanghai", "bangkok", "jakarta", "manila", "kuala-lumpur",
		"melbourne", "auckland")

	ukCities = set("london", "dublin")

	usWestCoastCities = set("san-francisco", "los-angeles", "vancouver")

	apacCities = set("singapore", "tokyo", "sydney", "hong-kong", "seoul", "shanghai",
		"manila", "bangkok", "jakarta", "kuala-lumpur", "melbourne", "auckland")

	majorCities = set("london", "new-york", "san-francisco", "tokyo", "singapore",
		"sydney", "dubai", "mumbai", "berlin", "paris", "toronto")
)

// NewDirectory builds the hub pages over a generated catalog.
func NewDirectory(cat *scenario.Catalog) *Directory {
	all := cat.All()

	first100 := all
	if len(first100) > 100 {
		first100 = first100[:100]
	}

	hubs := []Hub{
		{
			Slug:          "meeting-times",
			Title:         "Meeting times across time zones",
			Description:   "How to find overlap hours and schedule meetings across locations",
			ScenarioSlugs: selectBest(first100, 35),
		},
		{
			Slug:          "us-europe-meetings",
			Title:         "US–Europe meeting times",
			Description:   "Common overlap challenges between US and European teams",
			ScenarioSlugs: selectBest(filter(all, isPairAcross(usCities, europeCities)), 40),
		},
		{
			Slug:          "us-asia-meetings",
			Title:         "US–Asia meeting times",
			Description:   "Scheduling meetings across large time differences",
			ScenarioSlugs: selectBest(filter(all, isPairAcross(usCities, asiaCities)), 40),
		},
		{
			Slug:          "europe-asia-meetings",
			Title:         "Europe–Asia meeting times",
			Description:   "Coordinating meetings between Europe and Asia",
			ScenarioSlugs: selectBest(filter(all, isPairAcross(europeCities, asiaCities)), 40),
		},
		{
			Slug:          "three-timezone-meetings",
			Title:         "Meetings across three time zones",
			Description:   "Scheduling meetings involving three or more regions",
			ScenarioSlugs: selectBest(filter(all, isTriad), 40),
		},
		{
			Slug:          "uk-us-meetings",
			Title:         "UK–US meeting times",
			Description:   "Scheduling meetings between UK and US teams across time zones.",
			ScenarioSlugs: selectBest(filter(all, isPairAcross(ukCities, usCities)), 40),
		},
		{
			Slug:          "uk-asia-meetings",
			Title:         "UK–Asia meeting times",
			Description:   "Finding overlap hours between UK and Asian teams.",
			ScenarioSlugs: selectBest(filter(all, isPairAcross(ukCities, asiaCities)), 40),
		},
		{
			Slug:          "us-west-coast-meetings",
			Title:         "US West Coast meeting times",
			Description:   "Meeting times and overlap for teams on the US West Coast and global counterparts.",
			ScenarioSlugs: selectBest(filter(all, isWestCoastPair), 40),
		},
		{
			Slug:          "apac-meetings",
			Title:         "APAC meeting times",
			Description:   "Meeting coordination across major Asia-Pacific time zones.",
			ScenarioSlugs: selectBest(filter(all, isAPAC), 40),
		},
	}

	d := &Directory{hubs: hubs, bySlug: make(map[string]int, len(hubs))}
	for i, h := range hubs {
		d.bySlug[h.Slug] = i
	}
	return d
}

// All returns every hub in display order.
func (d *Directory) All() []Hub {
	out := make([]Hub, len(d.hubs))
	copy(out, d.hubs)
	return out
}

// BySlug looks a hub up by slug.
func (d *Directory) BySlug(slug string) (Hub, bool) {
	i, ok := d.bySlug[slug]
	if !ok {
		return Hub{}, false
	}
	return d.hubs[i], true
}

func set(keys ...string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}

func anyIn(cities []string, group map[string]bool) bool {
	for _, c := range cities {
		if group[c] {
			return true
		}
	}
	return false
}

func isPairAcross(group1, group2 map[string]bool) func(scenario.Scenario) bool {
	return func(s scenario.Scenario) bool {
		return len(s.Cities) == 2 && anyIn(s.Cities, group1) && anyIn(s.Cities, group2)
	}
}

func isTriad(s scenario.Scenario) bool {
	return len(s.Cities) == 3
}

func isWestCoastPair(s scenario.Scenario) bool {
	return len(s.Cities) == 2 && anyIn(s.Cities, usWestCoastCities)
}

func isAPAC(s scenario.Scenario) bool {
	count := 0
	for _, c := range s.Cities {
		if apacCities[c] {
			count++
		}
	}
	return count >= 2 && len(s.Cities) >= 2
}

func filter(all []scenario.Scenario, keep func(scenario.Scenario) bool) []scenario.Scenario {
	var out []scenario.Scenario
	for _, s := range all {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func score(s scenario.Scenario) int {
	total := 0
	for _, c := range s.Cities {
		if majorCities[c] {
			total += 10
		}
	}
	return total
}

func selectBest(scenarios []scenario.Scenario, limit int) []string {
	ranked := make([]scenario.Scenario, len(scenarios))
	copy(ranked, scenarios)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := score(ranked[i]), score(ranked[j])
		if si != sj {
			return si > sj
		}
		return ranked[i].Slug < ranked[j].Slug
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	slugs := make([]string, len(ranked))
	for i, s := range ranked {
		slugs[i] = s.Slug
	}
	return slugs
}

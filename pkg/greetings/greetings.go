// Package greetings maps a wall-clock hour to a time-of-day band and a
// localized greeting in one of the seven supported languages.
package greetings

import (
	"time"

	"github.com/codeGROOVE-dev/meetTZ/pkg/registry"
	"github.com/codeGROOVE-dev/meetTZ/pkg/tzconvert"
)

// TimeOfDay is one of the four greeting bands.
type TimeOfDay string

// Greeting bands.
const (
	Morning   TimeOfDay = "Morning"
	Afternoon TimeOfDay = "Afternoon"
	Evening   TimeOfDay = "Evening"
	Night     TimeOfDay = "Night"
)

var greetings = map[registry.Language]map[TimeOfDay]string{
	registry.LangEN: {Morning: "Good morning", Afternoon: "Good afternoon", Evening: "Good evening", Night: "Good night"},
	registry.LangFR: {Morning: "Bonjour", Afternoon: "Bon après-midi", Evening: "Bonsoir", Night: "Bonne nuit"},
	registry.LangES: {Morning: "Buenos días", Afternoon: "Buenas tardes", Evening: "Buenas tardes", Night: "Buenas noches"},
	registry.LangDE: {Morning: "Guten Morgen", Afternoon: "Guten Tag", Evening: "Guten Abend", Night: "Gute Nacht"},
	registry.LangPT: {Morning: "Bom dia", Afternoon: "Boa tarde", Evening: "Boa noite", Night: "Boa noite"},
	registry.LangJA: {Morning: "Ohayō gozaimasu", Afternoon: "Konnichiwa", Evening: "Konbanwa", Night: "Oyasuminasai"},
	registry.LangHI: {Morning: "सुप्रभात", Afternoon: "नमस्ते", Evening: "शुभ संध्या", Night: "शुभ रात्रि"},
}

// LanguageOption labels a language code for the picker.
type LanguageOption struct {
	Lang  registry.Language
	Label string
}

// LanguageOptions returns the picker entries in display order.
func LanguageOptions() []LanguageOption {
	return []LanguageOption{
		{registry.LangEN, "English (EN)"},
		{registry.LangFR, "French (FR)"},
		{registry.LangES, "Spanish (ES)"},
		{registry.LangDE, "German (DE)"},
		{registry.LangPT, "Portuguese (PT)"},
		{registry.LangJA, "Japanese (JA)"},
		{registry.LangHI, "Hindi (HI)"},
	}
}

// ForHour maps an hour (0-23) to its greeting band.
func ForHour(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 22:
		return Evening
	default:
		return Night
	}
}

// Greeting is a total function over (language, band): an unknown
// language falls through to English explicitly rather than by an
// ambient conditional.
func Greeting(lang registry.Language, tod TimeOfDay) string {
	table, ok := greetings[lang]
	if !ok {
		table = greetings[registry.LangEN]
	}
	return table[tod]
}

// InZone reports the greeting band at instant t on zone's wall clock.
// Unknown zones return ok=false.
func InZone(t time.Time, zone string) (TimeOfDay, bool) {
	zt := tzconvert.FormatInZone(t, zone)
	if zt == nil {
		return "", false
	}
	return ForHour(zt.Hour), true
}

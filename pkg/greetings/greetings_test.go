package greetings

import (
	"testing"
	"time"

	"github.com/codeGROOVE-dev/meetTZ/pkg/registry"
)

func TestForHour(t *testing.T) {
	tests := []struct {
		hour int
		want TimeOfDay
	}{
		{hour: 0, want: Night},
		{hour: 4, want: Night},
		{hour: 5, want: Morning},
		{hour: 11, want: Morning},
		{hour: 12, want: Afternoon},
		{hour: 16, want: Afternoon},
		{hour: 17, want: Evening},
		{hour: 21, want: Evening},
		{hour: 22, want: Night},
		{hour: 23, want: Night},
	}
	for _, tt := range tests {
		if got := ForHour(tt.hour); got != tt.want {
			t.Errorf("ForHour(%d) = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		name string
		lang registry.Language
		tod  TimeOfDay
		want string
	}{
		{name: "English morning", lang: registry.LangEN, tod: Morning, want: "Good morning"},
		{name: "French morning", lang: registry.LangFR, tod: Morning, want: "Bonjour"},
		{name: "Japanese evening", lang: registry.LangJA, tod: Evening, want: "Konbanwa"},
		{name: "Hindi night", lang: registry.LangHI, tod: Night, want: "शुभ रात्रि"},
		{name: "unknown language falls back to English", lang: "XX", tod: Afternoon, want: "Good afternoon"},
		{name: "empty language falls back to English", lang: "", tod: Night, want: "Good night"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Greeting(tt.lang, tt.tod); got != tt.want {
				t.Errorf("Greeting(%q, %v) = %q, want %q", tt.lang, tt.tod, got, tt.want)
			}
		})
	}
}

func TestGreetingTotalOverAllLanguages(t *testing.T) {
	for _, lang := range registry.Languages() {
		for _, tod := range []TimeOfDay{Morning, Afternoon, Evening, Night} {
			if got := Greeting(lang, tod); got == "" {
				t.Errorf("Greeting(%q, %v) is empty", lang, tod)
			}
		}
	}
}

func TestInZone(t *testing.T) {
	// 12:00 UTC on a winter day: morning in New York, evening in Tokyo.
	instant := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	tod, ok := InZone(instant, "America/New_York")
	if !ok || tod != Morning {
		t.Errorf("New York = %v/%v, want Morning/true", tod, ok)
	}
	tod, ok = InZone(instant, "Asia/Tokyo")
	if !ok || tod != Evening {
		t.Errorf("Tokyo = %v/%v, want Evening/true", tod, ok)
	}
	if _, ok := InZone(instant, "Not/AZone"); ok {
		t.Error("unknown zone reported ok")
	}
}

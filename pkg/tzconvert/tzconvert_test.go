package tzconvert

import (
	"testing"
	"time"
)

func TestFormatUTCOffset(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{name: "UTC itself", minutes: 0, want: "UTC+0"},
		{name: "whole positive hour", minutes: 60, want: "UTC+1"},
		{name: "whole negative hour", minutes: -240, want: "UTC-4"},
		{name: "half hour zone (India)", minutes: 330, want: "UTC+5:30"},
		{name: "45 minute zone (Nepal)", minutes: 345, want: "UTC+5:45"},
		{name: "negative half hour (Newfoundland)", minutes: -210, want: "UTC-3:30"},
		{name: "large positive (Auckland DST)", minutes: 780, want: "UTC+13"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatUTCOffset(tt.minutes); got != tt.want {
				t.Errorf("FormatUTCOffset(%d) = %q, want %q", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestFormatInZone(t *testing.T) {
	// 2025-01-15 12:00 UTC, a date safely outside any DST transition.
	instant := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		zone        string
		wantClock   string
		wantDate    string
		wantWeekday string
		wantOffset  string
	}{
		{name: "London in winter is UTC", zone: "Europe/London", wantClock: "12:00", wantDate: "2025-01-15", wantWeekday: "Wed", wantOffset: "UTC+0"},
		{name: "New York EST", zone: "America/New_York", wantClock: "07:00", wantDate: "2025-01-15", wantWeekday: "Wed", wantOffset: "UTC-5"},
		{name: "Kolkata half-hour offset", zone: "Asia/Kolkata", wantClock: "17:30", wantDate: "2025-01-15", wantWeekday: "Wed", wantOffset: "UTC+5:30"},
		{name: "Tokyo evening", zone: "Asia/Tokyo", wantClock: "21:00", wantDate: "2025-01-15", wantWeekday: "Wed", wantOffset: "UTC+9"},
		{name: "Auckland crosses the date line", zone: "Pacific/Auckland", wantClock: "01:00", wantDate: "2025-01-16", wantWeekday: "Thu", wantOffset: "UTC+13"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zt := FormatInZone(instant, tt.zone)
			if zt == nil {
				t.Fatalf("FormatInZone(%q) = nil", tt.zone)
			}
			if zt.Clock != tt.wantClock {
				t.Errorf("Clock = %q, want %q", zt.Clock, tt.wantClock)
			}
			if zt.DateISO != tt.wantDate {
				t.Errorf("DateISO = %q, want %q", zt.DateISO, tt.wantDate)
			}
			if zt.Weekday != tt.wantWeekday {
				t.Errorf("Weekday = %q, want %q", zt.Weekday, tt.wantWeekday)
			}
			if zt.UTCOffset != tt.wantOffset {
				t.Errorf("UTCOffset = %q, want %q", zt.UTCOffset, tt.wantOffset)
			}
		})
	}
}

func TestFormatInZoneUnknownZone(t *testing.T) {
	if zt := FormatInZone(time.Now(), "Not/AZone"); zt != nil {
		t.Errorf("FormatInZone with unknown zone = %+v, want nil", zt)
	}
}

func TestUTCOffsetZero(t *testing.T) {
	for _, instant := range []time.Time{
		time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC),
	} {
		offset, ok := UTCOffsetMinutes(instant, "UTC")
		if !ok || offset != 0 {
			t.Errorf("UTCOffsetMinutes(%v, UTC) = %d/%v, want 0/true", instant, offset, ok)
		}
	}
}

func TestUTCOffsetMinutesRange(t *testing.T) {
	// Offsets must always land in (-12h, +14h], including under DST.
	zones := []string{
		"Europe/London", "America/New_York", "America/Los_Angeles",
		"Asia/Tokyo", "Asia/Kolkata", "Pacific/Auckland", "Australia/Sydney",
		"America/Sao_Paulo", "Asia/Dubai", "Europe/Berlin",
	}
	instants := []time.Time{
		time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC),
	}
	for _, zone := range zones {
		for _, instant := range instants {
			offset, ok := UTCOffsetMinutes(instant, zone)
			if !ok {
				t.Fatalf("UTCOffsetMinutes(%v, %q) not ok", instant, zone)
			}
			if offset <= -12*60 || offset > 14*60 {
				t.Errorf("offset for %q at %v = %d minutes, outside (-720, 840]", zone, instant, offset)
			}
		}
	}
}

func TestResolveLocalRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
		zone string
	}{
		{name: "London summer", date: "2025-06-15", time: "14:00", zone: "Europe/London"},
		{name: "London winter", date: "2025-01-15", time: "09:30", zone: "Europe/London"},
		{name: "New York afternoon", date: "2025-03-20", time: "16:45", zone: "America/New_York"},
		{name: "Kolkata half-hour zone", date: "2025-08-01", time: "11:15", zone: "Asia/Kolkata"},
		{name: "Auckland near date line", date: "2025-12-25", time: "08:00", zone: "Pacific/Auckland"},
		{name: "midnight", date: "2025-05-10", time: "00:00", zone: "Asia/Tokyo"},
		{name: "end of day", date: "2025-05-10", time: "23:59", zone: "America/Los_Angeles"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instant, ok := ResolveLocal(tt.date, tt.time, tt.zone)
			if !ok {
				t.Fatalf("ResolveLocal(%q, %q, %q) not ok", tt.date, tt.time, tt.zone)
			}
			zt := FormatInZone(instant, tt.zone)
			if zt.DateISO != tt.date || zt.Clock != tt.time {
				t.Errorf("round trip = %s %s, want %s %s", zt.DateISO, zt.Clock, tt.date, tt.time)
			}
		})
	}
}

func TestResolveLocalFallBackFold(t *testing.T) {
	// US DST ends 2025-11-02 at 02:00 EDT; 01:30 occurs twice.
	// The earlier occurrence is 01:30 EDT = 05:30 UTC.
	instant, ok := ResolveLocal("2025-11-02", "01:30", "America/New_York")
	if !ok {
		t.Fatal("ResolveLocal not ok")
	}
	want := time.Date(2025, 11, 2, 5, 30, 0, 0, time.UTC)
	if !instant.Equal(want) {
		t.Errorf("fold resolved to %v, want %v (the earlier occurrence)", instant.UTC(), want)
	}
}

func TestResolveLocalSpringForwardGap(t *testing.T) {
	// US DST starts 2025-03-09 at 02:00 EST; 02:30 never occurs.
	// The next valid instant is the transition itself, 07:00 UTC.
	instant, ok := ResolveLocal("2025-03-09", "02:30", "America/New_York")
	if !ok {
		t.Fatal("ResolveLocal not ok")
	}
	want := time.Date(2025, 3, 9, 7, 0, 0, 0, time.UTC)
	if !instant.Equal(want) {
		t.Errorf("gap resolved to %v, want %v (the transition moment)", instant.UTC(), want)
	}
}

func TestResolveLocalInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
		zone string
	}{
		{name: "garbage date", date: "notadate", time: "12:00", zone: "Europe/London"},
		{name: "month out of range", date: "2025-13-01", time: "12:00", zone: "Europe/London"},
		{name: "garbage time", date: "2025-06-15", time: "25:99", zone: "Europe/London"},
		{name: "missing minute", date: "2025-06-15", time: "12", zone: "Europe/London"},
		{name: "unknown zone", date: "2025-06-15", time: "12:00", zone: "Not/AZone"},
		{name: "empty everything", date: "", time: "", zone: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ResolveLocal(tt.date, tt.time, tt.zone); ok {
				t.Errorf("ResolveLocal(%q, %q, %q) ok, want not ok", tt.date, tt.time, tt.zone)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in     string
		ok     bool
		year   int
		month  int
		day    int
	}{
		{in: "2025-06-15", ok: true, year: 2025, month: 6, day: 15},
		{in: "2025-1-5", ok: true, year: 2025, month: 1, day: 5},
		{in: "2025-00-15", ok: false},
		{in: "2025-06-32", ok: false},
		{in: "2025-06", ok: false},
		{in: "abcd-ef-gh", ok: false},
		{in: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			year, month, day, ok := ParseDate(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && (year != tt.year || month != tt.month || day != tt.day) {
				t.Errorf("ParseDate(%q) = %d-%d-%d, want %d-%d-%d", tt.in, year, month, day, tt.year, tt.month, tt.day)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in     string
		ok     bool
		hour   int
		minute int
	}{
		{in: "09:30", ok: true, hour: 9, minute: 30},
		{in: "0:0", ok: true, hour: 0, minute: 0},
		{in: "23:59", ok: true, hour: 23, minute: 59},
		{in: "24:00", ok: false},
		{in: "12:60", ok: false},
		{in: "12", ok: false},
		{in: "ab:cd", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			hour, minute, ok := ParseClock(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseClock(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && (hour != tt.hour || minute != tt.minute) {
				t.Errorf("ParseClock(%q) = %d:%d, want %d:%d", tt.in, hour, minute, tt.hour, tt.minute)
			}
		})
	}
}

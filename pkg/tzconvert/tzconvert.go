// Package tzconvert converts instants between UTC and named IANA zones.
// All times in the codebase are stored in UTC; these functions project
// them into a zone's wall clock for display and invert wall-clock input
// back to a UTC instant, with an explicit policy for the DST gap and
// fold cases where a wall-clock value has zero or two UTC preimages.
package tzconvert

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// resolveIterations caps the fixed-point search in ResolveLocal. The
// zone offset is state-dependent, so the search can oscillate across a
// DST transition; the cap guarantees termination.
const resolveIterations = 10

// ZonedTime is the projection of a UTC instant into a named zone.
type ZonedTime struct {
	Clock         string // "HH:MM", 24-hour
	DateISO       string // "YYYY-MM-DD"
	Weekday       string // "Mon", "Tue", ...
	UTCOffset     string // "UTC+1", "UTC-4", "UTC+5:30"
	Year          int
	Month         int
	Day           int
	Hour          int
	Minute        int
	OffsetMinutes int
}

// UTCOffsetMinutes reports the zone's offset from UTC, in minutes, at
// instant t. The second result is false when the zone identifier is
// unknown, never an error: callers render a placeholder instead.
func UTCOffsetMinutes(t time.Time, zone string) (int, bool) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return 0, false
	}
	_, offset := t.In(loc).Zone()
	return offset / 60, true
}

// FormatUTCOffset renders an offset in minutes as "UTC+1", "UTC-4" or
// "UTC+5:30". Zero is "UTC+0".
func FormatUTCOffset(offsetMinutes int) string {
	sign := "+"
	if offsetMinutes < 0 {
		sign = "-"
		offsetMinutes = -offsetMinutes
	}
	h, m := offsetMinutes/60, offsetMinutes%60
	if m == 0 {
		return fmt.Sprintf("UTC%s%d", sign, h)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, h, m)
}

// FormatInZone projects a UTC instant into the given zone. It is a pure
// function of (t, zone) and returns nil for an unrecognized zone.
func FormatInZone(t time.Time, zone string) *ZonedTime {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil
	}
	local := t.In(loc)
	_, offset := local.Zone()
	offsetMinutes := offset / 60
	return &ZonedTime{
		Clock:         local.Format("15:04"),
		DateISO:       local.Format("2006-01-02"),
		Weekday:       local.Format("Mon"),
		UTCOffset:     FormatUTCOffset(offsetMinutes),
		Year:          local.Year(),
		Month:         int(local.Month()),
		Day:           local.Day(),
		Hour:          local.Hour(),
		Minute:        local.Minute(),
		OffsetMinutes: offsetMinutes,
	}
}

// ResolveLocal returns the UTC instant whose projection into zone reads
// as the given civil date ("YYYY-MM-DD") and time ("HH:MM"). The search
// seeds a candidate using the zone's offset at local noon on that date,
// then iterates: project the candidate, measure the wall-clock
// discrepancy, shift by it, until the projection matches exactly.
//
// Wall-clock values around a DST transition do not have a unique UTC
// preimage. The policy here is deterministic: a time that occurs twice
// (fall-back fold) resolves to the earlier occurrence, and a time that
// does not occur at all (spring-forward gap) resolves to the next valid
// instant, the transition moment itself.
//
// Malformed input or an unknown zone returns ok=false.
func ResolveLocal(dateStr, timeStr, zone string) (time.Time, bool) {
	year, month, day, ok := ParseDate(dateStr)
	if !ok {
		return time.Time{}, false
	}
	hour, minute, ok := ParseClock(timeStr)
	if !ok {
		return time.Time{}, false
	}
	if _, err := time.LoadLocation(zone); err != nil {
		return time.Time{}, false
	}

	// The requested civil value, reinterpreted as UTC, is the fixed
	// reference the discrepancy is measured against.
	want := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)

	noon := time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
	offset, _ := UTCOffsetMinutes(noon, zone)
	candidate := want.Add(-time.Duration(offset) * time.Minute)

	for i := range resolveIterations {
		zt := FormatInZone(candidate, zone)
		got := time.Date(zt.Year, time.Month(zt.Month), zt.Day, zt.Hour, zt.Minute, 0, 0, time.UTC)
		diff := want.Sub(got)
		if diff == 0 {
			return earlierOccurrence(candidate, zone, zt), true
		}

		current, _ := UTCOffsetMinutes(candidate, zone)
		candidate = candidate.Add(diff)
		if current == offset && i > 2 {
			break
		}
		offset = current
	}

	// No exact preimage: the requested wall clock falls in a
	// spring-forward gap. Land on the transition moment.
	return nextValidInstant(candidate, zone), true
}

// earlierOccurrence maps an instant inside a fall-back fold to the
// earlier of the two instants sharing its wall-clock reading. DST folds
// repeat one hour in almost every zone, half an hour in a few, so both
// deltas are probed.
func earlierOccurrence(t time.Time, zone string, zt *ZonedTime) time.Time {
	for _, delta := range []time.Duration{time.Hour, 30 * time.Minute} {
		earlier := t.Add(-delta)
		prev := FormatInZone(earlier, zone)
		if prev.Year == zt.Year && prev.Month == zt.Month && prev.Day == zt.Day &&
			prev.Hour == zt.Hour && prev.Minute == zt.Minute {
			return earlier
		}
	}
	return t
}

// nextValidInstant finds the zone's offset transition nearest to t by
// binary search. Transitions fall on whole minutes.
func nextValidInstant(t time.Time, zone string) time.Time {
	lo := t.Add(-3 * time.Hour)
	hi := t.Add(3 * time.Hour)
	offLo, _ := UTCOffsetMinutes(lo, zone)
	offHi, _ := UTCOffsetMinutes(hi, zone)
	if offLo == offHi {
		// No transition nearby; keep the best candidate found.
		return t
	}
	for hi.Sub(lo) > time.Second {
		mid := lo.Add(hi.Sub(lo) / 2)
		if off, _ := UTCOffsetMinutes(mid, zone); off == offLo {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi.Round(time.Minute)
}

// ParseDate parses "YYYY-MM-DD" with range validation.
func ParseDate(s string) (year, month, day int, ok bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

// ParseClock parses "HH:MM" with range validation.
func ParseClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

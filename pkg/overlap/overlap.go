// Package overlap scans a rolling 24-hour horizon for the time slots in
// which every participant with a zone is inside the 09:00-17:00 working
// band of their own wall clock. The scan produces both the raw eligible
// slots (fed to the window suggester) and merged percentage-of-day
// segments for the visual overlap bar.
package overlap

import (
	"time"

	"github.com/codeGROOVE-dev/meetTZ/pkg/registry"
	"github.com/codeGROOVE-dev/meetTZ/pkg/tzconvert"
)

// Working-hours band and scan resolution.
const (
	WorkStartHour = 9
	WorkEndHour   = 17

	SlotIncrement = 30 * time.Minute
)

// Slot is a half-open [Start, End) interval in UTC, End = Start + 30m.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Segment is a merged run of eligible slots expressed as percentages of
// the 24-hour horizon, 0-100, for visualization.
type Segment struct {
	Start float64
	End   float64
}

// InWorkingHours reports whether the instant t reads as 09:00-17:00
// (inclusive start, exclusive end) on the wall clock of zone. Unknown
// zones are never in working hours.
func InWorkingHours(t time.Time, zone string) bool {
	zt := tzconvert.FormatInZone(t, zone)
	if zt == nil {
		return false
	}
	minutes := zt.Hour*60 + zt.Minute
	return minutes >= WorkStartHour*60 && minutes < WorkEndHour*60
}

// Scan walks the 30-minute slots of the day containing now (midnight to
// midnight in now's location), skipping slots already past, and keeps a
// slot when every participant with a set zone is in working hours at
// both the slot's start and its midpoint. Sampling the midpoint guards
// against slots that straddle the band boundary. Participants without a
// zone are excluded; if none has a zone the result is empty.
func Scan(participants []registry.Participant, now time.Time) ([]Slot, []Segment) {
	zoned := withZones(participants)
	if len(zoned) == 0 {
		return nil, nil
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)
	slotsPerDay := int(24 * time.Hour / SlotIncrement)

	var slots []Slot
	var segments []Segment
	var open *Segment

	for i := range slotsPerDay {
		slotStart := startOfDay.Add(time.Duration(i) * SlotIncrement)
		if slotStart.Before(now) {
			continue
		}
		slotEnd := slotStart.Add(SlotIncrement)
		if slotEnd.After(endOfDay) {
			break
		}

		if allInWorkingHours(zoned, slotStart) {
			slots = append(slots, Slot{Start: slotStart, End: slotEnd})
			startPct := float64(i) * SlotIncrement.Minutes() / (24 * 60) * 100
			endPct := float64(i+1) * SlotIncrement.Minutes() / (24 * 60) * 100
			if open == nil {
				open = &Segment{Start: startPct, End: endPct}
			} else {
				open.End = endPct
			}
		} else if open != nil {
			segments = append(segments, *open)
			open = nil
		}
	}
	if open != nil {
		segments = append(segments, *open)
	}

	return slots, segments
}

// Slots returns just the eligible slots from Scan.
func Slots(participants []registry.Participant, now time.Time) []Slot {
	slots, _ := Scan(participants, now)
	return slots
}

// Segments returns just the merged visualization segments from Scan.
func Segments(participants []registry.Participant, now time.Time) []Segment {
	_, segments := Scan(participants, now)
	return segments
}

func allInWorkingHours(zoned []registry.Participant, slotStart time.Time) bool {
	mid := slotStart.Add(SlotIncrement / 2)
	for _, p := range zoned {
		if !InWorkingHours(slotStart, p.Zone) || !InWorkingHours(mid, p.Zone) {
			return false
		}
	}
	return true
}

func withZones(participants []registry.Participant) []registry.Participant {
	var zoned []registry.Participant
	for _, p := range participants {
		if p.Zone != "" {
			zoned = append(zoned, p)
		}
	}
	return zoned
}

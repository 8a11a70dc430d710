package overlap

import (
	"fmt"
	"sort"
	"time"

	"github.com/codeGROOVE-dev/meetTZ/pkg/registry"
)

// Window-suggestion tuning.
const (
	SuggestionDuration = 60 * time.Minute
	MaxSuggestions     = 3

	// endTolerance rejects candidate windows assembled from slots with
	// a hidden gap between them.
	endTolerance = time.Minute
)

// Window is a suggested 60-minute meeting time with a human label such
// as "Today 14:00–15:00", rendered in the viewer's zone.
type Window struct {
	Start time.Time
	End   time.Time
	Label string
}

// SuggestWindows reduces the eligible slots to at most three future,
// non-overlapping 60-minute windows, sorted by start time. Each window
// is a pair of adjacent slots whose combined span is exactly the target
// duration; pairs spanning a gap in the eligible set are rejected.
//
// Labels are rendered in viewerZone, falling back to the process-local
// zone when viewerZone is empty or unknown.
func SuggestWindows(participants []registry.Participant, now time.Time, viewerZone string) []Window {
	slots, _ := Scan(participants, now)
	if len(slots) == 0 {
		return nil
	}

	need := int(SuggestionDuration / SlotIncrement)
	var candidates []Slot
	for i := 0; i+need <= len(slots); i++ {
		first := slots[i]
		last := slots[i+need-1]
		expectedEnd := first.Start.Add(SuggestionDuration)
		if gap := expectedEnd.Sub(last.End); gap > -endTolerance && gap < endTolerance {
			candidates = append(candidates, Slot{Start: first.Start, End: expectedEnd})
		}
	}

	var future []Slot
	for _, c := range candidates {
		if !c.Start.Before(now) {
			future = append(future, c)
		}
	}
	if len(future) == 0 {
		return nil
	}
	sort.Slice(future, func(i, j int) bool { return future[i].Start.Before(future[j].Start) })

	loc := viewerLocation(viewerZone, now)
	todayISO := now.In(loc).Format("2006-01-02")

	var windows []Window
	for _, c := range future {
		if len(windows) >= MaxSuggestions {
			break
		}
		if overlapsAny(c, windows) {
			continue
		}
		day := "Tomorrow"
		if c.Start.In(loc).Format("2006-01-02") == todayISO {
			day = "Today"
		}
		windows = append(windows, Window{
			Start: c.Start,
			End:   c.End,
			Label: fmt.Sprintf("%s %s–%s", day, c.Start.In(loc).Format("15:04"), c.End.In(loc).Format("15:04")),
		})
	}
	return windows
}

func overlapsAny(c Slot, accepted []Window) bool {
	for _, w := range accepted {
		if c.Start.Before(w.End) && c.End.After(w.Start) {
			return true
		}
	}
	return false
}

func viewerLocation(viewerZone string, now time.Time) *time.Location {
	if viewerZone != "" {
		if loc, err := time.LoadLocation(viewerZone); err == nil {
			return loc
		}
	}
	return now.Location()
}

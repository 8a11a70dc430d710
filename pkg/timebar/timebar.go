// Package timebar renders the 24-hour working-hours comparison as a
// terminal chart: one bar per participant, one combined overlap row,
// all 48 half-hour columns wide.
package timebar

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/codeGROOVE-dev/meetTZ/pkg/overlap"
	"github.com/codeGROOVE-dev/meetTZ/pkg/registry"
	"github.com/codeGROOVE-dev/meetTZ/pkg/tzconvert"
)

const slotsPerDay = 48

// Render draws one working-hours bar per participant plus a combined
// overlap row for the day containing now. Participants without a zone
// are skipped. Columns run midnight to midnight in now's location.
func Render(participants []registry.Participant, now time.Time) string {
	var zoned []registry.Participant
	for _, p := range participants {
		if p.Zone != "" {
			zoned = append(zoned, p)
		}
	}
	if len(zoned) == 0 {
		return "No participants with a timezone set.\n"
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	labelWidth := len("Overlap")
	for _, p := range zoned {
		if w := len(rowLabel(p)); w > labelWidth {
			labelWidth = w
		}
	}

	var out strings.Builder
	out.WriteString(header(labelWidth))

	work := color.New(color.FgGreen)
	off := color.New(color.FgHiBlack)
	for _, p := range zoned {
		out.WriteString(fmt.Sprintf("%-*s ", labelWidth, rowLabel(p)))
		for i := range slotsPerDay {
			slotStart := startOfDay.Add(time.Duration(i) * overlap.SlotIncrement)
			if overlap.InWorkingHours(slotStart, p.Zone) {
				out.WriteString(work.Sprint("█"))
			} else {
				out.WriteString(off.Sprint("·"))
			}
		}
		if zt := tzconvert.FormatInZone(now, p.Zone); zt != nil {
			out.WriteString(fmt.Sprintf("  %s %s", zt.Clock, zt.UTCOffset))
		}
		out.WriteString("\n")
	}

	out.WriteString(overlapRow(zoned, startOfDay, now, labelWidth))
	return out.String()
}

func rowLabel(p registry.Participant) string {
	if p.Name != "" {
		return p.Name
	}
	return p.Zone
}

// header prints hour ticks every 3 hours above the 48 columns.
func header(labelWidth int) string {
	var out strings.Builder
	out.WriteString(strings.Repeat(" ", labelWidth+1))
	for h := 0; h < 24; h += 3 {
		out.WriteString(fmt.Sprintf("%-6s", fmt.Sprintf("%02d", h)))
	}
	out.WriteString("\n")
	return out.String()
}

func overlapRow(zoned []registry.Participant, startOfDay, now time.Time, labelWidth int) string {
	eligible := make(map[int64]bool)
	slots, _ := overlap.Scan(zoned, now)
	for _, s := range slots {
		eligible[s.Start.Unix()] = true
	}

	hit := color.New(color.FgYellow, color.Bold)
	miss := color.New(color.FgHiBlack)
	var out strings.Builder
	out.WriteString(fmt.Sprintf("%-*s ", labelWidth, "Overlap"))
	for i := range slotsPerDay {
		slotStart := startOfDay.Add(time.Duration(i) * overlap.SlotIncrement)
		if eligible[slotStart.Unix()] {
			out.WriteString(hit.Sprint("▓"))
		} else {
			out.WriteString(miss.Sprint("·"))
		}
	}
	out.WriteString("\n")
	return out.String()
}

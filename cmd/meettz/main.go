// Package main implements the meettz CLI for comparing wall-clock times
// and working-hours overlap across timezones.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/codeGROOVE-dev/meetTZ/pkg/greetings"
	"github.com/codeGROOVE-dev/meetTZ/pkg/overlap"
	"github.com/codeGROOVE-dev/meetTZ/pkg/registry"
	"github.com/codeGROOVE-dev/meetTZ/pkg/sharestate"
	"github.com/codeGROOVE-dev/meetTZ/pkg/timebar"
	"github.com/codeGROOVE-dev/meetTZ/pkg/tzconvert"
)

var (
	viewerZone = flag.String("zone", "", "Zone for suggestion labels (or set MEETTZ_ZONE; default: local)")
	atTime     = flag.String("at", "", "Evaluate at this RFC3339 instant instead of now")
	token      = flag.String("p", "", "Share token instead of positional zones")
	noColor    = flag.Bool("no-color", false, "Disable colored output")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	version    = flag.Bool("version", false, "Show version")
)

func main() {
	_ = godotenv.Load()
	flag.Parse()

	if *version {
		fmt.Println("meetTZ CLI v1.0.0")
		return
	}

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *viewerZone == "" {
		*viewerZone = os.Getenv("MEETTZ_ZONE")
	}
	if *noColor {
		color.NoColor = true
	}

	reg := registry.NewDefault()
	codec := sharestate.NewCodec(reg)

	args := flag.Args()
	if len(args) == 0 && *token == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <zone-or-city> [zone-or-city...]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	now := time.Now()
	if *atTime != "" {
		parsed, err := time.Parse(time.RFC3339, *atTime)
		if err != nil {
			logger.Error("Invalid -at instant", "value", *atTime, "error", err)
			os.Exit(1)
		}
		now = parsed
	}

	var participants []registry.Participant
	if *token != "" {
		participants = codec.Decode(*token)
		if len(participants) == 0 {
			logger.Error("Share token did not decode to a valid participant list", "token", *token)
			os.Exit(1)
		}
	} else {
		for _, arg := range args {
			p, ok := participantFor(reg, arg)
			if !ok {
				logger.Error("Unknown zone or city", "arg", arg)
				os.Exit(1)
			}
			participants = append(participants, p)
		}
	}

	for _, p := range participants {
		zt := tzconvert.FormatInZone(now, p.Zone)
		if zt == nil {
			fmt.Printf("%-20s unavailable\n", label(p))
			continue
		}
		greeting := ""
		if tod, ok := greetings.InZone(now, p.Zone); ok {
			greeting = greetings.Greeting(p.Lang, tod)
		}
		fmt.Printf("%-20s %s %s %s %-8s %s\n", label(p), zt.Clock, zt.Weekday, zt.DateISO, zt.UTCOffset, greeting)
	}

	fmt.Println()
	fmt.Print(timebar.Render(participants, now))

	windows := overlap.SuggestWindows(participants, now, *viewerZone)
	if len(windows) == 0 {
		fmt.Println("\nNo common meeting window in the next 24 hours.")
		return
	}
	fmt.Println("\nSuggested meeting times:")
	for _, w := range windows {
		fmt.Printf("  %s\n", w.Label)
	}
}

// participantFor accepts either a registry city key ("new-york") or a
// raw IANA zone identifier ("America/New_York").
func participantFor(reg *registry.Registry, arg string) (registry.Participant, bool) {
	if city, ok := reg.City(arg); ok {
		return registry.Participant{
			ID:   sharestate.NewID(),
			Name: city.Name,
			Zone: city.Zone,
			Lang: city.Lang,
		}, true
	}
	if _, err := time.LoadLocation(arg); err == nil && arg != "" {
		return registry.Participant{ID: sharestate.NewID(), Zone: arg, Lang: registry.LangEN}, true
	}
	return registry.Participant{}, false
}

func label(p registry.Participant) string {
	if p.Name != "" {
		return p.Name
	}
	return p.Zone
}

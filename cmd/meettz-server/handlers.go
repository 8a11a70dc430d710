package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"time"

	"github.com/maypok86/otter/v2"

	"github.com/codeGROOVE-dev/meetTZ/pkg/greetings"
	"github.com/codeGROOVE-dev/meetTZ/pkg/hubs"
	"github.com/codeGROOVE-dev/meetTZ/pkg/overlap"
	"github.com/codeGROOVE-dev/meetTZ/pkg/registry"
	"github.com/codeGROOVE-dev/meetTZ/pkg/scenario"
	"github.com/codeGROOVE-dev/meetTZ/pkg/sharestate"
	"github.com/codeGROOVE-dev/meetTZ/pkg/tzconvert"
)

type server struct {
	logger    *slog.Logger
	reg       *registry.Registry
	codec     *sharestate.Codec
	catalog   *scenario.Catalog
	directory *hubs.Directory
	cache     *otter.Cache[string, []byte]
	limiter   *rateLimiter
	baseURL   string
	tmpl      *template.Template
	now       func() time.Time
}

func clientIP(r *http.Request) string {
	return strings.Split(r.RemoteAddr, ":")[0]
}

func (s *server) wrap(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := fmt.Sprintf("%d-%d", time.Now().Unix(), time.Now().Nanosecond())
		w.Header().Set("X-Request-ID", requestID)

		defer func() {
			if err := recover(); err != nil {
				const size = 64 << 10
				buf := make([]byte, size)
				buf = buf[:runtime.Stack(buf, false)]

				s.logger.Error("PANIC: Request handler crashed",
					"error", err,
					"path", r.URL.Path,
					"method", r.Method,
					"request_id", requestID,
					"client_ip", clientIP(r),
					"stack", string(buf))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
		}()

		if !s.limiter.allow(clientIP(r)) {
			s.logger.Error("Rate limit exceeded",
				"request_id", requestID,
				"client_ip", clientIP(r),
				"path", r.URL.Path)
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		// The embed page must stay frameable; everything else is not.
		if !strings.HasPrefix(r.URL.Path, "/embed/") {
			w.Header().Set("X-Frame-Options", "DENY")
		}
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		if strings.HasPrefix(r.URL.Path, "/api/") {
			w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		}

		handler.ServeHTTP(w, r)
	})
}

type participantRow struct {
	registry.Participant
	Time     *tzconvert.ZonedTime
	Greeting string
}

type compareData struct {
	Title        string
	Participants []participantRow
	Segments     []overlap.Segment
	Suggestions  []overlap.Window
	Timezones    []registry.TimezoneOption
	Languages    []greetings.LanguageOption

	// Token is query-escaped as a whole, ready to append after "p=";
	// the raw form would lose its semicolon-joined records to
	// url.ParseQuery on the way back in.
	Token string
}

func (s *server) compareData(r *http.Request, title string) compareData {
	now := s.now()
	token := r.URL.Query().Get("p")
	participants := s.codec.Decode(token)
	if len(participants) == 0 {
		participants = sharestate.DefaultParticipants()
	}

	viewerZone := r.URL.Query().Get("tz")
	if !s.reg.KnownZone(viewerZone) {
		viewerZone = ""
	}

	rows := make([]participantRow, 0, len(participants))
	for _, p := range participants {
		row := participantRow{Participant: p}
		if p.Zone != "" {
			row.Time = tzconvert.FormatInZone(now, p.Zone)
			if tod, ok := greetings.InZone(now, p.Zone); ok {
				row.Greeting = greetings.Greeting(p.Lang, tod)
			}
		}
		rows = append(rows, row)
	}

	_, segments := overlap.Scan(participants, now)
	return compareData{
		Title:        title,
		Participants: rows,
		Segments:     segments,
		Suggestions:  overlap.SuggestWindows(participants, now, viewerZone),
		Timezones:    s.reg.Timezones(),
		Languages:    greetings.LanguageOptions(),
		Token:        url.QueryEscape(s.codec.Encode(participants)),
	}
}

func (s *server) handleCompare(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "compare.html", s.compareData(r, "Compare time zones"))
}

func (s *server) handleEmbed(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "embed.html", s.compareData(r, "Meeting time overlap"))
}

type convertData struct {
	Title     string
	Timezones []registry.TimezoneOption
	From      string
	To        string
	Date      string
	Time      string
	FromTime  *tzconvert.ZonedTime
	ToTime    *tzconvert.ZonedTime
}

// convertParams validates the from/to/date/time query parameters.
// Invalid or missing values leave the corresponding field unset rather
// than erroring.
func (s *server) convertParams(r *http.Request) convertData {
	q := r.URL.Query()
	data := convertData{
		Title:     "Convert a time between zones",
		Timezones: s.reg.Timezones(),
	}
	if zone := q.Get("from"); s.reg.KnownZone(zone) {
		data.From = zone
	}
	if zone := q.Get("to"); s.reg.KnownZone(zone) {
		data.To = zone
	}
	if date := q.Get("date"); date != "" {
		if _, _, _, ok := tzconvert.ParseDate(date); ok {
			data.Date = date
		}
	}
	if clock := q.Get("time"); clock != "" {
		if _, _, ok := tzconvert.ParseClock(clock); ok {
			data.Time = clock
		}
	}
	return data
}

func (s *server) handleConvert(w http.ResponseWriter, r *http.Request) {
	data := s.convertParams(r)
	if data.From != "" && data.To != "" && data.Date != "" && data.Time != "" {
		if instant, ok := tzconvert.ResolveLocal(data.Date, data.Time, data.From); ok {
			data.FromTime = tzconvert.FormatInZone(instant, data.From)
			data.ToTime = tzconvert.FormatInZone(instant, data.To)
		}
	}
	s.render(w, r, "convert.html", data)
}

type meetingsData struct {
	Title     string
	Scenarios []scenario.Scenario
}

func (s *server) handleMeetings(w http.ResponseWriter, r *http.Request) {
	s.renderCached(w, r, "meetings.html", meetingsData{
		Title:     "Meeting time scenarios",
		Scenarios: s.catalog.All(),
	})
}

type scenarioData struct {
	Title       string
	Scenario    scenario.Scenario
	Cities      []registry.City
	PrefillURL  string
	EmbedURL    string
	Suggestions []overlap.Window
	Related     []scenario.Scenario
}

func (s *server) handleScenario(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	sc, ok := s.catalog.BySlug(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}

	var cities []registry.City
	var participants []registry.Participant
	for _, key := range sc.Cities {
		city, found := s.reg.City(key)
		if !found {
			continue
		}
		cities = append(cities, city)
		participants = append(participants, registry.Participant{
			Name: city.Name, Zone: city.Zone, Lang: city.Lang,
		})
	}

	query := s.catalog.PrefillQuery(sc.Cities)
	s.render(w, r, "scenario.html", scenarioData{
		Title:       sc.Title,
		Scenario:    sc,
		Cities:      cities,
		PrefillURL:  "/?" + query,
		EmbedURL:    s.baseURL + "/embed/compare?" + query,
		Suggestions: overlap.SuggestWindows(participants, s.now(), ""),
		Related:     s.catalog.Related(slug, 8),
	})
}

type hubsData struct {
	Title string
	Hubs  []hubs.Hub
}

func (s *server) handleHubs(w http.ResponseWriter, r *http.Request) {
	s.renderCached(w, r, "hubs.html", hubsData{Title: "Meeting time guides", Hubs: s.directory.All()})
}

type hubData struct {
	Title     string
	Hub       hubs.Hub
	Scenarios []scenario.Scenario
}

func (s *server) handleHub(w http.ResponseWriter, r *http.Request) {
	hub, ok := s.directory.BySlug(r.PathValue("slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	scenarios := make([]scenario.Scenario, 0, len(hub.ScenarioSlugs))
	for _, slug := range hub.ScenarioSlugs {
		if sc, found := s.catalog.BySlug(slug); found {
			scenarios = append(scenarios, sc)
		}
	}
	s.renderCached(w, r, "hub.html", hubData{Title: hub.Title, Hub: hub, Scenarios: scenarios})
}

func (s *server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	key := r.URL.RequestURI()
	if data, ok := s.cache.GetIfPresent(key); ok {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write(data)
		return
	}

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	buf.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	writeURL := func(path string) {
		fmt.Fprintf(&buf, "  <url><loc>%s%s</loc></url>\n", s.baseURL, path)
	}
	writeURL("/")
	writeURL("/convert")
	writeURL("/meetings")
	writeURL("/hubs")
	for _, sc := range s.catalog.All() {
		writeURL("/meetings/" + sc.Slug)
	}
	for _, hub := range s.directory.All() {
		writeURL("/hubs/" + hub.Slug)
	}
	buf.WriteString("</urlset>\n")

	s.cache.Set(key, buf.Bytes())
	w.Header().Set("Content-Type", "application/xml")
	_, _ = w.Write(buf.Bytes())
}

func (s *server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("Template execution failed",
			"request_id", w.Header().Get("X-Request-ID"),
			"template", name,
			"path", r.URL.Path,
			"error", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// renderCached renders through the page cache. Only catalog-driven
// pages go through here; the comparison views depend on "now" and the
// share token, so they render fresh every time.
func (s *server) renderCached(w http.ResponseWriter, r *http.Request, name string, data any) {
	key := r.URL.RequestURI()
	if cached, ok := s.cache.GetIfPresent(key); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("X-Cache", "hit")
		_, _ = w.Write(cached)
		return
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("Template execution failed", "template", name, "error", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	s.cache.Set(key, buf.Bytes())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Cache", "miss")
	_, _ = w.Write(buf.Bytes())
}

type apiParticipant struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
	Language string `json:"language"`
}

type apiSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type apiWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

type overlapResponse struct {
	Slots       []apiSlot         `json:"slots"`
	Segments    []overlap.Segment `json:"segments"`
	Suggestions []apiWindow       `json:"suggestions"`
}

func (s *server) handleOverlapAPI(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := w.Header().Get("X-Request-ID")

	var req struct {
		Participants []apiParticipant `json:"participants"`
		ViewerZone   string           `json:"viewer_zone,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Error("Invalid request body",
			"request_id", requestID,
			"client_ip", clientIP(r),
			"error", err)
		s.writeJSONError(w, http.StatusBadRequest, "Invalid request", "INVALID_BODY")
		return
	}

	var participants []registry.Participant
	for _, p := range req.Participants {
		if p.Timezone != "" && !s.reg.KnownZone(p.Timezone) {
			s.writeJSONError(w, http.StatusBadRequest, "Unknown timezone: "+p.Timezone, "UNKNOWN_ZONE")
			return
		}
		participants = append(participants, registry.Participant{
			ID:   sharestate.NewID(),
			Name: p.Name,
			Zone: p.Timezone,
			Lang: registry.Language(p.Language),
		})
	}

	now := s.now()
	slots, segments := overlap.Scan(participants, now)
	windows := overlap.SuggestWindows(participants, now, req.ViewerZone)

	resp := overlapResponse{Segments: segments}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, apiSlot{Start: slot.Start, End: slot.End})
	}
	for _, win := range windows {
		resp.Suggestions = append(resp.Suggestions, apiWindow{Start: win.Start, End: win.End, Label: win.Label})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("Failed to encode response", "request_id", requestID, "error", err)
		return
	}
	s.logger.Info("Overlap request completed",
		"request_id", requestID,
		"participants", len(participants),
		"slots", len(resp.Slots),
		"duration_ms", time.Since(start).Milliseconds())
}

func (s *server) handleConvertAPI(w http.ResponseWriter, r *http.Request) {
	data := s.convertParams(r)
	if data.From == "" || data.To == "" || data.Date == "" || data.Time == "" {
		s.writeJSONError(w, http.StatusBadRequest, "from, to, date and time are required", "MISSING_PARAMS")
		return
	}

	instant, ok := tzconvert.ResolveLocal(data.Date, data.Time, data.From)
	if !ok {
		s.writeJSONError(w, http.StatusBadRequest, "Could not resolve the requested local time", "UNRESOLVED")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"instant": instant.UTC(),
		"from":    tzconvert.FormatInZone(instant, data.From),
		"to":      tzconvert.FormatInZone(instant, data.To),
	})
}

func (s *server) writeJSONError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": code})
}

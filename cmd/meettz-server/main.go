// Package main implements the meetTZ web server: timezone comparison,
// conversion, and the static meeting-time catalog pages.
package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/maypok86/otter/v2"

	"github.com/codeGROOVE-dev/meetTZ/pkg/hubs"
	"github.com/codeGROOVE-dev/meetTZ/pkg/registry"
	"github.com/codeGROOVE-dev/meetTZ/pkg/scenario"
	"github.com/codeGROOVE-dev/meetTZ/pkg/sharestate"
)

//go:embed templates/*.html
var templateFiles embed.FS

var (
	port    = flag.String("port", "8080", "Port for web server (or set PORT)")
	baseURL = flag.String("base-url", "", "Canonical base URL for sitemap links (or set BASE_URL)")
	verbose = flag.Bool("verbose", false, "Enable verbose logging")
	version = flag.Bool("version", false, "Show version")
)

type rateLimiter struct {
	requests map[string][]time.Time
	mu       sync.Mutex
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{requests: make(map[string][]time.Time)}
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-time.Minute)

	var valid []time.Time
	for _, t := range rl.requests[ip] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	// Rate limit: 60 requests per minute per IP
	if len(valid) >= 60 {
		rl.requests[ip] = valid
		return false
	}

	rl.requests[ip] = append(valid, now)
	return true
}

func main() {
	_ = godotenv.Load()
	flag.Parse()

	if *version {
		fmt.Println("meetTZ Server v1.0.0")
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if env := os.Getenv("PORT"); *port == "8080" && env != "" {
		*port = env
	}
	if *baseURL == "" {
		*baseURL = os.Getenv("BASE_URL")
	}
	if *baseURL == "" {
		*baseURL = "http://localhost:" + *port
	}
	*baseURL = strings.TrimSuffix(*baseURL, "/")

	reg := registry.NewDefault()
	catalog := scenario.NewCatalog(reg)
	directory := hubs.NewDirectory(catalog)

	logger.Info("Server configuration",
		"port", *port,
		"base_url", *baseURL,
		"verbose", *verbose,
		"scenarios", catalog.Len(),
		"hubs", len(directory.All()))

	// Static catalog pages change only on deploy, but suggestion panes
	// embedded on them track "now", so a short TTL keeps them honest.
	pageCache := otter.Must(&otter.Options[string, []byte]{
		MaximumSize:      10_000,
		ExpiryCalculator: otter.ExpiryWriting[string, []byte](time.Minute),
	})

	srv := &server{
		logger:    logger,
		reg:       reg,
		codec:     sharestate.NewCodec(reg),
		catalog:   catalog,
		directory: directory,
		cache:     pageCache,
		limiter:   newRateLimiter(),
		baseURL:   *baseURL,
		tmpl: template.Must(template.New("").Funcs(template.FuncMap{
			"sub": func(a, b float64) float64 { return a - b },
		}).ParseFS(templateFiles, "templates/*.html")),
		now:       time.Now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", srv.handleCompare)
	mux.HandleFunc("GET /convert", srv.handleConvert)
	mux.HandleFunc("GET /meetings", srv.handleMeetings)
	mux.HandleFunc("GET /meetings/{slug}", srv.handleScenario)
	mux.HandleFunc("GET /hubs", srv.handleHubs)
	mux.HandleFunc("GET /hubs/{slug}", srv.handleHub)
	mux.HandleFunc("GET /embed/compare", srv.handleEmbed)
	mux.HandleFunc("GET /sitemap.xml", srv.handleSitemap)
	mux.HandleFunc("POST /api/v1/overlap", srv.handleOverlapAPI)
	mux.HandleFunc("GET /api/v1/convert", srv.handleConvertAPI)

	httpSrv := &http.Server{
		Addr:              ":" + *port,
		Handler:           srv.wrap(mux),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", *port)
		if err := httpSrv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ghostpen/ghostpen/internal/audit"
	"github.com/ghostpen/ghostpen/internal/grammar"
	"github.com/ghostpen/ghostpen/internal/handler"
	"github.com/ghostpen/ghostpen/internal/middleware"
	"github.com/ghostpen/ghostpen/internal/rewrite"
)

// Deps holds everything the mux needs.
type Deps struct {
	Grammar  *grammar.Adapter
	Pipeline *rewrite.Pipeline
	Feedback *audit.FeedbackStore
	Launcher func() (string, error)
	Audit    rewrite.Recorder
	APIKey   string
}

// SetupMux wires handlers with the full middleware chain.
func SetupMux(d Deps) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/check", handler.Check(d.Grammar))
	mux.HandleFunc("/api/rewrite", handler.Rewrite(d.Pipeline))
	mux.HandleFunc("/api/status", handler.Status(d.Pipeline))
	mux.HandleFunc("/api/launch", handler.Launch(d.Launcher, d.Audit))
	mux.HandleFunc("/api/feedback", handler.Feedback(d.Feedback, d.Audit))
	mux.Handle("/metrics", promhttp.Handler())

	rl := middleware.NewRateLimiter(30, time.Minute)
	return middleware.Chain(mux, rl, d.APIKey)
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ghostpen_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// CheckDuration tracks grammar check latency.
	CheckDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ghostpen_check_duration_seconds",
		Help:    "Time spent on a grammar check.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	})

	// RewriteDuration tracks end-to-end rewrite latency per provider.
	RewriteDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ghostpen_rewrite_duration_seconds",
		Help:    "Time spent on a rewrite, detection included.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120, 180},
	}, []string{"provider"})

	// InputChars tracks the distribution of rewrite input lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ghostpen_input_chars",
		Help:    "Number of characters in rewrite input text.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})

	// ProviderAvailable tracks whether each provider answered its last probe.
	ProviderAvailable = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ghostpen_provider_available",
		Help: "Whether a local LLM provider is available (1) or not (0).",
	}, []string{"provider"})
)

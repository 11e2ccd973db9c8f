package rewrite

import (
	"context"
	"time"

	"github.com/ghostpen/ghostpen/internal/metrics"
	"github.com/ghostpen/ghostpen/internal/prompt"
	"github.com/ghostpen/ghostpen/internal/provider"
)

// Result is the parsed outcome of one rewrite. Explanation is empty when the
// model omitted the delimiter.
type Result struct {
	Rewritten   string `json:"rewritten"`
	Explanation string `json:"explanation"`
}

// Recorder receives fire-and-forget audit events.
type Recorder interface {
	Record(event string, details map[string]any)
}

// Pipeline composes provider detection, prompt construction, one completion
// request, and response parsing behind a single operation.
type Pipeline struct {
	Detector *provider.Detector
	Client   *provider.Client
	Audit    Recorder
}

func NewPipeline(audit Recorder) *Pipeline {
	return &Pipeline{
		Detector: provider.NewDetector(),
		Client:   provider.NewClient(),
		Audit:    audit,
	}
}

// Rewrite runs the full pipeline. A detection failure is terminal: there is
// no retry across providers once one has been chosen, and no partial result
// on error. Exactly one audit event per call either way.
func (p *Pipeline) Rewrite(ctx context.Context, text, mode string) (Result, error) {
	start := time.Now()
	metrics.InputChars.Observe(float64(len(text)))

	res, providerName, err := p.rewrite(ctx, text, mode)

	details := map[string]any{
		"mode":        mode,
		"text_length": len(text),
		"success":     err == nil,
		"provider":    providerName,
	}
	if err != nil {
		// Match the audit shape of a success: the provider slot carries the
		// failure text.
		details["provider"] = err.Error()
	} else {
		metrics.RewriteDuration.WithLabelValues(providerName).Observe(time.Since(start).Seconds())
	}
	if p.Audit != nil {
		p.Audit.Record("rewrite", details)
	}

	return res, err
}

func (p *Pipeline) rewrite(ctx context.Context, text, mode string) (Result, string, error) {
	desc, err := p.Detector.Detect(ctx)
	if err != nil {
		return Result{}, "", err
	}

	userPrompt := prompt.Build(text, prompt.ParseMode(mode))
	raw, err := p.Client.Complete(ctx, desc, prompt.System, userPrompt)
	if err != nil {
		return Result{}, desc.Name, err
	}

	rewritten, explanation := prompt.ParseCompletion(raw)
	return Result{Rewritten: rewritten, Explanation: explanation}, desc.Name, nil
}

// Status re-runs detection and reports a snapshot. Unavailability is not an
// error here; only rewrite treats it as terminal.
func (p *Pipeline) Status(ctx context.Context) provider.Status {
	status := p.Detector.CheckStatus(ctx)

	for _, c := range p.Detector.Candidates {
		v := 0.0
		if status.Available && c.Name == status.Provider {
			v = 1
		}
		metrics.ProviderAvailable.WithLabelValues(c.Name).Set(v)
	}

	if p.Audit != nil {
		p.Audit.Record("llm_status_check", map[string]any{
			"available": status.Available,
			"provider":  status.Provider,
		})
	}
	return status
}

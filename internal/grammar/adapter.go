package grammar

import (
	"log/slog"
	"time"

	"github.com/ghostpen/ghostpen/internal/metrics"
)

// Issue is one finding flattened into a replacement-ready form: every
// suggestion is a literal string that can replace text[Start:End] as-is.
type Issue struct {
	Start       int      `json:"start"`
	End         int      `json:"end"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
	Severity    string   `json:"severity"`
}

// CheckResult is produced atomically per Check call.
type CheckResult struct {
	Issues []Issue   `json:"issues"`
	Stats  TextStats `json:"stats"`
}

// Recorder receives fire-and-forget audit events.
type Recorder interface {
	Record(event string, details map[string]any)
}

// Adapter composes the external linter with span extraction and text stats.
type Adapter struct {
	linter Linter
	audit  Recorder
}

func NewAdapter(linter Linter, audit Recorder) *Adapter {
	if linter == nil {
		linter = NopLinter{}
	}
	return &Adapter{linter: linter, audit: audit}
}

// Check lints the text and returns normalized issues plus stats. It never
// fails: a linter error degrades to zero issues.
func (a *Adapter) Check(text string) CheckResult {
	start := time.Now()

	findings, err := a.linter.Lint(text)
	if err != nil {
		slog.Warn("grammar: linter failed", "error", err)
		findings = nil
	}

	issues := make([]Issue, 0, len(findings))
	for _, f := range findings {
		original := SpanText(text, f.Start, f.End)
		issues = append(issues, Issue{
			Start:       f.Start,
			End:         f.End,
			Message:     f.Message,
			Suggestions: NormalizeSuggestions(original, f.Suggestions),
			Severity:    f.Kind,
		})
	}

	stats := TextStats{
		WordCount:     CountWords(text),
		SentenceCount: CountSentences(text),
		IssueCount:    len(issues),
	}

	elapsed := time.Since(start)
	metrics.CheckDuration.Observe(elapsed.Seconds())

	if a.audit != nil {
		a.audit.Record("grammar_check", map[string]any{
			"word_count":  stats.WordCount,
			"issue_count": stats.IssueCount,
			"duration_ms": elapsed.Milliseconds(),
		})
	}

	return CheckResult{Issues: issues, Stats: stats}
}

package grammar

// SuggestionKind discriminates how a linter suggestion is meant to be applied
// to the flagged span.
type SuggestionKind int

const (
	// ReplaceWith swaps the flagged span for the suggestion text.
	ReplaceWith SuggestionKind = iota
	// InsertAfter keeps the flagged span and appends the suggestion text.
	InsertAfter
	// Remove deletes the flagged span.
	Remove
)

// Suggestion is one fix proposed by the linter. Text is empty for Remove.
type Suggestion struct {
	Kind SuggestionKind
	Text string
}

// Finding is a single linter result over a half-open byte span [Start, End).
type Finding struct {
	Start       int
	End         int
	Message     string
	Kind        string
	Suggestions []Suggestion
}

// Linter is the external grammar engine. The ruleset is not ours; we only
// consume spans, messages, and suggestion variants.
type Linter interface {
	Lint(text string) ([]Finding, error)
}

// NopLinter finds nothing. Wired when no lint command is configured so that
// check still returns stats.
type NopLinter struct{}

func (NopLinter) Lint(string) ([]Finding, error) { return nil, nil }

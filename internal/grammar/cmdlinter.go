package grammar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// CommandLinter runs an external lint command, feeding it the text on stdin
// and decoding one JSON array of findings from stdout. This is how the
// grammar engine stays an external collaborator: any binary that speaks the
// shape below can serve.
type CommandLinter struct {
	// Command is the full command line, e.g. "harper-cli lint --format json".
	Command string
}

type cmdSuggestion struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type cmdFinding struct {
	Span struct {
		Start int `json:"start"`
		End   int `json:"end"`
	} `json:"span"`
	Message     string          `json:"message"`
	LintKind    string          `json:"lint_kind"`
	Suggestions []cmdSuggestion `json:"suggestions"`
}

func (c *CommandLinter) Lint(text string) ([]Finding, error) {
	parts := strings.Fields(c.Command)
	if len(parts) == 0 {
		return nil, nil
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = strings.NewReader(text)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("grammar: run %s: %w", parts[0], err)
	}

	var raw []cmdFinding
	if err := json.Unmarshal(stdout.Bytes(), &raw); err != nil {
		return nil, fmt.Errorf("grammar: decode findings: %w", err)
	}

	findings := make([]Finding, 0, len(raw))
	for _, f := range raw {
		suggestions := make([]Suggestion, 0, len(f.Suggestions))
		for _, s := range f.Suggestions {
			suggestions = append(suggestions, Suggestion{Kind: suggestionKind(s.Kind), Text: s.Text})
		}
		findings = append(findings, Finding{
			Start:       f.Span.Start,
			End:         f.Span.End,
			Message:     f.Message,
			Kind:        f.LintKind,
			Suggestions: suggestions,
		})
	}
	return findings, nil
}

func suggestionKind(kind string) SuggestionKind {
	switch kind {
	case "insert_after":
		return InsertAfter
	case "remove":
		return Remove
	default:
		return ReplaceWith
	}
}

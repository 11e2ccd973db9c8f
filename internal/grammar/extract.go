package grammar

// SpanText returns the literal substring covered by [start, end).
// Linter offsets are byte offsets into text the linter saw, which may no
// longer match the text we hold; any out-of-range span yields "" instead of
// a panic.
func SpanText(text string, start, end int) string {
	if start < 0 || end < start || end > len(text) {
		return ""
	}
	return text[start:end]
}

// NormalizeSuggestions flattens suggestion variants into literal replacement
// strings for the flagged span, one output per input, order preserved:
//
//   - ReplaceWith yields the replacement text unchanged.
//   - InsertAfter yields the original span plus the inserted text, because an
//     insertion only makes sense combined with what it follows.
//   - Remove yields "": deleting the span is a valid replacement choice.
func NormalizeSuggestions(original string, suggestions []Suggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		switch s.Kind {
		case InsertAfter:
			out = append(out, original+s.Text)
		case Remove:
			out = append(out, "")
		default:
			out = append(out, s.Text)
		}
	}
	return out
}

package grammar

import "strings"

// TextStats summarizes the checked text.
type TextStats struct {
	WordCount     int `json:"word_count"`
	SentenceCount int `json:"sentence_count"`
	IssueCount    int `json:"issue_count"`
}

// CountWords counts whitespace-delimited tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountSentences counts terminal punctuation, floored at 1 so consumers can
// divide by it.
func CountSentences(text string) int {
	n := 0
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			n++
		}
	}
	if n < 1 {
		return 1
	}
	return n
}

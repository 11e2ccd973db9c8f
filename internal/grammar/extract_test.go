package grammar

import (
	"reflect"
	"testing"
)

func TestSpanText(t *testing.T) {
	text := "hello world"

	tests := []struct {
		name       string
		start, end int
		want       string
	}{
		{"full span", 0, 11, "hello world"},
		{"inner span", 6, 11, "world"},
		{"empty span", 3, 3, ""},
		{"end past length", 6, 50, ""},
		{"start past length", 20, 25, ""},
		{"inverted span", 5, 2, ""},
		{"negative start", -1, 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpanText(text, tt.start, tt.end); got != tt.want {
				t.Errorf("SpanText(%d, %d): got %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestNormalizeSuggestions(t *testing.T) {
	tests := []struct {
		name        string
		original    string
		suggestions []Suggestion
		want        []string
	}{
		{
			"replace with",
			"teh",
			[]Suggestion{{Kind: ReplaceWith, Text: "the"}},
			[]string{"the"},
		},
		{
			"insert after keeps original",
			"However",
			[]Suggestion{{Kind: InsertAfter, Text: ","}},
			[]string{"However,"},
		},
		{
			"remove yields empty string entry",
			"very",
			[]Suggestion{{Kind: Remove}},
			[]string{""},
		},
		{
			"order preserved, one output per variant",
			"word",
			[]Suggestion{
				{Kind: ReplaceWith, Text: "term"},
				{Kind: Remove},
				{Kind: InsertAfter, Text: "s"},
			},
			[]string{"term", "", "words"},
		},
		{
			"no suggestions",
			"word",
			nil,
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSuggestions(tt.original, tt.suggestions)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

package prompt

import "testing"

func TestParseCompletion(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		rewritten   string
		explanation string
	}{
		{
			"canonical token",
			"Rewritten sentence.\nEXPLANATION: because clarity",
			"Rewritten sentence.",
			"because clarity",
		},
		{
			"markdown explanation",
			"Fixed text.\n\n**Explanation:** clearer wording",
			"Fixed text.",
			"clearer wording",
		},
		{
			"why variant",
			"Better text. **Why:** shorter is stronger",
			"Better text.",
			"shorter is stronger",
		},
		{
			"horizontal rule",
			"New text.\n---\nI tightened the phrasing.",
			"New text.",
			"I tightened the phrasing.",
		},
		{
			"changes heading",
			"Revised copy.\n\n**Changes made:** cut filler",
			"Revised copy.",
			"made:** cut filler",
		},
		{
			"no delimiter",
			"Just some text with no marker",
			"Just some text with no marker",
			"",
		},
		{
			"rewrite label stripped",
			"REWRITE: The fixed sentence.\nEXPLANATION: tense agreement",
			"The fixed sentence.",
			"tense agreement",
		},
		{
			"markdown rewrite label stripped",
			"**Rewrite:** The fixed sentence.",
			"The fixed sentence.",
			"",
		},
		{
			"empty input",
			"",
			"",
			"",
		},
		{
			"delimiter at start",
			"EXPLANATION: only an explanation",
			"",
			"only an explanation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rewritten, explanation := ParseCompletion(tt.raw)
			if rewritten != tt.rewritten {
				t.Errorf("rewritten: got %q, want %q", rewritten, tt.rewritten)
			}
			if explanation != tt.explanation {
				t.Errorf("explanation: got %q, want %q", explanation, tt.explanation)
			}
		})
	}
}

func TestParseCompletionEarliestDelimiterWins(t *testing.T) {
	// "---" appears before "EXPLANATION:"; the split point is decided by
	// position in the text, not by delimiter list order.
	raw := "Short text.\n---\nEXPLANATION: both markers present"

	rewritten, explanation := ParseCompletion(raw)
	if rewritten != "Short text." {
		t.Errorf("rewritten: got %q, want %q", rewritten, "Short text.")
	}
	if explanation != "EXPLANATION: both markers present" {
		t.Errorf("explanation: got %q, want %q", explanation, "EXPLANATION: both markers present")
	}
}

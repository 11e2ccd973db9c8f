package prompt

import "strings"

// delimiters the model may use to separate rewrite from explanation. The
// first entry is the token our templates ask for; the rest are spellings
// models substitute anyway.
var delimiters = []string{
	"EXPLANATION:",
	"**Explanation:**",
	"**Why:**",
	"---",
	"\n\n**Changes",
}

// rewrite label prefixes some models prepend despite instructions.
var rewritePrefixes = []string{"REWRITE:", "**Rewrite:**"}

// ParseCompletion splits a raw completion into rewritten text and
// explanation. The split point is the delimiter occurring earliest in the
// text; list order only breaks ties at the same offset. With no delimiter
// anywhere, the whole completion is the rewrite and the explanation is
// empty; a malformed completion is still usable output.
func ParseCompletion(raw string) (rewritten, explanation string) {
	best := -1
	bestLen := 0
	for _, d := range delimiters {
		if idx := strings.Index(raw, d); idx >= 0 && (best < 0 || idx < best) {
			best = idx
			bestLen = len(d)
		}
	}

	if best < 0 {
		return stripRewriteLabel(strings.TrimSpace(raw)), ""
	}

	rewritten = stripRewriteLabel(strings.TrimSpace(raw[:best]))
	explanation = strings.TrimSpace(raw[best+bestLen:])
	return rewritten, explanation
}

func stripRewriteLabel(s string) string {
	for _, p := range rewritePrefixes {
		if rest, ok := strings.CutPrefix(s, p); ok {
			return strings.TrimSpace(rest)
		}
	}
	return s
}

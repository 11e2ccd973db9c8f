package prompt

// Mode is a rewrite intent. Unknown tags are representable (they keep their
// raw spelling and select the fallback template) rather than rejected.
type Mode struct {
	kind modeKind
	raw  string
}

type modeKind int

const (
	modeOther modeKind = iota
	modeClarity
	modeConcise
	modeFormal
	modeCasual
	modeExplain
)

var (
	Clarity = Mode{kind: modeClarity, raw: "clarity"}
	Concise = Mode{kind: modeConcise, raw: "concise"}
	Formal  = Mode{kind: modeFormal, raw: "formal"}
	Casual  = Mode{kind: modeCasual, raw: "casual"}
	Explain = Mode{kind: modeExplain, raw: "explain"}
)

// ParseMode maps an open string tag to a Mode. Anything unrecognized becomes
// an Other mode carrying the raw tag.
func ParseMode(tag string) Mode {
	switch tag {
	case "clarity":
		return Clarity
	case "concise":
		return Concise
	case "formal":
		return Formal
	case "casual":
		return Casual
	case "explain":
		return Explain
	default:
		return Mode{kind: modeOther, raw: tag}
	}
}

// String returns the tag as the caller supplied it.
func (m Mode) String() string { return m.raw }

// Known reports whether the mode has a dedicated template.
func (m Mode) Known() bool { return m.kind != modeOther }

package prompt

import "fmt"

// System is sent as the system message on every completion request.
const System = "You are a writing assistant. You help improve text while preserving the writer's voice. Always explain WHY you made changes so the writer learns. Be concise."

// Build renders the user prompt for a mode. Total over all inputs: unknown
// modes get the generic template. The EXPLANATION: token the templates ask
// for must stay in the parser's delimiter set.
func Build(text string, mode Mode) string {
	switch mode.kind {
	case modeClarity:
		return fmt.Sprintf(
			"Rewrite this text for maximum clarity. Keep the meaning identical.\n\nFirst, provide the rewritten text. Then write EXPLANATION: followed by what you changed and why the writer should care (teach them).\n\nText: %s", text)
	case modeConcise:
		return fmt.Sprintf(
			"Make this text more concise. Cut unnecessary words without losing meaning.\n\nFirst, provide the rewritten text. Then write EXPLANATION: followed by what you cut and why it was unnecessary (teach the writer to self-edit).\n\nText: %s", text)
	case modeFormal:
		return fmt.Sprintf(
			"Rewrite in a more formal, professional tone.\n\nFirst, provide the rewritten text. Then write EXPLANATION: followed by what tone shifts you made and when formal tone matters.\n\nText: %s", text)
	case modeCasual:
		return fmt.Sprintf(
			"Rewrite in a more casual, conversational tone.\n\nFirst, provide the rewritten text. Then write EXPLANATION: followed by what you changed to make it more natural.\n\nText: %s", text)
	case modeExplain:
		return fmt.Sprintf(
			"Analyze this text as a writing coach. Identify grammar issues, unclear phrasing, and style problems. For each issue, explain WHAT is wrong and WHY it matters — teach the writer, don't just flag.\n\nText: %s", text)
	default:
		return fmt.Sprintf(
			"Improve this text for clarity and correctness.\n\nFirst, provide the improved text. Then write EXPLANATION: followed by a brief teaching note.\n\nText: %s", text)
	}
}

package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Feedback is one user rating of a rewrite.
type Feedback struct {
	Rating        string `json:"rating"`
	OriginalText  string `json:"original_text"`
	RewrittenText string `json:"rewritten_text"`
	Mode          string `json:"mode"`
}

type feedbackEntry struct {
	Timestamp string `json:"timestamp"`
	Feedback
}

// FeedbackStore appends ratings to <dir>/feedback.jsonl. Unlike audit
// events this is synchronous: the user asked for it explicitly, so failures
// come back.
type FeedbackStore struct {
	Dir string
}

func (s *FeedbackStore) Save(fb Feedback) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("feedback: create %s: %w", s.Dir, err)
	}

	entry := feedbackEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Feedback:  fb,
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("feedback: marshal: %w", err)
	}

	path := filepath.Join(s.Dir, "feedback.jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("feedback: open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("feedback: write: %w", err)
	}
	return nil
}

package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func readLines(t *testing.T, path string) []Entry {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("parse line %q: %v", scanner.Text(), err)
		}
		entries = append(entries, e)
	}
	return entries
}

func TestLoggerWritesJSONLines(t *testing.T) {
	dir := t.TempDir()
	l := NewLogger(dir, 8)

	l.Record("grammar_check", map[string]any{"word_count": 3, "issue_count": 1})
	l.Record("rewrite", map[string]any{"mode": "clarity", "success": true})
	l.Close()

	entries := readLines(t, filepath.Join(dir, "logs", "audit.jsonl"))
	if len(entries) != 2 {
		t.Fatalf("entries: got %d, want 2", len(entries))
	}
	if entries[0].Event != "grammar_check" {
		t.Errorf("first event: got %q, want %q", entries[0].Event, "grammar_check")
	}
	if entries[1].Event != "rewrite" {
		t.Errorf("second event: got %q, want %q", entries[1].Event, "rewrite")
	}
	if entries[0].Timestamp == "" {
		t.Error("timestamp missing")
	}
	if _, err := time.Parse(time.RFC3339, entries[0].Timestamp); err != nil {
		t.Errorf("timestamp not RFC3339: %v", err)
	}
	if entries[1].Details["mode"] != "clarity" {
		t.Errorf("details mode: got %v, want clarity", entries[1].Details["mode"])
	}
}

func TestRecordNeverBlocks(t *testing.T) {
	// An unwritable directory means every append fails; Record must still
	// return immediately and Close must still drain.
	l := NewLogger(string([]byte{0}), 2)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			l.Record("event", nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked")
	}
	l.Close()
}

func TestCloseDrainsQueue(t *testing.T) {
	dir := t.TempDir()
	l := NewLogger(dir, 64)

	for i := 0; i < 10; i++ {
		l.Record("event", map[string]any{"i": i})
	}
	l.Close()

	entries := readLines(t, filepath.Join(dir, "logs", "audit.jsonl"))
	if len(entries) != 10 {
		t.Errorf("entries after close: got %d, want 10", len(entries))
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	l := NewLogger(t.TempDir(), 4)
	l.Close()
	l.Close()
}

package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Entry is one line in the append-only audit log.
type Entry struct {
	Timestamp string         `json:"timestamp"`
	Event     string         `json:"event"`
	Details   map[string]any `json:"details"`
}

// Logger appends audit events to <dir>/logs/audit.jsonl from a background
// worker. Record never blocks and never reports failure; a full queue drops
// the event. The worker opens, appends, and closes per entry, so there is no
// persistent handle to corrupt.
type Logger struct {
	dir string

	ch   chan Entry
	quit chan struct{}
	done chan struct{}
	once sync.Once
}

// NewLogger starts the worker. buffer bounds how many events can be pending
// before Record starts dropping.
func NewLogger(dir string, buffer int) *Logger {
	if buffer <= 0 {
		buffer = 64
	}
	l := &Logger{
		dir:  dir,
		ch:   make(chan Entry, buffer),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go l.run()
	return l
}

// Record enqueues an event. Fire-and-forget: returns immediately, drops on a
// full queue, surfaces nothing to the caller. Safe to call after Close; the
// event just goes nowhere.
func (l *Logger) Record(event string, details map[string]any) {
	e := Entry{
		Timestamp: time.Now().Format(time.RFC3339),
		Event:     event,
		Details:   details,
	}
	select {
	case l.ch <- e:
	default:
	}
}

// Close stops the worker after draining what is queued.
func (l *Logger) Close() {
	l.once.Do(func() { close(l.quit) })
	<-l.done
}

func (l *Logger) run() {
	defer close(l.done)
	for {
		select {
		case e := <-l.ch:
			l.append(e)
		case <-l.quit:
			for {
				select {
				case e := <-l.ch:
					l.append(e)
				default:
					return
				}
			}
		}
	}
}

func (l *Logger) append(e Entry) {
	logDir := filepath.Join(l.dir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return
	}

	line, err := json.Marshal(e)
	if err != nil {
		return
	}

	f, err := os.OpenFile(filepath.Join(logDir, "audit.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	f.Write(append(line, '\n'))
}

// Discard satisfies the Recorder interfaces with a no-op, for tests and for
// wiring with auditing disabled.
type Discard struct{}

func (Discard) Record(string, map[string]any) {}

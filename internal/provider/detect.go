package provider

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
)

// Both LM Studio and Ollama serve an OpenAI-compatible API on these ports.
// 127.0.0.1 rather than localhost: Windows can resolve localhost to ::1
// while the servers only bind IPv4.
const (
	lmStudioURL = "http://127.0.0.1:1234"
	ollamaURL   = "http://127.0.0.1:11434"

	// LM Studio answers with whatever model is loaded.
	lmStudioModel = "default"
	ollamaModel   = "qwen2.5:3b"

	probeTimeout = 2 * time.Second
)

// ErrNoProvider is the terminal outcome of exhausting every candidate.
var ErrNoProvider = errors.New("no LLM server found. Install Ollama or LM Studio")

// Descriptor identifies one candidate local inference server.
type Descriptor struct {
	Name         string
	BaseURL      string
	DefaultModel string
	ProbePath    string
}

// DefaultCandidates returns the probe order. LM Studio first: it is the more
// common choice for desktop users. Adding a third candidate means appending
// here, nothing else.
func DefaultCandidates() []Descriptor {
	return []Descriptor{
		{Name: "LM Studio", BaseURL: lmStudioURL, DefaultModel: lmStudioModel, ProbePath: "/v1/models"},
		{Name: "Ollama", BaseURL: ollamaURL, DefaultModel: ollamaModel, ProbePath: "/"},
	}
}

// Detector probes candidates in priority order.
type Detector struct {
	Candidates []Descriptor
	Client     *http.Client
	// Timeout bounds each individual probe. Zero means the 2s default.
	Timeout time.Duration
}

func NewDetector() *Detector {
	return &Detector{
		Candidates: DefaultCandidates(),
		Client:     &http.Client{},
		Timeout:    probeTimeout,
	}
}

// Detect returns the first reachable candidate. Probe failures of any kind
// (refused, timed out, non-2xx) just mean that candidate is absent; only
// exhausting the list is an error.
func (d *Detector) Detect(ctx context.Context) (Descriptor, error) {
	for _, c := range d.Candidates {
		if d.probe(ctx, c) {
			return c, nil
		}
	}
	return Descriptor{}, ErrNoProvider
}

func (d *Detector) probe(ctx context.Context, c Descriptor) bool {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = probeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := strings.TrimRight(c.BaseURL, "/") + c.ProbePath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := d.client().Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (d *Detector) client() *http.Client {
	if d.Client != nil {
		return d.Client
	}
	return http.DefaultClient
}

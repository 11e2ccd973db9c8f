package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ghostpen/ghostpen/internal/grammar"
)

type checkRequest struct {
	Text string `json:"text"`
}

// Check runs the grammar pipeline. It never fails for linter reasons: bad
// input shape is the only error path.
func Check(adapter *grammar.Adapter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req checkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		writeJSON(w, adapter.Check(req.Text))
	}
}

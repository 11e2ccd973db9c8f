package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ghostpen/ghostpen/internal/rewrite"
)

const maxTextLength = 10000

type rewriteRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

// Rewrite runs the LLM pipeline. Provider absence and transport failures
// come back as 502 with the pipeline's message; there are no partial
// results.
func Rewrite(pipeline *rewrite.Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req rewriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if req.Text == "" {
			writeError(w, http.StatusBadRequest, "text is required")
			return
		}
		if len(req.Text) > maxTextLength {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("text too long: %d characters (max %d)", len(req.Text), maxTextLength))
			return
		}

		result, err := pipeline.Rewrite(r.Context(), req.Text, req.Mode)
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}

		writeJSON(w, result)
	}
}

package handler

import (
	"net/http"

	"github.com/ghostpen/ghostpen/internal/rewrite"
)

// Status reports provider availability. Always 200: an unreachable provider
// is an answer, not a failure.
func Status(pipeline *rewrite.Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, pipeline.Status(r.Context()))
	}
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ghostpen/ghostpen/internal/audit"
	"github.com/ghostpen/ghostpen/internal/rewrite"
)

type feedbackResponse struct {
	Status string `json:"status"`
}

// Feedback persists a user rating of a rewrite. Synchronous on purpose: the
// user pressed a button and deserves to know it stuck.
func Feedback(store *audit.FeedbackStore, recorder rewrite.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var fb audit.Feedback
		if err := json.NewDecoder(r.Body).Decode(&fb); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if fb.Rating == "" {
			writeError(w, http.StatusBadRequest, "rating is required")
			return
		}

		if err := store.Save(fb); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		if recorder != nil {
			recorder.Record("feedback", map[string]any{
				"rating": fb.Rating,
				"mode":   fb.Mode,
			})
		}

		writeJSON(w, feedbackResponse{Status: "ok"})
	}
}

package handler

import (
	"net/http"

	"github.com/ghostpen/ghostpen/internal/rewrite"
)

type launchResponse struct {
	Message string `json:"message"`
}

// Launch starts a local LLM server, best-effort. The launcher func is
// injected so tests don't spawn processes.
func Launch(launcher func() (string, error), audit rewrite.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		msg, err := launcher()

		if audit != nil {
			details := map[string]any{"success": err == nil}
			if err != nil {
				details["path_or_error"] = err.Error()
			} else {
				details["path_or_error"] = msg
			}
			audit.Record("llm_launch", details)
		}

		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeJSON(w, launchResponse{Message: msg})
	}
}

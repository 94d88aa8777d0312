package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/activity-planner/internal/textcheck"
)

// handleStaticAnalysis runs the deterministic style checker over a
// text fragment. No LLM call is involved, so it is cheap enough to run
// on every edit.
func (s *Server) handleStaticAnalysis(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	issues := textcheck.Analyze(req.Text)
	if issues == nil {
		issues = []textcheck.Issue{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"issues": issues,
		"count":  len(issues),
	})
}

package server

import (
	"net/http"

	"github.com/jonathan/activity-planner/internal/dashboard"
	"github.com/jonathan/activity-planner/internal/scoring"
	"github.com/jonathan/activity-planner/internal/server/middleware"
)

// handleDashboard returns the aggregate readiness/radar summary
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	records, err := s.db.FetchAll(r.Context(), userID)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "failed to load activities")
		return
	}

	summary := dashboard.Summarize(records)
	summary.Deadlines = dashboard.UpcomingDeadlines(records)
	jsonResponse(w, http.StatusOK, summary)
}

// handleReadiness returns only the readiness score and feedback items
func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	records, err := s.db.FetchAll(r.Context(), userID)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "failed to load activities")
		return
	}
	jsonResponse(w, http.StatusOK, scoring.CalculateReadiness(records))
}

// handleRadar returns the competency radar with per-archetype fit
func (s *Server) handleRadar(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	records, err := s.db.FetchAll(r.Context(), userID)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "failed to load activities")
		return
	}

	radar := scoring.CalculateRadar(records)
	best, deficits := scoring.BestFit(radar)

	fits := make(map[string]int, len(scoring.Archetypes))
	for _, arch := range scoring.Archetypes {
		fits[arch.ID] = scoring.FitPercent(radar, arch)
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"radar":          radar,
		"best_archetype": best,
		"deficits":       deficits,
		"archetype_fits": fits,
		"benchmark":      scoring.CompetitiveAverage,
	})
}

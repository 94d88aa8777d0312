package server

import (
	"net/http"
	"strconv"

	"github.com/jonathan/activity-planner/internal/dashboard"
	"github.com/jonathan/activity-planner/internal/db"
	"github.com/jonathan/activity-planner/internal/scoring"
	"github.com/jonathan/activity-planner/internal/server/middleware"
)

// handleListSchools returns the medical school catalog, filterable by
// ?search= (name substring), ?degree= (MD/DO), and ?system=.
func (s *Server) handleListSchools(w http.ResponseWriter, r *http.Request) {
	filters := db.SchoolFilters{
		Search: r.URL.Query().Get("search"),
		Degree: r.URL.Query().Get("degree"),
		System: r.URL.Query().Get("system"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filters.Limit = limit
	}

	schools, err := s.db.ListSchools(r.Context(), filters)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "failed to list schools")
		return
	}
	if schools == nil {
		schools = []db.MedicalSchool{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"schools": schools,
		"count":   len(schools),
	})
}

// handleSchoolRecommendations ranks the catalog against the caller's
// competency radar
func (s *Server) handleSchoolRecommendations(w http.ResponseWriter, r *http.Request) {
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

	schools, err := s.db.ListSchools(r.Context(), db.SchoolFilters{})
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "failed to list schools")
		return
	}

	radar := scoring.CalculateRadar(records)
	matches := dashboard.RecommendSchools(schools, radar)
	if matches == nil {
		matches = []dashboard.SchoolMatch{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"radar":   radar,
		"matches": matches,
	})
}

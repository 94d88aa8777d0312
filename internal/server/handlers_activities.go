package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/activity-planner/internal/activity"
	"github.com/jonathan/activity-planner/internal/dashboard"
	"github.com/jonathan/activity-planner/internal/server/middleware"
	"github.com/jonathan/activity-planner/internal/types"
)

// handleListActivities returns the caller's activity records, optionally
// filtered by ?q= (title/organization substring) and ?status=.
func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	records, err := s.db.FetchAll(r.Context(), userID)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "failed to list activities")
		return
	}

	filters := dashboard.Filters{
		Query:  r.URL.Query().Get("q"),
		Status: types.ActivityStatus(r.URL.Query().Get("status")),
	}
	if filters.Query != "" || filters.Status != "" {
		records = dashboard.Filter(records, filters)
	}
	if records == nil {
		records = []types.Activity{}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"activities": records,
		"count":      len(records),
		"max":        activity.MaxActivities,
	})
}

// handleSaveActivity upserts one activity record. The path ID wins over
// any ID in the body. Validation failures come back as 422 with the
// full problem list.
func (s *Server) handleSaveActivity(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid activity ID")
		return
	}

	var record types.Activity
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	record.ID = id

	app, err := s.applicationType(r)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "failed to load user profile")
		return
	}

	if problems := activity.ValidateRecord(&record, app); len(problems) > 0 {
		jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
			"error":    "activity is invalid",
			"problems": problems,
		})
		return
	}

	existing, err := s.db.FetchAll(r.Context(), userID)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "failed to check record count")
		return
	}
	if !hasRecord(existing, id) && len(existing) >= activity.MaxActivities {
		errorResponse(w, http.StatusConflict, "activity limit reached")
		return
	}
	if record.MostMeaningful && !hasMostMeaningful(existing, id) &&
		!dashboard.CanMarkMostMeaningful(existing, app) {
		errorResponse(w, http.StatusConflict, "most meaningful limit reached")
		return
	}

	saved, err := s.db.Save(r.Context(), userID, record)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "failed to save activity")
		return
	}
	jsonResponse(w, http.StatusOK, saved)
}

// handleDeleteActivity removes one activity record
func (s *Server) handleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid activity ID")
		return
	}

	if err := s.db.Delete(r.Context(), userID, id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		errorResponse(w, http.StatusInternalServerError, "failed to delete activity")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// applicationType loads the caller's application system, defaulting to
// AMCAS when the profile has none recorded.
func (s *Server) applicationType(r *http.Request) (types.ApplicationType, error) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		return types.AMCAS, err
	}
	user, err := s.db.GetUserByID(r.Context(), userID)
	if err != nil {
		return types.AMCAS, err
	}
	if user == nil || user.ApplicationType == "" {
		return types.AMCAS, nil
	}
	return types.ApplicationType(user.ApplicationType), nil
}

func hasRecord(records []types.Activity, id int64) bool {
	for i := range records {
		if records[i].ID == id {
			return true
		}
	}
	return false
}

// hasMostMeaningful reports whether the record with the given ID was
// already flagged, so re-saving it does not count against the cap.
func hasMostMeaningful(records []types.Activity, id int64) bool {
	for i := range records {
		if records[i].ID == id {
			return records[i].MostMeaningful
		}
	}
	return false
}

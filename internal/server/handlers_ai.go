package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/activity-planner/internal/activity"
	"github.com/jonathan/activity-planner/internal/ingest"
	"github.com/jonathan/activity-planner/internal/llm"
	"github.com/jonathan/activity-planner/internal/server/middleware"
	"github.com/jonathan/activity-planner/internal/types"
)

// maxResumeUpload caps resume file uploads at 10 MB
const maxResumeUpload = 10 << 20

// handleCritique returns structured feedback on a draft description
func (s *Server) handleCritique(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Draft string `json:"draft"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Draft) == "" {
		errorResponse(w, http.StatusBadRequest, "draft is required")
		return
	}

	app, err := s.applicationType(r)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "failed to load user profile")
		return
	}

	analysis, err := s.ai.Critique(r.Context(), req.Draft, activity.DescriptionLimit(app))
	if err != nil {
		errorResponse(w, http.StatusBadGateway, "draft analysis failed")
		return
	}
	jsonResponse(w, http.StatusOK, analysis)
}

// handleRewrite returns alternative phrasings for a highlighted sentence
func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Sentence string             `json:"sentence"`
		Style    types.RewriteStyle `json:"style"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Sentence) == "" {
		errorResponse(w, http.StatusBadRequest, "sentence is required")
		return
	}

	suggestions, err := s.ai.Rewrite(r.Context(), req.Sentence, req.Style)
	if err != nil {
		errorResponse(w, http.StatusBadGateway, "rewrite failed")
		return
	}
	jsonResponse(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
}

// handleEssay synthesizes a most-meaningful-experience essay from the
// base description plus action and result notes
func (s *Server) handleEssay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string `json:"description"`
		Action      string `json:"action"`
		Result      string `json:"result"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		errorResponse(w, http.StatusBadRequest, "description is required")
		return
	}

	essay, err := s.ai.SynthesizeEssay(r.Context(), req.Description, req.Action, req.Result)
	if err != nil {
		errorResponse(w, http.StatusBadGateway, "essay synthesis failed")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"essay": essay})
}

// handleThemes analyzes competency coverage across the caller's
// filled activities
func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
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

	analysis, err := s.ai.AnalyzeThemes(r.Context(), records)
	if err != nil {
		if errors.Is(err, llm.ErrNoActivities) {
			errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		errorResponse(w, http.StatusBadGateway, "theme analysis failed")
		return
	}
	jsonResponse(w, http.StatusOK, analysis)
}

// handleParseResume accepts a multipart resume upload (pdf, docx, html,
// or plain text), extracts its text, and returns activity drafts.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeUpload); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "resume file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeUpload))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	text, err := ingest.ExtractText(header.Filename, data)
	if err != nil {
		var unsupported *ingest.ErrUnsupportedFormat
		if errors.As(err, &unsupported) {
			errorResponse(w, http.StatusUnsupportedMediaType, err.Error())
			return
		}
		errorResponse(w, http.StatusUnprocessableEntity, "failed to extract resume text")
		return
	}
	if text == "" {
		errorResponse(w, http.StatusUnprocessableEntity, "resume contains no extractable text")
		return
	}

	app, err := s.applicationType(r)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "failed to load user profile")
		return
	}

	drafts, err := s.ai.ParseResume(r.Context(), text, app)
	if err != nil {
		if errors.Is(err, llm.ErrNoDrafts) {
			errorResponse(w, http.StatusUnprocessableEntity, "no activities found in resume")
			return
		}
		errorResponse(w, http.StatusBadGateway, "resume parsing failed")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"activities": drafts})
}

package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/activity-planner/internal/server/middleware"
	"github.com/jonathan/activity-planner/internal/types"
)

// AuthHandler handles authentication requests.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	validator   *validator.Validate
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(userService *UserService, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		validator:   validator.New(),
	}
}

// Register handles account creation requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	jsonResponse(w, http.StatusCreated, types.LoginResponse{User: user, Token: token})
}

// Login handles login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	jsonResponse(w, http.StatusOK, types.LoginResponse{User: user, Token: token})
}

// UpdatePassword handles password change requests for the
// authenticated user.
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req types.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if err := h.userService.UpdatePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "password updated"})
}

// validationMessage reports the first field failure from validator errors.
func validationMessage(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/logger"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/user"
)

// RegisterUserRequest represents a request to register a new user
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,excludesall=\x00\n\r\t"`
	Region   string `json:"region" validate:"required,region"`
}

// UserResponse wraps a user aggregate profile
type UserResponse struct {
	User domain.UserAggregate `json:"user"`
}

// HandleRegisterUser handles POST requests to register a new user
// @Summary Register user
// @Description Create a new user with zeroed totals in their home region
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "User details"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users [post]
func HandleRegisterUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode register user request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid register user request", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  ErrMsgInvalidRequestSummary,
				"fields": FormatValidationError(err),
			})
			return
		}

		created, err := svc.Register(r.Context(), req.Username, req.Region)
		if err != nil {
			log.Error(ErrMsgRegisterUserFailed, "error", err, "region", req.Region)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusCreated, UserResponse{User: *created})
	}
}

// HandleGetUser handles GET requests for a user's aggregate profile
// @Summary Get user
// @Description A user's accumulated points, weekly points, and impact totals
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{id} [get]
func HandleGetUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID := chi.URLParam(r, "id")

		profile, err := svc.Get(r.Context(), userID)
		if err != nil {
			log.Error(ErrMsgGetUserFailed, "error", err, "user_id", userID)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, UserResponse{User: *profile})
	}
}

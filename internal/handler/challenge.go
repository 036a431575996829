package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/challenge"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/logger"
)

// CreateChallengeRequest represents a request to create a new challenge
type CreateChallengeRequest struct {
	Title          string    `json:"title" validate:"required,min=5,max=100"`
	Description    string    `json:"description" validate:"required,min=20,max=500"`
	Category       string    `json:"category" validate:"required,activity_type"`
	TargetQuantity float64   `json:"target_quantity" validate:"required,gt=0"`
	Points         int       `json:"points" validate:"required,min=1,max=1000"`
	Difficulty     string    `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Active         bool      `json:"is_active"`
	StartDate      time.Time `json:"start_date" validate:"required"`
	EndDate        time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
}

// ChallengeMembershipRequest identifies the user joining or leaving
type ChallengeMembershipRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// ChallengeResponse wraps a single challenge
type ChallengeResponse struct {
	Challenge domain.Challenge `json:"challenge"`
}

// ChallengeListResponse wraps a page of challenges
type ChallengeListResponse struct {
	Challenges []domain.Challenge `json:"challenges"`
	Count      int                `json:"count"`
}

// ParticipantListResponse wraps a challenge's participants
type ParticipantListResponse struct {
	Participants []domain.ChallengeParticipant `json:"participants"`
	Count        int                           `json:"count"`
}

// HandleListChallenges handles GET requests for the challenge catalogue
// @Summary List challenges
// @Description List challenges, newest first, with optional filters
// @Tags challenges
// @Produce json
// @Param category query string false "Activity category filter"
// @Param difficulty query string false "Difficulty filter"
// @Param active_only query bool false "Only active challenges"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} ChallengeListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /challenges [get]
func HandleListChallenges(svc challenge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		filter := domain.ChallengeFilter{
			Category:   domain.ActivityType(r.URL.Query().Get("category")),
			Difficulty: domain.ChallengeDifficulty(r.URL.Query().Get("difficulty")),
			ActiveOnly: r.URL.Query().Get("active_only") == "true",
		}

		if filter.Difficulty != "" && !filter.Difficulty.Valid() {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidDifficulty)
			return
		}

		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
				return
			}
			filter.Limit = limit
		}

		if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
			offset, err := strconv.Atoi(offsetStr)
			if err != nil || offset < 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidOffset)
				return
			}
			filter.Offset = offset
		}

		challenges, err := svc.List(r.Context(), filter)
		if err != nil {
			log.Error(ErrMsgListChallengesFailed, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		if challenges == nil {
			challenges = []domain.Challenge{}
		}

		respondJSON(w, http.StatusOK, ChallengeListResponse{
			Challenges: challenges,
			Count:      len(challenges),
		})
	}
}

// HandleListUserChallenges handles GET requests for a user's joined challenges
// @Summary List joined challenges
// @Description List the challenges a user has joined, newest first
// @Tags challenges
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} ChallengeListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /challenges/mine [get]
func HandleListUserChallenges(svc challenge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "user_id"))
			return
		}

		challenges, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			log.Error(ErrMsgListChallengesFailed, "error", err, "user_id", userID)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		if challenges == nil {
			challenges = []domain.Challenge{}
		}

		respondJSON(w, http.StatusOK, ChallengeListResponse{
			Challenges: challenges,
			Count:      len(challenges),
		})
	}
}

// HandleGetChallenge handles GET requests for a single challenge
// @Summary Get challenge
// @Description A single challenge with its participant count
// @Tags challenges
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {object} ChallengeResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /challenges/{id} [get]
func HandleGetChallenge(svc challenge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		challengeID := chi.URLParam(r, "id")

		found, err := svc.Get(r.Context(), challengeID)
		if err != nil {
			log.Error(ErrMsgGetChallengeFailed, "error", err, "challenge_id", challengeID)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, ChallengeResponse{Challenge: *found})
	}
}

// HandleCreateChallenge handles POST requests to create a new challenge
// @Summary Create challenge
// @Description Create a new community challenge (API key required)
// @Tags challenges
// @Accept json
// @Produce json
// @Param request body CreateChallengeRequest true "Challenge details"
// @Success 201 {object} ChallengeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/challenges [post]
func HandleCreateChallenge(svc challenge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateChallengeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode create challenge request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid create challenge request", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  ErrMsgInvalidRequestSummary,
				"fields": FormatValidationError(err),
			})
			return
		}

		created := domain.Challenge{
			Title:          req.Title,
			Description:    req.Description,
			Category:       domain.ActivityType(req.Category),
			TargetQuantity: req.TargetQuantity,
			Points:         req.Points,
			Difficulty:     domain.ChallengeDifficulty(req.Difficulty),
			Active:         req.Active,
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
		}

		if err := svc.Create(r.Context(), &created); err != nil {
			log.Error(ErrMsgCreateChallengeFailed, "error", err, "title", req.Title)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusCreated, ChallengeResponse{Challenge: created})
	}
}

// HandleJoinChallenge handles POST requests to join a challenge
// @Summary Join challenge
// @Description Enrol a user in an active challenge
// @Tags challenges
// @Accept json
// @Produce json
// @Param id path string true "Challenge ID"
// @Param request body ChallengeMembershipRequest true "User joining"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /challenges/{id}/join [post]
func HandleJoinChallenge(svc challenge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleMembershipChange(w, r, svc.Join, ErrMsgJoinChallengeFailed, MsgChallengeJoined)
	}
}

// HandleLeaveChallenge handles POST requests to leave a challenge
// @Summary Leave challenge
// @Description Remove a user from a challenge
// @Tags challenges
// @Accept json
// @Produce json
// @Param id path string true "Challenge ID"
// @Param request body ChallengeMembershipRequest true "User leaving"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /challenges/{id}/leave [post]
func HandleLeaveChallenge(svc challenge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleMembershipChange(w, r, svc.Leave, ErrMsgLeaveChallengeFailed, MsgChallengeLeft)
	}
}

// handleMembershipChange decodes the membership body and applies a join or
// leave operation to the challenge in the URL
func handleMembershipChange(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, challengeID, userID string) error, logMsg, successMsg string) {
	log := logger.FromContext(r.Context())

	challengeID := chi.URLParam(r, "id")

	var req ChallengeMembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Failed to decode challenge membership request", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn("Invalid challenge membership request", "error", err)
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  ErrMsgInvalidRequestSummary,
			"fields": FormatValidationError(err),
		})
		return
	}

	if err := op(r.Context(), challengeID, req.UserID); err != nil {
		log.Error(logMsg, "error", err, "challenge_id", challengeID, "user_id", req.UserID)
		status, message := mapServiceErrorToUserMessage(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: successMsg})
}

// HandleChallengeProgress handles GET requests for a participant's derived progress
// @Summary Challenge progress
// @Description A participant's progress, derived from their scored activities
// @Tags challenges
// @Produce json
// @Param id path string true "Challenge ID"
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.ChallengeProgress
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /challenges/{id}/progress [get]
func HandleChallengeProgress(svc challenge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		challengeID := chi.URLParam(r, "id")
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "user_id"))
			return
		}

		progress, err := svc.Progress(r.Context(), challengeID, userID)
		if err != nil {
			log.Error(ErrMsgGetProgressFailed, "error", err, "challenge_id", challengeID, "user_id", userID)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, progress)
	}
}

// HandleChallengeParticipants handles GET requests for a challenge's participants
// @Summary Challenge participants
// @Description Every participant of a challenge, completed first
// @Tags challenges
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {object} ParticipantListResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /challenges/{id}/participants [get]
func HandleChallengeParticipants(svc challenge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		challengeID := chi.URLParam(r, "id")

		participants, err := svc.Participants(r.Context(), challengeID)
		if err != nil {
			log.Error(ErrMsgGetParticipantsFailed, "error", err, "challenge_id", challengeID)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		if participants == nil {
			participants = []domain.ChallengeParticipant{}
		}

		respondJSON(w, http.StatusOK, ParticipantListResponse{
			Participants: participants,
			Count:        len(participants),
		})
	}
}

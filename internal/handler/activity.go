package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/activity"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/logger"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/user"
)

// SubmitActivityRequest represents a request to submit an environmental activity
type SubmitActivityRequest struct {
	UserID      string   `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Type        string   `json:"type" validate:"required,activity_type"`
	Title       string   `json:"title" validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"omitempty,min=10,max=500"`
	Quantity    float64  `json:"quantity" validate:"gte=0"`
	HasPhoto    bool     `json:"has_photo"`
	HasLocation bool     `json:"has_location"`
	Location    string   `json:"location" validate:"omitempty,max=200"`
	Region      string   `json:"region" validate:"required,region"`
	PhotoURLs   []string `json:"photo_urls" validate:"omitempty,max=5,dive,url"`
}

// SubmitActivityResponse wraps the stored scored activity
type SubmitActivityResponse struct {
	Activity domain.ScoredActivity `json:"activity"`
}

// HandleSubmitActivity handles POST requests to score and store an activity
// @Summary Submit activity
// @Description Score an environmental activity and fold it into the aggregates
// @Tags activities
// @Accept json
// @Produce json
// @Param request body SubmitActivityRequest true "Activity details"
// @Success 201 {object} SubmitActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /activities [post]
func HandleSubmitActivity(svc activity.Service, users user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SubmitActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode submit activity request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid submit activity request", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  ErrMsgInvalidRequestSummary,
				"fields": FormatValidationError(err),
			})
			return
		}

		sub := domain.ActivitySubmission{
			Type:        domain.ActivityType(req.Type),
			Title:       req.Title,
			Description: req.Description,
			Quantity:    req.Quantity,
			HasPhoto:    req.HasPhoto,
			HasLocation: req.HasLocation,
			Location:    req.Location,
			Region:      req.Region,
			PhotoURLs:   req.PhotoURLs,
		}

		scored, err := svc.Submit(r.Context(), req.UserID, sub)
		if err != nil {
			log.Error(ErrMsgSubmitActivityFailed, "error", err, "user_id", req.UserID, "type", req.Type)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		// The submission just changed this user's totals; a cached profile
		// would serve stale points until its TTL expires.
		users.InvalidateProfile(req.UserID)

		respondJSON(w, http.StatusCreated, SubmitActivityResponse{Activity: *scored})
	}
}

// ActivityListResponse wraps a page of activities
type ActivityListResponse struct {
	Activities []domain.ScoredActivity `json:"activities"`
	Count      int                     `json:"count"`
}

// HandleListActivities handles GET requests for the activity feed
// @Summary List activities
// @Description List scored activities, newest first, with optional filters
// @Tags activities
// @Produce json
// @Param type query string false "Activity type filter"
// @Param region query string false "Region filter"
// @Param user_id query string false "User filter"
// @Param verified query bool false "Only verified activities"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} ActivityListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /activities [get]
func HandleListActivities(svc activity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		filter := domain.ActivityFilter{
			Type:   domain.ActivityType(r.URL.Query().Get("type")),
			Region: r.URL.Query().Get("region"),
			UserID: r.URL.Query().Get("user_id"),
		}

		if verified := r.URL.Query().Get("verified"); verified != "" {
			filter.VerifiedOnly = verified == "true"
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

		activities, err := svc.List(r.Context(), filter)
		if err != nil {
			log.Error(ErrMsgListActivitiesFailed, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		if activities == nil {
			activities = []domain.ScoredActivity{}
		}

		respondJSON(w, http.StatusOK, ActivityListResponse{
			Activities: activities,
			Count:      len(activities),
		})
	}
}

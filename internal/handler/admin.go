package handler

import (
	"net/http"
	"time"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/aggregation"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/logger"
)

// HandleRecompute handles POST requests to rebuild all aggregates from the
// activity log. The rebuilt weekly totals respect the current weekly window.
// @Summary Recompute aggregates
// @Description Rebuild every user and region aggregate from the full activity log
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/recompute [post]
func HandleRecompute(svc aggregation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		weekStart := aggregation.CurrentWeekStart(time.Now().UTC())
		if err := svc.RecomputeAll(r.Context(), weekStart); err != nil {
			log.Error(ErrMsgRecomputeFailed, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		log.Info("Aggregates recomputed", "week_start", weekStart)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRecomputeSuccess})
	}
}

// HandleWeeklyReset handles POST requests to zero all weekly points ahead of
// schedule. The weekly reset worker performs the same call every Monday.
// @Summary Reset weekly points
// @Description Zero every user's weekly points immediately
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/weekly-reset [post]
func HandleWeeklyReset(svc aggregation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if err := svc.ResetWeeklyPoints(r.Context()); err != nil {
			log.Error(ErrMsgWeeklyResetFailed, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		log.Info("Weekly points reset via admin endpoint")
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgWeeklyResetSuccess})
	}
}

package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/aggregation"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/logger"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/repository"
)

// LeaderboardResponse wraps ranked leaderboard entries
type LeaderboardResponse struct {
	Scope   string                   `json:"scope"`
	Region  string                   `json:"region,omitempty"`
	Metric  string                   `json:"metric"`
	Entries []domain.LeaderboardEntry `json:"entries"`
}

// HandleLeaderboard handles GET requests for ranked user leaderboards
// @Summary Community leaderboard
// @Description Ranked users by total or weekly points, global or per region
// @Tags community
// @Produce json
// @Param scope query string false "global or regional (default global)"
// @Param region query string false "Region name, required for regional scope"
// @Param metric query string false "total_points or weekly_points"
// @Param timeframe query string false "all_time or weekly (alias for metric)"
// @Param limit query int false "Maximum entries"
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /community/leaderboard [get]
func HandleLeaderboard(svc aggregation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		scope := domain.LeaderboardScope(r.URL.Query().Get("scope"))
		if scope == "" {
			scope = domain.ScopeGlobal
		}
		if !scope.Valid() {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidScope)
			return
		}

		region := r.URL.Query().Get("region")
		if scope == domain.ScopeRegional && region == "" {
			respondError(w, http.StatusBadRequest, ErrMsgRegionRequired)
			return
		}

		metricParam := r.URL.Query().Get("metric")
		metric, ok := resolveMetric(metricParam, r.URL.Query().Get("timeframe"))
		if !ok {
			if metricParam == "" {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidTimeframe)
			} else {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidMetric)
			}
			return
		}

		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed < 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
				return
			}
			limit = parsed
		}

		entries, err := svc.Leaderboard(r.Context(), scope, region, metric, limit)
		if err != nil {
			log.Error(ErrMsgGetLeaderboardFailed, "error", err, "scope", scope, "region", region)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		if entries == nil {
			entries = []domain.LeaderboardEntry{}
		}

		respondJSON(w, http.StatusOK, LeaderboardResponse{
			Scope:   string(scope),
			Region:  region,
			Metric:  string(metric),
			Entries: entries,
		})
	}
}

// resolveMetric maps the metric and timeframe query parameters onto a
// leaderboard metric. timeframe is the original mobile-API spelling and is
// only consulted when metric is absent.
func resolveMetric(metric, timeframe string) (domain.LeaderboardMetric, bool) {
	if metric != "" {
		m := domain.LeaderboardMetric(metric)
		return m, m.Valid()
	}

	switch timeframe {
	case "", "all_time":
		return domain.MetricTotalPoints, true
	case "weekly":
		return domain.MetricWeeklyPoints, true
	}
	return "", false
}

// HandleGlobalStats handles GET requests for community-wide statistics
// @Summary Global stats
// @Description Community-wide totals, activity breakdown, and top region
// @Tags community
// @Produce json
// @Success 200 {object} domain.GlobalStats
// @Failure 500 {object} ErrorResponse
// @Router /community/stats/global [get]
func HandleGlobalStats(svc aggregation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		stats, err := svc.GlobalStats(r.Context(), time.Now().UTC())
		if err != nil {
			log.Error(ErrMsgGetGlobalStatsFailed, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, stats)
	}
}

// HandleRegionStats handles GET requests for one region's statistics
// @Summary Region stats
// @Description One region's rollup with its rank by total points
// @Tags community
// @Produce json
// @Param region path string true "Region name"
// @Success 200 {object} domain.RegionStats
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /community/stats/regions/{region} [get]
func HandleRegionStats(svc aggregation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		region := chi.URLParam(r, "region")
		if decoded, err := url.PathUnescape(region); err == nil {
			region = decoded
		}

		stats, err := svc.RegionStats(r.Context(), region)
		if err != nil {
			log.Error(ErrMsgGetRegionStatsFailed, "error", err, "region", region)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, stats)
	}
}

// RegionDirectoryResponse wraps the fixed region directory
type RegionDirectoryResponse struct {
	Regions []domain.Region `json:"regions"`
	Count   int             `json:"count"`
}

// HandleRegionDirectory handles GET requests for the Ghana region directory
// @Summary Region directory
// @Description The recognized Ghana regions with capital, code, and population
// @Tags community
// @Produce json
// @Success 200 {object} RegionDirectoryResponse
// @Failure 500 {object} ErrorResponse
// @Router /community/regions [get]
func HandleRegionDirectory(regions repository.Region) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		directory, err := regions.Directory(r.Context())
		if err != nil {
			log.Error(ErrMsgGetRegionsFailed, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, RegionDirectoryResponse{
			Regions: directory,
			Count:   len(directory),
		})
	}
}

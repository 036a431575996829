package aggregation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/concurrency"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/logger"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/metrics"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/repository"
)

// Service defines the interface for aggregation operations
type Service interface {
	// ApplyScored folds one newly scored activity into the stored per-user
	// and per-region aggregates. Updates for the same user or region are
	// serialized; disjoint users and regions proceed in parallel.
	ApplyScored(ctx context.Context, userID string, activity domain.ScoredActivity) error
	// RecomputeAll rebuilds every aggregate from a full activity snapshot.
	// weekStart is the current weekly-window boundary supplied by the
	// external reset schedule.
	RecomputeAll(ctx context.Context, weekStart time.Time) error
	// Leaderboard ranks users by the chosen metric. region is only consulted
	// for the regional scope.
	Leaderboard(ctx context.Context, scope domain.LeaderboardScope, region string, metric domain.LeaderboardMetric, limit int) ([]domain.LeaderboardEntry, error)
	// GlobalStats returns the community-wide snapshot. now anchors the
	// active-user lookback window; the engine never reads the wall clock.
	GlobalStats(ctx context.Context, now time.Time) (*domain.GlobalStats, error)
	RegionStats(ctx context.Context, region string) (*domain.RegionStats, error)
	// ResetWeeklyPoints zeroes every user's weekly points. Only the weekly
	// reset worker calls this; the engine never decides when a week rolls over.
	ResetWeeklyPoints(ctx context.Context) error
}

// service implements the Service interface
type service struct {
	users      repository.User
	regions    repository.Region
	activities repository.Activity
	aggregates repository.Aggregates

	locks *concurrency.LockManager

	globalCache *expirable.LRU[string, *domain.GlobalStats]
	regionCache *expirable.LRU[string, *domain.RegionStats]
}

// NewService creates a new aggregation service
func NewService(users repository.User, regions repository.Region, activities repository.Activity, aggregates repository.Aggregates) Service {
	return &service{
		users:       users,
		regions:     regions,
		activities:  activities,
		aggregates:  aggregates,
		locks:       concurrency.NewLockManager(),
		globalCache: expirable.NewLRU[string, *domain.GlobalStats](StatsCacheSize, nil, StatsCacheTTL),
		regionCache: expirable.NewLRU[string, *domain.RegionStats](StatsCacheSize, nil, StatsCacheTTL),
	}
}

const globalCacheKey = "global"

func userLockKey(userID string) string { return "user:" + userID }
func regionLockKey(region string) string { return "region:" + region }

// ApplyScored applies one activity's deltas to the stored aggregates
func (s *service) ApplyScored(ctx context.Context, userID string, activity domain.ScoredActivity) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		return errors.New(ErrMsgUserIDRequired)
	}

	// Region validation happens at scoring time, so an unknown region here
	// means scoring and aggregation disagree about the directory. Failing
	// loudly beats silently corrupting regional totals.
	if !domain.KnownRegion(activity.Region) {
		log.Error(LogMsgInconsistentRegion, "region", activity.Region, "user_id", userID)
		return fmt.Errorf("%w: region %q", domain.ErrInconsistentAggregate, activity.Region)
	}

	userDelta, regionDelta := deltasFor(userID, activity)

	unlock := s.locks.LockKeys(userLockKey(userID), regionLockKey(activity.Region))
	defer unlock()

	if err := s.aggregates.ApplyActivityDeltas(ctx, userDelta, regionDelta); err != nil {
		log.Error(LogMsgFailedToApplyDeltas, "error", err, "user_id", userID, "region", activity.Region)
		return fmt.Errorf(ErrMsgApplyDeltasFailed, err)
	}

	s.invalidateStats()
	metrics.ActivitiesAggregated.WithLabelValues(string(activity.Type)).Inc()

	log.Debug(LogMsgDeltaApplied, "user_id", userID, "region", activity.Region, "points", activity.Points)
	return nil
}

// RecomputeAll rebuilds all aggregates from scratch
func (s *service) RecomputeAll(ctx context.Context, weekStart time.Time) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRecomputeStarted, "week_start", weekStart)

	users, err := s.users.List(ctx, "")
	if err != nil {
		return fmt.Errorf(ErrMsgListUsersFailed, err)
	}

	snapshot, err := s.activities.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgSnapshotFailed, err)
	}

	state := NewState(users, weekStart)
	for _, ua := range snapshot {
		if err := state.Apply(ua.UserID, ua.Activity); err != nil {
			log.Error(LogMsgFailedToRecompute, "error", err, "user_id", ua.UserID)
			return err
		}
	}

	if err := s.users.ReplaceAll(ctx, state.UserSlice()); err != nil {
		return fmt.Errorf(ErrMsgReplaceFailed, err)
	}
	if err := s.regions.ReplaceAll(ctx, state.RegionSlice()); err != nil {
		return fmt.Errorf(ErrMsgReplaceFailed, err)
	}

	s.invalidateStats()

	log.Info(LogMsgRecomputeCompleted, "users", len(state.Users), "activities", len(snapshot))
	return nil
}

// Leaderboard computes a ranked projection over the requested population
func (s *service) Leaderboard(ctx context.Context, scope domain.LeaderboardScope, region string, metric domain.LeaderboardMetric, limit int) ([]domain.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)

	if !metric.Valid() {
		return nil, fmt.Errorf("%s: %q", ErrMsgInvalidMetric, metric)
	}
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	filter := ""
	if scope == domain.ScopeRegional {
		if region == "" {
			return nil, errors.New(ErrMsgRegionRequired)
		}
		if !domain.KnownRegion(region) {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRegion, region)
		}
		filter = region
	}

	users, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListUsersFailed, err)
	}

	entries := rankUsers(users, metric)
	if len(entries) > limit {
		entries = entries[:limit]
	}

	metrics.LeaderboardQueries.WithLabelValues(string(scope), string(metric)).Inc()
	log.Debug(LogMsgLeaderboardComputed, "scope", scope, "metric", metric, "entries", len(entries))
	return entries, nil
}

// GlobalStats returns the community-wide statistics snapshot
func (s *service) GlobalStats(ctx context.Context, now time.Time) (*domain.GlobalStats, error) {
	if cached, ok := s.globalCache.Get(globalCacheKey); ok {
		return cached, nil
	}

	users, err := s.users.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListUsersFailed, err)
	}

	stats := &domain.GlobalStats{TotalUsers: len(users)}
	for _, u := range users {
		stats.TotalPoints += u.TotalPoints
		stats.TotalActivities += u.ActivityCount
		stats.ImpactStats.TrashCollectedKg += u.TrashCollectedKg
		stats.ImpactStats.TreesPlanted += u.TreesPlanted
		stats.ImpactStats.CO2SavedKg += u.CO2SavedKg
	}

	byType, err := s.activities.CountByType(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCountByTypeFailed, err)
	}
	stats.ActivitiesByType = byType

	since := now.AddDate(0, 0, -ActiveUserWindowDays)
	active, err := s.activities.ActiveUserCount(ctx, since)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgActiveUsersFailed, err)
	}
	stats.ActiveUsers = active

	regions, err := s.regions.ListAggregates(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListRegionsFailed, err)
	}
	stats.TopRegion = topRegion(regions)

	s.globalCache.Add(globalCacheKey, stats)
	return stats, nil
}

// RegionStats returns the statistics snapshot for one region
func (s *service) RegionStats(ctx context.Context, region string) (*domain.RegionStats, error) {
	if region == "" {
		return nil, errors.New(ErrMsgRegionRequired)
	}
	if !domain.KnownRegion(region) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRegion, region)
	}

	if cached, ok := s.regionCache.Get(region); ok {
		return cached, nil
	}

	aggregates, err := s.regions.ListAggregates(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListRegionsFailed, err)
	}

	var agg *domain.RegionAggregate
	for i := range aggregates {
		if aggregates[i].Region == region {
			agg = &aggregates[i]
			break
		}
	}
	if agg == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrRegionNotFound, region)
	}

	stats := &domain.RegionStats{
		Rank:            rankRegions(aggregates, region),
		Region:          region,
		TotalUsers:      agg.TotalUsers,
		TotalPoints:     agg.TotalPoints,
		TotalActivities: agg.TotalActivities,
		ImpactStats: domain.ImpactStats{
			TrashCollectedKg: agg.TrashCollectedKg,
			TreesPlanted:     agg.TreesPlanted,
			CO2SavedKg:       agg.CO2SavedKg,
		},
	}

	s.regionCache.Add(region, stats)
	return stats, nil
}

// ResetWeeklyPoints zeroes weekly points for every user
func (s *service) ResetWeeklyPoints(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := s.users.ResetWeeklyPoints(ctx); err != nil {
		return fmt.Errorf(ErrMsgWeeklyResetFailed, err)
	}

	s.invalidateStats()
	log.Info(LogMsgWeeklyPointsReset)
	return nil
}

// invalidateStats drops cached snapshots after any write
func (s *service) invalidateStats() {
	s.globalCache.Purge()
	s.regionCache.Purge()
}

// topRegion returns the name of the region with the most points, ties broken
// by name ascending. Empty when no region has any points.
func topRegion(aggregates []domain.RegionAggregate) string {
	best := ""
	bestPoints := 0
	for _, r := range aggregates {
		if r.TotalPoints > bestPoints || (r.TotalPoints == bestPoints && bestPoints > 0 && r.Region < best) {
			best = r.Region
			bestPoints = r.TotalPoints
		}
	}
	return best
}

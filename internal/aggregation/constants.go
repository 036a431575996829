package aggregation

import "time"

// ============================================================================
// Query Limits
// ============================================================================

// DefaultLeaderboardLimit is the number of entries returned when the caller
// does not specify a limit or passes limit <= 0
const DefaultLeaderboardLimit = 50

// MaxLeaderboardLimit caps the number of entries a single query may return
const MaxLeaderboardLimit = 200

// ============================================================================
// Stats Cache
// ============================================================================

// StatsCacheSize is the maximum number of cached stats snapshots
const StatsCacheSize = 32

// StatsCacheTTL bounds staleness of cached global/regional stats. Writes
// purge the cache, so the TTL only matters for multi-instance deployments.
const StatsCacheTTL = 30 * time.Second

// ActiveUserWindowDays is the lookback window for the active-user count
const ActiveUserWindowDays = 30

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgUserIDRequired = "user ID is required"
	ErrMsgRegionRequired = "region is required"
	ErrMsgInvalidMetric  = "invalid leaderboard metric"

	ErrMsgApplyDeltasFailed = "failed to apply aggregate deltas: %w"
	ErrMsgSnapshotFailed    = "failed to snapshot activities: %w"
	ErrMsgListUsersFailed   = "failed to list user aggregates: %w"
	ErrMsgListRegionsFailed = "failed to list region aggregates: %w"
	ErrMsgReplaceFailed     = "failed to store recomputed aggregates: %w"
	ErrMsgCountByTypeFailed = "failed to count activities by type: %w"
	ErrMsgActiveUsersFailed = "failed to count active users: %w"
	ErrMsgWeeklyResetFailed = "failed to reset weekly points: %w"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgDeltaApplied        = "Aggregate deltas applied"
	LogMsgRecomputeStarted    = "Batch recompute started"
	LogMsgRecomputeCompleted  = "Batch recompute completed"
	LogMsgLeaderboardComputed = "Leaderboard computed"
	LogMsgWeeklyPointsReset   = "Weekly points reset"

	LogMsgFailedToApplyDeltas = "Failed to apply aggregate deltas"
	LogMsgFailedToRecompute   = "Failed to recompute aggregates"
	LogMsgInconsistentRegion  = "Activity carries unknown region"
)

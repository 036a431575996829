package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidOffset     = "Invalid offset parameter"

	// Activity error messages
	ErrMsgSubmitActivityFailed = "Failed to submit activity"
	ErrMsgListActivitiesFailed = "Failed to list activities"

	// Community error messages
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
	ErrMsgGetGlobalStatsFailed = "Failed to retrieve global stats"
	ErrMsgGetRegionStatsFailed = "Failed to retrieve region stats"
	ErrMsgGetRegionsFailed     = "Failed to retrieve region directory"
	ErrMsgInvalidScope         = "Invalid scope. Valid options: global, regional"
	ErrMsgInvalidMetric        = "Invalid metric. Valid options: total_points, weekly_points"
	ErrMsgInvalidTimeframe     = "Invalid timeframe. Valid options: all_time, weekly"
	ErrMsgRegionRequired       = "region is required for regional scope"

	// User error messages
	ErrMsgRegisterUserFailed = "Failed to register user"
	ErrMsgGetUserFailed      = "Failed to retrieve user"

	// Challenge error messages
	ErrMsgListChallengesFailed  = "Failed to list challenges"
	ErrMsgGetChallengeFailed    = "Failed to retrieve challenge"
	ErrMsgCreateChallengeFailed = "Failed to create challenge"
	ErrMsgJoinChallengeFailed   = "Failed to join challenge"
	ErrMsgLeaveChallengeFailed  = "Failed to leave challenge"
	ErrMsgGetProgressFailed     = "Failed to retrieve challenge progress"
	ErrMsgGetParticipantsFailed = "Failed to retrieve challenge participants"
	ErrMsgInvalidDifficulty     = "Invalid difficulty. Valid options: easy, medium, hard"

	// Admin error messages
	ErrMsgRecomputeFailed   = "Failed to recompute aggregates"
	ErrMsgWeeklyResetFailed = "Failed to reset weekly points"
)

// Success messages for API responses
const (
	MsgRecomputeSuccess   = "Aggregates recomputed successfully"
	MsgWeeklyResetSuccess = "Weekly points reset successfully"
	MsgChallengeJoined    = "Challenge joined successfully"
	MsgChallengeLeft      = "Challenge left successfully"
)

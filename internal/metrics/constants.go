package metrics

// ============================================================================
// METRIC NAMES
// ============================================================================

const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"

	MetricNameActivitiesScored     = "activities_scored_total"
	MetricNameActivitiesAggregated = "activities_aggregated_total"
	MetricNamePointsAwarded        = "points_awarded_total"
	MetricNameLeaderboardQueries   = "leaderboard_queries_total"
	MetricNameRecomputeRuns        = "aggregate_recompute_runs_total"
	MetricNameWeeklyResets         = "weekly_resets_total"

	MetricNameChallengeJoins       = "challenge_joins_total"
	MetricNameChallengeCompletions = "challenge_completions_total"
)

// ============================================================================
// HELP TEXT
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests processed"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextActivitiesScored     = "Total number of activity submissions scored"
	HelpTextActivitiesAggregated = "Total number of scored activities folded into aggregates"
	HelpTextPointsAwarded        = "Total points awarded across all scored activities"
	HelpTextLeaderboardQueries   = "Total number of leaderboard queries served"
	HelpTextRecomputeRuns        = "Total number of full aggregate recompute runs"
	HelpTextWeeklyResets         = "Total number of weekly point resets performed"

	HelpTextChallengeJoins       = "Total number of challenge joins"
	HelpTextChallengeCompletions = "Total number of challenge completions recorded"
)

// ============================================================================
// LABELS
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"

	LabelActivityType = "type"
	LabelScope        = "scope"
	LabelMetric       = "metric"
	LabelOutcome      = "outcome"
)

// ============================================================================
// BUCKETS
// ============================================================================

// HTTPLatencyBuckets covers the expected latency range of the API, from fast
// cache hits to slow full recomputes.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

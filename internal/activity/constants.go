package activity

// ============================================================================
// VALIDATION LIMITS
// ============================================================================

const (
	TitleMinLength       = 3
	TitleMaxLength       = 100
	DescriptionMinLength = 10
	DescriptionMaxLength = 500

	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ============================================================================
// ERROR MESSAGES
// ============================================================================

const (
	ErrMsgScoringFailed     = "failed to score activity"
	ErrMsgPersistFailed     = "failed to persist activity"
	ErrMsgAggregationFailed = "failed to aggregate activity"
)

// ============================================================================
// LOG MESSAGES
// ============================================================================

const (
	LogMsgActivityScored     = "Activity scored"
	LogMsgAggregationLagging = "Activity stored but aggregation failed; recompute will reconcile"
)

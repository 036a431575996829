package challenge

// ============================================================================
// VALIDATION LIMITS
// ============================================================================

const (
	TitleMinLength       = 5
	TitleMaxLength       = 100
	DescriptionMinLength = 20
	DescriptionMaxLength = 500

	PointsMin = 1
	PointsMax = 1000

	DefaultListLimit = 20
	MaxListLimit     = 100

	// CompletionPercent is the derived progress at which a participant's
	// membership is flagged completed.
	CompletionPercent = 100.0
)

// ============================================================================
// ERROR MESSAGES
// ============================================================================

const (
	ErrMsgListFailed         = "failed to list challenges"
	ErrMsgCreateFailed       = "failed to create challenge"
	ErrMsgProgressFailed     = "failed to compute challenge progress"
	ErrMsgParticipantsFailed = "failed to list challenge participants"
)

// ============================================================================
// LOG MESSAGES
// ============================================================================

const (
	LogMsgChallengeCreated   = "Challenge created"
	LogMsgChallengeJoined    = "Challenge joined"
	LogMsgChallengeLeft      = "Challenge left"
	LogMsgChallengeCompleted = "Challenge completed"
)

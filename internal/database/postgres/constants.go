package postgres

// ============================================================================
// ERROR MESSAGES
// ============================================================================

const (
	ErrMsgFailedToInsertActivity   = "failed to insert activity"
	ErrMsgFailedToQueryActivities  = "failed to query activities"
	ErrMsgFailedToScanActivity     = "failed to scan activity row"
	ErrMsgFailedToCountActivities  = "failed to count activities"
	ErrMsgFailedToQueryUsers       = "failed to query users"
	ErrMsgFailedToScanUser         = "failed to scan user row"
	ErrMsgFailedToUpdateUser       = "failed to update user aggregate"
	ErrMsgFailedToQueryRegions     = "failed to query regions"
	ErrMsgFailedToScanRegion       = "failed to scan region row"
	ErrMsgFailedToUpdateRegion     = "failed to update region rollup"
	ErrMsgFailedToSeedRegions      = "failed to seed region directory"
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgInvalidUserID            = "invalid user id"

	ErrMsgFailedToInsertChallenge   = "failed to insert challenge"
	ErrMsgFailedToQueryChallenges   = "failed to query challenges"
	ErrMsgFailedToScanChallenge     = "failed to scan challenge row"
	ErrMsgFailedToSeedChallenges    = "failed to seed challenge catalogue"
	ErrMsgFailedToJoinChallenge     = "failed to join challenge"
	ErrMsgFailedToLeaveChallenge    = "failed to leave challenge"
	ErrMsgFailedToQueryParticipants = "failed to query challenge participants"
	ErrMsgFailedToScanParticipant   = "failed to scan participant row"
	ErrMsgFailedToMarkCompleted     = "failed to mark challenge completed"
)

// ============================================================================
// POSTGRES ERROR CODES
// ============================================================================

const pgUniqueViolation = "23505"

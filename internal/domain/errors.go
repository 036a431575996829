package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Validation errors
	ErrMsgInvalidQuantity     = "quantity must be non-negative and finite"
	ErrMsgUnknownActivityType = "unknown activity type"
	ErrMsgUnknownRegion       = "unknown region"
	ErrMsgInvalidInput        = "invalid input"

	// Aggregation errors
	ErrMsgInconsistentAggregate = "aggregate state inconsistent"

	// User errors
	ErrMsgUserNotFound = "user not found"

	// Region errors
	ErrMsgRegionNotFound = "region not found"

	// Challenge errors
	ErrMsgChallengeNotFound = "challenge not found"
	ErrMsgChallengeInactive = "challenge is not active"
	ErrMsgAlreadyJoined     = "user already joined this challenge"
	ErrMsgNotJoined         = "user has not joined this challenge"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Validation errors: malformed input, surfaced immediately, never retried
	ErrInvalidQuantity     = errors.New(ErrMsgInvalidQuantity)
	ErrUnknownActivityType = errors.New(ErrMsgUnknownActivityType)
	ErrUnknownRegion       = errors.New(ErrMsgUnknownRegion)
	ErrInvalidInput        = errors.New(ErrMsgInvalidInput)

	// Consistency errors: an aggregation invariant was violated; the call
	// fails rather than producing a partially-updated aggregate
	ErrInconsistentAggregate = errors.New(ErrMsgInconsistentAggregate)

	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Region errors
	ErrRegionNotFound = errors.New(ErrMsgRegionNotFound)

	// Challenge errors
	ErrChallengeNotFound = errors.New(ErrMsgChallengeNotFound)
	ErrChallengeInactive = errors.New(ErrMsgChallengeInactive)
	ErrAlreadyJoined     = errors.New(ErrMsgAlreadyJoined)
	ErrNotJoined         = errors.New(ErrMsgNotJoined)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)

package user

import "time"

// ============================================================================
// VALIDATION LIMITS
// ============================================================================

const (
	UsernameMinLength = 3
	UsernameMaxLength = 50
)

// ============================================================================
// CACHE SETTINGS
// ============================================================================

const (
	ProfileCacheSize = 1024
	ProfileCacheTTL  = 30 * time.Second
)

// ============================================================================
// LOG MESSAGES
// ============================================================================

const (
	LogMsgUserRegistered = "User registered"
)

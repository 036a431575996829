package worker

import "time"

// ============================================================================
// Scheduling
// ============================================================================

// DefaultRecomputeInterval is how often the reconciliation recompute job runs.
// Incremental aggregation keeps totals current between runs, so the recompute
// only needs to catch drift from failed delta applications.
const DefaultRecomputeInterval = 6 * time.Hour

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Weekly Reset Worker
// ============================================================================

const (
	LogMsgWeeklyResetStarting  = "Starting weekly points reset"
	LogMsgWeeklyResetCompleted = "Weekly points reset completed successfully"
	LogMsgWeeklyResetFailed    = "Weekly points reset failed"
	LogMsgWeeklyResetScheduled = "Next weekly reset scheduled"
)

// ============================================================================
// Log Messages - Recompute Job
// ============================================================================

const (
	LogMsgRecomputeStarting  = "Starting scheduled aggregate recompute"
	LogMsgRecomputeCompleted = "Scheduled aggregate recompute completed"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)

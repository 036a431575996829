package repository

import (
	"context"
	"time"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
)

// Activity defines the interface for activity persistence
type Activity interface {
	// Append durably stores a newly scored activity for a user.
	Append(ctx context.Context, userID string, activity *domain.ScoredActivity) error
	// List returns activities matching the filter, newest first.
	List(ctx context.Context, filter domain.ActivityFilter) ([]domain.ScoredActivity, error)
	// Snapshot returns every scored activity paired with its user. Batch
	// recomputation reads this under snapshot isolation so concurrent
	// incremental writers are excluded from the read.
	Snapshot(ctx context.Context) ([]domain.UserActivity, error)
	// CountByType returns the number of activities per activity type.
	CountByType(ctx context.Context) (map[domain.ActivityType]int, error)
	// ActiveUserCount returns the number of distinct users with at least one
	// activity since the given time.
	ActiveUserCount(ctx context.Context, since time.Time) (int, error)
}

package repository

import (
	"context"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
)

// User defines the interface for user aggregate persistence
type User interface {
	// Create inserts a new user with zeroed totals in their home region.
	Create(ctx context.Context, username, region string) (*domain.UserAggregate, error)
	// Get returns the aggregate for one user, or domain.ErrUserNotFound.
	Get(ctx context.Context, userID string) (*domain.UserAggregate, error)
	// List returns user aggregates, optionally filtered by region
	// (empty region means all users).
	List(ctx context.Context, region string) ([]domain.UserAggregate, error)
	// ApplyDelta atomically adds one activity's increments to a user aggregate.
	ApplyDelta(ctx context.Context, delta domain.UserDelta) error
	// ReplaceAll overwrites every user aggregate with the recomputed values.
	ReplaceAll(ctx context.Context, aggregates []domain.UserAggregate) error
	// ResetWeeklyPoints zeroes weekly_points for all users. Invoked by the
	// weekly reset worker, never by the engines themselves.
	ResetWeeklyPoints(ctx context.Context) error
}

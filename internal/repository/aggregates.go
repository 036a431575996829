package repository

import (
	"context"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
)

// Aggregates applies the paired per-user and per-region increments of one
// scored activity. Implementations must apply both deltas atomically (a
// single transaction) so a failure cannot leave the user updated but the
// region stale.
type Aggregates interface {
	ApplyActivityDeltas(ctx context.Context, user domain.UserDelta, region domain.RegionDelta) error
}

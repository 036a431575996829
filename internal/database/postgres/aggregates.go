package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/repository"
)

type aggregatesRepository struct {
	db *pgxpool.Pool
}

// NewAggregatesRepository creates a repository that applies the paired
// per-user and per-region increments of one scored activity in a single
// transaction.
func NewAggregatesRepository(db *pgxpool.Pool) repository.Aggregates {
	return &aggregatesRepository{db: db}
}

// ApplyActivityDeltas applies both deltas atomically. A failure on either
// side rolls back the whole update so the user and region rollups never
// drift apart.
func (r *aggregatesRepository) ApplyActivityDeltas(ctx context.Context, user domain.UserDelta, region domain.RegionDelta) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer tx.Rollback(ctx)

	if err := applyUserDelta(ctx, tx, user); err != nil {
		return err
	}
	if err := applyRegionDelta(ctx, tx, region); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

package repository

import (
	"context"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
)

// Region defines the interface for region directory and rollup persistence
type Region interface {
	// Directory returns the fixed Ghana region list.
	Directory(ctx context.Context) ([]domain.Region, error)
	// Get returns the rollup for one region, or domain.ErrRegionNotFound.
	Get(ctx context.Context, name string) (*domain.RegionAggregate, error)
	// ListAggregates returns the rollups for all regions.
	ListAggregates(ctx context.Context) ([]domain.RegionAggregate, error)
	// ApplyDelta atomically adds one activity's increments to a region rollup.
	ApplyDelta(ctx context.Context, delta domain.RegionDelta) error
	// ReplaceAll overwrites every region rollup with the recomputed values.
	ReplaceAll(ctx context.Context, aggregates []domain.RegionAggregate) error
}

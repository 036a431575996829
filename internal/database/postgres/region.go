package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/repository"
)

type regionRepository struct {
	db *pgxpool.Pool
}

// NewRegionRepository creates a new PostgreSQL region repository
func NewRegionRepository(db *pgxpool.Pool) repository.Region {
	return &regionRepository{db: db}
}

// SeedRegions inserts the fixed Ghana region directory, leaving existing
// rollup rows untouched. Called once at startup after schema creation.
func SeedRegions(ctx context.Context, db *pgxpool.Pool) error {
	query := `
		INSERT INTO regions (name, capital, code, population, area_km2)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO NOTHING
	`

	for _, region := range domain.GhanaRegions {
		_, err := db.Exec(ctx, query,
			region.Name, region.Capital, region.Code, region.Population, region.AreaKm2,
		)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToSeedRegions, err)
		}
	}

	return nil
}

// Directory returns the fixed Ghana region list
func (r *regionRepository) Directory(ctx context.Context) ([]domain.Region, error) {
	query := `SELECT name, capital, code, population, area_km2 FROM regions ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRegions, err)
	}
	defer rows.Close()

	var regions []domain.Region
	for rows.Next() {
		var region domain.Region
		if err := rows.Scan(&region.Name, &region.Capital, &region.Code, &region.Population, &region.AreaKm2); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRegion, err)
		}
		regions = append(regions, region)
	}

	return regions, rows.Err()
}

const regionAggregateColumns = `name, total_users, total_activities, total_points,
	trash_collected_kg, trees_planted, co2_saved_kg`

// Get returns the rollup for one region
func (r *regionRepository) Get(ctx context.Context, name string) (*domain.RegionAggregate, error) {
	query := `SELECT ` + regionAggregateColumns + ` FROM regions WHERE name = $1`

	aggregate, err := scanRegionAggregate(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRegionNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRegion, err)
	}

	return &aggregate, nil
}

// ListAggregates returns the rollups for all regions
func (r *regionRepository) ListAggregates(ctx context.Context) ([]domain.RegionAggregate, error) {
	query := `SELECT ` + regionAggregateColumns + ` FROM regions ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRegions, err)
	}
	defer rows.Close()

	var aggregates []domain.RegionAggregate
	for rows.Next() {
		aggregate, err := scanRegionAggregate(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRegion, err)
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, rows.Err()
}

// ApplyDelta atomically adds one activity's increments to a region rollup
func (r *regionRepository) ApplyDelta(ctx context.Context, delta domain.RegionDelta) error {
	return applyRegionDelta(ctx, r.db, delta)
}

// ReplaceAll overwrites every region rollup with the recomputed values
func (r *regionRepository) ReplaceAll(ctx context.Context, aggregates []domain.RegionAggregate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE regions SET
			total_users = $2,
			total_activities = $3,
			total_points = $4,
			trash_collected_kg = $5,
			trees_planted = $6,
			co2_saved_kg = $7,
			updated_at = NOW()
		WHERE name = $1
	`

	for _, aggregate := range aggregates {
		_, err := tx.Exec(ctx, query,
			aggregate.Region, aggregate.TotalUsers, aggregate.TotalActivities,
			aggregate.TotalPoints, aggregate.TrashCollectedKg, aggregate.TreesPlanted,
			aggregate.CO2SavedKg,
		)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRegion, err)
		}
	}

	return tx.Commit(ctx)
}

func applyRegionDelta(ctx context.Context, db execer, delta domain.RegionDelta) error {
	query := `
		UPDATE regions SET
			total_activities = total_activities + $2,
			total_points = total_points + $3,
			trash_collected_kg = trash_collected_kg + $4,
			trees_planted = trees_planted + $5,
			co2_saved_kg = co2_saved_kg + $6,
			updated_at = NOW()
		WHERE name = $1
	`

	tag, err := db.Exec(ctx, query,
		delta.Region, delta.Activities, delta.Points,
		delta.TrashCollectedKg, delta.TreesPlanted, delta.CO2SavedKg,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRegion, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInconsistentAggregate, delta.Region)
	}

	return nil
}

func scanRegionAggregate(row rowScanner) (domain.RegionAggregate, error) {
	var aggregate domain.RegionAggregate
	err := row.Scan(
		&aggregate.Region, &aggregate.TotalUsers, &aggregate.TotalActivities,
		&aggregate.TotalPoints, &aggregate.TrashCollectedKg, &aggregate.TreesPlanted,
		&aggregate.CO2SavedKg,
	)
	return aggregate, err
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/repository"
)

type userRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL user aggregate repository
func NewUserRepository(db *pgxpool.Pool) repository.User {
	return &userRepository{db: db}
}

const userColumns = `user_id, username, region, total_points, weekly_points,
	activity_count, trash_collected_kg, trees_planted, co2_saved_kg, created_at`

// Create inserts a new user with zeroed totals and counts them into their
// home region's rollup, in one transaction.
func (r *userRepository) Create(ctx context.Context, username, region string) (*domain.UserAggregate, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `UPDATE regions SET total_users = total_users + 1 WHERE name = $1`, region)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRegion, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrRegionNotFound
	}

	query := `
		INSERT INTO users (username, region)
		VALUES ($1, $2)
		RETURNING user_id, created_at
	`

	user := domain.UserAggregate{Username: username, Region: region}
	if err := tx.QueryRow(ctx, query, username, region).Scan(&user.UserID, &user.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &user, nil
}

// Get returns the aggregate for one user
func (r *userRepository) Get(ctx context.Context, userID string) (*domain.UserAggregate, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	row := r.db.QueryRow(ctx, query, userID)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanUser, err)
	}

	return &user, nil
}

// List returns user aggregates, optionally filtered by region
func (r *userRepository) List(ctx context.Context, region string) ([]domain.UserAggregate, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	args := []interface{}{}
	if region != "" {
		query += ` WHERE region = $1`
		args = append(args, region)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryUsers, err)
	}
	defer rows.Close()

	var users []domain.UserAggregate
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanUser, err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// ApplyDelta atomically adds one activity's increments to a user aggregate
func (r *userRepository) ApplyDelta(ctx context.Context, delta domain.UserDelta) error {
	return applyUserDelta(ctx, r.db, delta)
}

// ReplaceAll overwrites every user aggregate with the recomputed values
func (r *userRepository) ReplaceAll(ctx context.Context, aggregates []domain.UserAggregate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE users SET
			total_points = $2,
			weekly_points = $3,
			activity_count = $4,
			trash_collected_kg = $5,
			trees_planted = $6,
			co2_saved_kg = $7,
			updated_at = NOW()
		WHERE user_id = $1
	`

	for _, user := range aggregates {
		_, err := tx.Exec(ctx, query,
			user.UserID, user.TotalPoints, user.WeeklyPoints, user.ActivityCount,
			user.TrashCollectedKg, user.TreesPlanted, user.CO2SavedKg,
		)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUser, err)
		}
	}

	return tx.Commit(ctx)
}

// ResetWeeklyPoints zeroes weekly_points for all users
func (r *userRepository) ResetWeeklyPoints(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET weekly_points = 0, updated_at = NOW() WHERE weekly_points <> 0`)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUser, err)
	}
	return nil
}

// execer covers both pool and transaction so delta updates can run standalone
// or inside the paired aggregate transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func applyUserDelta(ctx context.Context, db execer, delta domain.UserDelta) error {
	query := `
		UPDATE users SET
			total_points = total_points + $2,
			weekly_points = weekly_points + $2,
			activity_count = activity_count + $3,
			trash_collected_kg = trash_collected_kg + $4,
			trees_planted = trees_planted + $5,
			co2_saved_kg = co2_saved_kg + $6,
			updated_at = NOW()
		WHERE user_id = $1
	`

	tag, err := db.Exec(ctx, query,
		delta.UserID, delta.Points, delta.Activities,
		delta.TrashCollectedKg, delta.TreesPlanted, delta.CO2SavedKg,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUser, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.UserAggregate, error) {
	var user domain.UserAggregate
	err := row.Scan(
		&user.UserID, &user.Username, &user.Region,
		&user.TotalPoints, &user.WeeklyPoints, &user.ActivityCount,
		&user.TrashCollectedKg, &user.TreesPlanted, &user.CO2SavedKg,
		&user.CreatedAt,
	)
	return user, err
}

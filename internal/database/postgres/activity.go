package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/repository"
)

type activityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates a new PostgreSQL activity repository
func NewActivityRepository(db *pgxpool.Pool) repository.Activity {
	return &activityRepository{db: db}
}

// Append stores a newly scored activity and fills in its generated ID and
// creation timestamp.
func (r *activityRepository) Append(ctx context.Context, userID string, activity *domain.ScoredActivity) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidUserID, err)
	}

	var photoURLs []byte
	if len(activity.PhotoURLs) > 0 {
		photoURLs, err = json.Marshal(activity.PhotoURLs)
		if err != nil {
			return fmt.Errorf("failed to marshal photo urls: %w", err)
		}
	}

	query := `
		INSERT INTO activities (
			user_id, activity_type, title, description, quantity,
			has_photo, has_location, location, region, photo_urls,
			points, co2_saved_kg, waste_kg, trees_count, distance_km, verified
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING activity_id, created_at
	`

	err = r.db.QueryRow(ctx, query,
		userUUID, string(activity.Type), activity.Title, activity.Description, activity.Quantity,
		activity.HasPhoto, activity.HasLocation, activity.Location, activity.Region, photoURLs,
		activity.Points, activity.Impact.CO2SavedKg, activity.Impact.WasteKg,
		activity.Impact.TreesCount, activity.Impact.DistanceKm, activity.Verified,
	).Scan(&activity.ActivityID, &activity.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertActivity, err)
	}

	return nil
}

// List retrieves activities based on filter criteria, newest first
func (r *activityRepository) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.ScoredActivity, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT activity_id, user_id, activity_type, title, description, quantity,
		       has_photo, has_location, location, region, photo_urls,
		       points, co2_saved_kg, waste_kg, trees_count, distance_km, verified, created_at
		FROM activities
		WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.UserID != "" {
		fmt.Fprintf(&queryBuilder, " AND user_id = $%d", argNum)
		args = append(args, filter.UserID)
		argNum++
	}

	if filter.Type != "" {
		fmt.Fprintf(&queryBuilder, " AND activity_type = $%d", argNum)
		args = append(args, string(filter.Type))
		argNum++
	}

	if filter.Region != "" {
		fmt.Fprintf(&queryBuilder, " AND region = $%d", argNum)
		args = append(args, filter.Region)
		argNum++
	}

	if filter.VerifiedOnly {
		queryBuilder.WriteString(" AND verified = TRUE")
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC, activity_id")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
		argNum++
	}

	if filter.Offset > 0 {
		fmt.Fprintf(&queryBuilder, " OFFSET $%d", argNum)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryActivities, err)
	}
	defer rows.Close()

	var activities []domain.ScoredActivity
	for rows.Next() {
		activity, _, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}

	return activities, rows.Err()
}

// Snapshot returns every scored activity paired with its user inside a
// repeatable-read transaction so concurrent incremental writers cannot
// interleave with the batch read.
func (r *activityRepository) Snapshot(ctx context.Context) ([]domain.UserActivity, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer tx.Rollback(ctx)

	query := `
		SELECT activity_id, user_id, activity_type, title, description, quantity,
		       has_photo, has_location, location, region, photo_urls,
		       points, co2_saved_kg, waste_kg, trees_count, distance_km, verified, created_at
		FROM activities
		ORDER BY created_at, activity_id
	`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryActivities, err)
	}
	defer rows.Close()

	var snapshot []domain.UserActivity
	for rows.Next() {
		activity, userID, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		snapshot = append(snapshot, domain.UserActivity{UserID: userID, Activity: activity})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshot, tx.Commit(ctx)
}

// CountByType returns the number of activities per activity type
func (r *activityRepository) CountByType(ctx context.Context) (map[domain.ActivityType]int, error) {
	query := `SELECT activity_type, COUNT(*) FROM activities GROUP BY activity_type`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCountActivities, err)
	}
	defer rows.Close()

	counts := make(map[domain.ActivityType]int)
	for rows.Next() {
		var activityType string
		var count int
		if err := rows.Scan(&activityType, &count); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCountActivities, err)
		}
		counts[domain.ActivityType(activityType)] = count
	}

	return counts, rows.Err()
}

// ActiveUserCount returns the number of distinct users with at least one
// activity since the given time
func (r *activityRepository) ActiveUserCount(ctx context.Context, since time.Time) (int, error) {
	query := `SELECT COUNT(DISTINCT user_id) FROM activities WHERE created_at >= $1`

	var count int
	if err := r.db.QueryRow(ctx, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountActivities, err)
	}

	return count, nil
}

// scanActivity reads one activity row, returning the activity and its user ID
func scanActivity(rows pgx.Rows) (domain.ScoredActivity, string, error) {
	var (
		activity    domain.ScoredActivity
		userID      uuid.UUID
		description *string
		location    *string
		photoURLs   []byte
	)

	err := rows.Scan(
		&activity.ActivityID, &userID, &activity.Type, &activity.Title, &description,
		&activity.Quantity, &activity.HasPhoto, &activity.HasLocation, &location,
		&activity.Region, &photoURLs, &activity.Points,
		&activity.Impact.CO2SavedKg, &activity.Impact.WasteKg,
		&activity.Impact.TreesCount, &activity.Impact.DistanceKm,
		&activity.Verified, &activity.CreatedAt,
	)
	if err != nil {
		return domain.ScoredActivity{}, "", fmt.Errorf("%s: %w", ErrMsgFailedToScanActivity, err)
	}

	if description != nil {
		activity.Description = *description
	}
	if location != nil {
		activity.Location = *location
	}
	if len(photoURLs) > 0 {
		if err := json.Unmarshal(photoURLs, &activity.PhotoURLs); err != nil {
			return domain.ScoredActivity{}, "", fmt.Errorf("%s: %w", ErrMsgFailedToScanActivity, err)
		}
	}

	return activity, userID.String(), nil
}

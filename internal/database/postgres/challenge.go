package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/repository"
)

type challengeRepository struct {
	db *pgxpool.Pool
}

// NewChallengeRepository creates a new PostgreSQL challenge repository
func NewChallengeRepository(db *pgxpool.Pool) repository.Challenge {
	return &challengeRepository{db: db}
}

// seedChallenge describes one starter challenge. Start and end dates are
// anchored to seed time, matching the rolling windows the platform launches
// with.
type seedChallenge struct {
	title          string
	description    string
	category       domain.ActivityType
	targetQuantity float64
	points         int
	difficulty     domain.ChallengeDifficulty
	startOffset    int // days after seeding
	durationDays   int
}

var starterChallenges = []seedChallenge{
	{
		title:          "Beach Cleanup Marathon",
		description:    "Join our coastal cleanup initiative! Collect at least 10 bags of trash from Ghana's beautiful beaches. Help protect marine life and keep our shores pristine for future generations.",
		category:       domain.ActivityTrash,
		targetQuantity: 10,
		points:         100,
		difficulty:     domain.DifficultyMedium,
		startOffset:    1,
		durationDays:   7,
	},
	{
		title:          "Community Cleanup Hero",
		description:    "Become a cleanup champion in your neighborhood! Collect 15 bags of trash across community cleanup events. Document your efforts and inspire others to join the movement.",
		category:       domain.ActivityTrash,
		targetQuantity: 15,
		points:         150,
		difficulty:     domain.DifficultyHard,
		startOffset:    7,
		durationDays:   14,
	},
	{
		title:          "Zero Waste Weekend",
		description:    "Challenge yourself to clear 5 bags of waste over a single weekend. Learn about waste reduction, proper sorting, and sustainable living practices.",
		category:       domain.ActivityTrash,
		targetQuantity: 5,
		points:         75,
		difficulty:     domain.DifficultyEasy,
		startOffset:    1,
		durationDays:   3,
	},
	{
		title:          "Green Ghana Forest Initiative",
		description:    "Plant 5 trees in your community or participate in local reforestation projects. Help combat deforestation and contribute to Ghana's green cover restoration.",
		category:       domain.ActivityTrees,
		targetQuantity: 5,
		points:         200,
		difficulty:     domain.DifficultyMedium,
		startOffset:    1,
		durationDays:   30,
	},
	{
		title:          "School Garden Champion",
		description:    "Start or maintain a garden at your school or local educational institution. Plant at least 3 trees or seedlings and share your knowledge with students.",
		category:       domain.ActivityTrees,
		targetQuantity: 3,
		points:         120,
		difficulty:     domain.DifficultyEasy,
		startOffset:    7,
		durationDays:   14,
	},
	{
		title:          "Urban Forest Creator",
		description:    "Transform urban spaces by planting 10 trees or creating small green spaces in cities. Focus on native species that can thrive in urban environments.",
		category:       domain.ActivityTrees,
		targetQuantity: 10,
		points:         250,
		difficulty:     domain.DifficultyHard,
		startOffset:    14,
		durationDays:   21,
	},
	{
		title:          "Car-Free Week Challenge",
		description:    "Go car-free for the week! Cover 25km by walking, cycling, public transport, or carpooling. Track your carbon footprint reduction and promote sustainable transportation.",
		category:       domain.ActivityMobility,
		targetQuantity: 25,
		points:         80,
		difficulty:     domain.DifficultyMedium,
		startOffset:    1,
		durationDays:   7,
	},
	{
		title:          "Cycling Adventure Ghana",
		description:    "Cycle at least 50km over the challenge period while exploring Ghana's beautiful landscapes. Promote cycling as a healthy and eco-friendly transport option.",
		category:       domain.ActivityMobility,
		targetQuantity: 50,
		points:         90,
		difficulty:     domain.DifficultyEasy,
		startOffset:    7,
		durationDays:   14,
	},
	{
		title:          "Water Warrior Challenge",
		description:    "Implement 5 water conservation practices in your daily routine. Install water-saving devices, fix leaks, and educate others about water conservation.",
		category:       domain.ActivityWater,
		targetQuantity: 5,
		points:         110,
		difficulty:     domain.DifficultyMedium,
		startOffset:    1,
		durationDays:   14,
	},
	{
		title:          "Solar Energy Pioneer",
		description:    "Promote renewable energy in your community! Complete 5 solar actions such as installing solar lights or organizing solar energy awareness events.",
		category:       domain.ActivityEnergy,
		targetQuantity: 5,
		points:         180,
		difficulty:     domain.DifficultyHard,
		startOffset:    7,
		durationDays:   21,
	},
}

// SeedChallenges inserts the starter challenge catalogue, leaving existing
// rows untouched. Called once at startup after schema creation.
func SeedChallenges(ctx context.Context, db *pgxpool.Pool) error {
	query := `
		INSERT INTO challenges (
			title, description, category, target_quantity,
			points, difficulty, is_active, start_date, end_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, $8)
		ON CONFLICT (title) DO NOTHING
	`

	now := time.Now().UTC()
	for _, seed := range starterChallenges {
		start := now.AddDate(0, 0, seed.startOffset)
		end := start.AddDate(0, 0, seed.durationDays)
		_, err := db.Exec(ctx, query,
			seed.title, seed.description, string(seed.category), seed.targetQuantity,
			seed.points, string(seed.difficulty), start, end,
		)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToSeedChallenges, err)
		}
	}

	return nil
}

const challengeColumns = `c.challenge_id, c.title, c.description, c.category,
	c.target_quantity, c.points, c.difficulty, c.is_active,
	c.start_date, c.end_date, c.created_at,
	(SELECT COUNT(*) FROM challenge_participants p WHERE p.challenge_id = c.challenge_id)`

// Create stores a new challenge and fills in its generated ID and creation
// timestamp
func (r *challengeRepository) Create(ctx context.Context, challenge *domain.Challenge) error {
	query := `
		INSERT INTO challenges (
			title, description, category, target_quantity,
			points, difficulty, is_active, start_date, end_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING challenge_id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		challenge.Title, challenge.Description, string(challenge.Category),
		challenge.TargetQuantity, challenge.Points, string(challenge.Difficulty),
		challenge.Active, challenge.StartDate, challenge.EndDate,
	).Scan(&challenge.ID, &challenge.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertChallenge, err)
	}

	return nil
}

// Get returns a single challenge by id
func (r *challengeRepository) Get(ctx context.Context, id string) (*domain.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges c WHERE c.challenge_id = $1`

	challenge, err := scanChallenge(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanChallenge, err)
	}

	return &challenge, nil
}

// List returns challenges matching the filter, newest first
func (r *challengeRepository) List(ctx context.Context, filter domain.ChallengeFilter) ([]domain.Challenge, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + challengeColumns + ` FROM challenges c WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.Category != "" {
		fmt.Fprintf(&queryBuilder, " AND c.category = $%d", argNum)
		args = append(args, string(filter.Category))
		argNum++
	}

	if filter.Difficulty != "" {
		fmt.Fprintf(&queryBuilder, " AND c.difficulty = $%d", argNum)
		args = append(args, string(filter.Difficulty))
		argNum++
	}

	if filter.ActiveOnly {
		queryBuilder.WriteString(" AND c.is_active = TRUE")
	}

	queryBuilder.WriteString(" ORDER BY c.created_at DESC, c.challenge_id")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
		argNum++
	}

	if filter.Offset > 0 {
		fmt.Fprintf(&queryBuilder, " OFFSET $%d", argNum)
		args = append(args, filter.Offset)
	}

	return r.queryChallenges(ctx, queryBuilder.String(), args...)
}

// ListByUser returns the challenges a user has joined, newest first
func (r *challengeRepository) ListByUser(ctx context.Context, userID string) ([]domain.Challenge, error) {
	query := `
		SELECT ` + challengeColumns + `
		FROM challenges c
		JOIN challenge_participants cp ON cp.challenge_id = c.challenge_id
		WHERE cp.user_id = $1
		ORDER BY cp.joined_at DESC, c.challenge_id
	`

	return r.queryChallenges(ctx, query, userID)
}

// Join records a user's membership in a challenge
func (r *challengeRepository) Join(ctx context.Context, challengeID, userID string) error {
	query := `INSERT INTO challenge_participants (challenge_id, user_id) VALUES ($1, $2)`

	_, err := r.db.Exec(ctx, query, challengeID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrAlreadyJoined
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToJoinChallenge, err)
	}

	return nil
}

// Leave removes a user's membership
func (r *challengeRepository) Leave(ctx context.Context, challengeID, userID string) error {
	query := `DELETE FROM challenge_participants WHERE challenge_id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, challengeID, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLeaveChallenge, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotJoined
	}

	return nil
}

// Participation returns the user's membership record for a challenge
func (r *challengeRepository) Participation(ctx context.Context, challengeID, userID string) (*domain.ChallengeParticipant, error) {
	query := `
		SELECT cp.user_id, u.username, u.region, cp.joined_at, cp.completed
		FROM challenge_participants cp
		JOIN users u ON u.user_id = cp.user_id
		WHERE cp.challenge_id = $1 AND cp.user_id = $2
	`

	var participant domain.ChallengeParticipant
	err := r.db.QueryRow(ctx, query, challengeID, userID).Scan(
		&participant.UserID, &participant.Username, &participant.Region,
		&participant.JoinedAt, &participant.Completed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotJoined
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanParticipant, err)
	}

	return &participant, nil
}

// Participants returns every participant of a challenge, completed first then
// earliest joiners
func (r *challengeRepository) Participants(ctx context.Context, challengeID string) ([]domain.ChallengeParticipant, error) {
	query := `
		SELECT cp.user_id, u.username, u.region, cp.joined_at, cp.completed
		FROM challenge_participants cp
		JOIN users u ON u.user_id = cp.user_id
		WHERE cp.challenge_id = $1
		ORDER BY cp.completed DESC, cp.joined_at, cp.user_id
	`

	rows, err := r.db.Query(ctx, query, challengeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryParticipants, err)
	}
	defer rows.Close()

	var participants []domain.ChallengeParticipant
	for rows.Next() {
		var participant domain.ChallengeParticipant
		err := rows.Scan(
			&participant.UserID, &participant.Username, &participant.Region,
			&participant.JoinedAt, &participant.Completed,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanParticipant, err)
		}
		participants = append(participants, participant)
	}

	return participants, rows.Err()
}

// MarkCompleted flags a participant's membership as completed
func (r *challengeRepository) MarkCompleted(ctx context.Context, challengeID, userID string) error {
	query := `UPDATE challenge_participants SET completed = TRUE WHERE challenge_id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, challengeID, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarkCompleted, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotJoined
	}

	return nil
}

func (r *challengeRepository) queryChallenges(ctx context.Context, query string, args ...interface{}) ([]domain.Challenge, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryChallenges, err)
	}
	defer rows.Close()

	var challenges []domain.Challenge
	for rows.Next() {
		challenge, err := scanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanChallenge, err)
		}
		challenges = append(challenges, challenge)
	}

	return challenges, rows.Err()
}

func scanChallenge(row pgx.Row) (domain.Challenge, error) {
	var challenge domain.Challenge
	err := row.Scan(
		&challenge.ID, &challenge.Title, &challenge.Description, &challenge.Category,
		&challenge.TargetQuantity, &challenge.Points, &challenge.Difficulty, &challenge.Active,
		&challenge.StartDate, &challenge.EndDate, &challenge.CreatedAt, &challenge.Participants,
	)
	if err != nil {
		return domain.Challenge{}, err
	}

	return challenge, nil
}

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/database/schema"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
)

// startTestDatabase spins up a throwaway Postgres container, applies the
// schema, and seeds the region directory.
func startTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	if pgContainer == nil {
		t.Skip("no container available")
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, schema.SchemaSQL); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}
	if err := SeedRegions(ctx, pool); err != nil {
		t.Fatalf("failed to seed regions: %v", err)
	}

	return pool
}

func TestRepositories_Integration(t *testing.T) {
	pool := startTestDatabase(t)
	ctx := context.Background()

	users := NewUserRepository(pool)
	activities := NewActivityRepository(pool)
	regions := NewRegionRepository(pool)
	aggregates := NewAggregatesRepository(pool)

	var userID string

	t.Run("CreateUser", func(t *testing.T) {
		user, err := users.Create(ctx, "ama", "Greater Accra")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if user.UserID == "" {
			t.Error("expected user ID to be set")
		}
		userID = user.UserID

		region, err := regions.Get(ctx, "Greater Accra")
		if err != nil {
			t.Fatalf("Get region failed: %v", err)
		}
		if region.TotalUsers != 1 {
			t.Errorf("expected region to count 1 user, got %d", region.TotalUsers)
		}
	})

	t.Run("CreateUserUnknownRegion", func(t *testing.T) {
		_, err := users.Create(ctx, "kofi", "Atlantis")
		if err != domain.ErrRegionNotFound {
			t.Errorf("expected ErrRegionNotFound, got %v", err)
		}
	})

	t.Run("AppendAndListActivities", func(t *testing.T) {
		activity := &domain.ScoredActivity{
			ActivitySubmission: domain.ActivitySubmission{
				Type:        domain.ActivityTrash,
				Title:       "Beach cleanup",
				Description: "Collected trash at Labadi beach",
				Quantity:    3,
				HasPhoto:    true,
				Region:      "Greater Accra",
				PhotoURLs:   []string{"https://example.com/1.jpg"},
			},
			Points: 57,
			Impact: domain.ImpactMetrics{WasteKg: 6, CO2SavedKg: 1.5},
		}
		if err := activities.Append(ctx, userID, activity); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		if activity.ActivityID == "" {
			t.Error("expected activity ID to be set")
		}
		if activity.CreatedAt.IsZero() {
			t.Error("expected created_at to be set")
		}

		listed, err := activities.List(ctx, domain.ActivityFilter{UserID: userID})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(listed) != 1 {
			t.Fatalf("expected 1 activity, got %d", len(listed))
		}
		if listed[0].Points != 57 {
			t.Errorf("expected 57 points, got %d", listed[0].Points)
		}
		if len(listed[0].PhotoURLs) != 1 {
			t.Errorf("expected photo urls round-trip, got %v", listed[0].PhotoURLs)
		}
	})

	t.Run("ApplyActivityDeltas", func(t *testing.T) {
		err := aggregates.ApplyActivityDeltas(ctx,
			domain.UserDelta{UserID: userID, Points: 57, Activities: 1, TrashCollectedKg: 6, CO2SavedKg: 1.5},
			domain.RegionDelta{Region: "Greater Accra", Points: 57, Activities: 1, TrashCollectedKg: 6, CO2SavedKg: 1.5},
		)
		if err != nil {
			t.Fatalf("ApplyActivityDeltas failed: %v", err)
		}

		user, err := users.Get(ctx, userID)
		if err != nil {
			t.Fatalf("Get user failed: %v", err)
		}
		if user.TotalPoints != 57 || user.WeeklyPoints != 57 {
			t.Errorf("expected 57/57 points, got %d/%d", user.TotalPoints, user.WeeklyPoints)
		}

		region, err := regions.Get(ctx, "Greater Accra")
		if err != nil {
			t.Fatalf("Get region failed: %v", err)
		}
		if region.TotalPoints != 57 || region.TotalActivities != 1 {
			t.Errorf("expected region rollup 57/1, got %d/%d", region.TotalPoints, region.TotalActivities)
		}
	})

	t.Run("DeltasRollBackTogether", func(t *testing.T) {
		err := aggregates.ApplyActivityDeltas(ctx,
			domain.UserDelta{UserID: userID, Points: 10, Activities: 1},
			domain.RegionDelta{Region: "Atlantis", Points: 10, Activities: 1},
		)
		if err == nil {
			t.Fatal("expected error for unknown region")
		}

		user, err := users.Get(ctx, userID)
		if err != nil {
			t.Fatalf("Get user failed: %v", err)
		}
		if user.TotalPoints != 57 {
			t.Errorf("expected user untouched at 57 points, got %d", user.TotalPoints)
		}
	})

	t.Run("CountByTypeAndActiveUsers", func(t *testing.T) {
		counts, err := activities.CountByType(ctx)
		if err != nil {
			t.Fatalf("CountByType failed: %v", err)
		}
		if counts[domain.ActivityTrash] != 1 {
			t.Errorf("expected 1 trash activity, got %d", counts[domain.ActivityTrash])
		}

		active, err := activities.ActiveUserCount(ctx, time.Now().Add(-24*time.Hour))
		if err != nil {
			t.Fatalf("ActiveUserCount failed: %v", err)
		}
		if active != 1 {
			t.Errorf("expected 1 active user, got %d", active)
		}
	})

	t.Run("Snapshot", func(t *testing.T) {
		snapshot, err := activities.Snapshot(ctx)
		if err != nil {
			t.Fatalf("Snapshot failed: %v", err)
		}
		if len(snapshot) != 1 {
			t.Fatalf("expected 1 snapshot row, got %d", len(snapshot))
		}
		if snapshot[0].UserID != userID {
			t.Errorf("expected snapshot user %s, got %s", userID, snapshot[0].UserID)
		}
	})

	t.Run("Directory", func(t *testing.T) {
		directory, err := regions.Directory(ctx)
		if err != nil {
			t.Fatalf("Directory failed: %v", err)
		}
		if len(directory) != len(domain.GhanaRegions) {
			t.Errorf("expected %d regions, got %d", len(domain.GhanaRegions), len(directory))
		}
	})

	t.Run("Challenges", func(t *testing.T) {
		challenges := NewChallengeRepository(pool)

		if err := SeedChallenges(ctx, pool); err != nil {
			t.Fatalf("SeedChallenges failed: %v", err)
		}
		// Seeding is idempotent.
		if err := SeedChallenges(ctx, pool); err != nil {
			t.Fatalf("second SeedChallenges failed: %v", err)
		}

		seeded, err := challenges.List(ctx, domain.ChallengeFilter{})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(seeded) != len(starterChallenges) {
			t.Fatalf("expected %d seeded challenges, got %d", len(starterChallenges), len(seeded))
		}

		trashOnly, err := challenges.List(ctx, domain.ChallengeFilter{Category: domain.ActivityTrash})
		if err != nil {
			t.Fatalf("List by category failed: %v", err)
		}
		for _, challenge := range trashOnly {
			if challenge.Category != domain.ActivityTrash {
				t.Errorf("expected only trash challenges, got %s", challenge.Category)
			}
		}

		challengeID := seeded[0].ID

		if err := challenges.Join(ctx, challengeID, userID); err != nil {
			t.Fatalf("Join failed: %v", err)
		}
		if err := challenges.Join(ctx, challengeID, userID); err != domain.ErrAlreadyJoined {
			t.Errorf("expected ErrAlreadyJoined, got %v", err)
		}

		participant, err := challenges.Participation(ctx, challengeID, userID)
		if err != nil {
			t.Fatalf("Participation failed: %v", err)
		}
		if participant.Username != "ama" {
			t.Errorf("expected participant username ama, got %s", participant.Username)
		}
		if participant.Completed {
			t.Error("expected new participant to be incomplete")
		}

		joined, err := challenges.ListByUser(ctx, userID)
		if err != nil {
			t.Fatalf("ListByUser failed: %v", err)
		}
		if len(joined) != 1 {
			t.Fatalf("expected 1 joined challenge, got %d", len(joined))
		}
		if joined[0].Participants != 1 {
			t.Errorf("expected participant count 1, got %d", joined[0].Participants)
		}

		if err := challenges.MarkCompleted(ctx, challengeID, userID); err != nil {
			t.Fatalf("MarkCompleted failed: %v", err)
		}
		participant, err = challenges.Participation(ctx, challengeID, userID)
		if err != nil {
			t.Fatalf("Participation after completion failed: %v", err)
		}
		if !participant.Completed {
			t.Error("expected participant to be completed")
		}

		if err := challenges.Leave(ctx, challengeID, userID); err != nil {
			t.Fatalf("Leave failed: %v", err)
		}
		if err := challenges.Leave(ctx, challengeID, userID); err != domain.ErrNotJoined {
			t.Errorf("expected ErrNotJoined, got %v", err)
		}

		if _, err := challenges.Get(ctx, "00000000-0000-0000-0000-000000000000"); err != domain.ErrChallengeNotFound {
			t.Errorf("expected ErrChallengeNotFound, got %v", err)
		}
	})

	t.Run("ResetWeeklyPoints", func(t *testing.T) {
		if err := users.ResetWeeklyPoints(ctx); err != nil {
			t.Fatalf("ResetWeeklyPoints failed: %v", err)
		}

		user, err := users.Get(ctx, userID)
		if err != nil {
			t.Fatalf("Get user failed: %v", err)
		}
		if user.WeeklyPoints != 0 {
			t.Errorf("expected weekly points reset to 0, got %d", user.WeeklyPoints)
		}
		if user.TotalPoints != 57 {
			t.Errorf("expected total points preserved at 57, got %d", user.TotalPoints)
		}
	})
}

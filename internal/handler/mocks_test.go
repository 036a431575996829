package handler

import (
	"context"
	"time"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
)

// mockUserService implements user.Service for testing
type mockUserService struct {
	registerResult *domain.UserAggregate
	registerError  error
	registered     []string

	getResult *domain.UserAggregate
	getError  error

	invalidated []string
}

func (m *mockUserService) Register(ctx context.Context, username, region string) (*domain.UserAggregate, error) {
	m.registered = append(m.registered, username)
	if m.registerError != nil {
		return nil, m.registerError
	}
	if m.registerResult != nil {
		return m.registerResult, nil
	}
	return &domain.UserAggregate{UserID: "new-id", Username: username, Region: region}, nil
}

func (m *mockUserService) Get(ctx context.Context, userID string) (*domain.UserAggregate, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	if m.getResult != nil {
		return m.getResult, nil
	}
	return &domain.UserAggregate{UserID: userID}, nil
}

func (m *mockUserService) InvalidateProfile(userID string) {
	m.invalidated = append(m.invalidated, userID)
}

// mockActivityService implements activity.Service for testing
type mockActivityService struct {
	submitResult *domain.ScoredActivity
	submitError  error
	submitted    []domain.ActivitySubmission

	listResult []domain.ScoredActivity
	listError  error
	listFilter domain.ActivityFilter
}

func (m *mockActivityService) Submit(ctx context.Context, userID string, sub domain.ActivitySubmission) (*domain.ScoredActivity, error) {
	m.submitted = append(m.submitted, sub)
	if m.submitError != nil {
		return nil, m.submitError
	}
	if m.submitResult != nil {
		return m.submitResult, nil
	}
	return &domain.ScoredActivity{ActivityID: "act-1", ActivitySubmission: sub, Points: 57}, nil
}

func (m *mockActivityService) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.ScoredActivity, error) {
	m.listFilter = filter
	if m.listError != nil {
		return nil, m.listError
	}
	return m.listResult, nil
}

// mockAggregationService implements aggregation.Service for testing
type mockAggregationService struct {
	leaderboardResult []domain.LeaderboardEntry
	leaderboardError  error
	leaderboardScope  domain.LeaderboardScope
	leaderboardMetric domain.LeaderboardMetric
	leaderboardRegion string
	leaderboardLimit  int

	globalStatsResult *domain.GlobalStats
	globalStatsError  error
	globalStatsNow    time.Time

	regionStatsResult *domain.RegionStats
	regionStatsError  error

	recomputeError error
	recomputeCalls int
	resetError     error
	resetCalls     int
}

func (m *mockAggregationService) ApplyScored(ctx context.Context, userID string, activity domain.ScoredActivity) error {
	return nil
}

func (m *mockAggregationService) RecomputeAll(ctx context.Context, weekStart time.Time) error {
	m.recomputeCalls++
	return m.recomputeError
}

func (m *mockAggregationService) Leaderboard(ctx context.Context, scope domain.LeaderboardScope, region string, metric domain.LeaderboardMetric, limit int) ([]domain.LeaderboardEntry, error) {
	m.leaderboardScope = scope
	m.leaderboardRegion = region
	m.leaderboardMetric = metric
	m.leaderboardLimit = limit
	if m.leaderboardError != nil {
		return nil, m.leaderboardError
	}
	return m.leaderboardResult, nil
}

func (m *mockAggregationService) GlobalStats(ctx context.Context, now time.Time) (*domain.GlobalStats, error) {
	m.globalStatsNow = now
	if m.globalStatsError != nil {
		return nil, m.globalStatsError
	}
	if m.globalStatsResult != nil {
		return m.globalStatsResult, nil
	}
	return &domain.GlobalStats{}, nil
}

func (m *mockAggregationService) RegionStats(ctx context.Context, region string) (*domain.RegionStats, error) {
	if m.regionStatsError != nil {
		return nil, m.regionStatsError
	}
	if m.regionStatsResult != nil {
		return m.regionStatsResult, nil
	}
	return &domain.RegionStats{Region: region}, nil
}

func (m *mockAggregationService) ResetWeeklyPoints(ctx context.Context) error {
	m.resetCalls++
	return m.resetError
}

// mockChallengeService implements challenge.Service for testing
type mockChallengeService struct {
	listResult []domain.Challenge
	listError  error
	listFilter domain.ChallengeFilter

	getResult *domain.Challenge
	getError  error

	createError error
	created     []domain.Challenge

	joinError  error
	joined     []string
	leaveError error
	left       []string

	progressResult *domain.ChallengeProgress
	progressError  error

	participantsResult []domain.ChallengeParticipant
	participantsError  error
}

func (m *mockChallengeService) List(ctx context.Context, filter domain.ChallengeFilter) ([]domain.Challenge, error) {
	m.listFilter = filter
	if m.listError != nil {
		return nil, m.listError
	}
	return m.listResult, nil
}

func (m *mockChallengeService) ListByUser(ctx context.Context, userID string) ([]domain.Challenge, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.listResult, nil
}

func (m *mockChallengeService) Get(ctx context.Context, id string) (*domain.Challenge, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	if m.getResult != nil {
		return m.getResult, nil
	}
	return &domain.Challenge{ID: id}, nil
}

func (m *mockChallengeService) Create(ctx context.Context, challenge *domain.Challenge) error {
	if m.createError != nil {
		return m.createError
	}
	challenge.ID = "ch-new"
	m.created = append(m.created, *challenge)
	return nil
}

func (m *mockChallengeService) Join(ctx context.Context, challengeID, userID string) error {
	if m.joinError != nil {
		return m.joinError
	}
	m.joined = append(m.joined, challengeID+"/"+userID)
	return nil
}

func (m *mockChallengeService) Leave(ctx context.Context, challengeID, userID string) error {
	if m.leaveError != nil {
		return m.leaveError
	}
	m.left = append(m.left, challengeID+"/"+userID)
	return nil
}

func (m *mockChallengeService) Progress(ctx context.Context, challengeID, userID string) (*domain.ChallengeProgress, error) {
	if m.progressError != nil {
		return nil, m.progressError
	}
	if m.progressResult != nil {
		return m.progressResult, nil
	}
	return &domain.ChallengeProgress{ChallengeID: challengeID, UserID: userID}, nil
}

func (m *mockChallengeService) Participants(ctx context.Context, challengeID string) ([]domain.ChallengeParticipant, error) {
	if m.participantsError != nil {
		return nil, m.participantsError
	}
	return m.participantsResult, nil
}

// mockRegionRepository implements repository.Region for testing
type mockRegionRepository struct {
	directoryError error
}

func (m *mockRegionRepository) Directory(ctx context.Context) ([]domain.Region, error) {
	if m.directoryError != nil {
		return nil, m.directoryError
	}
	return domain.GhanaRegions, nil
}

func (m *mockRegionRepository) Get(ctx context.Context, name string) (*domain.RegionAggregate, error) {
	return nil, domain.ErrRegionNotFound
}

func (m *mockRegionRepository) ListAggregates(ctx context.Context) ([]domain.RegionAggregate, error) {
	return nil, nil
}

func (m *mockRegionRepository) ApplyDelta(ctx context.Context, delta domain.RegionDelta) error {
	return nil
}

func (m *mockRegionRepository) ReplaceAll(ctx context.Context, aggregates []domain.RegionAggregate) error {
	return nil
}

// mockPool implements database.Pool for testing
type mockPool struct {
	pingError error
}

func (m *mockPool) Ping(ctx context.Context) error { return m.pingError }
func (m *mockPool) Close()                         {}

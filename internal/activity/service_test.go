package activity

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
)

// mockUserRepository implements repository.User for testing
type mockUserRepository struct {
	users    map[string]*domain.UserAggregate
	getError error
}

func (m *mockUserRepository) Create(ctx context.Context, username, region string) (*domain.UserAggregate, error) {
	return nil, errors.New("not used")
}

func (m *mockUserRepository) Get(ctx context.Context, userID string) (*domain.UserAggregate, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	u, ok := m.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepository) List(ctx context.Context, region string) ([]domain.UserAggregate, error) {
	return nil, nil
}
func (m *mockUserRepository) ApplyDelta(ctx context.Context, delta domain.UserDelta) error { return nil }
func (m *mockUserRepository) ReplaceAll(ctx context.Context, aggregates []domain.UserAggregate) error {
	return nil
}
func (m *mockUserRepository) ResetWeeklyPoints(ctx context.Context) error { return nil }

// mockActivityRepository implements repository.Activity for testing
type mockActivityRepository struct {
	appended    []domain.UserActivity
	appendError error

	listFilter domain.ActivityFilter
	listResult []domain.ScoredActivity
}

func (m *mockActivityRepository) Append(ctx context.Context, userID string, activity *domain.ScoredActivity) error {
	if m.appendError != nil {
		return m.appendError
	}
	activity.ActivityID = "act-1"
	activity.CreatedAt = time.Now().UTC()
	m.appended = append(m.appended, domain.UserActivity{UserID: userID, Activity: *activity})
	return nil
}

func (m *mockActivityRepository) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.ScoredActivity, error) {
	m.listFilter = filter
	return m.listResult, nil
}

func (m *mockActivityRepository) Snapshot(ctx context.Context) ([]domain.UserActivity, error) {
	return nil, nil
}
func (m *mockActivityRepository) CountByType(ctx context.Context) (map[domain.ActivityType]int, error) {
	return nil, nil
}
func (m *mockActivityRepository) ActiveUserCount(ctx context.Context, since time.Time) (int, error) {
	return 0, nil
}

// mockAggregationService implements aggregation.Service for testing
type mockAggregationService struct {
	applied    []domain.ScoredActivity
	applyError error
}

func (m *mockAggregationService) ApplyScored(ctx context.Context, userID string, activity domain.ScoredActivity) error {
	if m.applyError != nil {
		return m.applyError
	}
	m.applied = append(m.applied, activity)
	return nil
}

func (m *mockAggregationService) RecomputeAll(ctx context.Context, weekStart time.Time) error {
	return nil
}
func (m *mockAggregationService) Leaderboard(ctx context.Context, scope domain.LeaderboardScope, region string, metric domain.LeaderboardMetric, limit int) ([]domain.LeaderboardEntry, error) {
	return nil, nil
}
func (m *mockAggregationService) GlobalStats(ctx context.Context, now time.Time) (*domain.GlobalStats, error) {
	return nil, nil
}
func (m *mockAggregationService) RegionStats(ctx context.Context, region string) (*domain.RegionStats, error) {
	return nil, nil
}
func (m *mockAggregationService) ResetWeeklyPoints(ctx context.Context) error { return nil }

func validSubmission() domain.ActivitySubmission {
	return domain.ActivitySubmission{
		Type:        domain.ActivityTrash,
		Title:       "Beach cleanup at Labadi",
		Description: "Collected trash along the shoreline",
		Quantity:    3,
		HasPhoto:    true,
		HasLocation: true,
		Region:      "Greater Accra",
	}
}

func newService() (Service, *mockUserRepository, *mockActivityRepository, *mockAggregationService) {
	users := &mockUserRepository{users: map[string]*domain.UserAggregate{
		"u1": {UserID: "u1", Region: "Greater Accra"},
	}}
	activities := &mockActivityRepository{}
	agg := &mockAggregationService{}
	return NewService(users, activities, agg), users, activities, agg
}

func TestSubmit_ScoresStoresAndAggregates(t *testing.T) {
	svc, _, activities, agg := newService()

	scored, err := svc.Submit(context.Background(), "u1", validSubmission())
	require.NoError(t, err)

	// 25 base + 5 photo + 3 location + 3*8 quantity bonus
	assert.Equal(t, 57, scored.Points)
	assert.Equal(t, "act-1", scored.ActivityID)

	require.Len(t, activities.appended, 1)
	assert.Equal(t, "u1", activities.appended[0].UserID)

	require.Len(t, agg.applied, 1)
	assert.Equal(t, 57, agg.applied[0].Points)
}

func TestSubmit_UnknownUser(t *testing.T) {
	svc, _, activities, _ := newService()

	_, err := svc.Submit(context.Background(), "ghost", validSubmission())
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, activities.appended)
}

func TestSubmit_TitleBounds(t *testing.T) {
	svc, _, _, _ := newService()
	ctx := context.Background()

	sub := validSubmission()
	sub.Title = "ab"
	_, err := svc.Submit(ctx, "u1", sub)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	sub.Title = strings.Repeat("x", TitleMaxLength+1)
	_, err = svc.Submit(ctx, "u1", sub)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmit_DescriptionBounds(t *testing.T) {
	svc, _, _, _ := newService()
	ctx := context.Background()

	sub := validSubmission()
	sub.Description = "short"
	_, err := svc.Submit(ctx, "u1", sub)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// Empty description is allowed
	sub.Description = ""
	_, err = svc.Submit(ctx, "u1", sub)
	require.NoError(t, err)
}

func TestSubmit_InvalidType(t *testing.T) {
	svc, _, activities, _ := newService()

	sub := validSubmission()
	sub.Type = "swimming"
	_, err := svc.Submit(context.Background(), "u1", sub)
	require.ErrorIs(t, err, domain.ErrUnknownActivityType)
	assert.Empty(t, activities.appended)
}

func TestSubmit_PersistFailure(t *testing.T) {
	svc, _, activities, agg := newService()
	activities.appendError = errors.New("disk full")

	_, err := svc.Submit(context.Background(), "u1", validSubmission())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgPersistFailed)
	assert.Empty(t, agg.applied)
}

func TestSubmit_AggregationFailureKeepsActivity(t *testing.T) {
	svc, _, activities, agg := newService()
	agg.applyError = errors.New("lock timeout")

	_, err := svc.Submit(context.Background(), "u1", validSubmission())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgAggregationFailed)

	// The activity stays in the log; the periodic recompute reconciles it
	assert.Len(t, activities.appended, 1)
}

func TestList_DefaultsAndClampsLimit(t *testing.T) {
	svc, _, activities, _ := newService()
	ctx := context.Background()

	_, err := svc.List(ctx, domain.ActivityFilter{})
	require.NoError(t, err)
	assert.Equal(t, DefaultListLimit, activities.listFilter.Limit)

	_, err = svc.List(ctx, domain.ActivityFilter{Limit: MaxListLimit + 1})
	require.NoError(t, err)
	assert.Equal(t, MaxListLimit, activities.listFilter.Limit)
}

func TestList_ValidatesFilter(t *testing.T) {
	svc, _, _, _ := newService()
	ctx := context.Background()

	_, err := svc.List(ctx, domain.ActivityFilter{Type: "swimming"})
	require.ErrorIs(t, err, domain.ErrUnknownActivityType)

	_, err = svc.List(ctx, domain.ActivityFilter{Region: "Atlantis"})
	require.ErrorIs(t, err, domain.ErrUnknownRegion)
}

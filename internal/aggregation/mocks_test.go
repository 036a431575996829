package aggregation

import (
	"context"
	"sync"
	"time"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
)

// mockUserRepository implements repository.User for testing
type mockUserRepository struct {
	mu    sync.Mutex
	users map[string]*domain.UserAggregate

	listCalls  int
	listError  error
	resetError error

	replaced []domain.UserAggregate
}

func newMockUserRepository(users ...domain.UserAggregate) *mockUserRepository {
	m := &mockUserRepository{users: make(map[string]*domain.UserAggregate)}
	for i := range users {
		u := users[i]
		m.users[u.UserID] = &u
	}
	return m
}

func (m *mockUserRepository) Create(ctx context.Context, username, region string) (*domain.UserAggregate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := &domain.UserAggregate{UserID: username, Username: username, Region: region, CreatedAt: time.Now().UTC()}
	m.users[u.UserID] = u
	return u, nil
}

func (m *mockUserRepository) Get(ctx context.Context, userID string) (*domain.UserAggregate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *mockUserRepository) List(ctx context.Context, region string) ([]domain.UserAggregate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listError != nil {
		return nil, m.listError
	}
	var out []domain.UserAggregate
	for _, u := range m.users {
		if region == "" || u.Region == region {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *mockUserRepository) ApplyDelta(ctx context.Context, delta domain.UserDelta) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.applyDeltaLocked(delta)
}

func (m *mockUserRepository) applyDeltaLocked(delta domain.UserDelta) error {
	u, ok := m.users[delta.UserID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.TotalPoints += delta.Points
	u.WeeklyPoints += delta.Points
	u.ActivityCount += delta.Activities
	u.TrashCollectedKg += delta.TrashCollectedKg
	u.TreesPlanted += delta.TreesPlanted
	u.CO2SavedKg += delta.CO2SavedKg
	return nil
}

func (m *mockUserRepository) ReplaceAll(ctx context.Context, aggregates []domain.UserAggregate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replaced = aggregates
	m.users = make(map[string]*domain.UserAggregate, len(aggregates))
	for i := range aggregates {
		u := aggregates[i]
		m.users[u.UserID] = &u
	}
	return nil
}

func (m *mockUserRepository) ResetWeeklyPoints(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.resetError != nil {
		return m.resetError
	}
	for _, u := range m.users {
		u.WeeklyPoints = 0
	}
	return nil
}

// mockRegionRepository implements repository.Region for testing
type mockRegionRepository struct {
	mu         sync.Mutex
	aggregates map[string]*domain.RegionAggregate

	listCalls int
	listError error

	replaced []domain.RegionAggregate
}

func newMockRegionRepository() *mockRegionRepository {
	m := &mockRegionRepository{aggregates: make(map[string]*domain.RegionAggregate)}
	for _, r := range domain.GhanaRegions {
		m.aggregates[r.Name] = &domain.RegionAggregate{Region: r.Name}
	}
	return m
}

func (m *mockRegionRepository) Directory(ctx context.Context) ([]domain.Region, error) {
	return domain.GhanaRegions, nil
}

func (m *mockRegionRepository) Get(ctx context.Context, name string) (*domain.RegionAggregate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	agg, ok := m.aggregates[name]
	if !ok {
		return nil, domain.ErrRegionNotFound
	}
	copied := *agg
	return &copied, nil
}

func (m *mockRegionRepository) ListAggregates(ctx context.Context) ([]domain.RegionAggregate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listError != nil {
		return nil, m.listError
	}
	out := make([]domain.RegionAggregate, 0, len(m.aggregates))
	for _, agg := range m.aggregates {
		out = append(out, *agg)
	}
	return out, nil
}

func (m *mockRegionRepository) ApplyDelta(ctx context.Context, delta domain.RegionDelta) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.applyDeltaLocked(delta)
}

func (m *mockRegionRepository) applyDeltaLocked(delta domain.RegionDelta) error {
	agg, ok := m.aggregates[delta.Region]
	if !ok {
		return domain.ErrInconsistentAggregate
	}
	agg.TotalPoints += delta.Points
	agg.TotalActivities += delta.Activities
	agg.TrashCollectedKg += delta.TrashCollectedKg
	agg.TreesPlanted += delta.TreesPlanted
	agg.CO2SavedKg += delta.CO2SavedKg
	return nil
}

func (m *mockRegionRepository) ReplaceAll(ctx context.Context, aggregates []domain.RegionAggregate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replaced = aggregates
	m.aggregates = make(map[string]*domain.RegionAggregate, len(aggregates))
	for i := range aggregates {
		agg := aggregates[i]
		m.aggregates[agg.Region] = &agg
	}
	return nil
}

// mockActivityRepository implements repository.Activity for testing
type mockActivityRepository struct {
	mu       sync.Mutex
	snapshot []domain.UserActivity

	countByType map[domain.ActivityType]int
	activeUsers int
	activeSince time.Time
}

func (m *mockActivityRepository) Append(ctx context.Context, userID string, activity *domain.ScoredActivity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot = append(m.snapshot, domain.UserActivity{UserID: userID, Activity: *activity})
	return nil
}

func (m *mockActivityRepository) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.ScoredActivity, error) {
	return nil, nil
}

func (m *mockActivityRepository) Snapshot(ctx context.Context) ([]domain.UserActivity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.UserActivity, len(m.snapshot))
	copy(out, m.snapshot)
	return out, nil
}

func (m *mockActivityRepository) CountByType(ctx context.Context) (map[domain.ActivityType]int, error) {
	if m.countByType != nil {
		return m.countByType, nil
	}
	return map[domain.ActivityType]int{}, nil
}

func (m *mockActivityRepository) ActiveUserCount(ctx context.Context, since time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeSince = since
	return m.activeUsers, nil
}

// mockAggregatesRepository applies paired deltas against the user and region
// mocks, mirroring the single-transaction behavior of the real implementation.
type mockAggregatesRepository struct {
	users   *mockUserRepository
	regions *mockRegionRepository

	mu         sync.Mutex
	applyCalls int
	applyError error
}

func (m *mockAggregatesRepository) ApplyActivityDeltas(ctx context.Context, user domain.UserDelta, region domain.RegionDelta) error {
	m.mu.Lock()
	m.applyCalls++
	err := m.applyError
	m.mu.Unlock()
	if err != nil {
		return err
	}

	m.users.mu.Lock()
	userErr := m.users.applyDeltaLocked(user)
	m.users.mu.Unlock()
	if userErr != nil {
		return userErr
	}

	m.regions.mu.Lock()
	defer m.regions.mu.Unlock()
	return m.regions.applyDeltaLocked(region)
}

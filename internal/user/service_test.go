package user

import (
	"context"
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
	getCalls int
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*domain.UserAggregate)}
}

func (m *mockUserRepository) Create(ctx context.Context, username, region string) (*domain.UserAggregate, error) {
	u := &domain.UserAggregate{
		UserID:    "id-" + username,
		Username:  username,
		Region:    region,
		CreatedAt: time.Now().UTC(),
	}
	m.users[u.UserID] = u
	return u, nil
}

func (m *mockUserRepository) Get(ctx context.Context, userID string) (*domain.UserAggregate, error) {
	m.getCalls++
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

func TestRegister_Success(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewService(repo)

	created, err := svc.Register(context.Background(), "ama_mensah", "Greater Accra")
	require.NoError(t, err)
	assert.Equal(t, "ama_mensah", created.Username)
	assert.Equal(t, "Greater Accra", created.Region)
	assert.Zero(t, created.TotalPoints)
}

func TestRegister_TrimsWhitespace(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewService(repo)

	created, err := svc.Register(context.Background(), "  kofi  ", "Ashanti")
	require.NoError(t, err)
	assert.Equal(t, "kofi", created.Username)
}

func TestRegister_UsernameBounds(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "ab", "Ashanti")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Register(ctx, strings.Repeat("x", UsernameMaxLength+1), "Ashanti")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_UnknownRegion(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), "ama_mensah", "Atlantis")
	require.ErrorIs(t, err, domain.ErrUnknownRegion)
	assert.Empty(t, repo.users)
}

func TestGet_CachesProfile(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Register(ctx, "ama_mensah", "Greater Accra")
	require.NoError(t, err)

	first, err := svc.Get(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, created.UserID, first.UserID)
	callsAfterFirst := repo.getCalls

	// Second lookup is served from cache
	second, err := svc.Get(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, callsAfterFirst, repo.getCalls)
}

func TestInvalidateProfile_ForcesFreshLookup(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Register(ctx, "ama_mensah", "Greater Accra")
	require.NoError(t, err)

	_, err = svc.Get(ctx, created.UserID)
	require.NoError(t, err)
	callsAfterFirst := repo.getCalls

	svc.InvalidateProfile(created.UserID)

	_, err = svc.Get(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, callsAfterFirst+1, repo.getCalls)
}

func TestGet_NotFound(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewService(repo)

	_, err := svc.Get(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestProfileCache_SchemaVersionMismatchInvalidates(t *testing.T) {
	cache := newProfileCache(8, time.Minute)
	u := &domain.UserAggregate{UserID: "u1"}
	cache.Set("u1", u)

	entry, found := cache.lru.Get("u1")
	require.True(t, found)
	entry.Version = "0.9"

	_, found = cache.Get("u1")
	assert.False(t, found)
}

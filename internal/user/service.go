// Package user provides registration and profile lookups over the stored
// user aggregates.
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/logger"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/repository"
)

// Service defines the interface for user operations
type Service interface {
	// Register creates a new user in their home region with zeroed totals.
	Register(ctx context.Context, username, region string) (*domain.UserAggregate, error)
	// Get returns a user's aggregate profile.
	Get(ctx context.Context, userID string) (*domain.UserAggregate, error)
	// InvalidateProfile drops a user's cached profile so the next Get reads
	// fresh totals. Called after a scored activity changes the aggregates.
	InvalidateProfile(userID string)
}

// service implements the Service interface
type service struct {
	users repository.User
	cache *profileCache
}

// NewService creates a new user service
func NewService(users repository.User) Service {
	return &service{
		users: users,
		cache: newProfileCache(ProfileCacheSize, ProfileCacheTTL),
	}
}

// Register creates a new user after validating username and region
func (s *service) Register(ctx context.Context, username, region string) (*domain.UserAggregate, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if len(username) < UsernameMinLength || len(username) > UsernameMaxLength {
		return nil, fmt.Errorf("%w: username must be %d-%d characters", domain.ErrInvalidInput, UsernameMinLength, UsernameMaxLength)
	}
	if !domain.KnownRegion(region) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRegion, region)
	}

	created, err := s.users.Create(ctx, username, region)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgUserRegistered, "user_id", created.UserID, "region", created.Region)
	return created, nil
}

// Get returns a user's aggregate profile, serving recent lookups from cache
func (s *service) Get(ctx context.Context, userID string) (*domain.UserAggregate, error) {
	if cached, found := s.cache.Get(userID); found {
		return cached, nil
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(userID, user)
	return user, nil
}

// InvalidateProfile evicts a user's cached profile
func (s *service) InvalidateProfile(userID string) {
	s.cache.Invalidate(userID)
}

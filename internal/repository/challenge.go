package repository

import (
	"context"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
)

// Challenge defines the interface for challenge persistence
type Challenge interface {
	// Create stores a new challenge and returns it with its assigned id.
	Create(ctx context.Context, challenge *domain.Challenge) error
	// Get returns a single challenge by id.
	// Returns domain.ErrChallengeNotFound when the id is unknown.
	Get(ctx context.Context, id string) (*domain.Challenge, error)
	// List returns challenges matching the filter, newest first.
	List(ctx context.Context, filter domain.ChallengeFilter) ([]domain.Challenge, error)
	// ListByUser returns the challenges a user has joined, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Challenge, error)
	// Join records a user's membership in a challenge.
	// Returns domain.ErrAlreadyJoined when the user is already a participant.
	Join(ctx context.Context, challengeID, userID string) error
	// Leave removes a user's membership.
	// Returns domain.ErrNotJoined when the user is not a participant.
	Leave(ctx context.Context, challengeID, userID string) error
	// Participation returns the user's membership record for a challenge.
	// Returns domain.ErrNotJoined when the user is not a participant.
	Participation(ctx context.Context, challengeID, userID string) (*domain.ChallengeParticipant, error)
	// Participants returns every participant of a challenge, completed first.
	Participants(ctx context.Context, challengeID string) ([]domain.ChallengeParticipant, error)
	// MarkCompleted flags a participant's membership as completed.
	MarkCompleted(ctx context.Context, challengeID, userID string) error
}

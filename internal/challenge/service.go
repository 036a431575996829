// Package challenge manages time-boxed community challenges whose progress
// is derived from the scored activity log rather than stored counters.
package challenge

import (
	"context"
	"fmt"
	"strings"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/logger"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/metrics"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/repository"
)

// Service defines the interface for challenge operations
type Service interface {
	// List returns challenges matching the filter, newest first.
	List(ctx context.Context, filter domain.ChallengeFilter) ([]domain.Challenge, error)
	// ListByUser returns the challenges a user has joined, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Challenge, error)
	// Get returns a single challenge by id.
	Get(ctx context.Context, id string) (*domain.Challenge, error)
	// Create validates and stores a new challenge.
	Create(ctx context.Context, challenge *domain.Challenge) error
	// Join enrols a user in an active challenge. Progress counts only
	// activities logged after the join.
	Join(ctx context.Context, challengeID, userID string) error
	// Leave removes a user from a challenge.
	Leave(ctx context.Context, challengeID, userID string) error
	// Progress folds the participant's scored activities of the challenge
	// category inside the challenge window into a derived progress figure.
	Progress(ctx context.Context, challengeID, userID string) (*domain.ChallengeProgress, error)
	// Participants returns every participant of a challenge.
	Participants(ctx context.Context, challengeID string) ([]domain.ChallengeParticipant, error)
}

// service implements the Service interface
type service struct {
	challenges repository.Challenge
	activities repository.Activity
	users      repository.User
}

// NewService creates a new challenge service
func NewService(challenges repository.Challenge, activities repository.Activity, users repository.User) Service {
	return &service{
		challenges: challenges,
		activities: activities,
		users:      users,
	}
}

// List returns challenges matching the filter
func (s *service) List(ctx context.Context, filter domain.ChallengeFilter) ([]domain.Challenge, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownActivityType, filter.Category)
	}
	if filter.Difficulty != "" && !filter.Difficulty.Valid() {
		return nil, fmt.Errorf("%w: unknown difficulty %q", domain.ErrInvalidInput, filter.Difficulty)
	}

	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}

	challenges, err := s.challenges.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListFailed, err)
	}

	return challenges, nil
}

// ListByUser returns the challenges a user has joined
func (s *service) ListByUser(ctx context.Context, userID string) ([]domain.Challenge, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}

	challenges, err := s.challenges.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListFailed, err)
	}

	return challenges, nil
}

// Get returns a single challenge by id
func (s *service) Get(ctx context.Context, id string) (*domain.Challenge, error) {
	return s.challenges.Get(ctx, id)
}

// Create validates and stores a new challenge
func (s *service) Create(ctx context.Context, challenge *domain.Challenge) error {
	if err := validateChallenge(challenge); err != nil {
		return err
	}

	if err := s.challenges.Create(ctx, challenge); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCreateFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgChallengeCreated,
		"challenge_id", challenge.ID,
		"title", challenge.Title,
		"category", challenge.Category,
	)

	return nil
}

// Join enrols a user in an active challenge
func (s *service) Join(ctx context.Context, challengeID, userID string) error {
	challenge, err := s.challenges.Get(ctx, challengeID)
	if err != nil {
		return err
	}
	if !challenge.Active {
		return domain.ErrChallengeInactive
	}

	if _, err := s.users.Get(ctx, userID); err != nil {
		return err
	}

	if err := s.challenges.Join(ctx, challengeID, userID); err != nil {
		return err
	}

	metrics.ChallengeJoins.WithLabelValues(string(challenge.Category)).Inc()
	logger.FromContext(ctx).Info(LogMsgChallengeJoined, "challenge_id", challengeID, "user_id", userID)

	return nil
}

// Leave removes a user from a challenge
func (s *service) Leave(ctx context.Context, challengeID, userID string) error {
	if _, err := s.challenges.Get(ctx, challengeID); err != nil {
		return err
	}

	if err := s.challenges.Leave(ctx, challengeID, userID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgChallengeLeft, "challenge_id", challengeID, "user_id", userID)

	return nil
}

// Progress derives a participant's progress from the activity log. The fold
// counts quantities of the challenge category logged between the later of
// the join time and the challenge start, and the challenge end.
func (s *service) Progress(ctx context.Context, challengeID, userID string) (*domain.ChallengeProgress, error) {
	challenge, err := s.challenges.Get(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	participant, err := s.challenges.Participation(ctx, challengeID, userID)
	if err != nil {
		return nil, err
	}

	// Limit 0 disables pagination so the fold sees the full history.
	activities, err := s.activities.List(ctx, domain.ActivityFilter{
		UserID: userID,
		Type:   challenge.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgProgressFailed, err)
	}

	from := challenge.StartDate
	if participant.JoinedAt.After(from) {
		from = participant.JoinedAt
	}

	var quantity float64
	for _, activity := range activities {
		if activity.CreatedAt.Before(from) || activity.CreatedAt.After(challenge.EndDate) {
			continue
		}
		quantity += activity.Quantity
	}

	percent := CompletionPercent
	if challenge.TargetQuantity > 0 {
		percent = quantity / challenge.TargetQuantity * 100
		if percent > CompletionPercent {
			percent = CompletionPercent
		}
	}

	completed := participant.Completed
	if !completed && percent >= CompletionPercent {
		// Completion is recorded but never awards points: aggregates must
		// stay reproducible from the activity log alone.
		if err := s.challenges.MarkCompleted(ctx, challengeID, userID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgProgressFailed, err)
		}
		completed = true
		metrics.ChallengeCompletions.WithLabelValues(string(challenge.Category)).Inc()
		logger.FromContext(ctx).Info(LogMsgChallengeCompleted, "challenge_id", challengeID, "user_id", userID)
	}

	return &domain.ChallengeProgress{
		ChallengeID: challengeID,
		UserID:      userID,
		Quantity:    quantity,
		Target:      challenge.TargetQuantity,
		Percent:     percent,
		Completed:   completed,
	}, nil
}

// Participants returns every participant of a challenge
func (s *service) Participants(ctx context.Context, challengeID string) ([]domain.ChallengeParticipant, error) {
	if _, err := s.challenges.Get(ctx, challengeID); err != nil {
		return nil, err
	}

	participants, err := s.challenges.Participants(ctx, challengeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParticipantsFailed, err)
	}

	return participants, nil
}

// validateChallenge enforces content and window bounds on a new challenge
func validateChallenge(challenge *domain.Challenge) error {
	title := strings.TrimSpace(challenge.Title)
	if len(title) < TitleMinLength || len(title) > TitleMaxLength {
		return fmt.Errorf("%w: title must be %d-%d characters", domain.ErrInvalidInput, TitleMinLength, TitleMaxLength)
	}

	description := strings.TrimSpace(challenge.Description)
	if len(description) < DescriptionMinLength || len(description) > DescriptionMaxLength {
		return fmt.Errorf("%w: description must be %d-%d characters", domain.ErrInvalidInput, DescriptionMinLength, DescriptionMaxLength)
	}

	if !challenge.Category.Valid() {
		return fmt.Errorf("%w: %s", domain.ErrUnknownActivityType, challenge.Category)
	}
	if !challenge.Difficulty.Valid() {
		return fmt.Errorf("%w: unknown difficulty %q", domain.ErrInvalidInput, challenge.Difficulty)
	}

	if challenge.Points < PointsMin || challenge.Points > PointsMax {
		return fmt.Errorf("%w: points must be %d-%d", domain.ErrInvalidInput, PointsMin, PointsMax)
	}
	if challenge.TargetQuantity <= 0 {
		return fmt.Errorf("%w: target quantity must be positive", domain.ErrInvalidInput)
	}

	if challenge.EndDate.IsZero() || challenge.StartDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", domain.ErrInvalidInput)
	}
	if !challenge.EndDate.After(challenge.StartDate) {
		return fmt.Errorf("%w: end date must be after start date", domain.ErrInvalidInput)
	}

	return nil
}

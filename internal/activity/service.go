// Package activity coordinates scoring and persistence of submitted
// environmental activities.
package activity

import (
	"context"
	"fmt"
	"strings"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/aggregation"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/logger"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/metrics"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/repository"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/scoring"
)

// Service defines the interface for activity operations
type Service interface {
	// Submit scores a submission, appends it to the activity log, and folds
	// it into the aggregates. Returns the stored scored activity.
	Submit(ctx context.Context, userID string, sub domain.ActivitySubmission) (*domain.ScoredActivity, error)
	// List returns scored activities matching the filter, newest first.
	List(ctx context.Context, filter domain.ActivityFilter) ([]domain.ScoredActivity, error)
}

// service implements the Service interface
type service struct {
	users       repository.User
	activities  repository.Activity
	aggregation aggregation.Service
}

// NewService creates a new activity service
func NewService(users repository.User, activities repository.Activity, aggregation aggregation.Service) Service {
	return &service{
		users:       users,
		activities:  activities,
		aggregation: aggregation,
	}
}

// Submit scores and stores one activity submission
func (s *service) Submit(ctx context.Context, userID string, sub domain.ActivitySubmission) (*domain.ScoredActivity, error) {
	log := logger.FromContext(ctx)

	if err := validateSubmission(sub); err != nil {
		metrics.ActivitiesScored.WithLabelValues(string(sub.Type), "rejected").Inc()
		return nil, err
	}

	// Look up the user first so a bad user ID fails before scoring.
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}

	scored, err := scoring.Score(sub)
	if err != nil {
		metrics.ActivitiesScored.WithLabelValues(string(sub.Type), "rejected").Inc()
		return nil, fmt.Errorf("%s: %w", ErrMsgScoringFailed, err)
	}

	if err := s.activities.Append(ctx, userID, &scored); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgPersistFailed, err)
	}

	metrics.ActivitiesScored.WithLabelValues(string(scored.Type), "accepted").Inc()
	metrics.PointsAwarded.WithLabelValues(string(scored.Type)).Add(float64(scored.Points))

	if err := s.aggregation.ApplyScored(ctx, userID, scored); err != nil {
		// The activity is durably stored; a full recompute rebuilds the
		// aggregates from the log, so the submission is not rolled back.
		log.Error(LogMsgAggregationLagging, "user_id", userID, "activity_id", scored.ActivityID, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrMsgAggregationFailed, err)
	}

	log.Info(LogMsgActivityScored,
		"user_id", userID,
		"activity_id", scored.ActivityID,
		"type", scored.Type,
		"points", scored.Points,
	)

	return &scored, nil
}

// List returns scored activities matching the filter
func (s *service) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.ScoredActivity, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownActivityType, filter.Type)
	}
	if filter.Region != "" && !domain.KnownRegion(filter.Region) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRegion, filter.Region)
	}

	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}

	return s.activities.List(ctx, filter)
}

// validateSubmission enforces the content bounds that scoring does not
// care about. Scoring validates type, quantity, and region itself.
func validateSubmission(sub domain.ActivitySubmission) error {
	title := strings.TrimSpace(sub.Title)
	if len(title) < TitleMinLength || len(title) > TitleMaxLength {
		return fmt.Errorf("%w: title must be %d-%d characters", domain.ErrInvalidInput, TitleMinLength, TitleMaxLength)
	}

	if sub.Description != "" {
		description := strings.TrimSpace(sub.Description)
		if len(description) < DescriptionMinLength || len(description) > DescriptionMaxLength {
			return fmt.Errorf("%w: description must be %d-%d characters", domain.ErrInvalidInput, DescriptionMinLength, DescriptionMaxLength)
		}
	}

	return nil
}

package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/ojharitesh/Launch-Navigator/internal/db"
	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

// activityService implements the ActivityService interface.
type activityService struct {
	activityRepo db.ActivityRepository
}

// NewActivityService creates a new ActivityService instance.
func NewActivityService(activityRepo db.ActivityRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

// Record stores one activity entry.
func (s *activityService) Record(ctx context.Context, entry models.ActivityLog) error {
	if s.activityRepo == nil {
		return errors.New("activityService: activityRepo not initialized")
	}
	if err := s.activityRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to store activity entry: %w", err)
	}
	return nil
}

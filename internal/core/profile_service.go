package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ojharitesh/Launch-Navigator/internal/catalog"
	"github.com/ojharitesh/Launch-Navigator/internal/db"
	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

// Custom errors for the ProfileService
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidInput    = errors.New("invalid input")
)

// profileService implements the ProfileService interface.
type profileService struct {
	profileRepo     db.ProfileRepository
	activityService ActivityService
	logger          *zap.Logger
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(pr db.ProfileRepository, as ActivityService, logger *zap.Logger) ProfileService {
	return &profileService{
		profileRepo:     pr,
		activityService: as,
		logger:          logger,
	}
}

// GetOrCreate retrieves a profile by user ID, creating a default one when
// none exists. New profiles start with an empty state, the general business
// type, and the free plan.
func (s *profileService) GetOrCreate(ctx context.Context, userID, displayName string) (*models.Profile, bool, error) {
	if s.profileRepo == nil {
		return nil, false, errors.New("profileService: profileRepo not initialized")
	}

	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err == nil {
		return profile, false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to get profile for user '%s': %w", userID, err)
	}

	newProfile := &models.Profile{
		ID:               userID,
		Name:             displayName,
		State:            "",
		BusinessType:     models.GeneralAxis,
		SubscriptionPlan: models.PlanFree,
	}
	if createErr := s.profileRepo.Create(ctx, newProfile); createErr != nil {
		return nil, false, fmt.Errorf("failed to create profile for user '%s': %w", userID, createErr)
	}
	return newProfile, true, nil
}

// GetByID retrieves a profile by user ID.
func (s *profileService) GetByID(ctx context.Context, userID string) (*models.Profile, error) {
	if s.profileRepo == nil {
		return nil, errors.New("profileService: profileRepo not initialized")
	}
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user '%s'", ErrProfileNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get profile for user '%s': %w", userID, err)
	}
	return profile, nil
}

// CompleteOnboarding upserts the profile from the onboarding form. Retrying
// with the same payload leaves the profile in the same final state.
func (s *profileService) CompleteOnboarding(ctx context.Context, userID string, req models.OnboardingRequest) (*models.Profile, error) {
	if s.profileRepo == nil {
		return nil, errors.New("profileService: profileRepo not initialized")
	}

	stateCode := catalog.StateCode(req.State)
	if !catalog.IsValidState(stateCode) {
		return nil, fmt.Errorf("%w: unknown state '%s'", ErrInvalidInput, req.State)
	}
	if !catalog.IsValidBusinessType(req.BusinessType) {
		return nil, fmt.Errorf("%w: unknown business type '%s'", ErrInvalidInput, req.BusinessType)
	}

	profile := &models.Profile{
		ID:               userID,
		Name:             req.Name,
		State:            stateCode,
		City:             req.City,
		BusinessType:     req.BusinessType,
		SubscriptionPlan: models.PlanFree,
	}

	existing, err := s.profileRepo.GetByID(ctx, userID)
	switch {
	case err == nil:
		profile.SubscriptionPlan = existing.SubscriptionPlan
		if updateErr := s.profileRepo.Update(ctx, profile); updateErr != nil {
			return nil, fmt.Errorf("failed to update profile for user '%s': %w", userID, updateErr)
		}
	case errors.Is(err, db.ErrNotFound):
		if createErr := s.profileRepo.Create(ctx, profile); createErr != nil {
			return nil, fmt.Errorf("failed to create profile for user '%s': %w", userID, createErr)
		}
	default:
		return nil, fmt.Errorf("failed to get profile for user '%s': %w", userID, err)
	}

	s.recordActivity(ctx, models.ActivityLog{
		UserID:     userID,
		Action:     "ONBOARDING_COMPLETE",
		TargetType: "PROFILE",
		TargetID:   userID,
		Details: map[string]interface{}{
			"state":        profile.State,
			"businessType": profile.BusinessType,
		},
	})

	return profile, nil
}

// Update applies a partial update to the profile. Only provided fields change.
func (s *profileService) Update(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.Profile, error) {
	if s.profileRepo == nil {
		return nil, errors.New("profileService: profileRepo not initialized")
	}

	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user '%s'", ErrProfileNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get profile for user '%s': %w", userID, err)
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.State != nil {
		stateCode := catalog.StateCode(*req.State)
		if stateCode != "" && !catalog.IsValidState(stateCode) {
			return nil, fmt.Errorf("%w: unknown state '%s'", ErrInvalidInput, *req.State)
		}
		profile.State = stateCode
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.BusinessType != nil {
		if !catalog.IsValidBusinessType(*req.BusinessType) {
			return nil, fmt.Errorf("%w: unknown business type '%s'", ErrInvalidInput, *req.BusinessType)
		}
		profile.BusinessType = *req.BusinessType
	}
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile for user '%s': %w", userID, err)
	}

	s.recordActivity(ctx, models.ActivityLog{
		UserID:     userID,
		Action:     "PROFILE_UPDATE",
		TargetType: "PROFILE",
		TargetID:   userID,
	})

	return profile, nil
}

// recordActivity writes an activity entry. Failures are logged and never
// block the main operation.
func (s *profileService) recordActivity(ctx context.Context, entry models.ActivityLog) {
	if s.activityService == nil {
		return
	}
	entry.Timestamp = time.Now().UTC()
	if err := s.activityService.Record(ctx, entry); err != nil && s.logger != nil {
		s.logger.Warn("failed to record activity",
			zap.String("action", entry.Action),
			zap.String("userID", entry.UserID),
			zap.Error(err))
	}
}

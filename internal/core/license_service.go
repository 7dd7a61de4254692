package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ojharitesh/Launch-Navigator/internal/db"
	"github.com/ojharitesh/Launch-Navigator/internal/deadline"
	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

// ErrLicenseNotFound is returned when a license does not exist or belongs to
// another user.
var ErrLicenseNotFound = errors.New("license not found")

// dateLayout is the wire format for dates in license and inspection payloads.
const dateLayout = "2006-01-02"

// licenseService implements the LicenseService interface.
type licenseService struct {
	licenseRepo     db.LicenseRepository
	activityService ActivityService
	windowDays      int
	logger          *zap.Logger
}

// NewLicenseService creates a new LicenseService instance.
func NewLicenseService(lr db.LicenseRepository, as ActivityService, windowDays int, logger *zap.Logger) LicenseService {
	if windowDays <= 0 {
		windowDays = deadline.DefaultWindowDays
	}
	return &licenseService{
		licenseRepo:     lr,
		activityService: as,
		windowDays:      windowDays,
		logger:          logger,
	}
}

// Create stores a new license for the user.
func (s *licenseService) Create(ctx context.Context, userID string, req models.CreateLicenseRequest) (*models.License, error) {
	if s.licenseRepo == nil {
		return nil, errors.New("licenseService: licenseRepo not initialized")
	}

	if req.LicenseName == "" {
		return nil, fmt.Errorf("%w: license_name is required", ErrInvalidInput)
	}
	expiration, err := parseDate(req.ExpirationDate)
	if err != nil {
		return nil, fmt.Errorf("%w: expiration_date '%s' is not a valid date", ErrInvalidInput, req.ExpirationDate)
	}
	if expiration == nil {
		return nil, fmt.Errorf("%w: expiration_date is required", ErrInvalidInput)
	}

	license := &models.License{
		UserID:           userID,
		LicenseName:      req.LicenseName,
		ExpirationDate:   *expiration,
		RenewalFrequency: req.RenewalFrequency,
		Notes:            req.Notes,
		CreatedAt:        time.Now().UTC(),
	}
	licenseID, err := s.licenseRepo.Create(ctx, license)
	if err != nil {
		return nil, fmt.Errorf("failed to create license for user '%s': %w", userID, err)
	}
	license.ID = licenseID

	s.recordActivity(ctx, models.ActivityLog{
		UserID:     userID,
		Action:     "LICENSE_CREATE",
		TargetType: "LICENSE",
		TargetID:   license.ID,
		Details:    map[string]interface{}{"licenseName": license.LicenseName},
	})

	return license, nil
}

// List returns the user's licenses ordered by expiration date, plus the
// subset expiring within the due-soon window.
func (s *licenseService) List(ctx context.Context, userID string) ([]*models.License, []*models.License, error) {
	if s.licenseRepo == nil {
		return nil, nil, errors.New("licenseService: licenseRepo not initialized")
	}
	licenses, err := s.licenseRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list licenses for user '%s': %w", userID, err)
	}

	now := time.Now()
	upcoming := make([]*models.License, 0)
	for _, l := range licenses {
		if deadline.IsWithinDays(l.ExpirationDate, now, s.windowDays) {
			upcoming = append(upcoming, l)
		}
	}
	return licenses, upcoming, nil
}

// Update applies a partial update to one of the user's licenses.
func (s *licenseService) Update(ctx context.Context, userID, licenseID string, req models.UpdateLicenseRequest) (*models.License, error) {
	if s.licenseRepo == nil {
		return nil, errors.New("licenseService: licenseRepo not initialized")
	}

	license, err := s.getOwned(ctx, userID, licenseID)
	if err != nil {
		return nil, err
	}

	if req.LicenseName != nil {
		if *req.LicenseName == "" {
			return nil, fmt.Errorf("%w: license_name cannot be empty", ErrInvalidInput)
		}
		license.LicenseName = *req.LicenseName
	}
	if req.ExpirationDate != nil {
		expiration, parseErr := parseDate(*req.ExpirationDate)
		if parseErr != nil || expiration == nil {
			return nil, fmt.Errorf("%w: expiration_date '%s' is not a valid date", ErrInvalidInput, *req.ExpirationDate)
		}
		license.ExpirationDate = *expiration
	}
	if req.RenewalFrequency != nil {
		license.RenewalFrequency = *req.RenewalFrequency
	}
	if req.Notes != nil {
		license.Notes = *req.Notes
	}

	if err := s.licenseRepo.Update(ctx, license); err != nil {
		return nil, fmt.Errorf("failed to update license '%s': %w", licenseID, err)
	}

	s.recordActivity(ctx, models.ActivityLog{
		UserID:     userID,
		Action:     "LICENSE_UPDATE",
		TargetType: "LICENSE",
		TargetID:   licenseID,
	})

	return license, nil
}

// Delete removes one of the user's licenses.
func (s *licenseService) Delete(ctx context.Context, userID, licenseID string) error {
	if s.licenseRepo == nil {
		return errors.New("licenseService: licenseRepo not initialized")
	}

	if _, err := s.getOwned(ctx, userID, licenseID); err != nil {
		return err
	}
	if err := s.licenseRepo.Delete(ctx, licenseID); err != nil {
		return fmt.Errorf("failed to delete license '%s': %w", licenseID, err)
	}

	s.recordActivity(ctx, models.ActivityLog{
		UserID:     userID,
		Action:     "LICENSE_DELETE",
		TargetType: "LICENSE",
		TargetID:   licenseID,
	})

	return nil
}

// getOwned fetches a license and verifies ownership. A license owned by
// another user behaves as if it did not exist.
func (s *licenseService) getOwned(ctx context.Context, userID, licenseID string) (*models.License, error) {
	license, err := s.licenseRepo.GetByID(ctx, licenseID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrLicenseNotFound, licenseID)
		}
		return nil, fmt.Errorf("failed to get license '%s': %w", licenseID, err)
	}
	if license.UserID != userID {
		return nil, fmt.Errorf("%w: '%s'", ErrLicenseNotFound, licenseID)
	}
	return license, nil
}

func (s *licenseService) recordActivity(ctx context.Context, entry models.ActivityLog) {
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

// parseDate parses a "2006-01-02" date. The empty string yields nil, used
// for optional dates.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

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

// ErrInspectionNotFound is returned when an inspection does not exist or
// belongs to another user.
var ErrInspectionNotFound = errors.New("inspection not found")

// inspectionService implements the InspectionService interface.
type inspectionService struct {
	inspectionRepo  db.InspectionRepository
	activityService ActivityService
	windowDays      int
	logger          *zap.Logger
}

// NewInspectionService creates a new InspectionService instance.
func NewInspectionService(ir db.InspectionRepository, as ActivityService, windowDays int, logger *zap.Logger) InspectionService {
	if windowDays <= 0 {
		windowDays = deadline.DefaultWindowDays
	}
	return &inspectionService{
		inspectionRepo:  ir,
		activityService: as,
		windowDays:      windowDays,
		logger:          logger,
	}
}

// Create stores a new inspection for the user. Empty optional dates are
// stored as null.
func (s *inspectionService) Create(ctx context.Context, userID string, req models.CreateInspectionRequest) (*models.Inspection, error) {
	if s.inspectionRepo == nil {
		return nil, errors.New("inspectionService: inspectionRepo not initialized")
	}

	if req.InspectionType == "" {
		return nil, fmt.Errorf("%w: inspection_type is required", ErrInvalidInput)
	}
	last, err := parseDate(req.LastInspectionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: last_inspection_date '%s' is not a valid date", ErrInvalidInput, req.LastInspectionDate)
	}
	next, err := parseDate(req.NextInspectionEstimate)
	if err != nil {
		return nil, fmt.Errorf("%w: next_inspection_estimate '%s' is not a valid date", ErrInvalidInput, req.NextInspectionEstimate)
	}

	inspection := &models.Inspection{
		UserID:                 userID,
		InspectionType:         req.InspectionType,
		LastInspectionDate:     last,
		NextInspectionEstimate: next,
		Notes:                  req.Notes,
		CreatedAt:              time.Now().UTC(),
	}
	inspectionID, err := s.inspectionRepo.Create(ctx, inspection)
	if err != nil {
		return nil, fmt.Errorf("failed to create inspection for user '%s': %w", userID, err)
	}
	inspection.ID = inspectionID

	s.recordActivity(ctx, models.ActivityLog{
		UserID:     userID,
		Action:     "INSPECTION_CREATE",
		TargetType: "INSPECTION",
		TargetID:   inspection.ID,
		Details:    map[string]interface{}{"inspectionType": inspection.InspectionType},
	})

	return inspection, nil
}

// List returns the user's inspections plus the subset whose next estimated
// date falls within the due-soon window. Records without an estimate never
// appear in the upcoming subset.
func (s *inspectionService) List(ctx context.Context, userID string) ([]*models.Inspection, []*models.Inspection, error) {
	if s.inspectionRepo == nil {
		return nil, nil, errors.New("inspectionService: inspectionRepo not initialized")
	}
	inspections, err := s.inspectionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list inspections for user '%s': %w", userID, err)
	}

	now := time.Now()
	upcoming := make([]*models.Inspection, 0)
	for _, ins := range inspections {
		if ins.NextInspectionEstimate == nil {
			continue
		}
		if deadline.IsWithinDays(*ins.NextInspectionEstimate, now, s.windowDays) {
			upcoming = append(upcoming, ins)
		}
	}
	return inspections, upcoming, nil
}

// Update applies a partial update to one of the user's inspections. A date
// field set to the empty string clears the stored date.
func (s *inspectionService) Update(ctx context.Context, userID, inspectionID string, req models.UpdateInspectionRequest) (*models.Inspection, error) {
	if s.inspectionRepo == nil {
		return nil, errors.New("inspectionService: inspectionRepo not initialized")
	}

	inspection, err := s.getOwned(ctx, userID, inspectionID)
	if err != nil {
		return nil, err
	}

	if req.InspectionType != nil {
		if *req.InspectionType == "" {
			return nil, fmt.Errorf("%w: inspection_type cannot be empty", ErrInvalidInput)
		}
		inspection.InspectionType = *req.InspectionType
	}
	if req.LastInspectionDate != nil {
		last, parseErr := parseDate(*req.LastInspectionDate)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: last_inspection_date '%s' is not a valid date", ErrInvalidInput, *req.LastInspectionDate)
		}
		inspection.LastInspectionDate = last
	}
	if req.NextInspectionEstimate != nil {
		next, parseErr := parseDate(*req.NextInspectionEstimate)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: next_inspection_estimate '%s' is not a valid date", ErrInvalidInput, *req.NextInspectionEstimate)
		}
		inspection.NextInspectionEstimate = next
	}
	if req.Notes != nil {
		inspection.Notes = *req.Notes
	}

	if err := s.inspectionRepo.Update(ctx, inspection); err != nil {
		return nil, fmt.Errorf("failed to update inspection '%s': %w", inspectionID, err)
	}

	s.recordActivity(ctx, models.ActivityLog{
		UserID:     userID,
		Action:     "INSPECTION_UPDATE",
		TargetType: "INSPECTION",
		TargetID:   inspectionID,
	})

	return inspection, nil
}

// Delete removes one of the user's inspections.
func (s *inspectionService) Delete(ctx context.Context, userID, inspectionID string) error {
	if s.inspectionRepo == nil {
		return errors.New("inspectionService: inspectionRepo not initialized")
	}

	if _, err := s.getOwned(ctx, userID, inspectionID); err != nil {
		return err
	}
	if err := s.inspectionRepo.Delete(ctx, inspectionID); err != nil {
		return fmt.Errorf("failed to delete inspection '%s': %w", inspectionID, err)
	}

	s.recordActivity(ctx, models.ActivityLog{
		UserID:     userID,
		Action:     "INSPECTION_DELETE",
		TargetType: "INSPECTION",
		TargetID:   inspectionID,
	})

	return nil
}

// getOwned fetches an inspection and verifies ownership. A record owned by
// another user behaves as if it did not exist.
func (s *inspectionService) getOwned(ctx context.Context, userID, inspectionID string) (*models.Inspection, error) {
	inspection, err := s.inspectionRepo.GetByID(ctx, inspectionID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrInspectionNotFound, inspectionID)
		}
		return nil, fmt.Errorf("failed to get inspection '%s': %w", inspectionID, err)
	}
	if inspection.UserID != userID {
		return nil, fmt.Errorf("%w: '%s'", ErrInspectionNotFound, inspectionID)
	}
	return inspection, nil
}

func (s *inspectionService) recordActivity(ctx context.Context, entry models.ActivityLog) {
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

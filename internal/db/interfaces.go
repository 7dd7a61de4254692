package db

import (
	"context"
	"time"

	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

// ProfileRepository defines the interface for business-profile storage.
type ProfileRepository interface {
	GetByID(ctx context.Context, userID string) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
}

// CatalogRepository defines the interface for the persisted task catalog.
type CatalogRepository interface {
	// ListAll returns every catalog task ordered by the display order field.
	ListAll(ctx context.Context) ([]models.CatalogTask, error)
	GetByID(ctx context.Context, taskID string) (*models.CatalogTask, error)
	// UpsertAll writes the given tasks keyed by their IDs, replacing any
	// existing documents with the same ID.
	UpsertAll(ctx context.Context, tasks []models.CatalogTask) error
}

// UserTaskRepository defines the interface for per-user task records.
type UserTaskRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]*models.UserTask, error)
	GetByID(ctx context.Context, userTaskID string) (*models.UserTask, error)
	// InsertIfAbsent creates the record unless one with the same
	// (user, task) pair already exists, in which case the existing record
	// is left untouched. Returns whether a new record was written.
	InsertIfAbsent(ctx context.Context, userTask *models.UserTask) (bool, error)
	// SetCompletion updates the completion flag and timestamp of a record.
	// A nil completedAt clears the stored timestamp.
	SetCompletion(ctx context.Context, userTaskID string, completed bool, completedAt *time.Time) error
}

// LicenseRepository defines the interface for license records.
type LicenseRepository interface {
	Create(ctx context.Context, license *models.License) (string, error)
	GetByID(ctx context.Context, licenseID string) (*models.License, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.License, error)
	Update(ctx context.Context, license *models.License) error
	Delete(ctx context.Context, licenseID string) error
}

// InspectionRepository defines the interface for inspection records.
type InspectionRepository interface {
	Create(ctx context.Context, inspection *models.Inspection) (string, error)
	GetByID(ctx context.Context, inspectionID string) (*models.Inspection, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.Inspection, error)
	Update(ctx context.Context, inspection *models.Inspection) error
	Delete(ctx context.Context, inspectionID string) error
}

// ActivityRepository defines the interface for activity-log storage.
type ActivityRepository interface {
	Create(ctx context.Context, entry models.ActivityLog) error
}

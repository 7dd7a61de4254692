package core

import (
	"context"

	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

// ProfileService defines the interface for business-profile operations.
type ProfileService interface {
	// GetOrCreate retrieves a profile by user ID. If none exists, it creates
	// one with default values. The returned bool reports whether a profile
	// was created.
	GetOrCreate(ctx context.Context, userID, displayName string) (*models.Profile, bool, error)
	GetByID(ctx context.Context, userID string) (*models.Profile, error)
	// CompleteOnboarding upserts the profile from the onboarding form.
	CompleteOnboarding(ctx context.Context, userID string, req models.OnboardingRequest) (*models.Profile, error)
	Update(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.Profile, error)
}

// CatalogResult carries a catalog listing along with where it came from.
type CatalogResult struct {
	Tasks  []models.CatalogTask
	Source string // "database" or "seed"
}

// TaskService defines the interface for catalog and per-user task operations.
type TaskService interface {
	// ListCatalog returns catalog tasks matching the given state and business
	// type. The persisted catalog is consulted first; the built-in seed
	// catalog is used only when the persisted one is empty.
	ListCatalog(ctx context.Context, state, businessType string) (*CatalogResult, error)
	// SeedCatalog persists the built-in catalog and returns how many tasks
	// were written.
	SeedCatalog(ctx context.Context) (int, error)
	// AssignFromProfile assigns every catalog task matching the user's
	// profile. Already-assigned tasks keep their completion state.
	AssignFromProfile(ctx context.Context, userID string) ([]*models.UserTask, int, error)
	// AssignTasks assigns the given catalog task IDs to the user.
	AssignTasks(ctx context.Context, userID string, taskIDs []string) ([]*models.UserTask, int, error)
	// ListUserTasks returns the user's tasks joined with their catalog
	// entries, ordered by catalog order, plus a progress summary.
	ListUserTasks(ctx context.Context, userID string) ([]*models.UserTask, models.Progress, error)
	// ToggleTask sets the completion state of one of the user's tasks.
	ToggleTask(ctx context.Context, userID, userTaskID string, completed bool) (*models.UserTask, error)
	DashboardStats(ctx context.Context, userID string) (*models.DashboardStats, error)
}

// LicenseService defines the interface for license operations.
type LicenseService interface {
	Create(ctx context.Context, userID string, req models.CreateLicenseRequest) (*models.License, error)
	// List returns the user's licenses ordered by expiration date, together
	// with the subset expiring within the due-soon window.
	List(ctx context.Context, userID string) ([]*models.License, []*models.License, error)
	Update(ctx context.Context, userID, licenseID string, req models.UpdateLicenseRequest) (*models.License, error)
	Delete(ctx context.Context, userID, licenseID string) error
}

// InspectionService defines the interface for inspection operations.
type InspectionService interface {
	Create(ctx context.Context, userID string, req models.CreateInspectionRequest) (*models.Inspection, error)
	// List returns the user's inspections, together with the subset whose
	// next estimated date falls within the due-soon window. Inspections
	// without an estimate never appear in the upcoming subset.
	List(ctx context.Context, userID string) ([]*models.Inspection, []*models.Inspection, error)
	Update(ctx context.Context, userID, inspectionID string, req models.UpdateInspectionRequest) (*models.Inspection, error)
	Delete(ctx context.Context, userID, inspectionID string) error
}

// ActivityService defines the interface for activity logging.
type ActivityService interface {
	Record(ctx context.Context, entry models.ActivityLog) error
}

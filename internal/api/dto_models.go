package api

import (
	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// InitializeProfileResponse is the body of POST /users/initialize.
type InitializeProfileResponse struct {
	Profile *models.Profile `json:"profile"`
	Created bool            `json:"created"`
}

// CatalogResponse is the body of GET /tasks. Source reports whether the
// listing came from the persisted catalog or the built-in seed.
type CatalogResponse struct {
	Tasks  []models.CatalogTask `json:"tasks"`
	Source string               `json:"source"`
}

// UserTasksResponse is the body of GET /user-tasks.
type UserTasksResponse struct {
	Tasks    []*models.UserTask `json:"tasks"`
	Progress models.Progress    `json:"progress"`
}

// AssignTasksResponse is the body of POST /user-tasks and POST /onboarding.
type AssignTasksResponse struct {
	Tasks         []*models.UserTask `json:"tasks"`
	NewlyAssigned int                `json:"newlyAssigned"`
}

// OnboardingResponse is the body of POST /onboarding.
type OnboardingResponse struct {
	Profile       *models.Profile    `json:"profile"`
	Tasks         []*models.UserTask `json:"tasks"`
	NewlyAssigned int                `json:"newlyAssigned"`
}

// LicensesResponse is the body of GET /licenses. UpcomingExpirations holds
// the licenses expiring within the due-soon window.
type LicensesResponse struct {
	Licenses            []*models.License `json:"licenses"`
	UpcomingExpirations []*models.License `json:"upcomingExpirations"`
}

// InspectionsResponse is the body of GET /inspections.
type InspectionsResponse struct {
	Inspections []*models.Inspection `json:"inspections"`
	Upcoming    []*models.Inspection `json:"upcoming"`
}

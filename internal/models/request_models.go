package models

// OnboardingRequest is the body of POST /onboarding. State is the two-letter
// code; BusinessType one of the catalog business types.
type OnboardingRequest struct {
	Name         string `json:"name" binding:"required"`
	State        string `json:"state" binding:"required"`
	City         string `json:"city" binding:"required"`
	BusinessType string `json:"business_type" binding:"required"`
}

// UpdateProfileRequest is the body of PUT /users/me. Pointers distinguish a
// field that should be cleared from one that was not provided.
type UpdateProfileRequest struct {
	Name         *string `json:"name,omitempty"`
	State        *string `json:"state,omitempty"`
	City         *string `json:"city,omitempty"`
	BusinessType *string `json:"business_type,omitempty"`
}

// AssignTasksRequest is the body of POST /user-tasks: the catalog task IDs
// to materialize for the caller.
type AssignTasksRequest struct {
	TaskIDs []string `json:"taskIds" binding:"required"`
}

// ToggleTaskRequest is the body of PATCH /user-tasks/:userTaskId.
type ToggleTaskRequest struct {
	Completed bool `json:"completed"`
}

// CreateLicenseRequest is the body of POST /licenses. Dates are "2006-01-02".
type CreateLicenseRequest struct {
	LicenseName      string `json:"license_name" binding:"required"`
	ExpirationDate   string `json:"expiration_date" binding:"required"`
	RenewalFrequency string `json:"renewal_frequency,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// UpdateLicenseRequest is the body of PUT /licenses/:licenseId.
type UpdateLicenseRequest struct {
	LicenseName      *string `json:"license_name,omitempty"`
	ExpirationDate   *string `json:"expiration_date,omitempty"`
	RenewalFrequency *string `json:"renewal_frequency,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

// CreateInspectionRequest is the body of POST /inspections. Optional dates
// left empty are stored as null.
type CreateInspectionRequest struct {
	InspectionType         string `json:"inspection_type" binding:"required"`
	LastInspectionDate     string `json:"last_inspection_date,omitempty"`
	NextInspectionEstimate string `json:"next_inspection_estimate,omitempty"`
	Notes                  string `json:"notes,omitempty"`
}

// UpdateInspectionRequest is the body of PUT /inspections/:inspectionId.
// A date pointer to the empty string clears the stored date.
type UpdateInspectionRequest struct {
	InspectionType         *string `json:"inspection_type,omitempty"`
	LastInspectionDate     *string `json:"last_inspection_date,omitempty"`
	NextInspectionEstimate *string `json:"next_inspection_estimate,omitempty"`
	Notes                  *string `json:"notes,omitempty"`
}

package models

import "time"

// GeneralAxis is the wildcard value on the state and business-type axes of
// a catalog task. A task tagged "general" on an axis applies to every user
// on that axis.
const GeneralAxis = "general"

// CatalogTask is an immutable reference task describing one business setup
// or compliance step. Tasks are tagged with the state and business type they
// apply to; "general" on either axis means the task applies regardless.
type CatalogTask struct {
	ID                string     `json:"id" firestore:"-"` // document ID
	Title             string     `json:"title" firestore:"title"`
	Description       string     `json:"description" firestore:"description"`
	DetailedSteps     []string   `json:"detailed_steps,omitempty" firestore:"detailedSteps,omitempty"`
	State             string     `json:"state" firestore:"state"`
	BusinessType      string     `json:"business_type" firestore:"businessType"`
	CostEstimate      string     `json:"cost_estimate" firestore:"costEstimate"`
	CostDetails       string     `json:"cost_details,omitempty" firestore:"costDetails,omitempty"`
	TimelineEstimate  string     `json:"timeline_estimate" firestore:"timelineEstimate"`
	TimelineDetails   string     `json:"timeline_details,omitempty" firestore:"timelineDetails,omitempty"`
	RequiredDocuments []string   `json:"required_documents" firestore:"requiredDocuments"`
	OfficialLink      *string    `json:"official_link" firestore:"officialLink"`
	Category          string     `json:"category" firestore:"category"`
	Order             int        `json:"order" firestore:"order"`
}

// UserTask is a per-user instantiation of a catalog task. The pair
// (UserID, TaskID) is unique; the repository derives the document ID from it
// so repeated assignment cannot create duplicates.
type UserTask struct {
	ID          string     `json:"id" firestore:"-"` // document ID, "<userID>_<taskID>"
	UserID      string     `json:"user_id" firestore:"userId"`
	TaskID      string     `json:"task_id" firestore:"taskId"`
	Completed   bool       `json:"completed" firestore:"completed"`
	CompletedAt *time.Time `json:"completed_at" firestore:"completedAt"`
	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt,serverTimestamp"`

	// Task carries the joined catalog task on reads. Never persisted.
	Task *CatalogTask `json:"task,omitempty" firestore:"-"`
}

// Progress summarizes completion over a set of user tasks.
type Progress struct {
	CompletedCount int `json:"completed_count"`
	TotalCount     int `json:"total_count"`
	Percentage     int `json:"percentage"`
}

// DashboardStats aggregates the numbers shown on the dashboard landing page.
type DashboardStats struct {
	TotalTasks        int `json:"totalTasks"`
	CompletedTasks    int `json:"completedTasks"`
	UpcomingDeadlines int `json:"upcomingDeadlines"`
	ComplianceAlerts  int `json:"complianceAlerts"`
}

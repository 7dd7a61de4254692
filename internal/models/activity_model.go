package models

import "time"

// ActivityLog records a mutating user action (onboarding, task toggle,
// license or inspection write) for support and troubleshooting. Writing an
// activity entry must never block or fail the operation it describes.
type ActivityLog struct {
	ID         string                 `json:"id" firestore:"-"`
	Timestamp  time.Time              `json:"timestamp" firestore:"timestamp,serverTimestamp"`
	UserID     string                 `json:"userId" firestore:"userId"`
	Action     string                 `json:"action" firestore:"action"` // e.g. "ONBOARDING_COMPLETE", "TASK_TOGGLE", "LICENSE_CREATE"
	TargetType string                 `json:"targetType,omitempty" firestore:"targetType,omitempty"`
	TargetID   string                 `json:"targetId,omitempty" firestore:"targetId,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty" firestore:"details,omitempty"`
}

package models

import "time"

// Inspection tracks a recurring regulatory inspection. Both dates are
// optional: a user may record an inspection type before the first visit has
// been scheduled. An inspection without a next-inspection estimate is simply
// excluded from deadline alerts.
type Inspection struct {
	ID                     string     `json:"id" firestore:"-"` // document ID
	UserID                 string     `json:"user_id" firestore:"userId"`
	InspectionType         string     `json:"inspection_type" firestore:"inspectionType"`
	LastInspectionDate     *time.Time `json:"last_inspection_date" firestore:"lastInspectionDate"`
	NextInspectionEstimate *time.Time `json:"next_inspection_estimate" firestore:"nextInspectionEstimate"`
	Notes                  string     `json:"notes" firestore:"notes"`
	CreatedAt              time.Time  `json:"created_at" firestore:"createdAt,serverTimestamp"`
}

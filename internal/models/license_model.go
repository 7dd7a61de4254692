package models

import "time"

// License tracks a business license or permit and its expiration. A license
// belongs to exactly one user and is only visible to that user.
type License struct {
	ID               string    `json:"id" firestore:"-"` // document ID
	UserID           string    `json:"user_id" firestore:"userId"`
	LicenseName      string    `json:"license_name" firestore:"licenseName"`
	ExpirationDate   time.Time `json:"expiration_date" firestore:"expirationDate"`
	RenewalFrequency string    `json:"renewal_frequency" firestore:"renewalFrequency"` // e.g. "annual", "biennial"
	Notes            string    `json:"notes" firestore:"notes"`
	CreatedAt        time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
}

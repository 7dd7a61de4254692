package models

import "time"

// Subscription plans recognized by the backend.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// Profile represents a user's business profile. There is exactly one profile
// per user and the Firebase Auth UID is used as the document ID.
type Profile struct {
	ID               string    `json:"id" firestore:"-"` // Firebase Auth UID, the document ID
	Name             string    `json:"name" firestore:"name"`
	State            string    `json:"state" firestore:"state"` // two-letter code, or "" until onboarding
	City             string    `json:"city" firestore:"city"`
	BusinessType     string    `json:"business_type" firestore:"businessType"`
	SubscriptionPlan string    `json:"subscription_plan" firestore:"subscriptionPlan"`
	CreatedAt        time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
	UpdatedAt        time.Time `json:"updated_at" firestore:"updatedAt,serverTimestamp"`
}

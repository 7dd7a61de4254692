package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"

	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

const activityCollection = "activity_logs"

// firestoreActivityRepository implements ActivityRepository using Firestore.
type firestoreActivityRepository struct {
	client *firestore.Client
}

// NewFirestoreActivityRepository creates a new activity-log repository.
func NewFirestoreActivityRepository(client *firestore.Client) ActivityRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ActivityRepository.")
	}
	return &firestoreActivityRepository{client: client}
}

func (r *firestoreActivityRepository) Create(ctx context.Context, entry models.ActivityLog) error {
	docRef := r.client.Collection(activityCollection).NewDoc()
	entry.ID = docRef.ID

	if _, err := docRef.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to create activity log entry: %w", err)
	}
	return nil
}

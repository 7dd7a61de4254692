package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

const tasksCollection = "tasks"

// firestoreCatalogRepository implements CatalogRepository using Firestore.
type firestoreCatalogRepository struct {
	client *firestore.Client
}

// NewFirestoreCatalogRepository creates a new catalog repository.
func NewFirestoreCatalogRepository(client *firestore.Client) CatalogRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for CatalogRepository.")
	}
	return &firestoreCatalogRepository{client: client}
}

// ListAll fetches the whole persisted catalog ordered by display order. The
// catalog is small reference data; state/business-type filtering happens in
// memory in the service layer, which also keeps the matching rule in one
// place instead of split across Firestore queries.
func (r *firestoreCatalogRepository) ListAll(ctx context.Context) ([]models.CatalogTask, error) {
	iter := r.client.Collection(tasksCollection).OrderBy("order", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var tasks []models.CatalogTask
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate catalog tasks: %w", err)
		}

		var task models.CatalogTask
		if err := doc.DataTo(&task); err != nil {
			log.Printf("Error decoding catalog task (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		task.ID = doc.Ref.ID
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *firestoreCatalogRepository) GetByID(ctx context.Context, taskID string) (*models.CatalogTask, error) {
	if taskID == "" {
		return nil, errors.New("taskID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(tasksCollection).Doc(taskID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("catalog task with ID '%s' not found: %w", taskID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get catalog task with ID '%s': %w", taskID, err)
	}

	var task models.CatalogTask
	if err := docSnap.DataTo(&task); err != nil {
		return nil, fmt.Errorf("failed to decode catalog task data for ID '%s': %w", taskID, err)
	}
	task.ID = docSnap.Ref.ID

	return &task, nil
}

// UpsertAll writes every task keyed by its stable ID, so seeding the catalog
// repeatedly converges instead of accumulating duplicates.
func (r *firestoreCatalogRepository) UpsertAll(ctx context.Context, tasks []models.CatalogTask) error {
	for _, task := range tasks {
		if task.ID == "" {
			return errors.New("catalog task ID cannot be empty for UpsertAll operation")
		}
		if _, err := r.client.Collection(tasksCollection).Doc(task.ID).Set(ctx, task); err != nil {
			return fmt.Errorf("failed to upsert catalog task '%s': %w", task.ID, err)
		}
	}
	return nil
}

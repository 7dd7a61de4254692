package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

const userTasksCollection = "user_tasks"

// UserTaskDocID derives the document ID for a user task from its owning
// user and catalog task. The deterministic ID is what makes (user, task)
// unique and assignment idempotent at the store level.
func UserTaskDocID(userID, taskID string) string {
	return userID + "_" + taskID
}

// firestoreUserTaskRepository implements UserTaskRepository using Firestore.
type firestoreUserTaskRepository struct {
	client *firestore.Client
}

// NewFirestoreUserTaskRepository creates a new user-task repository.
func NewFirestoreUserTaskRepository(client *firestore.Client) UserTaskRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for UserTaskRepository.")
	}
	return &firestoreUserTaskRepository{client: client}
}

func (r *firestoreUserTaskRepository) GetByUserID(ctx context.Context, userID string) ([]*models.UserTask, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByUserID operation")
	}

	iter := r.client.Collection(userTasksCollection).Where("userId", "==", userID).Documents(ctx)
	defer iter.Stop()

	var userTasks []*models.UserTask
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate user tasks for user '%s': %w", userID, err)
		}

		var ut models.UserTask
		if err := doc.DataTo(&ut); err != nil {
			log.Printf("Error decoding user task (ID: %s) for user '%s': %v. Skipping.", doc.Ref.ID, userID, err)
			continue
		}
		ut.ID = doc.Ref.ID
		userTasks = append(userTasks, &ut)
	}

	return userTasks, nil
}

func (r *firestoreUserTaskRepository) GetByID(ctx context.Context, userTaskID string) (*models.UserTask, error) {
	if userTaskID == "" {
		return nil, errors.New("userTaskID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(userTasksCollection).Doc(userTaskID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user task with ID '%s' not found: %w", userTaskID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user task with ID '%s': %w", userTaskID, err)
	}

	var ut models.UserTask
	if err := docSnap.DataTo(&ut); err != nil {
		return nil, fmt.Errorf("failed to decode user task data for ID '%s': %w", userTaskID, err)
	}
	ut.ID = docSnap.Ref.ID

	return &ut, nil
}

// InsertIfAbsent creates the record under its deterministic document ID.
// A record that already exists is left exactly as it is, preserving any
// completion state a concurrent or earlier assignment run wrote.
func (r *firestoreUserTaskRepository) InsertIfAbsent(ctx context.Context, userTask *models.UserTask) (bool, error) {
	if userTask.UserID == "" || userTask.TaskID == "" {
		return false, errors.New("userID and taskID cannot be empty for InsertIfAbsent operation")
	}

	docID := UserTaskDocID(userTask.UserID, userTask.TaskID)
	userTask.ID = docID

	_, err := r.client.Collection(userTasksCollection).Doc(docID).Create(ctx, userTask)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return false, nil
		}
		return false, fmt.Errorf("failed to create user task '%s': %w", docID, err)
	}
	return true, nil
}

func (r *firestoreUserTaskRepository) SetCompletion(ctx context.Context, userTaskID string, completed bool, completedAt *time.Time) error {
	if userTaskID == "" {
		return errors.New("userTaskID cannot be empty for SetCompletion operation")
	}

	_, err := r.client.Collection(userTasksCollection).Doc(userTaskID).Update(ctx, []firestore.Update{
		{Path: "completed", Value: completed},
		{Path: "completedAt", Value: completedAt},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("user task with ID '%s' not found: %w", userTaskID, ErrNotFound)
		}
		return fmt.Errorf("failed to update completion of user task '%s': %w", userTaskID, err)
	}
	return nil
}

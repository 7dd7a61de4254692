package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

const inspectionsCollection = "inspections"

// firestoreInspectionRepository implements InspectionRepository using Firestore.
type firestoreInspectionRepository struct {
	client *firestore.Client
}

// NewFirestoreInspectionRepository creates a new inspection repository.
func NewFirestoreInspectionRepository(client *firestore.Client) InspectionRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for InspectionRepository.")
	}
	return &firestoreInspectionRepository{client: client}
}

func (r *firestoreInspectionRepository) Create(ctx context.Context, inspection *models.Inspection) (string, error) {
	if inspection.UserID == "" {
		return "", errors.New("inspection userID cannot be empty for Create operation")
	}
	if inspection.ID == "" {
		inspection.ID = uuid.NewString()
	}

	_, err := r.client.Collection(inspectionsCollection).Doc(inspection.ID).Create(ctx, inspection)
	if err != nil {
		return "", fmt.Errorf("failed to create inspection: %w", err)
	}
	return inspection.ID, nil
}

func (r *firestoreInspectionRepository) GetByID(ctx context.Context, inspectionID string) (*models.Inspection, error) {
	if inspectionID == "" {
		return nil, errors.New("inspectionID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(inspectionsCollection).Doc(inspectionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("inspection with ID '%s' not found: %w", inspectionID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get inspection with ID '%s': %w", inspectionID, err)
	}

	var inspection models.Inspection
	if err := docSnap.DataTo(&inspection); err != nil {
		return nil, fmt.Errorf("failed to decode inspection data for ID '%s': %w", inspectionID, err)
	}
	inspection.ID = docSnap.Ref.ID

	return &inspection, nil
}

// GetByUserID returns the user's inspections, soonest estimate first.
// Records without a next-inspection estimate sort before dated ones; the
// service layer skips them when building alert lists.
func (r *firestoreInspectionRepository) GetByUserID(ctx context.Context, userID string) ([]*models.Inspection, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByUserID operation")
	}

	iter := r.client.Collection(inspectionsCollection).
		Where("userId", "==", userID).
		OrderBy("nextInspectionEstimate", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var inspections []*models.Inspection
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate inspections for user '%s': %w", userID, err)
		}

		var inspection models.Inspection
		if err := doc.DataTo(&inspection); err != nil {
			log.Printf("Error decoding inspection (ID: %s) for user '%s': %v. Skipping.", doc.Ref.ID, userID, err)
			continue
		}
		inspection.ID = doc.Ref.ID
		inspections = append(inspections, &inspection)
	}

	return inspections, nil
}

func (r *firestoreInspectionRepository) Update(ctx context.Context, inspection *models.Inspection) error {
	if inspection.ID == "" {
		return errors.New("inspection ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(inspectionsCollection).Doc(inspection.ID).Set(ctx, inspection, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update inspection with ID '%s': %w", inspection.ID, err)
	}
	return nil
}

func (r *firestoreInspectionRepository) Delete(ctx context.Context, inspectionID string) error {
	if inspectionID == "" {
		return errors.New("inspectionID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(inspectionsCollection).Doc(inspectionID).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("inspection with ID '%s' not found for deletion: %w", inspectionID, ErrNotFound)
		}
		return fmt.Errorf("failed to delete inspection with ID '%s': %w", inspectionID, err)
	}
	return nil
}

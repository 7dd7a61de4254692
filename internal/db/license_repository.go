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

const licensesCollection = "licenses"

// firestoreLicenseRepository implements LicenseRepository using Firestore.
type firestoreLicenseRepository struct {
	client *firestore.Client
}

// NewFirestoreLicenseRepository creates a new license repository.
func NewFirestoreLicenseRepository(client *firestore.Client) LicenseRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for LicenseRepository.")
	}
	return &firestoreLicenseRepository{client: client}
}

func (r *firestoreLicenseRepository) Create(ctx context.Context, license *models.License) (string, error) {
	if license.UserID == "" {
		return "", errors.New("license userID cannot be empty for Create operation")
	}
	if license.ID == "" {
		license.ID = uuid.NewString()
	}

	_, err := r.client.Collection(licensesCollection).Doc(license.ID).Create(ctx, license)
	if err != nil {
		return "", fmt.Errorf("failed to create license: %w", err)
	}
	return license.ID, nil
}

func (r *firestoreLicenseRepository) GetByID(ctx context.Context, licenseID string) (*models.License, error) {
	if licenseID == "" {
		return nil, errors.New("licenseID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(licensesCollection).Doc(licenseID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("license with ID '%s' not found: %w", licenseID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get license with ID '%s': %w", licenseID, err)
	}

	var license models.License
	if err := docSnap.DataTo(&license); err != nil {
		return nil, fmt.Errorf("failed to decode license data for ID '%s': %w", licenseID, err)
	}
	license.ID = docSnap.Ref.ID

	return &license, nil
}

// GetByUserID returns the user's licenses ordered soonest expiration first.
func (r *firestoreLicenseRepository) GetByUserID(ctx context.Context, userID string) ([]*models.License, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByUserID operation")
	}

	iter := r.client.Collection(licensesCollection).
		Where("userId", "==", userID).
		OrderBy("expirationDate", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var licenses []*models.License
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate licenses for user '%s': %w", userID, err)
		}

		var license models.License
		if err := doc.DataTo(&license); err != nil {
			log.Printf("Error decoding license (ID: %s) for user '%s': %v. Skipping.", doc.Ref.ID, userID, err)
			continue
		}
		license.ID = doc.Ref.ID
		licenses = append(licenses, &license)
	}

	return licenses, nil
}

func (r *firestoreLicenseRepository) Update(ctx context.Context, license *models.License) error {
	if license.ID == "" {
		return errors.New("license ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(licensesCollection).Doc(license.ID).Set(ctx, license, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update license with ID '%s': %w", license.ID, err)
	}
	return nil
}

func (r *firestoreLicenseRepository) Delete(ctx context.Context, licenseID string) error {
	if licenseID == "" {
		return errors.New("licenseID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(licensesCollection).Doc(licenseID).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("license with ID '%s' not found for deletion: %w", licenseID, ErrNotFound)
		}
		return fmt.Errorf("failed to delete license with ID '%s': %w", licenseID, err)
	}
	return nil
}

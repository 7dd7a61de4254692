package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/ojharitesh/Launch-Navigator/internal/db"
	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

func newTestInspectionService(store *db.MemoryStore) InspectionService {
	return NewInspectionService(store.Inspections(), NewActivityService(store.Activity()), 30, zap.NewNop())
}

func TestCreateInspectionOptionalDates(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestInspectionService(store)

	inspection, err := svc.Create(context.Background(), "user-1", models.CreateInspectionRequest{
		InspectionType: "fire",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if inspection.LastInspectionDate != nil {
		t.Error("absent last_inspection_date should be stored as nil")
	}
	if inspection.NextInspectionEstimate != nil {
		t.Error("absent next_inspection_estimate should be stored as nil")
	}
}

func TestCreateInspectionValidation(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestInspectionService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, "user-1", models.CreateInspectionRequest{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing inspection_type should fail validation, got %v", err)
	}

	_, err = svc.Create(ctx, "user-1", models.CreateInspectionRequest{
		InspectionType:         "fire",
		NextInspectionEstimate: "someday",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("malformed next_inspection_estimate should fail validation, got %v", err)
	}
}

func TestListInspectionsUpcomingSkipsMissingEstimate(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestInspectionService(store)
	ctx := context.Background()

	now := time.Now()
	within := now.AddDate(0, 0, 10).Format("2006-01-02")

	if _, err := svc.Create(ctx, "user-1", models.CreateInspectionRequest{InspectionType: "fire", NextInspectionEstimate: within}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, "user-1", models.CreateInspectionRequest{InspectionType: "health"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	inspections, upcoming, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(inspections) != 2 {
		t.Fatalf("listed %d inspections, want 2", len(inspections))
	}
	if len(upcoming) != 1 || upcoming[0].InspectionType != "fire" {
		t.Errorf("upcoming = %d entries, want only the dated inspection", len(upcoming))
	}
}

func TestUpdateInspectionClearsDate(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestInspectionService(store)
	ctx := context.Background()

	inspection, err := svc.Create(ctx, "user-1", models.CreateInspectionRequest{
		InspectionType:         "fire",
		NextInspectionEstimate: "2026-04-01",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	empty := ""
	updated, err := svc.Update(ctx, "user-1", inspection.ID, models.UpdateInspectionRequest{
		NextInspectionEstimate: &empty,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.NextInspectionEstimate != nil {
		t.Error("an empty date pointer should clear the stored estimate")
	}
}

func TestInspectionOwnership(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestInspectionService(store)
	ctx := context.Background()

	inspection, err := svc.Create(ctx, "owner", models.CreateInspectionRequest{InspectionType: "fire"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	kind := "health"
	if _, err := svc.Update(ctx, "intruder", inspection.ID, models.UpdateInspectionRequest{InspectionType: &kind}); !errors.Is(err, ErrInspectionNotFound) {
		t.Errorf("updating another user's inspection should behave as not found, got %v", err)
	}
	if err := svc.Delete(ctx, "intruder", inspection.ID); !errors.Is(err, ErrInspectionNotFound) {
		t.Errorf("deleting another user's inspection should behave as not found, got %v", err)
	}
	if err := svc.Delete(ctx, "owner", inspection.ID); err != nil {
		t.Fatalf("owner Delete: %v", err)
	}
}

func TestInspectionStoreFailure(t *testing.T) {
	store := db.NewMemoryStore().WithError(errors.New("backend unavailable"))
	svc := newTestInspectionService(store)

	_, err := svc.Create(context.Background(), "user-1", models.CreateInspectionRequest{InspectionType: "fire"})
	if err == nil {
		t.Fatal("a store failure should surface as an error")
	}
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInspectionNotFound) {
		t.Errorf("store failures must not map to validation or not-found errors, got %v", err)
	}
}

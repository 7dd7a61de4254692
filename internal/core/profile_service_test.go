package core

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/ojharitesh/Launch-Navigator/internal/db"
	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

func newTestProfileService(store *db.MemoryStore) ProfileService {
	return NewProfileService(store.Profiles(), NewActivityService(store.Activity()), zap.NewNop())
}

func TestGetOrCreateDefaults(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestProfileService(store)
	ctx := context.Background()

	profile, created, err := svc.GetOrCreate(ctx, "user-1", "Rosa's Tacos")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if !created {
		t.Error("first call should create the profile")
	}
	if profile.State != "" {
		t.Errorf("new profile state = %q, want empty", profile.State)
	}
	if profile.BusinessType != models.GeneralAxis {
		t.Errorf("new profile businessType = %q, want %q", profile.BusinessType, models.GeneralAxis)
	}
	if profile.SubscriptionPlan != models.PlanFree {
		t.Errorf("new profile plan = %q, want %q", profile.SubscriptionPlan, models.PlanFree)
	}

	again, created, err := svc.GetOrCreate(ctx, "user-1", "Ignored")
	if err != nil {
		t.Fatalf("second GetOrCreate: %v", err)
	}
	if created {
		t.Error("second call should not create a profile")
	}
	if again.Name != "Rosa's Tacos" {
		t.Errorf("second call name = %q, want the original", again.Name)
	}
}

func TestGetByIDMissing(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestProfileService(store)

	_, err := svc.GetByID(context.Background(), "nobody")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestCompleteOnboarding(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestProfileService(store)
	ctx := context.Background()

	req := models.OnboardingRequest{
		Name:         "Rosa's Tacos",
		State:        "California",
		City:         "Oakland",
		BusinessType: "restaurant",
	}
	profile, err := svc.CompleteOnboarding(ctx, "user-1", req)
	if err != nil {
		t.Fatalf("CompleteOnboarding: %v", err)
	}
	if profile.State != "CA" {
		t.Errorf("state = %q, want the full name resolved to CA", profile.State)
	}
	if profile.BusinessType != "restaurant" {
		t.Errorf("businessType = %q, want restaurant", profile.BusinessType)
	}

	// A retry with the same payload lands in the same state.
	retried, err := svc.CompleteOnboarding(ctx, "user-1", req)
	if err != nil {
		t.Fatalf("retried CompleteOnboarding: %v", err)
	}
	if *retried != *profile {
		t.Errorf("retry produced a different profile: %+v vs %+v", retried, profile)
	}

	entries := store.ActivityEntries()
	if len(entries) == 0 || entries[0].Action != "ONBOARDING_COMPLETE" {
		t.Error("onboarding should record an ONBOARDING_COMPLETE activity entry")
	}
}

func TestCompleteOnboardingValidation(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestProfileService(store)
	ctx := context.Background()

	_, err := svc.CompleteOnboarding(ctx, "user-1", models.OnboardingRequest{
		Name: "X", State: "Atlantis", City: "Y", BusinessType: "restaurant",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown state should fail validation, got %v", err)
	}

	_, err = svc.CompleteOnboarding(ctx, "user-1", models.OnboardingRequest{
		Name: "X", State: "CA", City: "Y", BusinessType: "piracy",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown business type should fail validation, got %v", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestProfileService(store)
	ctx := context.Background()

	if _, _, err := svc.GetOrCreate(ctx, "user-1", "Rosa's Tacos"); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	city := "Fresno"
	profile, err := svc.Update(ctx, "user-1", models.UpdateProfileRequest{City: &city})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if profile.City != "Fresno" {
		t.Errorf("city = %q, want Fresno", profile.City)
	}
	if profile.Name != "Rosa's Tacos" {
		t.Errorf("name changed unexpectedly to %q", profile.Name)
	}

	badType := "piracy"
	if _, err := svc.Update(ctx, "user-1", models.UpdateProfileRequest{BusinessType: &badType}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown business type should fail validation, got %v", err)
	}
}

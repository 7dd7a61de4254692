package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/ojharitesh/Launch-Navigator/internal/catalog"
	"github.com/ojharitesh/Launch-Navigator/internal/db"
	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

func newTestTaskService(store *db.MemoryStore) TaskService {
	activity := NewActivityService(store.Activity())
	return NewTaskService(
		store.Catalog(),
		store.UserTasks(),
		store.Profiles(),
		store.Licenses(),
		store.Inspections(),
		activity,
		30,
		zap.NewNop(),
	)
}

func seedProfile(t *testing.T, store *db.MemoryStore, userID, state, businessType string) {
	t.Helper()
	err := store.Create(context.Background(), &models.Profile{
		ID:               userID,
		Name:             "Test Business",
		State:            state,
		BusinessType:     businessType,
		SubscriptionPlan: models.PlanFree,
	})
	if err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
}

func TestListCatalogFallsBackToSeed(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestTaskService(store)

	result, err := svc.ListCatalog(context.Background(), "CA", "restaurant")
	if err != nil {
		t.Fatalf("ListCatalog: %v", err)
	}
	if result.Source != SourceSeed {
		t.Errorf("source = %q, want %q", result.Source, SourceSeed)
	}
	if len(result.Tasks) == 0 {
		t.Error("expected seed tasks for a CA restaurant")
	}
}

func TestListCatalogPrefersDatabase(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestTaskService(store)

	dbTask := models.CatalogTask{
		ID:           "custom-task",
		Title:        "Custom Task",
		State:        models.GeneralAxis,
		BusinessType: models.GeneralAxis,
		Order:        1,
	}
	if err := store.Catalog().UpsertAll(context.Background(), []models.CatalogTask{dbTask}); err != nil {
		t.Fatalf("UpsertAll: %v", err)
	}

	result, err := svc.ListCatalog(context.Background(), "CA", "restaurant")
	if err != nil {
		t.Fatalf("ListCatalog: %v", err)
	}
	if result.Source != SourceDatabase {
		t.Errorf("source = %q, want %q", result.Source, SourceDatabase)
	}
	// The seed catalog must not leak in alongside the persisted one.
	if len(result.Tasks) != 1 || result.Tasks[0].ID != "custom-task" {
		t.Errorf("expected only the persisted task, got %d tasks", len(result.Tasks))
	}
}

func TestSeedCatalogPersists(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestTaskService(store)

	count, err := svc.SeedCatalog(context.Background())
	if err != nil {
		t.Fatalf("SeedCatalog: %v", err)
	}
	if count != len(catalog.SeedTasks) {
		t.Errorf("seeded %d tasks, want %d", count, len(catalog.SeedTasks))
	}

	result, err := svc.ListCatalog(context.Background(), "CA", "restaurant")
	if err != nil {
		t.Fatalf("ListCatalog: %v", err)
	}
	if result.Source != SourceDatabase {
		t.Errorf("source after seeding = %q, want %q", result.Source, SourceDatabase)
	}
}

func TestAssignFromProfileMatchesStrictly(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestTaskService(store)
	seedProfile(t, store, "user-1", "CA", "restaurant")

	tasks, created, err := svc.AssignFromProfile(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("AssignFromProfile: %v", err)
	}

	want := catalog.Filter(catalog.SeedTasks, "CA", "restaurant")
	if created != len(want) {
		t.Errorf("created %d tasks, want %d", created, len(want))
	}
	if len(tasks) != len(want) {
		t.Fatalf("returned %d tasks, want %d", len(tasks), len(want))
	}
	for _, ut := range tasks {
		if ut.Task == nil {
			t.Errorf("user task %q is missing its catalog join", ut.ID)
			continue
		}
		if !catalog.Matches(*ut.Task, "CA", "restaurant") {
			t.Errorf("task %q does not match a CA restaurant", ut.TaskID)
		}
	}
}

func TestAssignFromProfileWithoutProfile(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestTaskService(store)

	_, _, err := svc.AssignFromProfile(context.Background(), "nobody")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestAssignTasksIdempotentPreservesCompletion(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestTaskService(store)

	tasks, created, err := svc.AssignTasks(context.Background(), "user-1", []string{"general-ein"})
	if err != nil {
		t.Fatalf("AssignTasks: %v", err)
	}
	if created != 1 || len(tasks) != 1 {
		t.Fatalf("first assign: created=%d tasks=%d, want 1 and 1", created, len(tasks))
	}

	toggled, err := svc.ToggleTask(context.Background(), "user-1", tasks[0].ID, true)
	if err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}
	if !toggled.Completed || toggled.CompletedAt == nil {
		t.Fatal("toggle should mark the task completed with a timestamp")
	}

	tasks, created, err = svc.AssignTasks(context.Background(), "user-1", []string{"general-ein"})
	if err != nil {
		t.Fatalf("second AssignTasks: %v", err)
	}
	if created != 0 {
		t.Errorf("second assign created %d tasks, want 0", created)
	}
	if len(tasks) != 1 {
		t.Fatalf("second assign returned %d tasks, want 1", len(tasks))
	}
	if !tasks[0].Completed {
		t.Error("re-assignment must preserve the completed state")
	}
}

func TestAssignTasksUnknownID(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestTaskService(store)

	_, _, err := svc.AssignTasks(context.Background(), "user-1", []string{"no-such-task"})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestToggleTaskRoundTrip(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestTaskService(store)

	tasks, _, err := svc.AssignTasks(context.Background(), "user-1", []string{"general-ein"})
	if err != nil {
		t.Fatalf("AssignTasks: %v", err)
	}
	id := tasks[0].ID

	if _, err := svc.ToggleTask(context.Background(), "user-1", id, true); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	ut, err := svc.ToggleTask(context.Background(), "user-1", id, false)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if ut.Completed {
		t.Error("task should be incomplete after toggling back")
	}
	if ut.CompletedAt != nil {
		t.Error("toggling back should clear the completion timestamp")
	}
}

func TestToggleTaskOwnership(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestTaskService(store)

	tasks, _, err := svc.AssignTasks(context.Background(), "owner", []string{"general-ein"})
	if err != nil {
		t.Fatalf("AssignTasks: %v", err)
	}

	_, err = svc.ToggleTask(context.Background(), "intruder", tasks[0].ID, true)
	if !errors.Is(err, ErrUserTaskNotFound) {
		t.Errorf("toggling another user's task should behave as not found, got %v", err)
	}
}

func TestListUserTasksProgress(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestTaskService(store)

	_, progress, err := svc.ListUserTasks(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListUserTasks: %v", err)
	}
	if progress.Percentage != 0 || progress.TotalCount != 0 {
		t.Errorf("empty progress = %+v, want zeros", progress)
	}

	ids := []string{"general-ein", "general-structure", "general-name"}
	tasks, _, err := svc.AssignTasks(context.Background(), "user-1", ids)
	if err != nil {
		t.Fatalf("AssignTasks: %v", err)
	}

	if _, err := svc.ToggleTask(context.Background(), "user-1", tasks[0].ID, true); err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}
	_, progress, err = svc.ListUserTasks(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListUserTasks: %v", err)
	}
	if progress.CompletedCount != 1 || progress.TotalCount != 3 || progress.Percentage != 33 {
		t.Errorf("progress after 1/3 = %+v, want 1/3 at 33%%", progress)
	}

	if _, err := svc.ToggleTask(context.Background(), "user-1", tasks[1].ID, true); err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}
	_, progress, err = svc.ListUserTasks(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListUserTasks: %v", err)
	}
	if progress.Percentage != 67 {
		t.Errorf("progress after 2/3 = %d%%, want 67%% (round half up)", progress.Percentage)
	}
}

func TestListUserTasksOrderedByCatalog(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestTaskService(store)

	// Assign out of catalog order.
	_, _, err := svc.AssignTasks(context.Background(), "user-1", []string{"general-structure", "general-ein"})
	if err != nil {
		t.Fatalf("AssignTasks: %v", err)
	}

	tasks, _, err := svc.ListUserTasks(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListUserTasks: %v", err)
	}
	for i := 1; i < len(tasks); i++ {
		if tasks[i-1].Task.Order > tasks[i].Task.Order {
			t.Errorf("tasks out of order: %q (order %d) before %q (order %d)",
				tasks[i-1].TaskID, tasks[i-1].Task.Order, tasks[i].TaskID, tasks[i].Task.Order)
		}
	}
}

func TestDashboardStats(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newTestTaskService(store)
	ctx := context.Background()

	tasks, _, err := svc.AssignTasks(ctx, "user-1", []string{"general-ein", "general-structure"})
	if err != nil {
		t.Fatalf("AssignTasks: %v", err)
	}
	if _, err := svc.ToggleTask(ctx, "user-1", tasks[0].ID, true); err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}

	now := time.Now()
	soon := now.AddDate(0, 0, 5)
	far := now.AddDate(0, 0, 60)
	past := now.AddDate(0, 0, -10)
	for _, expiration := range []time.Time{soon, far, past} {
		_, err := store.Licenses().Create(ctx, &models.License{
			UserID:         "user-1",
			LicenseName:    "Permit",
			ExpirationDate: expiration,
		})
		if err != nil {
			t.Fatalf("license Create: %v", err)
		}
	}
	// An inspection without an estimate must not count anywhere.
	if _, err := store.Inspections().Create(ctx, &models.Inspection{
		UserID:         "user-1",
		InspectionType: "fire",
	}); err != nil {
		t.Fatalf("inspection Create: %v", err)
	}

	stats, err := svc.DashboardStats(ctx, "user-1")
	if err != nil {
		t.Fatalf("DashboardStats: %v", err)
	}
	if stats.TotalTasks != 2 || stats.CompletedTasks != 1 {
		t.Errorf("task counts = %d/%d, want 1/2", stats.CompletedTasks, stats.TotalTasks)
	}
	if stats.UpcomingDeadlines != 1 {
		t.Errorf("upcomingDeadlines = %d, want 1 (only the 5-day license)", stats.UpcomingDeadlines)
	}
	if stats.ComplianceAlerts != 1 {
		t.Errorf("complianceAlerts = %d, want 1 (only the expired license)", stats.ComplianceAlerts)
	}
}

func TestProgressRounding(t *testing.T) {
	cases := []struct {
		completed int
		total     int
		want      int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{1, 8, 13},
		{3, 3, 100},
	}
	for _, tc := range cases {
		tasks := make([]*models.UserTask, tc.total)
		for i := range tasks {
			tasks[i] = &models.UserTask{Completed: i < tc.completed}
		}
		if got := progressOf(tasks); got.Percentage != tc.want {
			t.Errorf("progressOf(%d/%d) = %d%%, want %d%%", tc.completed, tc.total, got.Percentage, tc.want)
		}
	}
}

package catalog

import (
	"testing"

	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

func task(id, state, businessType string, order int) models.CatalogTask {
	return models.CatalogTask{ID: id, Title: id, State: state, BusinessType: businessType, Order: order}
}

func TestMatchesBothAxes(t *testing.T) {
	cases := []struct {
		name      string
		taskState string
		taskType  string
		userState string
		userType  string
		want      bool
	}{
		{"general task matches anyone", "general", "general", "CA", "restaurant", true},
		{"state task matches same state", "CA", "general", "CA", "restaurant", true},
		{"state task rejects other state", "TX", "general", "CA", "restaurant", false},
		{"type task matches same type", "general", "restaurant", "CA", "restaurant", true},
		{"type task rejects other type", "general", "retail", "CA", "restaurant", false},
		{"both axes must match", "CA", "restaurant", "CA", "retail", false},
		{"exact match on both axes", "CA", "restaurant", "CA", "restaurant", true},
		{"empty user state only matches general tasks", "CA", "general", "", "restaurant", false},
		{"empty user state still gets general tasks", "general", "restaurant", "", "restaurant", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tk := task("t", tc.taskState, tc.taskType, 0)
			if got := Matches(tk, tc.userState, tc.userType); got != tc.want {
				t.Errorf("Matches(task{%s,%s}, user{%s,%s}) = %v, want %v",
					tc.taskState, tc.taskType, tc.userState, tc.userType, got, tc.want)
			}
		})
	}
}

func TestFilterCaliforniaRestaurant(t *testing.T) {
	tasks := []models.CatalogTask{
		task("general-general", "general", "general", 1),
		task("ca-general", "CA", "general", 2),
		task("general-restaurant", "general", "restaurant", 3),
		task("ca-restaurant", "CA", "restaurant", 4),
		task("tx-restaurant", "TX", "restaurant", 5),
		task("ca-retail", "CA", "retail", 6),
	}

	got := Filter(tasks, "CA", "restaurant")

	want := []string{"general-general", "ca-general", "general-restaurant", "ca-restaurant"}
	if len(got) != len(want) {
		t.Fatalf("Filter returned %d tasks, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Filter result[%d] = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestFilterOrdersByDisplayOrder(t *testing.T) {
	tasks := []models.CatalogTask{
		task("third", "general", "general", 30),
		task("first", "general", "general", 10),
		task("second", "general", "general", 20),
	}

	got := Filter(tasks, "NY", "technology")
	want := []string{"first", "second", "third"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Filter result[%d] = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestSeedTasksHaveUniqueIDs(t *testing.T) {
	seen := make(map[string]bool, len(SeedTasks))
	for _, task := range SeedTasks {
		if task.ID == "" {
			t.Errorf("seed task %q has an empty ID", task.Title)
		}
		if seen[task.ID] {
			t.Errorf("duplicate seed task ID %q", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestSeedFilterScenarios(t *testing.T) {
	// A user in a state with no state-specific seeds gets exactly the
	// general/general tasks.
	all := Filter(SeedTasks, "WY", "general")
	for _, tk := range all {
		if tk.State != models.GeneralAxis || tk.BusinessType != models.GeneralAxis {
			t.Errorf("task %q (state %q, type %q) should not match a WY general user", tk.ID, tk.State, tk.BusinessType)
		}
	}
	if len(all) == 0 {
		t.Error("a WY general user should still receive the general tasks")
	}

	caRestaurant := Filter(SeedTasks, "CA", "restaurant")
	found := false
	for _, tk := range caRestaurant {
		if tk.ID == "ca-restaurant-cdtfa" {
			found = true
		}
		if tk.ID == "tx-restaurant-comptroller" {
			t.Error("a CA restaurant should not receive the TX comptroller task")
		}
	}
	if !found {
		t.Error("a CA restaurant should receive the CDTFA seller's permit task")
	}
}

func TestStateReference(t *testing.T) {
	if !IsValidState("CA") {
		t.Error("CA should be a valid state code")
	}
	if IsValidState("ZZ") {
		t.Error("ZZ should not be a valid state code")
	}
	if got := StateCode("California"); got != "CA" {
		t.Errorf("StateCode(California) = %q, want CA", got)
	}
	if got := StateCode("CA"); got != "CA" {
		t.Errorf("StateCode(CA) = %q, want CA", got)
	}
	if len(USStates) != 50 {
		t.Errorf("expected 50 states, got %d", len(USStates))
	}
}

func TestBusinessTypeReference(t *testing.T) {
	for _, bt := range []string{"restaurant", "retail", "construction", "technology", "general"} {
		if !IsValidBusinessType(bt) {
			t.Errorf("%q should be a valid business type", bt)
		}
	}
	if IsValidBusinessType("piracy") {
		t.Error("unknown business types should be rejected")
	}
}

// Package catalog holds the built-in reference data for the onboarding
// checklist: the seed task list, the US state and business-type lookup
// tables, and the matching rule that selects which catalog tasks apply to a
// given business profile.
package catalog

import (
	"sort"

	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

// matchesAxis reports whether a task's axis value applies to the user's
// value. A task tagged "general" applies to everyone; an empty user value
// only matches "general".
func matchesAxis(taskValue, userValue string) bool {
	if taskValue == models.GeneralAxis {
		return true
	}
	return userValue != "" && taskValue == userValue
}

// Matches reports whether a catalog task applies to the given state and
// business type. Both axes must match: a task specific to one state and one
// business type applies only to users matching both.
func Matches(task models.CatalogTask, state, businessType string) bool {
	return matchesAxis(task.State, state) && matchesAxis(task.BusinessType, businessType)
}

// Filter selects the tasks applicable to the given state and business type
// and returns them ordered by the Order field ascending. The sort is stable,
// so tasks sharing an Order keep their input order. An empty result is a
// valid outcome, not an error.
func Filter(tasks []models.CatalogTask, state, businessType string) []models.CatalogTask {
	matched := make([]models.CatalogTask, 0, len(tasks))
	for _, t := range tasks {
		if Matches(t, state, businessType) {
			matched = append(matched, t)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Order < matched[j].Order
	})
	return matched
}

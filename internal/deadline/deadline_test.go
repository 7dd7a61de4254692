package deadline

import (
	"testing"
	"time"
)

var baseTime = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func TestEvaluateStatusBoundaries(t *testing.T) {
	cases := []struct {
		name       string
		daysAhead  int
		wantStatus Status
	}{
		{"thirty days ahead is due soon", 30, StatusDueSoon},
		{"thirty-one days ahead is not soon", 31, StatusNotSoon},
		{"same day is due today", 0, StatusDueToday},
		{"one day past is overdue", -1, StatusOverdue},
		{"one day ahead is due soon", 1, StatusDueSoon},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			target := baseTime.AddDate(0, 0, tc.daysAhead)
			got := Evaluate(target, baseTime, DefaultWindowDays)
			if got.Status != tc.wantStatus {
				t.Errorf("Evaluate(%+d days) status = %q, want %q", tc.daysAhead, got.Status, tc.wantStatus)
			}
			if got.DaysUntil != tc.daysAhead {
				t.Errorf("Evaluate(%+d days) daysUntil = %d, want %d", tc.daysAhead, got.DaysUntil, tc.daysAhead)
			}
		})
	}
}

func TestEvaluateLabels(t *testing.T) {
	cases := []struct {
		daysAhead int
		want      string
	}{
		{-3, "3 days overdue"},
		{-1, "1 days overdue"},
		{0, "Due today"},
		{1, "Due tomorrow"},
		{2, "2 days left"},
		{14, "14 days left"},
	}

	for _, tc := range cases {
		target := baseTime.AddDate(0, 0, tc.daysAhead)
		got := Evaluate(target, baseTime, DefaultWindowDays)
		if got.Label != tc.want {
			t.Errorf("Evaluate(%+d days) label = %q, want %q", tc.daysAhead, got.Label, tc.want)
		}
	}
}

func TestDaysUntilRoundsUp(t *testing.T) {
	target := baseTime.Add(12 * time.Hour)
	if got := DaysUntil(target, baseTime); got != 1 {
		t.Errorf("DaysUntil(+12h) = %d, want 1", got)
	}

	target = baseTime.Add(-12 * time.Hour)
	if got := DaysUntil(target, baseTime); got != 0 {
		t.Errorf("DaysUntil(-12h) = %d, want 0", got)
	}
}

func TestEvaluateCustomWindow(t *testing.T) {
	target := baseTime.AddDate(0, 0, 10)
	if got := Evaluate(target, baseTime, 7); got.Status != StatusNotSoon {
		t.Errorf("Evaluate(+10 days, window 7) status = %q, want %q", got.Status, StatusNotSoon)
	}
	if got := Evaluate(target, baseTime, 0); got.Status != StatusDueSoon {
		t.Errorf("Evaluate(+10 days, window 0) should use the default window, got status %q", got.Status)
	}
}

func TestIsWithinDays(t *testing.T) {
	within := baseTime.AddDate(0, 0, 5)
	if !IsWithinDays(within, baseTime, DefaultWindowDays) {
		t.Error("a date 5 days out should be within the 30-day window")
	}

	beyond := baseTime.AddDate(0, 0, 45)
	if IsWithinDays(beyond, baseTime, DefaultWindowDays) {
		t.Error("a date 45 days out should not be within the 30-day window")
	}

	past := baseTime.AddDate(0, 0, -2)
	if IsWithinDays(past, baseTime, DefaultWindowDays) {
		t.Error("a past date should not be within the window")
	}

	boundary := baseTime.AddDate(0, 0, 30)
	if !IsWithinDays(boundary, baseTime, DefaultWindowDays) {
		t.Error("a date exactly 30 days out should be within the 30-day window")
	}
}

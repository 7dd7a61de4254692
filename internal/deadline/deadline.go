// Package deadline classifies upcoming expiration and inspection dates.
// Everything here is a pure function of the target date, the reference time
// and the window, so results are reproducible under a fixed clock.
package deadline

import (
	"fmt"
	"math"
	"time"
)

// DefaultWindowDays is the due-soon horizon used when no window is
// configured.
const DefaultWindowDays = 30

// Status classifies how a target date relates to the reference time.
type Status string

const (
	StatusOverdue  Status = "overdue"
	StatusDueToday Status = "dueToday"
	StatusDueSoon  Status = "dueSoon"
	StatusNotSoon  Status = "notSoon"
)

// Evaluation is the result of classifying a single target date.
type Evaluation struct {
	DaysUntil int    `json:"days_until"`
	Status    Status `json:"status"`
	Label     string `json:"label"`
}

// DaysUntil returns the number of whole calendar days from now until the
// target, computed at local-midnight granularity. Fractional days round up
// toward the future, so a target twelve hours away still reads as one day
// left rather than zero.
func DaysUntil(target, now time.Time) int {
	diff := target.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

// Evaluate classifies a target date against the reference time using the
// given due-soon window in days. A non-positive window falls back to
// DefaultWindowDays.
func Evaluate(target, now time.Time, windowDays int) Evaluation {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	days := DaysUntil(target, now)

	var status Status
	switch {
	case days < 0:
		status = StatusOverdue
	case days == 0:
		status = StatusDueToday
	case days <= windowDays:
		status = StatusDueSoon
	default:
		status = StatusNotSoon
	}

	return Evaluation{
		DaysUntil: days,
		Status:    status,
		Label:     label(days),
	}
}

// IsWithinDays reports whether the target falls between now and the given
// number of days in the future, inclusive. Past dates are excluded.
func IsWithinDays(target, now time.Time, days int) bool {
	until := DaysUntil(target, now)
	return until >= 0 && until <= days
}

func label(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%d days overdue", -days)
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}

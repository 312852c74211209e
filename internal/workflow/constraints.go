package workflow

import (
	"fmt"
	"time"

	"github.com/jmoreno/solarops/internal/domain"
)

// ValidateScheduleConstraints checks whether entry may be calendared given
// the job's current milestones. Only reset entries carry constraints in
// the current model: the detach and roofing milestones must both be set,
// and neither may fall on a calendar date after the entry's date.
// Comparison is by calendar date, not instant.
func ValidateScheduleConstraints(job *domain.Job, entry *domain.ScheduleEntry) error {
	if entry.Type != domain.ScheduleTypeReset {
		return nil
	}

	if job.DetachCompletedAt == nil {
		return &SchedulingViolationError{
			Rule:   ViolationDetachNotComplete,
			Detail: "cannot schedule reset before detach is complete",
		}
	}
	if job.RoofingCompletedAt == nil {
		return &SchedulingViolationError{
			Rule:   ViolationRoofingNotComplete,
			Detail: "cannot schedule reset before roofing is complete",
		}
	}

	date, err := time.Parse(domain.ScheduleDateLayout, entry.Date)
	if err != nil {
		return &domain.MalformedInputError{
			Field:  "date",
			Value:  entry.Date,
			Reason: "expected YYYY-MM-DD",
		}
	}

	if dayAfter(*job.DetachCompletedAt, date) {
		return &SchedulingViolationError{
			Rule: ViolationResetBeforeDetach,
			Detail: fmt.Sprintf("reset date %s precedes detach completion on %s",
				entry.Date, job.DetachCompletedAt.Format(domain.ScheduleDateLayout)),
		}
	}
	if dayAfter(*job.RoofingCompletedAt, date) {
		return &SchedulingViolationError{
			Rule: ViolationResetBeforeRoofing,
			Detail: fmt.Sprintf("reset date %s precedes roofing completion on %s",
				entry.Date, job.RoofingCompletedAt.Format(domain.ScheduleDateLayout)),
		}
	}
	return nil
}

// dayAfter reports whether the calendar date of t is strictly after day.
func dayAfter(t time.Time, day time.Time) bool {
	td := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return td.After(day)
}

package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/jmoreno/solarops/internal/domain"
)

func ts(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 14, 30, 0, 0, time.UTC)
	return &t
}

func TestResetRequiresDetachComplete(t *testing.T) {
	job := &domain.Job{}
	entry := &domain.ScheduleEntry{Type: domain.ScheduleTypeReset, Date: "2024-03-06"}

	err := ValidateScheduleConstraints(job, entry)
	var sv *SchedulingViolationError
	if !errors.As(err, &sv) || sv.Rule != ViolationDetachNotComplete {
		t.Fatalf("expected detach_not_complete violation, got %v", err)
	}
}

func TestResetRequiresRoofingComplete(t *testing.T) {
	job := &domain.Job{DetachCompletedAt: ts(2024, 3, 1)}
	entry := &domain.ScheduleEntry{Type: domain.ScheduleTypeReset, Date: "2024-03-06"}

	err := ValidateScheduleConstraints(job, entry)
	var sv *SchedulingViolationError
	if !errors.As(err, &sv) || sv.Rule != ViolationRoofingNotComplete {
		t.Fatalf("expected roofing_not_complete violation, got %v", err)
	}
}

// TestResetDateOrdering covers the milestone/date scenarios: detach done
// 2024-03-01, roofing done 2024-03-05.
func TestResetDateOrdering(t *testing.T) {
	job := &domain.Job{
		DetachCompletedAt:  ts(2024, 3, 1),
		RoofingCompletedAt: ts(2024, 3, 5),
	}

	tests := []struct {
		name     string
		date     string
		wantRule ViolationRule
		wantOK   bool
	}{
		{name: "before roofing", date: "2024-03-04", wantRule: ViolationResetBeforeRoofing},
		{name: "before detach and roofing", date: "2024-02-28", wantRule: ViolationResetBeforeDetach},
		{name: "same day as roofing", date: "2024-03-05", wantOK: true},
		{name: "after both", date: "2024-03-06", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &domain.ScheduleEntry{Type: domain.ScheduleTypeReset, Date: tt.date}
			err := ValidateScheduleConstraints(job, entry)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("expected %s to be legal, got %v", tt.date, err)
				}
				return
			}
			var sv *SchedulingViolationError
			if !errors.As(err, &sv) {
				t.Fatalf("expected SchedulingViolationError, got %v", err)
			}
			if sv.Rule != tt.wantRule {
				t.Errorf("rule = %s, want %s", sv.Rule, tt.wantRule)
			}
		})
	}
}

// TestNonResetTypesBypassConstraints verifies survey and friends are
// accepted regardless of milestone state.
func TestNonResetTypesBypassConstraints(t *testing.T) {
	job := &domain.Job{} // no milestones at all
	for _, typ := range []domain.ScheduleType{
		domain.ScheduleTypeSurvey,
		domain.ScheduleTypeDetach,
		domain.ScheduleTypeRoofing,
		domain.ScheduleTypeInspection,
		domain.ScheduleTypeOther,
	} {
		entry := &domain.ScheduleEntry{Type: typ, Date: "not-even-a-date"}
		if err := ValidateScheduleConstraints(job, entry); err != nil {
			t.Errorf("expected %s entry to bypass constraints, got %v", typ, err)
		}
	}
}

func TestResetMalformedDate(t *testing.T) {
	job := &domain.Job{
		DetachCompletedAt:  ts(2024, 3, 1),
		RoofingCompletedAt: ts(2024, 3, 5),
	}
	entry := &domain.ScheduleEntry{Type: domain.ScheduleTypeReset, Date: "03/06/2024"}

	err := ValidateScheduleConstraints(job, entry)
	if !errors.Is(err, domain.ErrMalformedInput) {
		t.Fatalf("expected malformed input error, got %v", err)
	}
}

// Milestones stored late in the day must still allow a reset on the same
// calendar date.
func TestResetSameDayLateMilestone(t *testing.T) {
	late := time.Date(2024, 3, 5, 23, 45, 0, 0, time.UTC)
	job := &domain.Job{
		DetachCompletedAt:  ts(2024, 3, 1),
		RoofingCompletedAt: &late,
	}
	entry := &domain.ScheduleEntry{Type: domain.ScheduleTypeReset, Date: "2024-03-05"}
	if err := ValidateScheduleConstraints(job, entry); err != nil {
		t.Fatalf("same-day reset rejected: %v", err)
	}
}

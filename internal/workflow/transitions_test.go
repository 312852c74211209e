package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/jmoreno/solarops/internal/domain"
)

// TestValidateTransitionChain walks the legal chain end to end.
func TestValidateTransitionChain(t *testing.T) {
	for i := 0; i < len(Chain)-1; i++ {
		if err := ValidateTransition(Chain[i], Chain[i+1]); err != nil {
			t.Errorf("expected %s -> %s to be legal, got %v", Chain[i], Chain[i+1], err)
		}
	}
}

// TestValidateTransitionNoOp verifies self-transitions succeed at every
// state, including closed.
func TestValidateTransitionNoOp(t *testing.T) {
	for _, s := range Chain {
		if err := ValidateTransition(s, s); err != nil {
			t.Errorf("expected no-op at %s to succeed, got %v", s, err)
		}
	}
}

// TestValidateTransitionMatrix rejects every pair that is neither a no-op
// nor the single legal successor.
func TestValidateTransitionMatrix(t *testing.T) {
	for i, from := range Chain {
		for j, to := range Chain {
			legal := i == j || j == i+1
			err := ValidateTransition(from, to)
			if legal && err != nil {
				t.Errorf("expected %s -> %s legal, got %v", from, to, err)
			}
			if !legal {
				if err == nil {
					t.Errorf("expected %s -> %s to be rejected", from, to)
					continue
				}
				var ite *InvalidTransitionError
				if !errors.As(err, &ite) {
					t.Errorf("expected InvalidTransitionError for %s -> %s, got %T", from, to, err)
					continue
				}
				if ite.Current != from || ite.Proposed != to {
					t.Errorf("error names wrong states: %v", ite)
				}
			}
		}
	}
}

// TestClosedIsTerminal verifies closed has no successors.
func TestClosedIsTerminal(t *testing.T) {
	for _, s := range Chain {
		if s == domain.StateClosed {
			continue
		}
		if err := ValidateTransition(domain.StateClosed, s); err == nil {
			t.Errorf("expected closed -> %s to be rejected", s)
		}
	}
}

// TestValidateTransitionUnknownStates rejects values outside the enumeration.
func TestValidateTransitionUnknownStates(t *testing.T) {
	if err := ValidateTransition("bogus", domain.StateClosed); err == nil {
		t.Error("expected unknown current state to be rejected")
	}
	if err := ValidateTransition(domain.StateIntakeQuoting, "bogus"); err == nil {
		t.Error("expected unknown proposed state to be rejected")
	}
}

// TestDefaultStateFirstTransition verifies a fresh job can only move to
// site_survey_pending.
func TestDefaultStateFirstTransition(t *testing.T) {
	for _, s := range Chain {
		err := ValidateTransition(domain.StateIntakeQuoting, s)
		switch s {
		case domain.StateIntakeQuoting, domain.StateSiteSurveyPending:
			if err != nil {
				t.Errorf("expected intake_quoting -> %s to succeed, got %v", s, err)
			}
		default:
			if err == nil {
				t.Errorf("expected intake_quoting -> %s to be rejected", s)
			}
		}
	}
}

// TestApplyTransitionStampsMilestones drives a job through the full chain
// and checks every milestone is stamped exactly when its state is entered.
func TestApplyTransitionStampsMilestones(t *testing.T) {
	job := &domain.Job{WorkflowState: domain.StateIntakeQuoting}
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	milestones := map[domain.JobWorkflowState]func() *time.Time{
		domain.StateSiteSurveyComplete:  func() *time.Time { return job.SiteSurveyCompletedAt },
		domain.StatePermitSubmitted:     func() *time.Time { return job.PermitSubmittedAt },
		domain.StatePermitApproved:      func() *time.Time { return job.PermitApprovedAt },
		domain.StateScheduledDetach:     func() *time.Time { return job.DetachScheduledAt },
		domain.StateDetachCompleteHold:  func() *time.Time { return job.DetachCompletedAt },
		domain.StateRoofingComplete:     func() *time.Time { return job.RoofingCompletedAt },
		domain.StateScheduledReset:      func() *time.Time { return job.ResetScheduledAt },
		domain.StateResetComplete:       func() *time.Time { return job.ResetCompletedAt },
		domain.StateInspectionPtoPassed: func() *time.Time { return job.InspectionPtoPassedAt },
		domain.StateClosed:              func() *time.Time { return job.ClosedAt },
	}

	for _, next := range Chain[1:] {
		now = now.Add(24 * time.Hour)
		if err := ApplyTransition(job, next, now); err != nil {
			t.Fatalf("ApplyTransition to %s: %v", next, err)
		}
		if job.WorkflowState != next {
			t.Fatalf("workflow state not updated, got %s want %s", job.WorkflowState, next)
		}
		get, hasMilestone := milestones[next]
		if !hasMilestone {
			continue
		}
		stamped := get()
		if stamped == nil {
			t.Fatalf("milestone for %s not stamped", next)
		}
		if !stamped.Equal(now) {
			t.Errorf("milestone for %s = %v, want %v", next, stamped, now)
		}
	}
}

// TestApplyTransitionWriteOnce verifies a no-op re-save never re-stamps a
// milestone.
func TestApplyTransitionWriteOnce(t *testing.T) {
	job := &domain.Job{WorkflowState: domain.StateSiteSurveyPending}
	first := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	if err := ApplyTransition(job, domain.StateSiteSurveyComplete, first); err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if job.SiteSurveyCompletedAt == nil || !job.SiteSurveyCompletedAt.Equal(first) {
		t.Fatalf("expected milestone stamped at %v, got %v", first, job.SiteSurveyCompletedAt)
	}

	later := first.Add(48 * time.Hour)
	if err := ApplyTransition(job, domain.StateSiteSurveyComplete, later); err != nil {
		t.Fatalf("no-op ApplyTransition: %v", err)
	}
	if !job.SiteSurveyCompletedAt.Equal(first) {
		t.Errorf("milestone re-stamped to %v, want original %v", job.SiteSurveyCompletedAt, first)
	}
}

// TestApplyTransitionRejectedLeavesJobUntouched verifies no mutation on
// validation failure.
func TestApplyTransitionRejectedLeavesJobUntouched(t *testing.T) {
	job := &domain.Job{WorkflowState: domain.StateIntakeQuoting}
	err := ApplyTransition(job, domain.StateClosed, time.Now())
	if err == nil {
		t.Fatal("expected transition to be rejected")
	}
	if job.WorkflowState != domain.StateIntakeQuoting {
		t.Errorf("job state mutated on failure: %s", job.WorkflowState)
	}
	if job.ClosedAt != nil {
		t.Error("milestone stamped on rejected transition")
	}
}

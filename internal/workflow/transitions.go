// Package workflow holds the job lifecycle state machine and the
// scheduling constraint engine. Everything here is pure: callers load
// records, run them through these functions, and persist on success.
package workflow

import (
	"time"

	"github.com/jmoreno/solarops/internal/domain"
)

// Chain is the job lifecycle in order, from intake through close.
// Every state except the last has exactly one successor.
var Chain = []domain.JobWorkflowState{
	domain.StateIntakeQuoting,
	domain.StateSiteSurveyPending,
	domain.StateSiteSurveyComplete,
	domain.StatePermitSubmitted,
	domain.StatePermitApproved,
	domain.StateScheduledDetach,
	domain.StateDetachCompleteHold,
	domain.StateRoofingComplete,
	domain.StateReadyForReset,
	domain.StateScheduledReset,
	domain.StateResetComplete,
	domain.StateInspectionPtoPassed,
	domain.StateClosed,
}

// successors is derived from Chain once at init. closed has no entry,
// which makes it terminal.
var successors = func() map[domain.JobWorkflowState]domain.JobWorkflowState {
	m := make(map[domain.JobWorkflowState]domain.JobWorkflowState, len(Chain)-1)
	for i := 0; i < len(Chain)-1; i++ {
		m[Chain[i]] = Chain[i+1]
	}
	return m
}()

// known is the membership set for the enumeration.
var known = func() map[domain.JobWorkflowState]struct{} {
	m := make(map[domain.JobWorkflowState]struct{}, len(Chain))
	for _, s := range Chain {
		m[s] = struct{}{}
	}
	return m
}()

// IsValidState reports whether s is a member of the workflow enumeration.
func IsValidState(s domain.JobWorkflowState) bool {
	_, ok := known[s]
	return ok
}

// ValidateTransition checks whether a job may move from current to
// proposed. A transition to the same state is always a permitted no-op,
// including at closed. Otherwise proposed must be the single successor of
// current in the chain.
func ValidateTransition(current, proposed domain.JobWorkflowState) error {
	if !IsValidState(current) {
		return &InvalidTransitionError{Current: current, Proposed: proposed}
	}
	if !IsValidState(proposed) {
		return &InvalidTransitionError{Current: current, Proposed: proposed}
	}
	if current == proposed {
		return nil
	}
	next, ok := successors[current]
	if !ok || next != proposed {
		return &InvalidTransitionError{Current: current, Proposed: proposed}
	}
	return nil
}

// milestoneField returns the pointer to the milestone timestamp field on
// job that corresponds to state, or nil for states without one
// (intake_quoting, site_survey_pending, ready_for_reset).
func milestoneField(job *domain.Job, state domain.JobWorkflowState) **time.Time {
	switch state {
	case domain.StateSiteSurveyComplete:
		return &job.SiteSurveyCompletedAt
	case domain.StatePermitSubmitted:
		return &job.PermitSubmittedAt
	case domain.StatePermitApproved:
		return &job.PermitApprovedAt
	case domain.StateScheduledDetach:
		return &job.DetachScheduledAt
	case domain.StateDetachCompleteHold:
		return &job.DetachCompletedAt
	case domain.StateRoofingComplete:
		return &job.RoofingCompletedAt
	case domain.StateScheduledReset:
		return &job.ResetScheduledAt
	case domain.StateResetComplete:
		return &job.ResetCompletedAt
	case domain.StateInspectionPtoPassed:
		return &job.InspectionPtoPassedAt
	case domain.StateClosed:
		return &job.ClosedAt
	}
	return nil
}

// ApplyTransition validates the move to proposed and mutates job in
// place: the workflow state is updated and, if the proposed state has a
// milestone timestamp that is still unset, it is stamped with now.
// Milestones are write-once; a no-op re-entry never re-stamps. The job is
// left untouched when validation fails.
func ApplyTransition(job *domain.Job, proposed domain.JobWorkflowState, now time.Time) error {
	if err := ValidateTransition(job.WorkflowState, proposed); err != nil {
		return err
	}
	job.WorkflowState = proposed
	if field := milestoneField(job, proposed); field != nil && *field == nil {
		t := now.UTC()
		*field = &t
	}
	return nil
}

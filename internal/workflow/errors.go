package workflow

import (
	"fmt"

	"github.com/jmoreno/solarops/internal/domain"
)

// InvalidTransitionError reports an illegal workflow state change,
// naming both the current and the attempted state.
type InvalidTransitionError struct {
	Current  domain.JobWorkflowState
	Proposed domain.JobWorkflowState
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid workflow transition from %q to %q", e.Current, e.Proposed)
}

// ViolationRule identifies which scheduling constraint was broken.
type ViolationRule string

const (
	ViolationDetachNotComplete  ViolationRule = "detach_not_complete"
	ViolationRoofingNotComplete ViolationRule = "roofing_not_complete"
	ViolationResetBeforeDetach  ViolationRule = "reset_before_detach"
	ViolationResetBeforeRoofing ViolationRule = "reset_before_roofing"
)

// SchedulingViolationError reports a broken scheduling constraint with a
// message naming the specific rule.
type SchedulingViolationError struct {
	Rule   ViolationRule
	Detail string
}

func (e *SchedulingViolationError) Error() string {
	return fmt.Sprintf("scheduling violation (%s): %s", e.Rule, e.Detail)
}

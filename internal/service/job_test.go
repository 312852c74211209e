package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/repository"
	"github.com/jmoreno/solarops/internal/workflow"
)

func newJobService(t *testing.T) *JobService {
	t.Helper()
	return NewJobService(repository.NewJobRepository(newTestDB(t)))
}

func TestJobCreateDefaultsWorkflowState(t *testing.T) {
	svc := newJobService(t)

	job, err := svc.Create(context.Background(), &domain.Job{
		CustomerID: "cust-1",
		Type:       domain.JobTypeDetachReset,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, domain.StateIntakeQuoting, job.WorkflowState)
}

func TestJobCreateRejectsUnknownState(t *testing.T) {
	svc := newJobService(t)

	_, err := svc.Create(context.Background(), &domain.Job{
		CustomerID:    "cust-1",
		Type:          domain.JobTypeDetachReset,
		WorkflowState: "warp_drive",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedInput))
}

func TestJobTransitionStampsMilestoneOnce(t *testing.T) {
	svc := newJobService(t)
	ctx := context.Background()

	job, err := svc.Create(ctx, &domain.Job{
		CustomerID: "cust-1",
		Type:       domain.JobTypeDetachReset,
	})
	require.NoError(t, err)

	job, err = svc.Transition(ctx, job.ID, domain.StateSiteSurveyPending)
	require.NoError(t, err)
	assert.Nil(t, job.SiteSurveyCompletedAt)

	job, err = svc.Transition(ctx, job.ID, domain.StateSiteSurveyComplete)
	require.NoError(t, err)
	require.NotNil(t, job.SiteSurveyCompletedAt)
	firstStamp := *job.SiteSurveyCompletedAt

	// Re-entering the same state is a no-op and must not restamp
	job, err = svc.Transition(ctx, job.ID, domain.StateSiteSurveyComplete)
	require.NoError(t, err)
	require.NotNil(t, job.SiteSurveyCompletedAt)
	assert.True(t, job.SiteSurveyCompletedAt.Equal(firstStamp))
}

func TestJobTransitionRejectsSkip(t *testing.T) {
	svc := newJobService(t)
	ctx := context.Background()

	job, err := svc.Create(ctx, &domain.Job{
		CustomerID: "cust-1",
		Type:       domain.JobTypeDetachReset,
	})
	require.NoError(t, err)

	_, err = svc.Transition(ctx, job.ID, domain.StateDetachCompleteHold)
	require.Error(t, err)

	var transitionErr *workflow.InvalidTransitionError
	require.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, domain.StateIntakeQuoting, transitionErr.Current)
	assert.Equal(t, domain.StateDetachCompleteHold, transitionErr.Proposed)

	// The stored record is untouched
	stored, err := svc.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateIntakeQuoting, stored.WorkflowState)
}

func TestJobTransitionUnknownJob(t *testing.T) {
	svc := newJobService(t)

	_, err := svc.Transition(context.Background(), "missing", domain.StateSiteSurveyPending)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestJobUpdatePreservesMilestones(t *testing.T) {
	svc := newJobService(t)
	ctx := context.Background()

	job, err := svc.Create(ctx, &domain.Job{
		CustomerID: "cust-1",
		Type:       domain.JobTypeDetachReset,
	})
	require.NoError(t, err)

	job, err = svc.Transition(ctx, job.ID, domain.StateSiteSurveyPending)
	require.NoError(t, err)
	job, err = svc.Transition(ctx, job.ID, domain.StateSiteSurveyComplete)
	require.NoError(t, err)
	surveyStamp := *job.SiteSurveyCompletedAt

	// A full update carrying no milestones must not erase the stamp,
	// and its state change goes through the same transition rules
	updated, err := svc.Update(ctx, job.ID, &domain.Job{
		CustomerID:    "cust-1",
		Type:          domain.JobTypeDetachReset,
		WorkflowState: domain.StatePermitSubmitted,
		Notes:         "permit pack sent",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatePermitSubmitted, updated.WorkflowState)
	require.NotNil(t, updated.SiteSurveyCompletedAt)
	assert.True(t, updated.SiteSurveyCompletedAt.Equal(surveyStamp))
	require.NotNil(t, updated.PermitSubmittedAt)
	assert.Equal(t, "permit pack sent", updated.Notes)
}

func TestJobUpdateRejectsInvalidTransition(t *testing.T) {
	svc := newJobService(t)
	ctx := context.Background()

	job, err := svc.Create(ctx, &domain.Job{
		CustomerID: "cust-1",
		Type:       domain.JobTypeDetachReset,
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, job.ID, &domain.Job{
		CustomerID:    "cust-1",
		Type:          domain.JobTypeDetachReset,
		WorkflowState: domain.StateClosed,
	})
	var transitionErr *workflow.InvalidTransitionError
	require.True(t, errors.As(err, &transitionErr))
}

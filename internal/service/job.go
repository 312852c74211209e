package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/logger"
	"github.com/jmoreno/solarops/internal/repository"
	"github.com/jmoreno/solarops/internal/workflow"
)

// JobService owns job lifecycle operations: creation, full updates with
// transition validation, explicit workflow transitions, and photo
// appends.
type JobService struct {
	jobs *repository.JobRepository
}

// NewJobService creates a new JobService.
func NewJobService(jobs *repository.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

// Create persists a new job. An empty workflow state defaults to
// intake_quoting; any other initial state must be a member of the
// enumeration.
func (s *JobService) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	job.ID = uuid.New().String()
	if job.WorkflowState == "" {
		job.WorkflowState = domain.StateIntakeQuoting
	}
	if !workflow.IsValidState(job.WorkflowState) {
		return nil, &domain.MalformedInputError{
			Field:  "workflow_state",
			Value:  string(job.WorkflowState),
			Reason: "unknown workflow state",
		}
	}
	if job.Status == "" {
		job.Status = domain.JobStatusScheduled
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	logger.CtxInfo(ctx, "Job created: id=%s, type=%s, customer=%s", job.ID, job.Type, job.CustomerID)
	return job, nil
}

// Get retrieves a job by ID.
func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

// List retrieves jobs, optionally filtered by status.
func (s *JobService) List(ctx context.Context, status domain.JobStatus) ([]domain.Job, error) {
	return s.jobs.List(ctx, status)
}

// Update performs a full update of a job record. The proposed workflow
// state is validated as a transition from the stored state before any
// field is persisted, and the milestone timestamps are server-owned:
// stored values are carried over, and a state change stamps its milestone
// through the same write-once path as an explicit transition.
func (s *JobService) Update(ctx context.Context, id string, incoming *domain.Job) (*domain.Job, error) {
	var updated *domain.Job
	err := s.jobs.Transaction(ctx, func(txRepo *repository.JobRepository) error {
		stored, err := txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		proposed := incoming.WorkflowState
		if proposed == "" {
			proposed = stored.WorkflowState
		}
		if err := workflow.ValidateTransition(stored.WorkflowState, proposed); err != nil {
			return err
		}

		incoming.ID = stored.ID
		incoming.CreatedAt = stored.CreatedAt
		incoming.WorkflowState = stored.WorkflowState
		copyMilestones(stored, incoming)

		if err := workflow.ApplyTransition(incoming, proposed, time.Now()); err != nil {
			return err
		}
		if err := txRepo.Update(ctx, incoming); err != nil {
			return err
		}
		updated = incoming
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Transition moves a job to the proposed workflow state, stamping the
// corresponding milestone the first time the state is entered. The
// read-validate-write runs in a single store transaction.
func (s *JobService) Transition(ctx context.Context, id string, proposed domain.JobWorkflowState) (*domain.Job, error) {
	var updated *domain.Job
	err := s.jobs.Transaction(ctx, func(txRepo *repository.JobRepository) error {
		job, err := txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := workflow.ApplyTransition(job, proposed, time.Now()); err != nil {
			return err
		}
		if err := txRepo.Update(ctx, job); err != nil {
			return err
		}
		updated = job
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.CtxInfo(ctx, "Job transitioned: id=%s, state=%s", id, proposed)
	return updated, nil
}

// AppendPhoto appends an uploaded photo record to the job's photo list.
func (s *JobService) AppendPhoto(ctx context.Context, id string, photo domain.JobPhoto) (*domain.Job, error) {
	var updated *domain.Job
	err := s.jobs.Transaction(ctx, func(txRepo *repository.JobRepository) error {
		job, err := txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		job.Photos = append(job.Photos, photo)
		if err := txRepo.Update(ctx, job); err != nil {
			return err
		}
		updated = job
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// copyMilestones carries the stored write-once milestone timestamps onto
// the incoming record so a full update can never rewrite history.
func copyMilestones(from, to *domain.Job) {
	to.SiteSurveyCompletedAt = from.SiteSurveyCompletedAt
	to.PermitSubmittedAt = from.PermitSubmittedAt
	to.PermitApprovedAt = from.PermitApprovedAt
	to.DetachScheduledAt = from.DetachScheduledAt
	to.DetachCompletedAt = from.DetachCompletedAt
	to.RoofingCompletedAt = from.RoofingCompletedAt
	to.ResetScheduledAt = from.ResetScheduledAt
	to.ResetCompletedAt = from.ResetCompletedAt
	to.InspectionPtoPassedAt = from.InspectionPtoPassedAt
	to.ClosedAt = from.ClosedAt
}

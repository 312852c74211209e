package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/logger"
	"github.com/jmoreno/solarops/internal/repository"
	"github.com/jmoreno/solarops/internal/workflow"
)

// DispatchService orchestrates schedule entry creation and updates: it
// loads the referenced job, runs the scheduling constraint engine,
// enriches the entry with a best-effort weather snapshot, and persists.
type DispatchService struct {
	jobs     *repository.JobRepository
	schedule *repository.ScheduleRepository
	weather  *WeatherService

	// jobLocks serializes the read-validate-write window per job id so
	// two concurrent reset requests cannot both validate against a stale
	// milestone read.
	jobLocks sync.Map // map[string]*sync.Mutex
}

// NewDispatchService creates a new DispatchService.
// Parameters:
//   - jobs: job record store.
//   - schedule: schedule entry store.
//   - weather: weather collaborator; failures never fail the operation.
// Returns:
//   - *DispatchService: initialized service.
func NewDispatchService(
	jobs *repository.JobRepository,
	schedule *repository.ScheduleRepository,
	weather *WeatherService,
) *DispatchService {
	return &DispatchService{
		jobs:     jobs,
		schedule: schedule,
		weather:  weather,
	}
}

// lockJob acquires the per-job mutex and returns its unlock func.
func (s *DispatchService) lockJob(jobID string) func() {
	v, _ := s.jobLocks.LoadOrStore(jobID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Create validates and persists a new schedule entry.
// Pipeline: load job, validate constraints, fetch weather (best-effort),
// persist with a newly assigned ID. Nothing is persisted on validation
// failure.
func (s *DispatchService) Create(ctx context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	unlock := s.lockJob(entry.JobID)
	defer unlock()

	job, err := s.jobs.GetByID(ctx, entry.JobID)
	if err != nil {
		return nil, err
	}
	if err := workflow.ValidateScheduleConstraints(job, entry); err != nil {
		return nil, err
	}

	entry.ID = uuid.New().String()
	entry.Weather = s.fetchWeather(ctx, job, entry)

	if err := s.schedule.Create(ctx, entry); err != nil {
		return nil, err
	}
	logger.CtxInfo(ctx, "Schedule entry created: id=%s, job=%s, type=%s, date=%s",
		entry.ID, entry.JobID, entry.Type, entry.Date)
	return entry, nil
}

// Update re-runs the full validation pipeline against the new entry
// values before overwriting the stored record.
func (s *DispatchService) Update(ctx context.Context, id string, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	unlock := s.lockJob(entry.JobID)
	defer unlock()

	existing, err := s.schedule.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, entry.JobID)
	if err != nil {
		return nil, err
	}
	if err := workflow.ValidateScheduleConstraints(job, entry); err != nil {
		return nil, err
	}

	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt
	if entry.Weather == nil {
		entry.Weather = existing.Weather
	}

	if err := s.schedule.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List retrieves schedule entries matching the filter.
func (s *DispatchService) List(ctx context.Context, filter repository.ScheduleFilter) ([]domain.ScheduleEntry, error) {
	return s.schedule.List(ctx, filter)
}

// Delete removes a schedule entry by ID.
func (s *DispatchService) Delete(ctx context.Context, id string) error {
	return s.schedule.Delete(ctx, id)
}

// fetchWeather captures a forecast snapshot for the entry, bounded by the
// weather client's timeout. Failures are logged with their reason and
// reported as a missing snapshot, never as a request failure.
func (s *DispatchService) fetchWeather(ctx context.Context, job *domain.Job, entry *domain.ScheduleEntry) *domain.WeatherSnapshot {
	if s.weather == nil {
		return nil
	}
	start := time.Now()
	snapshot, err := s.weather.ForecastForJob(ctx, job)
	if err != nil {
		logger.CtxWarn(ctx, "Weather snapshot unavailable for schedule entry: job=%s, date=%s, reason=%v",
			job.ID, entry.Date, err)
		return nil
	}
	logger.CtxDebug(ctx, "Weather snapshot captured in %dms: job=%s", time.Since(start).Milliseconds(), job.ID)
	return snapshot
}

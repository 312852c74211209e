package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/repository"
	"github.com/jmoreno/solarops/internal/workflow"
)

type dispatchFixture struct {
	svc  *DispatchService
	jobs *repository.JobRepository
}

func newDispatchFixture(t *testing.T) *dispatchFixture {
	t.Helper()
	db := newTestDB(t)
	jobs := repository.NewJobRepository(db)
	schedule := repository.NewScheduleRepository(db)
	// no API key: forecasts are canned, never a network call
	weather := NewWeatherService(&WeatherServiceConfig{})
	return &dispatchFixture{
		svc:  NewDispatchService(jobs, schedule, weather),
		jobs: jobs,
	}
}

// seedJob persists a job with the given milestone timestamps.
func (f *dispatchFixture) seedJob(t *testing.T, detachDone, roofingDone *time.Time) *domain.Job {
	t.Helper()
	lat, lon := 33.45, -112.07
	job := &domain.Job{
		ID:                 uuid.New().String(),
		CustomerID:         "cust-1",
		Type:               domain.JobTypeDetachReset,
		Status:             domain.JobStatusScheduled,
		WorkflowState:      domain.StateIntakeQuoting,
		Latitude:           &lat,
		Longitude:          &lon,
		DetachCompletedAt:  detachDone,
		RoofingCompletedAt: roofingDone,
	}
	require.NoError(t, f.jobs.Create(context.Background(), job))
	return job
}

func ts(day string) *time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", day)
	if err != nil {
		panic(err)
	}
	t = t.UTC()
	return &t
}

func TestDispatchCreateResetBlockedWithoutDetach(t *testing.T) {
	f := newDispatchFixture(t)
	job := f.seedJob(t, nil, nil)

	_, err := f.svc.Create(context.Background(), &domain.ScheduleEntry{
		JobID: job.ID,
		Type:  domain.ScheduleTypeReset,
		Date:  "2024-03-10",
	})
	require.Error(t, err)

	var violation *workflow.SchedulingViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, workflow.ViolationDetachNotComplete, violation.Rule)

	// Nothing was persisted
	entries, err := f.svc.List(context.Background(), repository.ScheduleFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDispatchCreateResetBlockedWithoutRoofing(t *testing.T) {
	f := newDispatchFixture(t)
	job := f.seedJob(t, ts("2024-03-01T10:00:00"), nil)

	_, err := f.svc.Create(context.Background(), &domain.ScheduleEntry{
		JobID: job.ID,
		Type:  domain.ScheduleTypeReset,
		Date:  "2024-03-10",
	})
	var violation *workflow.SchedulingViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, workflow.ViolationRoofingNotComplete, violation.Rule)
}

func TestDispatchCreateResetDateOrdering(t *testing.T) {
	f := newDispatchFixture(t)
	job := f.seedJob(t, ts("2024-03-01T10:00:00"), ts("2024-03-05T16:30:00"))

	tests := []struct {
		name     string
		date     string
		wantRule workflow.ViolationRule
	}{
		{"before detach", "2024-02-28", workflow.ViolationResetBeforeDetach},
		{"between detach and roofing", "2024-03-03", workflow.ViolationResetBeforeRoofing},
		{"same day as roofing", "2024-03-05", ""},
		{"after roofing", "2024-03-06", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := f.svc.Create(context.Background(), &domain.ScheduleEntry{
				JobID: job.ID,
				Type:  domain.ScheduleTypeReset,
				Date:  tt.date,
			})
			if tt.wantRule == "" {
				require.NoError(t, err)
				assert.NotEmpty(t, entry.ID)
				return
			}
			var violation *workflow.SchedulingViolationError
			require.True(t, errors.As(err, &violation))
			assert.Equal(t, tt.wantRule, violation.Rule)
		})
	}
}

func TestDispatchCreateSurveyBypassesConstraints(t *testing.T) {
	f := newDispatchFixture(t)
	job := f.seedJob(t, nil, nil)

	entry, err := f.svc.Create(context.Background(), &domain.ScheduleEntry{
		JobID: job.ID,
		Type:  domain.ScheduleTypeSurvey,
		Date:  "2024-03-10",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	// The job has coordinates and no API key is set, so the canned
	// snapshot is attached
	require.NotNil(t, entry.Weather)
	assert.Equal(t, "Clear", entry.Weather.Condition)
}

func TestDispatchCreateMalformedDate(t *testing.T) {
	f := newDispatchFixture(t)
	job := f.seedJob(t, ts("2024-03-01T10:00:00"), ts("2024-03-05T16:30:00"))

	_, err := f.svc.Create(context.Background(), &domain.ScheduleEntry{
		JobID: job.ID,
		Type:  domain.ScheduleTypeReset,
		Date:  "03/10/2024",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedInput))
}

func TestDispatchCreateUnknownJob(t *testing.T) {
	f := newDispatchFixture(t)

	_, err := f.svc.Create(context.Background(), &domain.ScheduleEntry{
		JobID: "missing",
		Type:  domain.ScheduleTypeSurvey,
		Date:  "2024-03-10",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDispatchUpdateRevalidates(t *testing.T) {
	f := newDispatchFixture(t)
	job := f.seedJob(t, ts("2024-03-01T10:00:00"), ts("2024-03-05T16:30:00"))
	ctx := context.Background()

	entry, err := f.svc.Create(ctx, &domain.ScheduleEntry{
		JobID: job.ID,
		Type:  domain.ScheduleTypeReset,
		Date:  "2024-03-06",
	})
	require.NoError(t, err)

	// Moving the entry to a date before the detach milestone must fail
	_, err = f.svc.Update(ctx, entry.ID, &domain.ScheduleEntry{
		JobID: job.ID,
		Type:  domain.ScheduleTypeReset,
		Date:  "2024-02-20",
	})
	var violation *workflow.SchedulingViolationError
	require.True(t, errors.As(err, &violation))

	// And the stored entry keeps its original date
	entries, err := f.svc.List(ctx, repository.ScheduleFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2024-03-06", entries[0].Date)

	// A legal move works and preserves the captured weather snapshot
	updated, err := f.svc.Update(ctx, entry.ID, &domain.ScheduleEntry{
		JobID: job.ID,
		Type:  domain.ScheduleTypeReset,
		Date:  "2024-03-07",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-07", updated.Date)
	assert.Equal(t, entry.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestDispatchDeleteUnknownEntry(t *testing.T) {
	f := newDispatchFixture(t)

	err := f.svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDispatchListFilters(t *testing.T) {
	f := newDispatchFixture(t)
	job := f.seedJob(t, nil, nil)
	ctx := context.Background()

	for _, d := range []string{"2024-03-10", "2024-03-11", "2024-03-12"} {
		_, err := f.svc.Create(ctx, &domain.ScheduleEntry{
			JobID:  job.ID,
			CrewID: "crew-1",
			Type:   domain.ScheduleTypeDetach,
			Date:   d,
		})
		require.NoError(t, err)
	}

	byDate, err := f.svc.List(ctx, repository.ScheduleFilter{Date: "2024-03-11"})
	require.NoError(t, err)
	assert.Len(t, byDate, 1)

	byRange, err := f.svc.List(ctx, repository.ScheduleFilter{StartDate: "2024-03-11", EndDate: "2024-03-12"})
	require.NoError(t, err)
	assert.Len(t, byRange, 2)

	byCrew, err := f.svc.List(ctx, repository.ScheduleFilter{CrewID: "crew-2"})
	require.NoError(t, err)
	assert.Empty(t, byCrew)
}

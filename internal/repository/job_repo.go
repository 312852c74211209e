package repository

import (
	"context"
	"errors"

	"github.com/jmoreno/solarops/internal/domain"
	"gorm.io/gorm"
)

// JobRepository handles job record persistence.
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *JobRepository: repository instance bound to db.
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a new job record.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// GetByID retrieves a job by its ID, translating a missing row into the
// domain NotFound error.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	var job domain.Job
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("job")
		}
		return nil, err
	}
	return &job, nil
}

// List retrieves jobs, optionally filtered by status.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - status: status to filter by; empty means all.
// Returns:
//   - []domain.Job: matching job records, newest first.
//   - error: non-nil if the query fails.
func (r *JobRepository) List(ctx context.Context, status domain.JobStatus) ([]domain.Job, error) {
	var jobs []domain.Job
	query := r.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update persists all fields of an existing job record.
func (r *JobRepository) Update(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// Transaction runs fn against a repository bound to a single database
// transaction. Used to make the read-validate-write of a workflow
// transition atomic at the store level.
func (r *JobRepository) Transaction(ctx context.Context, fn func(txRepo *JobRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&JobRepository{db: tx})
	})
}

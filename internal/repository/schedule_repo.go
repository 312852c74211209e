package repository

import (
	"context"
	"errors"

	"github.com/jmoreno/solarops/internal/domain"
	"gorm.io/gorm"
)

// ScheduleFilter narrows a schedule listing. Filters are conjunctive.
// Date takes precedence over the StartDate/EndDate range when both are set.
type ScheduleFilter struct {
	Date      string
	StartDate string
	EndDate   string
	CrewID    string
}

// ScheduleRepository handles schedule entry persistence.
type ScheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new ScheduleRepository.
func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create inserts a new schedule entry.
func (r *ScheduleRepository) Create(ctx context.Context, entry *domain.ScheduleEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByID retrieves a schedule entry by its ID.
func (r *ScheduleRepository) GetByID(ctx context.Context, id string) (*domain.ScheduleEntry, error) {
	var entry domain.ScheduleEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("schedule entry")
		}
		return nil, err
	}
	return &entry, nil
}

// List retrieves schedule entries matching the filter.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - filter: exact date, inclusive date range, and/or crew; combined with AND.
// Returns:
//   - []domain.ScheduleEntry: matching entries ordered by date then start time.
//   - error: non-nil if the query fails.
func (r *ScheduleRepository) List(ctx context.Context, filter ScheduleFilter) ([]domain.ScheduleEntry, error) {
	query := r.db.WithContext(ctx)

	if filter.Date != "" {
		query = query.Where("date = ?", filter.Date)
	} else if filter.StartDate != "" && filter.EndDate != "" {
		query = query.Where("date >= ? AND date <= ?", filter.StartDate, filter.EndDate)
	}
	if filter.CrewID != "" {
		query = query.Where("crew_id = ?", filter.CrewID)
	}

	var entries []domain.ScheduleEntry
	if err := query.Order("date, start_time").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Update persists all fields of an existing schedule entry.
func (r *ScheduleRepository) Update(ctx context.Context, entry *domain.ScheduleEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// Delete removes a schedule entry by ID.
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.ScheduleEntry{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFound("schedule entry")
	}
	return nil
}

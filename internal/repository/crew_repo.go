package repository

import (
	"context"
	"errors"

	"github.com/jmoreno/solarops/internal/domain"
	"gorm.io/gorm"
)

// CrewRepository handles crew persistence.
type CrewRepository struct {
	db *gorm.DB
}

// NewCrewRepository creates a new CrewRepository.
func NewCrewRepository(db *gorm.DB) *CrewRepository {
	return &CrewRepository{db: db}
}

// Create inserts a new crew record.
func (r *CrewRepository) Create(ctx context.Context, crew *domain.Crew) error {
	return r.db.WithContext(ctx).Create(crew).Error
}

// GetByID retrieves a crew by its ID.
func (r *CrewRepository) GetByID(ctx context.Context, id string) (*domain.Crew, error) {
	var crew domain.Crew
	if err := r.db.WithContext(ctx).First(&crew, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("crew")
		}
		return nil, err
	}
	return &crew, nil
}

// List retrieves all crews.
func (r *CrewRepository) List(ctx context.Context) ([]domain.Crew, error) {
	var crews []domain.Crew
	if err := r.db.WithContext(ctx).Order("name").Find(&crews).Error; err != nil {
		return nil, err
	}
	return crews, nil
}

// Update persists all fields of an existing crew record.
func (r *CrewRepository) Update(ctx context.Context, crew *domain.Crew) error {
	return r.db.WithContext(ctx).Save(crew).Error
}

// Delete removes a crew by ID.
func (r *CrewRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Crew{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFound("crew")
	}
	return nil
}

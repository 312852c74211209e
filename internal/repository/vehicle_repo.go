package repository

import (
	"context"
	"errors"

	"github.com/jmoreno/solarops/internal/domain"
	"gorm.io/gorm"
)

// VehicleRepository handles vehicle persistence.
type VehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new VehicleRepository.
func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// Create inserts a new vehicle record.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

// GetByID retrieves a vehicle by its ID.
func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("vehicle")
		}
		return nil, err
	}
	return &vehicle, nil
}

// List retrieves all vehicles, optionally filtered by crew.
func (r *VehicleRepository) List(ctx context.Context, crewID string) ([]domain.Vehicle, error) {
	query := r.db.WithContext(ctx)
	if crewID != "" {
		query = query.Where("crew_id = ?", crewID)
	}
	var vehicles []domain.Vehicle
	if err := query.Order("name").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Update persists all fields of an existing vehicle record.
func (r *VehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

// Delete removes a vehicle by ID.
func (r *VehicleRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Vehicle{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFound("vehicle")
	}
	return nil
}

package repository

import (
	"context"
	"errors"

	"github.com/jmoreno/solarops/internal/domain"
	"gorm.io/gorm"
)

// PartnerRepository handles referral partner persistence.
type PartnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository creates a new PartnerRepository.
func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

// Create inserts a new partner record.
func (r *PartnerRepository) Create(ctx context.Context, partner *domain.Partner) error {
	return r.db.WithContext(ctx).Create(partner).Error
}

// GetByID retrieves a partner by its ID.
func (r *PartnerRepository) GetByID(ctx context.Context, id string) (*domain.Partner, error) {
	var partner domain.Partner
	if err := r.db.WithContext(ctx).First(&partner, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("partner")
		}
		return nil, err
	}
	return &partner, nil
}

// List retrieves all partners, optionally only active ones.
func (r *PartnerRepository) List(ctx context.Context, activeOnly bool) ([]domain.Partner, error) {
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var partners []domain.Partner
	if err := query.Order("company_name").Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

// Update persists all fields of an existing partner record.
func (r *PartnerRepository) Update(ctx context.Context, partner *domain.Partner) error {
	return r.db.WithContext(ctx).Save(partner).Error
}

// Delete removes a partner by ID.
func (r *PartnerRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Partner{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFound("partner")
	}
	return nil
}

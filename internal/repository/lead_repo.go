package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jmoreno/solarops/internal/domain"
	"gorm.io/gorm"
)

// LeadFilter narrows a lead listing. Status and PartnerID filter in the
// store; Search matches name, address, or email in memory after the
// query, mirroring how the store only supports field-equality filters.
type LeadFilter struct {
	Status    domain.LeadStatus
	PartnerID string
	Search    string
}

// LeadRepository handles sales lead persistence.
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new LeadRepository.
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create inserts a new lead record.
func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

// GetByID retrieves a lead by its ID.
func (r *LeadRepository) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	var lead domain.Lead
	if err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("lead")
		}
		return nil, err
	}
	return &lead, nil
}

// List retrieves leads matching the filter.
func (r *LeadRepository) List(ctx context.Context, filter LeadFilter) ([]domain.Lead, error) {
	query := r.db.WithContext(ctx)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PartnerID != "" {
		query = query.Where("partner_id = ?", filter.PartnerID)
	}

	var leads []domain.Lead
	if err := query.Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, err
	}

	if filter.Search == "" {
		return leads, nil
	}
	term := strings.ToLower(filter.Search)
	matched := leads[:0]
	for _, l := range leads {
		if strings.Contains(strings.ToLower(l.CustomerName), term) ||
			strings.Contains(strings.ToLower(l.Address), term) ||
			strings.Contains(strings.ToLower(l.Email), term) {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

// Update persists all fields of an existing lead record.
func (r *LeadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Save(lead).Error
}

// Delete removes a lead by ID.
func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Lead{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFound("lead")
	}
	return nil
}

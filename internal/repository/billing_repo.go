package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jmoreno/solarops/internal/domain"
	"gorm.io/gorm"
)

// EstimateRepository handles estimate persistence.
type EstimateRepository struct {
	db *gorm.DB
}

// NewEstimateRepository creates a new EstimateRepository.
func NewEstimateRepository(db *gorm.DB) *EstimateRepository {
	return &EstimateRepository{db: db}
}

// Create inserts a new estimate record.
func (r *EstimateRepository) Create(ctx context.Context, estimate *domain.Estimate) error {
	return r.db.WithContext(ctx).Create(estimate).Error
}

// GetByID retrieves an estimate by its ID.
func (r *EstimateRepository) GetByID(ctx context.Context, id string) (*domain.Estimate, error) {
	var estimate domain.Estimate
	if err := r.db.WithContext(ctx).First(&estimate, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("estimate")
		}
		return nil, err
	}
	return &estimate, nil
}

// List retrieves estimates, optionally filtered by job and/or status.
func (r *EstimateRepository) List(ctx context.Context, jobID string, status domain.EstimateStatus) ([]domain.Estimate, error) {
	query := r.db.WithContext(ctx)
	if jobID != "" {
		query = query.Where("job_id = ?", jobID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var estimates []domain.Estimate
	if err := query.Order("created_at DESC").Find(&estimates).Error; err != nil {
		return nil, err
	}
	return estimates, nil
}

// Update persists all fields of an existing estimate record.
func (r *EstimateRepository) Update(ctx context.Context, estimate *domain.Estimate) error {
	return r.db.WithContext(ctx).Save(estimate).Error
}

// Delete removes an estimate by ID.
func (r *EstimateRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Estimate{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFound("estimate")
	}
	return nil
}

// InvoiceFilter narrows an invoice listing.
type InvoiceFilter struct {
	JobID  string
	Status domain.InvoiceStatus
	Type   domain.InvoiceType
}

// InvoiceRepository handles invoice persistence.
type InvoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create inserts a new invoice record.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

// GetByID retrieves an invoice by its ID.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	var invoice domain.Invoice
	if err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("invoice")
		}
		return nil, err
	}
	return &invoice, nil
}

// List retrieves invoices matching the filter.
func (r *InvoiceRepository) List(ctx context.Context, filter InvoiceFilter) ([]domain.Invoice, error) {
	query := r.db.WithContext(ctx)
	if filter.JobID != "" {
		query = query.Where("job_id = ?", filter.JobID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	var invoices []domain.Invoice
	if err := query.Order("created_at DESC").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Update persists all fields of an existing invoice record.
func (r *InvoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

// Delete removes an invoice record.
func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Invoice{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFound("invoice")
	}
	return nil
}

// SKUFilter narrows a SKU listing. Search matches code, name, or
// description in memory after the store query.
type SKUFilter struct {
	Type     domain.SKUType
	Category string
	IsActive *bool
	Search   string
}

// SKURepository handles product/service SKU persistence.
type SKURepository struct {
	db *gorm.DB
}

// NewSKURepository creates a new SKURepository.
func NewSKURepository(db *gorm.DB) *SKURepository {
	return &SKURepository{db: db}
}

// Create inserts a new SKU record.
func (r *SKURepository) Create(ctx context.Context, sku *domain.ProductServiceSKU) error {
	return r.db.WithContext(ctx).Create(sku).Error
}

// ExistsByCode checks whether a SKU with the given code already exists.
func (r *SKURepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.ProductServiceSKU{}).
		Where("sku = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByID retrieves a SKU by its ID.
func (r *SKURepository) GetByID(ctx context.Context, id string) (*domain.ProductServiceSKU, error) {
	var sku domain.ProductServiceSKU
	if err := r.db.WithContext(ctx).First(&sku, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("sku")
		}
		return nil, err
	}
	return &sku, nil
}

// List retrieves SKUs matching the filter.
func (r *SKURepository) List(ctx context.Context, filter SKUFilter) ([]domain.ProductServiceSKU, error) {
	query := r.db.WithContext(ctx)
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var skus []domain.ProductServiceSKU
	if err := query.Order("sku").Find(&skus).Error; err != nil {
		return nil, err
	}

	if filter.Search == "" {
		return skus, nil
	}
	term := strings.ToLower(filter.Search)
	matched := skus[:0]
	for _, s := range skus {
		if strings.Contains(strings.ToLower(s.SKU), term) ||
			strings.Contains(strings.ToLower(s.Name), term) ||
			strings.Contains(strings.ToLower(s.Description), term) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

// Update persists all fields of an existing SKU record.
func (r *SKURepository) Update(ctx context.Context, sku *domain.ProductServiceSKU) error {
	return r.db.WithContext(ctx).Save(sku).Error
}

// Delete removes a SKU by ID.
func (r *SKURepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.ProductServiceSKU{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFound("sku")
	}
	return nil
}

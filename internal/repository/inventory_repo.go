package repository

import (
	"context"
	"errors"

	"github.com/jmoreno/solarops/internal/domain"
	"gorm.io/gorm"
)

// InventoryRepository handles items, bins, and the activity log.
type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new InventoryRepository.
func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// CreateItem inserts a new inventory item.
func (r *InventoryRepository) CreateItem(ctx context.Context, item *domain.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// GetItem retrieves an inventory item by its ID.
func (r *InventoryRepository) GetItem(ctx context.Context, id string) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("inventory item")
		}
		return nil, err
	}
	return &item, nil
}

// ListItems retrieves all inventory items, optionally filtered by category.
func (r *InventoryRepository) ListItems(ctx context.Context, category string) ([]domain.InventoryItem, error) {
	query := r.db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var items []domain.InventoryItem
	if err := query.Order("item_name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateItem persists all fields of an existing inventory item.
func (r *InventoryRepository) UpdateItem(ctx context.Context, item *domain.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// DeleteItem removes an inventory item record.
func (r *InventoryRepository) DeleteItem(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.InventoryItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFound("inventory item")
	}
	return nil
}

// CreateBin inserts a new inventory bin.
func (r *InventoryRepository) CreateBin(ctx context.Context, bin *domain.InventoryBin) error {
	return r.db.WithContext(ctx).Create(bin).Error
}

// GetBin retrieves an inventory bin by its ID.
func (r *InventoryRepository) GetBin(ctx context.Context, id string) (*domain.InventoryBin, error) {
	var bin domain.InventoryBin
	if err := r.db.WithContext(ctx).First(&bin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("inventory bin")
		}
		return nil, err
	}
	return &bin, nil
}

// ListBins retrieves bins, optionally filtered by item.
func (r *InventoryRepository) ListBins(ctx context.Context, itemID string) ([]domain.InventoryBin, error) {
	query := r.db.WithContext(ctx)
	if itemID != "" {
		query = query.Where("item_id = ?", itemID)
	}
	var bins []domain.InventoryBin
	if err := query.Order("location").Find(&bins).Error; err != nil {
		return nil, err
	}
	return bins, nil
}

// UpdateBin persists all fields of an existing inventory bin.
func (r *InventoryRepository) UpdateBin(ctx context.Context, bin *domain.InventoryBin) error {
	return r.db.WithContext(ctx).Save(bin).Error
}

// CreateActivity appends an inventory activity record.
func (r *InventoryRepository) CreateActivity(ctx context.Context, activity *domain.InventoryActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// ListActivity retrieves activity records, optionally filtered by item.
func (r *InventoryRepository) ListActivity(ctx context.Context, itemID string) ([]domain.InventoryActivity, error) {
	query := r.db.WithContext(ctx)
	if itemID != "" {
		query = query.Where("item_id = ?", itemID)
	}
	var activity []domain.InventoryActivity
	if err := query.Order("created_at DESC").Find(&activity).Error; err != nil {
		return nil, err
	}
	return activity, nil
}

// Transaction runs fn against a repository bound to a single database
// transaction so a bin transfer and its activity record commit together.
func (r *InventoryRepository) Transaction(ctx context.Context, fn func(txRepo *InventoryRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&InventoryRepository{db: tx})
	})
}

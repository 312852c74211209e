package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/repository"
)

// InventoryService owns stock movements that span multiple records.
type InventoryService struct {
	inventory *repository.InventoryRepository
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(inventory *repository.InventoryRepository) *InventoryService {
	return &InventoryService{inventory: inventory}
}

// TransferBetweenBins moves quantity of an item from one bin to another
// and writes the audit record, all inside one store transaction. The
// transfer is net zero on global stock.
func (s *InventoryService) TransferBetweenBins(ctx context.Context, itemID, fromBinID, toBinID string, quantity int) (*domain.InventoryActivity, error) {
	if quantity <= 0 {
		return nil, &domain.MalformedInputError{
			Field:  "quantity",
			Value:  fmt.Sprintf("%d", quantity),
			Reason: "must be positive",
		}
	}

	var activity *domain.InventoryActivity
	err := s.inventory.Transaction(ctx, func(txRepo *repository.InventoryRepository) error {
		from, err := txRepo.GetBin(ctx, fromBinID)
		if err != nil {
			return err
		}
		to, err := txRepo.GetBin(ctx, toBinID)
		if err != nil {
			return err
		}

		if from.ItemID != itemID || to.ItemID != itemID {
			return &domain.MalformedInputError{
				Field:  "item_id",
				Value:  itemID,
				Reason: "bins must belong to the same item",
			}
		}
		if from.Quantity < quantity {
			return &domain.MalformedInputError{
				Field:  "quantity",
				Value:  fmt.Sprintf("%d", quantity),
				Reason: "insufficient quantity in source bin",
			}
		}

		from.Quantity -= quantity
		to.Quantity += quantity
		if err := txRepo.UpdateBin(ctx, from); err != nil {
			return err
		}
		if err := txRepo.UpdateBin(ctx, to); err != nil {
			return err
		}

		activity = &domain.InventoryActivity{
			ID:             uuid.New().String(),
			ItemID:         itemID,
			Type:           domain.InventoryActivityTransfer,
			QuantityChange: 0,
			FromBinID:      fromBinID,
			ToBinID:        toBinID,
			Metadata:       domain.JSONMap{"quantity": quantity},
		}
		return txRepo.CreateActivity(ctx, activity)
	})
	if err != nil {
		return nil, err
	}
	return activity, nil
}

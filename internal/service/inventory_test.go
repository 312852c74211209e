package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/repository"
)

func seedBins(t *testing.T, repo *repository.InventoryRepository) (from, to *domain.InventoryBin) {
	t.Helper()
	ctx := context.Background()

	item := &domain.InventoryItem{ID: "item-1", ItemName: "IronRidge rail 168in", Quantity: 40}
	require.NoError(t, repo.CreateItem(ctx, item))

	from = &domain.InventoryBin{ID: "bin-a", ItemID: item.ID, Location: "warehouse", Quantity: 30}
	to = &domain.InventoryBin{ID: "bin-b", ItemID: item.ID, Location: "truck 2", Quantity: 10}
	require.NoError(t, repo.CreateBin(ctx, from))
	require.NoError(t, repo.CreateBin(ctx, to))
	return from, to
}

func TestInventoryTransferBetweenBins(t *testing.T) {
	repo := repository.NewInventoryRepository(newTestDB(t))
	svc := NewInventoryService(repo)
	from, to := seedBins(t, repo)
	ctx := context.Background()

	activity, err := svc.TransferBetweenBins(ctx, "item-1", from.ID, to.ID, 12)
	require.NoError(t, err)

	// The audit record is net zero with the moved quantity in metadata
	assert.Equal(t, domain.InventoryActivityTransfer, activity.Type)
	assert.Equal(t, 0, activity.QuantityChange)
	assert.Equal(t, from.ID, activity.FromBinID)
	assert.Equal(t, to.ID, activity.ToBinID)

	fromAfter, err := repo.GetBin(ctx, from.ID)
	require.NoError(t, err)
	toAfter, err := repo.GetBin(ctx, to.ID)
	require.NoError(t, err)
	assert.Equal(t, 18, fromAfter.Quantity)
	assert.Equal(t, 22, toAfter.Quantity)
}

func TestInventoryTransferInsufficientQuantity(t *testing.T) {
	repo := repository.NewInventoryRepository(newTestDB(t))
	svc := NewInventoryService(repo)
	from, to := seedBins(t, repo)
	ctx := context.Background()

	_, err := svc.TransferBetweenBins(ctx, "item-1", from.ID, to.ID, 31)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedInput))

	// Neither bin changed
	fromAfter, err := repo.GetBin(ctx, from.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, fromAfter.Quantity)
}

func TestInventoryTransferRejectsNonPositive(t *testing.T) {
	repo := repository.NewInventoryRepository(newTestDB(t))
	svc := NewInventoryService(repo)

	_, err := svc.TransferBetweenBins(context.Background(), "item-1", "bin-a", "bin-b", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedInput))
}

func TestInventoryTransferBinItemMismatch(t *testing.T) {
	repo := repository.NewInventoryRepository(newTestDB(t))
	svc := NewInventoryService(repo)
	from, _ := seedBins(t, repo)
	ctx := context.Background()

	other := &domain.InventoryBin{ID: "bin-c", ItemID: "item-2", Location: "truck 1", Quantity: 5}
	require.NoError(t, repo.CreateBin(ctx, other))

	_, err := svc.TransferBetweenBins(ctx, "item-1", from.ID, other.ID, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedInput))
}

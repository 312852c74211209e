package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/repository"
	"github.com/jmoreno/solarops/internal/service"
)

// InventoryHandler handles inventory item, bin, and activity endpoints.
type InventoryHandler struct {
	inventory *repository.InventoryRepository
	transfers *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(inventory *repository.InventoryRepository, transfers *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventory: inventory,
		transfers: transfers,
	}
}

// CreateItem handles POST /api/v1/inventory/items.
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var item domain.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, err)
		return
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	if err := h.inventory.CreateItem(c.Request.Context(), &item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListItems handles GET /api/v1/inventory/items. Supports a category
// filter.
func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.inventory.ListItems(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}

// GetItem handles GET /api/v1/inventory/items/:id.
func (h *InventoryHandler) GetItem(c *gin.Context) {
	item, err := h.inventory.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateItem handles PUT /api/v1/inventory/items/:id.
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	stored, err := h.inventory.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var item domain.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, err)
		return
	}
	item.ID = stored.ID
	item.CreatedAt = stored.CreatedAt

	if err := h.inventory.UpdateItem(c.Request.Context(), &item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /api/v1/inventory/items/:id.
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	if err := h.inventory.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// CreateBin handles POST /api/v1/inventory/bins.
func (h *InventoryHandler) CreateBin(c *gin.Context) {
	var bin domain.InventoryBin
	if err := c.ShouldBindJSON(&bin); err != nil {
		badRequest(c, err)
		return
	}
	if bin.ID == "" {
		bin.ID = uuid.New().String()
	}

	// The referenced item must exist
	if _, err := h.inventory.GetItem(c.Request.Context(), bin.ItemID); err != nil {
		respondError(c, err)
		return
	}

	if err := h.inventory.CreateBin(c.Request.Context(), &bin); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bin)
}

// ListBins handles GET /api/v1/inventory/bins. Supports an item_id
// filter.
func (h *InventoryHandler) ListBins(c *gin.Context) {
	bins, err := h.inventory.ListBins(c.Request.Context(), c.Query("item_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bins":  bins,
		"total": len(bins),
	})
}

type transferRequest struct {
	ItemID    string `json:"item_id" binding:"required"`
	FromBinID string `json:"from_bin_id" binding:"required"`
	ToBinID   string `json:"to_bin_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// Transfer handles POST /api/v1/inventory/bins/transfer.
func (h *InventoryHandler) Transfer(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	activity, err := h.transfers.TransferBetweenBins(
		c.Request.Context(), req.ItemID, req.FromBinID, req.ToBinID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

// ListActivity handles GET /api/v1/inventory/activity. Supports an
// item_id filter.
func (h *InventoryHandler) ListActivity(c *gin.Context) {
	activity, err := h.inventory.ListActivity(c.Request.Context(), c.Query("item_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"activity": activity,
		"total":    len(activity),
	})
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/repository"
)

// SKUHandler handles the product/service catalog endpoints.
type SKUHandler struct {
	skus *repository.SKURepository
}

// NewSKUHandler creates a new SKU handler.
func NewSKUHandler(skus *repository.SKURepository) *SKUHandler {
	return &SKUHandler{skus: skus}
}

// CreateSKU handles POST /api/v1/skus. SKU codes must be unique.
func (h *SKUHandler) CreateSKU(c *gin.Context) {
	var sku domain.ProductServiceSKU
	if err := c.ShouldBindJSON(&sku); err != nil {
		badRequest(c, err)
		return
	}
	if sku.SKU == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sku code is required"})
		return
	}

	exists, err := h.skus.ExistsByCode(c.Request.Context(), sku.SKU)
	if err != nil {
		respondError(c, err)
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "sku code already exists"})
		return
	}

	if sku.ID == "" {
		sku.ID = uuid.New().String()
		sku.IsActive = true
	}
	if sku.Type == "" {
		sku.Type = domain.SKUTypeProduct
	}

	if err := h.skus.Create(c.Request.Context(), &sku); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sku)
}

// ListSKUs handles GET /api/v1/skus. Supports type, category, active,
// and search filters.
func (h *SKUHandler) ListSKUs(c *gin.Context) {
	filter := repository.SKUFilter{
		Type:     domain.SKUType(c.Query("type")),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "active must be a boolean"})
			return
		}
		filter.IsActive = &active
	}

	skus, err := h.skus.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"skus":  skus,
		"total": len(skus),
	})
}

// GetSKU handles GET /api/v1/skus/:id.
func (h *SKUHandler) GetSKU(c *gin.Context) {
	sku, err := h.skus.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sku)
}

// UpdateSKU handles PUT /api/v1/skus/:id.
func (h *SKUHandler) UpdateSKU(c *gin.Context) {
	stored, err := h.skus.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var sku domain.ProductServiceSKU
	if err := c.ShouldBindJSON(&sku); err != nil {
		badRequest(c, err)
		return
	}
	sku.ID = stored.ID
	sku.CreatedAt = stored.CreatedAt

	// A code change must not collide with another catalog entry
	if sku.SKU != stored.SKU {
		exists, err := h.skus.ExistsByCode(c.Request.Context(), sku.SKU)
		if err != nil {
			respondError(c, err)
			return
		}
		if exists {
			c.JSON(http.StatusConflict, gin.H{"error": "sku code already exists"})
			return
		}
	}

	if err := h.skus.Update(c.Request.Context(), &sku); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sku)
}

// DeleteSKU handles DELETE /api/v1/skus/:id.
func (h *SKUHandler) DeleteSKU(c *gin.Context) {
	if err := h.skus.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

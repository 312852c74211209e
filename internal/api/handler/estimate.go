package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/repository"
	"github.com/jmoreno/solarops/internal/service"
)

// EstimateHandler handles estimate endpoints. Totals are always
// recomputed server-side from line items.
type EstimateHandler struct {
	estimates *repository.EstimateRepository
}

// NewEstimateHandler creates a new estimate handler.
func NewEstimateHandler(estimates *repository.EstimateRepository) *EstimateHandler {
	return &EstimateHandler{estimates: estimates}
}

// CreateEstimate handles POST /api/v1/estimates.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var estimate domain.Estimate
	if err := c.ShouldBindJSON(&estimate); err != nil {
		badRequest(c, err)
		return
	}
	if estimate.ID == "" {
		estimate.ID = uuid.New().String()
	}
	if estimate.Status == "" {
		estimate.Status = domain.EstimateStatusDraft
	}
	service.ApplyEstimateTotals(&estimate)

	if err := h.estimates.Create(c.Request.Context(), &estimate); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, estimate)
}

// ListEstimates handles GET /api/v1/estimates. Supports job_id and
// status filters.
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	estimates, err := h.estimates.List(c.Request.Context(),
		c.Query("job_id"), domain.EstimateStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"estimates": estimates,
		"total":     len(estimates),
	})
}

// GetEstimate handles GET /api/v1/estimates/:id.
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.estimates.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, estimate)
}

// UpdateEstimate handles PUT /api/v1/estimates/:id.
func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	stored, err := h.estimates.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var estimate domain.Estimate
	if err := c.ShouldBindJSON(&estimate); err != nil {
		badRequest(c, err)
		return
	}
	estimate.ID = stored.ID
	estimate.CreatedAt = stored.CreatedAt
	service.ApplyEstimateTotals(&estimate)

	if err := h.estimates.Update(c.Request.Context(), &estimate); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, estimate)
}

// DeleteEstimate handles DELETE /api/v1/estimates/:id.
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.estimates.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

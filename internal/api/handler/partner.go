package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/repository"
)

// PartnerHandler handles referral partner CRUD endpoints.
type PartnerHandler struct {
	partners *repository.PartnerRepository
}

// NewPartnerHandler creates a new partner handler.
func NewPartnerHandler(partners *repository.PartnerRepository) *PartnerHandler {
	return &PartnerHandler{partners: partners}
}

// CreatePartner handles POST /api/v1/partners.
func (h *PartnerHandler) CreatePartner(c *gin.Context) {
	var partner domain.Partner
	if err := c.ShouldBindJSON(&partner); err != nil {
		badRequest(c, err)
		return
	}
	if partner.ID == "" {
		partner.ID = uuid.New().String()
		partner.IsActive = true
	}

	if err := h.partners.Create(c.Request.Context(), &partner); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, partner)
}

// ListPartners handles GET /api/v1/partners. active=true filters to
// active partners only.
func (h *PartnerHandler) ListPartners(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	partners, err := h.partners.List(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"partners": partners,
		"total":    len(partners),
	})
}

// GetPartner handles GET /api/v1/partners/:id.
func (h *PartnerHandler) GetPartner(c *gin.Context) {
	partner, err := h.partners.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, partner)
}

// UpdatePartner handles PUT /api/v1/partners/:id.
func (h *PartnerHandler) UpdatePartner(c *gin.Context) {
	stored, err := h.partners.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var partner domain.Partner
	if err := c.ShouldBindJSON(&partner); err != nil {
		badRequest(c, err)
		return
	}
	partner.ID = stored.ID
	partner.CreatedAt = stored.CreatedAt

	if err := h.partners.Update(c.Request.Context(), &partner); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, partner)
}

// DeletePartner handles DELETE /api/v1/partners/:id.
func (h *PartnerHandler) DeletePartner(c *gin.Context) {
	if err := h.partners.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

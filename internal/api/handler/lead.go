package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/repository"
)

// LeadHandler handles sales lead endpoints.
type LeadHandler struct {
	leads *repository.LeadRepository
}

// NewLeadHandler creates a new lead handler.
func NewLeadHandler(leads *repository.LeadRepository) *LeadHandler {
	return &LeadHandler{leads: leads}
}

// CreateLead handles POST /api/v1/leads.
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var lead domain.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		badRequest(c, err)
		return
	}
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.Status == "" {
		lead.Status = domain.LeadStatusNew
	}

	if err := h.leads.Create(c.Request.Context(), &lead); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// ListLeads handles GET /api/v1/leads. Supports status, partner_id,
// and search query filters.
func (h *LeadHandler) ListLeads(c *gin.Context) {
	filter := repository.LeadFilter{
		Status:    domain.LeadStatus(c.Query("status")),
		PartnerID: c.Query("partner_id"),
		Search:    c.Query("search"),
	}

	leads, err := h.leads.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"leads": leads,
		"total": len(leads),
	})
}

// GetLead handles GET /api/v1/leads/:id.
func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.leads.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// UpdateLead handles PUT /api/v1/leads/:id.
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	stored, err := h.leads.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var lead domain.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		badRequest(c, err)
		return
	}
	lead.ID = stored.ID
	lead.CreatedAt = stored.CreatedAt

	if err := h.leads.Update(c.Request.Context(), &lead); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// DeleteLead handles DELETE /api/v1/leads/:id.
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	if err := h.leads.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

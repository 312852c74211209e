package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/repository"
	"github.com/jmoreno/solarops/internal/service"
)

// InvoiceHandler handles invoice endpoints. Totals and balance due are
// always recomputed server-side.
type InvoiceHandler struct {
	invoices *repository.InvoiceRepository
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(invoices *repository.InvoiceRepository) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// CreateInvoice handles POST /api/v1/invoices.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var invoice domain.Invoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		badRequest(c, err)
		return
	}
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	if invoice.Status == "" {
		invoice.Status = domain.InvoiceStatusDraft
	}
	if invoice.Type == "" {
		invoice.Type = domain.InvoiceTypeFinal
	}
	service.ApplyInvoiceTotals(&invoice)

	if err := h.invoices.Create(c.Request.Context(), &invoice); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// ListInvoices handles GET /api/v1/invoices. Supports job_id, status,
// and type filters.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	filter := repository.InvoiceFilter{
		JobID:  c.Query("job_id"),
		Status: domain.InvoiceStatus(c.Query("status")),
		Type:   domain.InvoiceType(c.Query("type")),
	}

	invoices, err := h.invoices.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"invoices": invoices,
		"total":    len(invoices),
	})
}

// GetInvoice handles GET /api/v1/invoices/:id.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.invoices.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice handles PUT /api/v1/invoices/:id.
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	stored, err := h.invoices.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var invoice domain.Invoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		badRequest(c, err)
		return
	}
	invoice.ID = stored.ID
	invoice.CreatedAt = stored.CreatedAt
	service.ApplyInvoiceTotals(&invoice)

	if err := h.invoices.Update(c.Request.Context(), &invoice); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice handles DELETE /api/v1/invoices/:id.
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.invoices.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

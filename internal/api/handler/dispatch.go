package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/repository"
	"github.com/jmoreno/solarops/internal/service"
)

// DispatchHandler handles schedule entry endpoints.
type DispatchHandler struct {
	dispatch *service.DispatchService
}

// NewDispatchHandler creates a new dispatch handler.
func NewDispatchHandler(dispatch *service.DispatchService) *DispatchHandler {
	return &DispatchHandler{dispatch: dispatch}
}

// CreateEntry handles POST /api/v1/dispatch.
func (h *DispatchHandler) CreateEntry(c *gin.Context) {
	var entry domain.ScheduleEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		badRequest(c, err)
		return
	}

	created, err := h.dispatch.Create(c.Request.Context(), &entry)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListEntries handles GET /api/v1/dispatch.
// Supports date, start_date, end_date, and crew_id query filters.
func (h *DispatchHandler) ListEntries(c *gin.Context) {
	filter := repository.ScheduleFilter{
		Date:      c.Query("date"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		CrewID:    c.Query("crew_id"),
	}

	entries, err := h.dispatch.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"total":   len(entries),
	})
}

// UpdateEntry handles PUT /api/v1/dispatch/:id.
func (h *DispatchHandler) UpdateEntry(c *gin.Context) {
	var entry domain.ScheduleEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		badRequest(c, err)
		return
	}

	updated, err := h.dispatch.Update(c.Request.Context(), c.Param("id"), &entry)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteEntry handles DELETE /api/v1/dispatch/:id.
func (h *DispatchHandler) DeleteEntry(c *gin.Context) {
	if err := h.dispatch.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

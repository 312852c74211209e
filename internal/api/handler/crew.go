package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/repository"
)

// CrewHandler handles crew CRUD endpoints.
type CrewHandler struct {
	crews *repository.CrewRepository
}

// NewCrewHandler creates a new crew handler.
func NewCrewHandler(crews *repository.CrewRepository) *CrewHandler {
	return &CrewHandler{crews: crews}
}

// CreateCrew handles POST /api/v1/crews.
func (h *CrewHandler) CreateCrew(c *gin.Context) {
	var crew domain.Crew
	if err := c.ShouldBindJSON(&crew); err != nil {
		badRequest(c, err)
		return
	}
	if crew.ID == "" {
		crew.ID = uuid.New().String()
	}

	if err := h.crews.Create(c.Request.Context(), &crew); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, crew)
}

// ListCrews handles GET /api/v1/crews.
func (h *CrewHandler) ListCrews(c *gin.Context) {
	crews, err := h.crews.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"crews": crews,
		"total": len(crews),
	})
}

// GetCrew handles GET /api/v1/crews/:id.
func (h *CrewHandler) GetCrew(c *gin.Context) {
	crew, err := h.crews.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, crew)
}

// UpdateCrew handles PUT /api/v1/crews/:id.
func (h *CrewHandler) UpdateCrew(c *gin.Context) {
	stored, err := h.crews.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var crew domain.Crew
	if err := c.ShouldBindJSON(&crew); err != nil {
		badRequest(c, err)
		return
	}
	crew.ID = stored.ID
	crew.CreatedAt = stored.CreatedAt

	if err := h.crews.Update(c.Request.Context(), &crew); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, crew)
}

// DeleteCrew handles DELETE /api/v1/crews/:id.
func (h *CrewHandler) DeleteCrew(c *gin.Context) {
	if err := h.crews.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

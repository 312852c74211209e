package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/repository"
)

// VehicleHandler handles vehicle CRUD endpoints.
type VehicleHandler struct {
	vehicles *repository.VehicleRepository
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(vehicles *repository.VehicleRepository) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

// CreateVehicle handles POST /api/v1/vehicles.
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var vehicle domain.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		badRequest(c, err)
		return
	}
	if vehicle.ID == "" {
		vehicle.ID = uuid.New().String()
	}
	if vehicle.Status == "" {
		vehicle.Status = domain.VehicleStatusActive
	}

	if err := h.vehicles.Create(c.Request.Context(), &vehicle); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

// ListVehicles handles GET /api/v1/vehicles. Supports a crew_id filter.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.vehicles.List(c.Request.Context(), c.Query("crew_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"vehicles": vehicles,
		"total":    len(vehicles),
	})
}

// GetVehicle handles GET /api/v1/vehicles/:id.
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.vehicles.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// UpdateVehicle handles PUT /api/v1/vehicles/:id.
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	stored, err := h.vehicles.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var vehicle domain.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		badRequest(c, err)
		return
	}
	vehicle.ID = stored.ID
	vehicle.CreatedAt = stored.CreatedAt

	if err := h.vehicles.Update(c.Request.Context(), &vehicle); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle handles DELETE /api/v1/vehicles/:id.
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	if err := h.vehicles.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jmoreno/solarops/internal/service"
)

// WeatherHandler proxies forecast lookups for the dispatch board.
type WeatherHandler struct {
	weather *service.WeatherService
}

// NewWeatherHandler creates a new weather handler.
func NewWeatherHandler(weather *service.WeatherService) *WeatherHandler {
	return &WeatherHandler{weather: weather}
}

// GetForecast handles GET /api/v1/weather/forecast?lat=..&lon=..
func (h *WeatherHandler) GetForecast(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat must be a number"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lon must be a number"})
		return
	}

	snapshot, err := h.weather.Forecast(c.Request.Context(), lat, lon)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "weather provider unavailable"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

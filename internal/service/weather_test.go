package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoreno/solarops/internal/domain"
)

func TestWeatherMockWithoutAPIKey(t *testing.T) {
	svc := NewWeatherService(&WeatherServiceConfig{})
	require.False(t, svc.IsEnabled())

	snapshot, err := svc.Forecast(context.Background(), 33.45, -112.07)
	require.NoError(t, err)
	assert.Equal(t, "Clear", snapshot.Condition)
	assert.Equal(t, 75, snapshot.Temperature)
}

func TestWeatherForecastParsesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "imperial", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"weather": [{"main": "Rain", "description": "light rain", "icon": "10d"}],
			"main": {"temp": 58.3, "humidity": 87},
			"wind": {"speed": 14.2},
			"rain": {"1h": 0.4}
		}`))
	}))
	defer server.Close()

	svc := NewWeatherService(&WeatherServiceConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	require.True(t, svc.IsEnabled())

	snapshot, err := svc.Forecast(context.Background(), 33.45, -112.07)
	require.NoError(t, err)
	assert.Equal(t, "Rain", snapshot.Condition)
	assert.Equal(t, "light rain", snapshot.Description)
	assert.Equal(t, 58, snapshot.Temperature)
	assert.Equal(t, 87, snapshot.Humidity)
	assert.Equal(t, 14.2, snapshot.WindSpeed)
	assert.Equal(t, 0.4, snapshot.Precipitation)
	assert.Equal(t, "10d", snapshot.Icon)
}

func TestWeatherForecastUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := NewWeatherService(&WeatherServiceConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})

	_, err := svc.Forecast(context.Background(), 33.45, -112.07)
	require.Error(t, err)
}

func TestWeatherForecastForJobWithoutCoordinates(t *testing.T) {
	svc := NewWeatherService(&WeatherServiceConfig{})

	_, err := svc.ForecastForJob(context.Background(), &domain.Job{ID: "job-1"})
	require.Error(t, err)
}

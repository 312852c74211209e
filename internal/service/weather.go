package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jmoreno/solarops/internal/domain"
)

// WeatherService fetches forecast snapshots from an OpenWeatherMap-style
// API. All calls are best-effort from the caller's perspective: dispatch
// treats a nil snapshot as "no weather captured" and proceeds.
type WeatherService struct {
	client  *resty.Client
	apiKey  string
	baseURL string
}

// WeatherServiceConfig holds configuration for the weather client.
type WeatherServiceConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// NewWeatherService creates a new weather client.
// Parameters:
//   - cfg: API key, base URL, and request timeout.
// Returns:
//   - *WeatherService: initialized client wrapper.
func NewWeatherService(cfg *WeatherServiceConfig) *WeatherService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	client := resty.New()
	client.SetTimeout(timeout)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5"
	}

	return &WeatherService{
		client:  client,
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
	}
}

// IsEnabled reports whether an API key is configured. Without one,
// Forecast returns a canned snapshot so development environments still
// populate the field.
func (s *WeatherService) IsEnabled() bool {
	return s.apiKey != ""
}

// openweather current-conditions response, trimmed to what we read.
type owmResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
}

// mockSnapshot is returned when no API key is configured.
func mockSnapshot() *domain.WeatherSnapshot {
	return &domain.WeatherSnapshot{
		Condition:     "Clear",
		Temperature:   75,
		Humidity:      60,
		WindSpeed:     10,
		Precipitation: 0,
		Forecast:      "Sunny skies expected",
	}
}

// Forecast fetches current conditions for a coordinate pair.
// Parameters:
//   - ctx: context for cancellation; the client also enforces its timeout.
//   - lat, lon: site coordinates.
// Returns:
//   - *domain.WeatherSnapshot: forecast snapshot.
//   - error: non-nil if the API request fails or returns a non-2xx status.
func (s *WeatherService) Forecast(ctx context.Context, lat, lon float64) (*domain.WeatherSnapshot, error) {
	if !s.IsEnabled() {
		return mockSnapshot(), nil
	}

	var out owmResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":   fmt.Sprintf("%f", lat),
			"lon":   fmt.Sprintf("%f", lon),
			"appid": s.apiKey,
			"units": "imperial",
		}).
		SetResult(&out).
		Get(s.baseURL + "/weather")
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode())
	}
	if len(out.Weather) == 0 {
		return nil, fmt.Errorf("weather API returned empty conditions")
	}

	return &domain.WeatherSnapshot{
		Condition:     out.Weather[0].Main,
		Description:   out.Weather[0].Description,
		Temperature:   int(out.Main.Temp + 0.5),
		Humidity:      out.Main.Humidity,
		WindSpeed:     out.Wind.Speed,
		Precipitation: out.Rain.OneHour,
		Forecast:      out.Weather[0].Description,
		Icon:          out.Weather[0].Icon,
	}, nil
}

// ForecastForJob fetches a snapshot for a job's site coordinates.
// Jobs without captured coordinates yield no snapshot.
func (s *WeatherService) ForecastForJob(ctx context.Context, job *domain.Job) (*domain.WeatherSnapshot, error) {
	if job.Latitude == nil || job.Longitude == nil {
		return nil, fmt.Errorf("job %s has no site coordinates", job.ID)
	}
	return s.Forecast(ctx, *job.Latitude, *job.Longitude)
}

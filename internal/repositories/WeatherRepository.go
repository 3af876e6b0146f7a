package repositories

import (
	"context"
	"net/http"

	"weather-mcp/internal/models"
)

// WeatherRepository is the outbound weather-data boundary consumed by the
// service layer.
type WeatherRepository interface {
	Name() string
	FetchCurrent(ctx context.Context, lat, lon float64) ([]byte, error)
	FetchForecast(ctx context.Context, lat, lon float64) (*models.DailyForecast, error)
}

// HTTPClient abstracts *http.Client for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

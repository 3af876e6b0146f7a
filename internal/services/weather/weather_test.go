package weather_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-mcp/internal/models"
	"weather-mcp/internal/repositories"
	"weather-mcp/internal/services/weather"
	"weather-mcp/pkg/logger"
)

// fakeRepository records calls and returns canned results.
type fakeRepository struct {
	currentBody  []byte
	currentErr   error
	forecast     *models.DailyForecast
	forecastErr  error
	currentCalls int
	lastLat      float64
	lastLon      float64
}

func (f *fakeRepository) Name() string { return "fake" }

func (f *fakeRepository) FetchCurrent(ctx context.Context, lat, lon float64) ([]byte, error) {
	f.currentCalls++
	f.lastLat = lat
	f.lastLon = lon
	return f.currentBody, f.currentErr
}

func (f *fakeRepository) FetchForecast(ctx context.Context, lat, lon float64) (*models.DailyForecast, error) {
	return f.forecast, f.forecastErr
}

func newService(repo repositories.WeatherRepository) *weather.WeatherService {
	return weather.NewWeatherService(repo, logger.NewZapLogger("test-app"))
}

func TestCurrentWeather_Failure(t *testing.T) {
	svc := newService(&fakeRepository{currentErr: errors.New("connection refused")})

	result := svc.CurrentWeather(context.Background(), 13.7563, 100.5018)
	assert.Equal(t, "Unable to fetch weather data.", result)
}

func TestCurrentWeather_PrettyPrintsVerbatim(t *testing.T) {
	raw := `{"latitude":13.75,"current":{"temperature_2m":31.4,"relative_humidity_2m":70,"precipitation":0.0}}`
	svc := newService(&fakeRepository{currentBody: []byte(raw)})

	result := svc.CurrentWeather(context.Background(), 13.7563, 100.5018)

	// Still the same payload, just indented.
	var got, want map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &got))
	require.NoError(t, json.Unmarshal([]byte(raw), &want))
	assert.Equal(t, want, got)

	assert.Contains(t, result, "\n  \"current\"")
	assert.Contains(t, result, "temperature_2m")
}

func TestForecast_Failure(t *testing.T) {
	svc := newService(&fakeRepository{forecastErr: errors.New("HTTP error (status 500)")})

	result := svc.Forecast(context.Background(), 52.52, 13.41)
	assert.Equal(t, "Unable to fetch forecast data.", result)
}

func TestForecast_FormatsBlocksPerDay(t *testing.T) {
	svc := newService(&fakeRepository{forecast: &models.DailyForecast{
		Time:             []string{"2024-01-01", "2024-01-02"},
		Temperature2mMax: []float64{25.5, 26.1},
		Temperature2mMin: []float64{15.2, 16},
		PrecipitationSum: []float64{0, 4.2},
	}})

	result := svc.Forecast(context.Background(), 52.52, 13.41)

	blocks := strings.Split(result, "\n---\n")
	require.Len(t, blocks, 2)

	assert.Equal(t, "Date: 2024-01-01\nMax Temperature: 25.5°C\nMin Temperature: 15.2°C\nPrecipitation: 0.0 mm", blocks[0])
	assert.Equal(t, "Date: 2024-01-02\nMax Temperature: 26.1°C\nMin Temperature: 16.0°C\nPrecipitation: 4.2 mm", blocks[1])
}

func TestWeatherByCity_UnknownCity(t *testing.T) {
	repo := &fakeRepository{currentBody: []byte(`{}`)}
	svc := newService(repo)

	result := svc.WeatherByCity(context.Background(), "Atlantis")

	assert.Equal(t, "Sorry, coordinates for 'Atlantis' are not available. Please provide latitude and longitude coordinates.", result)
	assert.Zero(t, repo.currentCalls, "unknown city must not trigger a network call")
}

func TestWeatherByCity_CaseInsensitive(t *testing.T) {
	repo := &fakeRepository{currentBody: []byte(`{"current":{"temperature_2m":31.4}}`)}
	svc := newService(repo)

	lower := svc.WeatherByCity(context.Background(), "bangkok")
	upper := svc.WeatherByCity(context.Background(), "BANGKOK")
	mixed := svc.WeatherByCity(context.Background(), "BangKok")

	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, mixed)

	assert.Equal(t, 13.7563, repo.lastLat)
	assert.Equal(t, 100.5018, repo.lastLon)
	assert.Equal(t, 3, repo.currentCalls)
}

func TestCurrentWeather_AgainstStubbedAPI(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"latitude":13.75,"longitude":100.5,"current":{"temperature_2m":32.1,"relative_humidity_2m":65,"precipitation":0.0}}`))
	}))
	defer mockServer.Close()

	l := logger.NewZapLogger("test-app")
	repo := repositories.NewOpenMeteoRepository(mockServer.URL, "weather-app/1.0", 5*time.Second, true, l)
	svc := weather.NewWeatherService(repo, l)

	result := svc.CurrentWeather(context.Background(), 13.7563, 100.5018)

	var payload struct {
		Current struct {
			Temperature2m float64 `json:"temperature_2m"`
		} `json:"current"`
	}
	require.NoError(t, json.Unmarshal([]byte(result), &payload))
	assert.Equal(t, 32.1, payload.Current.Temperature2m)
}

func TestForecast_AgainstStubbedAPIFailure(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer mockServer.Close()

	l := logger.NewZapLogger("test-app")
	repo := repositories.NewOpenMeteoRepository(mockServer.URL, "weather-app/1.0", 5*time.Second, true, l)
	svc := weather.NewWeatherService(repo, l)

	assert.Equal(t, "Unable to fetch forecast data.", svc.Forecast(context.Background(), 52.52, 13.41))
	assert.Equal(t, "Unable to fetch weather data.", svc.CurrentWeather(context.Background(), 52.52, 13.41))
}

package weather

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"weather-mcp/internal/cities"
	"weather-mcp/internal/models"
	"weather-mcp/internal/repositories"
	"weather-mcp/pkg/logger"
)

// Fixed client-facing sentences. The invocation boundary expects a string
// result and has no separate error channel, so every failure collapses into
// one of these.
const (
	MsgWeatherUnavailable  = "Unable to fetch weather data."
	MsgForecastUnavailable = "Unable to fetch forecast data."

	unknownCityFormat = "Sorry, coordinates for '%s' are not available. Please provide latitude and longitude coordinates."
)

const forecastSeparator = "\n---\n"

// WeatherService shapes repository results into the plain-text answers
// handed back to the host runtime.
type WeatherService struct {
	repo repositories.WeatherRepository
	l    *logger.Logger
}

func NewWeatherService(repo repositories.WeatherRepository, l *logger.Logger) *WeatherService {
	return &WeatherService{
		repo: repo,
		l:    l,
	}
}

// CurrentWeather returns current conditions for a coordinate as
// pretty-printed JSON, verbatim from the API apart from indentation.
func (s *WeatherService) CurrentWeather(ctx context.Context, lat, lon float64) string {
	body, err := s.repo.FetchCurrent(ctx, lat, lon)
	if err != nil {
		s.l.Warning("failed to fetch current weather", map[string]any{
			"repo": s.repo.Name(), "lat": lat, "lon": lon, "err": err,
		})
		return MsgWeatherUnavailable
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		s.l.Warning("failed to indent weather payload", map[string]any{"err": err})
		return MsgWeatherUnavailable
	}

	return pretty.String()
}

// Forecast returns the daily forecast for a coordinate as one text block per
// day, joined by a fixed separator line.
func (s *WeatherService) Forecast(ctx context.Context, lat, lon float64) string {
	daily, err := s.repo.FetchForecast(ctx, lat, lon)
	if err != nil {
		s.l.Warning("failed to fetch forecast", map[string]any{
			"repo": s.repo.Name(), "lat": lat, "lon": lon, "err": err,
		})
		return MsgForecastUnavailable
	}

	blocks := make([]string, 0, len(daily.Time))
	for i := range daily.Time {
		blocks = append(blocks, formatDay(daily, i))
	}

	return strings.Join(blocks, forecastSeparator)
}

// WeatherByCity resolves a city name against the static table and delegates
// to CurrentWeather. An unknown city answers immediately; no request is made.
func (s *WeatherService) WeatherByCity(ctx context.Context, cityName string) string {
	coordinate, ok := cities.Lookup(cityName)
	if !ok {
		s.l.Info("unknown city requested", map[string]any{"city": cityName})
		return fmt.Sprintf(unknownCityFormat, cityName)
	}

	return s.CurrentWeather(ctx, coordinate.Latitude, coordinate.Longitude)
}

func formatDay(daily *models.DailyForecast, i int) string {
	return fmt.Sprintf("Date: %s\nMax Temperature: %s°C\nMin Temperature: %s°C\nPrecipitation: %s mm",
		daily.Time[i],
		formatValue(daily.Temperature2mMax[i]),
		formatValue(daily.Temperature2mMin[i]),
		formatValue(daily.PrecipitationSum[i]),
	)
}

// formatValue renders a reading in its shortest form, keeping at least one
// decimal so whole numbers read as "16.0", not "16".
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

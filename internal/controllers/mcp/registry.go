package mcp

import (
	"context"

	mcpsdk "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"weather-mcp/internal/cities"
	"weather-mcp/internal/services/weather"
	"weather-mcp/pkg/logger"
)

const popularCitiesURI = "weather://popular-cities"

type routes struct {
	service *weather.WeatherService
	l       *logger.Logger
}

// Register binds the weather operations and the city-discovery resource onto
// the MCP server. The host runtime invokes them by name with JSON arguments;
// every handler answers with a plain text result, including failures.
func Register(
	s *server.MCPServer,
	weatherService *weather.WeatherService,
	l *logger.Logger,
) {
	r := &routes{
		service: weatherService,
		l:       l,
	}

	s.AddTool(mcpsdk.NewTool("get_current_weather",
		mcpsdk.WithDescription("Get current weather for a location."),
		mcpsdk.WithNumber("latitude",
			mcpsdk.Required(),
			mcpsdk.Description("Latitude of the location"),
		),
		mcpsdk.WithNumber("longitude",
			mcpsdk.Required(),
			mcpsdk.Description("Longitude of the location"),
		),
	), r.handleCurrentWeather)

	s.AddTool(mcpsdk.NewTool("get_forecast",
		mcpsdk.WithDescription("Get weather forecast for a location."),
		mcpsdk.WithNumber("latitude",
			mcpsdk.Required(),
			mcpsdk.Description("Latitude of the location"),
		),
		mcpsdk.WithNumber("longitude",
			mcpsdk.Required(),
			mcpsdk.Description("Longitude of the location"),
		),
	), r.handleForecast)

	s.AddTool(mcpsdk.NewTool("get_weather_by_city",
		mcpsdk.WithDescription("Get current weather by city name."),
		mcpsdk.WithString("city_name",
			mcpsdk.Required(),
			mcpsdk.Description("Name of the city"),
		),
	), r.handleWeatherByCity)

	s.AddResource(mcpsdk.NewResource(popularCitiesURI, "Popular Cities",
		mcpsdk.WithResourceDescription("List of popular cities with weather support"),
		mcpsdk.WithMIMEType("text/plain"),
	), r.handlePopularCities)

	r.l.Info("mcp registry initialized", map[string]any{
		"tools":     []string{"get_current_weather", "get_forecast", "get_weather_by_city"},
		"resources": []string{popularCitiesURI},
	})
}

func (r *routes) handleCurrentWeather(ctx context.Context, request mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	lat, err := request.RequireFloat("latitude")
	if err != nil {
		return mcpsdk.NewToolResultError(err.Error()), nil
	}
	lon, err := request.RequireFloat("longitude")
	if err != nil {
		return mcpsdk.NewToolResultError(err.Error()), nil
	}

	return mcpsdk.NewToolResultText(r.service.CurrentWeather(ctx, lat, lon)), nil
}

func (r *routes) handleForecast(ctx context.Context, request mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	lat, err := request.RequireFloat("latitude")
	if err != nil {
		return mcpsdk.NewToolResultError(err.Error()), nil
	}
	lon, err := request.RequireFloat("longitude")
	if err != nil {
		return mcpsdk.NewToolResultError(err.Error()), nil
	}

	return mcpsdk.NewToolResultText(r.service.Forecast(ctx, lat, lon)), nil
}

func (r *routes) handleWeatherByCity(ctx context.Context, request mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	cityName, err := request.RequireString("city_name")
	if err != nil {
		return mcpsdk.NewToolResultError(err.Error()), nil
	}

	return mcpsdk.NewToolResultText(r.service.WeatherByCity(ctx, cityName)), nil
}

func (r *routes) handlePopularCities(ctx context.Context, request mcpsdk.ReadResourceRequest) ([]mcpsdk.ResourceContents, error) {
	return []mcpsdk.ResourceContents{
		mcpsdk.TextResourceContents{
			URI:      popularCitiesURI,
			MIMEType: "text/plain",
			Text:     cities.List(),
		},
	}, nil
}

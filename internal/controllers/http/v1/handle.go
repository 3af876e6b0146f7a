package http

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required parameter: lat"`
}

// GetCurrentWeather godoc
// @Summary Get current weather
// @Description Retrieves current weather conditions for a coordinate as pretty-printed JSON
// @Tags Weather
// @Produce plain
// @Param lat query number true "Latitude coordinate (-90 to 90)" minimum(-90) maximum(90) example(13.7563)
// @Param lon query number true "Longitude coordinate (-180 to 180)" minimum(-180) maximum(180) example(100.5018)
// @Success 200 {string} string "Pretty-printed JSON weather payload"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Router /weather [get]
func (r *routes) handleCurrentWeather(c *fiber.Ctx) error {
	lat, lon, errResp := parseCoordinates(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}

	return c.SendString(r.service.CurrentWeather(c.Context(), lat, lon))
}

// GetForecast godoc
// @Summary Get weather forecast
// @Description Retrieves the daily forecast for a coordinate as one text block per day
// @Tags Weather
// @Produce plain
// @Param lat query number true "Latitude coordinate (-90 to 90)" minimum(-90) maximum(90) example(52.52)
// @Param lon query number true "Longitude coordinate (-180 to 180)" minimum(-180) maximum(180) example(13.41)
// @Success 200 {string} string "Formatted forecast blocks"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Router /forecast [get]
func (r *routes) handleForecast(c *fiber.Ctx) error {
	lat, lon, errResp := parseCoordinates(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}

	return c.SendString(r.service.Forecast(c.Context(), lat, lon))
}

// GetWeatherByCity godoc
// @Summary Get current weather by city name
// @Description Resolves a city name against the static city table and returns its current weather
// @Tags Weather
// @Produce plain
// @Param name path string true "City name (case-insensitive)" example(Bangkok)
// @Success 200 {string} string "Weather information for the city"
// @Router /weather/city/{name} [get]
func (r *routes) handleWeatherByCity(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		name = c.Params("name")
	}

	return c.SendString(r.service.WeatherByCity(c.Context(), name))
}

func parseCoordinates(c *fiber.Ctx) (float64, float64, *ErrorResponse) {
	lat := c.Query("lat")
	lon := c.Query("lon")

	// Check for required parameters
	if lat == "" {
		return 0, 0, &ErrorResponse{Error: "Missing required parameter: lat"}
	}

	if lon == "" {
		return 0, 0, &ErrorResponse{Error: "Missing required parameter: lon"}
	}

	latFloat, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return 0, 0, &ErrorResponse{Error: "Invalid latitude format"}
	}

	if latFloat < -90 || latFloat > 90 {
		return 0, 0, &ErrorResponse{Error: "Latitude must be between -90 and 90"}
	}

	lonFloat, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return 0, 0, &ErrorResponse{Error: "Invalid longitude format"}
	}

	if lonFloat < -180 || lonFloat > 180 {
		return 0, 0, &ErrorResponse{Error: "Longitude must be between -180 and 180"}
	}

	return latFloat, lonFloat, nil
}

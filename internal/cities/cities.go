package cities

import (
	"fmt"
	"strings"

	"weather-mcp/internal/models"
)

// entry pairs a display name with its coordinate so List keeps a stable,
// human-friendly order while Lookup stays case-insensitive.
type entry struct {
	displayName string
	coordinate  models.Coordinate
}

// Static geocoding table for major cities. Lookup keys are the lower-cased
// display names; no fuzzy matching, aliasing, or diacritic folding.
var table = []entry{
	{"Bangkok", models.Coordinate{Latitude: 13.7563, Longitude: 100.5018}},
	{"Tokyo", models.Coordinate{Latitude: 35.6762, Longitude: 139.6503}},
	{"New York", models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}},
	{"London", models.Coordinate{Latitude: 51.5074, Longitude: -0.1278}},
	{"Paris", models.Coordinate{Latitude: 48.8566, Longitude: 2.3522}},
	{"Singapore", models.Coordinate{Latitude: 1.3521, Longitude: 103.8198}},
	{"Sydney", models.Coordinate{Latitude: -33.8688, Longitude: 151.2093}},
	{"Los Angeles", models.Coordinate{Latitude: 34.0522, Longitude: -118.2437}},
}

var index = buildIndex()

func buildIndex() map[string]models.Coordinate {
	m := make(map[string]models.Coordinate, len(table))
	for _, e := range table {
		m[strings.ToLower(e.displayName)] = e.coordinate
	}
	return m
}

// Lookup resolves a city name to its coordinate. Matching is exact after
// lower-casing the input.
func Lookup(name string) (models.Coordinate, bool) {
	coordinate, ok := index[strings.ToLower(name)]
	return coordinate, ok
}

// List returns the newline-joined discovery list of supported cities with
// their coordinates, e.g. "Bangkok (13.7563, 100.5018)".
func List() string {
	lines := make([]string, 0, len(table))
	for _, e := range table {
		lines = append(lines, fmt.Sprintf("%s (%.4f, %.4f)", e.displayName, e.coordinate.Latitude, e.coordinate.Longitude))
	}
	return strings.Join(lines, "\n")
}

package cities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_CaseInsensitive(t *testing.T) {
	variants := []string{"bangkok", "Bangkok", "BANGKOK", "bAnGkOk"}

	for _, name := range variants {
		coordinate, ok := Lookup(name)
		require.True(t, ok, "expected %q to resolve", name)
		assert.Equal(t, 13.7563, coordinate.Latitude)
		assert.Equal(t, 100.5018, coordinate.Longitude)
	}
}

func TestLookup_AllCities(t *testing.T) {
	known := []string{
		"bangkok", "tokyo", "new york", "london",
		"paris", "singapore", "sydney", "los angeles",
	}

	for _, name := range known {
		_, ok := Lookup(name)
		assert.True(t, ok, "expected %q to resolve", name)
	}
}

func TestLookup_UnknownCity(t *testing.T) {
	_, ok := Lookup("Atlantis")
	assert.False(t, ok)
}

func TestList(t *testing.T) {
	list := List()

	lines := strings.Split(list, "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "Bangkok (13.7563, 100.5018)", lines[0])
	assert.Equal(t, "Los Angeles (34.0522, -118.2437)", lines[7])
	assert.Contains(t, list, "New York (40.7128, -74.0060)")
	assert.Contains(t, list, "Sydney (-33.8688, 151.2093)")
}

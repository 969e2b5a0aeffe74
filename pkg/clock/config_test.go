package clock

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 {
	return &v
}

func TestValidateDefaults(t *testing.T) {
	ok, warnings := DefaultConfig().Validate()
	assert.True(t, ok)
	assert.Empty(t, warnings)
}

func TestValidateBadColorWarnsOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Color = "not-a-color"

	ok, warnings := cfg.Validate()
	assert.True(t, ok, "bad colors degrade to white, they do not fail validation")
	assert.Len(t, warnings, 1)
}

func TestValidateUnknownTimezoneWarnsOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Location = &Location{Timezone: "Mars/Olympus_Mons"}

	ok, warnings := cfg.Validate()
	assert.True(t, ok)
	assert.Len(t, warnings, 1)
}

func TestValidateCoordinateRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Location = &Location{Lat: f(99), Lng: f(0)}

	ok, _ := cfg.Validate()
	assert.False(t, ok)

	cfg.Location = &Location{Lat: f(45), Lng: f(-181)}
	ok, _ = cfg.Validate()
	assert.False(t, ok)

	cfg.Location = &Location{Lat: f(-90), Lng: f(180)}
	ok, _ = cfg.Validate()
	assert.True(t, ok, "boundary values are valid")
}

func TestConfigJSONKeys(t *testing.T) {
	raw := `{
		"is_24_hour_format": false,
		"has_leading_zero": true,
		"has_flashing_separator": false,
		"color_daytime": "#FFD27F",
		"color_nighttime": "#1A1A40",
		"min_fade_elevation": -6,
		"location": {"timezone": "Europe/London", "lat": 51.5, "lng": -0.1, "locality": "London"}
	}`

	var cfg Config
	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))

	assert.False(t, cfg.Is24HourFormat)
	assert.True(t, cfg.HasLeadingZero)
	assert.False(t, cfg.HasFlashingSeparator)
	assert.True(t, cfg.Blended())
	assert.Equal(t, -6.0, cfg.MinFadeElevation)
	require.NotNil(t, cfg.Location)
	assert.Equal(t, 51.5, *cfg.Location.Lat)
	assert.Equal(t, "London", cfg.Location.Locality)
}

func TestCoordinatesFallback(t *testing.T) {
	lat, lng := DefaultConfig().coordinates()
	assert.Equal(t, DefaultLat, lat)
	assert.Equal(t, DefaultLng, lng)

	cfg := DefaultConfig()
	cfg.Location = &Location{Lat: f(40.7), Lng: f(-74.0)}
	lat, lng = cfg.coordinates()
	assert.Equal(t, 40.7, lat)
	assert.Equal(t, -74.0, lng)
}

package clock

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/colorx"
)

// Reference location used by the blended variant when none is configured.
const (
	DefaultLat      = 51.4769
	DefaultLng      = -0.0005
	DefaultLocality = "Greenwich"
)

type Location struct {
	Timezone string   `json:"timezone,omitempty"`
	Lat      *float64 `json:"lat,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Lng      *float64 `json:"lng,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Locality string   `json:"locality,omitempty"`
}

// Config mirrors the host's plugin configuration mapping. Setting either
// of the daytime/nighttime colors selects the solar-blended style;
// otherwise the single static color is used.
type Config struct {
	Is24HourFormat       bool      `json:"is_24_hour_format"`
	HasLeadingZero       bool      `json:"has_leading_zero"`
	HasFlashingSeparator bool      `json:"has_flashing_separator"`
	Color                string    `json:"color,omitempty"`
	ColorDaytime         string    `json:"color_daytime,omitempty"`
	ColorNighttime       string    `json:"color_nighttime,omitempty"`
	MinFadeElevation     float64   `json:"min_fade_elevation"`
	Location             *Location `json:"location,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Is24HourFormat:       true,
		HasLeadingZero:       false,
		HasFlashingSeparator: true,
		Color:                "#FFFFFF",
		MinFadeElevation:     -1,
	}
}

// Blended reports whether the solar-blended style is configured.
func (c Config) Blended() bool {
	return c.ColorDaytime != "" || c.ColorNighttime != ""
}

var validate = validator.New()

// Validate checks the configuration without rendering anything. Range
// violations (latitude/longitude) fail validation; recoverable problems
// like malformed colors or unknown timezones only produce warnings, since
// rendering substitutes defaults for those.
func (c Config) Validate() (bool, []string) {
	var warnings []string

	for key, val := range map[string]string{
		"color":           c.Color,
		"color_daytime":   c.ColorDaytime,
		"color_nighttime": c.ColorNighttime,
	} {
		if val == "" {
			continue
		}
		if _, err := colorx.ParseHex(val); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v, white will be used", key, err))
		}
	}

	if c.Location != nil && c.Location.Timezone != "" {
		if _, err := time.LoadLocation(c.Location.Timezone); err != nil {
			warnings = append(warnings, fmt.Sprintf("unknown timezone %q, UTC will be used", c.Location.Timezone))
		}
	}

	if err := validate.Struct(c); err != nil {
		return false, append(warnings, err.Error())
	}

	return true, warnings
}

// coordinates returns the configured position, falling back to the
// reference location.
func (c Config) coordinates() (lat, lng float64) {
	lat, lng = DefaultLat, DefaultLng
	if c.Location == nil {
		return lat, lng
	}
	if c.Location.Lat != nil {
		lat = *c.Location.Lat
	}
	if c.Location.Lng != nil {
		lng = *c.Location.Lng
	}
	return lat, lng
}

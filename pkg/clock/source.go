package clock

import (
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/colorx"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/sun"
)

// MaxFadeElevation is the elevation at which the daytime color is fully
// reached, in degrees. Matches the reference behavior: not configurable,
// so with the default min_fade_elevation of -1 the colors hard-cut
// instead of fading.
const MaxFadeElevation = -1.0

// ColorSource decides the display color for an instant.
type ColorSource interface {
	Color(at time.Time) colorx.RGB
}

// StaticColor always returns c.
func StaticColor(c colorx.RGB) ColorSource {
	return staticColor(c)
}

type staticColor colorx.RGB

func (s staticColor) Color(time.Time) colorx.RGB {
	return colorx.RGB(s)
}

// ElevationProvider yields the sun's angle above the horizon in degrees.
// Satisfied by sun.Provider.
type ElevationProvider interface {
	Elevation(at time.Time) float64
}

var _ ElevationProvider = (*sun.Provider)(nil)

// NewSunBlend blends between the daytime and nighttime colors by the
// sun's elevation: fully day at MaxFadeElevation and above, fully night
// at minFade and below. A collapsed fade range acts as a hard cutover.
func NewSunBlend(day, night colorx.RGB, minFade float64, elev ElevationProvider, logger *zap.Logger) ColorSource {
	return &sunBlend{
		day:     day,
		night:   night,
		minFade: minFade,
		elev:    elev,
		logger:  logger,
	}
}

type sunBlend struct {
	day     colorx.RGB
	night   colorx.RGB
	minFade float64
	elev    ElevationProvider
	logger  *zap.Logger
}

func (s *sunBlend) Color(at time.Time) colorx.RGB {
	e := s.elev.Elevation(at)

	if s.minFade == MaxFadeElevation {
		return lo.Ternary(e >= MaxFadeElevation, s.day, s.night)
	}

	p := colorx.Proportion(s.minFade, MaxFadeElevation, e)
	c := colorx.Mix(s.day, s.night, p)

	s.logger.With(
		zap.Float64("elevation", e),
		zap.Float64("proportion", p),
		zap.String("color", c.Hex()),
	).Debug("sun blend")

	return c
}

// Package sun computes the solar elevation angle used to blend the clock
// color between its daytime and nighttime settings.
package sun

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"
	"go.uber.org/zap"
)

func NewProvider(lat, lng float64, logger *zap.Logger) *Provider {
	return &Provider{lat: lat, lng: lng, logger: logger}
}

type Provider struct {
	lat    float64
	lng    float64
	logger *zap.Logger
}

// Elevation returns the sun's angle above the horizon in degrees at the
// given instant, negative when the sun is below the horizon. A failed
// computation is logged and reported as 0.
func (p *Provider) Elevation(at time.Time) float64 {
	pos := suncalc.GetPosition(at.UTC(), p.lat, p.lng)

	deg := pos.Altitude * 180 / math.Pi
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		p.logger.With(
			zap.Float64("lat", p.lat),
			zap.Float64("lng", p.lng),
			zap.Time("at", at),
		).Warn("solar elevation undefined, using 0")
		return 0
	}

	return deg
}

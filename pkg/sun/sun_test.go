package sun

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestElevationDayNight(t *testing.T) {
	// Greenwich, summer solstice
	p := NewProvider(51.4769, -0.0005, zap.NewNop())

	noon := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	assert.Greater(t, p.Elevation(noon), 50.0, "midsummer noon sun is high")

	midnight := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)
	assert.Less(t, p.Elevation(midnight), 0.0, "sun below horizon at night")
}

func TestElevationWinterLow(t *testing.T) {
	p := NewProvider(51.4769, -0.0005, zap.NewNop())

	noon := time.Date(2024, 12, 21, 12, 0, 0, 0, time.UTC)
	e := p.Elevation(noon)
	assert.Greater(t, e, 0.0)
	assert.Less(t, e, 20.0, "midwinter noon sun stays low")
}

func TestElevationRange(t *testing.T) {
	p := NewProvider(-33.86, 151.21, zap.NewNop())

	for h := 0; h < 24; h++ {
		e := p.Elevation(time.Date(2024, 3, 15, h, 0, 0, 0, time.UTC))
		assert.GreaterOrEqual(t, e, -90.0)
		assert.LessOrEqual(t, e, 90.0)
	}
}

// Renders a single clock frame to a PNG file, for checking layout and
// colors without hardware.
package main

import (
	"image"
	"log"
	"time"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/canvas"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/clock"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/glyph"
)

var width = flag.Int("width", 64, "frame width in pixels")
var height = flag.Int("height", 32, "frame height in pixels")
var at = flag.String("at", "", "instant to render, RFC3339 (now if empty)")
var out = flag.String("out", "clock.png", "output file")
var assets = flag.String("assets", "", "directory with glyph PNGs (builtin glyphs if empty)")
var color = flag.String("color", "#FFFFFF", "static display color")
var colorDay = flag.String("color-day", "", "daytime color (enables solar blending)")
var colorNight = flag.String("color-night", "", "nighttime color (enables solar blending)")
var minFade = flag.Float64("min-fade", -1, "elevation where the night color is fully reached")
var timezone = flag.String("tz", "", "IANA timezone")
var twelveHour = flag.Bool("12h", false, "12-hour format")
var leadingZero = flag.Bool("leading-zero", false, "keep the leading hour zero")

func main() {
	flag.Parse()

	logger, _ := zap.NewDevelopment()

	now := time.Now()
	if *at != "" {
		var err error
		now, err = time.Parse(time.RFC3339, *at)
		if err != nil {
			log.Fatal(err)
		}
	}

	cfg := clock.DefaultConfig()
	cfg.Color = *color
	cfg.ColorDaytime = *colorDay
	cfg.ColorNighttime = *colorNight
	cfg.MinFadeElevation = *minFade
	cfg.Is24HourFormat = !*twelveHour
	cfg.HasLeadingZero = *leadingZero
	cfg.Location = &clock.Location{Timezone: *timezone}

	set := glyph.Builtin()
	if *assets != "" {
		set = glyph.Load(afero.NewBasePathFs(afero.NewOsFs(), *assets), logger)
	}

	sink := &fileSink{path: *out}
	cv := canvas.NewBuffered(*width, *height, sink)

	c := clock.New(cfg, cv, set, logger, clock.WithNow(func() time.Time { return now }))
	c.Update()
	c.Display(true)
}

type fileSink struct {
	path string
}

func (s *fileSink) Push(frame image.Image) error {
	return imaging.Save(imaging.Clone(frame), s.path)
}

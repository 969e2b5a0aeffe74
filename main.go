package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/canvas"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/clock"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/device/panel"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/glyph"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/proto"
)

// Minimal demo: draw the current time once to a panel on the default
// serial port. The real daemon lives in cmd/clock.
func main() {
	logger, _ := zap.NewDevelopment()

	dev, err := panel.New(proto.NewSerial("ttyACM0"), 64, 32, logger)
	if err != nil {
		panic(err)
	}

	if err := dev.Startup(); err != nil {
		panic(err)
	}

	if err := dev.SetBrightness(80); err != nil {
		panic(err)
	}

	cv := canvas.NewBuffered(64, 32, dev)
	c := clock.New(clock.DefaultConfig(), cv, glyph.Builtin(), logger)

	c.Update()
	c.Display(true)

	time.Sleep(time.Second)
	if err := dev.Shutdown(); err != nil {
		panic(err)
	}
}

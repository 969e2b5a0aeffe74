package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/canvas"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/clock"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/device"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/device/panel"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/device/remote"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/device/virtual"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/glyph"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/locate"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/proto"
)

var serial = flag.String("serial", "ttyACM0", "serial name of the panel")
var remoteAddr = flag.String("remote", "", "push frames to a remote proxy instead")
var virtualDev = flag.Bool("virtual", false, "log frames instead of driving hardware")
var width = flag.Int("width", 64, "panel width in pixels")
var height = flag.Int("height", 32, "panel height in pixels")
var brightness = flag.Uint8("brightness", 80, "panel brightness")
var assets = flag.String("assets", "", "directory with number_N.png / separator.png (builtin glyphs if empty)")
var interval = flag.String("interval", "1s", "refresh interval")
var debug = flag.Bool("debug", false, "set debug")

var color = flag.String("color", "#FFFFFF", "static display color")
var colorDay = flag.String("color-day", "", "daytime color (enables solar blending)")
var colorNight = flag.String("color-night", "", "nighttime color (enables solar blending)")
var minFade = flag.Float64("min-fade", -1, "elevation in degrees where the night color is fully reached")
var timezone = flag.String("tz", "", "IANA timezone")
var lat = flag.Float64("lat", 0, "latitude")
var lng = flag.Float64("lng", 0, "longitude")
var autoLocate = flag.Bool("auto-locate", false, "resolve location from the public IP")
var twelveHour = flag.Bool("12h", false, "12-hour format")
var leadingZero = flag.Bool("leading-zero", false, "keep the leading hour zero")
var noFlash = flag.Bool("no-flash", false, "disable the flashing separator")

func main() {
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	if !*debug {
		logger, _ = zap.NewProduction()
	}

	tick, err := time.ParseDuration(*interval)
	if err != nil {
		log.Fatal(err)
	}

	var dev device.Control
	var devErr error

	switch {
	case *virtualDev:
		dev = virtual.Mock(logger)
	case *remoteAddr != "":
		dev, devErr = remote.New(*remoteAddr)
	default:
		dev, devErr = panel.New(proto.NewSerial(*serial), *width, *height, logger)
	}
	if devErr != nil {
		log.Fatal(devErr)
	}

	if err := dev.Startup(); err != nil {
		log.Fatal(err)
	}

	if err := dev.SetBrightness(*brightness); err != nil {
		log.Fatal(err)
	}

	cfg := buildConfig(logger)

	set := glyph.Builtin()
	if *assets != "" {
		set = glyph.Load(afero.NewBasePathFs(afero.NewOsFs(), *assets), logger)
	}

	if ok, warnings := cfg.Validate(); !ok {
		log.Fatalf("invalid config: %v", warnings)
	} else {
		for _, w := range warnings {
			logger.With(zap.String("warning", w)).Warn("config")
		}
	}

	cv := canvas.NewBuffered(*width, *height, dev)
	c := clock.New(cfg, cv, set, logger)

	shutdown := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		ticker := time.NewTicker(tick)

		defer func() {
			ticker.Stop()
			if err := dev.Shutdown(); err != nil {
				logger.With(zap.Error(err)).Info("shutdown failed")
			}
			exited <- struct{}{}
		}()

		c.Update()
		c.Display(true)

		for {
			select {
			case <-shutdown:
				return
			case <-ticker.C:
				c.Update()
				c.Display(false)
			}
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)

	<-signals
	logger.Info("shutting down")
	shutdown <- struct{}{}
	<-exited
	logger.Info("exited")
}

func buildConfig(logger *zap.Logger) clock.Config {
	cfg := clock.DefaultConfig()
	cfg.Is24HourFormat = !*twelveHour
	cfg.HasLeadingZero = *leadingZero
	cfg.HasFlashingSeparator = !*noFlash
	cfg.Color = *color
	cfg.ColorDaytime = *colorDay
	cfg.ColorNighttime = *colorNight
	cfg.MinFadeElevation = *minFade

	loc := &clock.Location{Timezone: *timezone}
	if flag.CommandLine.Changed("lat") {
		loc.Lat = lat
	}
	if flag.CommandLine.Changed("lng") {
		loc.Lng = lng
	}

	if *autoLocate {
		if place, err := locate.NewResolver(logger).Resolve(); err != nil {
			logger.With(zap.Error(err)).Warn("auto-locate failed, using configured location")
		} else {
			loc.Lat = &place.Lat
			loc.Lng = &place.Lng
			loc.Locality = place.Locality
			if loc.Timezone == "" {
				loc.Timezone = place.Timezone
			}
		}
	}

	cfg.Location = loc
	return cfg
}

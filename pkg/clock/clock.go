// Package clock implements the seven-segment clock plugin: it formats
// the current time, picks a color, and composites recolored digit glyphs
// onto a host-owned canvas once per tick.
package clock

import (
	"time"

	"github.com/rs/xid"
	"go.uber.org/zap"

	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/canvas"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/colorx"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/glyph"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/render"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/sun"
)

var alertColor = colorx.RGB{R: 255}

func New(cfg Config, cv canvas.Canvas, set *glyph.Set, logger *zap.Logger, opts ...Option) *Clock {
	c := &Clock{
		cfg:          cfg,
		cv:           cv,
		set:          set,
		logger:       logger,
		now:          time.Now,
		firstDisplay: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.id == "" {
		c.id = xid.New().String()
	}
	c.logger = c.logger.With(zap.String("plugin", c.id))
	c.comp = render.NewCompositor(set, c.logger)

	c.initTimezone()
	c.initStyle()

	c.logger.Info("7-segment clock plugin initialized")
	return c
}

// Clock owns the per-tick render state. Update refreshes the cached
// instant and color; Display consumes them. Single-threaded by contract
// with the host.
type Clock struct {
	id     string
	cfg    Config
	cv     canvas.Canvas
	set    *glyph.Set
	comp   *render.Compositor
	logger *zap.Logger
	now    func() time.Time

	globalTimezone string
	loc            *time.Location
	source         ColorSource
	mode           glyph.Mode
	autoScale      bool
	clearOnChange  bool

	current      time.Time
	color        colorx.RGB
	lastTimeStr  string
	firstDisplay bool
}

// initTimezone resolves the plugin timezone, then the host-global one,
// then UTC.
func (c *Clock) initTimezone() {
	name := ""
	if c.cfg.Location != nil {
		name = c.cfg.Location.Timezone
	}
	if name == "" {
		name = c.globalTimezone
	}
	if name == "" {
		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		c.logger.With(zap.String("timezone", name)).Warn("unknown timezone, using UTC")
		loc = time.UTC
	} else {
		c.logger.With(zap.String("timezone", name)).Debug("using timezone")
	}
	c.loc = loc
}

// initStyle derives the variant from the configuration unless a custom
// color source was injected.
func (c *Clock) initStyle() {
	if c.cfg.Blended() {
		c.mode = glyph.Keep
		c.autoScale = false
		c.clearOnChange = false
		if c.source == nil {
			lat, lng := c.cfg.coordinates()
			c.source = NewSunBlend(
				c.parseColor(c.cfg.ColorDaytime, "color_daytime"),
				c.parseColor(c.cfg.ColorNighttime, "color_nighttime"),
				c.cfg.MinFadeElevation,
				sun.NewProvider(lat, lng, c.logger),
				c.logger,
			)
		}
		return
	}

	c.mode = glyph.Flatten
	c.autoScale = true
	c.clearOnChange = true
	if c.source == nil {
		c.source = StaticColor(c.parseColor(c.cfg.Color, "color"))
	}
}

func (c *Clock) parseColor(s, key string) colorx.RGB {
	if s == "" {
		return colorx.White
	}
	rgb, err := colorx.ParseHex(s)
	if err != nil {
		c.logger.With(zap.String("key", key), zap.Error(err)).Warn("invalid color, using white")
	}
	return rgb
}

// Update caches the current time in the configured timezone and the
// display color for the next Display call. It never fails.
func (c *Clock) Update() {
	now := c.now().In(c.loc)
	c.current = now
	c.color = c.source.Color(now)

	c.logger.With(
		zap.String("time", now.Format("15:04:05")),
		zap.String("color", c.color.Hex()),
	).Debug("updated")
}

// Display renders the clock frame and flushes the canvas. It never
// propagates a failure to the host tick: anything going wrong ends in
// the error frame instead.
func (c *Clock) Display(forceClear bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.With(zap.Any("panic", r)).Error("display failed")
			c.errorFrame()
		}
	}()

	if c.current.IsZero() {
		c.Update()
	}

	timeStr, separatorVisible := formatTime(
		c.current,
		c.cfg.Is24HourFormat,
		c.cfg.HasLeadingZero,
		c.cfg.HasFlashingSeparator,
	)

	timeChanged := timeStr != c.lastTimeStr
	if forceClear || (c.clearOnChange && (c.firstDisplay || timeChanged)) {
		c.cv.Clear()
	}
	c.firstDisplay = false
	if timeChanged {
		c.lastTimeStr = timeStr
	}

	tokens := render.Tokenize(timeStr, separatorVisible, c.set.HasSeparator())
	if !render.HasDigits(tokens) {
		c.logger.Warn("no digits to display, skipping render")
		return
	}

	layout := render.Compute(tokens, c.cv.Bounds(), c.autoScale)
	c.comp.Paint(c.cv, tokens, c.color, c.mode, layout)

	if err := c.cv.Flush(); err != nil {
		c.logger.With(zap.Error(err)).Error("flush failed")
		c.errorFrame()
	}
}

// errorFrame replaces the canvas content with a short alert message.
func (c *Clock) errorFrame() {
	c.cv.Clear()
	canvas.DrawText(c.cv, 2, 12, "CLOCK ERR", alertColor)
	if err := c.cv.Flush(); err != nil {
		c.logger.With(zap.Error(err)).Error("error frame flush failed")
	}
}

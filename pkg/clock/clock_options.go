package clock

import "time"

type Option func(c *Clock)

// WithID sets the host-assigned plugin instance id used in log fields.
func WithID(id string) Option {
	return func(c *Clock) {
		c.id = id
	}
}

// WithGlobalTimezone supplies the host's process-wide timezone, used when
// the plugin configuration does not name one.
func WithGlobalTimezone(tz string) Option {
	return func(c *Clock) {
		c.globalTimezone = tz
	}
}

// WithNow overrides the wall clock, for previews and tests.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		c.now = now
	}
}

// WithColorSource replaces the config-derived color strategy.
func WithColorSource(src ColorSource) Option {
	return func(c *Clock) {
		c.source = src
	}
}

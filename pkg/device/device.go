// Package device defines the control contract shared by the physical
// panel, the rpc proxy client and the virtual device.
package device

import "github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/canvas"

type Control interface {
	canvas.Sink

	Startup() error
	Shutdown() error
	SetBrightness(level uint8) error
}

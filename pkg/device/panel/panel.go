// Package panel drives a serial-attached RGB LED matrix: a small command
// set plus full-frame RGB565 pushes.
package panel

import (
	"image"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/bitmap"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/proto"
)

// Panel command codes.
const (
	Startup       = 0x01
	Shutdown      = 0x02
	SetBrightness = 0x03
	ClearScreen   = 0x04
	PushFrame     = 0x10
)

func New(serial *proto.Serial, width, height int, logger *zap.Logger) (*Panel, error) {
	p := &Panel{
		serial: serial,
		logger: logger,
		width:  width,
		height: height,
	}
	return p, serial.Open(&proto.Options{
		DTR:         true,
		RTS:         true,
		BaudRate:    921600,
		ReadTimeout: time.Millisecond,
	})
}

type Panel struct {
	serial *proto.Serial
	logger *zap.Logger
	width  int
	height int
}

func (p *Panel) Size() (int, int) {
	return p.width, p.height
}

func (p *Panel) Startup() error {
	return p.sendCMD(Startup)
}

func (p *Panel) Shutdown() error {
	return p.sendCMD(Shutdown)
}

func (p *Panel) Clear() error {
	return p.sendCMD(ClearScreen)
}

func (p *Panel) SetBrightness(level uint8) error {
	return p.sendCMD(SetBrightness, int(level))
}

// Push sends a full frame. The frame must match the panel dimensions
// exactly; partial updates are not part of the wire protocol.
func (p *Panel) Push(frame image.Image) error {
	size := frame.Bounds().Size()
	if size.X != p.width || size.Y != p.height {
		return errors.Errorf("frame %dx%d does not fit panel %dx%d", size.X, size.Y, p.width, p.height)
	}

	payload := bitmap.Encode(frame)
	if err := p.sendCMD(PushFrame, len(payload)); err != nil {
		return err
	}

	return p.sendBytes(payload)
}

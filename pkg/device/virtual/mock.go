package virtual

import (
	"image"

	"go.uber.org/zap"

	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/device"
)

// Mock returns a device that only logs, for development without a panel.
func Mock(logger *zap.Logger) device.Control {
	return &Mocker{logger}
}

type Mocker struct {
	l *zap.Logger
}

func (m *Mocker) Startup() error {
	m.l.Info("startup")
	return nil
}

func (m *Mocker) Shutdown() error {
	m.l.Info("shutdown")
	return nil
}

func (m *Mocker) SetBrightness(level uint8) error {
	m.l.With(zap.Uint8("level", level)).Info("set-brightness")
	return nil
}

func (m *Mocker) Push(frame image.Image) error {
	m.l.With(
		zap.Int("w", frame.Bounds().Dx()),
		zap.Int("h", frame.Bounds().Dy()),
	).Info("push-frame")
	return nil
}

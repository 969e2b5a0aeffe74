// Package canvas defines the drawing surface contract the clock renders
// onto, decoupling it from whatever device owns the real framebuffer.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
)

// Sink receives finished frames. Device drivers implement it.
type Sink interface {
	Push(frame image.Image) error
}

// Canvas is the surface the clock draws on: a clearable pixel rectangle
// with alpha-composited paste and an explicit flush to the output device.
type Canvas interface {
	Bounds() image.Rectangle
	Clear()
	Compose(at image.Point, img image.Image)
	Flush() error
}

// NewBuffered returns a Canvas backed by an in-memory frame which is
// pushed whole to sink on every Flush.
func NewBuffered(width, height int, sink Sink) *Buffered {
	return &Buffered{
		frame: image.NewNRGBA(image.Rect(0, 0, width, height)),
		sink:  sink,
	}
}

type Buffered struct {
	frame *image.NRGBA
	sink  Sink
}

func (b *Buffered) Bounds() image.Rectangle {
	return b.frame.Bounds()
}

// Clear fills the frame with opaque black.
func (b *Buffered) Clear() {
	draw.Draw(b.frame, b.frame.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
}

// Compose pastes img at the given position, blending by source alpha.
func (b *Buffered) Compose(at image.Point, img image.Image) {
	r := img.Bounds().Sub(img.Bounds().Min).Add(at)
	draw.Draw(b.frame, r, img, img.Bounds().Min, draw.Over)
}

func (b *Buffered) Flush() error {
	return b.sink.Push(b.frame)
}

// Frame exposes the backing image for tests and file sinks.
func (b *Buffered) Frame() image.Image {
	return b.frame
}

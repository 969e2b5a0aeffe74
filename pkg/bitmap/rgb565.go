// Package bitmap encodes frames into the RGB565 wire format the matrix
// panel consumes: two bytes per pixel, five bits red, six green, five
// blue, no alpha.
package bitmap

import (
	"image"
	"image/color"
)

func NewRGB565(r image.Rectangle) *RGB565 {
	return &RGB565{
		pixels: make([]byte, 2*r.Dx()*r.Dy()),
		stride: 2 * r.Dx(),
		bounds: r,
	}
}

// RGB565 is a draw.Image over the panel's pixel buffer. Bytes are laid
// out little endian, low byte first, matching the panel controller.
type RGB565 struct {
	pixels []byte
	stride int
	bounds image.Rectangle
}

func (d *RGB565) Bounds() image.Rectangle {
	return d.bounds
}

func (d *RGB565) ColorModel() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		r, g, b, _ := c.RGBA()
		return pack(r, g, b)
	})
}

func (d *RGB565) At(x, y int) color.Color {
	if !(image.Pt(x, y).In(d.bounds)) {
		return rgb565(0)
	}
	i := y*d.stride + 2*x
	return rgb565(d.pixels[i+1])<<8 | rgb565(d.pixels[i])
}

func (d *RGB565) Set(x, y int, c color.Color) {
	if !(image.Pt(x, y).In(d.bounds)) {
		return
	}

	r, g, b, a := c.RGBA()
	if a == 0 {
		return
	}

	v := pack(r, g, b)
	i := y*d.stride + 2*x
	d.pixels[i+1] = byte(v >> 8)
	d.pixels[i] = byte(v & 0xFF)
}

// Pixels exposes the raw buffer for the serial transfer.
func (d *RGB565) Pixels() []byte {
	return d.pixels
}

// Encode converts any image into the panel's pixel buffer.
func Encode(src image.Image) []byte {
	b := src.Bounds()
	d := NewRGB565(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			d.Set(x, y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}

	return d.pixels
}

// pack keeps the top 5/6/5 bits of each 16-bit channel.
func pack(r, g, b uint32) rgb565 {
	return rgb565((r & 0xF800) + ((g & 0xFC00) >> 5) + ((b & 0xF800) >> 11))
}

// rgb565 implements color.Color by widening each channel back to 16
// bits, duplicating the short bit pattern so min and max map exactly.
type rgb565 uint16

func (c rgb565) RGBA() (r, g, b, a uint32) {
	rBits := uint32(c & 0xF800)
	gBits := uint32(c & 0x7E0)
	bBits := uint32(c & 0x1F)
	r = rBits | rBits>>5 | rBits>>10 | rBits>>15
	g = gBits<<5 | gBits>>1 | gBits>>7
	b = bBits<<11 | bBits<<6 | bBits<<1 | bBits>>4
	a = 0xFFFF
	return
}

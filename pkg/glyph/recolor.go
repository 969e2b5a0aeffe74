package glyph

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/colorx"
)

// Mode selects how Recolor treats alpha.
type Mode int

const (
	// Flatten paints lit pixels fully opaque and everything else fully
	// transparent.
	Flatten Mode = iota
	// Keep paints lit pixels with their original alpha and passes
	// non-lit pixels through unchanged, so anti-aliased edges and the
	// encoded background survive.
	Keep
)

// Recolor returns a new bitmap with every lit pixel of src replaced by c.
// A pixel is lit when it has any alpha and is not pure black. src is
// never mutated.
func Recolor(src image.Image, c colorx.RGB, mode Mode) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			px := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			lit := px.A > 0 && (px.R != 0 || px.G != 0 || px.B != 0)

			switch {
			case lit && mode == Flatten:
				dst.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
			case lit:
				dst.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: px.A})
			case mode == Keep:
				dst.SetNRGBA(x, y, px)
			default:
				// Flatten leaves the zero value: transparent.
			}
		}
	}

	return dst
}

// Scale resizes img by a uniform factor with Lanczos resampling. A factor
// of 1 returns img as-is.
func Scale(img image.Image, factor float64) image.Image {
	if factor == 1 {
		return img
	}

	b := img.Bounds()
	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)

	return imaging.Resize(img, w, h, imaging.Lanczos)
}

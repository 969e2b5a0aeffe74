package glyph

import (
	"image"
	"image/color"
)

// Segment bits, named after the usual seven-segment layout.
const (
	segTop = 1 << iota
	segTopRight
	segBottomRight
	segBottom
	segBottomLeft
	segTopLeft
	segMiddle
)

var digitSegments = [10]int{
	segTop | segTopRight | segBottomRight | segBottom | segBottomLeft | segTopLeft,
	segTopRight | segBottomRight,
	segTop | segTopRight | segMiddle | segBottomLeft | segBottom,
	segTop | segTopRight | segMiddle | segBottomRight | segBottom,
	segTopLeft | segMiddle | segTopRight | segBottomRight,
	segTop | segTopLeft | segMiddle | segBottomRight | segBottom,
	segTop | segTopLeft | segMiddle | segBottomLeft | segBottomRight | segBottom,
	segTop | segTopRight | segBottomRight,
	segTop | segTopRight | segBottomRight | segBottom | segBottomLeft | segTopLeft | segMiddle,
	segTop | segTopRight | segBottomRight | segBottom | segTopLeft | segMiddle,
}

var segmentRects = map[int]image.Rectangle{
	segTop:         image.Rect(2, 0, 11, 3),
	segMiddle:      image.Rect(2, 14, 11, 17),
	segBottom:      image.Rect(2, 29, 11, 32),
	segTopLeft:     image.Rect(0, 2, 3, 15),
	segBottomLeft:  image.Rect(0, 17, 3, 30),
	segTopRight:    image.Rect(10, 2, 13, 15),
	segBottomRight: image.Rect(10, 17, 13, 30),
}

// Builtin returns a synthesized glyph set at the standard metrics, white
// segments on an opaque black background like the shipped PNG assets
// encode. The background matters: preserve-alpha recoloring passes it
// through, which is what overdraws stale pixels on a canvas that is
// never cleared.
func Builtin() *Set {
	s := &Set{}

	for d := 0; d < 10; d++ {
		img := newBackground(DigitWidth, DigitHeight)
		for seg, r := range segmentRects {
			if digitSegments[d]&seg == 0 {
				continue
			}
			fill(img, r)
		}
		s.digits[d] = img
	}

	sep := newBackground(SeparatorWidth, SeparatorHeight)
	fill(sep, image.Rect(0, 1, 4, 5))
	fill(sep, image.Rect(0, 9, 4, 13))
	s.separator = sep

	return s
}

func newBackground(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	black := color.NRGBA{A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, black)
		}
	}
	return img
}

func fill(img *image.NRGBA, r image.Rectangle) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, white)
		}
	}
}

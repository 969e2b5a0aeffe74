package render

import (
	"image"
	"math"

	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/glyph"
)

// Scale factor limits, keeping the digits readable on any panel.
const (
	minScale = 0.5
	maxScale = 3.0
	padding  = 0.9
)

// Layout is the resolved geometry for one frame: the uniform scale, the
// scaled glyph metrics and the centered origin.
type Layout struct {
	Scale      float64
	DigitW     int
	DigitH     int
	SepW       int
	SepH       int
	TotalWidth int
	OriginX    int
	OriginY    int
}

// Compute lays the token sequence out on a canvas of the given bounds.
// With autoScale the largest factor in [0.5, 3.0] is chosen such that the
// sequence fits within 90% of the canvas in both dimensions; otherwise
// the glyphs keep their native size.
func Compute(tokens []Token, bounds image.Rectangle, autoScale bool) Layout {
	baseWidth := 0
	for _, t := range tokens {
		switch {
		case t == Separator:
			baseWidth += glyph.SeparatorWidth
		case t.IsDigit():
			baseWidth += glyph.DigitWidth
		}
	}

	width := bounds.Dx()
	height := bounds.Dy()

	scale := 1.0
	if autoScale && baseWidth > 0 {
		scaleW := float64(width) * padding / float64(baseWidth)
		scaleH := float64(height) * padding / float64(glyph.DigitHeight)
		scale = math.Max(minScale, math.Min(maxScale, math.Min(scaleW, scaleH)))
	}

	l := Layout{
		Scale:  scale,
		DigitW: int(glyph.DigitWidth * scale),
		DigitH: int(glyph.DigitHeight * scale),
		SepW:   int(glyph.SeparatorWidth * scale),
		SepH:   int(glyph.SeparatorHeight * scale),
	}

	for _, t := range tokens {
		switch {
		case t == Separator:
			l.TotalWidth += l.SepW
		case t.IsDigit():
			l.TotalWidth += l.DigitW
		}
	}

	l.OriginX = (width - l.TotalWidth) / 2
	l.OriginY = (height - l.DigitH) / 2

	return l
}

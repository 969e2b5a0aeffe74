package render

import (
	"image"

	"go.uber.org/zap"

	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/canvas"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/colorx"
	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/glyph"
)

func NewCompositor(set *glyph.Set, logger *zap.Logger) *Compositor {
	return &Compositor{set: set, logger: logger}
}

// Compositor recolors glyphs and pastes them left to right onto a canvas.
type Compositor struct {
	set    *glyph.Set
	logger *zap.Logger
}

// Paint draws the token sequence in the given color. Unavailable glyphs
// are skipped without advancing the cursor; Absent tokens neither draw
// nor advance.
func (r *Compositor) Paint(cv canvas.Canvas, tokens []Token, c colorx.RGB, mode glyph.Mode, l Layout) {
	x := l.OriginX

	for _, t := range tokens {
		switch {
		case t == Separator:
			src, ok := r.set.Separator()
			if !ok {
				continue
			}
			img := glyph.Scale(glyph.Recolor(src, c, mode), l.Scale)
			y := l.OriginY + (l.DigitH-l.SepH)/2
			cv.Compose(image.Pt(x, y), img)
			x += l.SepW

		case t.IsDigit():
			src, ok := r.set.Digit(int(t))
			if !ok {
				r.logger.With(zap.Int("digit", int(t))).Warn("digit glyph unavailable")
				continue
			}
			img := glyph.Scale(glyph.Recolor(src, c, mode), l.Scale)
			cv.Compose(image.Pt(x, l.OriginY), img)
			x += l.DigitW
		}
	}
}

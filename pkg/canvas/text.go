package canvas

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/colorx"
)

// DrawText writes s onto the canvas in the fixed 7x13 face, with the
// baseline at (x, y). Used for the in-display error message.
func DrawText(c Canvas, x, y int, s string, col colorx.RGB) {
	face := basicfont.Face7x13

	w := font.MeasureString(face, s).Ceil()
	h := face.Metrics().Height.Ceil()
	ascent := face.Metrics().Ascent.Ceil()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col.NRGBA()),
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(s)

	c.Compose(image.Pt(x, y-ascent), img)
}

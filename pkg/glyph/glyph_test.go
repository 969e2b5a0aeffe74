package glyph

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ChuckBuilds/ledmatrix-7-segment-clock/pkg/colorx"
)

// testGlyph builds a 4x4 bitmap covering the recolor cases: a lit pixel,
// an anti-aliased edge pixel, transparent background and opaque black.
func testGlyph() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255}) // lit
	img.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 200, B: 200, A: 128}) // lit, partial alpha
	img.SetNRGBA(2, 0, color.NRGBA{A: 255})                         // opaque black
	// (3,0) and the rest: fully transparent
	return img
}

func TestRecolorFlatten(t *testing.T) {
	red := colorx.RGB{R: 255}
	out := Recolor(testGlyph(), red, Flatten)

	assert.Equal(t, color.NRGBA{R: 255, A: 255}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, out.NRGBAAt(1, 0), "partial alpha flattens to opaque")
	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(2, 0), "black becomes transparent")
	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(3, 0))
}

func TestRecolorKeep(t *testing.T) {
	red := colorx.RGB{R: 255}
	out := Recolor(testGlyph(), red, Keep)

	assert.Equal(t, color.NRGBA{R: 255, A: 255}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 255, A: 128}, out.NRGBAAt(1, 0), "edge alpha preserved")
	assert.Equal(t, color.NRGBA{A: 255}, out.NRGBAAt(2, 0), "black background passes through")
	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(3, 0))
}

func TestRecolorIdempotent(t *testing.T) {
	c := colorx.RGB{R: 10, G: 200, B: 30}
	src := testGlyph()

	a := Recolor(src, c, Flatten)
	b := Recolor(src, c, Flatten)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestRecolorDoesNotMutateSource(t *testing.T) {
	src := testGlyph()
	before := append([]byte(nil), src.Pix...)

	Recolor(src, colorx.RGB{B: 255}, Flatten)
	assert.Equal(t, before, src.Pix)

	out := Recolor(src, colorx.RGB{G: 255}, Keep)
	assert.Equal(t, before, src.Pix)
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, out.NRGBAAt(0, 0))
}

func TestScale(t *testing.T) {
	src := testGlyph()

	same := Scale(src, 1)
	assert.Equal(t, image.Image(src), same)

	double := Scale(src, 2)
	assert.Equal(t, 8, double.Bounds().Dx())
	assert.Equal(t, 8, double.Bounds().Dy())
}

func TestBuiltinComplete(t *testing.T) {
	s := Builtin()

	for d := 0; d < 10; d++ {
		img, ok := s.Digit(d)
		require.True(t, ok, "digit %d", d)
		assert.Equal(t, DigitWidth, img.Bounds().Dx())
		assert.Equal(t, DigitHeight, img.Bounds().Dy())
	}

	sep, ok := s.Separator()
	require.True(t, ok)
	assert.Equal(t, SeparatorWidth, sep.Bounds().Dx())
	assert.Equal(t, SeparatorHeight, sep.Bounds().Dy())
}

func TestBuiltinOpaqueBackground(t *testing.T) {
	s := Builtin()

	one, _ := s.Digit(1)
	assert.Equal(t, color.NRGBA{A: 255}, one.(*image.NRGBA).NRGBAAt(0, 0),
		"unlit pixels are opaque black so preserve-alpha recoloring overdraws")

	sep, _ := s.Separator()
	assert.Equal(t, color.NRGBA{A: 255}, sep.(*image.NRGBA).NRGBAAt(0, 0))
}

func TestBuiltinDigitsDiffer(t *testing.T) {
	s := Builtin()
	one, _ := s.Digit(1)
	eight, _ := s.Digit(8)
	assert.NotEqual(t, one.(*image.NRGBA).Pix, eight.(*image.NRGBA).Pix)
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testGlyph()))

	// drop digit 7 on purpose, keep the rest plus the separator
	for i := 0; i < 10; i++ {
		if i == 7 {
			continue
		}
		require.NoError(t, afero.WriteFile(fs, "number_"+string(rune('0'+i))+".png", buf.Bytes(), 0644))
	}
	require.NoError(t, afero.WriteFile(fs, "separator.png", buf.Bytes(), 0644))

	s := Load(fs, zap.NewNop())

	_, ok := s.Digit(7)
	assert.False(t, ok, "missing asset leaves the slot empty")

	for _, d := range []int{0, 1, 2, 3, 4, 5, 6, 8, 9} {
		_, ok := s.Digit(d)
		assert.True(t, ok, "digit %d", d)
	}
	assert.True(t, s.HasSeparator())
}

func TestLoadRejectsGarbage(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "number_0.png", []byte("not a png"), 0644))

	s := Load(fs, zap.NewNop())
	_, ok := s.Digit(0)
	assert.False(t, ok)
}

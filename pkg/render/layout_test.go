package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("12:34", true, true)
	require.Equal(t, []Token{1, 2, Separator, 3, 4}, tokens)

	tokens = Tokenize("12:34", false, true)
	require.Equal(t, []Token{1, 2, Absent, 3, 4}, tokens)

	// no separator glyph available
	tokens = Tokenize("12:34", true, false)
	require.Equal(t, []Token{1, 2, Absent, 3, 4}, tokens)
}

func TestHasDigits(t *testing.T) {
	assert.True(t, HasDigits([]Token{0}))
	assert.True(t, HasDigits([]Token{Absent, Separator}))
	assert.False(t, HasDigits([]Token{Absent}))
	assert.False(t, HasDigits(nil))
}

func TestComputeNativeSize(t *testing.T) {
	tokens := Tokenize("12:34", true, true)
	l := Compute(tokens, image.Rect(0, 0, 64, 40), true)

	// 4 digits x 13 + separator 4 = 56; width allows 57.6/56, height
	// 36/32, so the effective glyph metrics stay native
	assert.InDelta(t, 1.0286, l.Scale, 0.001)
	assert.Equal(t, 13, l.DigitW)
	assert.Equal(t, 56, l.TotalWidth)
	assert.Equal(t, 4, l.OriginX)
	assert.Equal(t, 4, l.OriginY)
}

func TestComputeHeightBound(t *testing.T) {
	tokens := Tokenize("12:34", true, true)
	l := Compute(tokens, image.Rect(0, 0, 64, 32), true)

	// the 32px digit only fits 90% of a 32px panel at 0.9
	assert.InDelta(t, 0.9, l.Scale, 1e-9)
	assert.Equal(t, 11, l.DigitW)
	assert.Equal(t, 47, l.TotalWidth)
	assert.Equal(t, 8, l.OriginX)
	assert.Equal(t, 2, l.OriginY)
}

func TestComputeAbsentReservesNoWidth(t *testing.T) {
	visible := Compute(Tokenize("12:34", true, true), image.Rect(0, 0, 64, 32), false)
	blanked := Compute(Tokenize("12:34", false, true), image.Rect(0, 0, 64, 32), false)

	assert.Equal(t, visible.TotalWidth-4, blanked.TotalWidth)
	assert.Equal(t, visible.OriginX+2, blanked.OriginX)
}

func TestComputeScalesUp(t *testing.T) {
	tokens := Tokenize("1:00", true, true)
	l := Compute(tokens, image.Rect(0, 0, 256, 128), true)

	// width allows 230.4/43, height allows 115.2/32; clamped to 3.0
	assert.Equal(t, 3.0, l.Scale)
	assert.Equal(t, 39, l.DigitW)
	assert.Equal(t, 96, l.DigitH)
}

func TestComputeScaleFloor(t *testing.T) {
	tokens := Tokenize("23:59", true, true)
	l := Compute(tokens, image.Rect(0, 0, 16, 8), true)

	assert.Equal(t, 0.5, l.Scale)
	assert.Equal(t, 6, l.DigitW)
	assert.Equal(t, 16, l.DigitH)
}

func TestComputeNoAutoScale(t *testing.T) {
	tokens := Tokenize("23:59", true, true)
	l := Compute(tokens, image.Rect(0, 0, 16, 8), false)

	assert.Equal(t, 1.0, l.Scale)
	assert.Equal(t, 13, l.DigitW)
}

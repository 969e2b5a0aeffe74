package glyph

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Fixed asset metrics, in pixels.
const (
	DigitWidth      = 13
	DigitHeight     = 32
	SeparatorWidth  = 4
	SeparatorHeight = 14
)

// Set holds the pre-loaded digit and separator bitmaps. A nil slot means
// the asset was missing; rendering skips it.
type Set struct {
	digits    [10]*image.NRGBA
	separator *image.NRGBA
}

// Digit returns the bitmap for n, or false if the asset is unavailable.
func (s *Set) Digit(n int) (image.Image, bool) {
	if n < 0 || n > 9 || s.digits[n] == nil {
		return nil, false
	}
	return s.digits[n], true
}

// Separator returns the colon bitmap, or false if unavailable.
func (s *Set) Separator() (image.Image, bool) {
	if s.separator == nil {
		return nil, false
	}
	return s.separator, true
}

func (s *Set) HasSeparator() bool {
	return s.separator != nil
}

// Load reads number_0.png … number_9.png and separator.png from fs.
// Missing or unreadable files are logged and leave their slot empty.
func Load(fs afero.Fs, logger *zap.Logger) *Set {
	s := &Set{}

	loaded := 0
	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("number_%d.png", i)
		img, err := loadPNG(fs, name)
		if err != nil {
			logger.With(zap.String("file", name), zap.Error(err)).Warn("digit image unavailable")
			continue
		}
		s.digits[i] = img
		loaded++
	}

	if loaded != 10 {
		logger.With(zap.Int("loaded", loaded)).Error("incomplete digit set")
	}

	if img, err := loadPNG(fs, "separator.png"); err != nil {
		logger.With(zap.Error(err)).Warn("separator image unavailable")
	} else {
		s.separator = img
	}

	return s
}

func loadPNG(fs afero.Fs, name string) (*image.NRGBA, error) {
	bs, err := afero.ReadFile(fs, name)
	if err != nil {
		return nil, err
	}

	img, err := png.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}

	return toNRGBA(img), nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}

	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

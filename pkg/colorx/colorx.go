package colorx

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// White is the fallback for unparseable color strings.
var White = RGB{R: 255, G: 255, B: 255}

// RGB is an opaque 8-bit-per-channel color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// ParseHex parses "#RGB" or "#RRGGBB" (leading '#' optional). On any
// malformed input it returns White together with the parse error so the
// caller can log and keep going.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")

	if len(hex) == 3 {
		var b strings.Builder
		for _, c := range hex {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		hex = b.String()
	}

	if len(hex) != 6 {
		return White, errors.Errorf("hex color %q: want 3 or 6 digits", s)
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return White, errors.Wrapf(err, "hex color %q", s)
		}
		ch[i] = uint8(v)
	}

	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Hex formats the color as "#rrggbb", the exact inverse of ParseHex for
// 6-digit input.
func (c RGB) Hex() string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		b[1+i*2] = digits[v>>4]
		b[2+i*2] = digits[v&0xF]
	}
	return string(b)
}

// NRGBA returns the color as fully opaque image/color value.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Mix blends a towards b by p: p=1 is all a, p=0 is all b. Channels are
// rounded, not truncated. p is trusted to be in [0,1]; callers clamp via
// Proportion.
func Mix(a, b RGB, p float64) RGB {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x)*p + float64(y)*(1-p)))
	}
	return RGB{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}

// Proportion reports where x sits within [min, max], clamped to [0,1].
// A collapsed range (min == max) acts as a threshold: 1 when x >= min,
// else 0.
func Proportion(min, max, x float64) float64 {
	if min == max {
		if x >= min {
			return 1
		}
		return 0
	}

	p := (x - min) / (max - min)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Package palette derives sprite colors from a base color.
package palette

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/akeil/spritegen"
)

var (
	Black       = color.NRGBA{0, 0, 0, 255}
	White       = color.NRGBA{255, 255, 255, 255}
	Transparent = color.NRGBA{}
)

// Palette is the set of colors used to draw a single sprite.
type Palette struct {
	Base      color.NRGBA
	Shade     color.NRGBA
	Shadow    color.NRGBA
	Highlight color.NRGBA
	Accent    color.NRGBA
}

// Derive creates a palette from the base color.
// Shade and Shadow are steps from base toward black,
// Highlight is halfway between base and white.
func Derive(base, accent color.NRGBA) Palette {
	dark := Gradient(base, Black, 4)
	light := Gradient(base, White, 3)
	return Palette{
		Base:      dark[0],
		Shade:     dark[1],
		Shadow:    dark[2],
		Highlight: light[1],
		Accent:    accent,
	}
}

// Gradient interpolates n colors from one color to another, channel by
// channel. Both ends are included when n > 1; n == 1 yields just from.
func Gradient(from, to color.NRGBA, n int) []color.NRGBA {
	if n <= 0 {
		return []color.NRGBA{}
	}
	if n == 1 {
		return []color.NRGBA{from}
	}

	steps := make([]color.NRGBA, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		steps[i] = color.NRGBA{
			R: lerp(from.R, to.R, t),
			G: lerp(from.G, to.G, t),
			B: lerp(from.B, to.B, t),
			A: lerp(from.A, to.A, t),
		}
	}
	return steps
}

func lerp(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*t)
	return uint8(math.Max(0, math.Min(255, v)))
}

// WithAlpha returns the color with its alpha channel replaced.
func WithAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = alpha
	return c
}

// Gray returns an opaque gray of the given brightness.
func Gray(v uint8) color.NRGBA {
	return color.NRGBA{v, v, v, 255}
}

// Parse reads a color from a hex code ("#rrggbb" or "#rrggbbaa")
// or a CSS color name like "orange".
func Parse(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return Transparent, spritegen.NewValidationError("unknown color %q", s)
	}
	return color.NRGBA{c.R, c.G, c.B, c.A}, nil
}

// MustParse is like Parse but panics on invalid input.
// Only use it with literal constants.
func MustParse(s string) color.NRGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (color.NRGBA, error) {
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return Transparent, spritegen.NewValidationError("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Transparent, spritegen.NewValidationError("invalid hex color %q", s)
	}

	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

package sprites

import (
	"image"
	"math/rand"

	"github.com/akeil/spritegen"
	"github.com/akeil/spritegen/pkg/canvas"
	"github.com/akeil/spritegen/pkg/palette"
)

const (
	nebulaCount = 5
	farStars    = 100
	midStars    = 50
	nearStars   = 20
)

var nebulaTint = palette.MustParse("#3a1a8c")

func renderStarfield(a spritegen.Asset, opts Options) (*image.RGBA, error) {
	base, err := baseColor(a, "#000033")
	if err != nil {
		return nil, err
	}

	rng := opts.random(a, 0)
	img := canvas.New(a.Width, a.Height)
	img.Fill(base)

	err = img.Draw(StarfieldShapes(rng, a.Width, a.Height)...)
	if err != nil {
		return nil, err
	}
	return img.Image(), nil
}

// StarfieldShapes lays out nebulae and three layers of stars.
// Far stars are small and dim, near stars large and white.
func StarfieldShapes(rng *rand.Rand, width, height int) []canvas.Shape {
	var shapes []canvas.Shape
	w, h := float64(width), float64(height)

	for i := 0; i < nebulaCount; i++ {
		cx := rng.Float64() * w
		cy := rng.Float64() * h
		r := 50 + rng.Float64()*50
		// rings get more opaque toward the center
		for ring := r; ring > 0; ring -= 10 {
			alpha := uint8(24*(1-ring/r) + 6)
			shapes = append(shapes, canvas.Circle(cx, cy, ring, palette.WithAlpha(nebulaTint, alpha)))
		}
	}

	for i := 0; i < farStars; i++ {
		x := float64(rng.Intn(width))
		y := float64(rng.Intn(height))
		v := uint8(100 + rng.Intn(51))
		shapes = append(shapes, canvas.Rect(x, y, x+1, y+1, palette.Gray(v)))
	}

	for i := 0; i < midStars; i++ {
		x := rng.Float64() * w
		y := rng.Float64() * h
		s := 1 + rng.Float64()
		v := uint8(150 + rng.Intn(51))
		shapes = append(shapes, canvas.EllipseIn(x, y, x+s, y+s, palette.Gray(v), nil))
	}

	for i := 0; i < nearStars; i++ {
		x := float64(rng.Intn(width))
		y := float64(rng.Intn(height))
		shapes = append(shapes, canvas.Rect(x, y, x+2, y+2, palette.White))
	}

	return shapes
}

package sprites

import (
	"image"
	"math"

	"github.com/akeil/spritegen"
	"github.com/akeil/spritegen/pkg/canvas"
	"github.com/akeil/spritegen/pkg/palette"
)

// glowStep is the distance between the rings of a glow in pixels.
const glowStep = 5

// GlowRings returns the radius and alpha of every ring of a glow with the
// given outer radius, from the outside in.
// The outermost ring is faint, the innermost one opaque.
func GlowRings(maxR float64) ([]float64, []uint8) {
	var radii []float64
	var alphas []uint8
	for r := maxR; r > 0; r -= glowStep {
		radii = append(radii, r)
		alphas = append(alphas, uint8(math.Round(math.Min(255, 255*(1-(r-glowStep)/maxR)))))
	}
	return radii, alphas
}

func renderGlow(a spritegen.Asset, opts Options) (*image.RGBA, error) {
	base, err := baseColor(a, "#ffff00")
	if err != nil {
		return nil, err
	}

	w, h := float64(a.Width), float64(a.Height)
	radii, alphas := GlowRings(math.Min(w, h) / 2)

	shapes := make([]canvas.Shape, len(radii))
	for i, r := range radii {
		shapes[i] = canvas.Circle(w/2, h/2, r, palette.WithAlpha(base, alphas[i]))
	}

	img := canvas.New(a.Width, a.Height)
	err = img.Draw(shapes...)
	if err != nil {
		return nil, err
	}
	return img.Image(), nil
}

package sprites

import (
	"image"
	"image/color"
	"math"

	"github.com/akeil/spritegen"
	"github.com/akeil/spritegen/pkg/canvas"
	"github.com/akeil/spritegen/pkg/palette"
)

// fireRamp runs from the hottest to the coldest explosion color.
var fireRamp = []color.NRGBA{
	palette.MustParse("#ffffff"),
	palette.MustParse("#ffff00"),
	palette.MustParse("#ff9900"),
	palette.MustParse("#ff6600"),
	palette.MustParse("#ff3300"),
	palette.MustParse("#cc0000"),
	palette.MustParse("#660000"),
	palette.MustParse("#330000"),
}

const (
	explosionLayers = 3
	debrisCount     = 8
)

// Burst describes the fireball in one frame of an explosion.
type Burst struct {
	// Progress runs from 0 on the first to 1 on the last frame.
	Progress float64
	// Radius of the outer fireball layer in pixels.
	Radius float64
	// Alpha of the fireball.
	Alpha uint8
}

// ExplosionBurst computes the fireball for the given frame.
// The radius grows and the alpha falls with every frame.
func ExplosionBurst(frame, frames, size int) Burst {
	progress := 0.0
	if frames > 1 {
		progress = float64(frame) / float64(frames-1)
	}

	s := float64(size)
	minR := s * 0.1
	maxR := math.Max(s/2-4, s*0.3)

	return Burst{
		Progress: progress,
		Radius:   minR + (maxR-minR)*progress,
		Alpha:    uint8(math.Round(255 * (1 - 0.7*progress))),
	}
}

func renderExplosion(a spritegen.Asset, opts Options) (*image.RGBA, error) {
	frames := a.FrameCount()
	size := a.Width
	if a.Height < size {
		size = a.Height
	}

	return canvas.Sheet(frames, a.Width, a.Height, func(f *canvas.Surface, frame int) error {
		burst := ExplosionBurst(frame, frames, size)
		cx, cy := float64(a.Width)/2, float64(a.Height)/2

		var shapes []canvas.Shape
		for layer := 0; layer < explosionLayers; layer++ {
			// inner layers are hotter
			idx := frame + explosionLayers - 1 - layer
			r := burst.Radius * (1 - float64(layer)*0.2)
			shapes = append(shapes, canvas.Circle(cx, cy, r, palette.WithAlpha(ramp(idx), burst.Alpha)))
		}

		rng := opts.random(a, int64(frame))
		particle := palette.WithAlpha(ramp(frame+1), burst.Alpha)
		ps := math.Max(1, 4*(1-burst.Progress))
		dist := math.Min(burst.Progress*float64(size)*0.4, float64(size)/2-ps)
		for i := 0; i < debrisCount; i++ {
			angle := rng.Float64() * 2 * math.Pi
			x := cx + math.Cos(angle)*dist
			y := cy + math.Sin(angle)*dist
			shapes = append(shapes, canvas.Circle(x, y, ps, particle))
		}

		return f.Draw(shapes...)
	})
}

func ramp(i int) color.NRGBA {
	if i >= len(fireRamp) {
		i = len(fireRamp) - 1
	}
	return fireRamp[i]
}

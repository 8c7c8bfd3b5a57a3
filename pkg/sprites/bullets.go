package sprites

import (
	"image"
	"image/color"

	"github.com/akeil/spritegen"
	"github.com/akeil/spritegen/pkg/canvas"
	"github.com/akeil/spritegen/pkg/palette"
)

// bulletFunc lays out a bullet in a w x h frame.
type bulletFunc func(w, h float64) []canvas.Shape

// Bullets are drawn in this order, one per frame:
// player shot, enemy shot, power shot, missile.
var bullets = []bulletFunc{
	roundBullet(palette.MustParse("#00ffff")),
	roundBullet(palette.MustParse("#ff0000")),
	powerBullet,
	missile,
}

func renderBullets(a spritegen.Asset, opts Options) (*image.RGBA, error) {
	w, h := float64(a.Width), float64(a.Height)
	return canvas.Sheet(a.FrameCount(), a.Width, a.Height, func(f *canvas.Surface, frame int) error {
		if frame >= len(bullets) {
			return nil
		}
		return f.Draw(bullets[frame](w, h)...)
	})
}

func roundBullet(c color.NRGBA) bulletFunc {
	return func(w, h float64) []canvas.Shape {
		return []canvas.Shape{
			canvas.EllipseIn(w/4, h/4, 3*w/4, 3*h/4, c, nil),
			canvas.EllipseIn(3*w/8, 3*h/8, 5*w/8, 5*h/8, palette.White, nil),
		}
	}
}

func powerBullet(w, h float64) []canvas.Shape {
	return []canvas.Shape{
		canvas.Rect(w/8, 3*h/8, 7*w/8, 5*h/8, palette.MustParse("#ffff00")),
		canvas.Rect(w/4, 7*h/16, 3*w/4, 9*h/16, palette.White),
	}
}

func missile(w, h float64) []canvas.Shape {
	return []canvas.Shape{
		// exhaust
		canvas.Ellipse{CX: 3 * w / 16, CY: h / 2, RX: 2 * w / 16, RY: h / 16, Fill: palette.MustParse("#ff9933")},
		// fins
		canvas.Polygon{
			Points: []canvas.Point{{X: w / 4, Y: 7 * h / 16}, {X: w / 8, Y: 4 * h / 16}, {X: 6 * w / 16, Y: 7 * h / 16}},
			Fill:   palette.Gray(120),
		},
		canvas.Polygon{
			Points: []canvas.Point{{X: w / 4, Y: 9 * h / 16}, {X: w / 8, Y: 12 * h / 16}, {X: 6 * w / 16, Y: 9 * h / 16}},
			Fill:   palette.Gray(120),
		},
		// body
		canvas.Rect(w/4, 7*h/16, 3*w/4, 9*h/16, palette.Gray(170)),
		// warhead
		canvas.Polygon{
			Points: []canvas.Point{{X: 3 * w / 4, Y: 6 * h / 16}, {X: 15 * w / 16, Y: h / 2}, {X: 3 * w / 4, Y: 10 * h / 16}},
			Fill:   palette.MustParse("#ff0000"),
		},
	}
}

package sprites

import (
	"image"
	"image/color"
	"math"

	"github.com/akeil/spritegen"
	"github.com/akeil/spritegen/pkg/canvas"
	"github.com/akeil/spritegen/pkg/palette"
)

// StyleFunc lays out the shapes of an enemy for a sprite of w x h pixels.
// All coordinates are fractions of w and h.
type StyleFunc func(w, h float64, p palette.Palette) []canvas.Shape

type enemyStyle struct {
	shapes StyleFunc
	accent color.NRGBA
}

var enemyStyles = map[spritegen.Style]enemyStyle{
	spritegen.Basic:  {basicEnemy, palette.MustParse("#ff0000")},
	spritegen.Medium: {mediumEnemy, palette.MustParse("#ff00ff")},
	spritegen.Heavy:  {heavyEnemy, palette.MustParse("#660066")},
	spritegen.Boss:   {bossEnemy, palette.MustParse("#ff00ff")},
}

// EnemyShapes returns the shapes for an enemy of the given style and size,
// colored from the base color.
func EnemyShapes(style spritegen.Style, w, h float64, base color.NRGBA) ([]canvas.Shape, error) {
	s, ok := enemyStyles[style]
	if !ok {
		return nil, spritegen.NewValidationError("unsupported enemy style %q", style)
	}

	p := palette.Derive(base, s.accent)
	return s.shapes(w, h, p), nil
}

func renderEnemy(a spritegen.Asset, opts Options) (*image.RGBA, error) {
	base, err := baseColor(a, "#ff0000")
	if err != nil {
		return nil, err
	}

	shapes, err := EnemyShapes(a.Style, float64(a.Width), float64(a.Height), base)
	if err != nil {
		return nil, err
	}

	c := canvas.New(a.Width, a.Height)
	err = c.Draw(shapes...)
	if err != nil {
		return nil, err
	}

	return c.Image(), nil
}

// basicEnemy is a flying enemy with two wings and a single eye.
func basicEnemy(w, h float64, p palette.Palette) []canvas.Shape {
	return []canvas.Shape{
		canvas.Polygon{
			Points: []canvas.Point{{X: w / 16, Y: h / 2}, {X: w / 4, Y: h / 3}, {X: w / 4, Y: 2 * h / 3}},
			Fill:   p.Shade,
		},
		canvas.Polygon{
			Points: []canvas.Point{{X: 15 * w / 16, Y: h / 2}, {X: 3 * w / 4, Y: h / 3}, {X: 3 * w / 4, Y: 2 * h / 3}},
			Fill:   p.Shade,
		},
		canvas.Ellipse{
			CX: w / 2, CY: h / 2,
			RX: w / 4, RY: h / 4,
			Fill:   p.Base,
			Stroke: p.Shadow,
			Width:  lineWidth(w, 1.0/32),
		},
		canvas.Ellipse{
			CX: w / 2, CY: h / 2,
			RX: 3 * w / 32, RY: 3 * h / 32,
			Fill: p.Accent,
		},
	}
}

// mediumEnemy is an armored diamond with a glowing core.
func mediumEnemy(w, h float64, p palette.Palette) []canvas.Shape {
	cx, cy := w/2, h/2
	return []canvas.Shape{
		canvas.Polygon{
			Points: []canvas.Point{{X: cx, Y: h / 10}, {X: 9 * w / 10, Y: cy}, {X: cx, Y: 9 * h / 10}, {X: w / 10, Y: cy}},
			Fill:   p.Base,
			Stroke: p.Shadow,
			Width:  lineWidth(w, 1.0/40),
		},
		canvas.Line{
			X0: w / 10, Y0: cy,
			X1: cx, Y1: h / 10,
			Color: p.Highlight,
			Width: lineWidth(w, 1.0/40),
		},
		canvas.Polygon{
			Points: []canvas.Point{{X: cx, Y: cy - h/4}, {X: cx + w/4, Y: cy}, {X: cx, Y: cy + h/4}, {X: cx - w/4, Y: cy}},
			Fill:   p.Shade,
		},
		canvas.Ellipse{
			CX: cx, CY: cy,
			RX: w / 10, RY: h / 10,
			Fill: p.Accent,
		},
	}
}

// heavyEnemy is a mechanical body with claws and two weapon ports.
func heavyEnemy(w, h float64, p palette.Palette) []canvas.Shape {
	portW := 3 * w / 32
	return []canvas.Shape{
		canvas.Rect(w/32, h/3, w/4, 2*h/3, p.Shade),
		canvas.Rect(3*w/4, h/3, 31*w/32, 2*h/3, p.Shade),
		canvas.Rectangle{
			X0: w / 4, Y0: h / 4,
			X1: 3 * w / 4, Y1: 3 * h / 4,
			Fill:   p.Base,
			Stroke: p.Shadow,
			Width:  lineWidth(w, 1.0/64),
		},
		canvas.EllipseIn(w/2-portW, h/3, w/2+portW, h/3+h/6, p.Accent, nil),
		canvas.EllipseIn(w/2-portW, 2*h/3-h/6, w/2+portW, 2*h/3, p.Accent, nil),
		canvas.Line{
			X0: w / 4, Y0: h / 2,
			X1: 3 * w / 4, Y1: h / 2,
			Color: p.Highlight,
			Width: lineWidth(h, 1.0/24),
		},
	}
}

// bossEnemy is a large shell around a pulsing core, with eight spokes.
func bossEnemy(w, h float64, p palette.Palette) []canvas.Shape {
	cx, cy := w/2, h/2
	shapes := []canvas.Shape{
		canvas.Ellipse{
			CX: cx, CY: cy,
			RX: 15 * w / 32, RY: 11 * h / 24,
			Fill:   p.Base,
			Stroke: p.Shadow,
			Width:  lineWidth(w, 1.0/64),
		},
		canvas.Ellipse{
			CX: cx, CY: cy,
			RX: w / 4, RY: h / 4,
			Fill:   p.Shade,
			Stroke: p.Shadow,
			Width:  lineWidth(w, 1.0/64),
		},
	}

	// pulsing core, outer rings more transparent
	for i := 0; i < 3; i++ {
		k := float64(15 - i*4)
		shapes = append(shapes, canvas.Ellipse{
			CX: cx, CY: cy,
			RX: k * w / 128, RY: k * h / 96,
			Fill: palette.WithAlpha(p.Accent, uint8(255-i*50)),
		})
	}

	for angle := 0; angle < 360; angle += 45 {
		rad := float64(angle) * math.Pi / 180
		dx, dy := math.Cos(rad)*w/2, math.Sin(rad)*h/2
		shapes = append(shapes, canvas.Line{
			X0: cx + dx*0.8, Y0: cy + dy*0.8,
			X1: cx + dx*0.9, Y1: cy + dy*0.9,
			Color: p.Highlight,
			Width: lineWidth(w, 1.0/64),
		})
	}

	return shapes
}

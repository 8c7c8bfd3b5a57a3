package sprites

import (
	"image"

	"github.com/akeil/spritegen"
	"github.com/akeil/spritegen/internal/imaging"
	"github.com/akeil/spritegen/pkg/canvas"
	"github.com/akeil/spritegen/pkg/palette"
)

// Pose is one frame of the player ship.
type Pose struct {
	Name string
	// DY moves the ship vertically, as a fraction of the frame height.
	DY float64
	// Angle tilts the ship, in degrees. Negative values raise the nose.
	Angle float64
	// Squash compresses the ship vertically when it rolls.
	Squash float64
	// Flip puts the shaded half on top.
	Flip bool
}

// ShipPoses are the frames of the ship sheet, in order.
var ShipPoses = []Pose{
	{Name: "idle", Squash: 1},
	{Name: "up", DY: -3.0 / 32, Angle: -6, Squash: 1},
	{Name: "down", DY: 3.0 / 32, Angle: 6, Squash: 1},
	{Name: "bank-left", Squash: 0.7},
	{Name: "bank-right", Squash: 0.7, Flip: true},
}

var (
	cockpitColor = palette.MustParse("#003366")
	engineColor  = palette.MustParse("#ff6600")
)

func renderShip(a spritegen.Asset, opts Options) (*image.RGBA, error) {
	base, err := baseColor(a, "#00ccff")
	if err != nil {
		return nil, err
	}
	p := palette.Derive(base, engineColor)
	w, h := float64(a.Width), float64(a.Height)

	return canvas.Sheet(a.FrameCount(), a.Width, a.Height, func(f *canvas.Surface, frame int) error {
		pose := ShipPoses[frame%len(ShipPoses)]
		return f.Draw(ShipShapes(pose, w, h, p)...)
	})
}

// ShipShapes lays out the ship in the given pose for a w x h frame.
//
// The idle hull points to the right; other poses are the idle layout
// transformed around the frame center.
func ShipShapes(pose Pose, w, h float64, p palette.Palette) []canvas.Shape {
	// unit sizes relative to the 48x32 reference frame
	u, v := w/48, h/32
	pt := func(x, y float64) canvas.Point {
		return canvas.Pt(x*u, y*v)
	}

	squash := pose.Squash
	if squash <= 0 {
		squash = 1
	}
	m := imaging.Multiply(imaging.Rotation(imaging.Rad(pose.Angle)), imaging.Scaling(1, squash))
	m = imaging.Around(m, w/2, h/2)
	m = imaging.Multiply(imaging.Translation(0, pose.DY*h), m)

	hull := canvas.Polygon{
		Points: []canvas.Point{
			pt(8, 16),  // rear center
			pt(20, 8),  // upper wing
			pt(40, 12), // nose upper
			pt(44, 16), // nose tip
			pt(40, 20), // nose lower
			pt(20, 24), // lower wing
		},
		Fill:   p.Base,
		Stroke: p.Shadow,
		Width:  lineWidth(w, 1.0/48),
	}

	// shaded half, below the center line unless flipped
	side := 1.0
	if pose.Flip {
		side = -1
	}
	shade := canvas.Polygon{
		Points: []canvas.Point{pt(10, 16), pt(42, 16), pt(38, 16+4*side), pt(20, 16+7*side)},
		Fill:   p.Shade,
	}

	cockpit := pt(30, 16).Transform(m)
	shapes := []canvas.Shape{
		hull.Transform(m),
		shade.Transform(m),
		canvas.Ellipse{
			CX: cockpit.X, CY: cockpit.Y,
			RX: 5 * u, RY: 3 * v * squash,
			Fill: cockpitColor,
		},
		canvas.Line{
			X0: 20 * u, Y0: 16 * v,
			X1: 25 * u, Y1: 16 * v,
			Color: p.Highlight,
			Width: lineWidth(h, 1.0/32),
		}.Transform(m),
		canvas.Polygon{
			Points: []canvas.Point{pt(35, 15), pt(38, 15), pt(38, 17), pt(35, 17)},
			Fill:   p.Highlight,
		}.Transform(m),
	}

	// engine glow, outer ring first
	for i := 2; i >= 0; i-- {
		fi := float64(i)
		c := pt(8-2*fi, 16).Transform(m)
		shapes = append(shapes, canvas.Ellipse{
			CX: c.X, CY: c.Y,
			RX: 3 * u, RY: (2 + fi) * v * squash,
			Fill: palette.WithAlpha(p.Accent, uint8(255-i*80)),
		})
	}

	return shapes
}

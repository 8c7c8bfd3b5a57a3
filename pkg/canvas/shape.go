package canvas

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/akeil/spritegen/internal/imaging"
)

// Shape is a drawing primitive that can be placed on a Surface.
type Shape interface {
	// Bounds is the geometric extent of the shape, excluding stroke width.
	Bounds() Box
	draw(s *Surface)
}

// Point is a location in canvas coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

// Transform applies the affine transform m to the point.
func (p Point) Transform(m imaging.Matrix) Point {
	x, y := m.Apply(p.X, p.Y)
	return Point{x, y}
}

// Box is an axis aligned bounding box.
type Box struct {
	X0, Y0, X1, Y1 float64
}

func (b Box) String() string {
	return fmt.Sprintf("(%.2f,%.2f)-(%.2f,%.2f)", b.X0, b.Y0, b.X1, b.Y1)
}

// Union returns the smallest box containing b and o.
func (b Box) Union(o Box) Box {
	return Box{
		X0: math.Min(b.X0, o.X0),
		Y0: math.Min(b.Y0, o.Y0),
		X1: math.Max(b.X1, o.X1),
		Y1: math.Max(b.Y1, o.Y1),
	}
}

// Within checks if b lies inside [0,w] x [0,h].
func (b Box) Within(w, h float64) bool {
	const eps = 1e-6
	return b.X0 >= -eps && b.Y0 >= -eps && b.X1 <= w+eps && b.Y1 <= h+eps
}

func pointsBox(pts []Point) Box {
	if len(pts) == 0 {
		return Box{}
	}
	b := Box{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, p := range pts[1:] {
		b = b.Union(Box{p.X, p.Y, p.X, p.Y})
	}
	return b
}

// Polygon ---------------------------------------------------------------------

// Polygon is a closed path through the given points.
// Fill and Stroke may be nil to skip that part.
type Polygon struct {
	Points []Point
	Fill   color.Color
	Stroke color.Color
	Width  float64
}

func (p Polygon) Bounds() Box {
	return pointsBox(p.Points)
}

// Transform returns a copy of the polygon with all points transformed.
func (p Polygon) Transform(m imaging.Matrix) Polygon {
	pts := make([]Point, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = pt.Transform(m)
	}
	p.Points = pts
	return p
}

func (p Polygon) draw(s *Surface) {
	if len(p.Points) < 2 {
		return
	}
	s.gc.BeginPath()
	s.gc.MoveTo(p.Points[0].X, p.Points[0].Y)
	for _, pt := range p.Points[1:] {
		s.gc.LineTo(pt.X, pt.Y)
	}
	s.gc.Close()
	s.paint(p.Fill, p.Stroke, p.Width)
}

// Ellipse ---------------------------------------------------------------------

// Ellipse is an axis aligned ellipse around a center.
type Ellipse struct {
	CX, CY float64
	RX, RY float64
	Fill   color.Color
	Stroke color.Color
	Width  float64
}

// Circle is a filled circle without outline.
func Circle(cx, cy, r float64, fill color.Color) Ellipse {
	return Ellipse{CX: cx, CY: cy, RX: r, RY: r, Fill: fill}
}

// EllipseIn creates an ellipse inscribed in the box x0,y0 - x1,y1.
func EllipseIn(x0, y0, x1, y1 float64, fill, stroke color.Color) Ellipse {
	return Ellipse{
		CX:     (x0 + x1) / 2,
		CY:     (y0 + y1) / 2,
		RX:     math.Abs(x1-x0) / 2,
		RY:     math.Abs(y1-y0) / 2,
		Fill:   fill,
		Stroke: stroke,
	}
}

func (e Ellipse) Bounds() Box {
	return Box{e.CX - e.RX, e.CY - e.RY, e.CX + e.RX, e.CY + e.RY}
}

func (e Ellipse) draw(s *Surface) {
	if e.RX <= 0 || e.RY <= 0 {
		return
	}
	s.gc.BeginPath()
	draw2dkit.Ellipse(s.gc, e.CX, e.CY, e.RX, e.RY)
	s.paint(e.Fill, e.Stroke, e.Width)
}

// Rectangle -------------------------------------------------------------------

// Rectangle is an axis aligned rectangle.
type Rectangle struct {
	X0, Y0 float64
	X1, Y1 float64
	Fill   color.Color
	Stroke color.Color
	Width  float64
}

// Rect is a filled rectangle without outline.
func Rect(x0, y0, x1, y1 float64, fill color.Color) Rectangle {
	return Rectangle{X0: x0, Y0: y0, X1: x1, Y1: y1, Fill: fill}
}

func (r Rectangle) Bounds() Box {
	return Box{
		X0: math.Min(r.X0, r.X1),
		Y0: math.Min(r.Y0, r.Y1),
		X1: math.Max(r.X0, r.X1),
		Y1: math.Max(r.Y0, r.Y1),
	}
}

func (r Rectangle) draw(s *Surface) {
	s.gc.BeginPath()
	draw2dkit.Rectangle(s.gc, r.X0, r.Y0, r.X1, r.Y1)
	s.paint(r.Fill, r.Stroke, r.Width)
}

// Line ------------------------------------------------------------------------

// Line is a single straight stroke with round caps.
type Line struct {
	X0, Y0 float64
	X1, Y1 float64
	Color  color.Color
	Width  float64
}

func (l Line) Bounds() Box {
	return pointsBox([]Point{{l.X0, l.Y0}, {l.X1, l.Y1}})
}

// Transform returns a copy of the line with both ends transformed.
func (l Line) Transform(m imaging.Matrix) Line {
	l.X0, l.Y0 = m.Apply(l.X0, l.Y0)
	l.X1, l.Y1 = m.Apply(l.X1, l.Y1)
	return l
}

func (l Line) draw(s *Surface) {
	s.gc.Save()
	defer s.gc.Restore()
	s.gc.SetLineCap(draw2d.RoundCap)
	s.gc.BeginPath()
	s.gc.MoveTo(l.X0, l.Y0)
	s.gc.LineTo(l.X1, l.Y1)
	s.paint(nil, l.Color, l.Width)
}

// Text ------------------------------------------------------------------------

// Text is a string centered on X,Y.
type Text struct {
	X, Y  float64
	Text  string
	Color color.Color
	Face  font.Face
}

func (t Text) layout() (fixed.Point26_6, Box) {
	if t.Face == nil {
		dot := fixed.Point26_6{X: fixed.Int26_6(t.X * 64), Y: fixed.Int26_6(t.Y * 64)}
		return dot, Box{t.X, t.Y, t.X, t.Y}
	}
	b, _ := font.BoundString(t.Face, t.Text)
	dot := fixed.Point26_6{
		X: fixed.Int26_6(math.Round(t.X*64)) - (b.Min.X+b.Max.X)/2,
		Y: fixed.Int26_6(math.Round(t.Y*64)) - (b.Min.Y+b.Max.Y)/2,
	}
	box := Box{
		X0: float64(dot.X+b.Min.X) / 64,
		Y0: float64(dot.Y+b.Min.Y) / 64,
		X1: float64(dot.X+b.Max.X) / 64,
		Y1: float64(dot.Y+b.Max.Y) / 64,
	}
	return dot, box
}

func (t Text) Bounds() Box {
	_, box := t.layout()
	return box
}

func (t Text) draw(s *Surface) {
	if t.Face == nil || t.Text == "" {
		return
	}
	dot, _ := t.layout()
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(t.Color),
		Face: t.Face,
		Dot:  dot,
	}
	d.DrawString(t.Text)
}

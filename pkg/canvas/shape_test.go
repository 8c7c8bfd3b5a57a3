package canvas

import (
	"math"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/akeil/spritegen/internal/imaging"
)

func TestBounds(t *testing.T) {
	cases := []struct {
		shape Shape
		want  Box
	}{
		{Circle(10, 10, 5, nil), Box{5, 5, 15, 15}},
		{EllipseIn(2, 4, 12, 8, nil, nil), Box{2, 4, 12, 8}},
		{Rect(10, 8, 2, 1, nil), Box{2, 1, 10, 8}},
		{Line{X0: 5, Y0: 1, X1: 1, Y1: 9}, Box{1, 1, 5, 9}},
		{Polygon{Points: []Point{{3, 4}, {9, 2}, {6, 7}}}, Box{3, 2, 9, 7}},
	}

	for i, c := range cases {
		if got := c.shape.Bounds(); got != c.want {
			t.Errorf("case %d: got %v, want %v", i, got, c.want)
		}
	}
}

func TestPolygonTransform(t *testing.T) {
	p := Polygon{Points: []Point{{0, 0}, {10, 0}, {10, 5}}}
	moved := p.Transform(imaging.Translation(3, 4))

	if moved.Points[1] != Pt(13, 4) {
		t.Errorf("unexpected transformed point %v", moved.Points[1])
	}
	if p.Points[1] != Pt(10, 0) {
		t.Errorf("transform must not modify the original")
	}

	rot := p.Transform(imaging.Rotation(imaging.Rad(90)))
	if math.Abs(rot.Points[1].X) > 1e-9 || math.Abs(rot.Points[1].Y-10) > 1e-9 {
		t.Errorf("unexpected rotated point %v", rot.Points[1])
	}
}

func TestTextCentered(t *testing.T) {
	txt := Text{X: 20, Y: 10, Text: "W", Face: basicfont.Face7x13, Color: red}
	b := txt.Bounds()
	cx := (b.X0 + b.X1) / 2
	cy := (b.Y0 + b.Y1) / 2
	if math.Abs(cx-20) > 1 || math.Abs(cy-10) > 1 {
		t.Errorf("text not centered: %v", b)
	}

	s := New(40, 20)
	if err := s.Draw(txt); err != nil {
		t.Fatal(err)
	}
	if imaging.IsBlank(s.Image(), s.Image().Bounds()) {
		t.Errorf("no text drawn")
	}
}

// Package canvas provides transparent drawing surfaces for sprites and the
// composition of animation frames into sprite sheets.
package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/akeil/spritegen"
	"github.com/akeil/spritegen/internal/logging"
)

// Surface is a transparent RGBA canvas that shapes are drawn onto.
//
// A plain surface clips shapes at its edges.
// A frame surface (see NewFrame) rejects shapes that leave its bounds.
type Surface struct {
	img    *image.RGBA
	gc     *draw2dimg.GraphicContext
	strict bool
}

// New creates a fully transparent surface that clips at its edges.
func New(width, height int) *Surface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Surface{
		img: img,
		gc:  draw2dimg.NewGraphicContext(img),
	}
}

// NewFrame creates a fully transparent surface for a single animation frame.
// Drawing a shape that extends outside the frame is an error.
func NewFrame(width, height int) *Surface {
	s := New(width, height)
	s.strict = true
	return s
}

// Image returns the pixels of the surface.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Width of the surface in pixels.
func (s *Surface) Width() int {
	return s.img.Bounds().Dx()
}

// Height of the surface in pixels.
func (s *Surface) Height() int {
	return s.img.Bounds().Dy()
}

// Fill paints the complete surface with the given color.
func (s *Surface) Fill(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Over)
}

// Draw paints the given shapes in order.
//
// On a frame surface, all shapes are checked before anything is painted;
// if one of them leaves the frame an out-of-bounds error is returned
// and the surface remains unchanged.
func (s *Surface) Draw(shapes ...Shape) error {
	if s.strict {
		w, h := float64(s.Width()), float64(s.Height())
		for i, sh := range shapes {
			b := sh.Bounds()
			if !b.Within(w, h) {
				return spritegen.NewOutOfBounds("shape %d %T at %v exceeds %vx%v frame", i, sh, b, w, h)
			}
		}
	}

	for _, sh := range shapes {
		sh.draw(s)
	}
	return nil
}

func (s *Surface) paint(fill, stroke color.Color, width float64) {
	if width <= 0 {
		width = 1
	}

	switch {
	case fill != nil && stroke != nil:
		s.gc.SetFillColor(fill)
		s.gc.SetStrokeColor(stroke)
		s.gc.SetLineWidth(width)
		s.gc.FillStroke()
	case fill != nil:
		s.gc.SetFillColor(fill)
		s.gc.Fill()
	case stroke != nil:
		s.gc.SetStrokeColor(stroke)
		s.gc.SetLineWidth(width)
		s.gc.Stroke()
	}
}

// Slot returns the rectangle of the given frame within a sprite sheet.
// Frames are laid out left to right.
func Slot(frame, width, height int) image.Rectangle {
	x0 := frame * width
	return image.Rect(x0, 0, x0+width, height)
}

// FrameFunc draws a single frame onto its own frame surface.
type FrameFunc func(f *Surface, frame int) error

// Sheet creates a sprite sheet with the given number of frames.
//
// Each frame is drawn by fn onto a separate frame surface of
// width x height pixels and then placed in its slot.
// The sheet is frames*width pixels wide.
func Sheet(frames, width, height int, fn FrameFunc) (*image.RGBA, error) {
	if frames < 1 {
		return nil, spritegen.NewValidationError("sprite sheet needs at least one frame, got %d", frames)
	}
	if width <= 0 || height <= 0 {
		return nil, spritegen.NewValidationError("invalid frame size %dx%d", width, height)
	}

	sheet := image.NewRGBA(image.Rect(0, 0, frames*width, height))
	for i := 0; i < frames; i++ {
		f := NewFrame(width, height)
		err := fn(f, i)
		if err != nil {
			return nil, spritegen.Wrap(err, "frame %d", i)
		}

		slot := Slot(i, width, height)
		draw.Draw(sheet, slot, f.Image(), image.Point{}, draw.Over)
		logging.Debug("Placed frame %d at %v", i, slot)
	}

	return sheet, nil
}

package imaging

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Upscale creates a copy of the given image, enlarged by an integer factor.
func Upscale(i image.Image, factor int) image.Image {
	if factor < 1 {
		factor = 1
	}
	b := i.Bounds()
	size := image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor)

	dst := image.NewRGBA(size)
	// nearest neighbour keeps hard pixel edges
	s := draw.NearestNeighbor
	s.Scale(dst, size, i, b, draw.Over, nil)
	return dst
}

// AlphaMass sums the alpha values (0..1) of all pixels within r.
func AlphaMass(i image.Image, r image.Rectangle) float64 {
	r = r.Intersect(i.Bounds())
	var mass float64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			_, _, _, a := i.At(x, y).RGBA()
			mass += float64(a) / 0xffff
		}
	}
	return mass
}

// MassRadius returns the alpha-weighted mean distance of the pixels in r
// from the center of r. Returns zero for a fully transparent region.
func MassRadius(i image.Image, r image.Rectangle) float64 {
	r = r.Intersect(i.Bounds())
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2

	var mass, moment float64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			_, _, _, a := i.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			w := float64(a) / 0xffff
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			mass += w
			moment += w * math.Sqrt(dx*dx+dy*dy)
		}
	}

	if mass == 0 {
		return 0
	}
	return moment / mass
}

// IsBlank checks if every pixel within r is fully transparent.
func IsBlank(i image.Image, r image.Rectangle) bool {
	r = r.Intersect(i.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			_, _, _, a := i.At(x, y).RGBA()
			if a != 0 {
				return false
			}
		}
	}
	return true
}

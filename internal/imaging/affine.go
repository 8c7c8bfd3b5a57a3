package imaging

import (
	"math"
)

// Matrix is a 3x3 affine transform in row-major order.
type Matrix [9]float64

// Identity returns the transform that leaves points unchanged.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Rotation Matrix (CCW)
//
//  cos(angle)   -sin(angle)    0
//  sin(angle)    cos(angle)    0
//  0             0             1
//
func Rotation(angle float64) Matrix {
	m := Identity()
	m[0] = math.Cos(angle)
	m[1] = math.Sin(angle) * -1

	m[3] = math.Sin(angle)
	m[4] = math.Cos(angle)

	return m
}

// Translation Matrix:
//
//  1  0  dx
//  0  1  dy
//  0  0  1
//
func Translation(dx, dy float64) Matrix {
	m := Identity()

	m[2] = dx
	m[5] = dy

	return m
}

// Scaling Matrix:
//
//  sx 0  0
//  0  sy 0
//  0  0  1
//
func Scaling(sx, sy float64) Matrix {
	m := Identity()

	m[0] = sx
	m[4] = sy

	return m
}

// Multiply combines two affine transforms.
// The result applies b first, then a.
func Multiply(a, b Matrix) Matrix {
	var m Matrix

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a[row*3+k] * b[k*3+col]
			}
			m[row*3+col] = sum
		}
	}

	return m
}

// Around applies m around the pivot (cx, cy) instead of the origin.
// That means: Translate - Transform - Translate
func Around(m Matrix, cx, cy float64) Matrix {
	t0 := Translation(-cx, -cy)
	t1 := Translation(cx, cy)
	return Multiply(t1, Multiply(m, t0))
}

// Apply transforms the given x,y point.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	tx := m[0]*x + m[1]*y + m[2]
	ty := m[3]*x + m[4]*y + m[5]
	return tx, ty
}

// Rad converts degrees to radians.
func Rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

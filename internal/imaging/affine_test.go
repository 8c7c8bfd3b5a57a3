package imaging

import (
	"math"
	"testing"
)

func TestRotation(t *testing.T) {
	x := 1
	y := 2

	rot := Rotation(Rad(90))
	tx, ty := rot.Apply(float64(x), float64(y))

	if math.Round(tx) != -2 {
		t.Errorf("unexpected value for transformed x: %v", tx)
	}
	if math.Round(ty) != 1 {
		t.Errorf("unexpected value for transformed y: %v", ty)
	}

	// rotating around the point itself should not move it
	tx, ty = Around(rot, float64(x), float64(y)).Apply(float64(x), float64(y))

	if math.Abs(tx-1) > 1e-9 {
		t.Errorf("unexpected value for transformed x: %v", tx)
	}
	if math.Abs(ty-2) > 1e-9 {
		t.Errorf("unexpected value for transformed y: %v", ty)
	}
}

func TestMultiply(t *testing.T) {
	// scale first, then translate
	m := Multiply(Translation(10, 20), Scaling(2, 0.5))
	tx, ty := m.Apply(3, 4)
	if tx != 16 || ty != 22 {
		t.Errorf("unexpected transformed point: %v,%v", tx, ty)
	}

	if Multiply(Identity(), m) != m {
		t.Errorf("identity should not change the transform")
	}
}

func TestScalingAround(t *testing.T) {
	m := Around(Scaling(1, 0.5), 24, 16)
	tx, ty := m.Apply(24, 8)
	if tx != 24 || ty != 12 {
		t.Errorf("unexpected transformed point: %v,%v", tx, ty)
	}
}

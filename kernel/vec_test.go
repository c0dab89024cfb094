package kernel

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestVecArithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: -1, Z: 2}

	if got := Add(a, b); !EqualVec3(got, Vec3{X: 5, Y: 1, Z: 5}, tolerance) {
		t.Errorf("Add: expected (5,1,5), got %v", got)
	}
	if got := Sub(a, b); !EqualVec3(got, Vec3{X: -3, Y: 3, Z: 1}, tolerance) {
		t.Errorf("Sub: expected (-3,3,1), got %v", got)
	}
	if got := Dot(a, b); !EqualFloat64(got, 8, tolerance) {
		t.Errorf("Dot: expected 8, got %v", got)
	}
	if got := Scale(2, a); !EqualVec3(got, Vec3{X: 2, Y: 4, Z: 6}, tolerance) {
		t.Errorf("Scale: expected (2,4,6), got %v", got)
	}
}

func TestCrossOrthogonal(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	z := Cross(x, y)
	if !EqualVec3(z, Vec3{Z: 1}, tolerance) {
		t.Errorf("Cross(x,y): expected (0,0,1), got %v", z)
	}
	if !EqualFloat64(Dot(z, x), 0, tolerance) || !EqualFloat64(Dot(z, y), 0, tolerance) {
		t.Errorf("Cross(x,y) not orthogonal to its operands: %v", z)
	}
}

func TestUnitZeroVector(t *testing.T) {
	if got := Unit(Vec3{}); got != (Vec3{}) {
		t.Errorf("Unit(zero): expected zero vector unchanged, got %v", got)
	}
	u := Unit(Vec3{X: 3, Y: 4})
	if !EqualFloat64(Norm(u), 1, tolerance) {
		t.Errorf("Unit: expected unit length, got norm %v", Norm(u))
	}
}

func TestDist(t *testing.T) {
	d := Dist(Vec3{X: 0, Y: 0, Z: 0}, Vec3{X: 3, Y: 4, Z: 0})
	if !EqualFloat64(d, 5, tolerance) {
		t.Errorf("Dist: expected 5, got %v", d)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	v := Vec3{X: 1, Y: 0, Z: 0}
	got := Rotate(v, Vec3{Z: 1}, math.Pi/2)
	if !EqualVec3(got, Vec3{X: 0, Y: 1, Z: 0}, 1e-6) {
		t.Errorf("Rotate 90deg about Z: expected (0,1,0), got %v", got)
	}
}

func TestRotateDegenerateAxis(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 3}
	got := Rotate(v, Vec3{}, math.Pi/3)
	if got != v {
		t.Errorf("Rotate with zero axis: expected input unchanged, got %v", got)
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := Vec3{X: 2, Y: -3, Z: 5}
	axis := Vec3{X: 1, Y: 1, Z: 1}
	got := Rotate(v, axis, 1.234)
	if !EqualFloat64(Norm(got), Norm(v), 1e-6) {
		t.Errorf("Rotate: expected length preserved, got %v want %v", Norm(got), Norm(v))
	}
}

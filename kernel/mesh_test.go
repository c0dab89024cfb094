package kernel

import "testing"

func TestTriangleNormalAndArea(t *testing.T) {
	tri := Triangle3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	if !EqualVec3(tri.Normal(), Vec3{Z: 1}, tolerance) {
		t.Errorf("Normal: expected +Z, got %v", tri.Normal())
	}
	if !EqualFloat64(tri.Area(), 0.5, tolerance) {
		t.Errorf("Area: expected 0.5, got %v", tri.Area())
	}
	want := Vec3{X: 1.0 / 3, Y: 1.0 / 3, Z: 0}
	if !EqualVec3(tri.Centroid(), want, tolerance) {
		t.Errorf("Centroid: expected %v, got %v", want, tri.Centroid())
	}
}

func TestTriangleDegenerate(t *testing.T) {
	tri := Triangle3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}}
	if !tri.Degenerate(1e-9) {
		t.Errorf("Degenerate: expected collinear triangle to be degenerate")
	}
}

func TestTriangleFlip(t *testing.T) {
	tri := Triangle3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	flipped := tri.Flip()
	if !EqualVec3(flipped.Normal(), Scale(-1, tri.Normal()), tolerance) {
		t.Errorf("Flip: expected reversed normal, got %v vs %v", flipped.Normal(), tri.Normal())
	}
}

func TestBBox3ExtendAndUnion(t *testing.T) {
	b := EmptyBBox3()
	if !b.Empty() {
		t.Errorf("EmptyBBox3: expected Empty() true")
	}
	b = b.Extend(Vec3{X: 1, Y: 2, Z: 3}).Extend(Vec3{X: -1, Y: 5, Z: 0})
	want := BBox3{Min: Vec3{X: -1, Y: 2, Z: 0}, Max: Vec3{X: 1, Y: 5, Z: 3}}
	if !EqualVec3(b.Min, want.Min, tolerance) || !EqualVec3(b.Max, want.Max, tolerance) {
		t.Errorf("Extend: expected %v, got %v", want, b)
	}

	other := EmptyBBox3().Extend(Vec3{X: 10, Y: 10, Z: 10})
	u := b.Union(other)
	if !EqualVec3(u.Max, Vec3{X: 10, Y: 10, Z: 10}, tolerance) {
		t.Errorf("Union: expected max extended to (10,10,10), got %v", u.Max)
	}
}

func TestBBox3CenterSizeDiagonal(t *testing.T) {
	b := BBox3{Min: Vec3{X: 0, Y: 0, Z: 0}, Max: Vec3{X: 4, Y: 2, Z: 0}}
	if !EqualVec3(b.Center(), Vec3{X: 2, Y: 1, Z: 0}, tolerance) {
		t.Errorf("Center: expected (2,1,0), got %v", b.Center())
	}
	if !EqualVec3(b.Size(), Vec3{X: 4, Y: 2, Z: 0}, tolerance) {
		t.Errorf("Size: expected (4,2,0), got %v", b.Size())
	}
	want := 2 * 2.23606797749979 // sqrt(20)
	if !EqualFloat64(b.Diagonal(), want, 1e-6) {
		t.Errorf("Diagonal: expected %v, got %v", want, b.Diagonal())
	}
}

func TestBBoxOfMesh(t *testing.T) {
	tris := []Triangle3{
		{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		{{X: -1, Y: -1, Z: 2}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
	}
	b := BBoxOfMesh(tris)
	if !EqualVec3(b.Min, Vec3{X: -1, Y: -1, Z: 0}, tolerance) {
		t.Errorf("BBoxOfMesh min: expected (-1,-1,0), got %v", b.Min)
	}
	if !EqualVec3(b.Max, Vec3{X: 1, Y: 1, Z: 2}, tolerance) {
		t.Errorf("BBoxOfMesh max: expected (1,1,2), got %v", b.Max)
	}
}

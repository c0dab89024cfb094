package kernel

import "testing"

func TestUnionBoundingBox(t *testing.T) {
	a := Box(4, 4, 4)
	b := Move(Box(4, 4, 4), Translation(2, 0, 0))
	u := Union(a, b)
	bb := u.BoundingBox()
	if !EqualFloat64(bb.Min.X, -2, 1e-6) || !EqualFloat64(bb.Max.X, 4, 1e-6) {
		t.Errorf("Union bbox X: expected [-2,4], got [%v,%v]", bb.Min.X, bb.Max.X)
	}
}

func TestSubtractShrinksVolume(t *testing.T) {
	a := Box(10, 10, 10)
	hole := Move(Cylinder(2, 20, 32), Translation(0, 0, -5))
	result := Subtract(a, hole)
	if result.Empty() {
		t.Fatalf("Subtract: expected a non-empty result")
	}
	bb := result.BoundingBox()
	// the box's outer extent must be unchanged; the hole carves an interior cavity
	if !EqualFloat64(bb.Min.X, -5, 1e-6) || !EqualFloat64(bb.Max.X, 5, 1e-6) {
		t.Errorf("Subtract: expected box outer extent preserved, got [%v,%v]", bb.Min.X, bb.Max.X)
	}
}

func TestIntersectOfDisjointBoxesIsEmpty(t *testing.T) {
	a := Box(2, 2, 2)
	b := Move(Box(2, 2, 2), Translation(100, 0, 0))
	result := Intersect(a, b)
	if !result.Empty() {
		t.Errorf("Intersect of disjoint boxes: expected empty result")
	}
}

func TestIntersectOfOverlappingBoxes(t *testing.T) {
	a := Box(4, 4, 4)
	b := Move(Box(4, 4, 4), Translation(2, 0, 0))
	result := Intersect(a, b)
	bb := result.BoundingBox()
	if !EqualFloat64(bb.Min.X, 0, 1e-6) || !EqualFloat64(bb.Max.X, 2, 1e-6) {
		t.Errorf("Intersect bbox X: expected [0,2], got [%v,%v]", bb.Min.X, bb.Max.X)
	}
}

func TestSubtractManyBatchesAllTools(t *testing.T) {
	a := Box(20, 20, 4)
	holes := []*Solid{
		Move(Cylinder(1, 10, 24), Translation(-5, 0, -3)),
		Move(Cylinder(1, 10, 24), Translation(5, 0, -3)),
	}
	result := SubtractMany(a, holes)
	if result.Empty() {
		t.Fatalf("SubtractMany: expected a non-empty result")
	}
	bb := result.BoundingBox()
	if !EqualFloat64(bb.Min.X, -10, 1e-6) || !EqualFloat64(bb.Max.X, 10, 1e-6) {
		t.Errorf("SubtractMany: expected outer extent preserved, got [%v,%v]", bb.Min.X, bb.Max.X)
	}
}

func TestUnifyReturnsSameBoundsForEmptySolid(t *testing.T) {
	empty := &Solid{}
	if got := Unify(empty); !got.Empty() {
		t.Errorf("Unify(empty): expected empty result unchanged")
	}
}

func TestCompoundConcatenatesFaces(t *testing.T) {
	a := Box(2, 2, 2)
	b := Move(Box(2, 2, 2), Translation(10, 0, 0))
	c := Compound(a, b)
	if len(c.Faces) != len(a.Faces)+len(b.Faces) {
		t.Errorf("Compound: expected %d faces, got %d", len(a.Faces)+len(b.Faces), len(c.Faces))
	}
}

func TestMovePreservesShapeTranslatesOrigin(t *testing.T) {
	a := Box(2, 2, 2)
	moved := Move(a, Translation(5, 0, 0))
	bb := moved.BoundingBox()
	if !EqualFloat64(bb.Min.X, 4, 1e-6) || !EqualFloat64(bb.Max.X, 6, 1e-6) {
		t.Errorf("Move: expected box shifted to [4,6], got [%v,%v]", bb.Min.X, bb.Max.X)
	}
}

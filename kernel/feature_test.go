package kernel

import "testing"

func boxEdges(s *Solid) []Edge {
	return s.Edges
}

func TestChamferClipsCorner(t *testing.T) {
	box := Box(10, 10, 10)
	edges := boxEdges(box)
	if len(edges) == 0 {
		t.Fatalf("Box: expected computed edges, got none")
	}
	result, count := Chamfer(box, edges[:1], 1.0)
	if count != 1 {
		t.Errorf("Chamfer: expected 1 edge tool applied, got %d", count)
	}
	if result.Empty() {
		t.Errorf("Chamfer: expected a non-empty result")
	}
}

func TestFilletSkipsDanglingEdge(t *testing.T) {
	box := Box(10, 10, 10)
	bogus := Edge{FaceA: 999999, FaceB: 888888, Midpoint: Vec3{}, Direction: Vec3{X: 1}, Length: 1}
	result, count := Fillet(box, []Edge{bogus}, 1.0)
	if count != 0 {
		t.Errorf("Fillet: expected 0 tools for an edge with unknown faces, got %d", count)
	}
	if result != box {
		t.Errorf("Fillet: expected the original solid returned unchanged when no tools apply")
	}
}

func TestFilletZeroRadiusNoOp(t *testing.T) {
	box := Box(10, 10, 10)
	result, count := Fillet(box, box.Edges, 0)
	if count != 0 {
		t.Errorf("Fillet radius=0: expected no tools applied, got %d", count)
	}
	if result != box {
		t.Errorf("Fillet radius=0: expected the original solid returned")
	}
}

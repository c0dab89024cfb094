package kernel

import "testing"

func TestSolidEmpty(t *testing.T) {
	var nilSolid *Solid
	if !nilSolid.Empty() {
		t.Errorf("nil Solid: expected Empty() true")
	}
	if !(&Solid{}).Empty() {
		t.Errorf("zero-value Solid: expected Empty() true")
	}
	if Box(1, 1, 1).Empty() {
		t.Errorf("Box: expected a non-empty solid")
	}
}

func TestSolidTriangles(t *testing.T) {
	box := Box(2, 2, 2)
	var count int
	for _, f := range box.Faces {
		count += len(f.Triangles)
	}
	if got := len(box.Triangles()); got != count {
		t.Errorf("Triangles: expected %d, got %d", count, got)
	}
}

func TestBoxEdgeCount(t *testing.T) {
	box := Box(4, 4, 4)
	if len(box.Edges) != 12 {
		t.Errorf("Box: expected 12 edges (a cube), got %d", len(box.Edges))
	}
	for _, e := range box.Edges {
		if _, ok := box.faceByID(e.FaceA); !ok {
			t.Errorf("Edge %d: FaceA %d not found among box faces", e.ID, e.FaceA)
		}
		if _, ok := box.faceByID(e.FaceB); !ok {
			t.Errorf("Edge %d: FaceB %d not found among box faces", e.ID, e.FaceB)
		}
	}
}

func TestEdgeIDsAreUniqueWithinASolid(t *testing.T) {
	a := Box(4, 4, 4)
	if len(a.Edges) == 0 {
		t.Fatalf("Box: expected edges")
	}
	ids := map[uint64]bool{}
	for _, e := range a.Edges {
		if ids[e.ID] {
			t.Errorf("Edge ID %d: expected unique IDs within a solid", e.ID)
		}
		ids[e.ID] = true
	}
}

func TestFaceIDsAreUniqueWithinASolid(t *testing.T) {
	box := Box(4, 4, 4)
	seen := map[uint64]bool{}
	for _, f := range box.Faces {
		if seen[f.ID] {
			t.Errorf("Face ID %d: expected unique IDs within a solid", f.ID)
		}
		seen[f.ID] = true
	}
}

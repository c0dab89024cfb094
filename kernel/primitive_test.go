package kernel

import "testing"

func TestBoxBoundingBox(t *testing.T) {
	s := Box(10, 6, 4)
	bb := s.BoundingBox()
	want := BBox3{Min: Vec3{X: -5, Y: -3, Z: 0}, Max: Vec3{X: 5, Y: 3, Z: 4}}
	if !EqualVec3(bb.Min, want.Min, tolerance) || !EqualVec3(bb.Max, want.Max, tolerance) {
		t.Errorf("Box bounding box: expected %v, got %v", want, bb)
	}
}

func TestBoxHasSixFaces(t *testing.T) {
	s := Box(10, 6, 4)
	if len(s.Faces) != 6 {
		t.Errorf("Box: expected 6 faces, got %d", len(s.Faces))
	}
	for _, f := range s.Faces {
		if !f.Planar {
			t.Errorf("Box face %d: expected planar, got curved", f.ID)
		}
	}
}

func TestCylinderFaceCount(t *testing.T) {
	s := Cylinder(3, 8, 16)
	if len(s.Faces) != 3 {
		t.Errorf("Cylinder: expected 3 faces (top/bottom/side), got %d", len(s.Faces))
	}
	bb := s.BoundingBox()
	if !EqualFloat64(bb.Max.Z-bb.Min.Z, 8, tolerance) {
		t.Errorf("Cylinder height: expected 8, got %v", bb.Max.Z-bb.Min.Z)
	}
}

func TestCylinderLowSegmentsClampedUp(t *testing.T) {
	s := Cylinder(3, 8, 2)
	side := s.Faces[2]
	if len(side.Triangles) != 48*2 {
		t.Errorf("Cylinder with too-few segments: expected clamp to 48 segments, got %d triangles", len(side.Triangles))
	}
}

func TestSphereSitsOnOrigin(t *testing.T) {
	s := Sphere(5, 24)
	bb := s.BoundingBox()
	if !EqualFloat64(bb.Min.Z, 0, 1e-6) {
		t.Errorf("Sphere: expected bottom at z=0, got %v", bb.Min.Z)
	}
	if !EqualFloat64(bb.Max.Z, 10, 1e-6) {
		t.Errorf("Sphere: expected top at z=10, got %v", bb.Max.Z)
	}
}

func TestPrismInradius(t *testing.T) {
	s := Prism(6, 10, 5)
	bb := s.BoundingBox()
	// circumradius for a hexagon with inradius 5 is 5/cos(pi/6)
	circumradius := 5 / 0.8660254037844387
	if !EqualFloat64(bb.Max.X, circumradius, 1e-6) {
		t.Errorf("Prism: expected circumradius %v, got max X %v", circumradius, bb.Max.X)
	}
}

func TestPrismMinSidesClamped(t *testing.T) {
	s := Prism(1, 10, 5)
	// sides clamp to 3; top/bottom + sides faces present
	if len(s.Faces) < 2 {
		t.Errorf("Prism with sides<3: expected clamp to a valid prism, got %d faces", len(s.Faces))
	}
}

package kernel

import "testing"

func TestPlaneFromTriangleAndDistance(t *testing.T) {
	tri := Triangle3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	pl := planeFromTriangle(tri)
	if !EqualFloat64(pl.distance(Vec3{Z: 5}), 5, 1e-9) {
		t.Errorf("plane.distance: expected 5 above the xy-plane, got %v", pl.distance(Vec3{Z: 5}))
	}
	if !EqualFloat64(pl.distance(Vec3{Z: 0}), 0, 1e-9) {
		t.Errorf("plane.distance: expected 0 on the plane, got %v", pl.distance(Vec3{Z: 0}))
	}
}

func TestPlaneFlipInvertsNormalAndOffset(t *testing.T) {
	tri := Triangle3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	pl := planeFromTriangle(tri)
	flipped := pl.flip()
	if !EqualFloat64(flipped.distance(Vec3{Z: 5}), -5, 1e-9) {
		t.Errorf("flip: expected distance sign inverted, got %v", flipped.distance(Vec3{Z: 5}))
	}
}

func TestPolygonFlipReversesWinding(t *testing.T) {
	tri := Triangle3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	poly := polygonFromTriangle(tri)
	flipped := poly.flip()
	if flipped.verts[0] != poly.verts[2] || flipped.verts[2] != poly.verts[0] {
		t.Errorf("polygon.flip: expected reversed vertex order")
	}
}

func TestSplitPolygonClassifiesCoplanar(t *testing.T) {
	tri := Triangle3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	poly := polygonFromTriangle(tri)
	pl := poly.pl

	var cf, cb, front, back []polygon
	splitPolygon(pl, poly, &cf, &cb, &front, &back)
	if len(cf) != 1 || len(cb) != 0 || len(front) != 0 || len(back) != 0 {
		t.Errorf("splitPolygon: expected the triangle classified coplanar-front, got cf=%d cb=%d front=%d back=%d", len(cf), len(cb), len(front), len(back))
	}
}

func TestSplitPolygonClassifiesSpanning(t *testing.T) {
	tri := Triangle3{{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: 0, Y: 1, Z: 0}}
	poly := polygon{verts: tri[:], pl: plane{normal: Vec3{Z: 1}, w: 0}}
	cutPlane := plane{normal: Vec3{Z: 1}, w: 0}

	var cf, cb, front, back []polygon
	splitPolygon(cutPlane, poly, &cf, &cb, &front, &back)
	if len(front) != 1 || len(back) != 1 {
		t.Errorf("splitPolygon: expected the triangle split into one front and one back piece, got front=%d back=%d", len(front), len(back))
	}
	for _, v := range front[0].verts {
		if cutPlane.distance(v) < -planeEpsilon {
			t.Errorf("splitPolygon: front piece vertex %v should not lie behind the cut plane", v)
		}
	}
}

func TestCsgUnionOfOverlappingCubes(t *testing.T) {
	a := Box(4, 4, 4).Triangles()
	b := Move(Box(4, 4, 4), Translation(2, 0, 0)).Triangles()
	u := csgUnion(a, b)
	if len(u) == 0 {
		t.Errorf("csgUnion: expected a non-empty triangle soup")
	}
	bb := BBoxOfMesh(u)
	if !EqualFloat64(bb.Max.X, 4, 1e-6) {
		t.Errorf("csgUnion: expected combined max X of 4, got %v", bb.Max.X)
	}
}

func TestCsgSubtractRemovesOverlap(t *testing.T) {
	a := Box(10, 10, 10).Triangles()
	b := Move(Box(20, 20, 20), Translation(0, 0, -10)).Triangles()
	diff := csgSubtract(a, b)
	if len(diff) != 0 {
		t.Errorf("csgSubtract: expected an empty result when the tool fully covers the target, got %d triangles", len(diff))
	}
}

func TestCsgIntersectOfDisjointIsEmpty(t *testing.T) {
	a := Box(4, 4, 4).Triangles()
	b := Move(Box(4, 4, 4), Translation(100, 0, 0)).Triangles()
	i := csgIntersect(a, b)
	if len(i) != 0 {
		t.Errorf("csgIntersect: expected no triangles for disjoint solids, got %d", len(i))
	}
}

func TestCsgSubtractManyLeavesGeometryAfterNonCoveringCuts(t *testing.T) {
	a := Box(20, 20, 20).Triangles()
	t1 := Move(Box(4, 4, 30), Translation(-6, 0, 0)).Triangles()
	t2 := Move(Box(4, 4, 30), Translation(6, 0, 0)).Triangles()
	out := csgSubtractMany(a, [][]Triangle3{t1, t2})
	if len(out) == 0 {
		t.Errorf("csgSubtractMany: expected remaining geometry after two non-covering cuts")
	}
}

func TestCsgSubtractManyWithNoToolsReturnsInputUnchanged(t *testing.T) {
	a := Box(10, 10, 10).Triangles()
	out := csgSubtractMany(a, nil)
	if len(out) != len(a) {
		t.Errorf("csgSubtractMany: expected the original triangle soup with no tools, got %d vs %d", len(out), len(a))
	}
}

package kernel

import "github.com/dhconnelly/rtreego"

// weldPoint adapts a welded vertex to rtreego.Spatial so nearby-vertex
// queries can use the R-tree's bounding-box search instead of a linear scan.
// Grounded on step/converter.go's pointCache, which matches a point within
// tolerance by scanning every cached point; here the tolerance query
// ("within 1e-5") goes through the R-tree instead.
type weldPoint struct {
	idx int
	pos Vec3
}

func (w *weldPoint) Bounds() rtreego.Rect {
	const eps = 1e-9
	p := rtreego.Point{w.pos.X - eps, w.pos.Y - eps, w.pos.Z - eps}
	r, err := rtreego.NewRect(p, []float64{2 * eps, 2 * eps, 2 * eps})
	if err != nil {
		// rtreego rejects zero-length sides; eps is always > 0 so this
		// branch is unreachable in practice, but NewRect does return an
		// error and ignoring it silently would be worse than panicking
		// on a construction bug.
		panic(err)
	}
	return r
}

// WeldMesh deduplicates vertices within tolerance, returning the
// deduplicated vertex list and, for every input triangle corner in order,
// the welded index it maps to.
func WeldMesh(tris []Triangle3, tolerance float64) (vertices []Vec3, indices []uint32) {
	if tolerance <= 0 {
		tolerance = 1e-5
	}
	tree := rtreego.NewTree(3, 25, 50)

	findOrAdd := func(v Vec3) uint32 {
		qp := rtreego.Point{v.X - tolerance, v.Y - tolerance, v.Z - tolerance}
		side := 2 * tolerance
		rect, err := rtreego.NewRect(qp, []float64{side, side, side})
		if err == nil {
			for _, cand := range tree.SearchIntersect(rect) {
				wp := cand.(*weldPoint)
				if Dist(wp.pos, v) <= tolerance {
					return uint32(wp.idx)
				}
			}
		}
		idx := len(vertices)
		vertices = append(vertices, v)
		tree.Insert(&weldPoint{idx: idx, pos: v})
		return uint32(idx)
	}

	indices = make([]uint32, 0, len(tris)*3)
	for _, t := range tris {
		for _, v := range t {
			indices = append(indices, findOrAdd(v))
		}
	}
	return vertices, indices
}

package kernel

// Planarize reconstructs Face clusters from a raw triangle soup: the
// same-domain face/edge unification a Solid produced by a boolean op needs
// to get its faces back, since cad/naming.go re-derives FaceRefs by scoring
// against exactly the faces this function returns. Adjacent triangles
// sharing a plane are merged into one Face via union-find; everything else
// stays a singleton (non-planar, or planar-but-isolated) Face. Grounded on
// step/converter.go's per-triangle-becomes-a-PLANE-entity approach,
// generalized to merge coplanar neighbors instead of emitting one face per
// triangle.
func Planarize(tris []Triangle3) *Solid {
	n := len(tris)
	if n == 0 {
		return &Solid{}
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	const precision = 1e-6
	type owner struct{ triIdx, edgeIdx int }
	edgeOwners := make(map[triEdgeKey][]owner)
	planes := make([]plane, n)
	for i, t := range tris {
		planes[i] = planeFromTriangle(t)
		for e := 0; e < 3; e++ {
			a, b := t[e], t[(e+1)%3]
			k := newTriEdgeKey(a, b, precision)
			edgeOwners[k] = append(edgeOwners[k], owner{i, e})
		}
	}

	const normalTol = 0.999
	const planeTol = 1e-4
	for _, owners := range edgeOwners {
		if len(owners) != 2 {
			continue
		}
		i, j := owners[0].triIdx, owners[1].triIdx
		if i == j {
			continue
		}
		pi, pj := planes[i], planes[j]
		if Dot(pi.normal, pj.normal) < normalTol {
			continue
		}
		if abs(pi.distance(tris[j].Centroid())) > planeTol {
			continue
		}
		union(i, j)
	}

	clusters := make(map[int][]Triangle3)
	for i, t := range tris {
		r := find(i)
		clusters[r] = append(clusters[r], t)
	}

	faces := make([]Face, 0, len(clusters))
	for _, group := range clusters {
		planar := isCoplanarGroup(group)
		faces = append(faces, newFace(group, planar))
	}
	return NewSolid(faces)
}

func isCoplanarGroup(tris []Triangle3) bool {
	if len(tris) <= 1 {
		return true
	}
	ref := planeFromTriangle(tris[0])
	for _, t := range tris[1:] {
		p := planeFromTriangle(t)
		if Dot(ref.normal, p.normal) < 0.999 {
			return false
		}
		if abs(ref.distance(t.Centroid())) > 1e-4 {
			return false
		}
	}
	return true
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

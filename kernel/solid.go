package kernel

import (
	"fmt"
	"hash/fnv"
	"sort"
)

// Face is one topological face of a Solid: a set of triangles that share a
// surface, plus the surface properties the naming layer (cad package) needs
// for auto-naming and post-boolean re-matching.
type Face struct {
	ID        uint64
	Planar    bool
	Normal    Vec3 // outward unit normal; representative value for curved faces
	Centroid  Vec3
	Area      float64
	Triangles []Triangle3
}

// Edge is the shared boundary between exactly two faces of a Solid.
type Edge struct {
	ID        uint64
	FaceA     uint64
	FaceB     uint64
	Midpoint  Vec3
	Direction Vec3
	Length    float64
}

// Solid is the facade's B-Rep value: an explicit set of faces (each a small
// triangle group) plus the edges derived from face adjacency.
type Solid struct {
	Faces []Face
	Edges []Edge
}

// Empty reports whether the solid has no geometry.
func (s *Solid) Empty() bool {
	return s == nil || len(s.Faces) == 0
}

// Triangles flattens all face triangles into one soup, e.g. for tessellation
// or as input to a boolean operation.
func (s *Solid) Triangles() []Triangle3 {
	if s == nil {
		return nil
	}
	var out []Triangle3
	for _, f := range s.Faces {
		out = append(out, f.Triangles...)
	}
	return out
}

// BoundingBox returns the solid's axis-aligned bounding box.
func (s *Solid) BoundingBox() BBox3 {
	if s.Empty() {
		return EmptyBBox3()
	}
	return BBoxOfMesh(s.Triangles())
}

// nextID assigns fresh face/edge IDs, in the manner of step/converter.go's
// idCounter for sequential STEP entity IDs: the content seed is hashed
// together with a session-wide counter, so every call returns a new ID,
// even for two identical faces produced in the same call.
var idSeed uint64

func nextID(seed string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	idSeed++
	_, _ = fmt.Fprintf(h, "#%d", idSeed)
	return h.Sum64()
}

// newFace builds a Face from its triangles, computing area-weighted normal
// and centroid (the same quantities step/converter.go's createTriangleFace
// derives per-triangle, but pooled across a face).
func newFace(tris []Triangle3, planar bool) Face {
	var areaSum float64
	var centroid Vec3
	var normalSum Vec3
	for _, t := range tris {
		a := t.Area()
		areaSum += a
		centroid = Add(centroid, Scale(a, t.Centroid()))
		normalSum = Add(normalSum, Scale(a, t.Normal()))
	}
	if areaSum > 0 {
		centroid = Scale(1/areaSum, centroid)
	}
	n := Unit(normalSum)
	f := Face{
		Planar:    planar,
		Normal:    n,
		Centroid:  centroid,
		Area:      areaSum,
		Triangles: tris,
	}
	f.ID = nextID(fmt.Sprintf("face:%.6f,%.6f,%.6f|%.6f,%.6f,%.6f|%.6f", n.X, n.Y, n.Z, centroid.X, centroid.Y, centroid.Z, areaSum))
	return f
}

// vertexKey rounds a vertex to a fixed grid so coincident (within tolerance)
// points produced by floating point construction compare equal. Used by
// edge-adjacency detection.
func vertexKey(v Vec3, precision float64) [3]int64 {
	round := func(f float64) int64 {
		if f >= 0 {
			return int64(f/precision + 0.5)
		}
		return -int64(-f/precision + 0.5)
	}
	return [3]int64{round(v.X), round(v.Y), round(v.Z)}
}

type triEdgeKey struct {
	a, b [3]int64
}

func newTriEdgeKey(a, b Vec3, precision float64) triEdgeKey {
	ka, kb := vertexKey(a, precision), vertexKey(b, precision)
	if less3(ka, kb) {
		return triEdgeKey{ka, kb}
	}
	return triEdgeKey{kb, ka}
}

func less3(a, b [3]int64) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	if a[1] != b[1] {
		return a[1] < b[1]
	}
	return a[2] < b[2]
}

// computeEdges derives Edge records from face-boundary adjacency: any
// triangle-edge shared by triangles belonging to exactly two distinct faces
// becomes part of that face-pair's Edge. This is the single mechanism used
// both for fresh primitives (kernel/primitive.go) and for solids recovered
// from a boolean op (kernel/planarize.go) — the edge-naming precondition
// that an edge be incident to exactly two named faces falls directly out
// of it, since an Edge only ever references two face IDs.
func computeEdges(faces []Face) []Edge {
	const precision = 1e-6

	type segOwner struct {
		faceIdx int
		a, b    Vec3
	}
	segments := make(map[triEdgeKey][]segOwner)

	for fi, f := range faces {
		for _, t := range f.Triangles {
			for i := 0; i < 3; i++ {
				a, b := t[i], t[(i+1)%3]
				k := newTriEdgeKey(a, b, precision)
				segments[k] = append(segments[k], segOwner{fi, a, b})
			}
		}
	}

	type pairAgg struct {
		faceA, faceB int
		midSum       Vec3
		dirSum       Vec3
		lenSum       float64
		count        int
	}
	pairs := make(map[[2]int]*pairAgg)

	for _, owners := range segments {
		// A boundary edge of the whole solid appears once; an interior
		// edge between two distinct faces appears from both sides.
		seen := map[int]bool{}
		var faceIdxs []int
		for _, o := range owners {
			if !seen[o.faceIdx] {
				seen[o.faceIdx] = true
				faceIdxs = append(faceIdxs, o.faceIdx)
			}
		}
		if len(faceIdxs) != 2 {
			continue
		}
		sort.Ints(faceIdxs)
		key := [2]int{faceIdxs[0], faceIdxs[1]}
		agg, ok := pairs[key]
		if !ok {
			agg = &pairAgg{faceA: faceIdxs[0], faceB: faceIdxs[1]}
			pairs[key] = agg
		}
		o := owners[0]
		mid := Scale(0.5, Add(o.a, o.b))
		dir := Unit(Sub(o.b, o.a))
		length := Dist(o.a, o.b)
		agg.midSum = Add(agg.midSum, mid)
		agg.dirSum = Add(agg.dirSum, dir)
		agg.lenSum += length
		agg.count++
	}

	var edges []Edge
	for _, agg := range pairs {
		if agg.count == 0 {
			continue
		}
		mid := Scale(1/float64(agg.count), agg.midSum)
		dir := Unit(agg.dirSum)
		e := Edge{
			FaceA:     faces[agg.faceA].ID,
			FaceB:     faces[agg.faceB].ID,
			Midpoint:  mid,
			Direction: dir,
			Length:    agg.lenSum,
		}
		e.ID = nextID(fmt.Sprintf("edge:%d,%d|%.6f,%.6f,%.6f", e.FaceA, e.FaceB, mid.X, mid.Y, mid.Z))
		edges = append(edges, e)
	}
	return edges
}

// NewSolid assembles a Solid from faces, computing edges by adjacency.
func NewSolid(faces []Face) *Solid {
	return &Solid{Faces: faces, Edges: computeEdges(faces)}
}

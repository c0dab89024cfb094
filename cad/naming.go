package cad

import (
	"math"
	"sort"
	"strings"

	"github.com/darrenoakey/daz-cad-sub000/kernel"
)

// canonicalSlot is one of the closed canonical-name set, in the fixed
// assignment order the auto-namer walks.
type canonicalSlot struct {
	name string
	dir  kernel.Vec3
}

var canonicalSlots = []canonicalSlot{
	{"right", kernel.Vec3{X: 1}},
	{"left", kernel.Vec3{X: -1}},
	{"front", kernel.Vec3{Y: 1}},
	{"back", kernel.Vec3{Y: -1}},
	{"top", kernel.Vec3{Z: 1}},
	{"bottom", kernel.Vec3{Z: -1}},
}

const canonicalDotThreshold = 0.95

// autoNameBox assigns each of the six canonical names to the first unused
// slot whose reference direction has dot-product with the face normal
// exceeding 0.95.
func autoNameBox(solid *kernel.Solid) map[string]FaceRef {
	remaining := append([]canonicalSlot(nil), canonicalSlots...)
	out := map[string]FaceRef{}
	for _, f := range solid.Faces {
		for i, slot := range remaining {
			if kernel.Dot(slot.dir, f.Normal) > canonicalDotThreshold {
				out[slot.name] = FaceRef{Normal: f.Normal, Centroid: f.Centroid, Area: f.Area}
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	return out
}

// autoNameTopBottom names only the max/min-Z planar faces "top"/"bottom",
// used by polygonPrism (whose side faces have no canonical slot).
func autoNameTopBottom(solid *kernel.Solid) map[string]FaceRef {
	out := map[string]FaceRef{}
	for _, f := range solid.Faces {
		if !f.Planar {
			continue
		}
		if kernel.Dot(kernel.Vec3{Z: 1}, f.Normal) > canonicalDotThreshold {
			out["top"] = FaceRef{Normal: f.Normal, Centroid: f.Centroid, Area: f.Area}
		} else if kernel.Dot(kernel.Vec3{Z: -1}, f.Normal) > canonicalDotThreshold {
			out["bottom"] = FaceRef{Normal: f.Normal, Centroid: f.Centroid, Area: f.Area}
		}
	}
	return out
}

// autoNameCylinder names the two planar +-Z faces top/bottom and the
// first curved face "side".
func autoNameCylinder(solid *kernel.Solid) map[string]FaceRef {
	out := autoNameTopBottom(solid)
	for _, f := range solid.Faces {
		if f.Planar {
			continue
		}
		out["side"] = FaceRef{Normal: f.Normal, Centroid: f.Centroid, Area: f.Area}
		break
	}
	return out
}

// applyPendingAutoName runs deferred naming for a shape whose
// pendingAutoName tag is set ("box", "cylinder" or "topbottom"). The
// constructors in this package name eagerly and leave the tag empty.
func (s *Shape) applyPendingAutoName() {
	tag := s.pendingAutoName
	s.pendingAutoName = ""
	if s.solid == nil {
		return
	}
	switch tag {
	case "box":
		s.namedFaces = autoNameBox(s.solid)
	case "cylinder":
		s.namedFaces = autoNameCylinder(s.solid)
	case "topbottom":
		s.namedFaces = autoNameTopBottom(s.solid)
	}
}

// edgeNameFor returns the canonical "a-b" name (a<b lexicographically) for
// the pair of face names incident to e, and whether both faces are
// currently named.
func edgeNameFor(namedFaces map[string]FaceRef, faceNameByID map[uint64]string, e kernel.Edge) (string, bool) {
	a, okA := faceNameByID[e.FaceA]
	b, okB := faceNameByID[e.FaceB]
	if !okA || !okB || a == b {
		return "", false
	}
	if a > b {
		a, b = b, a
	}
	return a + "-" + b, true
}

// computeNamedEdges lazily derives the edge-name table: an edge gets name
// "a-b" iff both its incident faces are currently named.
func (s *Shape) computeNamedEdges() {
	if s.namedEdges != nil || s.solid == nil {
		return
	}
	faceNameByID := s.faceNameIndex()
	out := map[string]EdgeRef{}
	for _, e := range s.solid.Edges {
		name, ok := edgeNameFor(s.namedFaces, faceNameByID, e)
		if !ok {
			continue
		}
		out[name] = EdgeRef{Midpoint: e.Midpoint, Direction: e.Direction, Length: e.Length}
	}
	s.namedEdges = out
}

// faceNameIndex maps a live face's stable ID to its current name, by
// resolving every stored name back to its best-matching live face.
func (s *Shape) faceNameIndex() map[uint64]string {
	idx := map[uint64]string{}
	if s.solid == nil {
		return idx
	}
	for name := range s.namedFaces {
		if f, ok := s.resolveFaceByName(name); ok {
			idx[f.ID] = name
		}
	}
	return idx
}

// resolveFaceByName finds the live face that best matches a stored name's
// FaceRef, using a weighted normal/centroid resolution score.
func (s *Shape) resolveFaceByName(name string) (kernel.Face, bool) {
	ref, ok := s.namedFaces[name]
	if !ok {
		return kernel.Face{}, false
	}
	d := boundingSphereDiagonal(s.solid.BoundingBox())
	tol := math.Max(1, 0.1*d)

	var best kernel.Face
	bestScore := -1.0
	found := false
	for _, f := range s.solid.Faces {
		normalDot := kernel.Dot(kernel.Unit(f.Normal), kernel.Unit(ref.Normal))
		centroidTerm := math.Max(0, 1-kernel.Dist(f.Centroid, ref.Centroid)/tol)
		score := 0.6*normalDot + 0.4*centroidTerm
		if normalDot > 0.9 && score > 0.3 && score > bestScore {
			bestScore = score
			best = f
			found = true
		}
	}
	return best, found
}

// resolveEdgeByName finds the live edge whose midpoint lies within 1.0 of
// the stored midpoint for name.
func (s *Shape) resolveEdgeByName(name string) (kernel.Edge, bool) {
	s.computeNamedEdges()
	ref, ok := s.namedEdges[name]
	if !ok {
		return kernel.Edge{}, false
	}
	for _, e := range s.solid.Edges {
		if kernel.Dist(e.Midpoint, ref.Midpoint) <= 1.0 {
			return e, true
		}
	}
	return kernel.Edge{}, false
}

// NameFace resolves selector and inserts a new named-face entry under
// newName carrying the resolved face's current geometry.
func (s Shape) NameFace(selector, newName string) Shape {
	s.materialize()
	faces := s.resolveFaceSelector(selector)
	if len(faces) == 0 {
		return fail(s, "nameFace", "selector %q matched no faces", selector)
	}
	n := s.clone()
	if n.namedFaces == nil {
		n.namedFaces = map[string]FaceRef{}
	}
	f := faces[0]
	n.namedFaces[newName] = FaceRef{Normal: f.Normal, Centroid: f.Centroid, Area: f.Area}
	n.namedEdges = nil
	return n
}

// NameEdge resolves selector and inserts a new named-edge entry under
// newName carrying the resolved edge's current geometry.
func (s Shape) NameEdge(selector, newName string) Shape {
	s.materialize()
	edges := s.resolveEdgeSelector(selector)
	if len(edges) == 0 {
		return fail(s, "nameEdge", "selector %q matched no edges", selector)
	}
	n := s.clone()
	n.computeNamedEdges()
	if n.namedEdges == nil {
		n.namedEdges = map[string]EdgeRef{}
	}
	e := edges[0]
	n.namedEdges[newName] = EdgeRef{Midpoint: e.Midpoint, Direction: e.Direction, Length: e.Length}
	return n
}

// Face returns the stored FaceRef for name, looking in sub-parts for
// dotted names and falling back to sub-parts for bare names absent at the
// top level.
func (s *Shape) Face(name string) (FaceRef, bool) {
	if part, face, ok := splitDotted(name); ok {
		if sp, ok := s.subParts[part]; ok {
			ref, ok := sp.NamedFaces[face]
			return ref, ok
		}
		return FaceRef{}, false
	}
	if ref, ok := s.namedFaces[name]; ok {
		return ref, true
	}
	for _, sp := range s.subParts {
		if ref, ok := sp.NamedFaces[name]; ok {
			return ref, true
		}
	}
	return FaceRef{}, false
}

func splitDotted(name string) (part, leaf string, ok bool) {
	i := strings.IndexByte(name, '.')
	if i < 0 {
		return "", "", false
	}
	return name[:i], name[i+1:], true
}

// boundingSphereDiagonal is the diagonal of the shape's bounding box, used
// as a distance-normalizing scale in the face-matching scores below.
func boundingSphereDiagonal(bb kernel.BBox3) float64 {
	if bb.Empty() {
		return 0
	}
	return bb.Diagonal()
}

// rematchAfterBoolean re-matches names after a boolean operation: merge
// left/right named-face tables (left wins), score every (name, live face)
// pair, and greedily assign names to faces until the best remaining score
// falls below 0.30.
func rematchAfterBoolean(result *kernel.Solid, left, right Shape) (map[string]FaceRef, map[string]SubPart) {
	merged := mergeFaceRefs(left.namedFaces, right.namedFaces)
	if len(merged) == 0 {
		return nil, mergeSubParts(left, right)
	}

	d := boundingSphereDiagonal(result.BoundingBox())
	scale := math.Max(d, 100)

	type candidate struct {
		name  string
		faceI int
		score float64
	}

	planar := make([]kernel.Face, 0, len(result.Faces))
	for _, f := range result.Faces {
		if f.Planar {
			planar = append(planar, f)
		}
	}

	names := make([]string, 0, len(merged))
	for n := range merged {
		names = append(names, n)
	}
	sort.Strings(names)

	var candidates []candidate
	for _, name := range names {
		ref := merged[name]
		for i, f := range planar {
			normalTerm := math.Max(0, kernel.Dot(kernel.Unit(f.Normal), kernel.Unit(ref.Normal)))
			centroidTerm := math.Max(0, 1-kernel.Dist(f.Centroid, ref.Centroid)/scale)
			areaRatio := 0.0
			if f.Area > 0 && ref.Area > 0 {
				if f.Area < ref.Area {
					areaRatio = f.Area / ref.Area
				} else {
					areaRatio = ref.Area / f.Area
				}
			}
			score := 0.50*normalTerm + 0.35*centroidTerm + 0.15*areaRatio
			candidates = append(candidates, candidate{name: name, faceI: i, score: score})
		}
	}

	usedName := map[string]bool{}
	usedFace := map[int]bool{}
	out := map[string]FaceRef{}
	for {
		best := -1.0
		bestIdx := -1
		for i, c := range candidates {
			if usedName[c.name] || usedFace[c.faceI] {
				continue
			}
			if c.score > best {
				best = c.score
				bestIdx = i
			}
		}
		if bestIdx < 0 || best < 0.30 {
			break
		}
		c := candidates[bestIdx]
		f := planar[c.faceI]
		out[c.name] = FaceRef{Normal: f.Normal, Centroid: f.Centroid, Area: f.Area}
		usedName[c.name] = true
		usedFace[c.faceI] = true
	}

	subParts := mergeSubParts(left, right)
	for _, operand := range []Shape{left, right} {
		if operand.shapeName == "" || len(operand.namedFaces) == 0 {
			continue
		}
		nf := map[string]FaceRef{}
		for name := range operand.namedFaces {
			if ref, ok := out[name]; ok {
				nf[name] = ref
			}
		}
		if subParts == nil {
			subParts = map[string]SubPart{}
		}
		subParts[operand.shapeName] = SubPart{NamedFaces: nf, NamedEdges: map[string]EdgeRef{}}
	}

	return out, subParts
}

func mergeFaceRefs(left, right map[string]FaceRef) map[string]FaceRef {
	if len(left) == 0 && len(right) == 0 {
		return nil
	}
	out := make(map[string]FaceRef, len(left)+len(right))
	for k, v := range right {
		out[k] = v
	}
	for k, v := range left {
		out[k] = v
	}
	return out
}

func mergeSubParts(left, right Shape) map[string]SubPart {
	if len(left.subParts) == 0 && len(right.subParts) == 0 {
		return nil
	}
	out := map[string]SubPart{}
	for k, v := range right.subParts {
		out[k] = v
	}
	for k, v := range left.subParts {
		out[k] = v
	}
	return out
}

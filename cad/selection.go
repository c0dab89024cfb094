package cad

import (
	"math"
	"strings"

	"github.com/darrenoakey/daz-cad-sub000/kernel"
)

const axisTolerance = 1e-3
const parallelAxisEpsilon = 0.1
const edgeAxisThreshold = 0.9

func axisUnit(axis byte) kernel.Vec3 {
	switch axis {
	case 'x', 'X':
		return kernel.Vec3{X: 1}
	case 'y', 'Y':
		return kernel.Vec3{Y: 1}
	case 'z', 'Z':
		return kernel.Vec3{Z: 1}
	}
	return kernel.Vec3{}
}

func axisComponent(v kernel.Vec3, axis byte) float64 {
	switch axis {
	case 'x', 'X':
		return v.X
	case 'y', 'Y':
		return v.Y
	case 'z', 'Z':
		return v.Z
	}
	return 0
}

// Faces enumerates all faces of the shape; with a selector, filters them
// to the matching subset.
func (s Shape) Faces(selector ...string) Shape {
	s.materialize()
	sel := ""
	if len(selector) > 0 {
		sel = selector[0]
	}
	faces := s.matchFaces(s.allFaces(), sel)
	n := s.clone()
	n.selKind = SelFaces
	n.selFaces = faces
	return n
}

// FacesNot returns all faces except those the selector would have matched.
func (s Shape) FacesNot(selector string) Shape {
	s.materialize()
	all := s.allFaces()
	matched := s.matchFaces(all, selector)
	matchedIDs := map[uint64]bool{}
	for _, f := range matched {
		matchedIDs[f.ID] = true
	}
	var out []kernel.Face
	for _, f := range all {
		if !matchedIDs[f.ID] {
			out = append(out, f)
		}
	}
	n := s.clone()
	n.selKind = SelFaces
	n.selFaces = out
	return n
}

// Edges returns edges of the currently selected faces if a face selection
// is active, otherwise edges of the whole shape, de-duplicated by ID; with
// a selector, filters the result.
func (s Shape) Edges(selector ...string) Shape {
	s.materialize()
	sel := ""
	if len(selector) > 0 {
		sel = selector[0]
	}
	base := s.candidateEdges()
	edges := s.matchEdges(base, sel)
	n := s.clone()
	n.selKind = SelEdges
	n.selEdges = edges
	return n
}

// EdgesNot returns the candidate edge set minus those the selector matches.
func (s Shape) EdgesNot(selector string) Shape {
	s.materialize()
	base := s.candidateEdges()
	matched := s.matchEdges(base, selector)
	matchedIDs := map[uint64]bool{}
	for _, e := range matched {
		matchedIDs[e.ID] = true
	}
	var out []kernel.Edge
	for _, e := range base {
		if !matchedIDs[e.ID] {
			out = append(out, e)
		}
	}
	n := s.clone()
	n.selKind = SelEdges
	n.selEdges = out
	return n
}

func (s Shape) allFaces() []kernel.Face {
	if s.solid == nil {
		return nil
	}
	return s.solid.Faces
}

// candidateEdges is the base set Edges()/EdgesNot() filter from: edges of
// the selected faces if a face selection is active, else all edges.
func (s Shape) candidateEdges() []kernel.Edge {
	if s.solid == nil {
		return nil
	}
	if s.selKind != SelFaces || len(s.selFaces) == 0 {
		return s.solid.Edges
	}
	ids := map[uint64]bool{}
	for _, f := range s.selFaces {
		ids[f.ID] = true
	}
	seen := map[uint64]bool{}
	var out []kernel.Edge
	for _, e := range s.solid.Edges {
		if !ids[e.FaceA] && !ids[e.FaceB] {
			continue
		}
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}

// matchFaces applies selector to candidate, supporting axis selectors
// (">A"/"<A"/"|A"), compound "x or y", and named/custom selectors.
func (s Shape) matchFaces(candidate []kernel.Face, selector string) []kernel.Face {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return candidate
	}
	if parts := splitOr(selector); len(parts) > 1 {
		seen := map[uint64]bool{}
		var out []kernel.Face
		for _, p := range parts {
			for _, f := range s.matchFaces(candidate, p) {
				if !seen[f.ID] {
					seen[f.ID] = true
					out = append(out, f)
				}
			}
		}
		return out
	}
	if len(selector) >= 2 && (selector[0] == '>' || selector[0] == '<' || selector[0] == '|') {
		axis := selector[1]
		switch selector[0] {
		case '>':
			return extremeFaces(candidate, axis, true)
		case '<':
			return extremeFaces(candidate, axis, false)
		case '|':
			var out []kernel.Face
			au := axisUnit(axis)
			for _, f := range candidate {
				if math.Abs(kernel.Dot(kernel.Unit(f.Normal), au)) < parallelAxisEpsilon {
					out = append(out, f)
				}
			}
			return out
		}
	}
	// Named/custom selector: resolve against the stored name table and
	// intersect with candidate.
	f, ok := s.resolveFaceByName(selector)
	if !ok {
		return nil
	}
	for _, c := range candidate {
		if c.ID == f.ID {
			return []kernel.Face{c}
		}
	}
	return nil
}

func (s Shape) matchEdges(candidate []kernel.Edge, selector string) []kernel.Edge {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return candidate
	}
	if parts := splitOr(selector); len(parts) > 1 {
		seen := map[uint64]bool{}
		var out []kernel.Edge
		for _, p := range parts {
			for _, e := range s.matchEdges(candidate, p) {
				if !seen[e.ID] {
					seen[e.ID] = true
					out = append(out, e)
				}
			}
		}
		return out
	}
	if len(selector) >= 2 && (selector[0] == '>' || selector[0] == '<' || selector[0] == '|') {
		axis := selector[1]
		switch selector[0] {
		case '>':
			return extremeEdges(candidate, axis, true)
		case '<':
			return extremeEdges(candidate, axis, false)
		case '|':
			var out []kernel.Edge
			for _, e := range candidate {
				if math.Abs(axisComponent(e.Direction, axis)) > edgeAxisThreshold {
					out = append(out, e)
				}
			}
			return out
		}
	}
	e, ok := s.resolveEdgeByName(selector)
	if !ok {
		return nil
	}
	for _, c := range candidate {
		if c.ID == e.ID {
			return []kernel.Edge{c}
		}
	}
	return nil
}

func splitOr(selector string) []string {
	if !strings.Contains(selector, " or ") {
		return []string{selector}
	}
	raw := strings.Split(selector, " or ")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func extremeFaces(candidate []kernel.Face, axis byte, max bool) []kernel.Face {
	if len(candidate) == 0 {
		return nil
	}
	best := axisComponent(candidate[0].Centroid, axis)
	for _, f := range candidate[1:] {
		v := axisComponent(f.Centroid, axis)
		if (max && v > best) || (!max && v < best) {
			best = v
		}
	}
	var out []kernel.Face
	for _, f := range candidate {
		v := axisComponent(f.Centroid, axis)
		if math.Abs(v-best) <= axisTolerance {
			out = append(out, f)
		}
	}
	return out
}

func extremeEdges(candidate []kernel.Edge, axis byte, max bool) []kernel.Edge {
	if len(candidate) == 0 {
		return nil
	}
	best := axisComponent(candidate[0].Midpoint, axis)
	for _, e := range candidate[1:] {
		v := axisComponent(e.Midpoint, axis)
		if (max && v > best) || (!max && v < best) {
			best = v
		}
	}
	var out []kernel.Edge
	for _, e := range candidate {
		v := axisComponent(e.Midpoint, axis)
		if math.Abs(v-best) <= axisTolerance {
			out = append(out, e)
		}
	}
	return out
}

// FilteredEdge is the {zMin,zMax,edge} record filterEdges' predicate
// receives.
type FilteredEdge struct {
	ZMin float64
	ZMax float64
	Edge kernel.Edge
}

// FilterEdges applies a user predicate over the candidate edge set.
func (s Shape) FilterEdges(predicate func(FilteredEdge) bool) Shape {
	s.materialize()
	base := s.candidateEdges()
	bb := s.BoundingBox()
	var out []kernel.Edge
	for _, e := range base {
		if predicate(FilteredEdge{ZMin: bb.Min.Z, ZMax: bb.Max.Z, Edge: e}) {
			out = append(out, e)
		}
	}
	n := s.clone()
	n.selKind = SelEdges
	n.selEdges = out
	return n
}

const zExtentTolerance = 1e-2

// FilterOutBottom removes edges lying on the shape's minimum-Z plane.
func (s Shape) FilterOutBottom() Shape {
	return s.FilterEdges(func(fe FilteredEdge) bool {
		return math.Abs(fe.Edge.Midpoint.Z-fe.ZMin) > zExtentTolerance
	})
}

// FilterOutTop removes edges lying on the shape's maximum-Z plane.
func (s Shape) FilterOutTop() Shape {
	return s.FilterEdges(func(fe FilteredEdge) bool {
		return math.Abs(fe.Edge.Midpoint.Z-fe.ZMax) > zExtentTolerance
	})
}

// resolveFaceSelector resolves a selector string against all of the
// shape's faces (used by naming/relative ops, not constrained to the
// current selection).
func (s Shape) resolveFaceSelector(selector string) []kernel.Face {
	return s.matchFaces(s.allFaces(), selector)
}

// resolveEdgeSelector resolves a selector string against all of the
// shape's edges.
func (s Shape) resolveEdgeSelector(selector string) []kernel.Edge {
	if s.solid == nil {
		return nil
	}
	return s.matchEdges(s.solid.Edges, selector)
}

// SelectedFaces returns the shape's current face selection, if any.
func (s Shape) SelectedFaces() []kernel.Face { return append([]kernel.Face(nil), s.selFaces...) }

// SelectedEdges returns the shape's current edge selection, if any.
func (s Shape) SelectedEdges() []kernel.Edge { return append([]kernel.Edge(nil), s.selEdges...) }

// SelectionKind reports whether faces, edges, or nothing is selected.
func (s Shape) SelectionKind() Selection { return s.selKind }

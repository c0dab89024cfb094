package cad

import "github.com/darrenoakey/daz-cad-sub000/kernel"

// booleanResult builds the shared shape of union/cut/intersect: combine
// geometry, propagate color/modifiers, merge metadata (left wins), and
// re-match named faces against the new geometry.
func booleanResult(operation string, left, right Shape, combined *kernel.Solid) Shape {
	n := left.clone()
	n.solid = combined
	n.selKind = SelNone
	n.selFaces = nil
	n.selEdges = nil
	n.namedEdges = nil

	if n.color == "" {
		n.color = right.color
	}
	n.modifiers = append(append([]Shape(nil), left.modifiers...), right.modifiers...)
	n.metadata = mergeMetadata(left.metadata, right.metadata)

	nf, sp := rematchAfterBoolean(combined, left, right)
	n.namedFaces = nf
	n.subParts = sp
	return n
}

// Union fuses s and other, then runs same-domain unification so subsequent
// fillet/chamfer see clean topology; if unification fails or is empty, the
// plain fused shape is kept.
func (s Shape) Union(other Shape) Shape {
	if s.IsEmpty() {
		return other.clone()
	}
	if other.IsEmpty() {
		return s.clone()
	}
	fused := kernel.Union(s.solid, other.solid)
	if fused == nil || fused.Empty() {
		return recordFailure(s, "union", "boolean union produced an empty result", nil)
	}
	unified := kernel.Unify(fused)
	if unified != nil && !unified.Empty() {
		fused = unified
	}
	return booleanResult("union", s, other, fused)
}

// Cut subtracts other from s.
func (s Shape) Cut(other Shape) Shape {
	if s.IsEmpty() {
		return recordFailure(s, "cut", "cannot cut from an empty shape", nil)
	}
	result := kernel.Subtract(s.solid, other.solid)
	if result == nil {
		return recordFailure(s, "cut", "boolean cut failed", nil)
	}
	return booleanResult("cut", s, other, result)
}

// Intersect returns the common volume of s and other.
func (s Shape) Intersect(other Shape) Shape {
	if s.IsEmpty() || other.IsEmpty() {
		return recordFailure(s, "intersect", "cannot intersect with an empty shape", nil)
	}
	result := kernel.Intersect(s.solid, other.solid)
	if result == nil {
		return recordFailure(s, "intersect", "boolean intersect failed", nil)
	}
	return booleanResult("intersect", s, other, result)
}

// Hole drills along +Z through the bounding-box center in xy; the drill
// cylinder exceeds the shape's z-extent by 1 on each side. An optional
// depth limits it to a blind hole measured down from the top face.
func (s Shape) Hole(diameter float64, depth ...float64) Shape {
	if diameter <= 0 {
		return fail(s, "hole", "diameter must be positive, got %v", diameter)
	}
	if s.IsEmpty() {
		return recordFailure(s, "hole", "cannot drill an empty shape", nil)
	}
	bb := s.BoundingBox()
	cx := (bb.Min.X + bb.Max.X) / 2
	cy := (bb.Min.Y + bb.Max.Y) / 2

	var height, startZ float64
	if len(depth) > 0 && depth[0] > 0 {
		height = depth[0] + 1
		startZ = bb.Max.Z - depth[0]
	} else {
		height = (bb.Max.Z - bb.Min.Z) + 2
		startZ = bb.Min.Z - 1
	}

	drill := kernel.Cylinder(diameter/2, height, defaultCylinderSegments)
	drill = kernel.Move(drill, kernel.Translation(cx, cy, startZ))

	result := kernel.Subtract(s.solid, drill)
	if result == nil {
		return recordFailure(s, "hole", "boolean cut failed", nil)
	}
	return booleanResult("hole", s, emptyShape(), result)
}

// Fillet rounds the current edge selection (or all edges, if none is
// selected) by radius. Per-edge failures are silently skipped; if none of
// the edges could be featured, the pre-feature shape is returned and a
// "No edges were added" error is recorded.
func (s Shape) Fillet(radius float64) Shape {
	if radius <= 0 {
		return fail(s, "fillet", "radius must be positive, got %v", radius)
	}
	return s.applyFeature("fillet", radius, kernel.Fillet)
}

// Chamfer cuts distance off the current edge selection (or all edges, if
// none is selected).
func (s Shape) Chamfer(distance float64) Shape {
	if distance <= 0 {
		return fail(s, "chamfer", "distance must be positive, got %v", distance)
	}
	return s.applyFeature("chamfer", distance, kernel.Chamfer)
}

func (s Shape) applyFeature(operation string, amount float64, op func(*kernel.Solid, []kernel.Edge, float64) (*kernel.Solid, int)) Shape {
	s.materialize()
	if s.IsEmpty() {
		return recordFailure(s, operation, "cannot feature an empty shape", nil)
	}
	edges := s.selEdges
	if s.selKind != SelEdges || len(edges) == 0 {
		edges = s.solid.Edges
	}
	result, count := op(s.solid, edges, amount)
	if count == 0 {
		return recordFailure(s, operation, "No edges were added", nil)
	}
	if result == nil || result.Empty() {
		return recordFailure(s, operation, "feature build failed", nil)
	}
	return booleanResult(operation, s, emptyShape(), result)
}

// Package cad implements the fluent, immutable CAD modeling core: shape
// construction, boolean/feature operations, face/edge selection, semantic
// naming, pattern cutting, and mesh/STL/3MF export, all built on top of the
// kernel package's B-Rep facade.
package cad

import (
	"fmt"

	"github.com/darrenoakey/daz-cad-sub000/errs"
	"github.com/darrenoakey/daz-cad-sub000/kernel"
)

// Selection distinguishes which kind of sub-shape set a Shape currently
// carries as its "current selection" for chained operations.
type Selection int

const (
	SelNone Selection = iota
	SelFaces
	SelEdges
)

// FaceRef is a persistent, geometry-derived descriptor that lets a face
// name survive boolean operations via similarity matching.
type FaceRef struct {
	Normal   kernel.Vec3
	Centroid kernel.Vec3
	Area     float64
}

// EdgeRef is the edge analogue of FaceRef.
type EdgeRef struct {
	Midpoint  kernel.Vec3
	Direction kernel.Vec3
	Length    float64
}

// SubPart preserves the named-face/named-edge tables of one operand after
// it has been folded into a boolean result, keyed by its shape-name.
type SubPart struct {
	NamedFaces map[string]FaceRef
	NamedEdges map[string]EdgeRef
}

// Shape is the fluent core's immutable unit of work. Every method that
// derives a new Shape returns a value; the receiver is never mutated.
type Shape struct {
	solid *kernel.Solid
	plane string

	selKind  Selection
	selFaces []kernel.Face
	selEdges []kernel.Edge

	color     string
	modifiers []Shape
	metadata  map[string]interface{}
	shapeName string

	namedFaces map[string]FaceRef
	// namedEdges is nil until first computed (lazy tri-state: nil means
	// NotComputed, a non-nil possibly-empty map means Computed).
	namedEdges map[string]EdgeRef
	subParts   map[string]SubPart

	pendingAutoName string
}

// Solid exposes the underlying kernel solid for code (tests, mesh export)
// that needs direct geometric access.
func (s Shape) Solid() *kernel.Solid {
	s.materialize()
	return s.solid
}

// materialize runs any deferred auto-naming in place on the receiver, so a
// read-only accessor sees the named-face table up to date.
func (s *Shape) materialize() {
	if s.pendingAutoName != "" {
		s.applyPendingAutoName()
	}
}

func emptyShape() Shape {
	return Shape{solid: &kernel.Solid{}, plane: "XY"}
}

// clone performs the deep copy immutability requires: color, metadata,
// modifiers, shape-name, named-faces, named-edges, sub-parts and
// pending-auto-name are all copied, never shared, with the caller free to
// mutate the returned value's maps/slices independently of the receiver.
func (s Shape) clone() Shape {
	n := Shape{
		solid:           s.solid,
		plane:           s.plane,
		selKind:         s.selKind,
		color:           s.color,
		shapeName:       s.shapeName,
		pendingAutoName: s.pendingAutoName,
	}
	if s.selFaces != nil {
		n.selFaces = append([]kernel.Face(nil), s.selFaces...)
	}
	if s.selEdges != nil {
		n.selEdges = append([]kernel.Edge(nil), s.selEdges...)
	}
	if s.modifiers != nil {
		n.modifiers = append([]Shape(nil), s.modifiers...)
	}
	if s.metadata != nil {
		n.metadata = make(map[string]interface{}, len(s.metadata))
		for k, v := range s.metadata {
			n.metadata[k] = v
		}
	}
	if s.namedFaces != nil {
		n.namedFaces = make(map[string]FaceRef, len(s.namedFaces))
		for k, v := range s.namedFaces {
			n.namedFaces[k] = v
		}
	}
	if s.namedEdges != nil {
		n.namedEdges = make(map[string]EdgeRef, len(s.namedEdges))
		for k, v := range s.namedEdges {
			n.namedEdges[k] = v
		}
	}
	if s.subParts != nil {
		n.subParts = make(map[string]SubPart, len(s.subParts))
		for k, v := range s.subParts {
			nf := make(map[string]FaceRef, len(v.NamedFaces))
			for fk, fv := range v.NamedFaces {
				nf[fk] = fv
			}
			ne := make(map[string]EdgeRef, len(v.NamedEdges))
			for ek, ev := range v.NamedEdges {
				ne[ek] = ev
			}
			n.subParts[k] = SubPart{NamedFaces: nf, NamedEdges: ne}
		}
	}
	return n
}

// withSolid returns a clone of s carrying a new solid, with the selection
// cleared (a new geometry invalidates the previous face/edge handles) and
// edge names invalidated (set back to NotComputed).
func (s Shape) withSolid(solid *kernel.Solid) Shape {
	n := s.clone()
	n.solid = solid
	n.selKind = SelNone
	n.selFaces = nil
	n.selEdges = nil
	n.namedEdges = nil
	return n
}

// recordFailure records a structured error and returns fallback unchanged
// (the pre-operation shape survives so the chain stays continuable).
func recordFailure(fallback Shape, operation, message string, cause error) Shape {
	errs.Global.Record(operation, message, cause)
	return fallback
}

// fail is a convenience for validation errors where the offending value
// should appear in the message.
func fail(fallback Shape, operation, format string, args ...interface{}) Shape {
	return recordFailure(fallback, operation, fmt.Sprintf(format, args...), nil)
}

// Color returns a clone tagged with an RGB hex color string.
func (s Shape) Color(hex string) Shape {
	n := s.clone()
	n.color = hex
	return n
}

// GetColor returns the shape's color tag, or "" if unset.
func (s Shape) GetColor() string { return s.color }

// Name tags the shape for dotted sub-part access after subsequent booleans.
func (s Shape) Name(shapeName string) Shape {
	n := s.clone()
	n.shapeName = shapeName
	return n
}

// ShapeName returns the shape's own sub-part tag, if any.
func (s Shape) ShapeName() string { return s.shapeName }

// WithModifier attaches other as a modifier volume: booleans on s ignore
// it; mesh/STL/STEP/3MF export subtracts it from the main body (mainSolid)
// and mesh/STL/3MF output also carries it as a separate volume.
func (s Shape) WithModifier(other Shape) Shape {
	n := s.clone()
	n.modifiers = append(n.modifiers, other)
	return n
}

// Modifiers returns the shape's modifier volumes.
func (s Shape) Modifiers() []Shape { return append([]Shape(nil), s.modifiers...) }

// Metadata sets a single recognized metadata key.
func (s Shape) Metadata(key string, value interface{}) Shape {
	n := s.clone()
	if n.metadata == nil {
		n.metadata = map[string]interface{}{}
	}
	n.metadata[key] = value
	return n
}

// InfillDensity sets the infillDensity metadata key (integer percent).
func (s Shape) InfillDensity(percent int) Shape { return s.Metadata("infillDensity", percent) }

// InfillPattern sets the infillPattern metadata key.
func (s Shape) InfillPattern(pattern string) Shape { return s.Metadata("infillPattern", pattern) }

// PartName sets the partName metadata key.
func (s Shape) PartName(name string) Shape { return s.Metadata("partName", name) }

// GetMetadata returns a copy of the shape's metadata map.
func (s Shape) GetMetadata() map[string]interface{} {
	out := make(map[string]interface{}, len(s.metadata))
	for k, v := range s.metadata {
		out[k] = v
	}
	return out
}

// mergeMetadata merges two metadata maps with the left map winning on key
// conflicts: booleans merge metadata, left operand wins.
func mergeMetadata(left, right map[string]interface{}) map[string]interface{} {
	if len(left) == 0 && len(right) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(left)+len(right))
	for k, v := range right {
		out[k] = v
	}
	for k, v := range left {
		out[k] = v
	}
	return out
}

// IsEmpty reports whether the shape's geometry is empty (e.g. after a
// failed construction).
func (s Shape) IsEmpty() bool {
	return s.solid == nil || s.solid.Empty()
}

// BoundingBox returns the shape's axis-aligned bounding box.
func (s Shape) BoundingBox() kernel.BBox3 {
	if s.solid == nil {
		return kernel.EmptyBBox3()
	}
	return s.solid.BoundingBox()
}

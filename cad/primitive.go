package cad

import (
	"math"

	"github.com/darrenoakey/daz-cad-sub000/kernel"
)

const defaultCylinderSegments = 48
const defaultSphereSegments = 24

// Box constructs a box spanning [-l/2,l/2] x [-w/2,w/2] x [0,h], with the
// six canonical faces auto-named eagerly.
func Box(l, w, h float64) Shape {
	base := emptyShape()
	if l <= 0 {
		return fail(base, "box", "length must be positive, got %v", l)
	}
	if w <= 0 {
		return fail(base, "box", "width must be positive, got %v", w)
	}
	if h <= 0 {
		return fail(base, "box", "height must be positive, got %v", h)
	}

	solid := kernel.Box(l, w, h)
	s := base.withSolid(solid)
	s.namedFaces = autoNameBox(solid)
	return s
}

// Cylinder constructs a cylinder of radius r and height h, centered on the
// z-axis from z=0 to z=h, with top/bottom/side auto-named eagerly.
func Cylinder(r, h float64) Shape {
	base := emptyShape()
	if r <= 0 {
		return fail(base, "cylinder", "radius must be positive, got %v", r)
	}
	if h <= 0 {
		return fail(base, "cylinder", "height must be positive, got %v", h)
	}

	solid := kernel.Cylinder(r, h, defaultCylinderSegments)
	s := base.withSolid(solid)
	s.namedFaces = autoNameCylinder(solid)
	return s
}

// Sphere constructs a sphere of radius r centered at (0,0,r), so its
// bottom sits on z=0. It gets no named faces (a sphere has no canonical
// flat faces to assign).
func Sphere(r float64) Shape {
	base := emptyShape()
	if r <= 0 {
		return fail(base, "sphere", "radius must be positive, got %v", r)
	}
	solid := kernel.Sphere(r, defaultSphereSegments)
	return base.withSolid(solid)
}

// PolygonPrism constructs a flat-topped n-sided prism in the xy-plane,
// extruded +Z by height. top/bottom are named eagerly; the n side faces
// are left unnamed (no canonical slot applies to an arbitrary n-gon).
func PolygonPrism(sides int, flatToFlat, height float64) Shape {
	base := emptyShape()
	if sides < 3 {
		return fail(base, "polygonPrism", "sides must be >= 3, got %v", sides)
	}
	if flatToFlat <= 0 {
		return fail(base, "polygonPrism", "flatToFlat must be positive, got %v", flatToFlat)
	}
	if height <= 0 {
		return fail(base, "polygonPrism", "height must be positive, got %v", height)
	}

	solid := kernel.Prism(sides, flatToFlat, height)
	s := base.withSolid(solid)
	s.namedFaces = autoNameTopBottom(solid)
	return s
}

// Translate moves the shape by (x,y,z), applying the kernel transform to
// the geometry and symbolically shifting every stored FaceRef/EdgeRef
// centroid/midpoint by the same vector.
func (s Shape) Translate(x, y, z float64) Shape {
	if s.IsEmpty() {
		n := s.clone()
		return n
	}
	tr := kernel.Translation(x, y, z)
	return s.applyTransform(tr, func(v kernel.Vec3) kernel.Vec3 { return kernel.Add(v, kernel.Vec3{X: x, Y: y, Z: z}) }, nil)
}

// Rotate rotates the shape by angleDeg degrees about the axis (ax,ay,az)
// (normalized internally), applying the kernel transform to the geometry
// and Rodrigues-rotating every stored normal/direction/centroid/midpoint.
func (s Shape) Rotate(ax, ay, az, angleDeg float64) Shape {
	if s.IsEmpty() {
		n := s.clone()
		return n
	}
	axis := kernel.Vec3{X: ax, Y: ay, Z: az}
	if kernel.Norm(axis) < 1e-12 {
		return fail(s, "rotate", "rotation axis must be non-zero, got (%v,%v,%v)", ax, ay, az)
	}
	axis = kernel.Unit(axis)
	angle := angleDeg * math.Pi / 180

	tr := kernel.RotationAbout(axis, angle)
	rotatePoint := func(v kernel.Vec3) kernel.Vec3 { return kernel.Rotate(v, axis, angle) }
	rotateDir := func(v kernel.Vec3) kernel.Vec3 {
		if v == (kernel.Vec3{}) {
			return v
		}
		return kernel.Rotate(v, axis, angle)
	}
	return s.applyTransform(tr, rotatePoint, rotateDir)
}

// applyTransform moves the kernel geometry by tr and symbolically updates
// every stored coordinate via pointFn (applied to centroids/midpoints) and
// dirFn (applied to normals/directions; nil means "same as pointFn minus
// translation", used by Translate where directions are unaffected).
func (s Shape) applyTransform(tr kernel.Transform, pointFn, dirFn func(kernel.Vec3) kernel.Vec3) Shape {
	s.materialize()
	solid := kernel.Move(s.solid, tr)
	n := s.clone()
	n.solid = solid
	n.selKind = SelNone
	n.selFaces = nil
	n.selEdges = nil

	transformFaceRef := func(f FaceRef) FaceRef {
		nf := FaceRef{Centroid: pointFn(f.Centroid), Area: f.Area}
		if dirFn != nil {
			nf.Normal = dirFn(f.Normal)
		} else {
			nf.Normal = f.Normal
		}
		return nf
	}
	transformEdgeRef := func(e EdgeRef) EdgeRef {
		ne := EdgeRef{Midpoint: pointFn(e.Midpoint), Length: e.Length}
		if dirFn != nil {
			ne.Direction = dirFn(e.Direction)
		} else {
			ne.Direction = e.Direction
		}
		return ne
	}

	if n.namedFaces != nil {
		nf := make(map[string]FaceRef, len(n.namedFaces))
		for k, v := range n.namedFaces {
			nf[k] = transformFaceRef(v)
		}
		n.namedFaces = nf
	}
	if n.namedEdges != nil {
		ne := make(map[string]EdgeRef, len(n.namedEdges))
		for k, v := range n.namedEdges {
			ne[k] = transformEdgeRef(v)
		}
		n.namedEdges = ne
	}
	if n.subParts != nil {
		for name, sp := range n.subParts {
			nf := make(map[string]FaceRef, len(sp.NamedFaces))
			for k, v := range sp.NamedFaces {
				nf[k] = transformFaceRef(v)
			}
			ne := make(map[string]EdgeRef, len(sp.NamedEdges))
			for k, v := range sp.NamedEdges {
				ne[k] = transformEdgeRef(v)
			}
			n.subParts[name] = SubPart{NamedFaces: nf, NamedEdges: ne}
		}
	}
	return n
}

package cad

import (
	"math"

	"github.com/darrenoakey/daz-cad-sub000/kernel"
)

// orientationToNormal returns the transform that rotates +Z onto the unit
// vector n: identity if n is +Z, 180 degrees about X if n is -Z, otherwise
// a rotation about axis z x n by angle acos(z . n).
func orientationToNormal(n kernel.Vec3) kernel.Transform {
	z := kernel.Vec3{Z: 1}
	n = kernel.Unit(n)
	dot := kernel.Dot(z, n)
	if dot > 1-1e-9 {
		return kernel.Identity()
	}
	if dot < -1+1e-9 {
		return kernel.RotationAbout(kernel.Vec3{X: 1}, math.Pi)
	}
	axis := kernel.Unit(kernel.Cross(z, n))
	angle := math.Acos(dot)
	return kernel.RotationAbout(axis, angle)
}

func centeredBox(w, h, d float64) *kernel.Solid {
	return kernel.Move(kernel.Box(w, h, d), kernel.Translation(0, 0, -d/2))
}

// ExtrudeOn builds a centered box of (w,h,d), orients it from +Z to the
// named face's normal, translates it so its center sits at
// centroid + n*d/2, and unions it onto s.
func (s Shape) ExtrudeOn(name string, w, h, d float64) Shape {
	ref, ok := s.Face(name)
	if !ok {
		return fail(s, "extrudeOn", "named face %q not found", name)
	}
	if w <= 0 || h <= 0 || d <= 0 {
		return fail(s, "extrudeOn", "w,h,d must be positive, got (%v,%v,%v)", w, h, d)
	}

	boss := centeredBox(w, h, d)
	rot := orientationToNormal(ref.Normal)
	target := kernel.Add(ref.Centroid, kernel.Scale(d/2, kernel.Unit(ref.Normal)))
	tr := rot.Then(kernel.Translation(target.X, target.Y, target.Z))
	boss = kernel.Move(boss, tr)

	bossShape := emptyShape().withSolid(boss)
	return s.Union(bossShape)
}

// ExtrudeOnShape centers other's bounding-box center on the named face's
// centroid and unions it onto s.
func (s Shape) ExtrudeOnShape(name string, other Shape) Shape {
	ref, ok := s.Face(name)
	if !ok {
		return fail(s, "extrudeOn", "named face %q not found", name)
	}
	centered := other.centerBBoxOn(ref.Centroid)
	return s.Union(centered)
}

// CutInto is ExtrudeOn's subtractive counterpart: the boss is offset
// inward by -n*d/2 and subtracted instead of unioned.
func (s Shape) CutInto(name string, w, h, d float64) Shape {
	ref, ok := s.Face(name)
	if !ok {
		return fail(s, "cutInto", "named face %q not found", name)
	}
	if w <= 0 || h <= 0 || d <= 0 {
		return fail(s, "cutInto", "w,h,d must be positive, got (%v,%v,%v)", w, h, d)
	}

	tool := centeredBox(w, h, d)
	rot := orientationToNormal(ref.Normal)
	target := kernel.Add(ref.Centroid, kernel.Scale(-d/2, kernel.Unit(ref.Normal)))
	tr := rot.Then(kernel.Translation(target.X, target.Y, target.Z))
	tool = kernel.Move(tool, tr)

	toolShape := emptyShape().withSolid(tool)
	return s.Cut(toolShape)
}

// centerBBoxOn translates s so its bounding-box center lands on target.
func (s Shape) centerBBoxOn(target kernel.Vec3) Shape {
	if s.IsEmpty() {
		return s.clone()
	}
	bb := s.BoundingBox()
	center := bb.Center()
	d := kernel.Sub(target, center)
	return s.Translate(d.X, d.Y, d.Z)
}

// CenterOn translates s so its bounding-box center lands on other's named
// face centroid.
func (s Shape) CenterOn(other Shape, name string) Shape {
	ref, ok := other.Face(name)
	if !ok {
		return fail(s, "centerOn", "named face %q not found", name)
	}
	return s.centerBBoxOn(ref.Centroid)
}

// AlignTo combines CenterOn with a further push along the face normal
// equal to s's half-extent projected on that normal, so the contact face
// becomes coplanar with the target.
func (s Shape) AlignTo(other Shape, name string) Shape {
	ref, ok := other.Face(name)
	if !ok {
		return fail(s, "alignTo", "named face %q not found", name)
	}
	centered := s.centerBBoxOn(ref.Centroid)
	if centered.IsEmpty() {
		return centered
	}
	size := s.BoundingBox().Size()
	n := kernel.Unit(ref.Normal)
	push := math.Abs(n.X)*size.X/2 + math.Abs(n.Y)*size.Y/2 + math.Abs(n.Z)*size.Z/2
	return centered.Translate(n.X*push, n.Y*push, n.Z*push)
}

// AttachTo centers s on other's named face, then unions the centered
// copy onto other (so the result carries other's identity/name table).
func (s Shape) AttachTo(other Shape, name string) Shape {
	if _, ok := other.Face(name); !ok {
		return fail(other, "attachTo", "named face %q not found", name)
	}
	centered := s.CenterOn(other, name)
	return other.Union(centered)
}

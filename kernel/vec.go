// Package kernel is the B-Rep facade: primitive construction, booleans,
// fillet/chamfer, tessellation, bounding boxes and STL output. The rest of
// this module depends on the behavior documented on these types, not on any
// particular backing geometry engine.
package kernel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a point or direction in model space.
type Vec3 = r3.Vec

// Add returns a+b.
func Add(a, b Vec3) Vec3 { return r3.Add(a, b) }

// Sub returns a-b.
func Sub(a, b Vec3) Vec3 { return r3.Sub(a, b) }

// Scale returns f*v.
func Scale(f float64, v Vec3) Vec3 { return r3.Scale(f, v) }

// Dot returns the dot product of a and b.
func Dot(a, b Vec3) float64 { return r3.Dot(a, b) }

// Cross returns the cross product of a and b.
func Cross(a, b Vec3) Vec3 { return r3.Cross(a, b) }

// Norm returns the Euclidean length of v.
func Norm(v Vec3) float64 { return r3.Norm(v) }

// Unit returns v normalized to unit length; the zero vector maps to itself.
func Unit(v Vec3) Vec3 {
	n := r3.Norm(v)
	if n == 0 {
		return v
	}
	return r3.Scale(1/n, v)
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec3) float64 { return Norm(Sub(a, b)) }

// Rotate rotates v about axis (need not be normalized) by angle radians,
// using Rodrigues' rotation formula. The zero vector is returned unchanged
// for a degenerate (zero-length) axis.
func Rotate(v Vec3, axis Vec3, angle float64) Vec3 {
	k := Unit(axis)
	if k == (Vec3{}) {
		return v
	}
	cosT := math.Cos(angle)
	sinT := math.Sin(angle)
	term1 := Scale(cosT, v)
	term2 := Scale(sinT, Cross(k, v))
	term3 := Scale(Dot(k, v)*(1-cosT), k)
	return Add(Add(term1, term2), term3)
}

// EqualFloat64 reports whether a and b are within tol of each other.
func EqualFloat64(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// EqualVec3 reports whether a and b are within tol (componentwise via norm).
func EqualVec3(a, b Vec3, tol float64) bool {
	return Dist(a, b) <= tol
}

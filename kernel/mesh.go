package kernel

import "math"

// Triangle3 is a single mesh triangle in counter-clockwise winding (normal
// follows the right-hand rule from V0->V1->V2).
type Triangle3 [3]Vec3

// Normal returns the triangle's unit face normal.
func (t Triangle3) Normal() Vec3 {
	e1 := Sub(t[1], t[0])
	e2 := Sub(t[2], t[0])
	return Unit(Cross(e1, e2))
}

// Centroid returns the triangle's centroid.
func (t Triangle3) Centroid() Vec3 {
	return Scale(1.0/3.0, Add(Add(t[0], t[1]), t[2]))
}

// Area returns the triangle's area.
func (t Triangle3) Area() float64 {
	e1 := Sub(t[1], t[0])
	e2 := Sub(t[2], t[0])
	return 0.5 * Norm(Cross(e1, e2))
}

// Degenerate reports whether the triangle has near-zero area.
func (t Triangle3) Degenerate(tol float64) bool {
	return t.Area() < tol
}

// Transform applies m to every vertex.
func (t Triangle3) Transform(m Transform) Triangle3 {
	return Triangle3{m.Apply(t[0]), m.Apply(t[1]), m.Apply(t[2])}
}

// Flip reverses winding (and thus the normal).
func (t Triangle3) Flip() Triangle3 {
	return Triangle3{t[0], t[2], t[1]}
}

// Mesh is a flat triangle soup: the tessellated form of a Solid.
type Mesh struct {
	Triangles []Triangle3
}

// BBox3 is an axis-aligned bounding box.
type BBox3 struct {
	Min, Max Vec3
}

// Empty reports whether the box has not been extended with any point.
func (b BBox3) Empty() bool {
	return b.Min.X > b.Max.X
}

// EmptyBBox3 returns an inverted (empty) bounding box ready for extension.
func EmptyBBox3() BBox3 {
	const inf = math.MaxFloat64
	return BBox3{Min: Vec3{X: inf, Y: inf, Z: inf}, Max: Vec3{X: -inf, Y: -inf, Z: -inf}}
}

// Extend grows b to include p.
func (b BBox3) Extend(p Vec3) BBox3 {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
	return b
}

// Union returns the smallest box containing both b and o.
func (b BBox3) Union(o BBox3) BBox3 {
	if o.Empty() {
		return b
	}
	if b.Empty() {
		return o
	}
	return b.Extend(o.Min).Extend(o.Max)
}

// Center returns the midpoint of the box.
func (b BBox3) Center() Vec3 {
	return Scale(0.5, Add(b.Min, b.Max))
}

// Size returns the per-axis extents of the box.
func (b BBox3) Size() Vec3 {
	return Sub(b.Max, b.Min)
}

// Diagonal returns the length of the box's space diagonal, used by the
// naming layer as the re-matching distance scale.
func (b BBox3) Diagonal() float64 {
	return Norm(b.Size())
}

// BBoxOfMesh computes the bounding box of a triangle soup.
func BBoxOfMesh(tris []Triangle3) BBox3 {
	b := EmptyBBox3()
	for _, t := range tris {
		b = b.Extend(t[0]).Extend(t[1]).Extend(t[2])
	}
	return b
}

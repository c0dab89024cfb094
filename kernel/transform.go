package kernel

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Transform is a rigid (rotation + translation) transform in model space.
// It is built with gonum's mat.Dense so the rotation half can be composed
// the same way a linear-algebra library in this corpus would (see
// Shape.Rotate in cad/primitive.go, which moves the geometry with the
// RotationAbout matrix and rotates stored FaceRef/EdgeRef vectors with
// kernel.Rotate).
type Transform struct {
	m *mat.Dense // 3x3 rotation
	t Vec3       // translation, applied after rotation
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{m: identity3(), t: Vec3{}}
}

func identity3() *mat.Dense {
	m := mat.NewDense(3, 3, nil)
	m.Set(0, 0, 1)
	m.Set(1, 1, 1)
	m.Set(2, 2, 1)
	return m
}

// Translation returns a pure-translation transform.
func Translation(x, y, z float64) Transform {
	return Transform{m: identity3(), t: Vec3{X: x, Y: y, Z: z}}
}

// RotationAbout returns a pure-rotation transform about axis by angle
// radians (Rodrigues' formula), expressed as a 3x3 gonum matrix.
func RotationAbout(axis Vec3, angle float64) Transform {
	k := Unit(axis)
	if k == (Vec3{}) {
		return Identity()
	}
	kx, ky, kz := k.X, k.Y, k.Z
	cosT, sinT := math.Cos(angle), math.Sin(angle)

	kMat := mat.NewDense(3, 3, []float64{
		0, -kz, ky,
		kz, 0, -kx,
		-ky, kx, 0,
	})
	kOuter := mat.NewDense(3, 3, nil)
	kOuter.Outer(1, []float64{kx, ky, kz}, []float64{kx, ky, kz})

	r := identity3()
	r.Scale(cosT, r)

	var kSinScaled mat.Dense
	kSinScaled.Scale(sinT, kMat)
	r.Add(r, &kSinScaled)

	var kOuterScaled mat.Dense
	kOuterScaled.Scale(1-cosT, kOuter)
	r.Add(r, &kOuterScaled)

	return Transform{m: r, t: Vec3{}}
}

// FromBasis returns the transform mapping local axes (1,0,0)->u,
// (0,1,0)->v, (0,0,1)->w, with no translation. u, v, w need not be
// orthonormal in general, but the pattern engine only ever calls this with
// an orthonormal world-axis-aligned basis, so the result is a rotation or
// a rotation plus mirror; Move reverses triangle winding for the mirrored
// case.
func FromBasis(u, v, w Vec3) Transform {
	m := mat.NewDense(3, 3, []float64{
		u.X, v.X, w.X,
		u.Y, v.Y, w.Y,
		u.Z, v.Z, w.Z,
	})
	return Transform{m: m, t: Vec3{}}
}

// Apply transforms a point: rotate then translate.
func (tr Transform) Apply(p Vec3) Vec3 {
	if tr.m == nil {
		return Add(p, tr.t)
	}
	v := mat.NewVecDense(3, []float64{p.X, p.Y, p.Z})
	var out mat.VecDense
	out.MulVec(tr.m, v)
	return Add(Vec3{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}, tr.t)
}

// ApplyDirection transforms a direction (rotation only, no translation).
func (tr Transform) ApplyDirection(d Vec3) Vec3 {
	if tr.m == nil {
		return d
	}
	v := mat.NewVecDense(3, []float64{d.X, d.Y, d.Z})
	var out mat.VecDense
	out.MulVec(tr.m, v)
	return Vec3{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

// Then composes tr followed by next (next.Apply(tr.Apply(p))).
func (tr Transform) Then(next Transform) Transform {
	var m mat.Dense
	if tr.m == nil {
		tr.m = identity3()
	}
	if next.m == nil {
		next.m = identity3()
	}
	m.Mul(next.m, tr.m)
	return Transform{m: &m, t: Add(next.ApplyDirection(tr.t), next.t)}
}

package kernel

// Kernel is the facade surface: primitive construction, booleans,
// fillet/chamfer, tessellation, bounding boxes and STL output, expressed
// as an interface so an alternate geometry engine could stand in without
// the cad package changing (see other_examples/chazu-lignin's
// kernel.Kernel for the same shape of split, there backed by either an SDF
// engine or a Manifold CGo binding). This module ships exactly one
// implementation, Default, backed by the BSP/planarize engine in this
// package.
type Kernel interface {
	Box(l, w, h float64) *Solid
	Cylinder(r, h float64, segments int) *Solid
	Sphere(r float64, segments int) *Solid
	Prism(sides int, flatToFlat, height float64) *Solid

	Union(a, b *Solid) *Solid
	Subtract(a, b *Solid) *Solid
	Intersect(a, b *Solid) *Solid
	SubtractMany(a *Solid, tools []*Solid) *Solid
	Unify(s *Solid) *Solid
	Compound(parts ...*Solid) *Solid

	Move(s *Solid, tr Transform) *Solid
	Fillet(s *Solid, edges []Edge, radius float64) (*Solid, int)
	Chamfer(s *Solid, edges []Edge, distance float64) (*Solid, int)

	WriteSTL(tris []Triangle3, name string) ([]byte, error)
}

type defaultKernel struct{}

// Default is the facade's built-in implementation.
var Default Kernel = defaultKernel{}

func (defaultKernel) Box(l, w, h float64) *Solid                  { return Box(l, w, h) }
func (defaultKernel) Cylinder(r, h float64, segs int) *Solid      { return Cylinder(r, h, segs) }
func (defaultKernel) Sphere(r float64, segs int) *Solid           { return Sphere(r, segs) }
func (defaultKernel) Prism(n int, f2f, h float64) *Solid          { return Prism(n, f2f, h) }
func (defaultKernel) Union(a, b *Solid) *Solid                    { return Union(a, b) }
func (defaultKernel) Subtract(a, b *Solid) *Solid                 { return Subtract(a, b) }
func (defaultKernel) Intersect(a, b *Solid) *Solid                { return Intersect(a, b) }
func (defaultKernel) SubtractMany(a *Solid, tools []*Solid) *Solid { return SubtractMany(a, tools) }
func (defaultKernel) Unify(s *Solid) *Solid                       { return Unify(s) }
func (defaultKernel) Compound(parts ...*Solid) *Solid             { return Compound(parts...) }
func (defaultKernel) Move(s *Solid, tr Transform) *Solid          { return Move(s, tr) }
func (defaultKernel) Fillet(s *Solid, edges []Edge, r float64) (*Solid, int) {
	return Fillet(s, edges, r)
}
func (defaultKernel) Chamfer(s *Solid, edges []Edge, d float64) (*Solid, int) {
	return Chamfer(s, edges, d)
}
func (defaultKernel) WriteSTL(tris []Triangle3, name string) ([]byte, error) {
	return WriteSTL(tris, name)
}

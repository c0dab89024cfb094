package cad

import (
	"bytes"
	"errors"

	"github.com/darrenoakey/daz-cad-sub000/kernel"
	"github.com/darrenoakey/daz-cad-sub000/threemf"
)

// assemblyPart pairs a shape with the name it should carry in package
// output (STL has no notion of named parts, so the name only matters for
// 3MF/metadata-aware export).
type assemblyPart struct {
	name  string
	shape Shape
}

// Assembly is a linear collection of shape values, the fluent core's unit
// for multi-part output (one part per physical component of a build).
type Assembly struct {
	parts []assemblyPart
}

// NewAssembly returns an empty assembly.
func NewAssembly() Assembly { return Assembly{} }

// Add appends a named part to the assembly and returns the updated copy
// (Assembly follows the same by-value, receiver-untouched convention as
// Shape).
func (a Assembly) Add(name string, s Shape) Assembly {
	out := Assembly{parts: append([]assemblyPart(nil), a.parts...)}
	out.parts = append(out.parts, assemblyPart{name: name, shape: s})
	return out
}

// Parts returns the assembly's shapes, in add order.
func (a Assembly) Parts() []Shape {
	out := make([]Shape, len(a.parts))
	for i, p := range a.parts {
		out[i] = p.shape
	}
	return out
}

// ToMesh flattens every part's mesh array (a part with modifiers
// contributes more than one MeshData) into one list.
func (a Assembly) ToMesh() []MeshData {
	var out []MeshData
	for _, p := range a.parts {
		out = append(out, p.shape.ToMesh()...)
	}
	return out
}

// ToSTL builds a kernel compound of every part's main solid (modifiers
// subtracted) and writes it out as one ASCII STL.
func (a Assembly) ToSTL(name string) ([]byte, error) {
	if len(a.parts) == 0 {
		return nil, errors.New("cad: cannot export an empty assembly to STL")
	}
	solids := make([]*kernel.Solid, 0, len(a.parts))
	for _, p := range a.parts {
		p.shape.materialize()
		if p.shape.IsEmpty() {
			continue
		}
		solids = append(solids, p.shape.mainSolid())
	}
	compound := kernel.Compound(solids...)
	if compound == nil || compound.Empty() {
		return nil, errors.New("cad: assembly has no geometry to export")
	}
	return kernel.WriteSTL(compound.Triangles(), name)
}

// ToThreeMF builds a 3MF package with one object per mesh (main body plus
// modifier overlays), each carrying its part's color and metadata; a part
// with modifiers also gets a parent object grouping its meshes as
// components. The package is encoded to an in-memory archive.
func (a Assembly) ToThreeMF() ([]byte, error) {
	if len(a.parts) == 0 {
		return nil, errors.New("cad: cannot export an empty assembly to 3MF")
	}
	var tparts []threemf.Part
	for _, p := range a.parts {
		meshes := p.shape.ToMesh()
		if len(meshes) == 0 {
			continue
		}
		tp := threemf.Part{
			Name:     p.name,
			Color:    p.shape.GetColor(),
			Metadata: p.shape.GetMetadata(),
		}
		for _, m := range meshes {
			tp.Meshes = append(tp.Meshes, threemf.Mesh{
				Vertices:   m.Vertices,
				Indices:    m.Indices,
				IsModifier: m.IsModifier,
			})
		}
		tparts = append(tparts, tp)
	}
	if len(tparts) == 0 {
		return nil, errors.New("cad: assembly has no geometry to export")
	}

	model := threemf.BuildModel(tparts)
	var buf bytes.Buffer
	if err := threemf.Encode(&buf, model); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

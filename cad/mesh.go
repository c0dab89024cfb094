package cad

import (
	"bytes"
	"errors"

	"github.com/darrenoakey/daz-cad-sub000/kernel"
	"github.com/darrenoakey/daz-cad-sub000/step"
	"github.com/darrenoakey/daz-cad-sub000/threemf"
)

const weldTolerance = 1e-5

// MeshData is one tessellated output: a welded vertex/index buffer plus
// the display color and whether it is a display-only modifier overlay.
type MeshData struct {
	Vertices   []float32
	Indices    []uint32
	Color      string
	IsModifier bool
}

// mainSolid returns s's solid with every modifier volume subtracted, so
// exports never show modifier geometry as part of the load-bearing part.
// The kernel's face lists are already explicit triangle geometry (no
// parametric surfaces), so there is no separate adaptive-tessellation
// pass to run before exporting; this is the only place a "linear/angular
// deflection" knob would have had anything to do.
func (s Shape) mainSolid() *kernel.Solid {
	main := s.solid
	for _, m := range s.modifiers {
		if m.IsEmpty() {
			continue
		}
		if cut := kernel.Subtract(main, m.Solid()); cut != nil && !cut.Empty() {
			main = cut
		}
	}
	return main
}

// ToMesh tessellates s into one MeshData for the main body (modifiers
// subtracted) and one per modifier volume, tagged IsModifier.
func (s Shape) ToMesh() []MeshData {
	s.materialize()
	var out []MeshData
	if main := s.mainSolid(); main != nil && !main.Empty() {
		out = append(out, meshFromSolid(main, s.color, false))
	}
	for _, m := range s.modifiers {
		if m.IsEmpty() {
			continue
		}
		out = append(out, meshFromSolid(m.Solid(), m.GetColor(), true))
	}
	return out
}

func meshFromSolid(solid *kernel.Solid, color string, isModifier bool) MeshData {
	verts, indices := kernel.WeldMesh(solid.Triangles(), weldTolerance)
	flat := make([]float32, 0, len(verts)*3)
	for _, v := range verts {
		flat = append(flat, float32(v.X), float32(v.Y), float32(v.Z))
	}
	return MeshData{Vertices: flat, Indices: indices, Color: color, IsModifier: isModifier}
}

// ToSTL meshes s (main body plus modifier volumes as plain geometry,
// since STL carries no per-part color) and writes it out as ASCII STL.
func (s Shape) ToSTL(name string) ([]byte, error) {
	s.materialize()
	if s.IsEmpty() {
		return nil, errors.New("cad: cannot export an empty shape to STL")
	}
	tris := append([]kernel.Triangle3(nil), s.mainSolid().Triangles()...)
	for _, m := range s.modifiers {
		if !m.IsEmpty() {
			tris = append(tris, m.Solid().Triangles()...)
		}
	}
	return kernel.WriteSTL(tris, name)
}

// ToSTEP meshes s and writes it out as a STEP AP214 file.
func (s Shape) ToSTEP(name, author, org string) ([]byte, error) {
	s.materialize()
	if s.IsEmpty() {
		return nil, errors.New("cad: cannot export an empty shape to STEP")
	}
	main := s.mainSolid()
	return step.WriteNamedSTEP(main.Faces, s.faceNameIndex(), s.color, name, author, org, nil)
}

// ToThreeMF welds s's meshes and hands them to the 3MF writer as a single
// named part carrying s's color and metadata.
func (s Shape) ToThreeMF(name string) ([]byte, error) {
	s.materialize()
	meshes := s.ToMesh()
	if len(meshes) == 0 {
		return nil, errors.New("cad: cannot export an empty shape to 3MF")
	}
	part := threemf.Part{Name: name, Color: s.color, Metadata: s.GetMetadata()}
	for _, m := range meshes {
		part.Meshes = append(part.Meshes, threemf.Mesh{
			Vertices:   m.Vertices,
			Indices:    m.Indices,
			IsModifier: m.IsModifier,
		})
	}

	model := threemf.BuildModel([]threemf.Part{part})
	var buf bytes.Buffer
	if err := threemf.Encode(&buf, model); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

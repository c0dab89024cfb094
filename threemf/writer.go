// Package threemf builds an in-memory 3MF model from tessellated parts
// and hands it to hpinc/go3mf's package encoder. Building the model is
// this module's concern; assembling the archive bytes is the external
// writer's, exercised here through a thin Encode(io.Writer) pass-through.
package threemf

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/hpinc/go3mf"
)

// Mesh is one welded tessellation result: flat (x,y,z) vertex triples and
// a triangle index buffer, the same shape cad.MeshData carries.
// IsModifier marks a mesh as a secondary volume (e.g. an infill-pattern
// or support-blocker cutaway) layered onto the part's primary mesh
// rather than a standalone printable body.
type Mesh struct {
	Vertices   []float32
	Indices    []uint32
	IsModifier bool
}

// Part is one package entry: a named, colored body plus its modifier
// overlay meshes and recognized metadata (infillDensity / infillPattern /
// partName keys).
type Part struct {
	Name     string
	Color    string // "#RRGGBB" or "#RRGGBBAA"; empty leaves color unset
	Meshes   []Mesh
	Metadata map[string]interface{}
}

// BuildModel assembles a go3mf.Model from parts. A part's first mesh is
// its primary volume; any further meshes (Mesh.IsModifier in particular)
// become nested component objects under one parent object, so one build
// item can carry several volumes the way a slicer's "modifier mesh"
// needs. Part.Color resolves to a shared base-materials resource entry
// referenced by PID/PIndex; Part.Metadata's partName/infillDensity/
// infillPattern keys become per-object metadata entries.
func BuildModel(parts []Part) *go3mf.Model {
	ox, oy, oz := centeringOffset(parts)

	model := &go3mf.Model{Units: go3mf.UnitMillimeter}
	materials := &go3mf.BaseMaterialsResource{ID: 1}

	var nextID uint32 = 2
	for _, p := range parts {
		if len(p.Meshes) == 0 {
			continue
		}
		pid, pIndex, hasColor := resolveColor(materials, p.Color)

		primary := &go3mf.Object{
			ID:   nextID,
			Name: p.Name,
			Mesh: meshToGo3MF(p.Meshes[0], ox, oy, oz),
		}
		nextID++
		if hasColor {
			primary.PID, primary.PIndex = pid, pIndex
		}

		parent := primary
		if len(p.Meshes) > 1 {
			model.Resources.Objects = append(model.Resources.Objects, primary)
			applyMetadata(primary, p.Metadata, false)
			parent = &go3mf.Object{ID: nextID, Name: p.Name}
			nextID++
			parent.Components = append(parent.Components, &go3mf.Component{
				ObjectID: primary.ID, Transform: identityMatrix(),
			})

			for _, m := range p.Meshes[1:] {
				child := &go3mf.Object{
					ID:   nextID,
					Name: p.Name + "_modifier",
					Mesh: meshToGo3MF(m, ox, oy, oz),
				}
				nextID++
				if hasColor {
					child.PID, child.PIndex = pid, pIndex
				}
				applyMetadata(child, p.Metadata, m.IsModifier)
				model.Resources.Objects = append(model.Resources.Objects, child)
				parent.Components = append(parent.Components, &go3mf.Component{
					ObjectID: child.ID, Transform: identityMatrix(),
				})
			}
		}

		applyMetadata(parent, p.Metadata, false)
		model.Resources.Objects = append(model.Resources.Objects, parent)
		model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: parent.ID})
	}

	if len(materials.Materials) > 0 {
		model.Resources.Assets = append(model.Resources.Assets, materials)
	}
	return model
}

func centeringOffset(parts []Part) (ox, oy, oz float64) {
	minX, minY, minZ := math.MaxFloat64, math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	seen := false
	for _, p := range parts {
		for _, m := range p.Meshes {
			for i := 0; i+2 < len(m.Vertices); i += 3 {
				seen = true
				x, y, z := float64(m.Vertices[i]), float64(m.Vertices[i+1]), float64(m.Vertices[i+2])
				minX, maxX = math.Min(minX, x), math.Max(maxX, x)
				minY, maxY = math.Min(minY, y), math.Max(maxY, y)
				minZ = math.Min(minZ, z)
			}
		}
	}
	if !seen {
		return 0, 0, 0
	}
	return -(minX + maxX) / 2, -(minY + maxY) / 2, -minZ
}

func meshToGo3MF(m Mesh, ox, oy, oz float64) *go3mf.Mesh {
	gm := &go3mf.Mesh{}
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		gm.Vertices.Vertex = append(gm.Vertices.Vertex, go3mf.Point3D{
			float32(float64(m.Vertices[i]) + ox),
			float32(float64(m.Vertices[i+1]) + oy),
			float32(float64(m.Vertices[i+2]) + oz),
		})
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		gm.Triangles.Triangle = append(gm.Triangles.Triangle, go3mf.Triangle{
			V1: m.Indices[i], V2: m.Indices[i+1], V3: m.Indices[i+2],
		})
	}
	return gm
}

// identityMatrix is the no-op 3MF component transform: a row-major 3x4
// affine matrix with zero translation.
func identityMatrix() go3mf.Matrix {
	return go3mf.Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}
}

// resolveColor hex-decodes hex (a "#RRGGBB" or "#RRGGBBAA" string),
// appends it to materials as a new base material if not already present,
// and returns the resource ID and index to set on an object's PID/PIndex.
func resolveColor(materials *go3mf.BaseMaterialsResource, hex string) (pid, pIndex uint32, ok bool) {
	if hex == "" {
		return 0, 0, false
	}
	rgba, parsed := parseHexColor(hex)
	if !parsed {
		return 0, 0, false
	}
	for i, existing := range materials.Materials {
		if existing.Color == rgba {
			return materials.ID, uint32(i), true
		}
	}
	materials.Materials = append(materials.Materials, go3mf.BaseMaterial{Name: hex, Color: rgba})
	return materials.ID, uint32(len(materials.Materials) - 1), true
}

func parseHexColor(hex string) (color.RGBA, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, false
	}
	r, err1 := strconv.ParseUint(hex[0:2], 16, 8)
	g, err2 := strconv.ParseUint(hex[2:4], 16, 8)
	b, err3 := strconv.ParseUint(hex[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return color.RGBA{}, false
	}
	a := uint64(255)
	if len(hex) == 8 {
		av, err := strconv.ParseUint(hex[6:8], 16, 8)
		if err != nil {
			return color.RGBA{}, false
		}
		a = av
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, true
}

// applyMetadata writes obj's recognized metadata: partName sets the
// production PartNumber attribute, infillDensity/infillPattern pass
// through as generic object metadata entries, and modifier marks a
// component volume that should be treated as a modifier mesh rather
// than printable geometry.
func applyMetadata(obj *go3mf.Object, meta map[string]interface{}, isModifier bool) {
	for k, v := range meta {
		switch k {
		case "partName":
			if name, ok := v.(string); ok {
				obj.PartNumber = name
			}
		case "infillDensity", "infillPattern":
			obj.Metadata = append(obj.Metadata, go3mf.Metadata{Name: k, Value: fmt.Sprint(v)})
		}
	}
	if isModifier {
		obj.Metadata = append(obj.Metadata, go3mf.Metadata{Name: "modifier", Value: "1"})
	}
}

// Encode writes model out as a 3MF package (ZIP archive with
// 3dmodel.model and its companion parts) to w.
func Encode(w io.Writer, model *go3mf.Model) error {
	enc := go3mf.NewEncoder(w)
	return enc.Encode(model)
}

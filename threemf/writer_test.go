package threemf

import (
	"bytes"
	"testing"

	"github.com/hpinc/go3mf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubeMesh() Mesh {
	return Mesh{
		Vertices: []float32{
			0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0,
			0, 0, 1, 1, 0, 1, 1, 1, 1, 0, 1, 1,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7},
	}
}

func TestBuildModelCreatesOneObjectPerMesh(t *testing.T) {
	part := Part{Name: "cube", Meshes: []Mesh{cubeMesh()}, Metadata: map[string]interface{}{"partName": "cube"}}
	model := BuildModel([]Part{part})
	require.Len(t, model.Resources.Objects, 1)
	assert.Equal(t, "cube", model.Resources.Objects[0].PartNumber)
	require.Len(t, model.Build.Items, 1)
}

func TestBuildModelCentersAroundPlateMidpoint(t *testing.T) {
	part := Part{Name: "cube", Meshes: []Mesh{cubeMesh()}}
	model := BuildModel([]Part{part})
	verts := model.Resources.Objects[0].Mesh.Vertices.Vertex
	require.NotEmpty(t, verts)
	minZ := float32(1e9)
	for _, v := range verts {
		if v[2] < minZ {
			minZ = v[2]
		}
	}
	assert.InDelta(t, 0, minZ, 1e-5, "the lowest vertex should sit at z=0 after centering")
}

func TestEncodeProducesNonEmptyArchive(t *testing.T) {
	part := Part{Name: "cube", Meshes: []Mesh{cubeMesh()}}
	model := BuildModel([]Part{part})
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, model))
	assert.Greater(t, buf.Len(), 0)
}

func TestBuildModelAppliesInfillMetadata(t *testing.T) {
	part := Part{
		Name:   "cube",
		Meshes: []Mesh{cubeMesh()},
		Metadata: map[string]interface{}{
			"partName":      "cube",
			"infillDensity": "5%",
			"infillPattern": "gyroid",
		},
	}
	model := BuildModel([]Part{part})
	require.Len(t, model.Resources.Objects, 1)
	obj := model.Resources.Objects[0]
	assert.Equal(t, "cube", obj.PartNumber)

	values := map[string]string{}
	for _, md := range obj.Metadata {
		values[md.Name] = md.Value
	}
	assert.Equal(t, "5%", values["infillDensity"])
	assert.Equal(t, "gyroid", values["infillPattern"])
}

func TestBuildModelAssignsSharedColorByResourceIndex(t *testing.T) {
	partA := Part{Name: "a", Color: "#FF0000", Meshes: []Mesh{cubeMesh()}}
	partB := Part{Name: "b", Color: "#ff0000", Meshes: []Mesh{cubeMesh()}}
	model := BuildModel([]Part{partA, partB})

	require.Len(t, model.Resources.Assets, 1)
	materials, ok := model.Resources.Assets[0].(*go3mf.BaseMaterialsResource)
	require.True(t, ok)
	require.Len(t, materials.Materials, 1, "identical colors should share one base-material entry")

	objA, objB := model.Resources.Objects[0], model.Resources.Objects[1]
	assert.Equal(t, materials.ID, objA.PID)
	assert.Equal(t, materials.ID, objB.PID)
	assert.Equal(t, objA.PIndex, objB.PIndex)
}

func TestBuildModelNestsModifierMeshAsAComponent(t *testing.T) {
	part := Part{
		Name: "bracket",
		Meshes: []Mesh{
			cubeMesh(),
			{Vertices: cubeMesh().Vertices, Indices: cubeMesh().Indices, IsModifier: true},
		},
	}
	model := BuildModel([]Part{part})

	require.Len(t, model.Build.Items, 1, "a multi-volume part is still one build item")
	require.Len(t, model.Resources.Objects, 3, "primary + modifier + parent wrapper")

	var parent *go3mf.Object
	for _, obj := range model.Resources.Objects {
		if len(obj.Components) > 0 {
			parent = obj
		}
	}
	require.NotNil(t, parent, "expected a parent object carrying components")
	require.Len(t, parent.Components, 2)

	var modifierChild *go3mf.Object
	for _, obj := range model.Resources.Objects {
		for _, md := range obj.Metadata {
			if md.Name == "modifier" {
				modifierChild = obj
			}
		}
	}
	require.NotNil(t, modifierChild, "expected one object tagged as a modifier volume")
}

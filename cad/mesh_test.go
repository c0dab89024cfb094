package cad

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMeshWeldsSharedVertices(t *testing.T) {
	box := Box(5, 5, 5)
	meshes := box.ToMesh()
	require.Len(t, meshes, 1)
	assert.False(t, meshes[0].IsModifier)
	assert.NotEmpty(t, meshes[0].Vertices)
	assert.NotEmpty(t, meshes[0].Indices)
}

func TestToMeshIncludesModifierAsSeparateEntry(t *testing.T) {
	box := Box(5, 5, 5).WithModifier(Box(1, 1, 1).Translate(0, 0, 20))
	meshes := box.ToMesh()
	require.Len(t, meshes, 2)
	assert.True(t, meshes[1].IsModifier)
}

func TestToSTLRejectsEmptyShape(t *testing.T) {
	_, err := Box(-1, 1, 1).ToSTL("bad")
	assert.Error(t, err)
}

func TestToSTLProducesAsciiSolid(t *testing.T) {
	data, err := Box(5, 5, 5).ToSTL("cube")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "solid cube"))
}

func TestToSTEPRejectsEmptyShape(t *testing.T) {
	_, err := Box(-1, 1, 1).ToSTEP("bad", "", "")
	assert.Error(t, err)
}

func TestToSTEPProducesData(t *testing.T) {
	data, err := Box(5, 5, 5).ToSTEP("cube", "Jane Doe", "Acme")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestToThreeMFRejectsEmptyShape(t *testing.T) {
	_, err := Box(-1, 1, 1).ToThreeMF("bad")
	assert.Error(t, err)
}

func TestToThreeMFProducesData(t *testing.T) {
	data, err := Box(5, 5, 5).PartName("cube").ToThreeMF("cube")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

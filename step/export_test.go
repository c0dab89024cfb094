package step

import (
	"strings"
	"testing"

	"github.com/darrenoakey/daz-cad-sub000/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSTEPProducesValidHeaderAndFooter(t *testing.T) {
	box := kernel.Box(10, 10, 10)
	data, err := WriteSTEP(box.Triangles(), "TestBox", "Jane Doe", "Acme", nil)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "ISO-10303-21;"))
	assert.True(t, strings.Contains(text, "Jane Doe"))
	assert.True(t, strings.Contains(text, "Acme"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(text, "\n"), "END-ISO-10303-21;"))
}

func TestOptimizeMeshDropsDegenerateTriangles(t *testing.T) {
	good := kernel.Triangle3{{X: 0}, {X: 1}, {X: 0, Y: 1}}
	degenerate := kernel.Triangle3{{X: 0}, {X: 0}, {X: 0}}
	out := OptimizeMesh([]kernel.Triangle3{good, degenerate})
	require.Len(t, out, 1)
	assert.Equal(t, good, out[0])
}

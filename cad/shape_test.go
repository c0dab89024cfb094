package cad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxIsEmptyOnInvalidDimensions(t *testing.T) {
	s := Box(-1, 10, 10)
	assert.True(t, s.IsEmpty(), "negative length should yield an empty shape")
}

func TestCloneIsIndependent(t *testing.T) {
	base := Box(10, 10, 10).Color("#ff0000").PartName("widget")
	other := base.Color("#00ff00")

	assert.Equal(t, "#ff0000", base.GetColor(), "original shape's color should be unaffected by derived clone")
	assert.Equal(t, "#00ff00", other.GetColor())
	assert.Equal(t, "widget", other.GetMetadata()["partName"], "metadata should survive an unrelated derived clone")
}

func TestMetadataHelpers(t *testing.T) {
	s := Box(5, 5, 5).InfillDensity(30).InfillPattern("gyroid").PartName("bracket")
	md := s.GetMetadata()
	require.Equal(t, 30, md["infillDensity"])
	require.Equal(t, "gyroid", md["infillPattern"])
	require.Equal(t, "bracket", md["partName"])
}

func TestWithModifierDoesNotAffectGeometry(t *testing.T) {
	base := Box(10, 10, 10)
	marker := Box(1, 1, 1).Translate(0, 0, 20)
	tagged := base.WithModifier(marker)

	assert.Equal(t, base.BoundingBox(), tagged.BoundingBox(), "a modifier volume must not affect boolean geometry")
	require.Len(t, tagged.Modifiers(), 1)
}

func TestBoundingBoxOfEmptyShape(t *testing.T) {
	s := Box(-1, 1, 1)
	bb := s.BoundingBox()
	assert.True(t, bb.Empty(), "an empty shape's bounding box should itself be empty")
}

func TestNameAndShapeName(t *testing.T) {
	s := Box(2, 2, 2).Name("left_bracket")
	assert.Equal(t, "left_bracket", s.ShapeName())
}

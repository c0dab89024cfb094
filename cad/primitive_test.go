package cad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxNamesSixCanonicalFaces(t *testing.T) {
	s := Box(10, 20, 30)
	for _, name := range []string{"top", "bottom", "left", "right", "front", "back"} {
		_, ok := s.Face(name)
		assert.Truef(t, ok, "expected canonical face %q to be named", name)
	}
}

func TestBoxBoundingBoxCentering(t *testing.T) {
	s := Box(10, 20, 30)
	bb := s.BoundingBox()
	assert.InDelta(t, -5, bb.Min.X, 1e-9)
	assert.InDelta(t, 5, bb.Max.X, 1e-9)
	assert.InDelta(t, 0, bb.Min.Z, 1e-9)
	assert.InDelta(t, 30, bb.Max.Z, 1e-9)
}

func TestCylinderNamesTopBottomSide(t *testing.T) {
	s := Cylinder(5, 10)
	for _, name := range []string{"top", "bottom", "side"} {
		_, ok := s.Face(name)
		assert.Truef(t, ok, "expected cylinder face %q to be named", name)
	}
}

func TestSphereHasNoCanonicalNames(t *testing.T) {
	s := Sphere(5)
	require.False(t, s.IsEmpty())
	_, ok := s.Face("top")
	assert.False(t, ok, "a sphere has no canonical flat faces to auto-name")
}

func TestPolygonPrismRejectsTooFewSides(t *testing.T) {
	s := PolygonPrism(2, 10, 10)
	assert.True(t, s.IsEmpty())
}

func TestTranslateMovesBoundingBox(t *testing.T) {
	s := Box(2, 2, 2).Translate(10, 0, 0)
	bb := s.BoundingBox()
	assert.InDelta(t, 9, bb.Min.X, 1e-9)
	assert.InDelta(t, 11, bb.Max.X, 1e-9)
}

func TestRotateRejectsZeroAxis(t *testing.T) {
	s := Box(2, 2, 2).Rotate(0, 0, 0, 90)
	assert.False(t, s.IsEmpty(), "rotate with a degenerate axis should leave the prior shape intact")
}

func TestTranslateUpdatesNamedFaceCentroid(t *testing.T) {
	s := Box(10, 10, 10).Translate(0, 0, 100)
	ref, ok := s.Face("top")
	require.True(t, ok)
	assert.InDelta(t, 110, ref.Centroid.Z, 1e-9)
}

package cad

import (
	"testing"

	"github.com/darrenoakey/daz-cad-sub000/font"
	"github.com/darrenoakey/daz-cad-sub000/kernel"
	"github.com/stretchr/testify/assert"
)

func TestTextRejectsNonPositiveSize(t *testing.T) {
	s := Text("A", 0)
	assert.True(t, s.IsEmpty())
}

func TestTextFailsWithoutALoadedFont(t *testing.T) {
	s := Text("A", 10, TextOptions{Font: "nonexistent-font-for-test"})
	assert.True(t, s.IsEmpty())
}

func TestSignedAreaOfSquareIsPositiveCounterClockwise(t *testing.T) {
	square := []kernel.Vec3{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	area := signedArea(square)
	assert.InDelta(t, 1.0, area, 1e-9)
}

func TestFlattenQuadraticEndsAtTheCurveEndpoint(t *testing.T) {
	pts := flattenQuadratic(0, 0, 1, 1, 2, 0)
	require := assert.New(t)
	require.NotEmpty(pts)
	last := pts[len(pts)-1]
	require.InDelta(2, last.X, 1e-6)
	require.InDelta(0, last.Y, 1e-6)
}

func TestBboxContainsNestedRect(t *testing.T) {
	outer := bboxOfPoints([]kernel.Vec3{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}})
	inner := bboxOfPoints([]kernel.Vec3{{X: 2, Y: 2}, {X: 5, Y: 2}, {X: 5, Y: 5}, {X: 2, Y: 5}})
	assert.True(t, bboxContains(outer, inner))
	assert.False(t, bboxContains(inner, outer))
}

func TestFlattenContoursSplitsOnMoveAndClose(t *testing.T) {
	cmds := []font.PathCommand{
		{Type: 'M', X: 0, Y: 0},
		{Type: 'L', X: 10, Y: 0},
		{Type: 'L', X: 10, Y: 10},
		{Type: 'Z'},
		{Type: 'M', X: 1, Y: 1},
		{Type: 'L', X: 2, Y: 1},
		{Type: 'L', X: 2, Y: 2},
		{Type: 'Z'},
	}
	subs := flattenContours(cmds)
	assert.Len(t, subs, 2)
}

package cad

import (
	"math"
	"testing"

	"github.com/darrenoakey/daz-cad-sub000/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHexagonNormalizesToPolygon(t *testing.T) {
	r := PatternOptions{Shape: "hexagon", Width: 4}.resolve(100)
	assert.Equal(t, "polygon", r.shapeKind)
	assert.Equal(t, 6, r.sides)
}

func TestResolveDirectionOverridesAngle(t *testing.T) {
	r := PatternOptions{Direction: "y", Angle: 45}.resolve(100)
	assert.InDelta(t, 90, r.angleDeg, 1e-9)
}

func TestResolveDefaultsFillInZeroFields(t *testing.T) {
	r := PatternOptions{}.resolve(100)
	assert.Equal(t, 1.0, r.width)
	assert.Equal(t, 1.0, r.height)
	assert.Equal(t, 1, r.columns)
	assert.Equal(t, 1, r.rows)
}

func TestLayoutCentersSingleCellWhenUndersized(t *testing.T) {
	r := PatternOptions{Width: 2, Spacing: 10, Border: 1}.resolve(100)
	centers := layoutCenters(r, 10, 10)
	require.Len(t, centers, 1)
}

func TestLayoutCentersEmptyWhenFaceTooSmall(t *testing.T) {
	r := PatternOptions{Width: 2, Border: 20}.resolve(100)
	centers := layoutCenters(r, 10, 10)
	assert.Empty(t, centers)
}

func TestBuildCutterContourCircle(t *testing.T) {
	r := PatternOptions{Shape: "circle", Width: 4}.resolve(100)
	pts := buildCutterContour(r)
	assert.Len(t, pts, 32)
}

func TestBuildCutterContourPolygonUsesInradius(t *testing.T) {
	r := PatternOptions{Shape: "hexagon", Width: 4}.resolve(100)
	pts := buildCutterContour(r)
	assert.Len(t, pts, 6)
	bb := bboxOfPoints(pts)
	assert.InDelta(t, 4, bb.Max.Y-bb.Min.Y, 1e-6, "flat-to-flat distance equals width (inradius = width/2)")
}

func TestFaceBasisPicksPerpendicularAxes(t *testing.T) {
	u, v := faceBasis(kernel.Vec3{Z: 1})
	assert.Equal(t, kernel.Vec3{X: 1}, u)
	assert.Equal(t, kernel.Vec3{Y: 1}, v)
}

func TestIsXNormalFaceOnlyTrueForDominantX(t *testing.T) {
	assert.True(t, isXNormalFace(kernel.Vec3{X: 1}))
	assert.False(t, isXNormalFace(kernel.Vec3{Y: 1}))
	assert.False(t, isXNormalFace(kernel.Vec3{Z: 1}))
}

func TestBuildCutterContourLineAlongUByDefault(t *testing.T) {
	r := PatternOptions{Shape: "line", Length: 10, Width: 2}.resolve(100)
	pts := buildCutterContour(r)
	bb := bboxOfPoints(pts)
	assert.InDelta(t, 10, bb.Max.X-bb.Min.X, 1e-6)
	assert.InDelta(t, 2, bb.Max.Y-bb.Min.Y, 1e-6)
}

func TestBuildCutterContourLineAngleRotatesToV(t *testing.T) {
	r := PatternOptions{Shape: "line", Length: 10, Width: 2}.resolve(100)
	r.lineDirDeg = 90
	pts := buildCutterContour(r)
	bb := bboxOfPoints(pts)
	assert.InDelta(t, 2, bb.Max.X-bb.Min.X, 1e-6)
	assert.InDelta(t, 10, bb.Max.Y-bb.Min.Y, 1e-6)
}

func TestPlanPatternKeepsLineAngleOnXNormalFace(t *testing.T) {
	s := Box(50, 20, 30).Faces(">X")
	_, r, _, _, _, ok := s.planPattern(PatternOptions{Shape: "line", Angle: 90, Width: 2, Depth: 40})
	require.True(t, ok)
	assert.InDelta(t, 90, r.lineDirDeg, 1e-9)
}

func TestPlanPatternLineLengthSpansFaceAlongLineDirection(t *testing.T) {
	s := Box(50, 20, 30).Faces(">X")
	layout, r, _, _, _, ok := s.planPattern(PatternOptions{Shape: "line", Angle: 90, Width: 2, Depth: 40})
	require.True(t, ok)
	rad := r.lineDirDeg * math.Pi / 180
	wantLen := math.Abs(math.Cos(rad))*layout.FaceUSize + math.Abs(math.Sin(rad))*layout.FaceVSize
	assert.InDelta(t, wantLen, r.length, 1e-6)
}

func TestPatternLayoutOnTopFace(t *testing.T) {
	s := Box(40, 40, 10).Faces("top")
	layout, ok := s.PatternLayout(PatternOptions{Shape: "circle", Width: 3, Spacing: 6, Border: 4})
	require.True(t, ok)
	assert.NotEmpty(t, layout.Cells)
}

func TestCutPatternProducesHoles(t *testing.T) {
	s := Box(40, 40, 10).Faces("top")
	cut := s.CutPattern(PatternOptions{Shape: "circle", Width: 3, Spacing: 6, Border: 4, Depth: 10})
	assert.False(t, cut.IsEmpty())
}

func TestCutPatternFailsWhenNothingFits(t *testing.T) {
	s := Box(5, 5, 5).Faces("top")
	cut := s.CutPattern(PatternOptions{Shape: "circle", Width: 3, Border: 20})
	assert.Equal(t, s.BoundingBox(), cut.BoundingBox(), "a pattern that fits no cutters should leave the shape unchanged")
}

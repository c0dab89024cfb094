package cad

import (
	"math"
	"strings"

	"github.com/darrenoakey/daz-cad-sub000/kernel"
)

// PatternOptions configures CutPattern. Zero-valued numeric fields take
// documented defaults; Shape/Direction default from the empty string.
type PatternOptions struct {
	Shape         string
	Sides         int // side count, read only when Shape is "polygon"
	Width         float64
	Height        float64
	Length        float64
	Fillet        float64
	RoundEnds     bool
	Shear         float64
	Rotation      float64
	Depth         float64
	Spacing       float64
	SpacingX      float64
	SpacingY      float64
	WallThickness float64
	Border        float64
	BorderX       float64
	BorderY       float64
	Columns       int
	Rows          int
	ColumnGap     float64
	RowGap        float64
	Stagger       bool
	StaggerAmount float64
	Angle         float64
	Direction     string
}

type resolvedPattern struct {
	width, height, length    float64
	fillet, shear, rotation  float64
	depth                    float64
	spacingX, spacingY       float64
	borderX, borderY         float64
	columns, rows            int
	columnGap, rowGap        float64
	stagger                  bool
	staggerAmount            float64
	angleDeg                 float64
	lineDirDeg               float64
	roundEnds                bool
	sides                    int
	shapeKind                string
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func (o PatternOptions) resolve(overallBBoxMax float64) resolvedPattern {
	width := orDefault(o.Width, 1.0)
	height := orDefault(o.Height, width)
	spacing := orDefault(o.Spacing, width)
	spacingX := orDefault(o.SpacingX, spacing)
	spacingY := orDefault(o.SpacingY, spacing)
	if o.WallThickness > 0 {
		spacingX = o.WallThickness
		spacingY = o.WallThickness
	}
	border := orDefault(o.Border, 2.0)
	borderX := orDefault(o.BorderX, border)
	borderY := orDefault(o.BorderY, border)
	columns := o.Columns
	if columns < 1 {
		columns = 1
	}
	rows := o.Rows
	if rows < 1 {
		rows = 1
	}
	columnGap := orDefault(o.ColumnGap, 5.0)
	rowGap := orDefault(o.RowGap, columnGap)
	staggerAmount := orDefault(o.StaggerAmount, 0.5)
	depth := orDefault(o.Depth, overallBBoxMax+2)

	angleDeg := o.Angle
	switch strings.ToLower(o.Direction) {
	case "y", "vertical":
		angleDeg = 90
	case "x":
		angleDeg = 0
	}

	shapeKind := o.Shape
	sides := o.Sides
	if shapeKind == "" {
		shapeKind = "line"
	}
	switch shapeKind {
	case "hexagon":
		sides = 6
		shapeKind = "polygon"
	case "octagon":
		sides = 8
		shapeKind = "polygon"
	case "triangle":
		sides = 3
		shapeKind = "polygon"
	case "square":
		shapeKind = "rect"
	case "polygon":
		// sides already carries o.Sides
	}

	return resolvedPattern{
		width: width, height: height, length: o.Length,
		fillet: o.Fillet, shear: o.Shear, rotation: o.Rotation,
		depth:         depth,
		spacingX:      spacingX, spacingY: spacingY,
		borderX: borderX, borderY: borderY,
		columns: columns, rows: rows,
		columnGap: columnGap, rowGap: rowGap,
		stagger: o.Stagger, staggerAmount: staggerAmount,
		angleDeg:  angleDeg,
		roundEnds: o.RoundEnds,
		sides:     sides,
		shapeKind: shapeKind,
	}
}

// faceBasis returns the (u,v) world-axis basis for a face whose outward
// normal n is aligned with a world axis, via dominant-|component|
// classification.
func faceBasis(n kernel.Vec3) (u, v kernel.Vec3) {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	switch {
	case ax >= ay && ax >= az:
		return kernel.Vec3{Y: 1}, kernel.Vec3{Z: 1}
	case ay >= ax && ay >= az:
		return kernel.Vec3{X: 1}, kernel.Vec3{Z: 1}
	default:
		return kernel.Vec3{X: 1}, kernel.Vec3{Y: 1}
	}
}

func extentAlong(bb kernel.BBox3, axis kernel.Vec3) float64 {
	return kernel.Dot(bb.Max, axis) - kernel.Dot(bb.Min, axis)
}

// isXNormalFace reports whether n's dominant component is X, matching
// faceBasis's own classification. Line direction needs no per-face
// correction: faceBasis puts v on world Z for both X- and Y-normal faces,
// so angle 0 runs a line horizontally and 90 runs it along Z on either.
func isXNormalFace(n kernel.Vec3) bool {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	return ax >= ay && ax >= az
}

// LayoutCell is one accepted cutter center, in face-local (u,v)
// coordinates, after bounds-check culling.
type LayoutCell struct {
	U, V float64
}

// Layout is the computed grid a CutPattern call would cut: every accepted
// cell plus the face extent and cutter footprint it was culled against.
// patternsvg/dxfexport render this independently of the 3D cut.
type Layout struct {
	Cells        []LayoutCell
	FaceUSize    float64
	FaceVSize    float64
	CutterWidth  float64
	CutterHeight float64
}

// planPattern resolves options against s's current face selection (or
// its inferred top face) and computes the accepted cell layout, the
// face-local basis, and the cutter solid CutPattern places at each cell.
func (s Shape) planPattern(opts PatternOptions) (Layout, resolvedPattern, kernel.Vec3, kernel.Vec3, *kernel.Solid, bool) {
	var faceNormal, faceOrigin kernel.Vec3
	var uSize, vSize float64

	if s.selKind == SelFaces && len(s.selFaces) > 0 {
		f := s.selFaces[0]
		faceNormal = kernel.Unit(f.Normal)
		faceOrigin = f.Centroid
		bb := kernel.BBoxOfMesh(f.Triangles)
		u, v := faceBasis(faceNormal)
		uSize, vSize = extentAlong(bb, u), extentAlong(bb, v)
	} else {
		bb := s.BoundingBox()
		faceNormal = kernel.Vec3{Z: 1}
		faceOrigin = kernel.Vec3{X: (bb.Min.X + bb.Max.X) / 2, Y: (bb.Min.Y + bb.Max.Y) / 2, Z: bb.Max.Z}
		uSize, vSize = bb.Max.X-bb.Min.X, bb.Max.Y-bb.Min.Y
	}

	size := s.BoundingBox().Size()
	overallMax := math.Max(size.X, math.Max(size.Y, size.Z))
	r := opts.resolve(overallMax)

	r.lineDirDeg = r.angleDeg

	if r.shapeKind == "line" && r.length <= 0 {
		rad := r.lineDirDeg * math.Pi / 180
		r.length = math.Abs(math.Cos(rad))*uSize + math.Abs(math.Sin(rad))*vSize
	}
	if r.length <= 0 {
		r.length = math.Max(uSize, vSize)
	}

	contour := buildCutterContour(r)
	if len(contour) < 3 {
		return Layout{}, r, kernel.Vec3{}, kernel.Vec3{}, nil, false
	}
	localCutter := kernel.ExtrudeContour(contour, nil, 0, r.depth)
	if localCutter == nil || localCutter.Empty() {
		return Layout{}, r, kernel.Vec3{}, kernel.Vec3{}, nil, false
	}

	centers := layoutCenters(r, uSize, vSize)
	margin := math.Max(r.width, r.height) / 2
	const cullTolerance = 0.1

	layout := Layout{FaceUSize: uSize, FaceVSize: vSize, CutterWidth: r.width, CutterHeight: r.height}
	for _, c := range centers {
		if math.Abs(c.u) > uSize/2+margin+cullTolerance {
			continue
		}
		if math.Abs(c.v) > vSize/2+margin+cullTolerance {
			continue
		}
		layout.Cells = append(layout.Cells, LayoutCell{U: c.u, V: c.v})
	}

	return layout, r, faceNormal, faceOrigin, localCutter, true
}

// PatternLayout computes the grid CutPattern(opts) would cut, without
// performing the boolean — used by the SVG/DXF preview exporters.
func (s Shape) PatternLayout(opts PatternOptions) (Layout, bool) {
	s.materialize()
	layout, _, _, _, _, ok := s.planPattern(opts)
	return layout, ok
}

// CutPattern lays out a parametric grid of cutters over the current face
// selection (or the shape's inferred top face) and subtracts them all in
// a single batched boolean cut.
func (s Shape) CutPattern(opts PatternOptions) Shape {
	s.materialize()
	if s.IsEmpty() {
		return recordFailure(s, "cutPattern", "cannot pattern an empty shape", nil)
	}

	layout, _, faceNormal, faceOrigin, localCutter, ok := s.planPattern(opts)
	if !ok {
		return recordFailure(s, "cutPattern", "unsupported pattern shape", nil)
	}
	if len(layout.Cells) == 0 {
		return recordFailure(s, "cutPattern", "no pattern cutters fit within the face bounds", nil)
	}

	uAxis, vAxis := faceBasis(faceNormal)
	basis := kernel.FromBasis(uAxis, vAxis, kernel.Scale(-1, faceNormal))

	cutters := make([]*kernel.Solid, 0, len(layout.Cells))
	for _, c := range layout.Cells {
		tr := kernel.Translation(c.U, c.V, 0).Then(basis).Then(kernel.Translation(faceOrigin.X, faceOrigin.Y, faceOrigin.Z))
		cutters = append(cutters, kernel.Move(localCutter, tr))
	}

	result := kernel.SubtractMany(s.solid, cutters)
	if result == nil {
		return recordFailure(s, "cutPattern", "batched boolean cut failed", nil)
	}
	return booleanResult("cutPattern", s, emptyShape(), result)
}

type gridCenter struct{ u, v float64 }

// layoutCenters computes every candidate cutter center in face-local (u,v)
// coordinates, applying column/row subdivision, per-axis spacing, stagger,
// and whole-pattern rotation.
func layoutCenters(r resolvedPattern, uSize, vSize float64) []gridCenter {
	usableU := uSize - 2*r.borderX
	usableV := vSize - 2*r.borderY
	if usableU <= 0 || usableV <= 0 {
		return nil
	}

	subWidth := (usableU - float64(r.columns-1)*r.columnGap) / float64(r.columns)
	subHeight := (usableV - float64(r.rows-1)*r.rowGap) / float64(r.rows)
	if subWidth <= 0 || subHeight <= 0 {
		return nil
	}

	angle := r.angleDeg * math.Pi / 180
	sinA, cosA := math.Sin(angle), math.Cos(angle)

	var out []gridCenter
	for c := 0; c < r.columns; c++ {
		subOriginU := -usableU/2 + float64(c)*(subWidth+r.columnGap) + subWidth/2
		cellsU := int(math.Max(1, math.Floor(subWidth/r.spacingX)))
		for row := 0; row < r.rows; row++ {
			subOriginV := -usableV/2 + float64(row)*(subHeight+r.rowGap) + subHeight/2
			cellsV := int(math.Max(1, math.Floor(subHeight/r.spacingY)))

			for i := 0; i < cellsU; i++ {
				u := subOriginU + (float64(i)-float64(cellsU-1)/2)*r.spacingX
				if r.stagger && row%2 == 1 {
					u += r.staggerAmount * r.spacingX
				}
				for j := 0; j < cellsV; j++ {
					v := subOriginV + (float64(j)-float64(cellsV-1)/2)*r.spacingY
					if angle != 0 {
						ru := u*cosA - v*sinA
						rv := u*sinA + v*cosA
						out = append(out, gridCenter{ru, rv})
					} else {
						out = append(out, gridCenter{u, v})
					}
				}
			}
		}
	}
	return out
}

const arcSegments = 12

// buildCutterContour builds the 2D (local x=u, y=v) contour for one
// cutter instance, already rotated by the per-shape rotation option.
func buildCutterContour(r resolvedPattern) []kernel.Vec3 {
	var pts []kernel.Vec3
	switch r.shapeKind {
	case "line":
		length := r.length
		if r.roundEnds && length > r.width {
			pts = stadiumContour(length, r.width)
		} else {
			pts = rectContour(length, r.width, 0)
		}
		pts = rotateContour(pts, r.lineDirDeg*math.Pi/180)
	case "rect":
		if r.fillet > 0 && r.shear == 0 {
			pts = roundedRectContour(r.width, r.height, r.fillet)
		} else {
			pts = rectContour(r.width, r.height, r.shear)
		}
	case "circle":
		pts = ngonContour(r.width/2, 32, true)
	case "polygon":
		sides := r.sides
		if sides < 3 {
			sides = 3
		}
		inradius := r.width / 2
		circumradius := inradius / math.Cos(math.Pi/float64(sides))
		pts = ngonContour(circumradius, sides, false)
	default:
		pts = rectContour(r.width, r.height, 0)
	}
	if r.rotation != 0 {
		pts = rotateContour(pts, r.rotation*math.Pi/180)
	}
	return pts
}

func rectContour(width, height, shear float64) []kernel.Vec3 {
	hw, hh := width/2, height/2
	shx := shear * hh
	return []kernel.Vec3{
		{X: -hw - shx, Y: -hh},
		{X: hw - shx, Y: -hh},
		{X: hw + shx, Y: hh},
		{X: -hw + shx, Y: hh},
	}
}

func roundedRectContour(width, height, radius float64) []kernel.Vec3 {
	hw, hh := width/2, height/2
	if radius > hw {
		radius = hw
	}
	if radius > hh {
		radius = hh
	}
	corners := []struct{ cx, cy, a0 float64 }{
		{hw - radius, hh - radius, 0},
		{-hw + radius, hh - radius, math.Pi / 2},
		{-hw + radius, -hh + radius, math.Pi},
		{hw - radius, -hh + radius, 3 * math.Pi / 2},
	}
	var pts []kernel.Vec3
	for _, c := range corners {
		for i := 0; i <= arcSegments/4; i++ {
			a := c.a0 + float64(i)/float64(arcSegments/4)*(math.Pi/2)
			pts = append(pts, kernel.Vec3{X: c.cx + radius*math.Cos(a), Y: c.cy + radius*math.Sin(a)})
		}
	}
	return pts
}

func stadiumContour(length, width float64) []kernel.Vec3 {
	hl := length/2 - width/2
	r := width / 2
	var pts []kernel.Vec3
	for i := 0; i <= arcSegments/2; i++ {
		a := -math.Pi/2 + float64(i)/float64(arcSegments/2)*math.Pi
		pts = append(pts, kernel.Vec3{X: hl + r*math.Cos(a), Y: r * math.Sin(a)})
	}
	for i := 0; i <= arcSegments/2; i++ {
		a := math.Pi/2 + float64(i)/float64(arcSegments/2)*math.Pi
		pts = append(pts, kernel.Vec3{X: -hl + r*math.Cos(a), Y: r * math.Sin(a)})
	}
	return pts
}

func ngonContour(circumradius float64, sides int, flatTop bool) []kernel.Vec3 {
	offset := 0.0
	if flatTop {
		offset = math.Pi / float64(sides)
	}
	pts := make([]kernel.Vec3, sides)
	for i := 0; i < sides; i++ {
		a := 2*math.Pi*float64(i)/float64(sides) + offset
		pts[i] = kernel.Vec3{X: circumradius * math.Cos(a), Y: circumradius * math.Sin(a)}
	}
	return pts
}

func rotateContour(pts []kernel.Vec3, angle float64) []kernel.Vec3 {
	sinA, cosA := math.Sin(angle), math.Cos(angle)
	out := make([]kernel.Vec3, len(pts))
	for i, p := range pts {
		out[i] = kernel.Vec3{X: p.X*cosA - p.Y*sinA, Y: p.X*sinA + p.Y*cosA}
	}
	return out
}

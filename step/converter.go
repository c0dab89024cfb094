package step

import (
	"strconv"
	"strings"

	"github.com/darrenoakey/daz-cad-sub000/kernel"
)

// MeshConverter converts a triangle mesh to STEP BREP entities. Grounded on
// the sdfx STEP exporter's converter, retargeted from sdf.Triangle3/v3.Vec
// onto this module's own kernel.Triangle3/kernel.Vec3.
type MeshConverter struct {
	entities  []Entity
	idCounter int

	pointCache  map[kernel.Vec3]int
	edgeCache   map[edgeKey]int
	normalCache map[kernel.Vec3]int
	colorCache  map[string]int
}

type edgeKey struct {
	v1, v2 kernel.Vec3
}

func newEdgeKey(v1, v2 kernel.Vec3) edgeKey {
	if v1.X < v2.X || (v1.X == v2.X && v1.Y < v2.Y) ||
		(v1.X == v2.X && v1.Y == v2.Y && v1.Z < v2.Z) {
		return edgeKey{v1, v2}
	}
	return edgeKey{v2, v1}
}

// NewMeshConverter creates a new mesh converter.
func NewMeshConverter() *MeshConverter {
	return &MeshConverter{
		entities:    make([]Entity, 0),
		idCounter:   1,
		pointCache:  make(map[kernel.Vec3]int),
		edgeCache:   make(map[edgeKey]int),
		normalCache: make(map[kernel.Vec3]int),
		colorCache:  make(map[string]int),
	}
}

func (c *MeshConverter) reset() {
	c.entities = make([]Entity, 0)
	c.idCounter = 1
	c.pointCache = make(map[kernel.Vec3]int)
	c.edgeCache = make(map[edgeKey]int)
	c.normalCache = make(map[kernel.Vec3]int)
	c.colorCache = make(map[string]int)
}

func (c *MeshConverter) addEntity(e Entity) int {
	e.SetID(c.idCounter)
	c.entities = append(c.entities, e)
	c.idCounter++
	return e.ID()
}

// getOrCreatePoint creates or retrieves a cached CARTESIAN_POINT, matching
// within tolerance rather than by exact key since mesh vertices coming out
// of the boolean/planarize pipeline are rarely bit-identical.
func (c *MeshConverter) getOrCreatePoint(p kernel.Vec3) int {
	const tolerance = 1e-6
	for cached, id := range c.pointCache {
		if kernel.Dist(cached, p) <= tolerance {
			return id
		}
	}

	point := &CartesianPoint{
		Coordinates: []float64{p.X, p.Y, p.Z},
	}
	id := c.addEntity(point)
	c.pointCache[p] = id
	return id
}

func (c *MeshConverter) getOrCreateDirection(d kernel.Vec3) int {
	d = kernel.Unit(d)

	if id, ok := c.normalCache[d]; ok {
		return id
	}

	dir := &Direction{
		DirectionRatios: []float64{d.X, d.Y, d.Z},
	}
	id := c.addEntity(dir)
	c.normalCache[d] = id
	return id
}

func (c *MeshConverter) createAxis2Placement(origin kernel.Vec3, zAxis, xAxis kernel.Vec3) int {
	locID := c.getOrCreatePoint(origin)
	axisID := c.getOrCreateDirection(zAxis)
	refDirID := c.getOrCreateDirection(xAxis)

	placement := &Axis2Placement3D{
		Location:     locID,
		Axis:         axisID,
		RefDirection: refDirID,
	}
	return c.addEntity(placement)
}

func (c *MeshConverter) createVertexPoint(p kernel.Vec3) int {
	pointID := c.getOrCreatePoint(p)
	vertex := &VertexPoint{
		VertexGeometry: pointID,
	}
	return c.addEntity(vertex)
}

func (c *MeshConverter) createEdgeCurve(v1, v2 kernel.Vec3) int {
	key := newEdgeKey(v1, v2)
	if id, ok := c.edgeCache[key]; ok {
		return id
	}

	vertex1ID := c.createVertexPoint(v1)
	vertex2ID := c.createVertexPoint(v2)

	startPointID := c.getOrCreatePoint(v1)
	direction := kernel.Unit(kernel.Sub(v2, v1))
	dirID := c.getOrCreateDirection(direction)
	magnitude := kernel.Dist(v1, v2)

	vector := &Vector{
		Orientation: dirID,
		Magnitude:   magnitude,
	}
	vectorID := c.addEntity(vector)

	line := &Line{
		Pnt: startPointID,
		Dir: vectorID,
	}
	lineID := c.addEntity(line)

	edge := &EdgeCurve{
		EdgeStart:    vertex1ID,
		EdgeEnd:      vertex2ID,
		EdgeGeometry: lineID,
		SameSense:    true,
	}
	edgeID := c.addEntity(edge)

	c.edgeCache[key] = edgeID
	return edgeID
}

// createTriangleFace emits one ADVANCED_FACE for t, named after the
// B-Rep face it came from (empty when the shape carries no name for
// it) and, when colorStyleID is nonzero, a STYLED_ITEM binding the
// shared presentation style to that face.
func (c *MeshConverter) createTriangleFace(t kernel.Triangle3, name string, colorStyleID int) int {
	v0, v1, v2 := t[0], t[1], t[2]

	edge1ID := c.createEdgeCurve(v0, v1)
	edge2ID := c.createEdgeCurve(v1, v2)
	edge3ID := c.createEdgeCurve(v2, v0)

	oe1ID := c.addEntity(&OrientedEdge{EdgeElement: edge1ID, Orientation: true})
	oe2ID := c.addEntity(&OrientedEdge{EdgeElement: edge2ID, Orientation: true})
	oe3ID := c.addEntity(&OrientedEdge{EdgeElement: edge3ID, Orientation: true})

	loopID := c.addEntity(&EdgeLoop{EdgeList: []int{oe1ID, oe2ID, oe3ID}})
	boundID := c.addEntity(&FaceOuterBound{Bound: loopID, Orientation: true})

	normal := t.Normal()
	origin := v0
	xAxis := kernel.Unit(kernel.Sub(v1, v0))
	zAxis := normal

	planeAxisID := c.createAxis2Placement(origin, zAxis, xAxis)
	planeID := c.addEntity(&Plane{Position: planeAxisID})

	face := &AdvancedFace{
		Name:         name,
		Bounds:       []int{boundID},
		FaceGeometry: planeID,
		SameSense:    true,
	}
	faceID := c.addEntity(face)

	if colorStyleID != 0 {
		c.addEntity(&StyledItem{Styles: []int{colorStyleID}, Item: faceID})
	}
	return faceID
}

// getOrCreateColorStyle builds (once per distinct hex value) the full
// COLOUR_RGB -> FILL_AREA_STYLE_COLOUR -> FILL_AREA_STYLE ->
// SURFACE_STYLE_FILL_AREA -> SURFACE_SIDE_STYLE -> SURFACE_STYLE_USAGE
// -> PRESENTATION_STYLE_ASSIGNMENT chain AP214 uses to color a face,
// returning the assignment ID every STYLED_ITEM for that color shares.
func (c *MeshConverter) getOrCreateColorStyle(hex string) (int, bool) {
	if hex == "" {
		return 0, false
	}
	if id, ok := c.colorCache[hex]; ok {
		return id, true
	}
	r, g, b, ok := parseHexColor01(hex)
	if !ok {
		return 0, false
	}

	colourID := c.addEntity(&ColourRgb{Name: hex, Red: r, Green: g, Blue: b})
	fillColourID := c.addEntity(&FillAreaStyleColour{Colour: colourID})
	fillStyleID := c.addEntity(&FillAreaStyle{FillStyles: []int{fillColourID}})
	surfaceFillID := c.addEntity(&SurfaceStyleFillArea{FillArea: fillStyleID})
	sideStyleID := c.addEntity(&SurfaceSideStyle{Styles: []int{surfaceFillID}})
	usageID := c.addEntity(&SurfaceStyleUsage{Side: ".BOTH.", Style: sideStyleID})
	assignID := c.addEntity(&PresentationStyleAssignment{Styles: []int{usageID}})

	c.colorCache[hex] = assignID
	return assignID, true
}

func parseHexColor01(hex string) (r, g, b float64, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) < 6 {
		return 0, 0, 0, false
	}
	rv, err1 := strconv.ParseUint(hex[0:2], 16, 8)
	gv, err2 := strconv.ParseUint(hex[2:4], 16, 8)
	bv, err3 := strconv.ParseUint(hex[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return float64(rv) / 255, float64(gv) / 255, float64(bv) / 255, true
}

// beginProduct emits the application/unit/geometric-context/product
// boilerplate common to every STEP file this module writes, returning
// the IDs the caller threads through to finishShape.
func (c *MeshConverter) beginProduct(name string) (pdsID, geomContextID int) {
	appContext := &ApplicationContext{Application: "cad-fluent STEP Writer"}
	appContextID := c.addEntity(appContext)

	lengthUnitID := c.addEntity(&LengthUnit{})
	planeAngleUnitID := c.addEntity(&PlaneAngleUnit{})
	solidAngleUnitID := c.addEntity(&SolidAngleUnit{})

	uncertainty := &UncertaintyMeasureWithUnit{
		Value:       1e-6,
		Unit:        lengthUnitID,
		Name:        "DISTANCE_ACCURACY_VALUE",
		Description: "Maximum model space distance between geometric entities",
	}
	uncertaintyID := c.addEntity(uncertainty)

	geomContext := &GeometricRepresentationContext{
		ContextType:              "3D",
		CoordinateSpaceDimension: 3,
		Uncertainty:              []int{uncertaintyID},
		Units:                    []int{lengthUnitID, planeAngleUnitID, solidAngleUnitID},
	}
	geomContextID = c.addEntity(geomContext)

	productContext := &ProductContext{
		FrameOfReference: appContextID,
		DisciplineType:   "mechanical",
	}
	productContextID := c.addEntity(productContext)

	product := &Product{
		Name:             name,
		Description:      "Generated by cad-fluent",
		FrameOfReference: []int{productContextID},
	}
	productID := c.addEntity(product)

	pdfID := c.addEntity(&ProductDefinitionFormation{OfProduct: productID})
	productDefContext := &ProductDefinitionContext{
		FrameOfReference: appContextID,
		LifeCycleStage:   "design",
	}
	pdcID := c.addEntity(productDefContext)

	pdID := c.addEntity(&ProductDefinition{Formation: pdfID, FrameOfReference: pdcID})
	pdsID = c.addEntity(&ProductDefinitionShape{Definition: pdID})
	return pdsID, geomContextID
}

// finishShape wraps faceIDs into a closed shell, manifold solid BREP,
// and advanced BREP shape representation under the product shape
// definition beginProduct set up.
func (c *MeshConverter) finishShape(faceIDs []int, pdsID, geomContextID int) {
	shellID := c.addEntity(&ClosedShell{Faces: faceIDs})
	brepID := c.addEntity(&ManifoldSolidBrep{Outer: shellID})

	origin := kernel.Vec3{}
	zAxis := kernel.Vec3{Z: 1}
	xAxis := kernel.Vec3{X: 1}

	mainPlacementID := c.addEntity(&Axis2Placement3D{
		Location:     c.getOrCreatePoint(origin),
		Axis:         c.getOrCreateDirection(zAxis),
		RefDirection: c.getOrCreateDirection(xAxis),
	})

	advBrepID := c.addEntity(&AdvancedBrepShapeRepresentation{
		Items:          []int{brepID, mainPlacementID},
		ContextOfItems: geomContextID,
	})

	c.addEntity(&ShapeDefinitionRepresentation{
		Definition:         pdsID,
		UsedRepresentation: advBrepID,
	})
}

// ConvertMesh converts a triangle mesh to a flat STEP AP214 entity list
// representing one named product with a single manifold solid BREP.
func (c *MeshConverter) ConvertMesh(mesh []kernel.Triangle3, name string) []Entity {
	c.reset()
	pdsID, geomContextID := c.beginProduct(name)

	faceIDs := make([]int, 0, len(mesh))
	for _, triangle := range mesh {
		if triangle.Degenerate(1e-9) {
			continue
		}
		faceIDs = append(faceIDs, c.createTriangleFace(triangle, "", 0))
	}

	c.finishShape(faceIDs, pdsID, geomContextID)
	return c.entities
}

// ConvertFaces converts a named B-Rep solid's faces to a STEP AP214
// entity list, the same way ConvertMesh does for a flat triangle soup,
// but carrying each face's semantic name (from faceNames, keyed by
// kernel.Face.ID) onto its ADVANCED_FACE entities and, when color is a
// valid "#RRGGBB"/"#RRGGBBAA" hex string, a shared STYLED_ITEM/
// PRESENTATION_STYLE_ASSIGNMENT chain onto every face.
func (c *MeshConverter) ConvertFaces(faces []kernel.Face, faceNames map[uint64]string, color, name string) []Entity {
	c.reset()
	pdsID, geomContextID := c.beginProduct(name)
	colorStyleID, hasColor := c.getOrCreateColorStyle(color)

	var faceIDs []int
	for _, face := range faces {
		faceName := faceNames[face.ID]
		for _, triangle := range face.Triangles {
			if triangle.Degenerate(1e-9) {
				continue
			}
			style := 0
			if hasColor {
				style = colorStyleID
			}
			faceIDs = append(faceIDs, c.createTriangleFace(triangle, faceName, style))
		}
	}

	c.finishShape(faceIDs, pdsID, geomContextID)
	return c.entities
}

// OptimizeMesh drops degenerate triangles before conversion.
func OptimizeMesh(mesh []kernel.Triangle3) []kernel.Triangle3 {
	optimized := make([]kernel.Triangle3, 0, len(mesh))
	for _, t := range mesh {
		if !t.Degenerate(1e-9) {
			optimized = append(optimized, t)
		}
	}
	return optimized
}

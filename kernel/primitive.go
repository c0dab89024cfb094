package kernel

import "math"

// Box builds a box centered in x/y and sitting on z=0, spanning
// [-l/2,l/2]x[-w/2,w/2]x[0,h]. Faces are returned in
// a fixed order (right +X, left -X, front +Y, back -Y, top +Z, bottom -Z) so
// cad/naming.go's auto-naming can assign canonical names deterministically.
func Box(l, w, h float64) *Solid {
	hx, hy := l/2, w/2
	// 8 corners.
	p := func(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }
	c000 := p(-hx, -hy, 0)
	c100 := p(hx, -hy, 0)
	c110 := p(hx, hy, 0)
	c010 := p(-hx, hy, 0)
	c001 := p(-hx, -hy, h)
	c101 := p(hx, -hy, h)
	c111 := p(hx, hy, h)
	c011 := p(-hx, hy, h)

	quad := func(a, b, c, d Vec3) []Triangle3 {
		return []Triangle3{{a, b, c}, {a, c, d}}
	}

	faces := []Face{
		newFace(quad(c100, c110, c111, c101), true), // +X right
		newFace(quad(c010, c000, c001, c011), true), // -X left
		newFace(quad(c110, c010, c011, c111), true), // +Y front
		newFace(quad(c000, c100, c101, c001), true), // -Y back
		newFace(quad(c001, c101, c111, c011), true), // +Z top
		newFace(quad(c010, c110, c100, c000), true), // -Z bottom
	}
	return NewSolid(faces)
}

// Cylinder builds a cylinder of radius r and height h, centered on the
// z-axis from z=0 to z=h. segments controls the
// polygonal approximation of the circular cross-section.
func Cylinder(r, h float64, segments int) *Solid {
	if segments < 8 {
		segments = 48
	}
	bottom := make([]Vec3, segments)
	top := make([]Vec3, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		x, y := r*math.Cos(a), r*math.Sin(a)
		bottom[i] = Vec3{X: x, Y: y, Z: 0}
		top[i] = Vec3{X: x, Y: y, Z: h}
	}
	center0 := Vec3{X: 0, Y: 0, Z: 0}
	center1 := Vec3{X: 0, Y: 0, Z: h}

	var bottomTris, topTris, sideTris []Triangle3
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		// Bottom normal -Z: wind so Normal() faces -Z.
		bottomTris = append(bottomTris, Triangle3{center0, bottom[j], bottom[i]})
		// Top normal +Z.
		topTris = append(topTris, Triangle3{center1, top[i], top[j]})
		// Side quad, outward normal.
		sideTris = append(sideTris, Triangle3{bottom[i], bottom[j], top[j]})
		sideTris = append(sideTris, Triangle3{bottom[i], top[j], top[i]})
	}

	faces := []Face{
		newFace(topTris, true),
		newFace(bottomTris, true),
		newFace(sideTris, false),
	}
	return NewSolid(faces)
}

// Sphere builds a sphere of radius r sitting on z=0 (center at (0,0,r)),
// approximated by a latitude/longitude mesh. The whole surface is one
// curved face, matching a real B-Rep kernel's single spherical face.
func Sphere(r float64, segments int) *Solid {
	if segments < 8 {
		segments = 24
	}
	rings := segments / 2
	center := Vec3{X: 0, Y: 0, Z: r}

	pt := func(ring, seg int) Vec3 {
		phi := math.Pi * float64(ring) / float64(rings) // 0..pi
		theta := 2 * math.Pi * float64(seg) / float64(segments)
		x := r * math.Sin(phi) * math.Cos(theta)
		y := r * math.Sin(phi) * math.Sin(theta)
		z := r * math.Cos(phi)
		return Add(center, Vec3{X: x, Y: y, Z: z})
	}

	var tris []Triangle3
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			nextSeg := (seg + 1) % segments
			a := pt(ring, seg)
			b := pt(ring, nextSeg)
			c := pt(ring+1, nextSeg)
			d := pt(ring+1, seg)
			if ring == 0 {
				tris = append(tris, Triangle3{a, c, d})
			} else if ring == rings-1 {
				tris = append(tris, Triangle3{a, b, c})
			} else {
				tris = append(tris, Triangle3{a, b, c}, Triangle3{a, c, d})
			}
		}
	}
	return NewSolid([]Face{newFace(tris, false)})
}

// Prism builds a flat-topped n-sided right prism in the xy-plane, extruded
// +Z by height: flatToFlat is the distance between two parallel flat sides
// (so inradius = flatToFlat/2).
func Prism(sides int, flatToFlat, height float64) *Solid {
	if sides < 3 {
		sides = 3
	}
	inradius := flatToFlat / 2
	circumradius := inradius / math.Cos(math.Pi/float64(sides))

	bottom := make([]Vec3, sides)
	top := make([]Vec3, sides)
	for i := 0; i < sides; i++ {
		// Offset by half a sector so a flat edge (not a vertex) faces +Y.
		a := 2*math.Pi*float64(i)/float64(sides) + math.Pi/float64(sides)
		x, y := -circumradius*math.Sin(a), circumradius*math.Cos(a)
		bottom[i] = Vec3{X: x, Y: y, Z: 0}
		top[i] = Vec3{X: x, Y: y, Z: height}
	}
	center0 := Vec3{X: 0, Y: 0, Z: 0}
	center1 := Vec3{X: 0, Y: 0, Z: height}

	var bottomTris, topTris []Triangle3
	for i := 0; i < sides; i++ {
		j := (i + 1) % sides
		bottomTris = append(bottomTris, Triangle3{center0, bottom[j], bottom[i]})
		topTris = append(topTris, Triangle3{center1, top[i], top[j]})
	}

	faces := []Face{newFace(topTris, true), newFace(bottomTris, true)}
	for i := 0; i < sides; i++ {
		j := (i + 1) % sides
		quad := []Triangle3{
			{bottom[i], bottom[j], top[j]},
			{bottom[i], top[j], top[i]},
		}
		faces = append(faces, newFace(quad, true))
	}
	return NewSolid(faces)
}

// ExtrudeContour extrudes a closed planar xy contour (with optional hole
// contours) by depth along +Z, starting at z0. Used by cad/text.go to turn
// glyph outlines into solids. Triangulation is a simple fan for the caps
// (contours from font outlines are already flattened to simple polygons by
// the caller), which is adequate for the typographic shapes text() deals
// with.
func ExtrudeContour(outer []Vec3, holes [][]Vec3, z0, depth float64) *Solid {
	liftedOuter := make([]Vec3, len(outer))
	for i, p := range outer {
		liftedOuter[i] = Vec3{X: p.X, Y: p.Y, Z: z0}
	}
	topOuter := make([]Vec3, len(outer))
	for i, p := range outer {
		topOuter[i] = Vec3{X: p.X, Y: p.Y, Z: z0 + depth}
	}

	var bottomTris, topTris []Triangle3
	bottomTris = append(bottomTris, fanTriangulate(liftedOuter, true)...)
	topTris = append(topTris, fanTriangulate(topOuter, false)...)

	faces := []Face{newFace(bottomTris, true), newFace(topTris, true)}

	// Side walls of the outer contour.
	n := len(outer)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := liftedOuter[i], liftedOuter[j]
		c, d := topOuter[j], topOuter[i]
		faces = append(faces, newFace([]Triangle3{{a, b, c}, {a, c, d}}, true))
	}
	// Side walls of each hole (wound oppositely so the wall faces inward).
	for _, hole := range holes {
		m := len(hole)
		for i := 0; i < m; i++ {
			j := (i + 1) % m
			a := Vec3{X: hole[i].X, Y: hole[i].Y, Z: z0}
			b := Vec3{X: hole[j].X, Y: hole[j].Y, Z: z0}
			c := Vec3{X: hole[j].X, Y: hole[j].Y, Z: z0 + depth}
			d := Vec3{X: hole[i].X, Y: hole[i].Y, Z: z0 + depth}
			faces = append(faces, newFace([]Triangle3{{a, c, b}, {a, d, c}}, true))
		}
	}
	return NewSolid(faces)
}

// fanTriangulate fans a simple (non-self-intersecting, roughly convex)
// polygon from its first vertex. flipped reverses winding, used so the
// bottom cap's normal points -Z while the top cap's points +Z.
func fanTriangulate(loop []Vec3, flipped bool) []Triangle3 {
	if len(loop) < 3 {
		return nil
	}
	var tris []Triangle3
	for i := 1; i < len(loop)-1; i++ {
		if flipped {
			tris = append(tris, Triangle3{loop[0], loop[i+1], loop[i]})
		} else {
			tris = append(tris, Triangle3{loop[0], loop[i], loop[i+1]})
		}
	}
	return tris
}

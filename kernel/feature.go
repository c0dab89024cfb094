package kernel

// faceByID finds a face by its stable ID.
func (s *Solid) faceByID(id uint64) (Face, bool) {
	for _, f := range s.Faces {
		if f.ID == id {
			return f, true
		}
	}
	return Face{}, false
}

// edgeWedgeTool builds the solid that, when subtracted from a shape,
// approximates rounding a single edge: a prism along the edge whose
// cross-section is a fan from the edge line out to distance/radius along
// each of the two adjacent face normals. segments=1 gives chamfer's flat
// triangular cross-section; segments>1 approximates a fillet's rounded
// cross-section by fanning an arc between the two normals.
func edgeWedgeTool(e Edge, nA, nB Vec3, amount float64, segments int) *Solid {
	if amount <= 0 {
		return nil
	}
	d := e.Direction
	if d == (Vec3{}) {
		return nil
	}
	half := Scale(e.Length/2, d)
	p0 := Sub(e.Midpoint, half)
	p1 := Add(e.Midpoint, half)

	// Build the fan cross-section in the plane perpendicular to the edge:
	// apex at the edge line, rim points walking from nA to nB.
	rim := make([]Vec3, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		dir := Unit(Add(Scale(1-t, nA), Scale(t, nB)))
		if dir == (Vec3{}) {
			dir = nA
		}
		rim[i] = Scale(amount, dir)
	}

	var tris []Triangle3
	for i := 0; i < segments; i++ {
		a0 := Add(p0, rim[i])
		b0 := Add(p0, rim[i+1])
		a1 := Add(p1, rim[i])
		b1 := Add(p1, rim[i+1])
		apex0 := p0
		apex1 := p1
		// Cross-section end caps (triangle fan slice) + side quad.
		tris = append(tris,
			Triangle3{apex0, a0, b0},
			Triangle3{apex1, b1, a1},
			Triangle3{a0, a1, b1},
			Triangle3{a0, b1, b0},
		)
	}
	// Close the two ends of the wedge back to the solid (apex-to-apex face).
	tris = append(tris, Triangle3{p0, p1, Add(p0, rim[0])}, Triangle3{p1, Add(p1, rim[0]), Add(p0, rim[0])})
	tris = append(tris, Triangle3{p0, Add(p0, rim[segments]), p1}, Triangle3{p1, Add(p0, rim[segments]), Add(p1, rim[segments])})

	return Planarize(tris)
}

// Chamfer cuts distance off every edge in edges, via a single batched
// subtraction of all per-edge wedge tools. It returns the new solid and how
// many edges actually produced a tool (the rest were skipped, e.g. a
// degenerate edge direction) — cad/boolean.go uses that count to decide
// whether the whole feature failed.
func Chamfer(s *Solid, edges []Edge, distance float64) (*Solid, int) {
	return applyEdgeTools(s, edges, distance, 1)
}

// Fillet rounds every edge in edges by radius, approximated by a faceted
// wedge fan (8 segments is a reasonable facet count for small/medium
// radii — the facade is explicit that this is an approximation of a true
// tangent-arc fillet, since a mesh-based kernel has no analytic fillet
// surface).
func Fillet(s *Solid, edges []Edge, radius float64) (*Solid, int) {
	const filletSegments = 8
	return applyEdgeTools(s, edges, radius, filletSegments)
}

func applyEdgeTools(s *Solid, edges []Edge, amount float64, segments int) (*Solid, int) {
	var tools []*Solid
	for _, e := range edges {
		fa, okA := s.faceByID(e.FaceA)
		fb, okB := s.faceByID(e.FaceB)
		if !okA || !okB {
			continue
		}
		tool := edgeWedgeTool(e, fa.Normal, fb.Normal, amount, segments)
		if tool == nil || tool.Empty() {
			continue
		}
		tools = append(tools, tool)
	}
	if len(tools) == 0 {
		return s, 0
	}
	return SubtractMany(s, tools), len(tools)
}

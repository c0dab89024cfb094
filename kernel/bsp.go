package kernel

// BSP-tree triangle-soup CSG, the standard technique (Thomas Naylor /
// Evan Wallace's csg.js algorithm, ported many times) for boolean ops over
// an explicit mesh, rather than a signed-distance field booleaned with a
// plain min/max. This facade needs explicit face/edge topology back out the
// other side for post-boolean re-matching, so triangle-soup BSP is the
// right tool here. See DESIGN.md.

const planeEpsilon = 1e-7

type plane struct {
	normal Vec3
	w      float64
}

func planeFromTriangle(t Triangle3) plane {
	n := t.Normal()
	return plane{normal: n, w: Dot(n, t[0])}
}

func (p plane) flip() plane {
	return plane{normal: Scale(-1, p.normal), w: -p.w}
}

func (p plane) distance(v Vec3) float64 {
	return Dot(p.normal, v) - p.w
}

// polygon is a convex planar polygon; triangles start as 3-vertex polygons
// and clipping may grow or shrink the vertex count.
type polygon struct {
	verts []Vec3
	pl    plane
}

func polygonFromTriangle(t Triangle3) polygon {
	return polygon{verts: []Vec3{t[0], t[1], t[2]}, pl: planeFromTriangle(t)}
}

func (p polygon) flip() polygon {
	n := len(p.verts)
	rev := make([]Vec3, n)
	for i, v := range p.verts {
		rev[n-1-i] = v
	}
	return polygon{verts: rev, pl: p.pl.flip()}
}

// triangulate fans the polygon (valid for the convex polygons this clipper
// produces) back into triangles for output/tessellation.
func (p polygon) triangulate() []Triangle3 {
	var tris []Triangle3
	for i := 1; i < len(p.verts)-1; i++ {
		tris = append(tris, Triangle3{p.verts[0], p.verts[i], p.verts[i+1]})
	}
	return tris
}

const (
	coplanarCls = 0
	frontCls    = 1
	backCls     = 2
	spanningCls = 3
)

// splitPolygon classifies poly against pl and appends it (or pieces of it)
// to the appropriate output slices.
func splitPolygon(pl plane, poly polygon, coplanarFront, coplanarBack, front, back *[]polygon) {
	var polygonType int
	types := make([]int, len(poly.verts))
	for i, v := range poly.verts {
		d := pl.distance(v)
		t := coplanarCls
		if d < -planeEpsilon {
			t = backCls
		} else if d > planeEpsilon {
			t = frontCls
		}
		types[i] = t
		polygonType |= t
	}

	switch polygonType {
	case coplanarCls:
		if Dot(pl.normal, poly.pl.normal) > 0 {
			*coplanarFront = append(*coplanarFront, poly)
		} else {
			*coplanarBack = append(*coplanarBack, poly)
		}
	case frontCls:
		*front = append(*front, poly)
	case backCls:
		*back = append(*back, poly)
	case spanningCls:
		var f, b []Vec3
		n := len(poly.verts)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			ti, tj := types[i], types[j]
			vi, vj := poly.verts[i], poly.verts[j]
			if ti != backCls {
				f = append(f, vi)
			}
			if ti != frontCls {
				b = append(b, vi)
			}
			if (ti | tj) == spanningCls {
				t := (pl.w - Dot(pl.normal, vi)) / Dot(pl.normal, Sub(vj, vi))
				mid := Add(vi, Scale(t, Sub(vj, vi)))
				f = append(f, mid)
				b = append(b, mid)
			}
		}
		if len(f) >= 3 {
			*front = append(*front, polygon{verts: f, pl: poly.pl})
		}
		if len(b) >= 3 {
			*back = append(*back, polygon{verts: b, pl: poly.pl})
		}
	}
}

type bspNode struct {
	pl       *plane
	front    *bspNode
	back     *bspNode
	polygons []polygon
}

func newBSP(polys []polygon) *bspNode {
	n := &bspNode{}
	n.build(polys)
	return n
}

func (n *bspNode) build(polys []polygon) {
	if len(polys) == 0 {
		return
	}
	if n.pl == nil {
		p := polys[0].pl
		n.pl = &p
	}
	var front, back []polygon
	for _, p := range polys {
		splitPolygon(*n.pl, p, &n.polygons, &n.polygons, &front, &back)
	}
	if len(front) > 0 {
		if n.front == nil {
			n.front = &bspNode{}
		}
		n.front.build(front)
	}
	if len(back) > 0 {
		if n.back == nil {
			n.back = &bspNode{}
		}
		n.back.build(back)
	}
}

func (n *bspNode) clone() *bspNode {
	if n == nil {
		return nil
	}
	c := &bspNode{polygons: append([]polygon{}, n.polygons...)}
	if n.pl != nil {
		p := *n.pl
		c.pl = &p
	}
	c.front = n.front.clone()
	c.back = n.back.clone()
	return c
}

func (n *bspNode) invert() {
	if n == nil {
		return
	}
	for i := range n.polygons {
		n.polygons[i] = n.polygons[i].flip()
	}
	if n.pl != nil {
		f := n.pl.flip()
		n.pl = &f
	}
	n.front.invert()
	n.back.invert()
	n.front, n.back = n.back, n.front
}

func clipPolygons(n *bspNode, polys []polygon) []polygon {
	if n == nil || n.pl == nil {
		return append([]polygon{}, polys...)
	}
	var front, back []polygon
	for _, p := range polys {
		splitPolygon(*n.pl, p, &front, &back, &front, &back)
	}
	if n.front != nil {
		front = clipPolygons(n.front, front)
	}
	if n.back != nil {
		back = clipPolygons(n.back, back)
	} else {
		back = nil
	}
	return append(front, back...)
}

func (n *bspNode) clipTo(other *bspNode) {
	if n == nil {
		return
	}
	n.polygons = clipPolygons(other, n.polygons)
	n.front.clipTo(other)
	n.back.clipTo(other)
}

func (n *bspNode) allPolygons() []polygon {
	if n == nil {
		return nil
	}
	out := append([]polygon{}, n.polygons...)
	out = append(out, n.front.allPolygons()...)
	out = append(out, n.back.allPolygons()...)
	return out
}

func trisToPolygons(tris []Triangle3) []polygon {
	polys := make([]polygon, 0, len(tris))
	for _, t := range tris {
		if !t.Degenerate(1e-12) {
			polys = append(polys, polygonFromTriangle(t))
		}
	}
	return polys
}

func polygonsToTris(polys []polygon) []Triangle3 {
	var tris []Triangle3
	for _, p := range polys {
		tris = append(tris, p.triangulate()...)
	}
	return tris
}

// csgUnion returns the boolean union of two triangle soups.
func csgUnion(a, b []Triangle3) []Triangle3 {
	na := newBSP(trisToPolygons(a))
	nb := newBSP(trisToPolygons(b))
	na.clipTo(nb)
	nb.clipTo(na)
	nb.invert()
	nb.clipTo(na)
	nb.invert()
	na.build(nb.allPolygons())
	return polygonsToTris(na.allPolygons())
}

// csgSubtract returns a minus b.
func csgSubtract(a, b []Triangle3) []Triangle3 {
	na := newBSP(trisToPolygons(a))
	nb := newBSP(trisToPolygons(b))
	na.invert()
	na.clipTo(nb)
	nb.clipTo(na)
	nb.invert()
	nb.clipTo(na)
	nb.invert()
	na.build(nb.allPolygons())
	na.invert()
	return polygonsToTris(na.allPolygons())
}

// csgIntersect returns the common volume of two triangle soups.
func csgIntersect(a, b []Triangle3) []Triangle3 {
	na := newBSP(trisToPolygons(a))
	nb := newBSP(trisToPolygons(b))
	na.invert()
	nb.clipTo(na)
	nb.invert()
	na.clipTo(nb)
	nb.clipTo(na)
	na.build(nb.allPolygons())
	na.invert()
	return polygonsToTris(na.allPolygons())
}

// csgSubtractMany subtracts every tool in tools from a in a single batched
// pass: all tool soups are concatenated into one compound, then one subtract
// runs against that compound, since one boolean against a compound tool
// beats a sequential cut per tool for cutPattern's cutter count.
func csgSubtractMany(a []Triangle3, tools [][]Triangle3) []Triangle3 {
	if len(tools) == 0 {
		return a
	}
	compound := tools[0]
	for _, t := range tools[1:] {
		compound = append(compound, t...)
	}
	return csgSubtract(a, compound)
}

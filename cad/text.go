package cad

import (
	"github.com/llgcode/draw2d"

	"github.com/darrenoakey/daz-cad-sub000/font"
	"github.com/darrenoakey/daz-cad-sub000/kernel"
)

// TextOptions configures Text. Depth defaults to size/5; Font defaults to
// the default loaded font.
type TextOptions struct {
	Depth float64
	Font  string
}

const flatteningThreshold = 0.3

// Text parses s's glyph outlines via the font provider, extrudes each
// character's outer-with-holes contour set by depth, fuses the per-
// character solids, and re-centers the result in x/y with its bottom at
// z=0.
func Text(s string, size float64, opts ...TextOptions) Shape {
	if size <= 0 {
		return fail(emptyShape(), "text", "size must be positive, got %v", size)
	}
	var o TextOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	depth := o.Depth
	if depth <= 0 {
		depth = size / 5
	}

	f, ok := font.GetFont(o.Font)
	if !ok {
		return fail(emptyShape(), "text", "no font loaded (requested %q)", o.Font)
	}

	var result *kernel.Solid
	penX := 0.0
	for _, r := range s {
		adv := f.Advance(r, size)
		if r == ' ' || r == '\t' {
			penX += adv
			continue
		}
		cmds := f.GetPath(r, penX, 0, size)
		glyph := glyphSolid(cmds, depth)
		if glyph != nil && !glyph.Empty() {
			if result == nil {
				result = glyph
			} else {
				result = kernel.Union(result, glyph)
			}
		}
		penX += adv
	}
	if result == nil || result.Empty() {
		return recordFailure(emptyShape(), "text", "no glyph outlines produced", nil)
	}

	shape := emptyShape().withSolid(result)
	bb := shape.BoundingBox()
	cx := (bb.Min.X + bb.Max.X) / 2
	cy := (bb.Min.Y + bb.Max.Y) / 2
	shape = shape.Translate(-cx, -cy, -bb.Min.Z)
	return shape
}

type glyphContour struct {
	pts  []kernel.Vec3
	area float64
	bbox kernel.BBox3
}

// glyphSolid flattens one glyph's path commands into outer/hole contour
// groups (by signed-area sign and bounding-box containment) and extrudes
// each group by depth.
func glyphSolid(cmds []font.PathCommand, depth float64) *kernel.Solid {
	subs := flattenContours(cmds)
	if len(subs) == 0 {
		return nil
	}

	used := make([]bool, len(subs))
	var solid *kernel.Solid
	for i, outer := range subs {
		if used[i] || outer.area <= 0 {
			continue
		}
		used[i] = true
		var holes [][]kernel.Vec3
		for j, cand := range subs {
			if used[j] || i == j {
				continue
			}
			if cand.area < 0 && bboxContains(outer.bbox, cand.bbox) {
				holes = append(holes, cand.pts)
				used[j] = true
			}
		}
		piece := kernel.ExtrudeContour(outer.pts, holes, 0, depth)
		if piece == nil {
			continue
		}
		if solid == nil {
			solid = piece
		} else {
			solid = kernel.Union(solid, piece)
		}
	}

	// Any contour never claimed as an outer (e.g. mis-signed fragments)
	// is still extruded standalone so no glyph ink is silently dropped.
	for i, c := range subs {
		if used[i] {
			continue
		}
		piece := kernel.ExtrudeContour(c.pts, nil, 0, depth)
		if piece == nil {
			continue
		}
		if solid == nil {
			solid = piece
		} else {
			solid = kernel.Union(solid, piece)
		}
	}
	return solid
}

func bboxContains(outer, inner kernel.BBox3) bool {
	return inner.Min.X >= outer.Min.X && inner.Max.X <= outer.Max.X &&
		inner.Min.Y >= outer.Min.Y && inner.Max.Y <= outer.Max.Y
}

// flattenContours splits path commands at M/Z boundaries and flattens Q
// segments into line segments, computing each subpath's signed area and
// bounding box for outer/hole classification.
func flattenContours(cmds []font.PathCommand) []glyphContour {
	var subs []glyphContour
	var cur []kernel.Vec3
	var curX, curY float64

	flush := func() {
		if len(cur) < 3 {
			cur = nil
			return
		}
		subs = append(subs, glyphContour{pts: cur, area: signedArea(cur), bbox: bboxOfPoints(cur)})
		cur = nil
	}

	for _, c := range cmds {
		switch c.Type {
		case 'M':
			flush()
			curX, curY = c.X, c.Y
			cur = append(cur, kernel.Vec3{X: curX, Y: curY})
		case 'L':
			curX, curY = c.X, c.Y
			cur = append(cur, kernel.Vec3{X: curX, Y: curY})
		case 'Q':
			cur = append(cur, flattenQuadratic(curX, curY, c.X1, c.Y1, c.X, c.Y)...)
			curX, curY = c.X, c.Y
		case 'Z':
			flush()
		}
	}
	flush()
	return subs
}

// vertexCollector adapts draw2d's line-segment tracer interface into a
// plain point slice.
type vertexCollector struct {
	pts []kernel.Vec3
}

func (c *vertexCollector) LineTo(x, y float64) {
	c.pts = append(c.pts, kernel.Vec3{X: x, Y: y})
}

// flattenQuadratic subdivides one on/off/on-curve quadratic segment into
// line segments via draw2d's adaptive curve tracer, replacing the fixed
// even subdivision a hand-rolled Bezier walk would need.
func flattenQuadratic(x0, y0, cx, cy, x1, y1 float64) []kernel.Vec3 {
	collector := &vertexCollector{}
	curve := draw2d.QuadCurveFloat64{X1: x0, Y1: y0, X2: cx, Y2: cy, X3: x1, Y3: y1}
	draw2d.TraceQuadratic(collector, &curve, flatteningThreshold)
	return collector.pts
}

func signedArea(pts []kernel.Vec3) float64 {
	sum := 0.0
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}

func bboxOfPoints(pts []kernel.Vec3) kernel.BBox3 {
	bb := kernel.EmptyBBox3()
	for _, p := range pts {
		bb = bb.Extend(p)
	}
	return bb
}

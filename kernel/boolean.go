package kernel

// Union returns the boolean union of a and b, re-planarized so the result
// exposes clean same-domain face/edge topology.
func Union(a, b *Solid) *Solid {
	return Planarize(csgUnion(a.Triangles(), b.Triangles()))
}

// Subtract returns a minus b.
func Subtract(a, b *Solid) *Solid {
	return Planarize(csgSubtract(a.Triangles(), b.Triangles()))
}

// Intersect returns the common volume of a and b.
func Intersect(a, b *Solid) *Solid {
	return Planarize(csgIntersect(a.Triangles(), b.Triangles()))
}

// SubtractMany subtracts every tool from a using a single batched boolean:
// a compound of all tools is built once and a is cut against it in one
// call, rather than one cut per tool.
func SubtractMany(a *Solid, tools []*Solid) *Solid {
	toolTris := make([][]Triangle3, len(tools))
	for i, t := range tools {
		toolTris[i] = t.Triangles()
	}
	return Planarize(csgSubtractMany(a.Triangles(), toolTris))
}

// Unify re-derives face/edge topology from a solid's own triangles, merging
// coplanar adjacent faces and collinear edges, so a subsequent fillet/
// chamfer sees clean topology after a union.
func Unify(s *Solid) *Solid {
	if s.Empty() {
		return s
	}
	return Planarize(s.Triangles())
}

// Compound concatenates solids into one unplanarized multi-body Solid,
// used by cad's Assembly.ToSTL to write every part as one mesh.
func Compound(parts ...*Solid) *Solid {
	var faces []Face
	for _, p := range parts {
		if p == nil {
			continue
		}
		faces = append(faces, p.Faces...)
	}
	return &Solid{Faces: faces, Edges: computeEdges(faces)}
}

// Move returns a new solid transformed by tr. When tr mirrors space
// (negative determinant, e.g. a reflected FromBasis), each triangle's
// winding is reversed so face normals stay outward.
func Move(s *Solid, tr Transform) *Solid {
	if s.Empty() {
		return s
	}
	ex, ey, ez := tr.ApplyDirection(Vec3{X: 1}), tr.ApplyDirection(Vec3{Y: 1}), tr.ApplyDirection(Vec3{Z: 1})
	mirrored := Dot(Cross(ex, ey), ez) < 0
	faces := make([]Face, len(s.Faces))
	for i, f := range s.Faces {
		tris := make([]Triangle3, len(f.Triangles))
		for j, t := range f.Triangles {
			tris[j] = t.Transform(tr)
			if mirrored {
				tris[j][1], tris[j][2] = tris[j][2], tris[j][1]
			}
		}
		nf := newFace(tris, f.Planar)
		faces[i] = nf
	}
	return NewSolid(faces)
}

// Package dxfexport exports a cutPattern layout (or a shape's top-face
// silhouette) as a 2D DXF, the common hand-off format to laser/CNC
// tooling.
package dxfexport

import (
	"github.com/yofu/dxf"

	"github.com/darrenoakey/daz-cad-sub000/cad"
	"github.com/darrenoakey/daz-cad-sub000/kernel"
)

// WriteLayout renders layout's face rectangle and every accepted cutter
// cell as line-segment rectangles in a DXF drawing written to path.
func WriteLayout(layout cad.Layout, path string) error {
	d := dxf.NewDrawing()

	drawRect(d, 0, 0, layout.FaceUSize, layout.FaceVSize)
	for _, c := range layout.Cells {
		drawRect(d, c.U, c.V, layout.CutterWidth, layout.CutterHeight)
	}

	return d.SaveAs(path)
}

func drawRect(d *dxf.Drawing, cx, cy, w, h float64) {
	x0, x1 := cx-w/2, cx+w/2
	y0, y1 := cy-h/2, cy+h/2
	d.Line(x0, y0, 0, x1, y0, 0)
	d.Line(x1, y0, 0, x1, y1, 0)
	d.Line(x1, y1, 0, x0, y1, 0)
	d.Line(x0, y1, 0, x0, y0, 0)
}

// WriteTopSilhouette selects s's maximum-Z faces and writes their
// boundary edges, projected onto xy, as a DXF silhouette.
func WriteTopSilhouette(s cad.Shape, path string) error {
	top := s.Faces(">z").Edges()
	d := dxf.NewDrawing()
	for _, e := range top.SelectedEdges() {
		half := kernel.Scale(e.Length/2, e.Direction)
		p1 := kernel.Sub(e.Midpoint, half)
		p2 := kernel.Add(e.Midpoint, half)
		d.Line(p1.X, p1.Y, 0, p2.X, p2.Y, 0)
	}
	return d.SaveAs(path)
}

// Package patternsvg renders a cutPattern layout to SVG for inspection:
// a 2D preview of the face-local cell grid, independent of the 3D cut.
package patternsvg

import (
	"bytes"

	svg "github.com/ajstarks/svgo"

	"github.com/darrenoakey/daz-cad-sub000/cad"
)

const (
	marginPx  = 20
	pxPerUnit = 10.0
)

// Render draws layout's face rectangle and every accepted cutter cell as
// an outline rectangle, scaled to fit a canvas with a fixed pixel margin.
func Render(layout cad.Layout) []byte {
	faceW := int(layout.FaceUSize * pxPerUnit)
	faceH := int(layout.FaceVSize * pxPerUnit)
	w := faceW + 2*marginPx
	h := faceH + 2*marginPx

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(w, h)

	cx, cy := w/2, h/2
	canvas.Rect(cx-faceW/2, cy-faceH/2, faceW, faceH, "fill:none;stroke:black")

	rw := intOrOne(layout.CutterWidth * pxPerUnit)
	rh := intOrOne(layout.CutterHeight * pxPerUnit)
	for _, c := range layout.Cells {
		px := cx + int(c.U*pxPerUnit) - rw/2
		py := cy - int(c.V*pxPerUnit) - rh/2
		canvas.Rect(px, py, rw, rh, "fill:none;stroke:red")
	}

	canvas.End()
	return buf.Bytes()
}

func intOrOne(v float64) int {
	n := int(v)
	if n < 1 {
		return 1
	}
	return n
}

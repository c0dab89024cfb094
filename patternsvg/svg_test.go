package patternsvg

import (
	"strings"
	"testing"

	"github.com/darrenoakey/daz-cad-sub000/cad"
	"github.com/stretchr/testify/assert"
)

func TestRenderProducesSVGDocument(t *testing.T) {
	layout := cad.Layout{
		FaceUSize:    40,
		FaceVSize:    40,
		CutterWidth:  3,
		CutterHeight: 3,
		Cells:        []cad.LayoutCell{{U: -5, V: -5}, {U: 5, V: 5}},
	}
	data := Render(layout)
	text := string(data)
	assert.True(t, strings.Contains(text, "<svg"))
	assert.Equal(t, 2, strings.Count(text, "stroke:red"), "expected one rect per cutter cell")
}

func TestIntOrOneClampsToMinimumOnePixel(t *testing.T) {
	assert.Equal(t, 1, intOrOne(0.2))
	assert.Equal(t, 5, intOrOne(5.9))
}

// Package font wraps golang/freetype's TrueType parser so cad.Text can
// turn glyphs into flattenable path commands without touching a rasterizer.
package font

import (
	"sync"

	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// PathCommand is one segment of a glyph outline, in the vocabulary
// outline data (M move, L line, Q quadratic curve, Z close).
type PathCommand struct {
	Type   byte
	X, Y   float64
	X1, Y1 float64
}

// Font wraps a parsed TrueType face.
type Font struct {
	ttf        *truetype.Font
	unitsPerEm float64
}

// UnitsPerEm returns the font's raw em-square size.
func (f *Font) UnitsPerEm() float64 { return f.unitsPerEm }

var (
	mu      sync.Mutex
	fonts   = map[string]*Font{}
	order   []string
)

// LoadFont parses TrueType bytes and registers them under name (or the
// font's own family name when name is empty). The first font loaded
// becomes the default returned by GetFont("").
func LoadFont(data []byte, name string) (string, error) {
	ttf, err := truetype.Parse(data)
	if err != nil {
		return "", err
	}
	if name == "" {
		name = ttf.Name(truetype.NameIDFontFamily)
	}
	if name == "" {
		name = "font"
	}
	f := &Font{ttf: ttf, unitsPerEm: float64(ttf.FUnitsPerEm())}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := fonts[name]; !exists {
		order = append(order, name)
	}
	fonts[name] = f
	return name, nil
}

// GetFont returns the font registered under name, or the default (first
// loaded) font when name is empty.
func GetFont(name string) (*Font, bool) {
	mu.Lock()
	defer mu.Unlock()
	if name == "" {
		if len(order) == 0 {
			return nil, false
		}
		name = order[0]
	}
	f, ok := fonts[name]
	return f, ok
}

const onCurve = 1 << 0

// Advance returns r's advance width at the given em size.
func (f *Font) Advance(r rune, sizeInUnits float64) float64 {
	idx := f.ttf.Index(r)
	scale := fixed.Int26_6(sizeInUnits * 64)
	return float64(f.ttf.HMetric(scale, idx).AdvanceWidth) / 64
}

// GetPath traces r's outline with its origin at (x,y), scaled so the em
// square maps to sizeInUnits, as a sequence of M/L/Q/Z path commands.
func (f *Font) GetPath(r rune, x, y, sizeInUnits float64) []PathCommand {
	scale := fixed.Int26_6(sizeInUnits * 64)
	idx := f.ttf.Index(r)

	var buf truetype.GlyphBuf
	if err := buf.Load(f.ttf, scale, idx, xfont.HintingNone); err != nil {
		return nil
	}

	var cmds []PathCommand
	start := 0
	for _, end := range buf.End {
		cmds = append(cmds, contourCommands(buf.Point[start:end], x, y)...)
		start = end
	}
	return cmds
}

func glyphPoint(p truetype.Point, ox, oy float64) (float64, float64) {
	return ox + float64(p.X)/64, oy + float64(p.Y)/64
}

// contourCommands reconstructs one TrueType contour (quadratic on/off
// curve points, implied on-curve midpoints between consecutive off-curve
// points) as M/L/Q/Z path commands.
func contourCommands(points []truetype.Point, ox, oy float64) []PathCommand {
	n := len(points)
	if n == 0 {
		return nil
	}

	startIdx := -1
	for i, p := range points {
		if p.Flags&onCurve != 0 {
			startIdx = i
			break
		}
	}

	var startX, startY float64
	if startIdx == -1 {
		x0, y0 := glyphPoint(points[0], ox, oy)
		x1, y1 := glyphPoint(points[n-1], ox, oy)
		startX, startY = (x0+x1)/2, (y0+y1)/2
		startIdx = 0
	} else {
		startX, startY = glyphPoint(points[startIdx], ox, oy)
	}

	cmds := []PathCommand{{Type: 'M', X: startX, Y: startY}}
	var pendingX, pendingY float64
	hasPending := false

	emit := func(p truetype.Point) {
		px, py := glyphPoint(p, ox, oy)
		if p.Flags&onCurve != 0 {
			if hasPending {
				cmds = append(cmds, PathCommand{Type: 'Q', X1: pendingX, Y1: pendingY, X: px, Y: py})
				hasPending = false
			} else {
				cmds = append(cmds, PathCommand{Type: 'L', X: px, Y: py})
			}
			return
		}
		if hasPending {
			midX, midY := (pendingX+px)/2, (pendingY+py)/2
			cmds = append(cmds, PathCommand{Type: 'Q', X1: pendingX, Y1: pendingY, X: midX, Y: midY})
		}
		pendingX, pendingY = px, py
		hasPending = true
	}

	for i := 1; i <= n; i++ {
		emit(points[(startIdx+i)%n])
	}
	if hasPending {
		cmds = append(cmds, PathCommand{Type: 'Q', X1: pendingX, Y1: pendingY, X: startX, Y: startY})
	}
	cmds = append(cmds, PathCommand{Type: 'Z'})
	return cmds
}

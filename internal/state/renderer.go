package state

import (
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

const miterLimit = 4

// Renderer strokes straight segments onto a surface. It keeps only the
// current pen position; finished segments are never revisited.
type Renderer struct {
	surface *Surface
	stroker *rasterx.Stroker
	cur     Point
	open    bool
	// last is the most recent color that parsed; invalid color strings
	// keep using it.
	last     color.Color
	segments int
}

func NewRenderer(surface *Surface) *Renderer {
	b := surface.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), surface.Image(), b)
	return &Renderer{
		surface: surface,
		stroker: rasterx.NewStroker(b.Dx(), b.Dy(), scanner),
		last:    color.Black,
	}
}

// BeginPath moves the pen to p without marking the surface.
func (r *Renderer) BeginPath(p Point) {
	r.cur = p
	r.open = true
	r.segments = 0
}

// LineTo strokes from the current position to p with tool, then advances.
// It does nothing when no path is open.
func (r *Renderer) LineTo(p Point, tool Tool) {
	if !r.open {
		return
	}
	width := tool.LineWidth
	if width < 1 {
		width = 1
	}

	r.stroker.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(miterLimit*64),
		rasterx.RoundCap, nil, nil, rasterx.Round)
	r.stroker.Start(rasterx.ToFixedP(r.cur.X, r.cur.Y))
	r.stroker.Line(rasterx.ToFixedP(p.X, p.Y))
	r.stroker.Stop(false)
	r.stroker.SetColor(r.strokeColor(tool))
	r.stroker.Draw()
	r.stroker.Clear()

	r.cur = p
	r.segments++
}

// ClosePath ends the current path and returns how many segments it had.
func (r *Renderer) ClosePath() int {
	n := r.segments
	r.open = false
	r.segments = 0
	return n
}

func (r *Renderer) strokeColor(tool Tool) color.Color {
	if tool.Eraser {
		return r.surface.Background()
	}
	if c, ok := ParseColor(tool.Color); ok {
		r.last = c
	}
	return r.last
}

package state

import "image/color"

// Point is a surface-local coordinate; the origin is the top-left pixel corner.
type Point struct{ X, Y float64 }

// Pen types offered by the pen selector.
const (
	PenPen    = "Pen"
	PenPencil = "Pencil"
	PenMarker = "Marker"
	PenFill   = "Fill"
)

const (
	DefaultColor     = "black"
	DefaultLineWidth = 2
)

// PenKinds lists the selector entries in display order.
var PenKinds = []string{PenPen, PenPencil, PenMarker, PenFill}

// LineWidthFor maps a pen type to its stroke width. Unknown kinds get the
// default width. "Fill" is only a thick pen.
func LineWidthFor(kind string) int {
	switch kind {
	case PenPen:
		return 1
	case PenPencil:
		return 2
	case PenMarker:
		return 5
	case PenFill, "fill":
		return 10
	default:
		return DefaultLineWidth
	}
}

// Tool is a point-in-time copy of the tool state, read by the renderer once
// per segment.
type Tool struct {
	Color     string
	LineWidth int
	Eraser    bool
}

// Palette is the set of swatches the toolbar shows.
var Palette = []color.NRGBA{
	{A: 255},                         // black
	{R: 255, A: 255},                 // red
	{G: 128, A: 255},                 // green
	{B: 255, A: 255},                 // blue
	{R: 255, G: 255, A: 255},         // yellow
	{R: 255, G: 165, A: 255},         // orange
	{R: 128, B: 128, A: 255},         // purple
	{R: 255, G: 255, B: 255, A: 255}, // white
}

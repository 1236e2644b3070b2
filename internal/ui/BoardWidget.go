package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/input"
	"LocalPaint/internal/state"
)

// touchID is the contact id used for fyne touches; fyne reports a single
// contact per widget.
const touchID = 0

// BoardWidget shows the session's surface and feeds mouse and touch input
// into the session through an input.Router.
type BoardWidget struct {
	widget.BaseWidget

	Session *state.Session
	Router  *input.Router

	touching bool
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)

// NewBoardWidget shows s and routes its mouse and touch events into src,
// normally one source of the app's input.Arbiter.
func NewBoardWidget(s *state.Session, src input.Sink) *BoardWidget {
	b := &BoardWidget{
		Session: s,
		Router:  input.NewRouter(src),
	}
	b.ExtendBaseWidget(b)
	return b
}

// toSurface converts a widget-local position in fyne units to surface
// pixels.
func (b *BoardWidget) toSurface(p fyne.Position) input.Pos {
	scale := float32(1)
	if app := fyne.CurrentApp(); app != nil {
		if c := app.Driver().CanvasForObject(b); c != nil {
			scale = c.Scale()
		}
	}
	return input.Pos{X: float64(p.X * scale), Y: float64(p.Y * scale)}
}

// origin is the widget's absolute position, used to localize touch
// coordinates.
func (b *BoardWidget) origin() input.Pos {
	app := fyne.CurrentApp()
	if app == nil {
		return input.Pos{}
	}
	return b.toSurface(app.Driver().AbsolutePositionForObject(b))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.Router.PointerDown(b.toSurface(e.Position), input.Pos{})
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.Router.PointerUp()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.Router.PointerMove(b.toSurface(e.Position), input.Pos{})
}

func (b *BoardWidget) MouseOut() {
	b.Router.PointerLeave()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.touching {
		// fyne hands the drag to the innermost Draggable, so the enclosing
		// scroll container never sees it and there is no gesture to suppress.
		b.Router.TouchMove(touchID, b.toSurface(e.AbsolutePosition), b.origin())
		return
	}
	b.Router.PointerMove(b.toSurface(e.Position), input.Pos{})
}

func (b *BoardWidget) DragEnd() {
	if b.touching {
		return
	}
	b.Router.PointerUp()
}

func (b *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	b.touching = true
	b.Router.TouchStart(touchID, b.toSurface(e.AbsolutePosition), b.origin())
}

func (b *BoardWidget) TouchUp(*mobile.TouchEvent) {
	b.touching = false
	b.Router.TouchEnd(touchID)
}

func (b *BoardWidget) TouchCancel(*mobile.TouchEvent) {
	b.touching = false
	b.Router.TouchCancel(touchID)
}

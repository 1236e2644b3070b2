// Package input turns mouse, touch and remote pointer events into the
// begin/move/end signals a drawing session understands.
package input

import "sync"

// Sink receives normalized, surface-local stroke signals.
type Sink interface {
	Begin(x, y float64)
	Move(x, y float64)
	End()
}

// Pos is a raw device coordinate or a surface origin in the same space.
type Pos struct{ X, Y float64 }

// Local converts raw to surface-local coordinates given the surface's
// top-left origin.
func Local(raw, origin Pos) (float64, float64) {
	return raw.X - origin.X, raw.Y - origin.Y
}

const noTouch = -1

// Router tracks which source owns the current stroke. Only one stroke is
// in flight at a time: either the mouse or the first touch contact.
type Router struct {
	sink Sink

	mu      sync.Mutex
	pointer bool
	touch   int
}

func NewRouter(sink Sink) *Router {
	return &Router{sink: sink, touch: noTouch}
}

// PointerDown begins a stroke at the pointer position.
func (r *Router) PointerDown(raw, origin Pos) {
	r.mu.Lock()
	r.pointer = true
	r.mu.Unlock()

	r.sink.Begin(Local(raw, origin))
}

// PointerMove forwards a move; the sink drops it when no stroke is active.
func (r *Router) PointerMove(raw, origin Pos) {
	r.sink.Move(Local(raw, origin))
}

// PointerUp ends the pointer's stroke.
func (r *Router) PointerUp() {
	r.endPointer()
}

// PointerLeave ends the pointer's stroke when it leaves the surface.
func (r *Router) PointerLeave() {
	r.endPointer()
}

func (r *Router) endPointer() {
	r.mu.Lock()
	active := r.pointer
	r.pointer = false
	r.mu.Unlock()

	if active {
		r.sink.End()
	}
}

// TouchStart begins a stroke for contact id unless another contact already
// owns one.
func (r *Router) TouchStart(id int, raw, origin Pos) {
	r.mu.Lock()
	if r.touch != noTouch {
		r.mu.Unlock()
		return
	}
	r.touch = id
	r.mu.Unlock()

	r.sink.Begin(Local(raw, origin))
}

// TouchMove forwards a move for the tracked contact. It returns true when
// the host should suppress its default scroll or zoom gesture.
func (r *Router) TouchMove(id int, raw, origin Pos) bool {
	r.mu.Lock()
	tracked := r.touch == id
	r.mu.Unlock()

	if !tracked {
		return false
	}
	r.sink.Move(Local(raw, origin))
	return true
}

// TouchEnd ends the stroke when the tracked contact lifts.
func (r *Router) TouchEnd(id int) {
	r.endTouch(id)
}

// TouchCancel ends the stroke when the host aborts the tracked contact.
func (r *Router) TouchCancel(id int) {
	r.endTouch(id)
}

// Reset ends whatever stroke is in flight, for sources that vanish
// mid-gesture.
func (r *Router) Reset() {
	r.mu.Lock()
	active := r.pointer || r.touch != noTouch
	r.pointer = false
	r.touch = noTouch
	r.mu.Unlock()

	if active {
		r.sink.End()
	}
}

func (r *Router) endTouch(id int) {
	r.mu.Lock()
	if r.touch != id {
		r.mu.Unlock()
		return
	}
	r.touch = noTouch
	r.mu.Unlock()

	r.sink.End()
}

package state

import (
	"image"
	"log"
	"sync"
)

// Saver persists a full snapshot of the surface. It never fails from the
// session's point of view.
type Saver interface {
	Save(img image.Image)
}

// Loader restores a previously saved snapshot. It must not block: the
// decoded image is handed to apply later, possibly after strokes have
// already been drawn.
type Loader interface {
	Load(apply func(img image.Image))
}

// Session is one drawing session: the surface, the tool state and the
// drawing-active flag that gates the renderer.
//
//	Idle --Begin--> Drawing --Move*--> Drawing --End--> Idle
//
// Clear is only accepted while Idle.
type Session struct {
	ID    string
	Tools *ToolState

	// OnChange is called after the surface pixels changed.
	OnChange func()

	mu       sync.Mutex
	surface  *Surface
	renderer *Renderer
	drawing  bool
	clock    Clock
	strokeID string
	saver    Saver

	restoreOnce sync.Once
}

// NewSession creates a session painting on surface and saving through saver.
// A nil saver disables persistence.
func NewSession(surface *Surface, saver Saver) *Session {
	return &Session{
		ID:       newSessionID(),
		Tools:    NewToolState(),
		surface:  surface,
		renderer: NewRenderer(surface),
		saver:    saver,
	}
}

// Begin starts a stroke at (x, y). Nothing is painted until the first Move.
func (s *Session) Begin(x, y float64) {
	s.mu.Lock()
	s.drawing = true
	s.strokeID = strokeID(s.ID, s.clock.Tick())
	s.renderer.BeginPath(Point{X: x, Y: y})
	s.mu.Unlock()
}

// Move paints a segment to (x, y) with the tool as it is right now. Moves
// outside a stroke are ignored.
func (s *Session) Move(x, y float64) {
	s.mu.Lock()
	if !s.drawing {
		s.mu.Unlock()
		return
	}
	s.renderer.LineTo(Point{X: x, Y: y}, s.Tools.Current())
	s.mu.Unlock()

	s.changed()
}

// End finishes the stroke and saves the surface.
func (s *Session) End() {
	s.mu.Lock()
	s.drawing = false
	segments := s.renderer.ClosePath()
	id := s.strokeID
	s.strokeID = ""
	s.mu.Unlock()

	if id != "" {
		log.Printf("[SESSION] Stroke %s finished with %d segments", id, segments)
	}
	s.save()
}

// Clear resets the surface to the background and saves it. It is refused
// while a stroke is in progress.
func (s *Session) Clear() bool {
	s.mu.Lock()
	if s.drawing {
		s.mu.Unlock()
		log.Println("[SESSION] Clear ignored while drawing.")
		return false
	}
	s.surface.Clear()
	s.mu.Unlock()

	s.changed()
	s.save()
	return true
}

// Drawing reports whether a stroke is active.
func (s *Session) Drawing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawing
}

// Snapshot copies the current surface pixels.
func (s *Session) Snapshot() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surface.Snapshot()
}

// Paint composites img over the surface at the origin. It is the apply step
// of a restore and does not trigger a save.
func (s *Session) Paint(img image.Image) {
	s.mu.Lock()
	s.surface.DrawImage(img)
	s.mu.Unlock()

	s.changed()
}

// Restore asks loader for the saved snapshot. Only the first call has any
// effect.
func (s *Session) Restore(loader Loader) {
	if loader == nil {
		return
	}
	s.restoreOnce.Do(func() {
		loader.Load(s.Paint)
	})
}

// View calls fn with the live surface image while holding the session lock.
func (s *Session) View(fn func(img *image.RGBA)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.surface.Image())
}

func (s *Session) save() {
	if s.saver == nil {
		return
	}
	s.saver.Save(s.Snapshot())
}

func (s *Session) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}

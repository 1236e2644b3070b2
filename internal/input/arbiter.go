package input

import "sync"

// Arbiter lets several input sources share one sink while only one of them
// owns the stroke. A source that begins while another is drawing is ignored
// until the owner ends.
type Arbiter struct {
	sink Sink

	mu    sync.Mutex
	owner *Source
}

func NewArbiter(sink Sink) *Arbiter {
	return &Arbiter{sink: sink}
}

// Source returns a new sink that competes for stroke ownership.
func (a *Arbiter) Source() *Source {
	return &Source{arbiter: a}
}

// Source is one device's view of an Arbiter.
type Source struct {
	arbiter *Arbiter
}

func (s *Source) Begin(x, y float64) {
	a := s.arbiter
	a.mu.Lock()
	if a.owner != nil && a.owner != s {
		a.mu.Unlock()
		return
	}
	a.owner = s
	a.mu.Unlock()

	a.sink.Begin(x, y)
}

func (s *Source) Move(x, y float64) {
	if !s.owns() {
		return
	}
	s.arbiter.sink.Move(x, y)
}

func (s *Source) End() {
	a := s.arbiter
	a.mu.Lock()
	if a.owner != s {
		a.mu.Unlock()
		return
	}
	a.owner = nil
	a.mu.Unlock()

	a.sink.End()
}

func (s *Source) owns() bool {
	s.arbiter.mu.Lock()
	defer s.arbiter.mu.Unlock()
	return s.arbiter.owner == s
}

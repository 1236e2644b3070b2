package input

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	events []string
}

func (s *recordingSink) Begin(x, y float64) { s.events = append(s.events, fmt.Sprintf("begin %.0f,%.0f", x, y)) }
func (s *recordingSink) Move(x, y float64)  { s.events = append(s.events, fmt.Sprintf("move %.0f,%.0f", x, y)) }
func (s *recordingSink) End()               { s.events = append(s.events, "end") }

func TestPointerCoordinatesAreSurfaceLocal(t *testing.T) {
	sink := &recordingSink{}
	r := NewRouter(sink)
	origin := Pos{X: 100, Y: 50}

	r.PointerDown(Pos{X: 110, Y: 60}, origin)
	r.PointerMove(Pos{X: 150, Y: 60}, origin)
	r.PointerUp()

	require.Equal(t, []string{"begin 10,10", "move 50,10", "end"}, sink.events)
}

func TestPointerUpAndLeaveEndOnce(t *testing.T) {
	sink := &recordingSink{}
	r := NewRouter(sink)

	r.PointerDown(Pos{X: 1, Y: 1}, Pos{})
	r.PointerLeave()
	r.PointerUp()
	r.PointerLeave()

	require.Equal(t, []string{"begin 1,1", "end"}, sink.events)
}

func TestPointerLeaveWithoutStrokeIsSilent(t *testing.T) {
	sink := &recordingSink{}
	r := NewRouter(sink)

	r.PointerLeave()
	r.PointerUp()

	require.Empty(t, sink.events)
}

func TestPointerMoveIsForwardedWhileIdle(t *testing.T) {
	sink := &recordingSink{}
	r := NewRouter(sink)

	r.PointerMove(Pos{X: 3, Y: 4}, Pos{})

	require.Equal(t, []string{"move 3,4"}, sink.events)
}

func TestOnlyFirstTouchIsTracked(t *testing.T) {
	sink := &recordingSink{}
	r := NewRouter(sink)
	origin := Pos{X: 10, Y: 20}

	r.TouchStart(1, Pos{X: 15, Y: 25}, origin)
	r.TouchStart(2, Pos{X: 90, Y: 90}, origin)
	require.True(t, r.TouchMove(1, Pos{X: 15, Y: 40}, origin))
	require.False(t, r.TouchMove(2, Pos{X: 95, Y: 95}, origin))
	r.TouchEnd(2)
	r.TouchEnd(1)
	require.False(t, r.TouchMove(1, Pos{X: 15, Y: 50}, origin))

	require.Equal(t, []string{"begin 5,5", "move 5,20", "end"}, sink.events)
}

func TestTouchCancelEndsStroke(t *testing.T) {
	sink := &recordingSink{}
	r := NewRouter(sink)

	r.TouchStart(7, Pos{X: 1, Y: 2}, Pos{})
	r.TouchCancel(7)
	r.TouchStart(8, Pos{X: 3, Y: 4}, Pos{})

	require.Equal(t, []string{"begin 1,2", "end", "begin 3,4"}, sink.events)
}

func TestResetEndsActiveStrokeOnly(t *testing.T) {
	sink := &recordingSink{}
	r := NewRouter(sink)

	r.Reset()
	r.TouchStart(3, Pos{X: 2, Y: 2}, Pos{})
	r.Reset()
	r.TouchEnd(3)
	r.PointerDown(Pos{X: 4, Y: 4}, Pos{})
	r.Reset()
	r.PointerUp()

	require.Equal(t, []string{"begin 2,2", "end", "begin 4,4", "end"}, sink.events)
}

func TestArbiterKeepsStrokeWithFirstSource(t *testing.T) {
	sink := &recordingSink{}
	a := NewArbiter(sink)
	mouse := NewRouter(a.Source())
	remote := NewRouter(a.Source())

	mouse.PointerDown(Pos{X: 5, Y: 5}, Pos{})
	remote.PointerDown(Pos{X: 60, Y: 60}, Pos{})
	remote.PointerMove(Pos{X: 70, Y: 60}, Pos{})
	remote.PointerUp()
	mouse.PointerMove(Pos{X: 5, Y: 40}, Pos{})
	mouse.PointerUp()

	require.Equal(t, []string{"begin 5,5", "move 5,40", "end"}, sink.events)
}

func TestArbiterReleasesOwnershipOnEnd(t *testing.T) {
	sink := &recordingSink{}
	a := NewArbiter(sink)
	mouse := NewRouter(a.Source())
	remote := NewRouter(a.Source())

	mouse.PointerDown(Pos{X: 1, Y: 1}, Pos{})
	mouse.PointerUp()
	remote.TouchStart(3, Pos{X: 2, Y: 2}, Pos{})
	mouse.PointerMove(Pos{X: 9, Y: 9}, Pos{})
	remote.Reset()

	require.Equal(t, []string{"begin 1,1", "end", "begin 2,2", "end"}, sink.events)
}

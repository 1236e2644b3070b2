package state

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Clock is a per-session counter used to number strokes.
type Clock struct {
	counter int64
	mu      sync.Mutex
}

// Tick increments the clock and returns the new value
func (c *Clock) Tick() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counter++
	return c.counter
}

func newSessionID() string {
	return uuid.NewString()
}

// strokeID formats "stroke-<short session>-<tick>" for log lines.
func strokeID(sessionID string, tick int64) string {
	short := sessionID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("stroke-%s-%d", short, tick)
}

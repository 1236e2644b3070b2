package state

import (
	"log"
	"sync"
)

// ToolState holds the selected color, line width and eraser flag. UI
// controls write it at any time; the renderer reads it per segment.
type ToolState struct {
	mu        sync.RWMutex
	color     string
	lineWidth int
	eraser    bool
}

func NewToolState() *ToolState {
	return &ToolState{
		color:     DefaultColor,
		lineWidth: DefaultLineWidth,
	}
}

// SelectPen sets the line width for kind and turns the eraser off.
func (t *ToolState) SelectPen(kind string) {
	t.mu.Lock()
	t.eraser = false
	t.lineWidth = LineWidthFor(kind)
	width := t.lineWidth
	t.mu.Unlock()

	log.Printf("[TOOLS] Selected pen: %s with line width: %d", kind, width)
}

// SelectColor stores value verbatim and turns the eraser off. The string is
// only interpreted when a segment is drawn.
func (t *ToolState) SelectColor(value string) {
	t.mu.Lock()
	t.color = value
	t.eraser = false
	t.mu.Unlock()

	log.Printf("[TOOLS] Selected color: %s", value)
}

// SelectEraser turns the eraser on; color and width are kept so that picking
// a pen or color afterwards restores them.
func (t *ToolState) SelectEraser() {
	t.mu.Lock()
	t.eraser = true
	t.mu.Unlock()

	log.Println("[TOOLS] Eraser selected.")
}

func (t *ToolState) Current() Tool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Tool{Color: t.color, LineWidth: t.lineWidth, Eraser: t.eraser}
}

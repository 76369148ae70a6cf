//go:build !tinygo

package hal

type hostPointer struct {
	ch chan TouchEvent

	// last press, for suppressing repeats while a button is held still
	held  bool
	lastX int
	lastY int
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan TouchEvent, 64)}
}

func (p *hostPointer) Events() <-chan TouchEvent { return p.ch }

// press records a touch at (x, y). Events are dropped when the queue is full.
func (p *hostPointer) press(x, y int) {
	if p.held && x == p.lastX && y == p.lastY {
		return
	}
	p.held = true
	p.lastX, p.lastY = x, y
	select {
	case p.ch <- TouchEvent{X: x, Y: y}:
	default:
	}
}

func (p *hostPointer) release() {
	p.held = false
}

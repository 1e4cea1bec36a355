package app

import mandel "github.com/marben/mandelzoom"

// Pointer turns absolute cursor positions polled every tick into
// PointerMoved events. The first position only records where the cursor
// is, so a window opening under a resting cursor does not yank the
// selection there.
type Pointer struct {
	x, y   int
	seeded bool
}

// Move reports whether (x, y) differs from the last polled position.
func (p *Pointer) Move(x, y int) (mandel.Event, bool) {
	if !p.seeded {
		p.x, p.y, p.seeded = x, y, true
		return mandel.Event{}, false
	}
	if x == p.x && y == p.y {
		return mandel.Event{}, false
	}
	p.x, p.y = x, y
	return mandel.PointerMoved(x, y), true
}

package term

import (
	"context"
	"io"

	uv "github.com/charmbracelet/ultraviolet"

	mandel "github.com/marben/mandelzoom"
)

// Reader turns raw-mode terminal input into explorer events. Sequences split
// across reads are put back together; a lone ESC only counts as a key once
// nothing follows it within the escape timeout.
type Reader struct {
	tr          *uv.TerminalReader
	cellToPixel func(col, row int) (x, y int)
}

// NewReader reads from r. termType is the value of $TERM. cellToPixel maps
// the 0-based cell of a mouse report to a frame pixel.
func NewReader(r io.Reader, termType string, cellToPixel func(col, row int) (x, y int)) *Reader {
	return &Reader{
		tr:          uv.NewTerminalReader(r, termType),
		cellToPixel: cellToPixel,
	}
}

// Stream calls push for every event until the input ends, which returns nil,
// or ctx is done.
func (r *Reader) Stream(ctx context.Context, push func(...mandel.Event)) error {
	eventc := make(chan uv.Event)
	errc := make(chan error, 1)
	go func() {
		errc <- r.tr.StreamEvents(ctx, eventc)
	}()

	for {
		select {
		case ev := <-eventc:
			if evt, ok := r.translate(ev); ok {
				push(evt)
			}
		case err := <-errc:
			// Everything buffered was sent on eventc before this.
			if err != nil {
				return err
			}
			return ctx.Err()
		}
	}
}

// translate maps one decoded input event. Wheel scrolling, focus reports
// and the like carry no event.
func (r *Reader) translate(ev uv.Event) (mandel.Event, bool) {
	switch ev := ev.(type) {
	case uv.KeyPressEvent:
		return mandel.KeyPressed(explorerKey(ev.Key())), true
	case uv.MouseMotionEvent:
		return r.pointer(uv.Mouse(ev)), true
	case uv.MouseClickEvent:
		return r.pointer(uv.Mouse(ev)), true
	case uv.MouseReleaseEvent:
		return r.pointer(uv.Mouse(ev)), true
	}
	return mandel.Event{}, false
}

func (r *Reader) pointer(m uv.Mouse) mandel.Event {
	return mandel.PointerMoved(r.cellToPixel(m.X, m.Y))
}

func explorerKey(k uv.Key) mandel.Key {
	switch {
	case k.Code == uv.KeyUp || k.Text == "k":
		return mandel.KeyUp
	case k.Code == uv.KeyDown || k.Text == "j":
		return mandel.KeyDown
	case k.Code == uv.KeyLeft || k.Text == "h":
		return mandel.KeyLeft
	case k.Code == uv.KeyRight || k.Text == "l":
		return mandel.KeyRight
	case k.Code == uv.KeySpace || k.Code == uv.KeyEnter:
		return mandel.KeyConfirm
	case k.Code == uv.KeyEscape,
		k.Code == 'c' && k.Mod == uv.ModCtrl,
		k.Text == "q" || k.Text == "Q":
		return mandel.KeyQuit
	case k.Text == "r" || k.Text == "R":
		return mandel.KeyReset
	}
	if len(k.Text) == 1 && k.Text[0] >= '1' && k.Text[0] <= '6' {
		return mandel.KeyLandmark1 + mandel.Key(k.Text[0]-'1')
	}
	return mandel.KeyUnknown
}

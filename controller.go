package mandel

// Invalidator is notified whenever the viewport changes and the frame has to
// be recomputed.
type Invalidator interface {
	Invalidate()
}

// Controller applies input events to a viewport and a selection. It never
// touches pixels; it only tells the Invalidator that the view changed.
type Controller struct {
	vp          *Viewport
	sel         *Selection
	inv         Invalidator
	panFraction float64
	home        Region
}

// NewController binds events to vp and sel. The region vp shows now is the
// one KeyReset returns to.
func NewController(vp *Viewport, sel *Selection, inv Invalidator, panFraction float64) *Controller {
	return &Controller{
		vp:          vp,
		sel:         sel,
		inv:         inv,
		panFraction: panFraction,
		home:        vp.Region(),
	}
}

// Handle applies a single event and reports whether the session should end.
func (c *Controller) Handle(e Event) (quit bool) {
	switch e.Kind {
	case EventQuit:
		return true
	case EventPointerMoved:
		c.sel.MoveTo(e.X, e.Y)
	case EventKeyPressed:
		return c.key(e.Key)
	}
	return false
}

// HandleAll drains events in order. Events after a quit are dropped.
func (c *Controller) HandleAll(events []Event) (quit bool) {
	for i, e := range events {
		if c.Handle(e) {
			if rest := len(events) - i - 1; rest > 0 {
				Logger().Debug("dropping events after quit", "count", rest)
			}
			return true
		}
	}
	return false
}

func (c *Controller) key(k Key) bool {
	switch k {
	case KeyLeft:
		c.pan(Left)
	case KeyRight:
		c.pan(Right)
	case KeyUp:
		c.pan(Up)
	case KeyDown:
		c.pan(Down)
	case KeyConfirm:
		c.zoom(c.sel.Region(c.vp))
	case KeyReset:
		c.zoom(c.home)
	case KeyLandmark1, KeyLandmark2, KeyLandmark3, KeyLandmark4, KeyLandmark5, KeyLandmark6:
		i := int(k - KeyLandmark1)
		if i < len(Landmarks) {
			c.zoom(Landmarks[i].Region)
		}
	case KeyQuit:
		return true
	}
	return false
}

func (c *Controller) pan(d Direction) {
	c.vp.Pan(d, c.panFraction)
	c.inv.Invalidate()
}

func (c *Controller) zoom(r Region) {
	c.vp.ZoomTo(r)
	c.inv.Invalidate()
}

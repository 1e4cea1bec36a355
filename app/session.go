// Package app wires the viewport, selection, controller and renderer into a
// single-threaded session that frontends drive.
package app

import (
	"context"
	"fmt"

	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/config"
	"github.com/marben/mandelzoom/render"
)

// Session is one explorer: one viewport, one selection, one frame buffer.
// All methods must be called from the same goroutine.
type Session struct {
	Viewport   *mandel.Viewport
	Selection  *mandel.Selection
	Controller *mandel.Controller
	Renderer   *render.Renderer
}

// New builds a session from cfg. Errors are initialisation failures.
func New(cfg config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	vp, err := mandel.NewViewport(cfg.Width, cfg.Height, cfg.Region.Plane())
	if err != nil {
		return nil, fmt.Errorf("viewport: %w", err)
	}
	palette, err := render.ParsePalette(cfg.Palette)
	if err != nil {
		return nil, err
	}
	r, err := render.New(vp, cfg.MaxIter, palette)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	sel := mandel.NewSelection(cfg.SelectionSize(), cfg.Width/2, cfg.Height/2)

	return &Session{
		Viewport:   vp,
		Selection:  sel,
		Controller: mandel.NewController(vp, sel, r, cfg.PanFraction),
		Renderer:   r,
	}, nil
}

// Step applies events in order and then produces the frame to present,
// recomputing it only if one of the events changed the view.
func (s *Session) Step(events []mandel.Event) (f mandel.Frame, quit bool) {
	if s.Controller.HandleAll(events) {
		return mandel.Frame{}, true
	}
	return s.Frame(), false
}

// Frame returns the current frame without applying any input.
func (s *Session) Frame() mandel.Frame {
	img, fresh := s.Renderer.Frame()
	return mandel.Frame{
		Image:     img,
		Fresh:     fresh,
		Selection: s.Selection.Rect(),
		Region:    s.Viewport.Region(),
		MaxIter:   s.Renderer.MaxIter(),
	}
}

// Source is an EventSource that can signal when events are pending.
type Source interface {
	mandel.EventSource
	Ready() <-chan struct{}
}

// Run presents the initial frame and then alternates between draining src
// and presenting until a quit event arrives or ctx is done. Both end the
// loop without error.
func (s *Session) Run(ctx context.Context, src Source, p mandel.Presenter) error {
	if err := p.Present(s.Frame()); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			mandel.Logger().Debug("session stopped", "cause", context.Cause(ctx))
			return nil
		case <-src.Ready():
		}

		f, quit := s.Step(src.PollEvents())
		if quit {
			mandel.Logger().Info("session quit")
			return nil
		}
		if err := p.Present(f); err != nil {
			return fmt.Errorf("present: %w", err)
		}
	}
}

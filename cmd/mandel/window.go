package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/cobra"

	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/app"
	"github.com/marben/mandelzoom/render"
)

func windowCmd(opts *options) *cobra.Command {
	var hud bool
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Explore in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			s, err := app.New(cfg)
			if err != nil {
				return err
			}

			ebiten.SetWindowSize(cfg.Width, cfg.Height)
			ebiten.SetWindowTitle("mandel")
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
			ebiten.SetVsyncEnabled(true)

			g := newWindowGame(s, cfg.Width, cfg.Height, hud)
			if err := ebiten.RunGame(g); err != nil {
				return fmt.Errorf("window: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&hud, "hud", true, "Show the current region in the corner")
	return cmd
}

// windowGame adapts a Session to ebiten's Update/Draw loop: Update drains
// input and recomputes if needed, Draw uploads fresh pixels and outlines the
// selection every frame.
type windowGame struct {
	session       *app.Session
	width, height int
	hud           bool

	canvas *ebiten.Image
	frame  mandel.Frame
	upload bool

	pointer app.Pointer
	keys    []ebiten.Key
}

var _ mandel.EventSource = (*windowGame)(nil)

func newWindowGame(s *app.Session, width, height int, hud bool) *windowGame {
	return &windowGame{
		session: s,
		width:   width,
		height:  height,
		hud:     hud,
		canvas:  ebiten.NewImage(width, height),
	}
}

// PollEvents reports pointer motion and the keys pressed this tick.
func (g *windowGame) PollEvents() []mandel.Event {
	var events []mandel.Event
	if evt, ok := g.pointer.Move(ebiten.CursorPosition()); ok {
		events = append(events, evt)
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		events = append(events, mandel.KeyPressed(windowKey(k)))
	}
	return events
}

func (g *windowGame) Update() error {
	f, quit := g.session.Step(g.PollEvents())
	if quit {
		return ebiten.Termination
	}
	g.frame = f
	// Several Updates may run between two Draws.
	g.upload = g.upload || f.Fresh
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	if g.frame.Image == nil {
		return
	}
	if g.upload {
		g.canvas.WritePixels(g.frame.Image.Pix)
		g.upload = false
	}
	screen.DrawImage(g.canvas, nil)

	sel := g.frame.Selection
	vector.StrokeRect(screen,
		float32(sel.Min.X)+0.5, float32(sel.Min.Y)+0.5,
		float32(sel.Dx()-1), float32(sel.Dy()-1),
		1, render.SelectionColor, false)

	if g.hud {
		ebitenutil.DebugPrint(screen, render.Caption(g.frame))
	}
}

func (g *windowGame) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func windowKey(k ebiten.Key) mandel.Key {
	switch k {
	case ebiten.KeyArrowLeft:
		return mandel.KeyLeft
	case ebiten.KeyArrowRight:
		return mandel.KeyRight
	case ebiten.KeyArrowUp:
		return mandel.KeyUp
	case ebiten.KeyArrowDown:
		return mandel.KeyDown
	case ebiten.KeySpace, ebiten.KeyEnter:
		return mandel.KeyConfirm
	case ebiten.KeyQ, ebiten.KeyEscape:
		return mandel.KeyQuit
	case ebiten.KeyR:
		return mandel.KeyReset
	case ebiten.KeyDigit1:
		return mandel.KeyLandmark1
	case ebiten.KeyDigit2:
		return mandel.KeyLandmark2
	case ebiten.KeyDigit3:
		return mandel.KeyLandmark3
	case ebiten.KeyDigit4:
		return mandel.KeyLandmark4
	case ebiten.KeyDigit5:
		return mandel.KeyLandmark5
	case ebiten.KeyDigit6:
		return mandel.KeyLandmark6
	}
	return mandel.KeyUnknown
}

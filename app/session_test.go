package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/config"
)

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Width = 40
	cfg.Height = 30
	cfg.MaxIter = 20
	return cfg
}

type recordingPresenter struct {
	frames  []mandel.Frame
	onFrame func(n int)
	err     error
}

func (p *recordingPresenter) Present(f mandel.Frame) error {
	p.frames = append(p.frames, f)
	if p.onFrame != nil {
		p.onFrame(len(p.frames))
	}
	return p.err
}

func TestNew(t *testing.T) {
	s, err := New(smallConfig())
	require.NoError(t, err)

	w, h := s.Viewport.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 30, h)
	assert.Equal(t, 8, s.Selection.Size())
	assert.True(t, s.Renderer.Dirty())
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Palette = "nope"
	_, err := New(cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestStep(t *testing.T) {
	s, err := New(smallConfig())
	require.NoError(t, err)

	f, quit := s.Step(nil)
	require.False(t, quit)
	assert.True(t, f.Fresh, "first frame is always computed")
	assert.Equal(t, 20, f.MaxIter)

	f, quit = s.Step([]mandel.Event{mandel.PointerMoved(10, 10)})
	require.False(t, quit)
	assert.False(t, f.Fresh, "pointer motion does not recompute")
	assert.Equal(t, 10, f.Selection.Min.X+f.Selection.Dx()/2)

	f, quit = s.Step([]mandel.Event{mandel.KeyPressed(mandel.KeyUnknown)})
	require.False(t, quit)
	assert.False(t, f.Fresh)

	before := f.Region
	f, quit = s.Step([]mandel.Event{mandel.KeyPressed(mandel.KeyConfirm)})
	require.False(t, quit)
	assert.True(t, f.Fresh)
	assert.Less(t, f.Region.Width(), before.Width())

	_, quit = s.Step([]mandel.Event{mandel.KeyPressed(mandel.KeyQuit)})
	assert.True(t, quit)
}

func TestRun_QuitEndsLoop(t *testing.T) {
	s, err := New(smallConfig())
	require.NoError(t, err)
	q := NewQueue()
	q.Push(mandel.KeyPressed(mandel.KeyRight))

	p := &recordingPresenter{}
	p.onFrame = func(n int) {
		if n == 2 {
			q.Push(mandel.QuitEvent())
		}
	}

	require.NoError(t, s.Run(context.Background(), q, p))
	require.Len(t, p.frames, 2)
	assert.True(t, p.frames[0].Fresh)
	assert.True(t, p.frames[1].Fresh)
	assert.Greater(t, p.frames[1].Region.Xmin, p.frames[0].Region.Xmin)
}

func TestRun_ContextCancel(t *testing.T) {
	s, err := New(smallConfig())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &recordingPresenter{}
	require.NoError(t, s.Run(ctx, NewQueue(), p))
	assert.Len(t, p.frames, 1)
}

func TestRun_PresentError(t *testing.T) {
	s, err := New(smallConfig())
	require.NoError(t, err)
	boom := errors.New("boom")

	err = s.Run(context.Background(), NewQueue(), &recordingPresenter{err: boom})
	assert.ErrorIs(t, err, boom)
}

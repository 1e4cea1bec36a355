package mandel

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_CentredOnPointer(t *testing.T) {
	s := NewSelection(100, 250, 250)
	assert.Equal(t, image.Rect(200, 200, 300, 300), s.Rect())

	s.MoveTo(10, 490)
	assert.Equal(t, image.Rect(-40, 440, 60, 540), s.Rect())
	assert.Equal(t, 100, s.Size())
}

func TestSelection_StaysSquare(t *testing.T) {
	s := NewSelection(7, 0, 0)
	for _, p := range []image.Point{{3, 3}, {-20, 15}, {1000, -1000}} {
		s.MoveTo(p.X, p.Y)
		r := s.Rect()
		assert.Equal(t, r.Dx(), r.Dy())
		assert.Equal(t, 7, r.Dx())
	}
}

func TestSelection_Region(t *testing.T) {
	vp := newTestViewport(t, 500, 500, Region{Xmin: 0, Xmax: 5, Ymin: 0, Ymax: 5})
	s := NewSelection(100, 250, 250)

	got := s.Region(vp)
	assert.InDelta(t, 2.0, got.Xmin, eps)
	assert.InDelta(t, 3.0, got.Xmax, eps)
	assert.InDelta(t, 2.0, got.Ymin, eps)
	assert.InDelta(t, 3.0, got.Ymax, eps)
}

func TestSelection_RegionPastEdge(t *testing.T) {
	vp := newTestViewport(t, 500, 500, Region{Xmin: 0, Xmax: 5, Ymin: 0, Ymax: 5})
	s := NewSelection(100, 0, 500)

	got := s.Region(vp)
	assert.InDelta(t, -0.5, got.Xmin, eps)
	assert.InDelta(t, 0.5, got.Xmax, eps)
	assert.InDelta(t, 4.5, got.Ymin, eps)
	assert.InDelta(t, 5.5, got.Ymax, eps)
}

func TestDefaultSelectionSize(t *testing.T) {
	assert.Equal(t, 100, DefaultSelectionSize(500))
	assert.Equal(t, 384, DefaultSelectionSize(1920))
	assert.Equal(t, 1, DefaultSelectionSize(3))
}

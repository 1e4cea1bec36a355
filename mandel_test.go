package mandel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegion_Validate(t *testing.T) {
	assert.NoError(t, DefaultRegion.Validate())
	for _, l := range Landmarks {
		assert.NoError(t, l.Region.Validate(), l.Name)
	}

	bad := []Region{
		{Xmin: 0, Xmax: 0, Ymin: 0, Ymax: 1},
		{Xmin: 1, Xmax: 0, Ymin: 0, Ymax: 1},
		{Xmin: 0, Xmax: 1, Ymin: 1, Ymax: -1},
		{Xmin: math.NaN(), Xmax: 1, Ymin: 0, Ymax: 1},
		{Xmin: 0, Xmax: math.Inf(1), Ymin: 0, Ymax: 1},
	}
	for _, r := range bad {
		assert.ErrorIs(t, r.Validate(), ErrInvalidRegion, "%v", r)
	}
}

func TestRegion_Spans(t *testing.T) {
	assert.InDelta(t, 2.47, DefaultRegion.Width(), eps)
	assert.InDelta(t, 2.24, DefaultRegion.Height(), eps)
}

func TestLookupLandmark(t *testing.T) {
	r, ok := LookupLandmark("Seahorse")
	assert.True(t, ok)
	assert.Equal(t, SeahorseValley, r)

	r, ok = LookupLandmark(" full ")
	assert.True(t, ok)
	assert.Equal(t, DefaultRegion, r)

	_, ok = LookupLandmark("atlantis")
	assert.False(t, ok)
}

func TestLandmarksMatchDigitKeys(t *testing.T) {
	assert.Len(t, Landmarks, int(KeyLandmark6-KeyLandmark1)+1)
}

// A 500×500 grid over the default region, capped at 250.
func TestEndToEnd_DefaultView(t *testing.T) {
	vp := newTestViewport(t, 500, 500, DefaultRegion)

	x, y := vp.PixelToPlaneX(0), vp.PixelToPlaneY(0)
	assert.InDelta(t, -2.00, x, eps)
	assert.InDelta(t, -1.12, y, eps)
	assert.Equal(t, 1, Evaluate(x, y, 250))

	x, y = vp.PixelToPlaneX(250), vp.PixelToPlaneY(250)
	assert.InDelta(t, -0.765, x, eps)
	assert.InDelta(t, 0, y, eps)
	assert.Equal(t, 250, Evaluate(x, y, 250))
}

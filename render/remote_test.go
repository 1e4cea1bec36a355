package render

import (
	"context"
	"image"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/marben/irpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mandel "github.com/marben/mandelzoom"
)

// pipeClient serves svc on one end of an in-memory pipe and returns a
// client for the other end.
func pipeClient(t *testing.T, svc TileService) *mandel.TileRendererIrpcClient {
	t.Helper()
	c1, c2 := net.Pipe()
	server := irpc.NewEndpoint(c1, irpc.WithEndpointServices(mandel.NewTileRendererIrpcService(svc)))
	client := irpc.NewEndpoint(c2)
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})

	tr, err := mandel.NewTileRendererIrpcClient(client)
	require.NoError(t, err)
	return tr
}

func TestRemote_MatchesLocal(t *testing.T) {
	vp, r := newTestRenderer(t, 150, 100, 60)
	local, _ := r.Frame()

	img, err := Remote(context.Background(), TileService{}, vp, 60, "blue")
	require.NoError(t, err)
	assert.Equal(t, local.Bounds(), img.Bounds())
	assert.Equal(t, local.Pix, img.Pix)
}

func TestRemote_OverIrpc(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var mu sync.Mutex
	var rendered []image.Rectangle
	tr := pipeClient(t, TileService{OnTileRender: func(tile image.Rectangle) {
		mu.Lock()
		rendered = append(rendered, tile)
		mu.Unlock()
	}})

	vp, r := newTestRenderer(t, 130, 70, 40)
	local, _ := r.Frame()

	img, err := Remote(ctx, tr, vp, 40, "blue")
	require.NoError(t, err)
	assert.Equal(t, local.Pix, img.Pix)
	assert.ElementsMatch(t, r.Tiles(), rendered)
}

func TestRemote_ErrorsCrossTheWire(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	tr := pipeClient(t, TileService{})

	vp, err := mandel.NewViewport(20, 20, mandel.DefaultRegion)
	require.NoError(t, err)
	_, err = Remote(ctx, tr, vp, 40, "sepia")
	assert.ErrorContains(t, err, "unknown palette")
}

func TestTileService_Invalid(t *testing.T) {
	ctx := context.Background()
	ts := TileService{}
	r := mandel.DefaultRegion

	_, err := ts.RenderTile(ctx, r, image.Rect(0, 0, 8, 8), 16, 16, 0, "blue")
	assert.ErrorIs(t, err, ErrInvalidMaxIter)

	_, err = ts.RenderTile(ctx, r, image.Rect(10, 10, 20, 20), 16, 16, 10, "blue")
	assert.ErrorIs(t, err, ErrInvalidTile)

	_, err = ts.RenderTile(ctx, r, image.Rect(4, 4, 4, 8), 16, 16, 10, "blue")
	assert.ErrorIs(t, err, ErrInvalidTile)

	_, err = ts.RenderTile(ctx, mandel.Region{Xmin: 1, Xmax: -1, Ymin: 0, Ymax: 1}, image.Rect(0, 0, 8, 8), 16, 16, 10, "blue")
	assert.ErrorIs(t, err, mandel.ErrInvalidRegion)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = ts.RenderTile(canceled, r, image.Rect(0, 0, 8, 8), 16, 16, 10, "blue")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTileService_Pixels(t *testing.T) {
	pix, err := TileService{}.RenderTile(context.Background(), mandel.DefaultRegion, image.Rect(64, 0, 100, 10), 100, 100, 30, "gray")
	require.NoError(t, err)
	require.Len(t, pix, 36*10*4)
	for i := 3; i < len(pix); i += 4 {
		require.Equal(t, uint8(255), pix[i], "opaque")
	}
}

package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	mandel "github.com/marben/mandelzoom"
)

// ErrInvalidTile is returned for tiles that are empty or leave the frame.
var ErrInvalidTile = errors.New("invalid tile")

// TileService computes tiles for remote callers. It holds no state, so one
// value can serve any number of connections.
type TileService struct {
	// OnTileRender, if set, is called after each tile.
	OnTileRender func(tile image.Rectangle)
}

var _ mandel.TileRenderer = TileService{}

// RenderTile implements mandel.TileRenderer.
func (ts TileService) RenderTile(ctx context.Context, r mandel.Region, tile image.Rectangle, imgW, imgH, maxIter int, palette string) ([]byte, error) {
	if maxIter <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxIter, maxIter)
	}
	p, err := ParsePalette(palette)
	if err != nil {
		return nil, err
	}
	if imgW*imgH > MaxPixels {
		return nil, fmt.Errorf("%w: frame %dx%d exceeds %d pixels", mandel.ErrInvalidSize, imgW, imgH, MaxPixels)
	}
	vp, err := mandel.NewViewport(imgW, imgH, r)
	if err != nil {
		return nil, err
	}
	if tile.Empty() || !tile.In(image.Rect(0, 0, imgW, imgH)) {
		return nil, fmt.Errorf("%w: %s in %dx%d", ErrInvalidTile, tile, imgW, imgH)
	}

	img := image.NewRGBA(tile)
	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ci := vp.PixelToPlaneY(py)
		for px := tile.Min.X; px < tile.Max.X; px++ {
			iter := mandel.Evaluate(vp.PixelToPlaneX(px), ci, maxIter)
			img.SetRGBA(px, py, p(iter, maxIter))
		}
	}
	if ts.OnTileRender != nil {
		ts.OnTileRender(tile)
	}
	return img.Pix, nil
}

// Remote computes a whole frame by asking tr for every tile, several at a
// time.
func Remote(ctx context.Context, tr mandel.TileRenderer, vp *mandel.Viewport, maxIter int, palette string) (*image.RGBA, error) {
	w, h := vp.Size()
	if w*h > MaxPixels {
		return nil, fmt.Errorf("%w: frame %dx%d exceeds %d pixels", mandel.ErrInvalidSize, w, h, MaxPixels)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	tiles := SplitRect(img.Bounds(), TileSize, TileSize)
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, tile := range tiles {
		g.Go(func() error {
			pix, err := tr.RenderTile(ctx, vp.Region(), tile, w, h, maxIter, palette)
			if err != nil {
				return fmt.Errorf("tile %s: %w", tile, err)
			}
			if want := tile.Dx() * tile.Dy() * 4; len(pix) != want {
				return fmt.Errorf("tile %s: got %d bytes, want %d", tile, len(pix), want)
			}
			// Tiles never overlap, so the copies need no lock.
			src := &image.RGBA{Pix: pix, Stride: tile.Dx() * 4, Rect: tile}
			for y := tile.Min.Y; y < tile.Max.Y; y++ {
				copy(img.Pix[img.PixOffset(tile.Min.X, y):], src.Pix[src.PixOffset(tile.Min.X, y):src.PixOffset(tile.Max.X, y)])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	mandel.Logger().Debug("remote frame rendered",
		"size", fmt.Sprintf("%dx%d", w, h),
		"tiles", len(tiles),
		"region", vp.Region(),
		"elapsed", time.Since(start))
	return img, nil
}

package mandel

//go:generate go run github.com/marben/irpc/cmd/irpc $GOFILE

import (
	"context"
	"image"
)

// TileRenderer computes one tile of an imgW×imgH frame of region r and
// returns its pixels as packed RGBA rows.
type TileRenderer interface {
	RenderTile(ctx context.Context, r Region, tile image.Rectangle, imgW, imgH, maxIter int, palette string) ([]byte, error)
}

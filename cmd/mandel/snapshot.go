package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/marben/irpc"
	"github.com/spf13/cobra"

	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/app"
	"github.com/marben/mandelzoom/config"
	"github.com/marben/mandelzoom/render"
	"github.com/marben/mandelzoom/web"
)

func snapshotCmd(opts *options) *cobra.Command {
	var (
		output    string
		outline   bool
		captioned bool
		server    string
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one view to a PNG file",
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

			var f mandel.Frame
			if server == "" {
				f = s.Frame()
			} else {
				f = mandel.Frame{
					Fresh:     true,
					Selection: s.Selection.Rect(),
					Region:    s.Viewport.Region(),
					MaxIter:   cfg.MaxIter,
				}
				if f.Image, err = remoteFrame(cmd.Context(), server, s.Viewport, cfg); err != nil {
					return err
				}
			}
			img := f.Image
			if outline {
				if img, err = render.DrawSelection(img, f.Selection, render.SelectionColor); err != nil {
					return err
				}
			}
			if captioned {
				render.Annotate(img, render.Caption(f))
			}

			if err := writePNG(output, img); err != nil {
				return err
			}
			mandel.Logger().Info("snapshot saved", "path", output, "region", f.Region)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "mandel.png", "Output file")
	cmd.Flags().BoolVar(&outline, "outline", false, "Draw the centred zoom square")
	cmd.Flags().BoolVar(&captioned, "caption", false, "Write the region and iteration cap in the corner")
	cmd.Flags().StringVar(&server, "server", "", "Render tiles on a running \"mandel serve\" (host:port or URL)")
	return cmd
}

// remoteFrame has the tile RPC service at server compute the frame.
func remoteFrame(ctx context.Context, server string, vp *mandel.Viewport, cfg config.Config) (*image.RGBA, error) {
	url := web.RPCURL(server)
	conn, err := web.DialRPC(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	ep := irpc.NewEndpoint(conn)
	defer ep.Close()

	client, err := mandel.NewTileRendererIrpcClient(ep)
	if err != nil {
		return nil, fmt.Errorf("tile client: %w", err)
	}
	mandel.Logger().Info("rendering remotely", "server", url)
	return render.Remote(ctx, client, vp, cfg.MaxIter, cfg.Palette)
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}

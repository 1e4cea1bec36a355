package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/marben/irpc"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/render"
	"github.com/marben/mandelzoom/web"
)

func serveCmd(opts *options) *cobra.Command {
	var (
		port    int
		origins []string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the explorer to browsers over websocket",
		Long: `Every browser tab gets its own session. The page sends key presses and
pointer motion; the server computes frames and sends them back as PNG tiles.

The same port offers tile rendering over irpc at /rpc, which
"mandel snapshot --server" uses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			// Closed by tiles.Close during shutdown.
			rpc := web.NewRPCListener(context.Background(), fmt.Sprintf(":%d/rpc", port))
			tiles := irpc.NewServer(
				irpc.WithServices(mandel.NewTileRendererIrpcService(render.TileService{})),
				irpc.WithOnConnect(func(ep *irpc.Endpoint) {
					mandel.Logger().Info("rpc client connected", "remote", ep.RemoteAddr())
				}),
			)

			srv := web.NewServer(cfg, port, origins, rpc)
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("net.Listen: %w", err)
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			// Hijacked websocket connections outlive Shutdown; they watch
			// this context instead.
			srv.BaseContext = func(net.Listener) context.Context { return ctx }

			g.Go(func() error {
				mandel.Logger().Info("listening", "url", fmt.Sprintf("http://localhost:%d", port))
				if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("serve: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				if err := tiles.Serve(rpc); !errors.Is(err, irpc.ErrServerClosed) {
					return fmt.Errorf("rpc serve: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				mandel.Logger().Info("shutting down")
				return errors.Join(srv.Shutdown(shutdownCtx), tiles.Close())
			})
			return g.Wait()
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP port")
	cmd.Flags().StringSliceVar(&origins, "origin", nil, "Extra origin patterns allowed to open sessions")
	return cmd
}

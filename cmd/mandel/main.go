// Command mandel explores the Mandelbrot set in a window, a terminal or a
// browser, or renders single views to PNG.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var version = "v0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, rootCmd(),
		fang.WithVersion(version),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, "mandel:", err.Error())
		}),
	); err != nil {
		stop()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "mandel",
		Short: "Interactive Mandelbrot set explorer",
		Long: `mandel renders the Mandelbrot set and lets you pan with the arrow keys
and zoom into the square under the pointer with space.

Settings come from mandel.toml (searched upwards from the working
directory, or given with --config); flags override the file.`,
		Example: `  # Open a window on the classic view
  mandel window

  # Explore inside the terminal
  mandel term --palette hsv

  # Serve the explorer to browsers on :8080
  mandel serve --port 8080

  # Render Seahorse Valley to a PNG
  mandel snapshot --region seahorse -o seahorse.png`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setupLogging(cmd.ErrOrStderr())
		},
	}
	opts.bindPersistent(root)

	root.AddCommand(
		windowCmd(opts),
		termCmd(opts),
		serveCmd(opts),
		snapshotCmd(opts),
		regionsCmd(),
	)
	return root
}

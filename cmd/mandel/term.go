package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/app"
	"github.com/marben/mandelzoom/term"
)

func termCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Explore inside a true-colour terminal",
		Long: `Draws the set with half-block characters, two pixels per cell. The grid
follows the terminal size; --width and --height are ignored. Logs are
discarded unless --log-file is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			if opts.LogFile == "" {
				mandel.SetLogger(nil)
				slog.SetDefault(slog.New(slog.DiscardHandler))
			}

			tty, err := term.Open(os.Stdin, os.Stdout)
			if err != nil {
				return err
			}
			defer func() {
				_ = tty.Close()
			}()

			cols, rows, err := tty.Size()
			if err != nil {
				return err
			}
			cfg.Width, cfg.Height = term.GridSize(cols, rows)
			if cfg.Selection > cfg.Width {
				cfg.Selection = 0
			}
			s, err := app.New(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancelCause(cmd.Context())
			defer cancel(nil)

			queue := app.NewQueue()
			in := term.NewReader(os.Stdin, os.Getenv("TERM"), term.CellToPixel)
			// The read loop stays blocked on stdin after the session ends; it
			// goes away with the process.
			go func() {
				err := in.Stream(ctx, queue.Push)
				switch {
				case err == nil:
					queue.Push(mandel.QuitEvent())
				case !errors.Is(err, context.Canceled):
					cancel(err)
				}
			}()

			if err := s.Run(ctx, queue, term.NewPresenter(os.Stdout, cols)); err != nil {
				return err
			}
			if err := context.Cause(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

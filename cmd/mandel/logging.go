package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	mandel "github.com/marben/mandelzoom"
)

func (o *options) setupLogging(stderr io.Writer) error {
	level := slog.LevelInfo
	if o.Debug {
		level = slog.LevelDebug
	}

	w := stderr
	if o.LogFile != "" {
		f, err := os.OpenFile(o.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		// Stays open for the life of the process.
		w = f
	}

	var handler slog.Handler
	if o.LogJSON {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    o.LogFile != "",
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	mandel.SetLogger(logger)
	return nil
}

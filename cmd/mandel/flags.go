package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/config"
	"github.com/marben/mandelzoom/render"
)

// options holds flags shared by every subcommand.
type options struct {
	Debug   bool
	LogJSON bool
	LogFile string

	ConfigPath  string
	Width       int
	Height      int
	MaxIter     int
	PanFraction float64
	Selection   int
	Palette     string
	Region      string
}

func (o *options) bindPersistent(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.BoolVarP(&o.Debug, "debug", "d", false, "Enable debug logging")
	f.BoolVar(&o.LogJSON, "log-json", false, "Log as JSON instead of text")
	f.StringVar(&o.LogFile, "log-file", "", "Write logs to this file instead of stderr")

	f.StringVarP(&o.ConfigPath, "config", "c", "", "Path to mandel.toml (default: search upwards from the working directory)")
	f.IntVar(&o.Width, "width", 0, "Grid width in pixels")
	f.IntVar(&o.Height, "height", 0, "Grid height in pixels")
	f.IntVar(&o.MaxIter, "max-iter", 0, "Iteration cap")
	f.Float64Var(&o.PanFraction, "pan", 0, "Fraction of the view one arrow key moves")
	f.IntVar(&o.Selection, "selection", 0, "Zoom square side in pixels (default width/5)")
	f.StringVar(&o.Palette, "palette", "", fmt.Sprintf("Colour palette %v", render.PaletteNames()))
	f.StringVar(&o.Region, "region", "", "Start at a named landmark (see 'mandel regions')")
}

// resolve loads the config file and applies the flags the user set.
func (o *options) resolve(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg  config.Config
		path string
		err  error
	)
	if o.ConfigPath != "" {
		path = o.ConfigPath
		cfg, err = config.Load(path)
	} else {
		var cwd string
		if cwd, err = os.Getwd(); err == nil {
			path, cfg, err = config.Find(cwd)
		}
	}
	if err != nil {
		return config.Config{}, err
	}
	if path != "" {
		mandel.Logger().Debug("loaded config", "path", path)
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = o.Width
	}
	if flags.Changed("height") {
		cfg.Height = o.Height
	}
	if flags.Changed("max-iter") {
		cfg.MaxIter = o.MaxIter
	}
	if flags.Changed("pan") {
		cfg.PanFraction = o.PanFraction
	}
	if flags.Changed("selection") {
		cfg.Selection = o.Selection
	}
	if flags.Changed("palette") {
		cfg.Palette = o.Palette
	}
	if flags.Changed("region") {
		r, ok := mandel.LookupLandmark(o.Region)
		if !ok {
			return config.Config{}, fmt.Errorf("unknown region %q", o.Region)
		}
		cfg.Region = config.FromRegion(r)
	}
	return cfg, cfg.Validate()
}

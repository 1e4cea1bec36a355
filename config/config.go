// Package config loads explorer settings from mandel.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/render"
)

// FileName is the config file Find looks for.
const FileName = "mandel.toml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Region is the TOML shape of mandel.Region.
type Region struct {
	Xmin float64 `toml:"x_min"`
	Xmax float64 `toml:"x_max"`
	Ymin float64 `toml:"y_min"`
	Ymax float64 `toml:"y_max"`
}

// Config holds everything fixed at start-up.
type Config struct {
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	MaxIter     int     `toml:"max_iter"`
	PanFraction float64 `toml:"pan_fraction"`
	// Selection is the side of the zoom square in pixels; 0 means width/5.
	Selection int    `toml:"selection"`
	Palette   string `toml:"palette"`
	Region    Region `toml:"region"`
}

// Default returns the stock 500×500 view of the whole set.
func Default() Config {
	return Config{
		Width:       500,
		Height:      500,
		MaxIter:     250,
		PanFraction: mandel.DefaultPanFraction,
		Palette:     "blue",
		Region:      FromRegion(mandel.DefaultRegion),
	}
}

// FromRegion converts a plane region into its TOML shape.
func FromRegion(r mandel.Region) Region {
	return Region{Xmin: r.Xmin, Xmax: r.Xmax, Ymin: r.Ymin, Ymax: r.Ymax}
}

// Plane converts back to a mandel.Region.
func (r Region) Plane() mandel.Region {
	return mandel.Region{Xmin: r.Xmin, Xmax: r.Xmax, Ymin: r.Ymin, Ymax: r.Ymax}
}

// SelectionSize resolves the zero default.
func (c Config) SelectionSize() int {
	if c.Selection > 0 {
		return c.Selection
	}
	return mandel.DefaultSelectionSize(c.Width)
}

// Validate checks the config can start a session.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.MaxIter <= 0 {
		return fmt.Errorf("%w: max_iter %d", ErrInvalid, c.MaxIter)
	}
	if c.PanFraction <= 0 || c.PanFraction >= 1 {
		return fmt.Errorf("%w: pan_fraction %g not in (0, 1)", ErrInvalid, c.PanFraction)
	}
	if c.Selection < 0 {
		return fmt.Errorf("%w: selection %d", ErrInvalid, c.Selection)
	}
	if _, err := render.ParsePalette(c.Palette); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.Region.Plane().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find searches for mandel.toml starting from dir and walking up to parent
// directories, stopping at a .git boundary. It returns ("", Default(), nil)
// when there is none.
func Find(dir string) (string, Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", Config{}, err
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			cfg, err := Load(path)
			if err != nil {
				return "", Config{}, err
			}
			return path, cfg, nil
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", Default(), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", Default(), nil
		}
		dir = parent
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cognitive-vision/internal/domain"
)

var errPartialObserver = errors.New("observer needs both -x and -y")

// Config holds the fovdump parameters.
type Config struct {
	MapPath string
	// Seed for the generated map when MapPath is empty. 0 picks one from the clock.
	Seed   int64
	Width  int
	Height int

	// Observer; both negative picks the centre of the first room or the first open cell.
	X, Y   int
	Radius int

	// Target, when set, is checked for visibility and direct line of sight.
	Target *domain.Position
}

// NewConfig returns the defaults.
func NewConfig() Config {
	return Config{
		Width:  40,
		Height: 25,
		X:      -1,
		Y:      -1,
		Radius: domain.VisionRadius,
	}
}

// parseFlags fills a Config from command-line arguments.
func parseFlags(args []string) (Config, error) {
	cfg := NewConfig()
	var target string

	fs := flag.NewFlagSet("fovdump", flag.ContinueOnError)
	fs.StringVar(&cfg.MapPath, "map", "", "Path to a text map file (empty: generate one)")
	fs.Int64Var(&cfg.Seed, "seed", 0, "Seed for the generated map (0 for random)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Generated map width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Generated map height")
	fs.IntVar(&cfg.X, "x", cfg.X, "Observer X (-1: auto)")
	fs.IntVar(&cfg.Y, "y", cfg.Y, "Observer Y (-1: auto)")
	fs.IntVar(&cfg.Radius, "radius", cfg.Radius, "Vision radius")
	fs.StringVar(&target, "target", "", "Cell to check, as x,y")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if err := cfg.checkObserver(); err != nil {
		return cfg, err
	}

	if target != "" {
		p, err := parsePosition(target)
		if err != nil {
			return cfg, err
		}
		cfg.Target = &p
	}

	if cfg.MapPath == "" && cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return cfg, nil
}

func parsePosition(s string) (domain.Position, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return domain.Position{}, fmt.Errorf("position %q: expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return domain.Position{}, fmt.Errorf("position %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return domain.Position{}, fmt.Errorf("position %q: %w", s, err)
	}
	return domain.Position{X: x, Y: y}, nil
}

// checkObserver rejects an observer with only one coordinate set.
func (c Config) checkObserver() error {
	if (c.X < 0) != (c.Y < 0) {
		return fmt.Errorf("x=%d y=%d: %w", c.X, c.Y, errPartialObserver)
	}
	return nil
}

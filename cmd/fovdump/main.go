package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"cognitive-vision/internal/domain"
	"cognitive-vision/internal/systems"
	"cognitive-vision/pkg/dungeon"
	"cognitive-vision/pkg/logger"

	"github.com/sirupsen/logrus"
)

func init() {
	// stdout carries the map.
	logger.InitWithOutput(os.Stderr)
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Log.Fatal("Bad arguments: ", err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		logger.Log.Fatal(err)
	}
}

// run loads or generates the map, computes one FOV and writes the overlay to out.
func run(cfg Config, out io.Writer) error {
	log := logger.Component("fovdump")
	table := domain.DefaultTerrainTable()

	var (
		g     *domain.TerrainGrid
		rooms []domain.Rect
		err   error
	)
	if cfg.MapPath != "" {
		g, err = dungeon.LoadGridFile(cfg.MapPath, dungeon.DefaultLegend, table)
		if err != nil {
			return err
		}
		log.WithField("map", cfg.MapPath).Info("Map loaded.")
	} else {
		g, rooms = dungeon.Generate(rand.New(rand.NewSource(cfg.Seed)), cfg.Width, cfg.Height, table)
		log.WithFields(logrus.Fields{
			"seed":  cfg.Seed,
			"rooms": len(rooms),
		}).Info("Map generated.")
	}

	origin, err := pickOrigin(g, rooms, cfg)
	if err != nil {
		return err
	}

	visible, err := systems.ComputeVision(g, origin, &systems.VisionComponent{Radius: cfg.Radius})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"origin":  origin,
		"radius":  cfg.Radius,
		"visible": visible.Len(),
	}).Info("FOV computed.")

	if _, err := io.WriteString(out, dungeon.Render(g, visible, origin, dungeon.DefaultLegend)); err != nil {
		return err
	}
	fmt.Fprintf(out, "origin %s radius %d: %d cells visible\n", origin, cfg.Radius, visible.Len())

	if cfg.Target != nil {
		fmt.Fprintf(out, "target %s: in fov=%t line of sight=%t\n",
			*cfg.Target, visible.Contains(*cfg.Target), systems.HasLineOfSight(g, origin, *cfg.Target))
	}

	return nil
}

func pickOrigin(g *domain.TerrainGrid, rooms []domain.Rect, cfg Config) (domain.Position, error) {
	if err := cfg.checkObserver(); err != nil {
		return domain.Position{}, err
	}

	if cfg.X >= 0 && cfg.Y >= 0 {
		p := domain.Position{X: cfg.X, Y: cfg.Y}
		if !g.InBounds(p) {
			return p, fmt.Errorf("observer %s: %w", p, domain.ErrOutOfBounds)
		}
		return p, nil
	}

	if len(rooms) > 0 {
		cx, cy := rooms[0].Center()
		return domain.Position{X: cx, Y: cy}, nil
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := domain.Position{X: x, Y: y}
			if g.IsPassable(p) && !g.BlocksVision(p) {
				return p, nil
			}
		}
	}
	return domain.Position{}, fmt.Errorf("no open cell to stand on: %w", domain.ErrInvalidMap)
}

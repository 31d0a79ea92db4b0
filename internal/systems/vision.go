package systems

import (
	"fmt"

	"cognitive-vision/internal/domain"
	"cognitive-vision/pkg/logger"
)

// VisionComponent describes how an actor sees.
type VisionComponent struct {
	Radius int `json:"radius"`
	// Omniscient observers (GM, scouting birds) see the whole grid.
	Omniscient bool `json:"omniscient"`
}

// ValidateRadius converts a signed radius from config or wire data into the
// unsigned form ComputeFOV takes. Negative values are rejected, never clamped.
func ValidateRadius(radius int) (uint32, error) {
	if radius < 0 {
		return 0, fmt.Errorf("radius %d: %w", radius, domain.ErrNegativeRadius)
	}
	if uint64(radius) > uint64(^uint32(0)) {
		return ^uint32(0), nil
	}
	return uint32(radius), nil
}

// ComputeVision is the entry point for actors: it applies the vision component
// (default radius, omniscience) and validates the radius before running FOV.
func ComputeVision(g *domain.TerrainGrid, pos domain.Position, vision *VisionComponent) (domain.VisibleSet, error) {
	if vision != nil && vision.Omniscient {
		logger.Component("fov_system").
			WithField("observer_pos", pos).
			Debug("Omniscient observer, whole grid visible.")
		return allCells(g), nil
	}

	radius := domain.VisionRadius
	if vision != nil {
		radius = vision.Radius
	}

	r, err := ValidateRadius(radius)
	if err != nil {
		return nil, err
	}
	return ComputeFOV(g, pos, r), nil
}

func allCells(g *domain.TerrainGrid) domain.VisibleSet {
	visible := domain.NewVisibleSet(g.Width() * g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			visible.Add(domain.Position{X: x, Y: y})
		}
	}
	return visible
}

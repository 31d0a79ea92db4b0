package systems

import (
	"cognitive-vision/internal/domain"
	"cognitive-vision/pkg/logger"

	"github.com/sirupsen/logrus"
)

// VisionGrid is the read-only view of the map the FOV engine needs.
// The grid is rectangular and BlocksVision must be total: positions outside
// the grid report true.
type VisionGrid interface {
	InBounds(p domain.Position) bool
	BlocksVision(p domain.Position) bool
}

// Coordinate multipliers for the 8 octants. Column i is (xx, xy, yx, yy) for octant i:
// X = cx + dx*xx + dy*xy, Y = cy + dx*yx + dy*yy.
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// sweepFrame is one pending row scan of an octant over the slope interval [end, start].
type sweepFrame struct {
	octant int
	row    int
	start  float64
	end    float64
}

// ComputeFOV returns every cell visible from origin within radius, using
// recursive shadowcasting. An in-bounds origin is always part of the result,
// so radius 0 yields exactly {origin}. An origin outside the grid sees nothing,
// whatever the radius.
//
// Cells must satisfy dx²+dy² <= radius². A transparent cell is visible when
// the slope of its centre lies inside the unobstructed interval; a
// vision-blocking cell is visible when any part of it does, so wall faces
// show. Slopes equal to a bound count as inside.
func ComputeFOV(g VisionGrid, origin domain.Position, radius uint32) domain.VisibleSet {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": origin,
		"radius":       radius,
	})

	if !g.InBounds(origin) {
		fovLogger.Warn("FOV requested from outside the grid, nothing is visible.")
		return domain.NewVisibleSet(0)
	}

	visible := domain.NewVisibleSet(estimateArea(radius))
	visible.Add(origin)
	if radius == 0 {
		return visible
	}

	// Explicit worklist instead of recursion: each blocker that splits a row
	// pushes one frame for the segment before it.
	stack := make([]sweepFrame, 0, 32)
	for oct := 7; oct >= 0; oct-- {
		stack = append(stack, sweepFrame{octant: oct, row: 1, start: 1.0, end: 0.0})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = castLight(g, origin, int64(radius), f, visible, stack)
	}

	fovLogger.WithField("visible_tiles", visible.Len()).Debug("FOV calculation complete.")

	return visible
}

// castLight scans rows of one octant starting at f.row. Child frames for
// split-off slope segments are appended to stack, which is returned.
func castLight(g VisionGrid, origin domain.Position, radius int64, f sweepFrame, visible domain.VisibleSet, stack []sweepFrame) []sweepFrame {
	start, end := f.start, f.end
	if start < end {
		return stack
	}

	xx, xy := multipliers[0][f.octant], multipliers[1][f.octant]
	yx, yy := multipliers[2][f.octant], multipliers[3][f.octant]
	radiusSq := float64(radius) * float64(radius)

	for j := int64(f.row); j <= radius; j++ {
		dy := int(-j)

		// Row j is entirely outside a rectangular grid once its on-axis cell is.
		if !g.InBounds(domain.Position{X: origin.X + dy*xy, Y: origin.Y + dy*yy}) {
			break
		}

		blocked := false
		newStart := start
		rowStart := start

		for dx := dy; dx <= 0; dx++ {
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			p := domain.Position{
				X: origin.X + dx*xx + dy*xy,
				Y: origin.Y + dx*yx + dy*yy,
			}

			opaque := g.BlocksVision(p)

			if g.InBounds(p) && float64(dx*dx+dy*dy) <= radiusSq {
				centre := float64(dx) / float64(dy)
				if opaque || (end <= centre && centre <= rowStart) {
					visible.Add(p)
				}
			}

			if blocked {
				if opaque {
					// Still walking along a wall.
					newStart = rSlope
					continue
				}
				// Wall ended, light resumes from its far edge.
				blocked = false
				start = newStart
			} else if opaque && j < radius {
				blocked = true
				stack = append(stack, sweepFrame{
					octant: f.octant,
					row:    int(j) + 1,
					start:  start,
					end:    lSlope,
				})
				newStart = rSlope
			}
		}

		if blocked {
			break
		}
	}

	return stack
}

// estimateArea sizes the result map for an unobstructed disc, capped for huge radii.
func estimateArea(radius uint32) int {
	const maxHint = 4096
	r := int(min(radius, 64))
	area := 3*r*r + 1
	if area > maxHint {
		return maxHint
	}
	return area
}

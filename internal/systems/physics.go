package systems

import (
	"cognitive-vision/internal/domain"
	"cognitive-vision/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HasLineOfSight checks a direct line between two cells with integer Bresenham.
// The endpoints never block; any opaque or out-of-bounds cell in between does.
//
// This is a point query and is not guaranteed to agree with ComputeFOV for
// cells grazing a corner.
func HasLineOfSight(g VisionGrid, p1, p2 domain.Position) bool {
	losLogger := logger.Log.WithFields(logrus.Fields{
		"component": "physics_system",
		"start_pos": p1,
		"end_pos":   p2,
	})

	if p1 == p2 {
		return true
	}

	x0, y0 := p1.X, p1.Y
	dx := abs(p2.X - x0)
	dy := abs(p2.Y - y0)
	sx, sy := p1.DirectionTo(p2)

	err := dx - dy

	for {
		cur := domain.Position{X: x0, Y: y0}
		if cur != p1 && cur != p2 && g.BlocksVision(cur) {
			losLogger.WithField("blocking_point", cur).Debug("Line of sight blocked.")
			return false
		}

		if cur == p2 {
			break
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

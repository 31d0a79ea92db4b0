package dungeon

import (
	"strings"

	"cognitive-vision/internal/domain"
)

// Render draws the grid as text: '@' at origin, the terrain glyph for visible
// cells and a space for everything else. A nil visible set draws the whole map.
func Render(g *domain.TerrainGrid, visible domain.VisibleSet, origin domain.Position, legend Legend) string {
	var sb strings.Builder
	sb.Grow((g.Width() + 1) * g.Height())

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := domain.Position{X: x, Y: y}
			switch {
			case p == origin:
				sb.WriteRune('@')
			case visible == nil || visible.Contains(p):
				k, _ := g.Terrain(p)
				sb.WriteRune(legend.Glyph(k))
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

package dungeon

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"cognitive-vision/internal/domain"
)

// Legend maps a map glyph to a terrain kind.
type Legend map[rune]domain.TerrainKind

// DefaultLegend is the glyph set used by map files and tests.
var DefaultLegend = Legend{
	'.': domain.TerrainOpen,
	'#': domain.TerrainWall,
	'T': domain.TerrainForest,
	'%': domain.TerrainSmoke,
	'~': domain.TerrainWater,
	',': domain.TerrainRubble,
	'=': domain.TerrainWindow,
	'+': domain.TerrainDoor,
}

// Glyph returns the first glyph mapped to k, or '?' when k has none.
// When several glyphs share a kind the smallest rune wins, so output is stable.
func (l Legend) Glyph(k domain.TerrainKind) rune {
	found := false
	var best rune
	for r, kind := range l {
		if kind == k && (!found || r < best) {
			best, found = r, true
		}
	}
	if !found {
		return '?'
	}
	return best
}

// ParseGrid builds a grid from text rows, top row first.
// All rows must have the same number of glyphs.
func ParseGrid(lines []string, legend Legend, table domain.TerrainTable) (*domain.TerrainGrid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("no rows: %w", domain.ErrInvalidMap)
	}

	width := utf8.RuneCountInString(lines[0])
	if width == 0 {
		return nil, fmt.Errorf("empty first row: %w", domain.ErrInvalidMap)
	}

	g := domain.NewTerrainGrid(width, len(lines), table)
	for y, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			return nil, fmt.Errorf("row %d has %d cells, expected %d: %w", y, n, width, domain.ErrInvalidMap)
		}
		x := 0
		for _, r := range line {
			kind, ok := legend[r]
			if !ok {
				return nil, fmt.Errorf("glyph %q at row %d col %d: %w", r, y, x, domain.ErrUnknownGlyph)
			}
			if err := g.SetTerrain(domain.Position{X: x, Y: y}, kind); err != nil {
				return nil, err
			}
			x++
		}
	}

	return g, nil
}

// LoadGridFile reads a map file. Trailing blank lines and trailing '\r' are ignored.
func LoadGridFile(path string, legend Legend, table domain.TerrainTable) (*domain.TerrainGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", path, err)
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	g, err := ParseGrid(lines, legend, table)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	return g, nil
}

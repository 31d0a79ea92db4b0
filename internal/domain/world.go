package domain

import "fmt"

// Rect is an axis-aligned block of cells: X..X+W-1, Y..Y+H-1.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// TerrainGrid is a bounded rectangular map of terrain kinds.
// Cells are stored row-major, index = y*width + x.
//
// TerrainGrid is not synchronised. Concurrent reads are safe; writes must not
// overlap with readers (see systems.SharedGrid).
type TerrainGrid struct {
	width  int
	height int
	cells  []TerrainKind
	table  TerrainTable
}

// NewTerrainGrid creates a width x height grid filled with TerrainOpen.
// Non-positive dimensions produce an empty grid where every position is out of bounds.
func NewTerrainGrid(width, height int, table TerrainTable) *TerrainGrid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &TerrainGrid{
		width:  width,
		height: height,
		cells:  make([]TerrainKind, width*height),
		table:  table,
	}
}

func (g *TerrainGrid) Width() int  { return g.width }
func (g *TerrainGrid) Height() int { return g.height }

// Table returns the attribute table the grid was built with.
func (g *TerrainGrid) Table() TerrainTable { return g.table }

// GetIndex returns the flat cell index. Callers check bounds first.
func (g *TerrainGrid) GetIndex(x, y int) int {
	return y*g.width + x
}

func (g *TerrainGrid) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// Terrain returns the kind at p; ok is false outside the grid.
func (g *TerrainGrid) Terrain(p Position) (TerrainKind, bool) {
	if !g.InBounds(p) {
		return TerrainWall, false
	}
	return g.cells[g.GetIndex(p.X, p.Y)], true
}

// BlocksVision is total: any coordinate outside the grid is opaque.
func (g *TerrainGrid) BlocksVision(p Position) bool {
	k, ok := g.Terrain(p)
	if !ok {
		return true
	}
	return g.table.BlocksVision(k)
}

// IsPassable reports whether an actor may stand on p. Outside the grid: false.
func (g *TerrainGrid) IsPassable(p Position) bool {
	k, ok := g.Terrain(p)
	if !ok {
		return false
	}
	return g.table.Passable(k)
}

// SetTerrain changes one cell.
func (g *TerrainGrid) SetTerrain(p Position, k TerrainKind) error {
	if !g.InBounds(p) {
		return fmt.Errorf("set terrain %s at %s: %w", k, p, ErrOutOfBounds)
	}
	g.cells[g.GetIndex(p.X, p.Y)] = k
	return nil
}

// Fill sets every in-bounds cell of r to k. Parts of r outside the grid are ignored.
func (g *TerrainGrid) Fill(r Rect, k TerrainKind) {
	for y := max(r.Y, 0); y < min(r.Y+r.H, g.height); y++ {
		for x := max(r.X, 0); x < min(r.X+r.W, g.width); x++ {
			g.cells[g.GetIndex(x, y)] = k
		}
	}
}

// Clone returns an independent copy. The table is shared; it is immutable.
func (g *TerrainGrid) Clone() *TerrainGrid {
	cells := make([]TerrainKind, len(g.cells))
	copy(cells, g.cells)
	return &TerrainGrid{
		width:  g.width,
		height: g.height,
		cells:  cells,
		table:  g.table,
	}
}

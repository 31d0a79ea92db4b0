package systems

import (
	"sync"

	"cognitive-vision/internal/domain"
)

// SharedGrid guards a terrain grid for worlds with live terrain edits
// (destructible walls, smoke). FOV and LOS queries hold the read lock for
// their whole duration; terrain writes wait for them.
type SharedGrid struct {
	mu   sync.RWMutex
	grid *domain.TerrainGrid
}

func NewSharedGrid(g *domain.TerrainGrid) *SharedGrid {
	return &SharedGrid{grid: g}
}

func (s *SharedGrid) ComputeFOV(origin domain.Position, radius uint32) domain.VisibleSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ComputeFOV(s.grid, origin, radius)
}

func (s *SharedGrid) HasLineOfSight(p1, p2 domain.Position) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return HasLineOfSight(s.grid, p1, p2)
}

// SetTerrain changes one cell under the write lock.
func (s *SharedGrid) SetTerrain(p domain.Position, k domain.TerrainKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.SetTerrain(p, k)
}

// Snapshot returns a private copy for long-running readers (batches, AI planning).
func (s *SharedGrid) Snapshot() *domain.TerrainGrid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Clone()
}

package dungeon

import (
	"math/rand"
	"testing"

	"cognitive-vision/internal/domain"
)

func TestGenerate_Deterministic(t *testing.T) {
	table := domain.DefaultTerrainTable()
	g1, rooms1 := Generate(rand.New(rand.NewSource(42)), 40, 25, table)
	g2, rooms2 := Generate(rand.New(rand.NewSource(42)), 40, 25, table)

	if len(rooms1) != len(rooms2) {
		t.Fatalf("room count differs: %d vs %d", len(rooms1), len(rooms2))
	}
	for i := range rooms1 {
		if rooms1[i] != rooms2[i] {
			t.Errorf("room %d differs: %+v vs %+v", i, rooms1[i], rooms2[i])
		}
	}
	for y := 0; y < 25; y++ {
		for x := 0; x < 40; x++ {
			p := domain.Position{X: x, Y: y}
			k1, _ := g1.Terrain(p)
			k2, _ := g2.Terrain(p)
			if k1 != k2 {
				t.Fatalf("cell %v differs: %v vs %v", p, k1, k2)
			}
		}
	}
}

func TestGenerate_Layout(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, rooms := Generate(rand.New(rand.NewSource(seed)), 40, 25, domain.DefaultTerrainTable())

		if g.Width() != 40 || g.Height() != 25 {
			t.Fatalf("seed %d: size %dx%d", seed, g.Width(), g.Height())
		}
		if len(rooms) == 0 {
			t.Fatalf("seed %d: no rooms generated", seed)
		}

		// Rooms never touch the border, so the frame stays solid.
		for x := 0; x < 40; x++ {
			for _, y := range []int{0, 24} {
				if k, _ := g.Terrain(domain.Position{X: x, Y: y}); k != domain.TerrainWall {
					t.Errorf("seed %d: border cell (%d,%d) is %v", seed, x, y, k)
				}
			}
		}

		for _, r := range rooms {
			cx, cy := r.Center()
			if k, _ := g.Terrain(domain.Position{X: cx, Y: cy}); k != domain.TerrainOpen {
				t.Errorf("seed %d: room centre (%d,%d) is %v", seed, cx, cy, k)
			}
		}
	}
}

func TestGenerate_TooSmall(t *testing.T) {
	g, rooms := Generate(rand.New(rand.NewSource(1)), 4, 4, domain.DefaultTerrainTable())
	if len(rooms) != 0 {
		t.Errorf("expected no rooms on a 4x4 map, got %d", len(rooms))
	}
	if !g.BlocksVision(domain.Position{X: 1, Y: 1}) {
		t.Error("a map without rooms should be solid wall")
	}
}

func TestRect_Intersects(t *testing.T) {
	r1 := domain.Rect{X: 0, Y: 0, W: 10, H: 10}
	r2 := domain.Rect{X: 5, Y: 5, W: 10, H: 10}
	r3 := domain.Rect{X: 20, Y: 20, W: 5, H: 5}

	if !r1.Intersects(r2) {
		t.Error("r1 and r2 should intersect")
	}
	if r1.Intersects(r3) {
		t.Error("r1 and r3 should not intersect")
	}
}

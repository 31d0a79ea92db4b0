package systems

import (
	"sync"
	"testing"

	"cognitive-vision/internal/domain"
)

func TestSharedGrid_ConcurrentReadersAndWriter(t *testing.T) {
	shared := NewSharedGrid(openGrid(20, 20))
	origin := domain.Position{X: 10, Y: 10}
	wall := domain.Position{X: 12, Y: 10}
	behind := domain.Position{X: 13, Y: 10}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				visible := shared.ComputeFOV(origin, 5)
				if !visible.Contains(origin) {
					t.Error("origin missing")
					return
				}
				_ = shared.HasLineOfSight(origin, behind)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for n := 0; n < 50; n++ {
			kind := domain.TerrainWall
			if n%2 == 1 {
				kind = domain.TerrainOpen
			}
			if err := shared.SetTerrain(wall, kind); err != nil {
				t.Error(err)
				return
			}
		}
	}()
	wg.Wait()

	// The writer's last iteration (n=49) reopened the cell.
	if !shared.ComputeFOV(origin, 5).Contains(behind) {
		t.Error("cell behind a removed wall should be visible")
	}

	if err := shared.SetTerrain(wall, domain.TerrainWall); err != nil {
		t.Fatal(err)
	}
	if shared.ComputeFOV(origin, 5).Contains(behind) {
		t.Error("cell behind a wall should be hidden")
	}
	if shared.HasLineOfSight(origin, behind) {
		t.Error("LOS should be blocked by the wall")
	}
}

func TestSharedGrid_SnapshotIsDetached(t *testing.T) {
	shared := NewSharedGrid(openGrid(10, 10))
	snap := shared.Snapshot()

	if err := shared.SetTerrain(domain.Position{X: 6, Y: 5}, domain.TerrainSmoke); err != nil {
		t.Fatal(err)
	}

	origin := domain.Position{X: 5, Y: 5}
	behind := domain.Position{X: 7, Y: 5}
	if !ComputeFOV(snap, origin, 4).Contains(behind) {
		t.Error("snapshot should not see smoke added after it was taken")
	}
	if shared.ComputeFOV(origin, 4).Contains(behind) {
		t.Error("live grid should see the smoke")
	}

	if err := shared.SetTerrain(domain.Position{X: 10, Y: 0}, domain.TerrainWall); err == nil {
		t.Error("expected an out-of-bounds error")
	}
}

package dungeon

import (
	"math/rand"

	"cognitive-vision/internal/domain"
)

// Generation constants
const (
	MaxRooms = 8
	MinSize  = 4
	MaxSize  = 10

	// Chance per room of a patch of vision-blocking cover inside it.
	coverChance = 0.4
)

// Generate fills a width x height grid with walls and carves rooms joined by
// L-shaped corridors. Some rooms get a patch of forest or smoke.
// The same rng state always yields the same map.
func Generate(rng *rand.Rand, width, height int, table domain.TerrainTable) (*domain.TerrainGrid, []domain.Rect) {
	g := domain.NewTerrainGrid(width, height, table)
	g.Fill(domain.Rect{X: 0, Y: 0, W: width, H: height}, domain.TerrainWall)

	var rooms []domain.Rect

	for i := 0; i < MaxRooms; i++ {
		w := randRange(rng, MinSize, MaxSize)
		h := randRange(rng, MinSize, MaxSize)
		if w+2 > width || h+2 > height {
			continue
		}
		x := randRange(rng, 1, width-w-1)
		y := randRange(rng, 1, height-h-1)

		newRoom := domain.Rect{X: x, Y: y, W: w, H: h}
		failed := false
		for _, other := range rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		createRoom(g, newRoom)

		if len(rooms) > 0 {
			prevX, prevY := rooms[len(rooms)-1].Center()
			currX, currY := newRoom.Center()

			if rng.Intn(2) == 0 {
				createHCorridor(g, prevX, currX, prevY)
				createVCorridor(g, prevY, currY, currX)
			} else {
				createVCorridor(g, prevY, currY, prevX)
				createHCorridor(g, prevX, currX, currY)
			}
		}

		if rng.Float64() < coverChance {
			scatterCover(rng, g, newRoom)
		}

		rooms = append(rooms, newRoom)
	}

	return g, rooms
}

// createRoom carves the interior; the rect's top/left edge stays wall.
func createRoom(g *domain.TerrainGrid, room domain.Rect) {
	g.Fill(domain.Rect{X: room.X + 1, Y: room.Y + 1, W: room.W - 1, H: room.H - 1}, domain.TerrainOpen)
}

func createHCorridor(g *domain.TerrainGrid, x1, x2, y int) {
	start := min(x1, x2)
	end := max(x1, x2)
	g.Fill(domain.Rect{X: start, Y: y, W: end - start + 1, H: 1}, domain.TerrainOpen)
}

func createVCorridor(g *domain.TerrainGrid, y1, y2, x int) {
	start := min(y1, y2)
	end := max(y1, y2)
	g.Fill(domain.Rect{X: x, Y: start, W: 1, H: end - start + 1}, domain.TerrainOpen)
}

// scatterCover drops a 2x2 block of forest or smoke somewhere off the room centre.
func scatterCover(rng *rand.Rand, g *domain.TerrainGrid, room domain.Rect) {
	kind := domain.TerrainForest
	if rng.Intn(2) == 0 {
		kind = domain.TerrainSmoke
	}
	cx, cy := room.Center()
	x := randRange(rng, room.X+1, room.X+room.W-2)
	y := randRange(rng, room.Y+1, room.Y+room.H-2)
	if x <= cx && cx <= x+1 && y <= cy && cy <= y+1 {
		// Keep the centre clear: corridors start there.
		return
	}
	g.Fill(domain.Rect{X: x, Y: y, W: 2, H: 2}, kind)
}

func randRange(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}

package domain

import "strings"

// TerrainKind classifies a cell. Movement and sight read different attributes of it.
type TerrainKind uint8

const (
	TerrainOpen TerrainKind = iota
	TerrainWall
	TerrainForest
	TerrainSmoke
	TerrainWater
	TerrainRubble
	TerrainWindow
	TerrainDoor // closed door
)

var terrainKindToString = map[TerrainKind]string{
	TerrainOpen:   "OPEN",
	TerrainWall:   "WALL",
	TerrainForest: "FOREST",
	TerrainSmoke:  "SMOKE",
	TerrainWater:  "WATER",
	TerrainRubble: "RUBBLE",
	TerrainWindow: "WINDOW",
	TerrainDoor:   "DOOR",
}

// String returns the name used in logs and map legends.
func (k TerrainKind) String() string {
	if val, ok := terrainKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseTerrainKind converts a name back to a kind. The second result is false
// for names that do not match any kind.
func ParseTerrainKind(s string) (TerrainKind, bool) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for k, name := range terrainKindToString {
		if name == upper {
			return k, true
		}
	}
	return TerrainWall, false
}

// TerrainProps are the per-kind attributes. Passable and BlocksVision are
// independent: smoke can be walked through but not seen through.
type TerrainProps struct {
	Passable     bool `json:"passable"`
	BlocksVision bool `json:"blocksVision"`
}

// unknownTerrain applies to kinds missing from a table.
var unknownTerrain = TerrainProps{Passable: false, BlocksVision: true}

// TerrainTable is an immutable kind -> props lookup.
// The zero value treats every kind as unknown.
type TerrainTable struct {
	props map[TerrainKind]TerrainProps
}

// NewTerrainTable copies props so later edits to the caller's map have no effect.
func NewTerrainTable(props map[TerrainKind]TerrainProps) TerrainTable {
	cp := make(map[TerrainKind]TerrainProps, len(props))
	for k, v := range props {
		cp[k] = v
	}
	return TerrainTable{props: cp}
}

// DefaultTerrainTable returns the stock attribute table.
func DefaultTerrainTable() TerrainTable {
	return NewTerrainTable(map[TerrainKind]TerrainProps{
		TerrainOpen:   {Passable: true, BlocksVision: false},
		TerrainWall:   {Passable: false, BlocksVision: true},
		TerrainForest: {Passable: true, BlocksVision: true},
		TerrainSmoke:  {Passable: true, BlocksVision: true},
		TerrainWater:  {Passable: false, BlocksVision: false},
		TerrainRubble: {Passable: true, BlocksVision: false},
		TerrainWindow: {Passable: false, BlocksVision: false},
		TerrainDoor:   {Passable: false, BlocksVision: true},
	})
}

// Props returns the attributes of k, or the opaque/impassable fallback.
func (t TerrainTable) Props(k TerrainKind) TerrainProps {
	if p, ok := t.props[k]; ok {
		return p
	}
	return unknownTerrain
}

// Has reports whether k is configured.
func (t TerrainTable) Has(k TerrainKind) bool {
	_, ok := t.props[k]
	return ok
}

func (t TerrainTable) BlocksVision(k TerrainKind) bool {
	return t.Props(k).BlocksVision
}

func (t TerrainTable) Passable(k TerrainKind) bool {
	return t.Props(k).Passable
}

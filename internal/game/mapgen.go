package game

import (
	"math"
	"math/rand"
)

// Terrain generation tuning.
const (
	treeChance = 0.12 // fraction of interior tiles that become trees
	rockChance = 0.08 // fraction of interior tiles that become rocks

	spawnClearRadius = 3 // tiles around the player start kept clear
	pathHalfWidth    = 1 // carved centre paths are 2*pathHalfWidth tiles wide

	// Placement search: per-item attempt cap for the rejection samplers.
	// When the cap runs out we silently return fewer positions than asked.
	placementAttempts = 60

	chestMinSeparation = 8.0 // tiles, centre-to-centre
	spawnMinPlayerDist = 8.0 // tiles, enemy spawns keep this far from the start
)

// GenerateTerrain builds a cols×rows tile grid: a solid tree border, random
// interior fill at the grass/tree/rock split, a cleared spawn zone around
// the map centre, and two straight paths carved through the centre.
func GenerateTerrain(cols, rows int, rng *rand.Rand) *TileMap {
	tm := NewTileMap(cols, rows)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			// Border wall.
			if col == 0 || row == 0 || col == cols-1 || row == rows-1 {
				tm.Set(col, row, TileTree)
				continue
			}
			r := rng.Float64()
			switch {
			case r < treeChance:
				tm.Set(col, row, TileTree)
			case r < treeChance+rockChance:
				tm.Set(col, row, TileRock)
			default:
				tm.Set(col, row, TileGrass)
			}
		}
	}

	midCol := cols / 2
	midRow := rows / 2

	// Two carved straight paths through the centre.
	for col := 1; col < cols-1; col++ {
		for dr := -pathHalfWidth; dr < pathHalfWidth; dr++ {
			tm.Set(col, midRow+dr, TileGrass)
		}
	}
	for row := 1; row < rows-1; row++ {
		for dc := -pathHalfWidth; dc < pathHalfWidth; dc++ {
			tm.Set(midCol+dc, row, TileGrass)
		}
	}

	// Cleared spawn zone around the player start.
	for row := midRow - spawnClearRadius; row <= midRow+spawnClearRadius; row++ {
		for col := midCol - spawnClearRadius; col <= midCol+spawnClearRadius; col++ {
			if col <= 0 || row <= 0 || col >= cols-1 || row >= rows-1 {
				continue
			}
			tm.Set(col, row, TileGrass)
		}
	}

	return tm
}

// PlayerStart returns the world-space start position: the map centre.
func PlayerStart(tm *TileMap) (float64, float64) {
	return TileCenter(tm.Cols/2, tm.Rows/2)
}

// inSpawnZone returns true if (col, row) falls inside the cleared start
// area around the map centre.
func inSpawnZone(tm *TileMap, col, row int) bool {
	midCol := tm.Cols / 2
	midRow := tm.Rows / 2
	return col >= midCol-spawnClearRadius && col <= midCol+spawnClearRadius &&
		row >= midRow-spawnClearRadius && row <= midRow+spawnClearRadius
}

func tileDist(c0, r0, c1, r1 int) float64 {
	dc := float64(c1 - c0)
	dr := float64(r1 - r0)
	return math.Sqrt(dc*dc + dr*dr)
}

// PlaceChests rejection-samples count chest cells: random grass tiles
// outside the spawn zone, mutually separated by chestMinSeparation. The
// search is bounded; fewer than count cells may come back.
func PlaceChests(tm *TileMap, rng *rand.Rand, count int) [][2]int {
	out := make([][2]int, 0, count)
	for len(out) < count {
		placed := false
		for try := 0; try < placementAttempts; try++ {
			col := 1 + rng.Intn(tm.Cols-2)
			row := 1 + rng.Intn(tm.Rows-2)
			if tm.At(col, row) != TileGrass || inSpawnZone(tm, col, row) {
				continue
			}
			tooClose := false
			for _, c := range out {
				if tileDist(c[0], c[1], col, row) < chestMinSeparation {
					tooClose = true
					break
				}
			}
			if tooClose {
				continue
			}
			out = append(out, [2]int{col, row})
			placed = true
			break
		}
		if !placed {
			break
		}
	}
	return out
}

// SpawnPoint is one enemy placement produced by the generator.
type SpawnPoint struct {
	Col, Row int
	Type     EnemyType
}

// spawnTypeCycle is the fixed sequence enemy types are dealt from, so every
// session gets a spread of behaviours regardless of where spawns land.
var spawnTypeCycle = []EnemyType{EnemyBoar, EnemyWolf, EnemyShaman, EnemyOgre}

// PlaceEnemySpawns rejection-samples count spawn cells: random grass tiles
// outside the spawn zone and at least spawnMinPlayerDist tiles from the
// player start. Types cycle through spawnTypeCycle. Bounded search; may
// return fewer spawns than requested.
func PlaceEnemySpawns(tm *TileMap, rng *rand.Rand, count int) []SpawnPoint {
	startCol := tm.Cols / 2
	startRow := tm.Rows / 2
	out := make([]SpawnPoint, 0, count)
	for len(out) < count {
		placed := false
		for try := 0; try < placementAttempts; try++ {
			col := 1 + rng.Intn(tm.Cols-2)
			row := 1 + rng.Intn(tm.Rows-2)
			if tm.At(col, row) != TileGrass || inSpawnZone(tm, col, row) {
				continue
			}
			if tileDist(startCol, startRow, col, row) < spawnMinPlayerDist {
				continue
			}
			out = append(out, SpawnPoint{
				Col:  col,
				Row:  row,
				Type: spawnTypeCycle[len(out)%len(spawnTypeCycle)],
			})
			placed = true
			break
		}
		if !placed {
			break
		}
	}
	return out
}

package game

// tileSize is the edge length of one map tile in world pixels.
const tileSize = 16

// TileKind identifies what occupies a map cell.
type TileKind uint8

const (
	TileGrass TileKind = iota // open ground, walkable
	TileTree                  // tree, blocks movement
	TileRock                  // boulder, blocks movement
	tileKindCount             // sentinel
)

// IsObstacle returns true if the tile blocks movement.
func (t TileKind) IsObstacle() bool {
	return t == TileTree || t == TileRock
}

// TileMap is the authoritative per-cell terrain representation.
type TileMap struct {
	Cols  int
	Rows  int
	Tiles []TileKind // row-major: index = row*Cols + col
}

// NewTileMap creates a tile map with all-grass ground.
func NewTileMap(cols, rows int) *TileMap {
	return &TileMap{Cols: cols, Rows: rows, Tiles: make([]TileKind, cols*rows)}
}

// inBounds returns true if (col, row) is within the tile map.
func (tm *TileMap) inBounds(col, row int) bool {
	return col >= 0 && col < tm.Cols && row >= 0 && row < tm.Rows
}

// At returns the tile at (col, row). Out-of-bounds reads report TileTree so
// everything beyond the map edge behaves as a solid wall.
func (tm *TileMap) At(col, row int) TileKind {
	if !tm.inBounds(col, row) {
		return TileTree
	}
	return tm.Tiles[row*tm.Cols+col]
}

// Set writes the tile at (col, row). Out-of-bounds writes are ignored.
func (tm *TileMap) Set(col, row int, k TileKind) {
	if !tm.inBounds(col, row) {
		return
	}
	tm.Tiles[row*tm.Cols+col] = k
}

// IsWalkable returns true if an entity can stand on (col, row).
func (tm *TileMap) IsWalkable(col, row int) bool {
	return !tm.At(col, row).IsObstacle()
}

// WalkableAt returns true if the world-space point (x, y) lies on a
// walkable tile.
func (tm *TileMap) WalkableAt(x, y float64) bool {
	if x < 0 || y < 0 {
		return false
	}
	return tm.IsWalkable(int(x)/tileSize, int(y)/tileSize)
}

// TileCenter returns the world-space centre of cell (col, row).
func TileCenter(col, row int) (float64, float64) {
	return float64(col)*tileSize + tileSize/2, float64(row)*tileSize + tileSize/2
}

package game

import "math/rand"

// TestSim is a headless session harness used by tests and the report tool.
// It mirrors Game's update loop without any Ebitengine dependency and
// supports deterministic seeding and scripted input.
type TestSim struct {
	Session *Session
	tm      *TileMap
	rng     *rand.Rand
	verbose bool

	held InputState // input applied on every RunTicks step

	// collected by options, consumed on construction
	cols, rows int
	generate   bool
	spawns     []SpawnPoint
	genSpawns  int
	chestCells [][2]int
	genChests  int
	playerAt   *[2]float64
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // seed, terrain shape, verbose
	simOptEntity                      // enemies, chests, player position
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}}
}

// WithFlatTerrain uses an all-grass map with the border wall only, so
// entity placement in scenarios is unconstrained.
func WithFlatTerrain(cols, rows int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cols, ts.rows = cols, rows
		ts.generate = false
	}}
}

// WithGeneratedTerrain runs the full map generator at the given size.
func WithGeneratedTerrain(cols, rows int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cols, ts.rows = cols, rows
		ts.generate = true
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.verbose = v
	}}
}

// WithEnemy places one enemy of the given type at a tile.
func WithEnemy(typ EnemyType, col, row int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.spawns = append(ts.spawns, SpawnPoint{Col: col, Row: row, Type: typ})
	}}
}

// WithGeneratedSpawns asks the map generator for count enemy spawns.
func WithGeneratedSpawns(count int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.genSpawns = count
	}}
}

// WithChestAt places one chest at a tile.
func WithChestAt(col, row int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.chestCells = append(ts.chestCells, [2]int{col, row})
	}}
}

// WithGeneratedChests asks the map generator for count chest positions.
func WithGeneratedChests(count int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.genChests = count
	}}
}

// WithPlayerAt overrides the player's starting world position.
func WithPlayerAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.playerAt = &[2]float64{x, y}
	}}
}

// NewTestSim constructs a harness in two ordered passes: infrastructure
// (seed, terrain, verbosity), then entities on the built terrain.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		cols: 30,
		rows: 30,
		rng:  rand.New(rand.NewSource(1)), // #nosec G404 -- test harness default
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}

	if ts.generate {
		ts.tm = GenerateTerrain(ts.cols, ts.rows, ts.rng)
	} else {
		ts.tm = flatTerrain(ts.cols, ts.rows)
	}

	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	if ts.genSpawns > 0 {
		ts.spawns = append(ts.spawns, PlaceEnemySpawns(ts.tm, ts.rng, ts.genSpawns)...)
	}
	if ts.genChests > 0 {
		ts.chestCells = append(ts.chestCells, PlaceChests(ts.tm, ts.rng, ts.genChests)...)
	}

	ts.Session = NewSession(ts.tm, ts.rng, NewSimLog(ts.verbose), ts.spawns, ts.chestCells)
	if ts.playerAt != nil {
		ts.Session.player.x = ts.playerAt[0]
		ts.Session.player.y = ts.playerAt[1]
	}
	return ts
}

// flatTerrain builds an all-grass map with just the border wall.
func flatTerrain(cols, rows int) *TileMap {
	tm := NewTileMap(cols, rows)
	for col := 0; col < cols; col++ {
		tm.Set(col, 0, TileTree)
		tm.Set(col, rows-1, TileTree)
	}
	for row := 0; row < rows; row++ {
		tm.Set(0, row, TileTree)
		tm.Set(cols-1, row, TileTree)
	}
	return tm
}

// Hold sets the input applied on every subsequent RunTicks step.
func (ts *TestSim) Hold(in InputState) {
	ts.held = in
}

// Step advances one tick under the given input.
func (ts *TestSim) Step(in InputState) {
	ts.Session.Update(in)
}

// RunTicks advances n ticks under the held input.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Session.Update(ts.held)
	}
}

// RunUntil advances up to maxTicks under the held input, stopping early
// when predicate returns true. Returns the tick the predicate fired on, or
// -1 if it never did.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Session.Update(ts.held)
		if predicate(ts) {
			return ts.Session.Tick()
		}
	}
	return -1
}

// Terrain returns the harness tile map.
func (ts *TestSim) Terrain() *TileMap {
	return ts.tm
}

package game

import (
	"math"
	"math/rand"
)

// Enemy behaviour tuning (pixels unless noted).
const (
	enemyRadius     = 6
	enemyBaseSpeed  = 1.0   // pixels per tick before the per-type multiplier
	chaseRange      = 120.0 // closer than this, patrol flips to pursuit
	shootRange      = 200.0 // ranged enemies fire inside this
	patrolRadius    = 48.0  // patrol targets are rolled within this box
	patrolTolerance = 4.0   // close enough to a patrol target to stop

	shotSpeed       = 2.5  // projectile pixels per tick
	shotSpawnOffset = 10.0 // spawn this far along the aim vector
)

// EnemyType identifies an enemy species.
type EnemyType int

const (
	EnemyBoar EnemyType = iota // fast charger, one hit
	EnemyWolf                  // faster still, one hit
	EnemyShaman                // ranged caster, three hits
	EnemyOgre                  // slow bruiser, three hits
)

func (t EnemyType) String() string {
	switch t {
	case EnemyBoar:
		return "boar"
	case EnemyWolf:
		return "wolf"
	case EnemyShaman:
		return "shaman"
	case EnemyOgre:
		return "ogre"
	default:
		return "unknown"
	}
}

// enemyParams bundles the static per-type stats.
type enemyParams struct {
	hp       int     // melee activations to kill
	speedMul float64 // applied to enemyBaseSpeed
	shoots   bool    // fires projectiles at the player
}

// enemyTable maps each EnemyType to its parameters.
var enemyTable = map[EnemyType]enemyParams{
	EnemyBoar:   {hp: 1, speedMul: 1.2, shoots: false},
	EnemyWolf:   {hp: 1, speedMul: 1.5, shoots: false},
	EnemyShaman: {hp: 3, speedMul: 0.8, shoots: true},
	EnemyOgre:   {hp: 3, speedMul: 0.6, shoots: false},
}

// Enemy is one hostile on the map.
type Enemy struct {
	x, y float64
	typ  EnemyType
	hp   int

	chasing bool
	dying   bool
	deadAt  int // tick the dying fade ends

	patrolX, patrolY float64
	retargetAt       int // tick the patrol target is re-rolled

	nextShotAt int // earliest tick a ranged enemy may fire again
}

// NewEnemy creates an enemy of the given type at (x, y) with full type HP.
func NewEnemy(typ EnemyType, x, y float64) *Enemy {
	return &Enemy{
		x:       x,
		y:       y,
		typ:     typ,
		hp:      enemyTable[typ].hp,
		patrolX: x,
		patrolY: y,
	}
}

// Type returns the enemy's species.
func (e *Enemy) Type() EnemyType { return e.typ }

// HP returns remaining melee hits.
func (e *Enemy) HP() int { return e.hp }

// Pos returns the enemy's world position.
func (e *Enemy) Pos() (float64, float64) { return e.x, e.y }

// Chasing reports whether the enemy pursued the player last update.
func (e *Enemy) Chasing() bool { return e.chasing }

// Dying reports whether the enemy is playing out its death fade.
func (e *Enemy) Dying() bool { return e.dying }

// Gone reports whether the death fade has finished and the enemy should be
// reaped.
func (e *Enemy) Gone(tick int) bool {
	return e.dying && tick >= e.deadAt
}

// Hit applies one melee activation. It returns true when this hit killed
// the enemy, which starts the death fade.
func (e *Enemy) Hit(tick int) bool {
	if e.dying {
		return false
	}
	e.hp--
	if e.hp > 0 {
		return false
	}
	e.dying = true
	e.deadAt = tick + deathFadeTicks
	return true
}

// Update runs one tick of the chase/patrol state machine and movement, and
// returns a projectile if the enemy fired this tick.
func (e *Enemy) Update(tm *TileMap, px, py float64, tick int, rng *rand.Rand) *Projectile {
	if e.dying {
		return nil
	}

	params := enemyTable[e.typ]
	dx := px - e.x
	dy := py - e.y
	dist := math.Sqrt(dx*dx + dy*dy)

	e.chasing = dist < chaseRange

	var vx, vy float64
	if e.chasing {
		if dist > 0 {
			speed := enemyBaseSpeed * params.speedMul
			vx = dx / dist * speed
			vy = dy / dist * speed
		}
	} else {
		// Patrol: wander toward a nearby point, re-rolled on a timer.
		if tick >= e.retargetAt {
			e.patrolX = e.x + (rng.Float64()*2-1)*patrolRadius
			e.patrolY = e.y + (rng.Float64()*2-1)*patrolRadius
			e.retargetAt = tick + patrolRetargetTicks
		}
		tdx := e.patrolX - e.x
		tdy := e.patrolY - e.y
		tdist := math.Sqrt(tdx*tdx + tdy*tdy)
		if tdist > patrolTolerance {
			speed := enemyBaseSpeed * params.speedMul * 0.5
			vx = tdx / tdist * speed
			vy = tdy / tdist * speed
		}
	}

	e.x, e.y = moveWithCollision(tm, e.x, e.y, vx, vy)

	if params.shoots && dist < shootRange && tick >= e.nextShotAt && dist > 0 {
		e.nextShotAt = tick + shotCooldownTicks
		// Spawn a little way along the aim vector so the shot clears the
		// shooter's own tile.
		sx := e.x + dx/dist*shotSpawnOffset
		sy := e.y + dy/dist*shotSpawnOffset
		return NewProjectile(sx, sy, dx/dist*shotSpeed, dy/dist*shotSpeed, tick)
	}
	return nil
}

// moveWithCollision advances (x, y) by (vx, vy), testing each axis against
// the tile map independently so entities slide along obstacles.
func moveWithCollision(tm *TileMap, x, y, vx, vy float64) (float64, float64) {
	if vx != 0 && tm.WalkableAt(x+vx, y) {
		x += vx
	}
	if vy != 0 && tm.WalkableAt(x, y+vy) {
		y += vy
	}
	return x, y
}

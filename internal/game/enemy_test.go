package game

import (
	"math"
	"math/rand"
	"testing"
)

func flat40() *TileMap {
	return flatTerrain(40, 40)
}

func TestEnemy_ChaseThreshold(t *testing.T) {
	tm := flat40()
	rng := rand.New(rand.NewSource(2))
	e := NewEnemy(EnemyBoar, 300, 300)

	// Player just outside chase range: patrols.
	e.Update(tm, 300+chaseRange+1, 300, 1, rng)
	if e.Chasing() {
		t.Fatal("enemy should patrol outside chase range")
	}

	// Player inside chase range: chases, moving toward the player.
	before := e.x
	e.Update(tm, 300+chaseRange-1, 300, 2, rng)
	if !e.Chasing() {
		t.Fatal("enemy should chase inside chase range")
	}
	if e.x <= before {
		t.Fatalf("chasing enemy should close on the player, x %f -> %f", before, e.x)
	}
}

func TestEnemy_ChaseSpeedMultiplier(t *testing.T) {
	tm := flat40()
	rng := rand.New(rand.NewSource(2))
	wolf := NewEnemy(EnemyWolf, 300, 300)
	ogre := NewEnemy(EnemyOgre, 300, 300)
	wolf.Update(tm, 400, 300, 1, rng)
	ogre.Update(tm, 400, 300, 1, rng)

	wolfStep := wolf.x - 300
	ogreStep := ogre.x - 300
	if wolfStep <= ogreStep {
		t.Fatalf("wolf (%f) should outpace ogre (%f)", wolfStep, ogreStep)
	}
	wantWolf := enemyBaseSpeed * enemyTable[EnemyWolf].speedMul
	if math.Abs(wolfStep-wantWolf) > 1e-9 {
		t.Fatalf("wolf step %f, want %f", wolfStep, wantWolf)
	}
}

func TestEnemy_PatrolRetargetAndStop(t *testing.T) {
	tm := flat40()
	rng := rand.New(rand.NewSource(9))
	e := NewEnemy(EnemyBoar, 300, 300)

	// Far-away player: first update rolls a patrol target near the enemy.
	e.Update(tm, 600, 600, 1, rng)
	if e.Chasing() {
		t.Fatal("should be patrolling")
	}
	dx := e.patrolX - 300
	dy := e.patrolY - 300
	if math.Abs(dx) > patrolRadius || math.Abs(dy) > patrolRadius {
		t.Fatalf("patrol target (%f,%f) rolled outside the patrol box", e.patrolX, e.patrolY)
	}
	if e.retargetAt != 1+patrolRetargetTicks {
		t.Fatalf("retarget deadline = %d, want %d", e.retargetAt, 1+patrolRetargetTicks)
	}

	// Within tolerance of the target: velocity is zeroed.
	e.patrolX, e.patrolY = e.x+patrolTolerance/2, e.y
	px, py := e.x, e.y
	e.Update(tm, 600, 600, 2, rng)
	if e.x != px || e.y != py {
		t.Fatal("enemy inside patrol tolerance should not move")
	}
}

func TestEnemy_ShooterCooldownAndRange(t *testing.T) {
	tm := flat40()
	rng := rand.New(rand.NewSource(4))
	e := NewEnemy(EnemyShaman, 300, 300)

	// Outside shoot range (but still patrolling): no shot.
	if pr := e.Update(tm, 300+shootRange+10, 300, 1, rng); pr != nil {
		t.Fatal("no shot expected outside shoot range")
	}

	// Inside range: fires, then holds fire for the cooldown.
	pr := e.Update(tm, 300+shootRange-20, 300, 2, rng)
	if pr == nil {
		t.Fatal("expected a shot inside shoot range")
	}
	if e.nextShotAt != 2+shotCooldownTicks {
		t.Fatalf("next shot at %d, want %d", e.nextShotAt, 2+shotCooldownTicks)
	}
	if again := e.Update(tm, 300+shootRange-20, 300, 3, rng); again != nil {
		t.Fatal("shot during cooldown")
	}
	if final := e.Update(tm, 300+shootRange-20, 300, 2+shotCooldownTicks, rng); final == nil {
		t.Fatal("expected a shot once the cooldown expired")
	}
}

func TestEnemy_ShotSpawnOffset(t *testing.T) {
	tm := flat40()
	rng := rand.New(rand.NewSource(4))
	e := NewEnemy(EnemyShaman, 300, 300)
	pr := e.Update(tm, 450, 300, 1, rng)
	if pr == nil {
		t.Fatal("expected a shot")
	}
	// The shot spawns offset along the aim vector, not on the shooter.
	d := dist(e.x, e.y, pr.x, pr.y)
	if d < shotSpawnOffset/2 {
		t.Fatalf("shot spawned %f px from shooter, want an offset", d)
	}
	if pr.vx <= 0 || pr.vy != 0 {
		t.Fatalf("shot velocity (%f,%f) should aim at the player", pr.vx, pr.vy)
	}
}

func TestEnemy_HitAndDeathFade(t *testing.T) {
	e := NewEnemy(EnemyOgre, 100, 100)
	if killed := e.Hit(10); killed {
		t.Fatal("first hit should not kill a 3hp enemy")
	}
	if killed := e.Hit(11); killed {
		t.Fatal("second hit should not kill a 3hp enemy")
	}
	if killed := e.Hit(12); !killed {
		t.Fatal("third hit should kill a 3hp enemy")
	}
	if !e.Dying() {
		t.Fatal("killed enemy should be dying")
	}
	if e.Gone(12) {
		t.Fatal("enemy should linger through the death fade")
	}
	if !e.Gone(12 + deathFadeTicks) {
		t.Fatal("enemy should be gone after the fade")
	}
	// Hits on a dying enemy do nothing.
	if e.Hit(13) {
		t.Fatal("hit on a dying enemy reported a kill")
	}
}

func TestEnemy_DyingStopsMoving(t *testing.T) {
	tm := flat40()
	rng := rand.New(rand.NewSource(2))
	e := NewEnemy(EnemyBoar, 300, 300)
	e.Hit(1)
	e.Update(tm, 310, 300, 2, rng)
	if e.x != 300 || e.y != 300 {
		t.Fatal("dying enemy should not move")
	}
}

func TestProjectile_TimeoutAndObstacle(t *testing.T) {
	tm := flat40()

	// Timeout.
	pr := NewProjectile(300, 300, 0, 0, 1)
	for tick := 2; tick <= 1+shotLifetimeTicks; tick++ {
		pr.Update(tm, tick)
	}
	if !pr.Done() {
		t.Fatal("stationary projectile should time out")
	}

	// Obstacle collision: fly into the border wall.
	pr = NewProjectile(40, 300, -8, 0, 1)
	for tick := 2; tick < 20 && !pr.Done(); tick++ {
		pr.Update(tm, tick)
	}
	if !pr.Done() {
		t.Fatal("projectile should die on the border wall")
	}
}

func TestMoveWithCollision_SlidesAlongWalls(t *testing.T) {
	tm := flat40()
	tm.Set(11, 10, TileRock)
	x0, y0 := TileCenter(10, 10)

	// Blocked straight right, free downward: the x move is rejected, the y
	// move still applies.
	x, y := moveWithCollision(tm, x0, y0, tileSize, 2)
	if x != x0 {
		t.Fatalf("x should be blocked by the rock, got %f", x)
	}
	if y != y0+2 {
		t.Fatalf("y should advance, got %f", y)
	}
}

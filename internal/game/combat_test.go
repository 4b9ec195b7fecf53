package game

import "testing"

// swingAt parks the player at (px,py) facing right with the enemy inside
// the melee hitbox, presses attack once, then idles out the swing and
// cooldown with the enemy moved out of reach.
func swingAt(s *Session, e *Enemy) {
	s.player.x, s.player.y = 200, 200
	s.player.facing = DirRight
	s.player.kbVX, s.player.kbVY = 0, 0
	e.x, e.y = 200+attackReach, 200
	s.Update(InputState{AttackPressed: true})
	e.x, e.y = 500, 500
	for i := 0; i < attackSwingTicks+attackCooldownTicks; i++ {
		s.Update(InputState{})
	}
}

func TestMelee_ThreeHitKillThreshold(t *testing.T) {
	ts := NewTestSim(WithFlatTerrain(50, 50), WithEnemy(EnemyOgre, 40, 40), WithSeed(7))
	s := ts.Session
	e := s.Enemies()[0]

	swingAt(s, e)
	if e.HP() != 2 || e.Dying() {
		t.Fatalf("after 1 swing: hp=%d dying=%v", e.HP(), e.Dying())
	}
	swingAt(s, e)
	if e.HP() != 1 || e.Dying() {
		t.Fatalf("after 2 swings: hp=%d dying=%v", e.HP(), e.Dying())
	}
	swingAt(s, e)
	if e.HP() != 0 || !e.Dying() {
		t.Fatalf("after 3 swings: hp=%d dying=%v", e.HP(), e.Dying())
	}
}

func TestMelee_OneHitPerSwing(t *testing.T) {
	ts := NewTestSim(WithFlatTerrain(50, 50), WithEnemy(EnemyOgre, 40, 40), WithSeed(7))
	s := ts.Session
	e := s.Enemies()[0]

	// Keep the enemy inside the hitbox for the whole swing: the hitbox is
	// consumed on first contact, so repeated overlap must not re-hit.
	s.player.x, s.player.y = 200, 200
	s.player.facing = DirRight
	for i := 0; i < attackSwingTicks; i++ {
		e.x, e.y = 200+attackReach, 200
		in := InputState{}
		if i == 0 {
			in.AttackPressed = true
		}
		s.Update(in)
	}
	if e.HP() != 2 {
		t.Fatalf("one swing landed %d hits", enemyTable[EnemyOgre].hp-e.HP())
	}
}

func TestMelee_OneSwingOneVictim(t *testing.T) {
	ts := NewTestSim(
		WithFlatTerrain(50, 50),
		WithEnemy(EnemyOgre, 40, 40),
		WithEnemy(EnemyOgre, 42, 40),
		WithSeed(7),
	)
	s := ts.Session
	a := s.Enemies()[0]
	b := s.Enemies()[1]

	// Both enemies overlap the hitbox; only the first contact spends it.
	s.player.x, s.player.y = 200, 200
	s.player.facing = DirRight
	a.x, a.y = 200+attackReach, 198
	b.x, b.y = 200+attackReach, 202
	s.Update(InputState{AttackPressed: true})

	total := (enemyTable[EnemyOgre].hp - a.HP()) + (enemyTable[EnemyOgre].hp - b.HP())
	if total != 1 {
		t.Fatalf("one swing dealt %d total damage, want 1", total)
	}
}

func TestPlayerDamage_KnockbackAndIFrames(t *testing.T) {
	ts := NewTestSim(WithFlatTerrain(50, 50), WithEnemy(EnemyOgre, 40, 40), WithSeed(7))
	s := ts.Session
	e := s.Enemies()[0]

	s.player.x, s.player.y = 200, 200
	e.x, e.y = 190, 200 // overlapping from the left
	s.Update(InputState{})

	p := s.player
	if p.hp != playerMaxHP-contactDamage {
		t.Fatalf("hp = %d after contact, want %d", p.hp, playerMaxHP-contactDamage)
	}
	if !p.Invulnerable(s.tick) {
		t.Fatal("i-frames should be open after damage")
	}
	if p.kbVX <= 0 {
		t.Fatalf("knockback should push away from the source, kbVX=%f", p.kbVX)
	}

	// Repeated overlap inside the window must not re-trigger.
	hpAfter := p.hp
	for i := 0; i < invulnTicks-2; i++ {
		e.x, e.y = p.x-10, p.y
		p.kbVX, p.kbVY = 0, 0
		s.Update(InputState{})
	}
	if p.hp != hpAfter {
		t.Fatalf("damage re-triggered inside the i-frame window: %d -> %d", hpAfter, p.hp)
	}

	// After the window closes, contact hurts again.
	for i := 0; i < invulnTicks; i++ {
		e.x, e.y = 500, 500
		s.Update(InputState{})
	}
	e.x, e.y = p.x-10, p.y
	s.Update(InputState{})
	if p.hp != hpAfter-contactDamage {
		t.Fatalf("hp = %d after the window, want %d", p.hp, hpAfter-contactDamage)
	}
}

func TestPlayerDamage_TwoSourcesSameFrame(t *testing.T) {
	ts := NewTestSim(
		WithFlatTerrain(50, 50),
		WithEnemy(EnemyOgre, 40, 40),
		WithEnemy(EnemyOgre, 42, 40),
		WithSeed(7),
	)
	s := ts.Session
	a := s.Enemies()[0]
	b := s.Enemies()[1]

	s.player.x, s.player.y = 200, 200
	a.x, a.y = 192, 200
	b.x, b.y = 208, 200
	s.Update(InputState{})

	// Sequential iteration plus the i-frame guard: exactly one hit lands.
	if s.player.hp != playerMaxHP-contactDamage {
		t.Fatalf("hp = %d, want %d", s.player.hp, playerMaxHP-contactDamage)
	}
}

func TestHeartDrop_AndHealCap(t *testing.T) {
	// The second ogre keeps the session alive after the boar dies.
	ts := NewTestSim(
		WithFlatTerrain(50, 50),
		WithEnemy(EnemyBoar, 40, 40),
		WithEnemy(EnemyOgre, 45, 45),
		WithSeed(7),
	)
	s := ts.Session
	e := s.Enemies()[0]

	swingAt(s, e) // boar dies in one hit
	if len(s.Hearts()) != 1 {
		t.Fatalf("expected a heart drop, got %d", len(s.Hearts()))
	}

	// Walk over the heart at reduced health: heals by heartHeal.
	h := s.Hearts()[0]
	s.player.hp = 1
	s.player.x, s.player.y = h.x, h.y
	s.Update(InputState{})
	if s.player.hp != 1+heartHeal {
		t.Fatalf("hp = %d after heart, want %d", s.player.hp, 1+heartHeal)
	}
	if len(s.Hearts()) != 0 {
		t.Fatal("collected heart should be reaped")
	}
}

func TestHeartPickup_CapsAtEffectiveMax(t *testing.T) {
	ts := NewTestSim(
		WithFlatTerrain(50, 50),
		WithEnemy(EnemyBoar, 40, 40),
		WithEnemy(EnemyOgre, 45, 45),
		WithSeed(7),
	)
	s := ts.Session
	e := s.Enemies()[0]

	swingAt(s, e)
	h := s.Hearts()[0]
	s.player.hp = s.player.maxHP - 1
	s.player.x, s.player.y = h.x, h.y
	s.Update(InputState{})
	if s.player.hp != s.player.maxHP {
		t.Fatalf("hp = %d, want cap %d", s.player.hp, s.player.maxHP)
	}
}

func TestProjectile_HurtsPlayer(t *testing.T) {
	ts := NewTestSim(WithFlatTerrain(50, 50), WithSeed(7))
	s := ts.Session

	s.player.x, s.player.y = 200, 200
	s.projectiles = append(s.projectiles, NewProjectile(206, 200, 0, 0, s.tick))
	s.Update(InputState{})

	if s.player.hp != playerMaxHP-contactDamage {
		t.Fatalf("hp = %d after projectile hit, want %d", s.player.hp, playerMaxHP-contactDamage)
	}
	if len(s.Projectiles()) != 0 {
		t.Fatal("projectile should be consumed on player contact")
	}
	if s.player.kbVX >= 0 {
		t.Fatalf("knockback should push left, kbVX=%f", s.player.kbVX)
	}
}

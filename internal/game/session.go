package game

import (
	"fmt"
	"math"
	"math/rand"
)

const heartRadius = 5.0

// SessionState is the lifecycle of one play-through.
type SessionState int

const (
	SessionPlaying SessionState = iota
	SessionWon                  // every enemy dead
	SessionLost                 // player out of health
)

func (st SessionState) String() string {
	switch st {
	case SessionPlaying:
		return "playing"
	case SessionWon:
		return "won"
	case SessionLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Heart is a dropped health pickup.
type Heart struct {
	x, y  float64
	taken bool
}

// Pos returns the heart's world position.
func (h *Heart) Pos() (float64, float64) { return h.x, h.y }

// FloatLabel is a transient message anchored in world space.
type FloatLabel struct {
	Text     string
	X, Y     float64
	ExpireAt int
}

// Session owns all entities for one play-through and mutates them in a
// fixed order once per frame. There is no background work: every effect,
// timer and cancellation is a tick comparison inside Update.
type Session struct {
	tm  *TileMap
	rng *rand.Rand
	log *SimLog

	tick  int
	state SessionState

	player      *Player
	enemies     []*Enemy
	projectiles []*Projectile
	hearts      []*Heart
	chests      []*Chest
	labels      []FloatLabel

	kills int
}

// NewSession builds a fresh play-through on the given terrain. The terrain
// is shared across restarts; spawns and chest cells come from the map
// generator (or a test harness).
func NewSession(tm *TileMap, rng *rand.Rand, log *SimLog, spawns []SpawnPoint, chestCells [][2]int) *Session {
	px, py := PlayerStart(tm)
	s := &Session{
		tm:     tm,
		rng:    rng,
		log:    log,
		player: NewPlayer(px, py),
	}
	for _, sp := range spawns {
		x, y := TileCenter(sp.Col, sp.Row)
		s.enemies = append(s.enemies, NewEnemy(sp.Type, x, y))
	}
	for _, cc := range chestCells {
		x, y := TileCenter(cc[0], cc[1])
		s.chests = append(s.chests, NewChest(x, y))
	}
	return s
}

// Update advances the session one tick under the given input. All state
// mutation for the frame happens here, sequentially.
func (s *Session) Update(in InputState) {
	if s.state != SessionPlaying {
		return
	}
	s.tick++

	s.updatePlayer(in)
	s.resolveMelee()
	s.updateEnemies()
	s.updateProjectiles()
	s.collectHearts()
	s.openChests()
	s.reap()

	if !s.player.Alive() {
		s.state = SessionLost
		s.log.Add(s.tick, "--", "session", "lost", "player out of hearts", 0)
		return
	}
	if s.liveEnemyCount() == 0 {
		s.state = SessionWon
		s.log.Add(s.tick, "--", "session", "won",
			fmt.Sprintf("%d enemies defeated", s.kills), float64(s.kills))
	}
}

// updatePlayer applies movement input, decaying knockback, facing, and the
// swing lifecycle.
func (s *Session) updatePlayer(in InputState) {
	p := s.player

	vx := in.MoveX * playerSpeed
	vy := in.MoveY * playerSpeed

	// Knockback velocity is in pixels per second; fold in one tick's worth
	// and let it bleed off.
	vx += p.kbVX / tickRate
	vy += p.kbVY / tickRate
	p.kbVX *= knockbackDecay
	p.kbVY *= knockbackDecay
	if math.Abs(p.kbVX) < 1 {
		p.kbVX = 0
	}
	if math.Abs(p.kbVY) < 1 {
		p.kbVY = 0
	}

	p.x, p.y = moveWithCollision(s.tm, p.x, p.y, vx, vy)
	p.facing = FacingFromVelocity(in.MoveX, in.MoveY, p.facing)

	if p.attacking && s.tick >= p.attackUntil {
		p.attacking = false
	}
	if p.AttackReady(in.AttackPressed, s.tick) {
		p.StartAttack(s.tick)
		s.log.AddVerbose(s.tick, "player", "combat", "swing", p.facing.String(), 0)
	}
}

// resolveMelee applies the active swing's hitbox. The hitbox is consumed on
// its first contact, so one swing lands at most one hit however many
// overlap checks it survives.
func (s *Session) resolveMelee() {
	p := s.player
	if !p.attacking || p.hitUsed {
		return
	}
	hx, hy := p.HitboxCenter()
	for _, e := range s.enemies {
		if e.dying {
			continue
		}
		if dist(hx, hy, e.x, e.y) > hitboxRadius+enemyRadius {
			continue
		}
		p.hitUsed = true
		killed := e.Hit(s.tick)
		s.log.Add(s.tick, "player", "combat", "hit",
			fmt.Sprintf("%s hp → %d", e.typ, e.hp), float64(e.hp))
		if killed {
			s.kills++
			s.hearts = append(s.hearts, &Heart{x: e.x, y: e.y})
			s.log.Add(s.tick, "player", "combat", "kill", e.typ.String(), float64(s.kills))
		}
		return
	}
}

// updateEnemies runs each enemy's AI tick, collects fired projectiles and
// applies body-contact damage.
func (s *Session) updateEnemies() {
	p := s.player
	for _, e := range s.enemies {
		if pr := e.Update(s.tm, p.x, p.y, s.tick, s.rng); pr != nil {
			s.projectiles = append(s.projectiles, pr)
			s.log.AddVerbose(s.tick, e.typ.String(), "combat", "shot", "", 0)
		}
		if !e.dying && dist(p.x, p.y, e.x, e.y) < playerRadius+enemyRadius {
			s.damagePlayer(e.x, e.y, e.typ.String())
		}
	}
}

// updateProjectiles moves shots and applies player collisions.
func (s *Session) updateProjectiles() {
	p := s.player
	for _, pr := range s.projectiles {
		pr.Update(s.tm, s.tick)
		if pr.done {
			continue
		}
		if dist(p.x, p.y, pr.x, pr.y) < playerRadius+projectileRadius {
			pr.done = true
			s.damagePlayer(pr.x, pr.y, "shot")
		}
	}
}

// damagePlayer applies contact damage with knockback away from the source.
// Repeated contacts inside the i-frame window are ignored.
func (s *Session) damagePlayer(srcX, srcY float64, srcName string) {
	p := s.player
	if p.Invulnerable(s.tick) {
		return
	}
	p.hp -= contactDamage
	p.invulnUntil = s.tick + invulnTicks
	p.kbVX, p.kbVY = Knockback(srcX, srcY, p.x, p.y, knockbackForce)
	s.log.Add(s.tick, srcName, "combat", "player_damage",
		fmt.Sprintf("hp → %d", p.hp), float64(p.hp))
}

// collectHearts heals the player for each heart walked over, capped at the
// effective maximum.
func (s *Session) collectHearts() {
	p := s.player
	for _, h := range s.hearts {
		if h.taken {
			continue
		}
		if dist(p.x, p.y, h.x, h.y) < playerRadius+heartRadius {
			h.taken = true
			p.Heal(heartHeal)
			s.log.Add(s.tick, "player", "pickup", "heart",
				fmt.Sprintf("hp → %d", p.hp), float64(p.hp))
		}
	}
}

// openChests opens every unopened chest in interaction range and applies
// its reward.
func (s *Session) openChests() {
	p := s.player
	for _, c := range s.chests {
		if c.opened || dist(p.x, p.y, c.x, c.y) > interactRange {
			continue
		}
		c.opened = true
		p.pieces++
		s.addLabel(c.content.Label, c.x, c.y-tileSize)
		s.log.Add(s.tick, "player", "chest", "open",
			fmt.Sprintf("piece %d/%d", p.pieces, len(s.chests)), float64(p.pieces))
		if p.pieces == len(s.chests) {
			p.maxHP += overflowHPBonus
			p.hp = p.maxHP
			s.addLabel("your life force swells!", p.x, p.y-tileSize)
			s.log.Add(s.tick, "player", "chest", "complete",
				fmt.Sprintf("max hp → %d", p.maxHP), float64(p.maxHP))
		}
	}
}

// addLabel queues a transient floating message.
func (s *Session) addLabel(text string, x, y float64) {
	s.labels = append(s.labels, FloatLabel{
		Text:     text,
		X:        x,
		Y:        y,
		ExpireAt: s.tick + labelLifetimeTicks,
	})
}

// reap removes finished entities: faded-out enemies, consumed projectiles,
// taken hearts, expired labels. Chests are never removed.
func (s *Session) reap() {
	enemies := s.enemies[:0]
	for _, e := range s.enemies {
		if !e.Gone(s.tick) {
			enemies = append(enemies, e)
		}
	}
	s.enemies = enemies

	projectiles := s.projectiles[:0]
	for _, pr := range s.projectiles {
		if !pr.done {
			projectiles = append(projectiles, pr)
		}
	}
	s.projectiles = projectiles

	hearts := s.hearts[:0]
	for _, h := range s.hearts {
		if !h.taken {
			hearts = append(hearts, h)
		}
	}
	s.hearts = hearts

	labels := s.labels[:0]
	for _, l := range s.labels {
		if s.tick < l.ExpireAt {
			labels = append(labels, l)
		}
	}
	s.labels = labels
}

// liveEnemyCount counts enemies that are neither dying nor reaped.
func (s *Session) liveEnemyCount() int {
	n := 0
	for _, e := range s.enemies {
		if !e.dying {
			n++
		}
	}
	return n
}

func dist(x0, y0, x1, y1 float64) float64 {
	dx := x1 - x0
	dy := y1 - y0
	return math.Sqrt(dx*dx + dy*dy)
}

// Accessors used by rendering, the report tool and tests.

// Tick returns the current session tick.
func (s *Session) Tick() int { return s.tick }

// State returns the session lifecycle state.
func (s *Session) State() SessionState { return s.state }

// Player returns the session's player.
func (s *Session) Player() *Player { return s.player }

// Enemies returns the live (and dying, not yet reaped) enemies.
func (s *Session) Enemies() []*Enemy { return s.enemies }

// Projectiles returns the in-flight enemy shots.
func (s *Session) Projectiles() []*Projectile { return s.projectiles }

// Hearts returns the uncollected heart pickups.
func (s *Session) Hearts() []*Heart { return s.hearts }

// Chests returns all chests, opened or not.
func (s *Session) Chests() []*Chest { return s.chests }

// Labels returns the active floating labels.
func (s *Session) Labels() []FloatLabel { return s.labels }

// TileMap returns the session terrain.
func (s *Session) TileMap() *TileMap { return s.tm }

// Kills returns how many enemies the player has defeated.
func (s *Session) Kills() int { return s.kills }

// Log returns the session's event log.
func (s *Session) Log() *SimLog { return s.log }

package game

import "math"

const (
	playerRadius = 6
	playerSpeed  = 2.0 // pixels per tick

	playerMaxHP   = 6 // half-hearts
	heartHeal     = 2
	contactDamage = 1

	attackReach  = 14.0 // hitbox centre distance in front of the player
	hitboxRadius = 10.0

	knockbackForce = 300.0 // pixels per second
	knockbackDecay = 0.80  // per-tick velocity retention
)

// Direction is a cardinal facing.
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Vector returns the unit vector for the facing.
func (d Direction) Vector() (float64, float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 1
	}
}

// FacingFromVelocity snaps a velocity vector to a cardinal direction: the
// larger-magnitude axis wins. A zero vector preserves prev.
func FacingFromVelocity(vx, vy float64, prev Direction) Direction {
	if vx == 0 && vy == 0 {
		return prev
	}
	if math.Abs(vx) >= math.Abs(vy) {
		if vx < 0 {
			return DirLeft
		}
		return DirRight
	}
	if vy < 0 {
		return DirUp
	}
	return DirDown
}

// Knockback returns the velocity imparted on a target at (tx, ty) by a
// damage source at (sx, sy): the unit source→target vector scaled by force.
// A coincident source and target impart nothing.
func Knockback(sx, sy, tx, ty, force float64) (float64, float64) {
	dx := tx - sx
	dy := ty - sy
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return 0, 0
	}
	return dx / dist * force, dy / dist * force
}

// Player is the session's single controllable character.
type Player struct {
	x, y   float64
	hp     int
	maxHP  int
	facing Direction

	attacking   bool
	attackUntil int // tick the current swing ends
	lastAttack  int // tick the last swing started
	hitUsed     bool

	invulnUntil int     // i-frame window end
	kbVX, kbVY  float64 // knockback velocity, pixels per second, decaying

	pieces int // triforce pieces collected
}

// NewPlayer creates a player at (x, y) with full default health. lastAttack
// backdates past the cooldown so the first swing is never gated.
func NewPlayer(x, y float64) *Player {
	return &Player{
		x:          x,
		y:          y,
		hp:         playerMaxHP,
		maxHP:      playerMaxHP,
		facing:     DirDown,
		lastAttack: -attackCooldownTicks,
	}
}

// AttackReady reports whether a new swing may start this tick: the attack
// input was just pressed, no swing is active, and the cooldown since the
// last swing start has elapsed.
func (p *Player) AttackReady(justPressed bool, tick int) bool {
	return justPressed && !p.attacking && tick-p.lastAttack > attackCooldownTicks
}

// StartAttack begins a swing at the given tick.
func (p *Player) StartAttack(tick int) {
	p.attacking = true
	p.hitUsed = false
	p.lastAttack = tick
	p.attackUntil = tick + attackSwingTicks
}

// HitboxCenter returns the world position of the melee hitbox, one reach in
// front of the facing.
func (p *Player) HitboxCenter() (float64, float64) {
	fx, fy := p.facing.Vector()
	return p.x + fx*attackReach, p.y + fy*attackReach
}

// Invulnerable reports whether the i-frame window is open at tick.
func (p *Player) Invulnerable(tick int) bool {
	return tick < p.invulnUntil
}

// Alive reports whether the player still has health.
func (p *Player) Alive() bool {
	return p.hp > 0
}

// HP returns the player's current health in half-hearts.
func (p *Player) HP() int { return p.hp }

// MaxHP returns the player's current effective maximum health.
func (p *Player) MaxHP() int { return p.maxHP }

// Pieces returns the number of collected triforce pieces.
func (p *Player) Pieces() int { return p.pieces }

// Facing returns the current cardinal facing.
func (p *Player) Facing() Direction { return p.facing }

// Pos returns the player's world position.
func (p *Player) Pos() (float64, float64) { return p.x, p.y }

// Heal restores hp half-hearts, capped at the effective maximum.
func (p *Player) Heal(hp int) {
	p.hp += hp
	if p.hp > p.maxHP {
		p.hp = p.maxHP
	}
}

package game

const projectileRadius = 3.0

// Projectile is a ranged enemy shot travelling in a straight line.
type Projectile struct {
	x, y     float64
	vx, vy   float64
	expireAt int // tick the shot times out
	done     bool
}

// NewProjectile creates a shot at (x, y) with per-tick velocity (vx, vy).
func NewProjectile(x, y, vx, vy float64, tick int) *Projectile {
	return &Projectile{x: x, y: y, vx: vx, vy: vy, expireAt: tick + shotLifetimeTicks}
}

// Pos returns the projectile's world position.
func (pr *Projectile) Pos() (float64, float64) { return pr.x, pr.y }

// Done reports whether the projectile has been consumed or timed out.
func (pr *Projectile) Done() bool { return pr.done }

// Update advances the shot one tick. It marks itself done on obstacle
// collision or timeout; player collision is the session's call.
func (pr *Projectile) Update(tm *TileMap, tick int) {
	if pr.done {
		return
	}
	pr.x += pr.vx
	pr.y += pr.vy
	if tick >= pr.expireAt || !tm.WalkableAt(pr.x, pr.y) {
		pr.done = true
	}
}

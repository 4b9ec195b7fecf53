package game

// tickRate is the simulation rate in ticks per second (Ebitengine's default
// Update cadence).
const tickRate = 60

// SecsToTicks converts a duration in seconds to whole game ticks, never
// returning less than one.
func SecsToTicks(s float64) int {
	t := int(s * tickRate)
	if t < 1 {
		t = 1
	}
	return t
}

// Gameplay timing, tuned in seconds and stored as ticks.
var (
	attackSwingTicks    = SecsToTicks(0.20) // how long a sword swing stays out
	attackCooldownTicks = SecsToTicks(0.35) // min gap between swing starts
	invulnTicks         = SecsToTicks(1.0)  // i-frame window after taking damage
	deathFadeTicks      = SecsToTicks(0.5)  // dying enemy lingers this long
	patrolRetargetTicks = SecsToTicks(2.5)  // patrol target re-roll interval
	shotCooldownTicks   = SecsToTicks(2.0)  // ranged enemy fire interval
	shotLifetimeTicks   = SecsToTicks(1.8)  // projectile timeout
	labelLifetimeTicks  = SecsToTicks(2.5)  // floating reward label duration
)

package game

import (
	"fmt"
	"strings"
)

// SessionReport renders a plain-text snapshot of the session, suitable for
// pasting into a bug report.
func SessionReport(s *Session) string {
	var b strings.Builder
	p := s.Player()
	px, py := p.Pos()

	fmt.Fprintf(&b, "--- Overgrove session report ---\n")
	fmt.Fprintf(&b, "tick=%d state=%s kills=%d\n", s.Tick(), s.State(), s.Kills())
	fmt.Fprintf(&b, "player pos=(%.0f,%.0f) hp=%d/%d facing=%s pieces=%d invuln=%v\n",
		px, py, p.HP(), p.MaxHP(), p.Facing(), p.Pieces(), p.Invulnerable(s.Tick()))

	fmt.Fprintf(&b, "\nenemies (%d):\n", len(s.Enemies()))
	for i, e := range s.Enemies() {
		ex, ey := e.Pos()
		mode := "patrol"
		if e.Chasing() {
			mode = "chase"
		}
		if e.Dying() {
			mode = "dying"
		}
		fmt.Fprintf(&b, "  [%2d] %-7s pos=(%.0f,%.0f) hp=%d %s\n", i, e.Type(), ex, ey, e.HP(), mode)
	}

	fmt.Fprintf(&b, "\nchests (%d):\n", len(s.Chests()))
	for i, c := range s.Chests() {
		cx, cy := c.Pos()
		state := "closed"
		if c.Opened() {
			state = "opened"
		}
		fmt.Fprintf(&b, "  [%d] pos=(%.0f,%.0f) %s\n", i, cx, cy, state)
	}

	fmt.Fprintf(&b, "\nprojectiles=%d hearts=%d\n", len(s.Projectiles()), len(s.Hearts()))
	return b.String()
}

package game

// interactRange is how close the player must be to open a chest, in pixels.
const interactRange = 24.0

// overflowHPBonus is added to max HP once every triforce piece is held.
const overflowHPBonus = 2

// ChestContent describes what a chest holds. There is currently one
// variant; the label is what floats above the chest when opened.
type ChestContent struct {
	Label string
}

// Chest is a fixed reward container placed by the map generator.
type Chest struct {
	x, y    float64
	opened  bool
	content ChestContent
}

// NewChest creates an unopened chest at (x, y).
func NewChest(x, y float64) *Chest {
	return &Chest{x: x, y: y, content: ChestContent{Label: "a triforce piece!"}}
}

// Pos returns the chest's world position.
func (c *Chest) Pos() (float64, float64) { return c.x, c.y }

// Opened reports whether the chest has been opened.
func (c *Chest) Opened() bool { return c.opened }

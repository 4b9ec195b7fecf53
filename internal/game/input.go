package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// joystickRadius is the drag distance, in pixels, for a full-speed virtual
// joystick deflection.
const joystickRadius = 40.0

// InputState is the device-independent input for one tick. The keyboard and
// touch pollers both produce it; headless harnesses synthesize it directly.
type InputState struct {
	MoveX, MoveY   float64 // -1..1 movement axes
	AttackPressed  bool    // attack input went down this tick
	RestartPressed bool    // restart input went down this tick
	ReportPressed  bool    // debug report input went down this tick
}

// InputPoller reads the keyboard and touch screen each tick and folds both
// into one InputState. Keypresses are edge-triggered against the previous
// tick's state.
type InputPoller struct {
	prevKeys map[ebiten.Key]bool

	touchIDs     []ebiten.TouchID
	prevTouchIDs map[ebiten.TouchID]bool
	stickID      ebiten.TouchID
	stickActive  bool
	stickOX      int // drag origin of the active joystick touch
	stickOY      int
}

// NewInputPoller creates a poller with empty previous state.
func NewInputPoller() *InputPoller {
	return &InputPoller{
		prevKeys:     make(map[ebiten.Key]bool),
		prevTouchIDs: make(map[ebiten.TouchID]bool),
	}
}

// justPressed reports an edge-triggered keypress and records current state.
func (ip *InputPoller) justPressed(current map[ebiten.Key]bool, k ebiten.Key) bool {
	current[k] = ebiten.IsKeyPressed(k)
	return current[k] && !ip.prevKeys[k]
}

// Poll reads all devices for this tick. screenW splits the touch surface:
// left half is the joystick zone, right half is tap-to-attack.
func (ip *InputPoller) Poll(screenW int) InputState {
	var in InputState
	current := make(map[ebiten.Key]bool, 8)

	// Movement: arrows or WASD, held.
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		in.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		in.MoveY += 1
	}

	if ip.justPressed(current, ebiten.KeySpace) {
		in.AttackPressed = true
	}
	if ip.justPressed(current, ebiten.KeyR) {
		in.RestartPressed = true
	}
	if ip.justPressed(current, ebiten.KeyF1) {
		in.ReportPressed = true
	}
	ip.prevKeys = current

	ip.pollTouch(&in, screenW)

	// Diagonal keyboard movement shouldn't be faster than cardinal.
	mag := math.Sqrt(in.MoveX*in.MoveX + in.MoveY*in.MoveY)
	if mag > 1 {
		in.MoveX /= mag
		in.MoveY /= mag
	}
	return in
}

// pollTouch maps the touch surface onto the same InputState: a drag that
// starts in the left half acts as a virtual joystick anchored at its origin,
// a tap in the right half attacks.
func (ip *InputPoller) pollTouch(in *InputState, screenW int) {
	ip.touchIDs = ebiten.AppendTouchIDs(ip.touchIDs[:0])
	currentIDs := make(map[ebiten.TouchID]bool, len(ip.touchIDs))

	stickSeen := false
	for _, id := range ip.touchIDs {
		currentIDs[id] = true
		x, y := ebiten.TouchPosition(id)
		isNew := !ip.prevTouchIDs[id]

		if ip.stickActive && id == ip.stickID {
			stickSeen = true
			dx := float64(x - ip.stickOX)
			dy := float64(y - ip.stickOY)
			mag := math.Sqrt(dx*dx + dy*dy)
			if mag > 0 {
				scale := math.Min(mag, joystickRadius) / joystickRadius / mag
				in.MoveX = dx * scale
				in.MoveY = dy * scale
			}
			continue
		}

		if !isNew {
			continue
		}
		if x < screenW/2 {
			if !ip.stickActive {
				ip.stickActive = true
				ip.stickID = id
				ip.stickOX = x
				ip.stickOY = y
				stickSeen = true
			}
		} else {
			in.AttackPressed = true
		}
	}

	if ip.stickActive && !stickSeen {
		ip.stickActive = false
	}
	ip.prevTouchIDs = currentIDs
}

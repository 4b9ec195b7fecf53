package game

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Viewport and world dimensions.
const (
	screenW = 640
	screenH = 480

	mapCols = 50
	mapRows = 50

	sessionEnemies = 12
	sessionChests  = 3
)

// Game is the Ebitengine shell: it polls input, drives the session, and
// renders everything procedurally.
type Game struct {
	tm       *TileMap
	session  *Session
	rng      *rand.Rand
	input    *InputPoller
	hudFace  text.Face
	worldBuf *ebiten.Image

	camX, camY float64

	// Deterministic decorative ground patches, generated once.
	patches []grassPatch

	copiedUntil int // tick the "report copied" notice fades
}

// grassPatch is a subtle ground colour variation rectangle.
type grassPatch struct {
	x, y  float32
	w, h  float32
	shade uint8
}

// New generates the terrain once and starts the first session. The terrain
// outlives restarts; enemies and chests are re-rolled per session.
func New() *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	g := &Game{
		tm:      GenerateTerrain(mapCols, mapRows, rng),
		rng:     rng,
		input:   NewInputPoller(),
		hudFace: text.NewGoXFace(basicfont.Face7x13),
	}
	g.worldBuf = ebiten.NewImage(mapCols*tileSize, mapRows*tileSize)
	g.initPatches()
	g.startSession()
	return g
}

// startSession rolls fresh spawns and chests on the existing terrain.
func (g *Game) startSession() {
	spawns := PlaceEnemySpawns(g.tm, g.rng, sessionEnemies)
	chests := PlaceChests(g.tm, g.rng, sessionChests)
	g.session = NewSession(g.tm, g.rng, NewSimLog(false), spawns, chests)
}

// initPatches generates deterministic grass shade patches.
func (g *Game) initPatches() {
	rng := rand.New(rand.NewSource(54321)) // #nosec G404 -- cosmetic only
	const count = 180
	worldW := mapCols * tileSize
	worldH := mapRows * tileSize
	g.patches = make([]grassPatch, 0, count)
	for i := 0; i < count; i++ {
		g.patches = append(g.patches, grassPatch{
			x:     float32(rng.Intn(worldW)),
			y:     float32(rng.Intn(worldH)),
			w:     float32(16 + rng.Intn(48)),
			h:     float32(16 + rng.Intn(48)),
			shade: uint8(rng.Intn(11)),
		})
	}
}

func (g *Game) Update() error {
	in := g.input.Poll(screenW)

	if in.RestartPressed && g.session.State() != SessionPlaying {
		g.startSession()
		return nil
	}
	if in.ReportPressed {
		if err := clipboard.WriteAll(SessionReport(g.session)); err == nil {
			g.copiedUntil = g.session.Tick() + SecsToTicks(1.5)
		}
	}

	g.session.Update(in)
	g.followPlayer()
	return nil
}

// followPlayer centres the camera on the player, clamped to the map.
func (g *Game) followPlayer() {
	px, py := g.session.Player().Pos()
	g.camX = px - screenW/2
	g.camY = py - screenH/2

	maxX := float64(mapCols*tileSize - screenW)
	maxY := float64(mapRows*tileSize - screenH)
	if g.camX < 0 {
		g.camX = 0
	}
	if g.camX > maxX {
		g.camX = maxX
	}
	if g.camY < 0 {
		g.camY = 0
	}
	if g.camY > maxY {
		g.camY = maxY
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 12, A: 255})

	g.worldBuf.Clear()
	g.drawWorld(g.worldBuf)

	var blit ebiten.DrawImageOptions
	blit.GeoM.Translate(-g.camX, -g.camY)
	screen.DrawImage(g.worldBuf, &blit)

	g.drawHUD(screen)
}

// tileColors is the base fill per tile kind.
var tileColors = [tileKindCount]color.RGBA{
	TileGrass: {R: 34, G: 52, B: 32, A: 255},
	TileTree:  {R: 22, G: 36, B: 22, A: 255},
	TileRock:  {R: 58, G: 56, B: 52, A: 255},
}

func (g *Game) drawWorld(dst *ebiten.Image) {
	s := g.session
	tick := s.Tick()

	// Ground fill, then shade patches for texture.
	worldW := float32(mapCols * tileSize)
	worldH := float32(mapRows * tileSize)
	vector.FillRect(dst, 0, 0, worldW, worldH, tileColors[TileGrass], false)
	for _, p := range g.patches {
		shade := color.RGBA{R: 30 + p.shade, G: 48 + p.shade, B: 30, A: 36}
		vector.FillRect(dst, p.x, p.y, p.w, p.h, shade, false)
	}

	// Obstacles.
	for row := 0; row < g.tm.Rows; row++ {
		for col := 0; col < g.tm.Cols; col++ {
			k := g.tm.At(col, row)
			if k == TileGrass {
				continue
			}
			x := float32(col * tileSize)
			y := float32(row * tileSize)
			vector.FillRect(dst, x, y, tileSize, tileSize, tileColors[k], false)
			cx := x + tileSize/2
			cy := y + tileSize/2
			if k == TileTree {
				vector.FillCircle(dst, cx, cy, 6, color.RGBA{R: 30, G: 58, B: 28, A: 255}, true)
				vector.FillCircle(dst, cx, cy+4, 2, color.RGBA{R: 54, G: 40, B: 26, A: 255}, true)
			} else {
				vector.FillCircle(dst, cx, cy, 5, color.RGBA{R: 92, G: 90, B: 84, A: 255}, true)
				vector.StrokeCircle(dst, cx, cy, 5, 1.0, color.RGBA{R: 40, G: 38, B: 36, A: 255}, true)
			}
		}
	}

	// Chests.
	for _, c := range s.Chests() {
		cx, cy := c.Pos()
		x := float32(cx) - 6
		y := float32(cy) - 5
		lid := color.RGBA{R: 120, G: 82, B: 36, A: 255}
		if c.Opened() {
			lid = color.RGBA{R: 70, G: 50, B: 26, A: 255}
		}
		vector.FillRect(dst, x, y, 12, 10, lid, false)
		vector.StrokeRect(dst, x, y, 12, 10, 1.0, color.RGBA{R: 40, G: 28, B: 14, A: 255}, false)
		if !c.Opened() {
			vector.FillRect(dst, x+5, y+4, 2, 3, color.RGBA{R: 230, G: 200, B: 80, A: 255}, false)
		}
	}

	// Hearts.
	for _, h := range s.Hearts() {
		hx, hy := h.Pos()
		red := color.RGBA{R: 210, G: 40, B: 50, A: 255}
		vector.FillCircle(dst, float32(hx)-2, float32(hy)-1, 2.5, red, true)
		vector.FillCircle(dst, float32(hx)+2, float32(hy)-1, 2.5, red, true)
		vector.FillCircle(dst, float32(hx), float32(hy)+2, 3, red, true)
	}

	// Projectiles.
	for _, pr := range s.Projectiles() {
		px, py := pr.Pos()
		vector.FillCircle(dst, float32(px), float32(py), projectileRadius,
			color.RGBA{R: 200, G: 120, B: 240, A: 255}, true)
	}

	// Enemies. Dying enemies flicker out.
	for _, e := range s.Enemies() {
		if e.Dying() && tick%4 < 2 {
			continue
		}
		ex, ey := e.Pos()
		c := enemyColor(e.Type())
		vector.FillCircle(dst, float32(ex), float32(ey), enemyRadius, c, true)
		if e.Chasing() {
			vector.StrokeCircle(dst, float32(ex), float32(ey), enemyRadius+2, 1.0,
				color.RGBA{R: 255, G: 80, B: 60, A: 140}, true)
		}
	}

	g.drawPlayer(dst)

	// Floating labels.
	for _, l := range s.Labels() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(l.X-float64(len(l.Text))*3, l.Y)
		op.ColorScale.ScaleWithColor(color.RGBA{R: 250, G: 240, B: 180, A: 255})
		text.Draw(dst, l.Text, g.hudFace, op)
	}
}

// drawPlayer renders the player, flickering through i-frames, plus the
// sword while a swing is active.
func (g *Game) drawPlayer(dst *ebiten.Image) {
	s := g.session
	p := s.Player()
	tick := s.Tick()
	px, py := p.Pos()

	if !p.Invulnerable(tick) || tick%6 < 3 {
		body := color.RGBA{R: 70, G: 160, B: 90, A: 255}
		vector.FillCircle(dst, float32(px), float32(py), playerRadius, body, true)
		fx, fy := p.Facing().Vector()
		vector.StrokeLine(dst, float32(px), float32(py),
			float32(px+fx*playerRadius*1.5), float32(py+fy*playerRadius*1.5),
			1.5, color.RGBA{R: 230, G: 240, B: 230, A: 200}, true)
	}

	if p.attacking {
		hx, hy := p.HitboxCenter()
		blade := color.RGBA{R: 220, G: 220, B: 235, A: 230}
		vector.StrokeLine(dst, float32(px), float32(py), float32(hx), float32(hy), 2.5, blade, true)
		vector.StrokeCircle(dst, float32(hx), float32(hy), float32(hitboxRadius), 1.0,
			color.RGBA{R: 220, G: 220, B: 235, A: 70}, true)
	}
}

func enemyColor(t EnemyType) color.RGBA {
	switch t {
	case EnemyBoar:
		return color.RGBA{R: 150, G: 96, B: 60, A: 255}
	case EnemyWolf:
		return color.RGBA{R: 120, G: 122, B: 134, A: 255}
	case EnemyShaman:
		return color.RGBA{R: 140, G: 70, B: 180, A: 255}
	case EnemyOgre:
		return color.RGBA{R: 90, G: 120, B: 50, A: 255}
	default:
		return color.RGBA{R: 200, G: 60, B: 60, A: 255}
	}
}

// drawHUD renders hearts, the piece counter, end-of-session banners and
// transient notices in screen space.
func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.session
	p := s.Player()

	// Heart row: one heart per two half-hearts.
	full := p.HP()
	for i := 0; i < p.MaxHP()/2; i++ {
		x := float32(10 + i*16)
		y := float32(12)
		c := color.RGBA{R: 70, G: 30, B: 30, A: 255}
		if full >= (i+1)*2 {
			c = color.RGBA{R: 220, G: 40, B: 50, A: 255}
		} else if full == i*2+1 {
			c = color.RGBA{R: 150, G: 40, B: 45, A: 255}
		}
		vector.FillCircle(screen, x-3, y-2, 3.5, c, true)
		vector.FillCircle(screen, x+3, y-2, 3.5, c, true)
		vector.FillCircle(screen, x, y+3, 4.5, c, true)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(10, 24)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 240, G: 220, B: 130, A: 255})
	text.Draw(screen, fmt.Sprintf("pieces %d/%d", p.Pieces(), len(s.Chests())), g.hudFace, op)

	switch s.State() {
	case SessionWon:
		g.drawBanner(screen, "THE GROVE IS CLEAR", "press R to play again")
	case SessionLost:
		g.drawBanner(screen, "YOU HAVE FALLEN", "press R to try again")
	}

	if s.Tick() < g.copiedUntil {
		ebitenutil.DebugPrintAt(screen, "session report copied", 10, screenH-18)
	}
}

// drawBanner renders a centred two-line end screen.
func (g *Game) drawBanner(screen *ebiten.Image, title, hint string) {
	vector.FillRect(screen, 0, screenH/2-36, screenW, 72,
		color.RGBA{R: 0, G: 0, B: 0, A: 170}, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(screenW)/2-float64(len(title))*3.5, screenH/2-18)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 250, G: 245, B: 230, A: 255})
	text.Draw(screen, title, g.hudFace, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(float64(screenW)/2-float64(len(hint))*3.5, screenH/2+4)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 200, G: 200, B: 190, A: 255})
	text.Draw(screen, hint, g.hudFace, op)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

package asteroids

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// Visual characters for rendering
const (
	ShipChar     = '█'
	FlameChar    = '*'
	BulletChar   = '•'
	ParticleChar = '.'
	RockChar     = '#'
	HUDSeparator = '─'
)

// Minimum screen size that still shows a recognisable field.
const (
	MinScreenW = 32
	MinScreenH = 12
)

// hudRows is the number of rows reserved above the play field.
const hudRows = 2

var rockColors = map[sim.Size]core.Color{
	sim.Large:  core.ColorWhite,
	sim.Medium: core.ColorBrightWhite,
	sim.Small:  core.ColorGray,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if dst.Empty() {
		return
	}
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorDefault)
		return
	}

	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a snapshot into dst, scaling the logical surface
// onto the rows below the HUD.
func RenderSnapshot(dst *core.Screen, snap sim.Snapshot) {
	v := newViewport(dst, snap.Width, snap.Height)

	for _, p := range snap.Particles {
		x, y := v.cell(p.Pos)
		dst.SetColor(x, y, ParticleChar, core.Fade(p.Alpha))
	}
	for _, a := range snap.Asteroids {
		v.polygon(dst, a.Outline, RockChar, rockColors[a.Size])
	}
	for _, b := range snap.Bullets {
		x, y := v.cell(b)
		dst.SetColor(x, y, BulletChar, core.ColorBrightYellow)
	}
	if snap.Phase == sim.PhasePlaying {
		renderShip(dst, v, snap.Ship)
	}

	renderOverlay(dst, snap)
}

// viewport maps world coordinates to screen cells.
type viewport struct {
	top    int
	sx, sy float64
}

func newViewport(dst *core.Screen, w, h float64) viewport {
	return viewport{
		top: hudRows,
		sx:  float64(dst.Width()) / w,
		sy:  float64(dst.Height()-hudRows) / h,
	}
}

func (v viewport) cell(p core.Vec2) (int, int) {
	return int(p.X * v.sx), v.top + int(p.Y*v.sy)
}

// polygon draws a closed outline.
func (v viewport) polygon(dst *core.Screen, pts []core.Vec2, r rune, c core.Color) {
	for i := range pts {
		x1, y1 := v.cell(pts[i])
		x2, y2 := v.cell(pts[(i+1)%len(pts)])
		dst.DrawLine(x1, y1, x2, y2, r, c)
	}
}

func renderShip(dst *core.Screen, v viewport, ship sim.ShipView) {
	v.polygon(dst, ship.Hull, ShipChar, core.ColorBrightCyan)
	if ship.Thrusting {
		x, y := v.cell(ship.Tail)
		dst.SetColor(x, y, FlameChar, core.ColorOrange)
	}
}

// renderHUD draws score, level and rock count over the rows it owns.
func renderHUD(dst *core.Screen, snap sim.Snapshot) {
	for y := 0; y < hudRows; y++ {
		for x := 0; x < dst.Width(); x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)
	dst.DrawTextCentered(0, fmt.Sprintf("Level: %d", snap.Level), core.ColorBrightGreen)
	rocks := fmt.Sprintf("Rocks: %d", len(snap.Asteroids))
	dst.DrawTextColor(dst.Width()-len(rocks)-1, 0, rocks, core.ColorGray)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, 1, HUDSeparator, core.ColorGray)
	}
}

// renderOverlay draws phase messages, then the HUD.
func renderOverlay(dst *core.Screen, snap sim.Snapshot) {
	switch snap.Phase {
	case sim.PhaseMenu:
		drawCenteredBox(dst, "A S T E R O I D S", "ENTER to start  |  Q to quit")
	case sim.PhaseGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R to restart", snap.Score))
	}
	renderHUD(dst, snap)
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorCyan)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorDefault)
}

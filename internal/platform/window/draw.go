package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

var (
	rockColor     = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	shipColor     = color.RGBA{R: 120, G: 220, B: 255, A: 255}
	flameColor    = color.RGBA{R: 255, G: 150, B: 40, A: 255}
	bulletColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	particleColor = color.RGBA{R: 255, G: 200, B: 80, A: 255}
)

const (
	strokeWidth    = 1.5
	bulletSize     = 2
	particleSize   = 1.5
	debugCharWidth = 6 // ebitenutil debug font
)

// segment is a line from (X0, Y0) to (X1, Y1) in screen space.
type segment struct {
	X0, Y0, X1, Y1 float32
}

// closedSegments returns the edges of the polygon pts, including the edge
// from the last point back to the first.
func closedSegments(pts []core.Vec2) []segment {
	if len(pts) < 2 {
		return nil
	}
	segs := make([]segment, 0, len(pts))
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		segs = append(segs, segment{float32(p.X), float32(p.Y), float32(q.X), float32(q.Y)})
	}
	return segs
}

// fade scales the alpha channel of c by alpha in [0, 1].
// Colors are premultiplied, so every channel is scaled.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := core.ClampF(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// flame returns the exhaust triangle behind a thrusting ship.
func flame(ship sim.ShipView) []core.Vec2 {
	back := ship.Tail.Sub(ship.Pos)
	length := back.Length()
	if length == 0 {
		return nil
	}
	side := core.V(-back.Y, back.X).Scale(0.3)
	return []core.Vec2{
		ship.Tail.Add(side),
		ship.Tail.Add(back.Scale(0.8)),
		ship.Tail.Sub(side),
	}
}

func strokePolygon(dst *ebiten.Image, pts []core.Vec2, c color.Color) {
	for _, s := range closedSegments(pts) {
		vector.StrokeLine(dst, s.X0, s.Y0, s.X1, s.Y1, strokeWidth, c, true)
	}
}

func drawSnapshot(dst *ebiten.Image, snap sim.Snapshot) {
	for _, p := range snap.Particles {
		vector.DrawFilledCircle(dst, float32(p.Pos.X), float32(p.Pos.Y), particleSize, fade(particleColor, p.Alpha), true)
	}
	for _, a := range snap.Asteroids {
		strokePolygon(dst, a.Outline, rockColor)
	}
	for _, b := range snap.Bullets {
		vector.DrawFilledCircle(dst, float32(b.X), float32(b.Y), bulletSize, bulletColor, true)
	}
	if snap.Phase == sim.PhasePlaying {
		strokePolygon(dst, snap.Ship.Hull, shipColor)
		if snap.Ship.Thrusting {
			strokePolygon(dst, flame(snap.Ship), flameColor)
		}
	}

	drawHUD(dst, snap)
	drawOverlay(dst, snap)
}

func drawHUD(dst *ebiten.Image, snap sim.Snapshot) {
	hud := fmt.Sprintf("Score: %d   Level: %d   Rocks: %d", snap.Score, snap.Level, len(snap.Asteroids))
	ebitenutil.DebugPrintAt(dst, hud, 8, 8)
}

func drawOverlay(dst *ebiten.Image, snap sim.Snapshot) {
	var lines []string
	switch snap.Phase {
	case sim.PhaseMenu:
		lines = []string{"A S T E R O I D S", "", "ENTER to start   Q to quit"}
	case sim.PhaseGameOver:
		lines = []string{"GAME OVER", "", fmt.Sprintf("Score: %d   R to restart", snap.Score)}
	default:
		return
	}

	y := int(snap.Height)/2 - len(lines)*8
	for _, line := range lines {
		ebitenutil.DebugPrintAt(dst, line, centeredX(line, snap.Width), y)
		y += 16
	}
}

// centeredX is the left edge that centers text on a surface of width w.
func centeredX(text string, w float64) int {
	return max(int(w)/2-len(text)*debugCharWidth/2, 0)
}

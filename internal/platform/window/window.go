// Package window runs a game in a desktop window using Ebitengine.
// The window shows the logical world at its native 800x600 size and draws
// the simulation snapshot with vector strokes.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// Default window size, used when the session reports no world size.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Session is a game that can be driven and drawn by the window.
type Session interface {
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	State() core.GameState
	Snapshot() sim.Snapshot
}

// Options configures the window.
type Options struct {
	Title  string
	Logger *log.Logger
}

// Adapter implements ebiten.Game on top of a Session.
// The session advances once per Update, and only while it is playing.
type Adapter struct {
	session Session
	config  core.RuntimeConfig
	width   int
	height  int

	pressed     KeyFunc
	justPressed KeyFunc
	now         func() time.Time

	state   core.GameState
	surface bool
	log     *log.Logger
}

// New resets the session and wraps it in an adapter.
func New(session Session, cfg core.RuntimeConfig, opts Options) *Adapter {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	session.Reset(cfg)

	a := &Adapter{
		session:     session,
		config:      cfg,
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
		now:         time.Now,
		state:       session.State(),
		surface:     true,
		log:         opts.Logger,
	}

	// The world size wins over the requested screen size
	snap := session.Snapshot()
	if snap.Width > 0 && snap.Height > 0 {
		a.width, a.height = int(snap.Width), int(snap.Height)
	}
	if a.width <= 0 || a.height <= 0 {
		a.width, a.height = DefaultWidth, DefaultHeight
	}
	return a
}

// Update reads the keyboard and advances the session.
func (a *Adapter) Update() error {
	frame := readFrame(a.pressed, a.justPressed, a.now())
	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if !a.surface {
		return nil
	}

	if !a.state.Active && !frame.Has(core.ActionConfirm) && !frame.Has(core.ActionRestart) {
		return nil
	}

	prev := a.state
	a.state = a.session.Step(frame).State

	if !prev.Active && a.state.Active {
		a.log.Info("playing", "level", a.state.Level)
	}
	if !prev.GameOver && a.state.GameOver {
		a.log.Info("game over", "score", a.state.Score, "level", a.state.Level)
	}
	return nil
}

// Draw renders the current snapshot.
func (a *Adapter) Draw(screen *ebiten.Image) {
	if !a.surface {
		return
	}
	drawSnapshot(screen, a.session.Snapshot())
}

// Layout keeps the logical world size regardless of the window size.
// A zero-sized window (minimized) pauses the session.
func (a *Adapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	ok := outsideWidth > 0 && outsideHeight > 0
	if ok != a.surface {
		if ok {
			a.log.Debug("window surface restored", "width", outsideWidth, "height", outsideHeight)
		} else {
			a.log.Warn("window surface unavailable, pausing", "width", outsideWidth, "height", outsideHeight)
		}
	}
	a.surface = ok
	return a.width, a.height
}

// State returns the last observed game state.
func (a *Adapter) State() core.GameState {
	return a.state
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(session Session, cfg core.RuntimeConfig, opts Options) error {
	a := New(session, cfg, opts)

	title := opts.Title
	if title == "" {
		title = "Asteroids"
	}
	ebiten.SetWindowSize(a.width, a.height)
	ebiten.SetWindowTitle(title)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	a.log.Debug("window open", "width", a.width, "height", a.height, "tps", ebiten.TPS())
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

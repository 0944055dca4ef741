package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// DefaultKeyHold is the hold window used when none is configured.
const DefaultKeyHold = 120 * time.Millisecond

// Options configures a game session.
type Options struct {
	KeyHold time.Duration // how long a key counts as held after a press
	Logger  *log.Logger
}

// Model is the Bubble Tea model for running a game.
//
// The tick chain runs only while the game is active: it is armed when a
// session starts and released when the game leaves play, so an idle title
// or game-over screen costs nothing.
type Model struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig

	keys    *KeyMapper
	held    *HeldKeys
	pending core.InputFrame // one-shot actions waiting for the next step
	help    help.Model

	gameState core.GameState
	ticking   bool
	gen       int // current tick chain; older chains are ignored

	now      func() time.Time
	log      *log.Logger
	quitting bool
	back     bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.KeyHold <= 0 {
		opts.KeyHold = DefaultKeyHold
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		config:  cfg,
		keys:    NewKeyMapper(),
		held:    NewHeldKeys(opts.KeyHold),
		pending: core.NewInputFrame(),
		help:    h,
		now:     time.Now,
		log:     opts.Logger.With("game", game.ID()),
	}
}

// playRows is the number of rows left for the game below the help line.
func playRows(h int) int {
	return max(h-1, 0)
}

// Init resets the game onto its title screen. No ticks run until a
// session starts.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
		return m, nil

	case action == core.ActionBack:
		m.back = true
		return m, tea.Quit

	case IsHeld(action):
		m.held.Press(action, m.now())
		return m, nil
	}

	// One-shot commands
	if m.gameState.Active {
		// Restart and start have no meaning mid-session
		return m, nil
	}
	m.pending.Set(action)
	m.step(m.now())
	return m, m.armTicks()
}

// handleResize processes window resize events. The game keeps its state;
// the logical surface is scaled onto whatever size the terminal has.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width

	// Resume a session whose ticks stopped because the surface vanished
	return m, m.armTicks()
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.ticking {
		return m, nil
	}

	if m.screen.Empty() {
		m.log.Warn("render surface unavailable, pausing ticks",
			"width", m.config.ScreenW, "height", m.config.ScreenH)
		m.ticking = false
		return m, nil
	}

	m.step(msg.Time)

	if !m.gameState.Active {
		m.ticking = false
		m.held.Reset()
		m.log.Debug("tick chain released", "gen", m.gen)
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.gen)
}

// step feeds held controls and pending commands to the game.
func (m *Model) step(now time.Time) {
	frame := m.pending.Clone()
	m.held.Fill(&frame, now)
	m.pending.Clear()

	prev := m.gameState
	m.gameState = m.game.Step(frame).State

	if !prev.Active && m.gameState.Active {
		m.log.Info("playing", "level", m.gameState.Level)
	}
	if !prev.GameOver && m.gameState.GameOver {
		m.log.Info("game over", "score", m.gameState.Score, "level", m.gameState.Level)
	}
}

// armTicks starts a new tick chain if the game is active and none is running.
func (m *Model) armTicks() tea.Cmd {
	if !m.gameState.Active || m.ticking || m.screen.Empty() {
		return nil
	}
	m.ticking = true
	m.gen++
	m.log.Debug("tick chain armed", "gen", m.gen, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate, m.gen)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}
	if m.screen.Empty() {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// WantsBack reports whether the player asked to return to the menu.
func (m Model) WantsBack() bool {
	return m.back
}

// Run starts the Bubble Tea program with the given game.
// It returns true if the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (back bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.WantsBack(), nil
	}
	return false, nil
}

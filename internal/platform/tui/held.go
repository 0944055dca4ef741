package tui

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// HeldKeys approximates which controls are being held down.
// Terminals deliver key presses and auto-repeats but never key releases,
// so a control counts as held for a short window after its last press.
// The window must cover the gap between auto-repeat events.
type HeldKeys struct {
	window  time.Duration
	pressed map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{
		window:  window,
		pressed: make(map[core.Action]time.Time),
	}
}

// Press records a press (or auto-repeat) of action at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	h.pressed[a] = now
}

// Held reports whether action is considered held at now.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	t, ok := h.pressed[a]
	if !ok {
		return false
	}
	return now.Sub(t) < h.window
}

// Fill sets every held action on frame and stamps it with now.
func (h *HeldKeys) Fill(frame *core.InputFrame, now time.Time) {
	for a := range h.pressed {
		if h.Held(a, now) {
			frame.Set(a)
		}
	}
	frame.Now = now
}

// Reset forgets all presses.
func (h *HeldKeys) Reset() {
	clear(h.pressed)
}

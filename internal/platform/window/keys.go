package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// KeyFunc reports the state of a single key.
type KeyFunc func(ebiten.Key) bool

// binding ties an action to the keys that trigger it.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

// heldBindings are sampled every frame while the key is down.
var heldBindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionThrust, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace}},
}

// commandBindings fire once per press.
var commandBindings = []binding{
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}},
}

// readFrame samples the keyboard into an input frame stamped with now.
func readFrame(pressed, justPressed KeyFunc, now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	frame.Now = now
	for _, b := range heldBindings {
		if anyKey(pressed, b.keys) {
			frame.Set(b.action)
		}
	}
	for _, b := range commandBindings {
		if anyKey(justPressed, b.keys) {
			frame.Set(b.action)
		}
	}
	return frame
}

func anyKey(f KeyFunc, keys []ebiten.Key) bool {
	for _, k := range keys {
		if f(k) {
			return true
		}
	}
	return false
}

package terminal

import (
	"github.com/gdamore/tcell/v2"

	"cave-dungeons/systems"
)

// HoldWindow is how long, in milliseconds, a key press counts as held.
// Terminals report presses and autorepeat but never releases.
const HoldWindow = 150

// KeyHold is an InputState fed by terminal key events
type KeyHold struct {
	clock   systems.Clock
	pressed map[systems.Key]int64
}

// NewKeyHold creates a key-hold tracker reading press times from clock
func NewKeyHold(clock systems.Clock) *KeyHold {
	return &KeyHold{
		clock:   clock,
		pressed: make(map[systems.Key]int64),
	}
}

// Press records a press of k at the current clock reading
func (h *KeyHold) Press(k systems.Key) {
	h.pressed[k] = h.clock.Millis()
}

// IsKeyDown implements systems.InputState
func (h *KeyHold) IsKeyDown(k systems.Key) bool {
	at, ok := h.pressed[k]
	return ok && h.clock.Millis()-at < HoldWindow
}

// HandleKey records a movement key event. It reports whether the event was
// a movement key.
func (h *KeyHold) HandleKey(ev *tcell.EventKey) bool {
	k, ok := movementKey(ev)
	if ok {
		h.Press(k)
	}
	return ok
}

// movementKey maps WASD and the arrow keys to movement keys
func movementKey(ev *tcell.EventKey) (systems.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return systems.KeyUp, true
	case tcell.KeyLeft:
		return systems.KeyLeft, true
	case tcell.KeyDown:
		return systems.KeyDown, true
	case tcell.KeyRight:
		return systems.KeyRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return systems.KeyUp, true
		case 'a', 'A':
			return systems.KeyLeft, true
		case 's', 'S':
			return systems.KeyDown, true
		case 'd', 'D':
			return systems.KeyRight, true
		}
	}
	return 0, false
}

// isQuit reports whether the event asks to leave the game
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

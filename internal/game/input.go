package game

import (
	"github.com/gdamore/tcell/v2"

	"zombie-dash/internal/sim"
)

// keyToAction maps a tcell key event to a sim action. quit is true for the
// keys that leave the game.
func keyToAction(ev *tcell.EventKey) (a sim.Action, quit bool) {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return sim.ActionMoveUp, false
	case tcell.KeyDown:
		return sim.ActionMoveDown, false
	case tcell.KeyRight:
		return sim.ActionMoveRight, false
	case tcell.KeyLeft:
		return sim.ActionMoveLeft, false
	case tcell.KeyTab:
		return sim.ActionUseLandmine, false
	case tcell.KeyEnter:
		return sim.ActionUseVaccine, false
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return sim.ActionNone, true
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return sim.ActionMoveUp, false
	case 'j', 'J':
		return sim.ActionMoveDown, false
	case 'l', 'L':
		return sim.ActionMoveRight, false
	case 'h', 'H':
		return sim.ActionMoveLeft, false
	case ' ', 'f', 'F':
		return sim.ActionUseFlame, false
	case 'm', 'M':
		return sim.ActionUseLandmine, false
	case 'v', 'V':
		return sim.ActionUseVaccine, false
	case 'q', 'Q':
		return sim.ActionNone, true
	}
	return sim.ActionNone, false
}

func isMove(a sim.Action) bool {
	switch a {
	case sim.ActionMoveUp, sim.ActionMoveDown, sim.ActionMoveLeft, sim.ActionMoveRight:
		return true
	}
	return false
}

// keyInput is the sim.Input fed by the terminal. A move key keeps the player
// walking for hold ticks, which is one full cell at the configured step;
// item keys fire once. Press (from drain) and Poll (from World.Tick) both run
// on the game loop goroutine; the event goroutine only feeds the channel.
type keyInput struct {
	hold    int
	pending sim.Action
	left    int
}

func newKeyInput(hold int) *keyInput {
	return &keyInput{hold: max(hold, 1)}
}

// Press records the latest key. It replaces any move still in progress.
func (k *keyInput) Press(a sim.Action) {
	if a == sim.ActionNone {
		return
	}
	k.pending = a
	k.left = 1
	if isMove(a) {
		k.left = k.hold
	}
}

// Poll implements sim.Input.
func (k *keyInput) Poll() sim.Action {
	if k.left == 0 {
		return sim.ActionNone
	}
	k.left--
	return k.pending
}

// Reset drops any pending key, e.g. when a level restarts.
func (k *keyInput) Reset() {
	k.pending, k.left = sim.ActionNone, 0
}

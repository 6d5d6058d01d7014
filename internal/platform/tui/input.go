package tui

import "github.com/vovakirdan/rikkajump/internal/core"

// HeldInput turns discrete terminal events into per-tick held state.
// Terminals report key presses and auto-repeats but never releases, so a
// direction key holds for a fixed number of ticks after the last press.
// Mouse buttons do report releases and hold until then.
type HeldInput struct {
	holdTicks int

	left, right int // Remaining ticks for keyboard holds
	mouse       core.Action
	confirm     bool
}

// NewHeldInput creates a latch that holds keys for holdTicks ticks.
func NewHeldInput(holdTicks int) *HeldInput {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HeldInput{holdTicks: holdTicks}
}

// HoldTicksFor returns the default hold window for a tick rate: half a second.
func HoldTicksFor(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tickRate / 2
}

// Press registers a key press. A direction replaces the opposite one.
func (h *HeldInput) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.holdTicks
		h.right = 0
	case core.ActionRight:
		h.right = h.holdTicks
		h.left = 0
	case core.ActionConfirm:
		h.confirm = true
	}
}

// Cancel drops any keyboard-held direction.
func (h *HeldInput) Cancel() {
	h.left = 0
	h.right = 0
}

// MouseHold holds a direction until MouseRelease.
func (h *HeldInput) MouseHold(a core.Action) {
	if a == core.ActionLeft || a == core.ActionRight {
		h.mouse = a
	}
}

// MouseRelease ends a mouse hold.
func (h *HeldInput) MouseRelease() {
	h.mouse = core.ActionNone
}

// Held reports whether a direction is currently held.
func (h *HeldInput) Held(a core.Action) bool {
	switch a {
	case core.ActionLeft:
		return h.left > 0 || h.mouse == core.ActionLeft
	case core.ActionRight:
		return h.right > 0 || h.mouse == core.ActionRight
	}
	return false
}

// Next returns the input for one tick and advances the hold timers.
// Confirm is delivered on exactly one tick.
func (h *HeldInput) Next() core.InputFrame {
	frame := core.NewInputFrame()
	if h.Held(core.ActionLeft) {
		frame.Set(core.ActionLeft)
	}
	if h.Held(core.ActionRight) {
		frame.Set(core.ActionRight)
	}
	if h.confirm {
		frame.Set(core.ActionConfirm)
		h.confirm = false
	}

	if h.left > 0 {
		h.left--
	}
	if h.right > 0 {
		h.right--
	}
	return frame
}

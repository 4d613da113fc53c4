package debounce

// Events derives edge, hold and double-press events from a debounced
// state. Like Debouncer it is driven purely by call count: thresholds are
// numbers of Update calls, so their duration scales with the poll period.
//
// A threshold of 0 disables the matching event.
type Events struct {
	HeldThreshold   uint32
	DoubleThreshold uint32

	pressed bool
	rising  bool
	falling bool
	double  bool

	heldCounter uint32
	heldFor     uint32
	pending     bool
	sinceFirst  uint32
}

// NewEvents returns a released tracker with the given thresholds.
func NewEvents(held, double uint32) Events {
	return Events{HeldThreshold: held, DoubleThreshold: double}
}

// Update feeds the debounced state for one tick.
func (e *Events) Update(pressed bool) {
	e.rising = pressed && !e.pressed
	e.falling = !pressed && e.pressed
	e.pressed = pressed

	if e.rising {
		e.heldCounter = 0
	}
	if pressed && e.heldCounter < ^uint32(0) {
		e.heldCounter++
	}
	if e.falling {
		e.heldFor = e.heldCounter
		e.heldCounter = 0
	}

	e.double = false
	if e.DoubleThreshold == 0 {
		e.pending = false
		return
	}
	if e.pending {
		e.sinceFirst++
		if e.sinceFirst > e.DoubleThreshold {
			e.pending = false
		}
	}
	if e.falling {
		if e.pending && e.sinceFirst < e.DoubleThreshold {
			e.double = true
			e.pending = false
		} else {
			e.pending = true
			e.sinceFirst = 0
		}
	}
}

// Pressed reports the last state fed to Update.
func (e *Events) Pressed() bool { return e.pressed }

// Rising reports whether the last Update was a press.
func (e *Events) Rising() bool { return e.rising }

// Falling reports whether the last Update was a release.
func (e *Events) Falling() bool { return e.falling }

// Held reports whether the last Update released a press that lasted at
// least HeldThreshold ticks.
func (e *Events) Held() bool {
	return e.HeldThreshold > 0 && e.falling && e.heldFor >= e.HeldThreshold
}

// Double reports whether the last Update released the second of two
// presses whose releases were fewer than DoubleThreshold ticks apart.
func (e *Events) Double() bool { return e.double }

// HeldTicks returns how many ticks the current press has lasted, or 0 when
// released.
func (e *Events) HeldTicks() uint32 {
	if !e.pressed {
		return 0
	}
	return e.heldCounter
}

// Reset clears all state, keeping the thresholds.
func (e *Events) Reset() {
	*e = Events{HeldThreshold: e.HeldThreshold, DoubleThreshold: e.DoubleThreshold}
}

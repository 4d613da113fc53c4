package input

import "github.com/nxpad/nxpad/input/debounce"

// Binding ties a physical digital pin to a logical button.
type Binding struct {
	Pin    uint8
	Button Button
}

// DefaultBindings is the reference pin assignment for all 18 inputs.
var DefaultBindings = [NumInputs]Binding{
	{2, ButtonA},
	{3, ButtonB},
	{4, ButtonX},
	{5, ButtonY},
	{6, ButtonL},
	{7, ButtonR},
	{8, ButtonZL},
	{9, ButtonZR},
	{10, ButtonPlus},
	{11, ButtonMinus},
	{12, ButtonHome},
	{14, ButtonCapture},
	{15, ButtonL3},
	{16, ButtonR3},
	{17, ButtonDpadUp},
	{18, ButtonDpadDown},
	{19, ButtonDpadLeft},
	{20, ButtonDpadRight},
}

// DigitalHandler debounces every configured pin and routes the results to
// the button field or the D-pad.
type DigitalHandler struct {
	bindings   [NumInputs]Binding
	debouncers [NumInputs]debounce.Debouncer
	events     [NumInputs]debounce.Events
	states     [NumInputs]bool
}

// NewDigitalHandler returns a handler using DefaultBindings and the
// default debounce threshold.
func NewDigitalHandler() *DigitalHandler {
	return NewDigitalHandlerWith(DefaultBindings, debounce.DefaultThreshold)
}

// NewDigitalHandlerWith returns a handler for the given bindings, one per
// logical input, each debounced with threshold.
func NewDigitalHandlerWith(bindings [NumInputs]Binding, threshold uint8) *DigitalHandler {
	h := &DigitalHandler{bindings: bindings}
	for i := range h.debouncers {
		h.debouncers[i] = debounce.NewWithThreshold(threshold)
	}
	return h
}

// Update samples pins (indexed by pin number), debounces each binding and
// returns the button field and D-pad state. Pins beyond the end of the
// slice read as not pressed.
func (h *DigitalHandler) Update(pins []bool) (Buttons, Directions) {
	var buttons Buttons
	var dpad Directions

	for i, bind := range h.bindings {
		var level bool
		if int(bind.Pin) < len(pins) {
			level = pins[bind.Pin]
		}
		st := h.debouncers[i].Update(level)
		h.states[i] = st
		h.events[i].Update(st)

		switch bind.Button {
		case ButtonDpadUp:
			dpad.Up = dpad.Up || st
		case ButtonDpadDown:
			dpad.Down = dpad.Down || st
		case ButtonDpadLeft:
			dpad.Left = dpad.Left || st
		case ButtonDpadRight:
			dpad.Right = dpad.Right || st
		default:
			if st {
				buttons.Set(bind.Button, true)
			}
		}
	}
	return buttons, dpad
}

// RawStates returns the last debounced state of every binding, in binding order.
func (h *DigitalHandler) RawStates() [NumInputs]bool {
	return h.states
}

// DPadStates returns the last debounced D-pad state.
func (h *DigitalHandler) DPadStates() Directions {
	var d Directions
	for i, bind := range h.bindings {
		switch bind.Button {
		case ButtonDpadUp:
			d.Up = d.Up || h.states[i]
		case ButtonDpadDown:
			d.Down = d.Down || h.states[i]
		case ButtonDpadLeft:
			d.Left = d.Left || h.states[i]
		case ButtonDpadRight:
			d.Right = d.Right || h.states[i]
		}
	}
	return d
}

// Bindings returns the pin assignment.
func (h *DigitalHandler) Bindings() [NumInputs]Binding {
	return h.bindings
}

// SetEventThresholds sets the hold and double-press thresholds, in ticks,
// of every binding. 0 disables the event.
func (h *DigitalHandler) SetEventThresholds(held, double uint32) {
	for i := range h.events {
		h.events[i].HeldThreshold = held
		h.events[i].DoubleThreshold = double
	}
}

// Events returns the event tracker of the first binding for b. The second
// result is false when b has no binding.
func (h *DigitalHandler) Events(b Button) (debounce.Events, bool) {
	for i, bind := range h.bindings {
		if bind.Button == b {
			return h.events[i], true
		}
	}
	return debounce.Events{}, false
}

// Rising reports whether b was pressed on the last Update.
func (h *DigitalHandler) Rising(b Button) bool {
	e, _ := h.Events(b)
	return e.Rising()
}

// Falling reports whether b was released on the last Update.
func (h *DigitalHandler) Falling(b Button) bool {
	e, _ := h.Events(b)
	return e.Falling()
}

// Held reports whether the last Update released a long press of b.
func (h *DigitalHandler) Held(b Button) bool {
	e, _ := h.Events(b)
	return e.Held()
}

// Double reports whether the last Update completed a double press of b.
func (h *DigitalHandler) Double(b Button) bool {
	e, _ := h.Events(b)
	return e.Double()
}

// Reset releases every debouncer and clears event memory.
func (h *DigitalHandler) Reset() {
	for i := range h.debouncers {
		h.debouncers[i].Reset()
		h.events[i].Reset()
	}
	h.states = [NumInputs]bool{}
}

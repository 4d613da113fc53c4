package input_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxpad/nxpad/input"
)

// pinsFor returns a pin array with the default pins of the given buttons held.
func pinsFor(buttons ...input.Button) []bool {
	pins := make([]bool, 21)
	for _, b := range buttons {
		pins[input.DefaultBindings[b].Pin] = true
	}
	return pins
}

func pollN(h *input.DigitalHandler, pins []bool, n int) (input.Buttons, input.Directions) {
	var b input.Buttons
	var d input.Directions
	for range n {
		b, d = h.Update(pins)
	}
	return b, d
}

func TestDefaultBindingsOrder(t *testing.T) {
	for i, bind := range input.DefaultBindings {
		assert.Equal(t, input.Button(i), bind.Button, "binding %d", i)
	}
}

func TestDigitalDebouncesAndRoutes(t *testing.T) {
	h := input.NewDigitalHandler()
	pins := pinsFor(input.ButtonA, input.ButtonHome, input.ButtonDpadUp, input.ButtonDpadRight)

	b, d := pollN(h, pins, 2)
	assert.Equal(t, input.Buttons{}, b, "not yet debounced")
	assert.Equal(t, input.Directions{}, d)

	b, d = h.Update(pins)
	var want input.Buttons
	want.Set(input.ButtonA, true)
	want.Set(input.ButtonHome, true)
	if diff := cmp.Diff(want, b); diff != "" {
		t.Fatalf("buttons mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, input.Directions{Up: true, Right: true}, d)
	assert.Equal(t, input.Directions{Up: true, Right: true}, h.DPadStates())

	raw := h.RawStates()
	assert.True(t, raw[input.ButtonA])
	assert.True(t, raw[input.ButtonDpadUp])
	assert.False(t, raw[input.ButtonB])
}

func TestDigitalDPadNeverInButtons(t *testing.T) {
	h := input.NewDigitalHandler()
	b, d := pollN(h, pinsFor(input.ButtonDpadUp, input.ButtonDpadDown, input.ButtonDpadLeft, input.ButtonDpadRight), 3)
	assert.Equal(t, uint16(0), b.Mask())
	assert.Equal(t, input.Directions{Up: true, Down: true, Left: true, Right: true}, d)
}

func TestDigitalShortPinSlice(t *testing.T) {
	h := input.NewDigitalHandler()
	assert.NotPanics(t, func() {
		pollN(h, nil, 5)
		pollN(h, []bool{true, true, true}, 5)
	})
	b, _ := pollN(h, []bool{false, false, true}, 3)
	assert.True(t, b.Pressed(input.ButtonA), "pin 2 is within the slice")
	assert.False(t, b.Pressed(input.ButtonR3))
}

func TestDigitalCustomBindings(t *testing.T) {
	bindings := input.DefaultBindings
	bindings[input.ButtonA].Pin = 0
	h := input.NewDigitalHandlerWith(bindings, 1)

	b, _ := h.Update([]bool{true})
	assert.True(t, b.Pressed(input.ButtonA))
	assert.Equal(t, bindings, h.Bindings())

	h.Reset()
	assert.Equal(t, [input.NumInputs]bool{}, h.RawStates())
}

func TestButtonMask(t *testing.T) {
	cases := []struct {
		button input.Button
		mask   uint16
	}{
		{input.ButtonA, 1 << 0},
		{input.ButtonB, 1 << 1},
		{input.ButtonX, 1 << 2},
		{input.ButtonY, 1 << 3},
		{input.ButtonL, 1 << 4},
		{input.ButtonR, 1 << 5},
		{input.ButtonZL, 1 << 6},
		{input.ButtonZR, 1 << 7},
		{input.ButtonMinus, 1 << 8},
		{input.ButtonPlus, 1 << 9},
		{input.ButtonL3, 1 << 10},
		{input.ButtonR3, 1 << 11},
		{input.ButtonHome, 1 << 12},
		{input.ButtonCapture, 1 << 13},
	}
	for _, tc := range cases {
		t.Run(tc.button.String(), func(t *testing.T) {
			var b input.Buttons
			assert.True(t, b.Set(tc.button, true))
			assert.Equal(t, tc.mask, b.Mask())
			assert.True(t, b.Pressed(tc.button))
		})
	}

	var b input.Buttons
	assert.False(t, b.Set(input.ButtonDpadUp, true))
	assert.False(t, b.Pressed(input.ButtonDpadUp))
}

func TestParseButton(t *testing.T) {
	cases := map[string]input.Button{
		"a":        input.ButtonA,
		"ZL":       input.ButtonZL,
		"plus":     input.ButtonPlus,
		"+":        input.ButtonPlus,
		"start":    input.ButtonPlus,
		"-":        input.ButtonMinus,
		"select":   input.ButtonMinus,
		"capture":  input.ButtonCapture,
		"dpad-up":  input.ButtonDpadUp,
		"dpad_up":  input.ButtonDpadUp,
		"Left":     input.ButtonDpadLeft,
		" home ":   input.ButtonHome,
		"rs":       input.ButtonR3,
		"DpadDown": input.ButtonDpadDown,
	}
	for in, want := range cases {
		got, ok := input.ParseButton(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "turbo", "--"} {
		_, ok := input.ParseButton(in)
		assert.False(t, ok, in)
	}
}

func TestDigitalEvents(t *testing.T) {
	h := input.NewDigitalHandlerWith(input.DefaultBindings, 1)
	h.SetEventThresholds(3, 4)
	pressed, released := pinsFor(input.ButtonA), pinsFor()

	h.Update(pressed)
	assert.True(t, h.Rising(input.ButtonA))
	assert.False(t, h.Rising(input.ButtonB))
	pollN(h, pressed, 2)
	assert.False(t, h.Rising(input.ButtonA))

	h.Update(released)
	assert.True(t, h.Falling(input.ButtonA))
	assert.True(t, h.Held(input.ButtonA), "three ticks meets the hold threshold")
	assert.False(t, h.Double(input.ButtonA))

	h.Update(pressed)
	h.Update(released)
	assert.True(t, h.Double(input.ButtonA), "second release two ticks after the first")
	assert.False(t, h.Held(input.ButtonA))

	e, ok := h.Events(input.ButtonA)
	require.True(t, ok)
	assert.Equal(t, uint32(3), e.HeldThreshold)
	_, ok = h.Events(input.NumInputs)
	assert.False(t, ok)

	h.Reset()
	h.Update(released)
	assert.False(t, h.Falling(input.ButtonA))
}

func TestDigitalEventsFollowDebouncedState(t *testing.T) {
	h := input.NewDigitalHandler()
	h.Update(pinsFor(input.ButtonB))
	assert.False(t, h.Rising(input.ButtonB), "raw level alone is not a press")
	pollN(h, pinsFor(input.ButtonB), 2)
	assert.True(t, h.Rising(input.ButtonB))
}

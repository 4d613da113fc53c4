// Package pinout holds the pin tables that tie board pins to controller inputs.
package pinout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nxpad/nxpad/input"
)

// Unbound marks an input that has no pin in a layout.
const Unbound uint8 = 0xFF

// Analog channel slots, in the order the pipeline consumes them.
const (
	AxisLX = iota
	AxisLY
	AxisRX
	AxisRY

	NumAxes
)

var axisNames = [NumAxes]string{"lx", "ly", "rx", "ry"}

var (
	ErrUnknownButton = errors.New("unknown button")
	ErrUnknownAxis   = errors.New("unknown analog axis")
	ErrUnknownLayout = errors.New("unknown pinout")
	ErrDuplicatePin  = errors.New("pin assigned twice")
)

// Layout maps every controller input to a board pin.
type Layout struct {
	Name string
	// Digital pin per input.Button.
	Digital [input.NumInputs]uint8
	// ADC channel per axis, indexed by AxisLX..AxisRY.
	Analog [NumAxes]uint8
	// Lock is the guard pin of the menu lock.
	Lock uint8
	// ActiveLow digital inputs read low when pressed (pull-up wiring).
	ActiveLow bool
}

// Standard is the reference board wiring.
var Standard = Layout{
	Name: "standard",
	Digital: [input.NumInputs]uint8{
		input.ButtonA:         2,
		input.ButtonB:         3,
		input.ButtonX:         4,
		input.ButtonY:         5,
		input.ButtonL:         6,
		input.ButtonR:         7,
		input.ButtonZL:        8,
		input.ButtonZR:        9,
		input.ButtonPlus:      10,
		input.ButtonMinus:     11,
		input.ButtonHome:      12,
		input.ButtonCapture:   14,
		input.ButtonL3:        15,
		input.ButtonR3:        16,
		input.ButtonDpadUp:    17,
		input.ButtonDpadDown:  18,
		input.ButtonDpadLeft:  19,
		input.ButtonDpadRight: 20,
	},
	Analog:    [NumAxes]uint8{7, 8, 9, 10},
	Lock:      0,
	ActiveLow: true,
}

// Alternate swaps A and B onto pins 11 and 14 and leaves the triggers, stick
// clicks, capture, analog sticks and lock unwired.
var Alternate = Layout{
	Name: "alternate",
	Digital: [input.NumInputs]uint8{
		input.ButtonA:         11,
		input.ButtonB:         14,
		input.ButtonX:         1,
		input.ButtonY:         6,
		input.ButtonL:         7,
		input.ButtonR:         8,
		input.ButtonZL:        Unbound,
		input.ButtonZR:        Unbound,
		input.ButtonPlus:      9,
		input.ButtonMinus:     10,
		input.ButtonHome:      15,
		input.ButtonCapture:   Unbound,
		input.ButtonL3:        Unbound,
		input.ButtonR3:        Unbound,
		input.ButtonDpadUp:    16,
		input.ButtonDpadDown:  17,
		input.ButtonDpadLeft:  18,
		input.ButtonDpadRight: 19,
	},
	Analog:    [NumAxes]uint8{Unbound, Unbound, Unbound, Unbound},
	Lock:      Unbound,
	ActiveLow: true,
}

// Builtin returns a copy of a built-in layout by name.
func Builtin(name string) (Layout, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "standard", "default":
		return Standard, true
	case "alternate":
		return Alternate, true
	}
	return Layout{}, false
}

// Lookup resolves a built-in layout name, or otherwise loads the named
// TOML file.
func Lookup(name string) (Layout, error) {
	if l, ok := Builtin(name); ok {
		return l, nil
	}
	if !strings.HasSuffix(strings.ToLower(name), ".toml") {
		return Layout{}, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
	return LoadFile(name)
}

// Bindings returns the digital handler bindings for l. Unbound inputs keep
// their Unbound pin, which never reads as pressed.
func (l Layout) Bindings() [input.NumInputs]input.Binding {
	var b [input.NumInputs]input.Binding
	for i, pin := range l.Digital {
		b[i] = input.Binding{Pin: pin, Button: input.Button(i)}
	}
	return b
}

// DigitalPin returns the pin of a button name. ok is false for unknown names
// and unbound buttons.
func (l Layout) DigitalPin(name string) (pin uint8, ok bool) {
	b, found := input.ParseButton(name)
	if !found {
		return Unbound, false
	}
	pin = l.Digital[b]
	return pin, pin != Unbound
}

// AnalogPin returns the ADC channel of an axis name (lx, ly, rx, ry).
func (l Layout) AnalogPin(name string) (pin uint8, ok bool) {
	axis, found := parseAxis(name)
	if !found {
		return Unbound, false
	}
	pin = l.Analog[axis]
	return pin, pin != Unbound
}

// HasLock reports whether the layout wires a lock pin.
func (l Layout) HasLock() bool {
	return l.Lock != Unbound
}

// MaxDigitalPin returns the highest bound digital or lock pin, or -1 when
// nothing is bound.
func (l Layout) MaxDigitalPin() int {
	hi := -1
	for _, p := range l.Digital {
		if p != Unbound {
			hi = max(hi, int(p))
		}
	}
	if l.HasLock() {
		hi = max(hi, int(l.Lock))
	}
	return hi
}

// Validate checks that no digital pin is shared between inputs or with the
// lock pin.
func (l Layout) Validate() error {
	owner := map[uint8]string{}
	claim := func(pin uint8, name string) error {
		if pin == Unbound {
			return nil
		}
		if prev, dup := owner[pin]; dup {
			return fmt.Errorf("%w: pin %d used by %s and %s", ErrDuplicatePin, pin, prev, name)
		}
		owner[pin] = name
		return nil
	}
	for i, p := range l.Digital {
		if err := claim(p, input.Button(i).String()); err != nil {
			return err
		}
	}
	if err := claim(l.Lock, "lock"); err != nil {
		return err
	}

	seen := map[uint8]string{}
	for i, p := range l.Analog {
		if p == Unbound {
			continue
		}
		if prev, dup := seen[p]; dup {
			return fmt.Errorf("%w: ADC channel %d used by %s and %s", ErrDuplicatePin, p, prev, axisNames[i])
		}
		seen[p] = axisNames[i]
	}
	return nil
}

func parseAxis(name string) (int, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, an := range axisNames {
		if an == n {
			return i, true
		}
	}
	return 0, false
}

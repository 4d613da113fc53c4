package input

import (
	"fmt"
	"strings"
)

// Button identifies a logical controller input.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonL
	ButtonR
	ButtonZL
	ButtonZR
	ButtonPlus
	ButtonMinus
	ButtonHome
	ButtonCapture
	ButtonL3
	ButtonR3
	ButtonDpadUp
	ButtonDpadDown
	ButtonDpadLeft
	ButtonDpadRight

	NumInputs
)

// NumButtons is the number of non-D-pad buttons carried in the report's
// button field.
const NumButtons = 14

var buttonNames = [NumInputs]string{
	"A", "B", "X", "Y",
	"L", "R", "ZL", "ZR",
	"Plus", "Minus", "Home", "Capture",
	"L3", "R3",
	"DpadUp", "DpadDown", "DpadLeft", "DpadRight",
}

func (b Button) String() string {
	if b >= NumInputs {
		return fmt.Sprintf("Button(%d)", uint8(b))
	}
	return buttonNames[b]
}

// reportIndex maps non-D-pad buttons to their bit in the report.
var reportIndex = [NumButtons]int{
	ButtonA:       0,
	ButtonB:       1,
	ButtonX:       2,
	ButtonY:       3,
	ButtonL:       4,
	ButtonR:       5,
	ButtonZL:      6,
	ButtonZR:      7,
	ButtonPlus:    9,
	ButtonMinus:   8,
	ButtonHome:    12,
	ButtonCapture: 13,
	ButtonL3:      10,
	ButtonR3:      11,
}

// ReportIndex returns the bit position of b in the report's button field.
// D-pad directions are carried by the HAT value instead and report false.
func (b Button) ReportIndex() (int, bool) {
	if b >= NumButtons {
		return 0, false
	}
	return reportIndex[b], true
}

// IsDPad reports whether b is one of the four D-pad directions.
func (b Button) IsDPad() bool {
	return b >= ButtonDpadUp && b < NumInputs
}

// IsMenu reports whether b is a menu-class button that may be locked.
func (b Button) IsMenu() bool {
	switch b {
	case ButtonHome, ButtonPlus, ButtonMinus, ButtonCapture:
		return true
	}
	return false
}

var buttonAliases = map[string]Button{
	"+":      ButtonPlus,
	"start":  ButtonPlus,
	"-":      ButtonMinus,
	"select": ButtonMinus,
	"ls":     ButtonL3,
	"rs":     ButtonR3,
	"up":     ButtonDpadUp,
	"down":   ButtonDpadDown,
	"left":   ButtonDpadLeft,
	"right":  ButtonDpadRight,
}

// ParseButton resolves a button name case-insensitively. Besides the
// canonical names it accepts a few common aliases ("start", "select",
// "up", "dpad-up", ...).
func ParseButton(name string) (Button, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", "")
	n = strings.ReplaceAll(n, "_", "")
	if n == "" {
		if strings.TrimSpace(name) == "-" {
			return ButtonMinus, true
		}
		return 0, false
	}
	for i, bn := range buttonNames {
		if strings.ToLower(bn) == n {
			return Button(i), true
		}
	}
	b, ok := buttonAliases[n]
	return b, ok
}

// Buttons is the state of the report's button field, indexed by report bit.
type Buttons [NumButtons]bool

// Pressed reports whether b is set. D-pad directions are never set here.
func (bs Buttons) Pressed(b Button) bool {
	idx, ok := b.ReportIndex()
	if !ok {
		return false
	}
	return bs[idx]
}

// Set updates b and reports whether b has a slot in the button field.
func (bs *Buttons) Set(b Button, pressed bool) bool {
	idx, ok := b.ReportIndex()
	if !ok {
		return false
	}
	bs[idx] = pressed
	return true
}

// Mask packs the buttons into the 16-bit report field; bits 14-15 stay zero.
func (bs Buttons) Mask() uint16 {
	var m uint16
	for i, p := range bs {
		if p {
			m |= 1 << i
		}
	}
	return m
}

// Directions is a four-direction D-pad state.
type Directions struct {
	Up, Down, Left, Right bool
}

// Stick is one analog stick position in report units (128 = center).
type Stick struct {
	X, Y uint8
}

// CenteredStick is a stick at rest.
var CenteredStick = Stick{X: 128, Y: 128}

package testing

import (
	"testing"

	"github.com/nxpad/nxpad/input"
	"github.com/nxpad/nxpad/pinout"
)

// MockBoard is an in-memory board.PinReader wired according to a layout.
// Digital pins idle at the released level and ADC channels at center.
type MockBoard struct {
	t      *testing.T
	layout pinout.Layout
	levels map[uint8]bool
	adc    map[uint8]uint16

	// Reads counts ReadPin calls.
	Reads int
}

func NewMockBoard(t *testing.T, layout pinout.Layout) *MockBoard {
	t.Helper()
	m := &MockBoard{
		t:      t,
		layout: layout,
		levels: map[uint8]bool{},
		adc:    map[uint8]uint16{},
	}
	for _, pin := range layout.Digital {
		if pin != pinout.Unbound {
			m.levels[pin] = layout.ActiveLow
		}
	}
	for _, ch := range layout.Analog {
		if ch != pinout.Unbound {
			m.adc[ch] = input.DefaultCenter
		}
	}
	return m
}

// Press drives b's pin to the pressed level.
func (m *MockBoard) Press(b input.Button) { m.set(b, true) }

// Release drives b's pin to the released level.
func (m *MockBoard) Release(b input.Button) { m.set(b, false) }

func (m *MockBoard) set(b input.Button, pressed bool) {
	m.t.Helper()
	pin := m.layout.Digital[b]
	if pin == pinout.Unbound {
		m.t.Fatalf("%s is not wired in pinout %s", b, m.layout.Name)
	}
	m.levels[pin] = pressed != m.layout.ActiveLow
}

// SetLevel sets the raw electrical level of pin.
func (m *MockBoard) SetLevel(pin uint8, level bool) {
	m.levels[pin] = level
}

// SetAxis sets the ADC reading of the channel wired to the named axis
// (lx, ly, rx, ry).
func (m *MockBoard) SetAxis(axis string, v uint16) {
	m.t.Helper()
	ch, ok := m.layout.AnalogPin(axis)
	if !ok {
		m.t.Fatalf("axis %s is not wired in pinout %s", axis, m.layout.Name)
	}
	m.adc[ch] = v
}

func (m *MockBoard) ReadPin(pin uint8) bool {
	m.Reads++
	return m.levels[pin]
}

func (m *MockBoard) ReadAnalogPin(pin uint8) uint16 {
	return m.adc[pin]
}

// Package board is the boundary between the input pipeline and the GPIO/ADC
// hardware that feeds it.
package board

import "github.com/nxpad/nxpad/pinout"

// PinReader reads raw electrical levels from the board.
type PinReader interface {
	// ReadPin returns the level of a digital pin (true = high).
	ReadPin(pin uint8) bool
	// ReadAnalogPin returns the raw ADC reading of a channel.
	ReadAnalogPin(pin uint8) uint16
}

// Sampler collects one tick of inputs for input.Manager.Poll from a
// PinReader, following a pinout.Layout.
type Sampler struct {
	layout pinout.Layout
	reader PinReader
	center uint16

	digital []bool
	analog  []uint16
}

// NewSampler returns a sampler. Unwired analog axes read as center.
func NewSampler(r PinReader, layout pinout.Layout, center uint16) *Sampler {
	return &Sampler{
		layout:  layout,
		reader:  r,
		center:  center,
		digital: make([]bool, layout.MaxDigitalPin()+1),
		analog:  make([]uint16, pinout.NumAxes),
	}
}

// Sample reads every wired pin. digital is indexed by pin number and holds
// logical levels (true = pressed) regardless of the layout's polarity.
// analog is [LX, LY, RX, RY]. lock is the raw guard pin level; the lock
// handler applies its own polarity, so an unwired lock reads as false.
//
// The returned slices are reused by the next call.
func (s *Sampler) Sample() (digital []bool, analog []uint16, lock bool) {
	clear(s.digital)
	for _, pin := range s.layout.Digital {
		if pin == pinout.Unbound {
			continue
		}
		s.digital[pin] = s.reader.ReadPin(pin) != s.layout.ActiveLow
	}
	for i, ch := range s.layout.Analog {
		if ch == pinout.Unbound {
			s.analog[i] = s.center
			continue
		}
		s.analog[i] = s.reader.ReadAnalogPin(ch)
	}
	if s.layout.HasLock() {
		lock = s.reader.ReadPin(s.layout.Lock)
	}
	return s.digital, s.analog, lock
}

// Layout returns the sampler's layout.
func (s *Sampler) Layout() pinout.Layout {
	return s.layout
}

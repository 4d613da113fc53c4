// Package debounce stabilizes noisy boolean inputs and derives press
// events from them.
//
// A Debouncer is a run-length filter driven purely by call count: the
// reported state flips only after Threshold consecutive samples disagree
// with it, so its time constant is Threshold times the poll period.
package debounce

// DefaultThreshold is the number of consecutive opposite samples needed to
// flip the reported state.
const DefaultThreshold uint8 = 3

// Debouncer filters a single boolean input. The zero value is not usable;
// construct with New or NewWithThreshold.
type Debouncer struct {
	state     bool
	counter   uint8
	threshold uint8
}

// New returns a released Debouncer with DefaultThreshold.
func New() Debouncer {
	return NewWithThreshold(DefaultThreshold)
}

// NewWithThreshold returns a released Debouncer. A threshold of 0 is
// treated as 1 (flip on the first differing sample).
func NewWithThreshold(threshold uint8) Debouncer {
	if threshold == 0 {
		threshold = 1
	}
	return Debouncer{threshold: threshold}
}

// Update feeds one sample and returns the debounced state.
// counter < threshold holds on return.
func (d *Debouncer) Update(sample bool) bool {
	if sample == d.state {
		d.counter = 0
		return d.state
	}
	if d.counter < 0xFF {
		d.counter++
	}
	if d.counter >= d.threshold {
		d.state = sample
		d.counter = 0
	}
	return d.state
}

// State returns the debounced state without sampling.
func (d *Debouncer) State() bool {
	return d.state
}

// Threshold returns the configured flip threshold.
func (d *Debouncer) Threshold() uint8 {
	return d.threshold
}

// Reset returns the debouncer to the released state, keeping its threshold.
func (d *Debouncer) Reset() {
	d.state = false
	d.counter = 0
}

// Package trace loads recorded controller input and plays it back as a
// board.PinReader.
package trace

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nxpad/nxpad/input"
	"github.com/nxpad/nxpad/pinout"
)

var ErrEmptyTrace = errors.New("trace has no frames")

// Trace is a sequence of input frames, each held for one or more ticks.
type Trace struct {
	// Center is the ADC value used for sticks a frame leaves out.
	Center uint16
	Frames []Frame
}

// Frame is the input held during Repeat consecutive ticks.
type Frame struct {
	Repeat  int
	Pressed []input.Button
	// Sticks are raw ADC values, [LX, LY, RX, RY].
	Sticks [pinout.NumAxes]uint16
	// Lock is the electrical level of the lock pin.
	Lock bool
}

// Ticks returns the total number of ticks in t.
func (t *Trace) Ticks() int {
	n := 0
	for _, f := range t.Frames {
		n += f.Repeat
	}
	return n
}

type yamlSticks struct {
	LX *uint16 `yaml:"lx"`
	LY *uint16 `yaml:"ly"`
	RX *uint16 `yaml:"rx"`
	RY *uint16 `yaml:"ry"`
}

type yamlFrame struct {
	Repeat  int        `yaml:"repeat"`
	Pressed []string   `yaml:"pressed"`
	Sticks  yamlSticks `yaml:"sticks"`
	Lock    bool       `yaml:"lock"`
}

type yamlTrace struct {
	Center *uint16     `yaml:"center"`
	Frames []yamlFrame `yaml:"frames"`
}

// Load reads a YAML trace file.
func Load(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("trace %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a YAML trace:
//
//	center: 512
//	frames:
//	  - repeat: 3
//	    pressed: [a, dpad-up]
//	    sticks: {lx: 1023}
//	    lock: false
//
// A missing or non-positive repeat counts as 1.
func Parse(data []byte) (*Trace, error) {
	var y yamlTrace
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("decode trace: %w", err)
	}
	if len(y.Frames) == 0 {
		return nil, ErrEmptyTrace
	}

	t := &Trace{Center: input.DefaultCenter, Frames: make([]Frame, 0, len(y.Frames))}
	if y.Center != nil {
		t.Center = *y.Center
	}
	for i, yf := range y.Frames {
		f := Frame{Repeat: max(yf.Repeat, 1), Lock: yf.Lock}
		for _, name := range yf.Pressed {
			b, ok := input.ParseButton(name)
			if !ok {
				return nil, fmt.Errorf("frame %d: %w: %q", i, pinout.ErrUnknownButton, name)
			}
			f.Pressed = append(f.Pressed, b)
		}
		for axis, v := range []*uint16{yf.Sticks.LX, yf.Sticks.LY, yf.Sticks.RX, yf.Sticks.RY} {
			f.Sticks[axis] = t.Center
			if v != nil {
				f.Sticks[axis] = *v
			}
		}
		t.Frames = append(t.Frames, f)
	}
	return t, nil
}

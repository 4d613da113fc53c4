package pinout

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/nxpad/nxpad/input"
)

// fileLayout is the TOML form of a layout:
//
//	name = "my-board"
//	base = "standard"
//	active_low = true
//	lock = 0
//
//	[digital]
//	a = 11
//	capture = -1  # unbind
//
//	[analog]
//	lx = 7
type fileLayout struct {
	Name      string         `toml:"name"`
	Base      string         `toml:"base"`
	ActiveLow *bool          `toml:"active_low"`
	Lock      *int           `toml:"lock"`
	Digital   map[string]int `toml:"digital"`
	Analog    map[string]int `toml:"analog"`
}

// LoadFile reads a TOML layout. Inputs the file does not mention keep the
// pins of its base layout (Standard by default); a negative pin unbinds.
func LoadFile(path string) (Layout, error) {
	var f fileLayout
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return Layout{}, fmt.Errorf("pinout %s: %w", path, err)
	}
	l, err := f.layout()
	if err != nil {
		return Layout{}, fmt.Errorf("pinout %s: %w", path, err)
	}
	return l, nil
}

// Parse decodes a TOML layout from memory.
func Parse(data string) (Layout, error) {
	var f fileLayout
	if _, err := toml.Decode(data, &f); err != nil {
		return Layout{}, fmt.Errorf("pinout: %w", err)
	}
	return f.layout()
}

func (f fileLayout) layout() (Layout, error) {
	l, ok := Builtin(f.Base)
	if !ok {
		return Layout{}, fmt.Errorf("base: %w: %q", ErrUnknownLayout, f.Base)
	}
	l.Name = f.Name
	if l.Name == "" {
		l.Name = "custom"
	}
	if f.ActiveLow != nil {
		l.ActiveLow = *f.ActiveLow
	}
	if f.Lock != nil {
		p, err := pinValue(*f.Lock)
		if err != nil {
			return Layout{}, fmt.Errorf("lock: %w", err)
		}
		l.Lock = p
	}
	for name, v := range f.Digital {
		b, ok := input.ParseButton(name)
		if !ok {
			return Layout{}, fmt.Errorf("%w: %q", ErrUnknownButton, name)
		}
		p, err := pinValue(v)
		if err != nil {
			return Layout{}, fmt.Errorf("%s: %w", name, err)
		}
		l.Digital[b] = p
	}
	for name, v := range f.Analog {
		axis, ok := parseAxis(name)
		if !ok {
			return Layout{}, fmt.Errorf("%w: %q", ErrUnknownAxis, name)
		}
		p, err := pinValue(v)
		if err != nil {
			return Layout{}, fmt.Errorf("%s: %w", name, err)
		}
		l.Analog[axis] = p
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

func pinValue(v int) (uint8, error) {
	switch {
	case v < 0:
		return Unbound, nil
	case v >= int(Unbound):
		return 0, fmt.Errorf("pin %d out of range", v)
	}
	return uint8(v), nil
}

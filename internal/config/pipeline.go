// Package config holds the kong-tagged configuration of the input pipeline
// and builds the pipeline from it.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/nxpad/nxpad/diag"
	"github.com/nxpad/nxpad/input"
	"github.com/nxpad/nxpad/pinout"
)

// Pipeline configures every stage of the input pipeline.
type Pipeline struct {
	Pinout            string        `help:"Pinout: standard, alternate or a .toml layout file" default:"standard" env:"NXPAD_PINOUT"`
	DebounceThreshold uint8         `help:"Consecutive differing samples needed to flip a button" default:"3" env:"NXPAD_DEBOUNCE_THRESHOLD"`
	PollInterval      time.Duration `help:"Time between poll ticks; 0 polls as fast as possible" default:"1ms" env:"NXPAD_POLL_INTERVAL"`

	SOCD   SOCD   `embed:"" prefix:"socd."`
	Analog Analog `embed:"" prefix:"analog."`
	Lock   Lock   `embed:"" prefix:"lock."`
	Events Events `embed:"" prefix:"events."`
}

type SOCD struct {
	LeftRight string `help:"SOCD method for left/right" default:"neutral" env:"NXPAD_SOCD_LEFT_RIGHT"`
	UpDown    string `help:"SOCD method for up/down" default:"up-priority" env:"NXPAD_SOCD_UP_DOWN"`
}

type Analog struct {
	Deadzone       uint16  `help:"Deadzone radius in raw ADC units" default:"50" env:"NXPAD_ANALOG_DEADZONE"`
	FilterStrength float32 `help:"Low-pass weight of new samples, 0-1; lower smooths more" default:"0.3" env:"NXPAD_ANALOG_FILTER_STRENGTH"`
	Left           Stick   `embed:"" prefix:"left."`
	Right          Stick   `embed:"" prefix:"right."`
}

// Stick is the raw calibration of one stick.
type Stick struct {
	Center  uint16 `help:"Raw rest position" default:"512"`
	Min     uint16 `help:"Raw minimum" default:"0"`
	Max     uint16 `help:"Raw maximum" default:"1023"`
	InvertY bool   `help:"Invert the Y axis"`
}

type Lock struct {
	ActiveLow bool     `help:"Lock engages when the lock pin is low" env:"NXPAD_LOCK_ACTIVE_LOW"`
	Buttons   []string `help:"Menu buttons suppressed while locked (max 4)" default:"home,plus,minus" env:"NXPAD_LOCK_BUTTONS"`
}

// Events sets the per-button hold and double-press detection, in poll ticks.
type Events struct {
	Held   uint32 `help:"Ticks a press must last to count as held; 0 disables" default:"500" env:"NXPAD_EVENTS_HELD"`
	Double uint32 `help:"Ticks within which a second release counts as a double press; 0 disables" default:"250" env:"NXPAD_EVENTS_DOUBLE"`
}

func (s Stick) calibration() input.Calibration {
	return input.Calibration{
		CenterX: s.Center, CenterY: s.Center,
		MinX: s.Min, MinY: s.Min,
		MaxX: s.Max, MaxY: s.Max,
	}
}

// Build constructs the input manager and resolves the pin layout. Errors are
// tagged diag.ConfigError.
func (p *Pipeline) Build(logger *slog.Logger) (*input.Manager, pinout.Layout, error) {
	layout, err := pinout.Lookup(p.Pinout)
	if err != nil {
		return nil, pinout.Layout{}, diag.Wrap(diag.ConfigError, err)
	}
	if p.DebounceThreshold == 0 {
		return nil, pinout.Layout{}, diag.Wrap(diag.ConfigError, fmt.Errorf("debounce threshold must be at least 1"))
	}

	digital := input.NewDigitalHandlerWith(layout.Bindings(), p.DebounceThreshold)
	digital.SetEventThresholds(p.Events.Held, p.Events.Double)

	lr := socdMethod("left-right", p.SOCD.LeftRight, logger)
	ud := socdMethod("up-down", p.SOCD.UpDown, logger)
	socd := input.NewSOCDResolverWith(lr, ud)

	analog := input.NewAnalogHandler()
	analog.SetDeadzone(p.Analog.Deadzone)
	if p.Analog.FilterStrength < 0 || p.Analog.FilterStrength > 1 {
		logger.Warn("Filter strength out of range, clamping", "value", p.Analog.FilterStrength)
	}
	analog.SetFilterStrength(p.Analog.FilterStrength)
	for id, s := range map[input.StickID]Stick{input.StickLeft: p.Analog.Left, input.StickRight: p.Analog.Right} {
		if s.Min > s.Center || s.Center > s.Max {
			logger.Warn("Stick bounds do not contain center, widening", "stick", id, "min", s.Min, "center", s.Center, "max", s.Max)
		}
		analog.SetCalibration(id, s.calibration())
		analog.SetInvertY(id, s.InvertY)
	}

	lock := input.NewLockHandler(!p.Lock.ActiveLow)
	if layout.HasLock() {
		for _, name := range p.Lock.Buttons {
			b, ok := input.ParseButton(name)
			if !ok {
				return nil, pinout.Layout{}, diag.Wrap(diag.ConfigError, fmt.Errorf("lock: %w: %q", pinout.ErrUnknownButton, name))
			}
			if !lock.AddButton(b) {
				return nil, pinout.Layout{}, diag.Wrap(diag.ConfigError, fmt.Errorf("lock: cannot lock %s (menu buttons only, at most %d)", b, input.MaxLockedButtons))
			}
		}
	} else if len(p.Lock.Buttons) > 0 {
		logger.Debug("Pinout has no lock pin, menu lock disabled", "pinout", layout.Name)
	}

	m := input.NewManagerWithHandlers(digital, analog, socd, lock)
	m.SetLogger(logger.With("component", "input"))

	logger.Debug("Pipeline configured",
		"pinout", layout.Name,
		"debounce", p.DebounceThreshold,
		"socd.left-right", lr,
		"socd.up-down", ud,
		"deadzone", p.Analog.Deadzone,
		"filter", analog.FilterStrength(),
		"lock", lock.Buttons(),
		"events.held", p.Events.Held,
		"events.double", p.Events.Double,
	)
	return m, layout, nil
}

func socdMethod(pair, name string, logger *slog.Logger) input.Method {
	m, ok := input.LookupMethod(name)
	if !ok {
		logger.Warn("Unknown SOCD method, using neutral", "pair", pair, "method", name)
	}
	return m
}

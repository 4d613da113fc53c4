// Package input implements the controller input pipeline: debouncing,
// SOCD resolution, menu-button locking, analog processing and report
// assembly.
package input

import (
	"context"
	"log/slog"

	"github.com/nxpad/nxpad/device/switchpro"
	"github.com/nxpad/nxpad/internal/log"
)

// Manager runs one poll cycle over its handlers and holds the resulting
// snapshot. It is not safe for concurrent use; share reports with other
// goroutines through switchpro.SwitchPro.
type Manager struct {
	digital *DigitalHandler
	analog  *AnalogHandler
	socd    *SOCDResolver
	lock    *LockHandler

	state  ControllerState
	ticks  uint64
	logger *slog.Logger
}

// NewManager returns a Manager with default handlers.
func NewManager() *Manager {
	return NewManagerWithHandlers(
		NewDigitalHandler(),
		NewAnalogHandler(),
		NewSOCDResolver(),
		NewDefaultLockHandler(),
	)
}

// NewManagerWithHandlers returns a Manager over the given handlers. Nil
// handlers are replaced by defaults.
func NewManagerWithHandlers(d *DigitalHandler, a *AnalogHandler, s *SOCDResolver, l *LockHandler) *Manager {
	if d == nil {
		d = NewDigitalHandler()
	}
	if a == nil {
		a = NewAnalogHandler()
	}
	if s == nil {
		s = NewSOCDResolver()
	}
	if l == nil {
		l = NewDefaultLockHandler()
	}
	return &Manager{
		digital: d,
		analog:  a,
		socd:    s,
		lock:    l,
		state:   NeutralState(),
		logger:  slog.New(slog.DiscardHandler),
	}
}

// SetLogger sets the logger used for lock transitions and tick tracing.
func (m *Manager) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	m.logger = l
}

// Poll runs one tick. pins is indexed by digital pin number, analog holds
// [LX, LY, RX, RY] and lock is the guard pin's level. Short inputs read as
// released and centered.
func (m *Manager) Poll(pins []bool, analog []uint16, lock bool) ControllerState {
	m.ticks++

	wasLocked := m.lock.Locked()
	m.lock.UpdateLockState(lock)
	if locked := m.lock.Locked(); locked != wasLocked {
		m.logger.Debug("Menu lock changed", "locked", locked, "tick", m.ticks)
	}

	buttons, dpad := m.digital.Update(pins)
	if m.logger.Enabled(context.Background(), slog.LevelDebug) {
		m.logEvents()
	}
	dpad = m.socd.Resolve(dpad)
	buttons = m.lock.Process(buttons)
	left, right := m.analog.Update(analog)

	m.state = ControllerState{
		Buttons:    buttons,
		DPad:       dpad,
		LeftStick:  left,
		RightStick: right,
	}

	if m.logger.Enabled(context.Background(), log.LevelTrace) {
		m.logger.Log(context.Background(), log.LevelTrace, "Poll",
			"tick", m.ticks,
			"buttons", buttons.Mask(),
			"hat", HatValue(dpad),
			"left", left,
			"right", right,
		)
	}
	return m.state
}

func (m *Manager) logEvents() {
	for i, bind := range m.digital.bindings {
		e := &m.digital.events[i]
		switch {
		case e.Double():
			m.logger.Debug("Button double-pressed", "button", bind.Button, "pin", bind.Pin, "tick", m.ticks)
		case e.Held():
			m.logger.Debug("Button held", "button", bind.Button, "pin", bind.Pin, "threshold", e.HeldThreshold, "tick", m.ticks)
		}
	}
}

// State returns the last snapshot.
func (m *Manager) State() ControllerState {
	return m.state
}

// Report returns the last snapshot as a report.
func (m *Manager) Report() switchpro.Report {
	return m.state.ToReport()
}

// Ticks returns the number of Poll calls since construction or Reset.
func (m *Manager) Ticks() uint64 {
	return m.ticks
}

// Reset returns the snapshot to neutral and clears debounce, SOCD, filter
// and lock memory. Calibration and configuration are kept.
func (m *Manager) Reset() {
	m.digital.Reset()
	m.socd.Reset()
	m.analog.Reset()
	m.lock.Reset()
	m.state = NeutralState()
	m.ticks = 0
}

func (m *Manager) Digital() *DigitalHandler { return m.digital }
func (m *Manager) Analog() *AnalogHandler   { return m.analog }
func (m *Manager) SOCD() *SOCDResolver      { return m.socd }
func (m *Manager) Lock() *LockHandler       { return m.lock }

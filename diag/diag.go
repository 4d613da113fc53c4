// Package diag classifies fatal conditions into a small set of events that
// can be logged and shown on a status LED.
package diag

import (
	"errors"
	"log/slog"
	"strings"
)

// Event is a class of fatal condition.
type Event uint8

const (
	Other Event = iota
	HardFault
	MemoryError
	USBError
	InitError
	ConfigError
)

var eventNames = [...]string{
	Other:       "other",
	HardFault:   "hard-fault",
	MemoryError: "memory",
	USBError:    "usb",
	InitError:   "init",
	ConfigError: "config",
}

func (e Event) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return eventNames[Other]
}

// Blink is one LED pulse.
type Blink uint8

const (
	Short Blink = iota // 200ms on
	Long               // 600ms on
)

func (b Blink) String() string {
	if b == Long {
		return "-"
	}
	return "."
}

var patterns = [...][]Blink{
	Other:       {Short, Short, Short, Long, Long, Long, Short, Short, Short},
	HardFault:   {Short, Short, Short, Short, Short, Short, Short, Short, Short, Short},
	MemoryError: {Long, Short, Short},
	USBError:    {Long, Short, Long},
	InitError:   {Long, Long, Long},
	ConfigError: {Short, Long, Short},
}

// Pattern returns the LED pattern repeated while e is being reported.
func (e Event) Pattern() []Blink {
	if int(e) >= len(patterns) {
		e = Other
	}
	return append([]Blink(nil), patterns[e]...)
}

// BlinkCount returns the number of pulses in e's pattern.
func (e Event) BlinkCount() int {
	if int(e) >= len(patterns) {
		e = Other
	}
	return len(patterns[e])
}

// PatternString renders e's pattern in Morse-like notation, e.g. "-.-".
func (e Event) PatternString() string {
	var sb strings.Builder
	for _, b := range e.Pattern() {
		sb.WriteString(b.String())
	}
	return sb.String()
}

// Infer classifies a free-form failure message.
func Infer(msg string) Event {
	m := strings.ToLower(msg)
	switch {
	case strings.Contains(m, "memory"), strings.Contains(m, "allocation"):
		return MemoryError
	case strings.Contains(m, "usb"):
		return USBError
	case strings.Contains(m, "init"):
		return InitError
	case strings.Contains(m, "config"):
		return ConfigError
	case strings.Contains(m, "fault"):
		return HardFault
	}
	return Other
}

// Error attaches an Event to an error.
type Error struct {
	Event Event
	Err   error
}

// Wrap returns err tagged with ev, or nil for a nil err.
func Wrap(ev Event, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Event: ev, Err: err}
}

func (e *Error) Error() string {
	return e.Event.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Classify returns the Event tagged on err by Wrap, or infers one from its
// message.
func Classify(err error) Event {
	var de *Error
	if errors.As(err, &de) {
		return de.Event
	}
	if err == nil {
		return Other
	}
	return Infer(err.Error())
}

// Log reports a fatal event at error level.
func Log(logger *slog.Logger, ev Event, err error) {
	attrs := []any{
		"event", ev.String(),
		"blinks", ev.BlinkCount(),
		"pattern", ev.PatternString(),
	}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	logger.Error("Fatal error", attrs...)
}

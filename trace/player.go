package trace

import (
	"github.com/nxpad/nxpad/board"
	"github.com/nxpad/nxpad/input"
	"github.com/nxpad/nxpad/pinout"
)

// Player steps through a Trace one tick at a time and serves the current
// frame as electrical pin levels for a layout.
type Player struct {
	trace  *Trace
	layout pinout.Layout

	frame  int // index into trace.Frames
	repeat int // ticks already spent in frame
	tick   int
	held   map[uint8]bool
}

var _ board.PinReader = (*Player)(nil)

// NewPlayer returns a player positioned before the first tick.
func NewPlayer(t *Trace, layout pinout.Layout) *Player {
	p := &Player{trace: t, layout: layout, held: map[uint8]bool{}}
	p.Rewind()
	return p
}

// Next advances one tick and reports whether a frame is available.
func (p *Player) Next() bool {
	if p.frame >= len(p.trace.Frames) {
		return false
	}
	if p.tick > 0 {
		p.repeat++
		if p.repeat >= p.trace.Frames[p.frame].Repeat {
			p.frame++
			p.repeat = 0
			if p.frame >= len(p.trace.Frames) {
				return false
			}
		}
	}
	p.tick++
	p.load()
	return true
}

func (p *Player) load() {
	clear(p.held)
	for _, b := range p.trace.Frames[p.frame].Pressed {
		if pin := p.layout.Digital[b]; pin != pinout.Unbound {
			p.held[pin] = true
		}
	}
}

// Rewind moves the player back before the first tick.
func (p *Player) Rewind() {
	p.frame, p.repeat, p.tick = 0, 0, 0
	clear(p.held)
}

// Tick returns the 1-based number of the current tick, 0 before Next.
func (p *Player) Tick() int { return p.tick }

// Frame returns the current frame.
func (p *Player) Frame() (Frame, bool) {
	if p.tick == 0 || p.frame >= len(p.trace.Frames) {
		return Frame{}, false
	}
	return p.trace.Frames[p.frame], true
}

// ReadPin returns the level a physical button would drive: low for a held
// button on an active-low layout.
func (p *Player) ReadPin(pin uint8) bool {
	if f, ok := p.Frame(); ok && p.layout.HasLock() && pin == p.layout.Lock {
		return f.Lock
	}
	return p.held[pin] != p.layout.ActiveLow
}

// ReadAnalogPin returns the current frame's reading for the axis wired to pin.
func (p *Player) ReadAnalogPin(pin uint8) uint16 {
	f, ok := p.Frame()
	if !ok {
		return p.trace.Center
	}
	for axis, ch := range p.layout.Analog {
		if ch == pin && ch != pinout.Unbound {
			return f.Sticks[axis]
		}
	}
	return p.trace.Center
}

// Pressed reports whether the current frame holds b.
func (p *Player) Pressed(b input.Button) bool {
	f, ok := p.Frame()
	if !ok {
		return false
	}
	for _, pb := range f.Pressed {
		if pb == b {
			return true
		}
	}
	return false
}

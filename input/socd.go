package input

import (
	"strings"

	"github.com/nxpad/nxpad/device/switchpro"
)

// Method selects how a pair of opposite directions pressed together is resolved.
type Method uint8

const (
	// MethodNeutral releases both directions.
	MethodNeutral Method = iota
	// MethodLastWin keeps the most recently pressed direction. Presses on
	// the same tick go to the second direction of the pair (right, down).
	MethodLastWin
	// MethodFirstWin keeps the direction that was held first until it is released.
	MethodFirstWin
	// MethodUpPriority lets up beat down. On left/right it acts as MethodNeutral.
	MethodUpPriority
	// MethodSecondInputPriority keeps the later press; presses on the same
	// tick resolve to neutral.
	MethodSecondInputPriority
)

var methodNames = [...]string{
	MethodNeutral:             "neutral",
	MethodLastWin:             "last-win",
	MethodFirstWin:            "first-win",
	MethodUpPriority:          "up-priority",
	MethodSecondInputPriority: "second-input-priority",
}

func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return "neutral"
}

// LookupMethod resolves a method name such as "last-win".
func LookupMethod(name string) (Method, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "_", "-")
	for i, mn := range methodNames {
		if mn == n {
			return Method(i), true
		}
	}
	return MethodNeutral, false
}

// ParseMethod is LookupMethod falling back to MethodNeutral for unknown names.
func ParseMethod(name string) Method {
	m, _ := LookupMethod(name)
	return m
}

type press uint8

const (
	pressNone press = iota
	pressFirst
	pressSecond
	pressSame // both on the same tick
)

// axisPair tracks one pair of opposite directions. "first" is left or up,
// "second" is right or down.
type axisPair struct {
	method Method
	prev   [2]bool
	// firstLeads is true when the first direction owns the pair under
	// MethodFirstWin.
	firstLeads bool
	latest     press
}

func newAxisPair(m Method) axisPair {
	return axisPair{method: m, firstLeads: true}
}

func (p *axisPair) resolve(first, second, upDown bool) (bool, bool) {
	newFirst := first && !p.prev[0]
	newSecond := second && !p.prev[1]

	switch {
	case first && !second:
		p.firstLeads = true
	case second && !first:
		p.firstLeads = false
	}
	switch {
	case newFirst && newSecond:
		p.latest = pressSame
	case newFirst:
		p.latest = pressFirst
	case newSecond:
		p.latest = pressSecond
	}
	p.prev = [2]bool{first, second}

	if !first || !second {
		return first, second
	}

	switch p.method {
	case MethodLastWin:
		if p.latest == pressFirst {
			return true, false
		}
		return false, true
	case MethodSecondInputPriority:
		switch p.latest {
		case pressFirst:
			return true, false
		case pressSecond:
			return false, true
		}
	case MethodFirstWin:
		return p.firstLeads, !p.firstLeads
	case MethodUpPriority:
		if upDown {
			return true, false
		}
	}
	return false, false
}

func (p *axisPair) reset() {
	*p = newAxisPair(p.method)
}

// SOCDResolver resolves simultaneous opposite cardinal directions on the
// D-pad. Its history is updated on every call, conflict or not, so the
// output never has both directions of a pair set.
type SOCDResolver struct {
	leftRight axisPair
	upDown    axisPair
}

// NewSOCDResolver returns a resolver with neutral left/right and up-priority up/down.
func NewSOCDResolver() *SOCDResolver {
	return NewSOCDResolverWith(MethodNeutral, MethodUpPriority)
}

// NewSOCDResolverWith returns a resolver with a method per axis pair.
func NewSOCDResolverWith(leftRight, upDown Method) *SOCDResolver {
	return &SOCDResolver{
		leftRight: newAxisPair(leftRight),
		upDown:    newAxisPair(upDown),
	}
}

// NewSOCDResolverFromStrings is NewSOCDResolverWith over method names;
// unknown names fall back to MethodNeutral.
func NewSOCDResolverFromStrings(leftRight, upDown string) *SOCDResolver {
	return NewSOCDResolverWith(ParseMethod(leftRight), ParseMethod(upDown))
}

// Resolve returns the resolved D-pad state for this tick.
func (r *SOCDResolver) Resolve(d Directions) Directions {
	var out Directions
	out.Left, out.Right = r.leftRight.resolve(d.Left, d.Right, false)
	out.Up, out.Down = r.upDown.resolve(d.Up, d.Down, true)
	return out
}

// Methods returns the configured methods.
func (r *SOCDResolver) Methods() (leftRight, upDown Method) {
	return r.leftRight.method, r.upDown.method
}

// Reset forgets the press history, keeping the methods.
func (r *SOCDResolver) Reset() {
	r.leftRight.reset()
	r.upDown.reset()
}

// HatValue encodes a resolved D-pad state as a HAT switch value.
// Anything other than the eight single or diagonal directions, including
// an opposite pair that slipped through, encodes as switchpro.HatNeutral.
func HatValue(d Directions) uint8 {
	switch d {
	case Directions{Up: true}:
		return switchpro.HatUp
	case Directions{Up: true, Right: true}:
		return switchpro.HatUpRight
	case Directions{Right: true}:
		return switchpro.HatRight
	case Directions{Down: true, Right: true}:
		return switchpro.HatDownRight
	case Directions{Down: true}:
		return switchpro.HatDown
	case Directions{Down: true, Left: true}:
		return switchpro.HatDownLeft
	case Directions{Left: true}:
		return switchpro.HatLeft
	case Directions{Up: true, Left: true}:
		return switchpro.HatUpLeft
	}
	return switchpro.HatNeutral
}

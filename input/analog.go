package input

import "math"

// StickID selects one of the two analog sticks.
type StickID uint8

const (
	StickLeft StickID = iota
	StickRight

	NumSticks
)

func (s StickID) String() string {
	switch s {
	case StickLeft:
		return "left"
	case StickRight:
		return "right"
	}
	return "unknown"
}

// Analog defaults for a 10-bit ADC.
const (
	DefaultCenter         uint16  = 512
	DefaultMin            uint16  = 0
	DefaultMax            uint16  = 1023
	DefaultDeadzone       uint16  = 50
	DefaultFilterStrength float32 = 0.3
)

// Calibration is the raw ADC geometry of one stick.
// Min <= Center <= Max holds on each axis.
type Calibration struct {
	CenterX, CenterY uint16
	MinX, MinY       uint16
	MaxX, MaxY       uint16
}

// DefaultCalibration spans the full 10-bit range around its midpoint.
var DefaultCalibration = Calibration{
	CenterX: DefaultCenter, CenterY: DefaultCenter,
	MinX: DefaultMin, MinY: DefaultMin,
	MaxX: DefaultMax, MaxY: DefaultMax,
}

// fold widens the bounds so that they contain the center.
func (c *Calibration) fold() {
	c.MinX = min(c.MinX, c.CenterX)
	c.MinY = min(c.MinY, c.CenterY)
	c.MaxX = max(c.MaxX, c.CenterX)
	c.MaxY = max(c.MaxY, c.CenterY)
}

type stickState struct {
	cal                  Calibration
	filteredX, filteredY float32
	invertY              bool
}

func (s *stickState) resetFilter() {
	s.filteredX = float32(s.cal.CenterX)
	s.filteredY = float32(s.cal.CenterY)
}

// AnalogHandler turns raw ADC stick readings into report units.
// Each axis goes through the deadzone, a low-pass filter, and a two-segment
// range mapping onto 0-255 with 128 at the calibrated center.
type AnalogHandler struct {
	sticks   [NumSticks]stickState
	deadzone uint16
	alpha    float32
}

// NewAnalogHandler returns a handler with DefaultCalibration on both sticks,
// DefaultDeadzone and DefaultFilterStrength.
func NewAnalogHandler() *AnalogHandler {
	h := &AnalogHandler{
		deadzone: DefaultDeadzone,
		alpha:    DefaultFilterStrength,
	}
	for i := range h.sticks {
		h.sticks[i].cal = DefaultCalibration
		h.sticks[i].resetFilter()
	}
	return h
}

func (h *AnalogHandler) stick(id StickID) *stickState {
	if id >= NumSticks {
		return nil
	}
	return &h.sticks[id]
}

// ProcessInput runs one raw sample of a stick through the pipeline.
// An unknown stick reads as centered.
func (h *AnalogHandler) ProcessInput(id StickID, rawX, rawY uint16) Stick {
	s := h.stick(id)
	if s == nil {
		return CenteredStick
	}
	c := s.cal

	x := applyDeadzone(rawX, c.CenterX, h.deadzone)
	y := applyDeadzone(rawY, c.CenterY, h.deadzone)

	s.filteredX += h.alpha * (float32(x) - s.filteredX)
	s.filteredY += h.alpha * (float32(y) - s.filteredY)

	mapY := mapAxis
	if s.invertY {
		mapY = mapAxisInverted
	}
	return Stick{
		X: mapAxis(toRaw(s.filteredX), c.MinX, c.CenterX, c.MaxX),
		Y: mapY(toRaw(s.filteredY), c.MinY, c.CenterY, c.MaxY),
	}
}

// Update processes one tick of ADC values laid out as [LX, LY, RX, RY].
// Missing values read as the stick's calibrated center.
func (h *AnalogHandler) Update(values []uint16) (left, right Stick) {
	at := func(i int, def uint16) uint16 {
		if i < len(values) {
			return values[i]
		}
		return def
	}
	lc, rc := h.sticks[StickLeft].cal, h.sticks[StickRight].cal
	left = h.ProcessInput(StickLeft, at(0, lc.CenterX), at(1, lc.CenterY))
	right = h.ProcessInput(StickRight, at(2, rc.CenterX), at(3, rc.CenterY))
	return left, right
}

// CalibrateCenter records the rest position of a released stick. The bounds
// are widened to contain it and the filter restarts from it.
func (h *AnalogHandler) CalibrateCenter(id StickID, x, y uint16) {
	s := h.stick(id)
	if s == nil {
		return
	}
	s.cal.CenterX, s.cal.CenterY = x, y
	s.cal.fold()
	s.resetFilter()
}

// CalibrateRange folds a sample into the bounds. Bounds only ever widen.
func (h *AnalogHandler) CalibrateRange(id StickID, x, y uint16) {
	s := h.stick(id)
	if s == nil {
		return
	}
	s.cal.MinX = min(s.cal.MinX, x)
	s.cal.MaxX = max(s.cal.MaxX, x)
	s.cal.MinY = min(s.cal.MinY, y)
	s.cal.MaxY = max(s.cal.MaxY, y)
}

// ResetRange collapses the bounds onto the center so a following sweep of
// CalibrateRange samples measures the stick from scratch. Until then the
// stick reads as centered.
func (h *AnalogHandler) ResetRange(id StickID) {
	s := h.stick(id)
	if s == nil {
		return
	}
	s.cal.MinX, s.cal.MaxX = s.cal.CenterX, s.cal.CenterX
	s.cal.MinY, s.cal.MaxY = s.cal.CenterY, s.cal.CenterY
}

// SetCalibration replaces a stick's calibration. Bounds that do not contain
// the center are widened.
func (h *AnalogHandler) SetCalibration(id StickID, c Calibration) {
	s := h.stick(id)
	if s == nil {
		return
	}
	c.fold()
	s.cal = c
	s.resetFilter()
}

// Calibration returns a stick's calibration.
func (h *AnalogHandler) Calibration(id StickID) Calibration {
	s := h.stick(id)
	if s == nil {
		return DefaultCalibration
	}
	return s.cal
}

func (h *AnalogHandler) SetDeadzone(dz uint16) { h.deadzone = dz }

func (h *AnalogHandler) Deadzone() uint16 { return h.deadzone }

// SetFilterStrength sets the low-pass weight of new samples, clamped to
// [0,1]. 1 disables smoothing; lower values smooth more.
func (h *AnalogHandler) SetFilterStrength(alpha float32) {
	switch {
	case math.IsNaN(float64(alpha)) || alpha < 0:
		alpha = 0
	case alpha > 1:
		alpha = 1
	}
	h.alpha = alpha
}

func (h *AnalogHandler) FilterStrength() float32 { return h.alpha }

// SetInvertY flips a stick's Y axis around 128.
func (h *AnalogHandler) SetInvertY(id StickID, invert bool) {
	if s := h.stick(id); s != nil {
		s.invertY = invert
	}
}

func (h *AnalogHandler) InvertY(id StickID) bool {
	if s := h.stick(id); s != nil {
		return s.invertY
	}
	return false
}

// Reset restarts both filters from the calibrated centers. Calibration and
// settings are kept.
func (h *AnalogHandler) Reset() {
	for i := range h.sticks {
		h.sticks[i].resetFilter()
	}
}

// applyDeadzone snaps raw to center inside the deadzone and otherwise pulls
// it towards center by the deadzone width, so the output is continuous at
// the edge.
func applyDeadzone(raw, center, dz uint16) uint16 {
	off := int32(raw) - int32(center)
	switch {
	case off > -int32(dz) && off < int32(dz):
		return center
	case off > 0:
		return uint16(int32(center) + off - int32(dz))
	default:
		return uint16(int32(center) + off + int32(dz))
	}
}

func toRaw(f float32) uint16 {
	r := math.Round(float64(f))
	if r < 0 {
		return 0
	}
	if r > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(r)
}

// mapAxis maps [min,center] onto [0,128] and [center,max] onto [128,255].
// A zero-width segment maps to 128.
func mapAxis(v, lo, center, hi uint16) uint8 {
	if v < center {
		if center <= lo {
			return 128
		}
		v = max(v, lo)
		return uint8(128 - uint32(center-v)*128/uint32(center-lo))
	}
	if hi <= center {
		return 128
	}
	v = min(v, hi)
	return uint8(128 + uint32(v-center)*127/uint32(hi-center))
}

// mapAxisInverted is mapAxis with the segments swapped: [min,center] onto
// [255,128] and [center,max] onto [128,0].
func mapAxisInverted(v, lo, center, hi uint16) uint8 {
	if v < center {
		if center <= lo {
			return 128
		}
		v = max(v, lo)
		return uint8(128 + uint32(center-v)*127/uint32(center-lo))
	}
	if hi <= center {
		return 128
	}
	v = min(v, hi)
	return uint8(128 - uint32(v-center)*128/uint32(hi-center))
}

// Package switchpro provides the Nintendo Switch compatible HID gamepad:
// its 8-byte input report, report descriptor and USB device boundary.
package switchpro

import (
	"encoding/binary"
	"io"
)

// Report is one input report.
type Report struct {
	// Button bitfield, see Button* masks.
	Buttons uint16
	// HAT value 0-7 clockwise from up, HatNeutral when released.
	Hat uint8
	// Sticks: 0-255, StickCenter at rest.
	LX, LY uint8
	RX, RY uint8
}

// NeutralReport returns a report with nothing pressed and sticks centered.
func NeutralReport() Report {
	return Report{
		Hat: HatNeutral,
		LX:  StickCenter,
		LY:  StickCenter,
		RX:  StickCenter,
		RY:  StickCenter,
	}
}

// BuildReport encodes the report into its 8-byte wire layout.
// Layout (indices in the returned slice):
//
//	0: Buttons (low byte)
//	1: Buttons (high byte)
//	2: HAT (low nibble), high nibble zero
//	3: Padding, zero
//	4: LX
//	5: LY
//	6: RX
//	7: RY
//
// HAT values above HatNeutral are sent as HatNeutral.
func (r *Report) BuildReport() []byte {
	b := make([]byte, InputReportSize)
	binary.LittleEndian.PutUint16(b[0:2], r.Buttons)
	hat := r.Hat
	if hat > HatNeutral {
		hat = HatNeutral
	}
	b[2] = hat & 0x0F
	b[3] = 0x00
	b[4] = r.LX
	b[5] = r.LY
	b[6] = r.RX
	b[7] = r.RY
	return b
}

// MarshalBinary encodes Report to its 8-byte wire layout.
func (r *Report) MarshalBinary() ([]byte, error) {
	return r.BuildReport(), nil
}

// UnmarshalBinary decodes an 8-byte wire report.
func (r *Report) UnmarshalBinary(data []byte) error {
	if len(data) < InputReportSize {
		return io.ErrUnexpectedEOF
	}
	r.Buttons = binary.LittleEndian.Uint16(data[0:2])
	r.Hat = data[2] & 0x0F
	r.LX = data[4]
	r.LY = data[5]
	r.RX = data[6]
	r.RY = data[7]
	return nil
}

// Pressed reports whether every bit of mask is set.
func (r *Report) Pressed(mask uint16) bool {
	return r.Buttons&mask == mask
}

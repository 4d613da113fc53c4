package switchpro

const (
	DefaultVID = 0x057E
	DefaultPID = 0x2009
)

const (
	EndpointIn  = 0x81
	EndpointOut = 0x01
)

// InputReportSize is the length of the input report on the wire.
const InputReportSize = 8

// Button bitmasks in the 16-bit button field. Bits 14 and 15 are unused.
const (
	ButtonA       uint16 = 0x0001
	ButtonB       uint16 = 0x0002
	ButtonX       uint16 = 0x0004
	ButtonY       uint16 = 0x0008
	ButtonL       uint16 = 0x0010
	ButtonR       uint16 = 0x0020
	ButtonZL      uint16 = 0x0040
	ButtonZR      uint16 = 0x0080
	ButtonMinus   uint16 = 0x0100
	ButtonPlus    uint16 = 0x0200
	ButtonL3      uint16 = 0x0400
	ButtonR3      uint16 = 0x0800
	ButtonHome    uint16 = 0x1000
	ButtonCapture uint16 = 0x2000

	ButtonMask uint16 = 0x3FFF
)

// HAT switch values.
const (
	HatUp        = 0x00
	HatUpRight   = 0x01
	HatRight     = 0x02
	HatDownRight = 0x03
	HatDown      = 0x04
	HatDownLeft  = 0x05
	HatLeft      = 0x06
	HatUpLeft    = 0x07
	HatNeutral   = 0x08
)

// StickCenter is the rest value of every stick axis.
const StickCenter = 0x80

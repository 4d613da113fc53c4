package usb

// Transfer directions as seen from the host.
const (
	DirOut uint32 = 0
	DirIn  uint32 = 1
)

// Device is a USB function reduced to what a transport needs after
// enumeration: its descriptors and its interrupt/bulk endpoints. Control
// transfers on EP0 are the transport's business.
type Device interface {
	// HandleTransfer services one transfer on endpoint number ep (no
	// direction bit). IN transfers return the payload for the host; OUT
	// transfers consume out and return nil.
	HandleTransfer(ep uint32, dir uint32, out []byte) []byte
	GetDescriptor() *Descriptor
}

// EndpointNumber strips the direction bit from an endpoint address, giving
// the ep argument HandleTransfer expects.
func EndpointNumber(addr uint8) uint32 {
	return uint32(addr & 0x0F)
}

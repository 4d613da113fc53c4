package switchpro

import (
	"sync/atomic"

	"github.com/nxpad/nxpad/device"
	"github.com/nxpad/nxpad/usb"
)

// SwitchPro is the gamepad as seen by the USB host. The poll side stores
// reports with UpdateReport; the transport side reads them from HandleTransfer.
type SwitchPro struct {
	tick       uint64
	outCount   uint64
	report     *device.Latest[Report, *Report]
	outputFunc func([]byte)
	descriptor usb.Descriptor
}

// New returns a new SwitchPro device holding a neutral report.
func New(o *device.CreateOptions) *SwitchPro {
	d := &SwitchPro{
		report:     device.NewLatest[Report, *Report](NeutralReport()),
		descriptor: newDescriptor(),
	}
	if o != nil {
		if o.IdVendor != nil {
			d.descriptor.Device.IDVendor = *o.IdVendor
		}
		if o.IdProduct != nil {
			d.descriptor.Device.IDProduct = *o.IdProduct
		}
	}
	return d
}

// SetOutputCallback sets a callback invoked with every host OUT report.
func (s *SwitchPro) SetOutputCallback(f func([]byte)) {
	s.outputFunc = f
}

// UpdateReport replaces the report served to the host (thread-safe).
func (s *SwitchPro) UpdateReport(r Report) {
	s.report.Store(r)
}

// Report returns a copy of the report currently served to the host.
func (s *SwitchPro) Report() Report {
	return s.report.Load()
}

// HandleTransfer implements interrupt IN/OUT for the gamepad.
func (s *SwitchPro) HandleTransfer(ep uint32, dir uint32, out []byte) []byte {
	if dir == usb.DirIn {
		if ep != usb.EndpointNumber(EndpointIn) {
			return nil
		}
		atomic.AddUint64(&s.tick, 1)
		return s.report.Build()
	}
	if dir == usb.DirOut && ep == usb.EndpointNumber(EndpointOut) {
		atomic.AddUint64(&s.outCount, 1)
		if s.outputFunc != nil {
			s.outputFunc(out)
		}
	}
	return nil
}

// Stats returns the number of IN reports served and OUT reports received.
func (s *SwitchPro) Stats() (in, out uint64) {
	return atomic.LoadUint64(&s.tick), atomic.LoadUint64(&s.outCount)
}

func (s *SwitchPro) GetDescriptor() *usb.Descriptor {
	return &s.descriptor
}

var (
	_ usb.Device          = (*SwitchPro)(nil)
	_ device.ReportBuilder = (*Report)(nil)
)

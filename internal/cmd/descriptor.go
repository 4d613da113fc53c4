package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/nxpad/nxpad/device"
	"github.com/nxpad/nxpad/device/switchpro"
	"github.com/nxpad/nxpad/internal/log"
)

// Descriptor prints the descriptors a host would read during enumeration.
type Descriptor struct {
	Configuration bool    `help:"Print the full configuration descriptor instead of the HID report descriptor"`
	Device        bool    `help:"Print the device descriptor instead of the HID report descriptor"`
	VendorID      *uint16 `name:"vid" help:"Override the USB vendor ID"`
	ProductID     *uint16 `name:"pid" help:"Override the USB product ID"`
}

// Run is called by Kong when the descriptor command is executed.
func (d *Descriptor) Run() error {
	return d.Print(os.Stdout)
}

// Print writes the selected descriptor to w as space separated hex.
func (d *Descriptor) Print(w io.Writer) error {
	if d.Configuration && d.Device {
		return fmt.Errorf("--configuration and --device are mutually exclusive")
	}
	dev := switchpro.New(&device.CreateOptions{IdVendor: d.VendorID, IdProduct: d.ProductID})
	desc := dev.GetDescriptor()

	var data []byte
	switch {
	case d.Configuration:
		data = desc.ConfigurationBytes()
	case d.Device:
		data = desc.Bytes()
	default:
		data = switchpro.ReportDescriptor()
	}
	_, err := fmt.Fprintln(w, log.HexString(data))
	return err
}

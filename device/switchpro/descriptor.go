package switchpro

import (
	"github.com/nxpad/nxpad/usb"
	"github.com/nxpad/nxpad/usb/hid"
)

// reportDescriptor describes the 8-byte input report built by Report.BuildReport.
var reportDescriptor = hid.Report{Items: []hid.Item{
	hid.PageGenericDesktop,
	hid.UsageGamePad,
	hid.Collection{Kind: hid.CollectionApplication, Items: []hid.Item{
		// 16 buttons
		hid.LogicalMinimum(0),
		hid.LogicalMaximum(1),
		hid.PhysicalMinimum(0),
		hid.PhysicalMaximum(1),
		hid.ReportSize(1),
		hid.ReportCount(16),
		hid.PageButton,
		hid.UsageMinimum(1),
		hid.UsageMaximum(16),
		hid.Input(hid.DataVarAbs),

		// HAT, one nibble with a null state
		hid.PageGenericDesktop,
		hid.LogicalMaximum(7),
		hid.PhysicalMaximum(315),
		hid.ReportSize(4),
		hid.ReportCount(1),
		hid.Unit(0x14), // degrees
		hid.UsageHatSwitch,
		hid.Input(hid.DataVarAbs | hid.MainNullState),

		// spare nibble and padding byte
		hid.Unit(0),
		hid.ReportCount(1),
		hid.Input(hid.MainConstant),
		hid.ReportSize(8),
		hid.ReportCount(1),
		hid.Input(hid.MainConstant),

		// LX, LY, RX, RY
		hid.LogicalMaximum(255),
		hid.PhysicalMaximum(255),
		hid.UsageX,
		hid.UsageY,
		hid.UsageZ,
		hid.UsageRz,
		hid.ReportSize(8),
		hid.ReportCount(4),
		hid.Input(hid.DataVarAbs),
	}},
}}

// ReportDescriptor returns the HID report descriptor bytes.
func ReportDescriptor() []byte {
	return reportDescriptor.MustBytes()
}

func newDescriptor() usb.Descriptor {
	report := ReportDescriptor()
	return usb.Descriptor{
		Device: usb.DeviceDescriptor{
			BcdUSB:             0x0200,
			BDeviceClass:       0x00,
			BDeviceSubClass:    0x00,
			BDeviceProtocol:    0x00,
			BMaxPacketSize0:    0x40,
			IDVendor:           DefaultVID,
			IDProduct:          DefaultPID,
			BcdDevice:          0x0100,
			IManufacturer:      0x01,
			IProduct:           0x02,
			ISerialNumber:      0x03,
			BNumConfigurations: 0x01,
		},
		Config: usb.ConfigHeader{
			BConfigurationValue: 0x01,
			BMAttributes:        0x80, // bus powered
			BMaxPower:           0xFA, // 500 mA
		},
		Interfaces: []usb.InterfaceConfig{
			{
				Descriptor: usb.InterfaceDescriptor{
					BInterfaceNumber:   0x00,
					BAlternateSetting:  0x00,
					BNumEndpoints:      0x02,
					BInterfaceClass:    0x03, // HID
					BInterfaceSubClass: 0x00,
					BInterfaceProtocol: 0x00,
				},
				HID: &usb.HIDDescriptor{
					BcdHID:          0x0111,
					BNumDescriptors: 0x01,
					ClassDescType:   usb.ReportDescType,
				},
				HIDReport: report,
				Endpoints: []usb.EndpointDescriptor{
					{BEndpointAddress: EndpointIn, BMAttributes: 0x03, WMaxPacketSize: 0x0040, BInterval: 0x01},
					{BEndpointAddress: EndpointOut, BMAttributes: 0x03, WMaxPacketSize: 0x0040, BInterval: 0x01},
				},
			},
		},
		Strings: map[uint8]string{
			0: "\x09\x04", // LangID: en-US (0x0409)
			1: "nxpad",
			2: "Pro Controller",
			3: "000000000001",
		},
	}
}

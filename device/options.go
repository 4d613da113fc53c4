// Package device provides common interfaces and options for emulated USB devices.
package device

// CreateOptions overrides identity fields of a device descriptor.
// Nil fields keep the device's defaults.
type CreateOptions struct {
	IdVendor  *uint16
	IdProduct *uint16
}

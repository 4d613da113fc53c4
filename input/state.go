package input

import "github.com/nxpad/nxpad/device/switchpro"

// ControllerState is the complete, resolved controller snapshot for one tick.
type ControllerState struct {
	Buttons    Buttons
	DPad       Directions
	LeftStick  Stick
	RightStick Stick
}

// NeutralState is a released controller with both sticks centered.
func NeutralState() ControllerState {
	return ControllerState{
		LeftStick:  CenteredStick,
		RightStick: CenteredStick,
	}
}

// ToReport packs the snapshot into a report. DPad must already be resolved;
// a leftover opposite pair encodes as a released HAT.
func (s ControllerState) ToReport() switchpro.Report {
	return switchpro.Report{
		Buttons: s.Buttons.Mask(),
		Hat:     HatValue(s.DPad),
		LX:      s.LeftStick.X,
		LY:      s.LeftStick.Y,
		RX:      s.RightStick.X,
		RY:      s.RightStick.Y,
	}
}

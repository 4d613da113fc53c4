// Package cmd implements the nxpad command line.
package cmd

import "github.com/nxpad/nxpad/internal/log"

// CLI is the root command tree parsed by kong.
type CLI struct {
	ConfigFile string     `name:"config" help:"Configuration file (json, yaml or toml)" env:"NXPAD_CONFIG"`
	Log        log.Config `embed:"" prefix:"log."`

	Replay     Replay        `cmd:"" help:"Replay an input trace through the pipeline and print the reports"`
	Descriptor Descriptor    `cmd:"" help:"Print the USB descriptors of the gamepad"`
	Config     ConfigCommand `cmd:"" help:"Configuration helpers"`
}

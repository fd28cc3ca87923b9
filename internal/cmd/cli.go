package cmd

import "github.com/Alia5/inputsync/internal/log"

// CLI is the root command tree.
type CLI struct {
	ConfigFile string     `name:"config" help:"Path to a configuration file (json, yaml or toml)" type:"path" env:"INPUTSYNC_CONFIG"`
	Log        log.Config `embed:"" prefix:"log."`

	Run    Run           `cmd:"" help:"Capture global input and log reconciled transitions"`
	Codes  Codes         `cmd:"" help:"List the OS code table used by the input hook"`
	Config ConfigCommand `cmd:"" help:"Configuration helpers"`
}

// Package config defines the CLI structure and configuration for bindcore.
package config

import (
	"github.com/arcadeio/bindcore/internal/cmd"
)

type Log struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"BINDCORE_LOG_LEVEL"`
	File    string `help:"Log file path (default: none; logs only to console)" env:"BINDCORE_LOG_FILE"`
	RawFile string `help:"Raw device output log file path (default: none)" env:"BINDCORE_LOG_RAW_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log    `embed:"" prefix:"log."`
	Config string `help:"Configuration file (.json, .yaml or .toml)" env:"BINDCORE_CONFIG" type:"path"`

	Serve    cmd.Serve    `cmd:"" help:"Serve the control API and the live state feed"`
	Games    cmd.Games    `cmd:"" help:"List the games with a control table"`
	Bindings cmd.Bindings `cmd:"" help:"Print the bindings of a game"`
	Check    cmd.Check    `cmd:"" help:"Validate a bindings file and optionally convert it"`
	Ctl      cmd.Ctl      `cmd:"" help:"Control a running server"`
}

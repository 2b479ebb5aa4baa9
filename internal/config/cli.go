// Package config defines the command-line interface. Every flag can also be
// set from a config file or a RIVEGEN_* environment variable.
package config

import (
	"github.com/alecthomas/kong"

	"github.com/Alia5/rivegen/internal/cmd"
)

type Log struct {
	Level   string `help:"Log level: trace, debug, info, warn or error" default:"info" enum:"trace,debug,info,warn,error" env:"RIVEGEN_LOG_LEVEL"`
	File    string `help:"Also write logs to this file" type:"path" env:"RIVEGEN_LOG_FILE"`
	RawFile string `name:"raw-file" help:"Write hex dumps of undecodable input files here" type:"path" env:"RIVEGEN_LOG_RAW_FILE"`
}

type CLI struct {
	ConfigFile string           `name:"config" help:"Configuration file (json, yaml or toml)" type:"path" env:"RIVEGEN_CONFIG"`
	Version    kong.VersionFlag `help:"Print the version and exit"`
	Log        Log              `embed:"" prefix:"log."`

	Generate cmd.Generate      `cmd:"" default:"withargs" help:"Generate source code from asset files"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/bonfirectl/bonfire/internal/env"
	"github.com/bonfirectl/bonfire/internal/settings"
)

const (
	configDirEnv = "BONFIRE_CONFIG_DIR"
	logLevelEnv  = "BONFIRE_LOG"
)

func configDirFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "config-dir",
		Usage: "base directory for config, env and template files",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar(configDirEnv),
		),
	}
}

// logLevelFlag reads BONFIRE_LOG first and then the log_level key of the
// config file at path.
func logLevelFlag(path string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:  "log-level",
		Usage: "log level (trace, debug, info, warn, error, fatal)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar(logLevelEnv),
		),
		Value: "info",
	}
	return ValueChainFlagFromConfigFile("log_level", path, flag)
}

// outputFlag accepts one of formats and defaults to the first.
func outputFlag(formats ...string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Value:   formats[0],
		Validator: func(value string) error {
			return FlagValidators(value, OneOfValidator(formats...))
		},
	}
}

// editorFlag is sourced from EDITOR as captured in the snapshot, so a value
// from the env file is honored.
func editorFlag(snap env.Snapshot) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "editor",
		Usage: "editor command used to open the config file",
		Sources: cli.NewValueSourceChain(
			snap.ValueSource(settings.Editor),
		),
	}
}

// ValueChainFlagFromConfigFile appends a config file source for key to the
// flag's Sources chain. The file is read lazily, so it may not exist yet.
func ValueChainFlagFromConfigFile(key string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if path == "" {
		return flag
	}
	src := yaml.YAML(key, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)
	return flag
}

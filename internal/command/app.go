// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/bonfirectl/bonfire/internal/env"
	"github.com/bonfirectl/bonfire/internal/log"
	"github.com/bonfirectl/bonfire/internal/meta"
	"github.com/bonfirectl/bonfire/internal/paths"
)

// InitApp resolves the config paths, loads the env file into the process
// environment, snapshots the environment and builds the command tree. An env
// file that fails to parse is logged and skipped.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	p := paths.Resolve(configDirFromArgs(args))
	log.Debugf("config base dir: %s", p.Base)

	// Env file errors are not fatal; --help and friends still run.
	if err := env.LoadFile(p.EnvFile); err != nil {
		log.WithError(err).Warnf("ignoring env file, fix or remove %s", p.EnvFile)
	}

	return NewApp(meta.New(ctx, args, p, env.Capture())), nil
}

// NewApp builds the command tree around an assembled Meta.
func NewApp(m meta.Meta) *cli.Command {
	app := &cli.Command{
		Name:  "bonfire",
		Usage: "ephemeral environment configuration",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "bonfire version info",
				HideDefault: true,
			},
			configDirFlag(),
			logLevelFlag(m.Paths.ConfigFile),
		},
		Metadata: map[string]any{
			"meta": m,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.IsSet("log-level") {
				log.SetLevelFromString(cmd.String("log-level"))
			}
			return ctx, nil
		},
	}

	app.Commands = append(app.Commands,
		configCommandBuilder(m),
		settingsCommandBuilder(m),
		trustCommandBuilder(m),
		completionCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	sortFlags(app.Commands)

	return app
}

func sortFlags(cmds []*cli.Command) {
	for _, cmd := range cmds {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
		sortFlags(cmd.Commands)
	}
}

// configDirFromArgs picks --config-dir out of the raw arguments, falling back
// to BONFIRE_CONFIG_DIR. The env file lives in the base directory, so it has
// to be known before the CLI parses anything.
func configDirFromArgs(args []string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		if v, ok := strings.CutPrefix(a, "--config-dir="); ok {
			return v
		}
		if a == "--config-dir" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv(configDirEnv)
}

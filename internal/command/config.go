// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/bonfirectl/bonfire/internal/meta"
	"github.com/bonfirectl/bonfire/internal/output"
)

func configCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "manage the bonfire config file",
		Metadata: map[string]any{
			"meta": meta,
		},
		Commands: []*cli.Command{
			{
				Name:      "write-default",
				Usage:     "write the packaged default config",
				UsageText: "bonfire config write-default [PATH]",
				Metadata:  map[string]any{"meta": meta},
				Action:    configWriteDefaultAction,
			},
			{
				Name:      "edit",
				Usage:     "open the config file in an editor",
				UsageText: "bonfire config edit [--editor CMD] [PATH]",
				Metadata:  map[string]any{"meta": meta},
				Flags:     []cli.Flag{editorFlag(meta.Env)},
				Action:    configEditAction,
			},
			{
				Name:      "show",
				Usage:     "print the loaded config",
				UsageText: "bonfire config show [--config PATH] [--query KEY] [--output yaml|json]",
				Metadata:  map[string]any{"meta": meta},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "config file to load instead of the default",
					},
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "dotted path to print, e.g. appsFile.host or apps[0].name",
					},
					outputFlag(output.FormatYAML, output.FormatJSON),
				},
				Action: configShowAction,
			},
			{
				Name:     "path",
				Usage:    "list the resolved config paths",
				Metadata: map[string]any{"meta": meta},
				Action:   configPathAction,
			},
		},
	}
}

func configWriteDefaultAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	if m.Config == nil {
		return fmt.Errorf("config manager not initialized")
	}
	return m.Config.WriteDefault(firstArg(cmd))
}

func configEditAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	if m.Config == nil {
		return fmt.Errorf("config manager not initialized")
	}
	return m.Config.Edit(ctx, firstArg(cmd), cmd.String("editor"))
}

func configShowAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	if m.Config == nil {
		return fmt.Errorf("config manager not initialized")
	}

	doc, err := m.Config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	var v any = doc.Data
	if q := cmd.String("query"); q != "" {
		res, err := doc.QueryE(q)
		if err != nil {
			return err
		}
		if !res.Exists() {
			return fmt.Errorf("key %q not found in %s", q, doc.Source)
		}
		v = res.Value()
	}

	return output.Emit(outWriter(cmd), cmd.String("output"), v)
}

func configPathAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	rows := make([][]string, 0, 5)
	for _, e := range m.Paths.All() {
		exists, modified := "no", "-"
		if info, err := os.Stat(e.Path); err == nil {
			exists = "yes"
			modified = humanize.Time(info.ModTime())
		}
		rows = append(rows, []string{e.Name, e.Path, exists, modified})
	}

	output.Table(outWriter(cmd), []string{"NAME", "PATH", "EXISTS", "MODIFIED"}, rows)
	return nil
}

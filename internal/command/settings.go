// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/bonfirectl/bonfire/internal/meta"
	"github.com/bonfirectl/bonfire/internal/output"
	"github.com/bonfirectl/bonfire/internal/settings"
)

// settingOverrides maps flags to the variable they override.
var settingOverrides = []struct {
	flag string
	name string
}{
	{"ref-env", settings.DefaultRefEnv},
	{"fallback-ref-env", settings.DefaultFallbackRefEnv},
	{"prefer", settings.DefaultPrefer},
	{"requester", settings.NSRequester},
}

type settingRow struct {
	Name   string `json:"name" yaml:"name"`
	Value  string `json:"value" yaml:"value"`
	Origin string `json:"origin" yaml:"origin"`
}

func settingsCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "settings",
		Usage:     "show resolved settings and where they came from",
		UsageText: "bonfire settings [--output text|yaml|json] [--ref-env ENV] [--fallback-ref-env ENV] [--prefer K=V,...] [--requester NAME]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			outputFlag(output.FormatText, output.FormatYAML, output.FormatJSON),
			&cli.StringFlag{
				Name:  "ref-env",
				Usage: "override " + settings.DefaultRefEnv,
			},
			&cli.StringFlag{
				Name:  "fallback-ref-env",
				Usage: "override " + settings.DefaultFallbackRefEnv,
			},
			&cli.StringFlag{
				Name:  "prefer",
				Usage: "override " + settings.DefaultPrefer + " (comma separated)",
			},
			&cli.StringFlag{
				Name:  "requester",
				Usage: "override " + settings.NSRequester,
			},
		},
		Action: settingsCommandAction,
	}
}

func settingsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	overrides := settings.MapSource{}
	for _, o := range settingOverrides {
		if cmd.IsSet(o.flag) {
			overrides[o.name] = cmd.String(o.flag)
		}
	}

	s := settings.Load(m.Env, overrides)

	rows := make([]settingRow, 0, len(s.Values()))
	for _, v := range s.Values() {
		rows = append(rows, settingRow{Name: v.Name, Value: v.Display(), Origin: v.Origin.String()})
	}

	format := cmd.String("output")
	if format != output.FormatText {
		return output.Emit(outWriter(cmd), format, rows)
	}

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{r.Name, r.Value, r.Origin})
	}
	output.Table(outWriter(cmd), []string{"NAME", "VALUE", "ORIGIN"}, table)
	return nil
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/bonfirectl/bonfire/internal/meta"
	"github.com/bonfirectl/bonfire/internal/output"
	"github.com/bonfirectl/bonfire/internal/trust"
)

func trustCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:  "trust",
		Usage: "inspect the resource trust policy",
		Metadata: map[string]any{
			"meta": meta,
		},
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "report whether a resource field is trusted",
				UsageText: "bonfire trust check --kind KIND --path FIELD --value VALUE [--app APP] [--component NAME]",
				Metadata:  map[string]any{"meta": meta},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "kind",
						Usage:    "resource kind, e.g. ClowdApp",
						Required: true,
						Validator: func(value string) error {
							return FlagValidators(value, NotBlankValidator)
						},
					},
					&cli.StringFlag{
						Name:     "path",
						Usage:    "dotted field path, e.g. resources.limits.cpu",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "value",
						Usage: "field value",
					},
					&cli.StringFlag{
						Name:  "app",
						Usage: "owning app",
					},
					&cli.StringFlag{
						Name:  "component",
						Usage: "owning component",
					},
				},
				Action: trustCheckAction,
			},
			{
				Name:     "policy",
				Usage:    "list trusted apps, components, kinds and field paths",
				Metadata: map[string]any{"meta": meta},
				Action:   trustPolicyAction,
			},
		},
	}
}

func policyFromMeta(m meta.Meta) *trust.Policy {
	if m.Settings == nil {
		return trust.New(nil, nil)
	}
	return trust.New(m.Settings.TrustedApps, m.Settings.TrustedComponents)
}

func trustCheckAction(ctx context.Context, cmd *cli.Command) error {
	p := policyFromMeta(GetMeta(cmd))

	path, value := cmd.String("path"), cmd.String("value")
	w := outWriter(cmd)

	if p.IsTrusted(cmd.String("kind"), path, value, cmd.String("app"), cmd.String("component")) {
		fmt.Fprintln(w, "trusted")
	} else {
		fmt.Fprintln(w, "untrusted")
	}
	if name, ok := p.Placeholder(path, value); ok {
		fmt.Fprintf(w, "placeholder: %s\n", name)
	}
	return nil
}

func trustPolicyAction(ctx context.Context, cmd *cli.Command) error {
	p := policyFromMeta(GetMeta(cmd))

	rows := [][]string{
		{"apps", joinOrDash(p.Apps())},
		{"components", joinOrDash(p.Components())},
		{"kinds", joinOrDash(p.Kinds())},
		{"paths", joinOrDash(p.FieldPaths())},
	}
	output.Table(outWriter(cmd), []string{"SET", "MEMBERS"}, rows)
	return nil
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ",")
}

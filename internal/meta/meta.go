// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/bonfirectl/bonfire/internal/config"
	"github.com/bonfirectl/bonfire/internal/env"
	"github.com/bonfirectl/bonfire/internal/paths"
	"github.com/bonfirectl/bonfire/internal/settings"
)

// Meta contains runtime state shared by commands. It is assembled once at
// startup: the resolved paths, the environment snapshot taken after the env
// file was loaded, the settings resolved from that snapshot and the config
// file manager.
type Meta struct {
	Args     []string
	Context  context.Context
	Paths    paths.Set
	Env      env.Snapshot
	Settings *settings.Settings
	Config   *config.Manager
}

// New assembles a Meta from a path set and an environment snapshot.
func New(ctx context.Context, args []string, p paths.Set, snap env.Snapshot) Meta {
	return Meta{
		Args:     args,
		Context:  ctx,
		Paths:    p,
		Env:      snap,
		Settings: settings.Load(snap, nil),
		Config:   config.NewManager(p),
	}
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"os"
	"path/filepath"
)

// AppDir is the subdirectory of the user config root owned by bonfire.
const AppDir = "bonfire"

// Set holds the base configuration directory and the well-known locations
// derived from it. Every derived path is a direct child of Base.
type Set struct {
	Base          string
	ConfigFile    string
	EnvFile       string
	SecretsDir    string
	ConfigMapsDir string
}

// Resolve computes the path set rooted at base. An empty base selects the
// platform default, see DefaultBase. Resolve performs no file system I/O.
func Resolve(base string) Set {
	if base == "" {
		base = DefaultBase()
	}

	return Set{
		Base:          base,
		ConfigFile:    filepath.Join(base, "config.yaml"),
		EnvFile:       filepath.Join(base, "env"),
		SecretsDir:    filepath.Join(base, "secrets"),
		ConfigMapsDir: filepath.Join(base, "configmaps"),
	}
}

// DefaultBase resolves the base configuration directory.
// Precedence:
//  1. os.UserConfigDir()/bonfire
//  2. $HOME/.config/bonfire
//  3. .config/bonfire relative to the working directory
func DefaultBase() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, AppDir)
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", AppDir)
	}
	return filepath.Join(".config", AppDir)
}

// All returns the derived locations keyed by a short label, in display order.
func (s Set) All() []Entry {
	return []Entry{
		{Name: "base", Path: s.Base},
		{Name: "config", Path: s.ConfigFile},
		{Name: "env", Path: s.EnvFile},
		{Name: "secrets", Path: s.SecretsDir},
		{Name: "configmaps", Path: s.ConfigMapsDir},
	}
}

// Entry is a labelled path.
type Entry struct {
	Name string
	Path string
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_Override(t *testing.T) {
	base := t.TempDir()

	set := Resolve(base)

	assert.Equal(t, base, set.Base)
	assert.Equal(t, filepath.Join(base, "config.yaml"), set.ConfigFile)
	assert.Equal(t, filepath.Join(base, "env"), set.EnvFile)
	assert.Equal(t, filepath.Join(base, "secrets"), set.SecretsDir)
	assert.Equal(t, filepath.Join(base, "configmaps"), set.ConfigMapsDir)
}

func TestResolve_DerivedPathsAreChildren(t *testing.T) {
	for _, base := range []string{"/etc/bonfire", "relative/dir", ""} {
		set := Resolve(base)
		for _, e := range set.All()[1:] {
			assert.Equal(t, set.Base, filepath.Dir(e.Path), "%s should live in base", e.Name)
		}
	}
}

func TestResolve_DefaultUsesUserConfigDir(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())

	set := Resolve("")

	assert.Equal(t, AppDir, filepath.Base(set.Base))
	assert.True(t, filepath.IsAbs(set.Base))
}

func TestResolve_NoIO(t *testing.T) {
	base := filepath.Join(t.TempDir(), "does", "not", "exist")

	set := Resolve(base)

	assert.NoDirExists(t, set.Base)
}

func TestSet_All(t *testing.T) {
	set := Resolve("/cfg")

	names := make([]string, 0, 5)
	for _, e := range set.All() {
		names = append(names, e.Name)
	}

	assert.Equal(t, []string{"base", "config", "env", "secrets", "configmaps"}, names)
}

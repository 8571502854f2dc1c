// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bonfirectl/bonfire/internal/defaults"
	"github.com/bonfirectl/bonfire/internal/paths"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(paths.Resolve(filepath.Join(t.TempDir(), "bonfire")))
}

func packagedConfig(t *testing.T) map[string]interface{} {
	t.Helper()
	b, err := defaults.ReadAsset(nil, defaults.ConfigTemplate)
	require.NoError(t, err)

	var want map[string]interface{}
	require.NoError(t, yaml.Unmarshal(b, &want))
	return want
}

func TestWriteDefault_ThenLoad(t *testing.T) {
	m := newTestManager(t)
	out := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

	require.NoError(t, m.WriteDefault(out))

	doc, err := m.Load(out)
	require.NoError(t, err)
	assert.Equal(t, packagedConfig(t), doc.Data)
	assert.True(t, filepath.IsAbs(doc.Source))
}

func TestWriteDefault_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}

	m := newTestManager(t)
	require.NoError(t, m.WriteDefault(""))

	info, err := os.Stat(m.Paths.ConfigFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(m.Paths.Base)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0), dirInfo.Mode().Perm()&0o077, "group/other must have no access")
}

func TestWriteDefault_OverwritesAndTightensMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}

	m := newTestManager(t)
	out := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(out, []byte("stale: true\n"), 0o644))

	require.NoError(t, m.WriteDefault(out))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "stale")

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteDefault_InjectedAssets(t *testing.T) {
	m := newTestManager(t)
	m.Assets = fstest.MapFS{
		defaults.ConfigTemplate: &fstest.MapFile{Data: []byte("apps:\n  - name: fixture\n")},
	}

	require.NoError(t, m.WriteDefault(""))

	doc, err := m.Load("")
	require.NoError(t, err)
	names, err := doc.GetStringSlice("apps")
	assert.Error(t, err, "apps holds maps, not strings")
	assert.Nil(t, names)
	assert.Equal(t, "fixture", doc.Query("apps.name").String())
}

func TestWriteDefault_MissingTemplate(t *testing.T) {
	m := newTestManager(t)
	m.Assets = fstest.MapFS{}

	err := m.WriteDefault("")

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read template", ioErr.Op)
	assert.NoFileExists(t, m.Paths.ConfigFile)
}

func TestWriteDefault_UnwritableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("requires unix permissions as a non-root user")
	}

	parent := t.TempDir()
	require.NoError(t, os.Chmod(parent, 0o500))
	t.Cleanup(func() { _ = os.Chmod(parent, 0o700) })

	m := newTestManager(t)
	err := m.WriteDefault(filepath.Join(parent, "sub", "config.yaml"))

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "create directory", ioErr.Op)
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestLoad_ExplicitMissingPath(t *testing.T) {
	m := newTestManager(t)
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	doc, err := m.Load(missing)

	assert.Nil(t, doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, missing, nf.Path)
	assert.Contains(t, err.Error(), missing)
	assert.NoFileExists(t, missing)
	assert.NoFileExists(t, m.Paths.ConfigFile, "explicit paths never bootstrap the default")
}

func TestLoad_ExplicitDirectory(t *testing.T) {
	m := newTestManager(t)
	dir := t.TempDir()

	_, err := m.Load(dir)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.True(t, nf.IsDir)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestLoad_DefaultBootstrapsOnce(t *testing.T) {
	m := newTestManager(t)
	assert.NoFileExists(t, m.Paths.ConfigFile)

	doc, err := m.Load("")
	require.NoError(t, err)
	assert.Equal(t, packagedConfig(t), doc.Data)
	require.FileExists(t, m.Paths.ConfigFile)

	entries, err := os.ReadDir(m.Paths.Base)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "bootstrap writes exactly one file")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(m.Paths.ConfigFile)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}

	// A user edit survives the second load, so the file was not rewritten.
	require.NoError(t, os.WriteFile(m.Paths.ConfigFile, []byte("apps: []\nedited: true\n"), 0o600))

	doc, err = m.Load("")
	require.NoError(t, err)
	assert.Equal(t, true, doc.Data["edited"])
}

func TestLoad_DelegatesToLoader(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.WriteDefault(""))

	var seen string
	m.LoadFile = func(path string) (map[string]interface{}, error) {
		seen = path
		return map[string]interface{}{"from": "loader"}, nil
	}

	doc, err := m.Load("")
	require.NoError(t, err)
	assert.Equal(t, m.Paths.ConfigFile, seen)
	assert.Equal(t, map[string]interface{}{"from": "loader"}, doc.Data)
}

func TestLoad_LoaderError(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Load(filepath.Join("testdata", "invalid.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestEdit_NoEditor(t *testing.T) {
	m := newTestManager(t)

	assert.NoError(t, m.Edit(context.Background(), "", ""))
	assert.NoError(t, m.Edit(context.Background(), "", "   "))
}

func TestEdit_RunsEditor(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script editor")
	}

	dir := t.TempDir()
	marker := filepath.Join(dir, "marker")
	script := filepath.Join(dir, "editor.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho \"$@\" > "+marker+"\n"), 0o700))

	m := newTestManager(t)
	require.NoError(t, m.Edit(context.Background(), "", script+" --wait"))

	b, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "--wait "+m.Paths.ConfigFile+"\n", string(b))
}

func TestEdit_EditorFails(t *testing.T) {
	m := newTestManager(t)

	err := m.Edit(context.Background(), "", filepath.Join(t.TempDir(), "no-such-editor"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-editor")
}

func TestErrors(t *testing.T) {
	nf := &NotFoundError{Path: "/x/config.yaml"}
	assert.Equal(t, "provided config file path '/x/config.yaml' does not exist", nf.Error())
	assert.True(t, errors.Is(nf, ErrNotFound))

	inner := errors.New("disk full")
	ioErr := &IOError{Op: "write", Path: "/x/config.yaml", Err: inner}
	assert.Equal(t, "failed to write /x/config.yaml: disk full", ioErr.Error())
	assert.True(t, errors.Is(ioErr, inner))
	assert.False(t, errors.Is(ioErr, ErrNotFound))
}

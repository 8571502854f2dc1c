// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bonfirectl/bonfire/internal/defaults"
	"github.com/bonfirectl/bonfire/internal/log"
	"github.com/bonfirectl/bonfire/internal/paths"
)

const (
	dirMode  = os.FileMode(0o700)
	fileMode = os.FileMode(0o600)
)

// Manager bootstraps and loads the bonfire config file.
type Manager struct {
	Paths paths.Set
	// Assets holds the packaged templates; defaults.ConfigTemplate is copied
	// by WriteDefault.
	Assets fs.FS
	// LoadFile parses a file into a generic tree. Defaults to LoadFile.
	LoadFile func(path string) (map[string]interface{}, error)
}

// NewManager returns a Manager using the packaged assets and the YAML loader.
func NewManager(p paths.Set) *Manager {
	return &Manager{
		Paths:    p,
		Assets:   defaults.Assets(),
		LoadFile: LoadFile,
	}
}

// WriteDefault copies the packaged default config to outpath, or to the
// default config path when outpath is empty. Missing parent directories are
// created owner-only and an existing file is overwritten. The written file is
// left readable and writable by its owner only.
func (m *Manager) WriteDefault(outpath string) error {
	if outpath == "" {
		outpath = m.Paths.ConfigFile
	}

	if err := os.MkdirAll(filepath.Dir(outpath), dirMode); err != nil {
		return &IOError{Op: "create directory", Path: filepath.Dir(outpath), Err: err}
	}

	data, err := defaults.ReadAsset(m.Assets, defaults.ConfigTemplate)
	if err != nil {
		return &IOError{Op: "read template", Path: defaults.ConfigTemplate, Err: err}
	}

	if err := os.WriteFile(outpath, data, fileMode); err != nil {
		return &IOError{Op: "write", Path: outpath, Err: err}
	}

	// WriteFile keeps the mode of a file that already existed.
	if err := os.Chmod(outpath, fileMode); err != nil {
		return &IOError{Op: "chmod", Path: outpath, Err: err}
	}

	log.Infof("saved config to: %s", absPath(outpath))
	return nil
}

// Load reads the config file. An explicit path must exist; a missing one is a
// *NotFoundError and nothing is created. With no path the default location is
// used and bootstrapped with WriteDefault when absent.
func (m *Manager) Load(path string) (*Document, error) {
	if path != "" {
		log.Debugf("user provided explicit config path: %s", path)
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, &NotFoundError{Path: path}
			}
			return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
		}
		if info.IsDir() {
			return nil, &NotFoundError{Path: path, IsDir: true}
		}
	} else {
		path = m.Paths.ConfigFile
		log.Debugf("using default config path: %s", path)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			log.Infof("default config not found, creating")
			if err := m.WriteDefault(""); err != nil {
				return nil, err
			}
		}
	}

	abs := absPath(path)
	log.Infof("reading config from: %s", abs)

	loadFile := m.LoadFile
	if loadFile == nil {
		loadFile = LoadFile
	}
	data, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &Document{Source: abs, Data: data}, nil
}

// Edit opens path, or the default config path, in editor. An empty editor is
// not an error; there is simply nothing to run. The editor value may carry
// arguments, e.g. "code --wait".
func (m *Manager) Edit(ctx context.Context, path, editor string) error {
	if path == "" {
		path = m.Paths.ConfigFile
	}

	argv := strings.Fields(editor)
	if len(argv) == 0 {
		log.Infof("No $EDITOR set, exiting.")
		return nil
	}

	log.Debugf("launching editor: editor=%s path=%s", argv[0], path)
	c := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...) //nolint:gosec
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("editor %s failed: %w", argv[0], err)
	}
	return nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

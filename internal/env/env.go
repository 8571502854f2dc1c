// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/bonfirectl/bonfire/internal/log"
)

// Snapshot is an immutable view of environment variables. All setting
// resolution runs against a Snapshot instead of the live process
// environment so results stay deterministic once startup is done.
type Snapshot struct {
	vars map[string]string
}

// New returns a Snapshot holding a copy of vars.
func New(vars map[string]string) Snapshot {
	cp := make(map[string]string, len(vars))
	for k, v := range vars {
		cp[k] = v
	}
	return Snapshot{vars: cp}
}

// Capture snapshots the current process environment.
func Capture() Snapshot {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = v
	}
	return Snapshot{vars: vars}
}

// Lookup returns the raw value of name and whether it is present. A present
// but empty variable returns ("", true).
func (s Snapshot) Lookup(name string) (string, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Get returns the value of name or "" when absent.
func (s Snapshot) Get(name string) string {
	return s.vars[name]
}

// Len returns the number of variables in the snapshot.
func (s Snapshot) Len() int {
	return len(s.vars)
}

// Keys returns the sorted variable names.
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.vars))
	for k := range s.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge layers snapshots. Earlier snapshots win, so Merge(process, file)
// keeps every variable already set in the process environment.
func Merge(layers ...Snapshot) Snapshot {
	vars := make(map[string]string)
	for i := len(layers) - 1; i >= 0; i-- {
		for k, v := range layers[i].vars {
			vars[k] = v
		}
	}
	return Snapshot{vars: vars}
}

// LoadFile injects KEY=VALUE lines from path into the process environment.
// Variables that are already set are left untouched. A missing file is not an
// error.
func LoadFile(path string) error {
	if !exists(path) {
		log.Debugf("env file not found, skipping: %s", path)
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	log.Debugf("loaded env file: %s", path)
	return nil
}

// Read parses the env file at path into a Snapshot without touching the
// process environment. A missing file yields an empty Snapshot.
func Read(path string) (Snapshot, error) {
	if !exists(path) {
		return New(nil), nil
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return Snapshot{vars: vars}, nil
}

// exists reports whether path names an existing regular file. Directories are
// treated as absent.
func exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Debugf("env file stat failed: path=%s err=%v", path, err)
		}
		return false
	}
	return !info.IsDir()
}

// ValueSource exposes one snapshot variable as a flag value source. It
// satisfies cli.ValueSource, so flags see variables loaded from the env file
// even when the process environment is later changed.
func (s Snapshot) ValueSource(name string) *SnapshotSource {
	return &SnapshotSource{snap: s, name: name}
}

// SnapshotSource looks a single variable up in a Snapshot.
type SnapshotSource struct {
	snap Snapshot
	name string
}

// Lookup returns the variable's value and whether it is present.
func (s *SnapshotSource) Lookup() (string, bool) {
	return s.snap.Lookup(s.name)
}

func (s *SnapshotSource) String() string {
	return fmt.Sprintf("environment variable %q", s.name)
}

func (s *SnapshotSource) GoString() string {
	return fmt.Sprintf("&SnapshotSource{name:%q}", s.name)
}

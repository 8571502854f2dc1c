// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
)

// ErrNotFound matches NotFoundError with errors.Is.
var ErrNotFound = errors.New("config file not found")

// NotFoundError reports an explicitly requested config file that does not
// exist. It is fatal to the invoking command; explicit paths are never
// created.
type NotFoundError struct {
	Path string
	// IsDir is set when the path exists but is a directory.
	IsDir bool
}

func (e *NotFoundError) Error() string {
	if e.IsDir {
		return fmt.Sprintf("provided config file path '%s' is a directory", e.Path)
	}
	return fmt.Sprintf("provided config file path '%s' does not exist", e.Path)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IOError reports a failed file system operation while bootstrapping the
// default config file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

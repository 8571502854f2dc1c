// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package defaults holds bonfire's compiled-in defaults: endpoint URLs, index
// and namespace names, the frontend dependency list, the resource kinds
// eligible for trust checks, and the packaged YAML templates.
//
// Everything here is fixed at build time. Slices are returned as copies so
// callers cannot change the defaults for the rest of the process.
package defaults

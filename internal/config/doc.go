// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config bootstraps and loads bonfire's configuration file, a YAML
// document located by default at <user config dir>/bonfire/config.yaml
// (see package paths).
//
// Load follows a small state machine:
//
//   - explicit path: the file must exist, otherwise a *NotFoundError is
//     returned and nothing is created;
//   - no path: the default file is used, and written from the packaged
//     template first when it does not exist yet.
//
// Bootstrapping creates missing directories with mode 0700 and the file with
// mode 0600. Failures are returned as *IOError.
//
// The loaded Document is not interpreted beyond its existence; typed getters
// and a dotted Query are provided for callers that need values from it.
package config

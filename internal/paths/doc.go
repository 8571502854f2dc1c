// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package paths computes bonfire's well-known file system locations from a
// single base directory. The base defaults to the platform user config root
// (os.UserConfigDir) joined with "bonfire":
//   - Linux: $XDG_CONFIG_HOME/bonfire or $HOME/.config/bonfire
//   - macOS: $HOME/Library/Application Support/bonfire
//   - Windows: %AppData%\bonfire
//
// Derived locations are config.yaml, env, secrets/ and configmaps/.
package paths

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders command results: borderless lipgloss tables for
// text output, and YAML or JSON documents for machine consumption.
package output

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package log wraps github.com/apex/log with bonfire's compact line format
// ("2006-01-02 15:04:05 I message") and a BONFIRE_LOG driven level. Output
// goes to stderr so that command output on stdout can be piped.
package log

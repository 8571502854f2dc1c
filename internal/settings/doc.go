// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package settings resolves bonfire's environment-driven settings.
//
// Every setting is declared once in Table with its variable name, kind
// (string, bool, list or int) and compiled default. Resolve applies a fixed
// precedence:
//
//  1. explicit override (for example a command line flag)
//  2. the environment variable itself
//  3. a legacy variable, for composite settings such as QONTRACT_BASE_URL
//  4. the compiled default
//
// A source only wins when it is present and non-empty. List settings are the
// exception: a variable set to the empty string resolves to an explicit
// empty list, while an unset variable falls through to the default (or to
// nil when the setting has none). List entries are comma separated,
// whitespace trimmed and empty entries are dropped.
//
// Booleans are true only for the case-insensitive literal "true".
package settings

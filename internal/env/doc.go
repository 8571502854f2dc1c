// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package env loads bonfire's optional env file and exposes the process
// environment as an immutable Snapshot.
//
// The env file uses the dotenv format (KEY=VALUE per line, # comments,
// optional quoting) and is parsed with github.com/joho/godotenv. Values from
// the file never replace variables already present in the process
// environment.
//
// Typical startup:
//
//	_ = env.LoadFile(paths.EnvFile)
//	snap := env.Capture()
package env

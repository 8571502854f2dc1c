// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package settings

import "fmt"

// Kind selects the parse rule applied to a setting's raw value. KindInt has
// no entry in Table today; it is there for numeric settings added later.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindList
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindInt:
		return "int"
	default:
		return "string"
	}
}

// Origin records which source produced a setting's value.
type Origin int

const (
	OriginNone Origin = iota
	OriginDefault
	OriginLegacy
	OriginEnv
	OriginOverride
)

func (o Origin) String() string {
	switch o {
	case OriginDefault:
		return "default"
	case OriginLegacy:
		return "legacy"
	case OriginEnv:
		return "env"
	case OriginOverride:
		return "override"
	default:
		return "unset"
	}
}

// Descriptor declares a setting once: its variable name, kind, textual
// default and, for composite settings, the legacy variable consulted before
// the default.
type Descriptor struct {
	Name    string
	Kind    Kind
	Default string
	// NoDefault marks settings whose absence is meaningful (no compiled
	// default). Resolving one with no source leaves the Value unset.
	NoDefault bool
	// Legacy names an alternate variable. LegacyFormat, when set, is a
	// fmt pattern with a single %s applied to the legacy value.
	Legacy       string
	LegacyFormat string
	Secret       bool
	Usage        string
}

func (d Descriptor) legacyValue(raw string) string {
	if d.LegacyFormat == "" {
		return raw
	}
	return fmt.Sprintf(d.LegacyFormat, raw)
}

// Value is a resolved setting.
type Value struct {
	Descriptor
	Raw    string
	Origin Origin
	Set    bool
}

// String returns the raw value, or "" when unset.
func (v Value) String() string {
	return v.Raw
}

// Bool applies ParseBool to the raw value. Unset is false.
func (v Value) Bool() bool {
	b, _ := ParseBool(v.Raw)
	return v.Set && b
}

// List applies ParseList. An unset value returns nil.
func (v Value) List() []string {
	if !v.Set {
		return nil
	}
	l, _ := ParseList(v.Raw)
	return l
}

// Int applies ParseInt, falling back to the descriptor default when the raw
// value does not parse. It serves KindInt descriptors.
func (v Value) Int() int {
	if !v.Set {
		return 0
	}
	if i, err := ParseInt(v.Raw); err == nil {
		return i
	}
	i, _ := ParseInt(v.Default)
	return i
}

// Display renders the value for humans. Secrets are masked.
func (v Value) Display() string {
	switch {
	case !v.Set:
		return "-"
	case v.Secret && v.Raw != "":
		return "******"
	default:
		return v.Raw
	}
}

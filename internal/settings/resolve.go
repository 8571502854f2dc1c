// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bonfirectl/bonfire/internal/log"
)

// Source is a read-only variable lookup. env.Snapshot satisfies it.
type Source interface {
	Lookup(name string) (string, bool)
}

// MapSource adapts a plain map to Source. It is used for explicit overrides.
type MapSource map[string]string

// Lookup implements Source.
func (m MapSource) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Get reads name from src. When the variable is absent def is returned. An
// empty value also returns def, except for []string where it yields an
// explicit empty list, matching LookupList and Resolve. Otherwise parse
// converts the raw value; a nil parse returns the raw value when T is string.
// A parse error also yields def.
func Get[T any](src Source, name string, def T, parse func(string) (T, error)) T {
	raw, ok := lookup(src, name)
	if !ok {
		return def
	}
	if raw == "" {
		if v, isList := any([]string{}).(T); isList {
			return v
		}
		return def
	}

	if parse == nil {
		if v, ok := any(raw).(T); ok {
			return v
		}
		return def
	}

	v, err := parse(raw)
	if err != nil {
		log.Debugf("ignoring invalid value for %s: %v", name, err)
		return def
	}
	return v
}

// ParseBool treats the case-insensitive literal "true" as true and anything
// else as false. It never fails.
func ParseBool(raw string) (bool, error) {
	return strings.EqualFold(strings.TrimSpace(raw), "true"), nil
}

// ParseList splits raw on commas, trims whitespace and discards empty
// entries. The result is never nil, so an explicitly empty variable yields an
// empty list rather than the "unset" marker.
func ParseList(raw string) ([]string, error) {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out, nil
}

// ParseInt parses a base 10 integer.
func ParseInt(raw string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("not an int: %q", raw)
	}
	return i, nil
}

// LookupList distinguishes an unset variable (nil, false) from one set to
// the empty string (empty non-nil list, true).
func LookupList(src Source, name string) ([]string, bool) {
	raw, ok := lookup(src, name)
	if !ok {
		return nil, false
	}
	list, _ := ParseList(raw)
	return list, true
}

// Resolve determines the winning raw value for d.
// Precedence:
//  1. overrides[d.Name], if present and non-empty
//  2. env[d.Name], if present and non-empty (list settings: present)
//  3. env[d.Legacy], if present and non-empty, formatted with d.LegacyFormat
//  4. d.Default, if the descriptor has one
func Resolve(d Descriptor, env Source, overrides Source) Value {
	v := Value{Descriptor: d}

	if raw, ok := lookup(overrides, d.Name); ok && raw != "" {
		v.Raw, v.Origin, v.Set = raw, OriginOverride, true
	} else if raw, ok := lookup(env, d.Name); ok && (raw != "" || d.Kind == KindList) {
		v.Raw, v.Origin, v.Set = raw, OriginEnv, true
	} else if raw, ok := lookup(env, d.Legacy); ok && raw != "" {
		v.Raw, v.Origin, v.Set = d.legacyValue(raw), OriginLegacy, true
	} else if !d.NoDefault {
		v.Raw, v.Origin, v.Set = d.Default, OriginDefault, true
	}

	log.Tracef("setting resolved: name=%s origin=%s", d.Name, v.Origin)
	return v
}

// ResolveAll resolves every descriptor in table order.
func ResolveAll(table []Descriptor, env Source, overrides Source) []Value {
	values := make([]Value, 0, len(table))
	for _, d := range table {
		values = append(values, Resolve(d, env, overrides))
	}
	return values
}

func lookup(src Source, name string) (string, bool) {
	if src == nil || name == "" {
		return "", false
	}
	return src.Lookup(name)
}

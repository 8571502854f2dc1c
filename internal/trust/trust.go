// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package trust

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/bonfirectl/bonfire/internal/defaults"
)

// patternsForPath recognizes templated resource request/limit placeholders,
// keyed by dotted field path.
var patternsForPath = map[string]*regexp.Regexp{
	"resources.requests.cpu":    regexp.MustCompile(`\${(CPU_REQUEST[A-Z0-9_]+)}`),
	"resources.limits.cpu":      regexp.MustCompile(`\${(CPU_LIMIT[A-Z0-9_]+)}`),
	"resources.requests.memory": regexp.MustCompile(`\${(MEM_REQUEST[A-Z0-9_]+)}`),
	"resources.limits.memory":   regexp.MustCompile(`\${(MEM_LIMIT[A-Z0-9_]+)}`),
}

// Policy decides whether a resource field is trusted, that is, exempt from
// having its resource requests/limits rewritten. A Policy is read-only after
// New returns and is safe for concurrent use.
type Policy struct {
	apps       map[string]struct{}
	components map[string]struct{}
	kinds      map[string]struct{}
	patterns   map[string]*regexp.Regexp
}

// New builds a Policy from the trusted app and component names. Nil or empty
// lists trust nothing by name. Blank names are ignored.
func New(apps, components []string) *Policy {
	return &Policy{
		apps:       toSet(apps),
		components: toSet(components),
		kinds:      toSet(defaults.TrustedCheckKinds()),
		patterns:   patternsForPath,
	}
}

// IsTrusted reports whether the field at fieldPath of a resource of the given
// kind, owned by app/component, is trusted.
//
// The kind must be eligible. The field is then trusted when the app or the
// component is trusted by name, or when value matches the pattern registered
// for fieldPath. The pattern may match anywhere within the value. Paths
// without a pattern are not trusted.
func (p *Policy) IsTrusted(kind, fieldPath string, value any, app, component string) bool {
	if _, ok := p.kinds[kind]; !ok {
		return false
	}
	if _, ok := p.apps[app]; ok {
		return true
	}
	if _, ok := p.components[component]; ok {
		return true
	}

	re, ok := p.patterns[fieldPath]
	if !ok {
		return false
	}
	return re.MatchString(valueString(value))
}

// Placeholder returns the parameter name captured from value for fieldPath,
// e.g. "CPU_REQUEST_X" for "${CPU_REQUEST_X}".
func (p *Policy) Placeholder(fieldPath string, value any) (string, bool) {
	re, ok := p.patterns[fieldPath]
	if !ok {
		return "", false
	}
	m := re.FindStringSubmatch(valueString(value))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Apps returns the trusted app names sorted.
func (p *Policy) Apps() []string { return sortedKeys(p.apps) }

// Components returns the trusted component names sorted.
func (p *Policy) Components() []string { return sortedKeys(p.components) }

// Kinds returns the eligible resource kinds sorted.
func (p *Policy) Kinds() []string { return sortedKeys(p.kinds) }

// FieldPaths returns the field paths that have a registered pattern, sorted.
func (p *Policy) FieldPaths() []string {
	paths := make([]string, 0, len(p.patterns))
	for k := range p.patterns {
		paths = append(paths, k)
	}
	sort.Strings(paths)
	return paths
}

func valueString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, i := range items {
		if i = strings.TrimSpace(i); i != "" {
			set[i] = struct{}{}
		}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

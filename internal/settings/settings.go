// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"sort"

	"github.com/bonfirectl/bonfire/internal/log"
)

// Settings is the typed, process-wide view of every setting in Table. It is
// built once by Load and not mutated afterwards.
type Settings struct {
	AppInterfaceBaseURL  string
	AppInterfaceUsername string
	AppInterfacePassword string

	QontractBaseURL  string
	QontractUsername string
	QontractPassword string
	QontractToken    string

	BaseNamespacePath string
	EphemeralEnvName  string

	NSRequester string
	Bot         bool

	DefaultPrefer         []string
	DefaultRefEnv         string
	DefaultFallbackRefEnv string

	// TrustedApps and TrustedComponents are nil when their variable is unset
	// and empty when it is set to the empty string.
	TrustedApps       []string
	TrustedComponents []string

	FrontendDependencies map[string]struct{}

	ElasticsearchHost  string
	ElasticsearchIndex string
	// ElasticsearchAPIKey carries the "ApiKey " scheme prefix when set.
	ElasticsearchAPIKey string
	EnableTelemetry     bool

	ClientID string
	Editor   string

	values []Value
}

// Load resolves Table against env with optional explicit overrides, keyed by
// variable name. Either source may be nil.
func Load(env Source, overrides Source) *Settings {
	values := ResolveAll(Table, env, overrides)

	byName := make(map[string]Value, len(values))
	for _, v := range values {
		byName[v.Name] = v
	}
	get := func(name string) Value { return byName[name] }

	s := &Settings{
		AppInterfaceBaseURL:   get(AppInterfaceBaseURL).String(),
		AppInterfaceUsername:  get(AppInterfaceUsername).String(),
		AppInterfacePassword:  get(AppInterfacePassword).String(),
		QontractBaseURL:       get(QontractBaseURL).String(),
		QontractUsername:      get(QontractUsername).String(),
		QontractPassword:      get(QontractPassword).String(),
		QontractToken:         get(QontractToken).String(),
		BaseNamespacePath:     get(BaseNamespacePath).String(),
		EphemeralEnvName:      get(EphemeralEnvName).String(),
		NSRequester:           get(NSRequester).String(),
		Bot:                   get(Bot).Bool(),
		DefaultPrefer:         get(DefaultPrefer).List(),
		DefaultRefEnv:         get(DefaultRefEnv).String(),
		DefaultFallbackRefEnv: get(DefaultFallbackRefEnv).String(),
		TrustedApps:           get(TrustedApps).List(),
		TrustedComponents:     get(TrustedComponents).List(),
		FrontendDependencies:  toSet(get(FrontendDependencies).List()),
		ElasticsearchHost:     get(ElasticsearchHost).String(),
		ElasticsearchIndex:    get(ElasticsearchIndex).String(),
		EnableTelemetry:       get(EnableTelemetry).Bool(),
		ClientID:              get(ClientID).String(),
		Editor:                get(Editor).String(),
		values:                values,
	}

	if key := get(ElasticsearchAPIKey).String(); key != "" {
		s.ElasticsearchAPIKey = "ApiKey " + key
	}

	log.Debugf("settings loaded: count=%d bot=%t telemetry=%t", len(values), s.Bot, s.EnableTelemetry)
	return s
}

// Values returns the resolved settings in Table order.
func (s *Settings) Values() []Value {
	return append([]Value(nil), s.values...)
}

// Value returns the resolved setting for name.
func (s *Settings) Value(name string) (Value, bool) {
	for _, v := range s.values {
		if v.Name == name {
			return v, true
		}
	}
	return Value{}, false
}

// FrontendDependencyNames returns the frontend dependency set sorted.
func (s *Settings) FrontendDependencyNames() []string {
	names := make([]string, 0, len(s.FrontendDependencies))
	for n := range s.FrontendDependencies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IsFrontendDependency reports whether app is auto-added with frontends.
func (s *Settings) IsFrontendDependency(app string) bool {
	_, ok := s.FrontendDependencies[app]
	return ok
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, i := range items {
		set[i] = struct{}{}
	}
	return set
}

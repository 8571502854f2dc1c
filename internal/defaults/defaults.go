// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package defaults

import "strings"

const (
	// NamespacePool is the reservation pool used when none is requested.
	NamespacePool = "default"

	GraphQLURL         = "https://app-interface.apps.rosa.appsrep09ue1.03r5.p3.openshiftapps.com/graphql"
	ElasticsearchHost  = "https://localhost:9200/"
	ElasticsearchIndex = "search-bonfire"
	EnableTelemetry    = false
	ClientID           = "bonfire"
	BaseNamespacePath  = "/services/insights/ephemeral/namespaces/ephemeral-base.yml"
	EphemeralEnvName   = "insights-ephemeral"
	DefaultPrefer      = "ENV_NAME=frontends"
	RefEnv             = "insights-stage"
	FallbackRefEnv     = "insights-stage"

	// DashboardURLTemplate is the resource dashboard URL with a {namespace}
	// placeholder.
	DashboardURLTemplate = "https://grafana.app-sre.devshift.net/d/jRY7KLnVz?var-namespace={namespace}"
)

var (
	trustedCheckKinds = [...]string{"ClowdApp", "ClowdJob", "ClowdJobInvocation"}

	frontendDependencies = [...]string{
		"chrome-service",
		"landing-page-frontend",
		"insights-chrome",
		"insights-dashboard",
		"rbac",
		"rbac-frontend",
		"settings-frontend",
		"host-inventory",
		"host-inventory-frontend",
		"unleash-proxy",
		"service-accounts",
	}
)

// TrustedCheckKinds returns the resource kinds eligible for trust checks. The
// result is a fresh copy.
func TrustedCheckKinds() []string {
	return append([]string(nil), trustedCheckKinds[:]...)
}

// FrontendDependencies returns the compiled-in frontend dependency names in
// their declared order. The result is a fresh copy.
func FrontendDependencies() []string {
	return append([]string(nil), frontendDependencies[:]...)
}

// DashboardURL substitutes namespace into DashboardURLTemplate.
func DashboardURL(namespace string) string {
	return strings.ReplaceAll(DashboardURLTemplate, "{namespace}", namespace)
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"strconv"
	"strings"

	"github.com/bonfirectl/bonfire/internal/defaults"
)

// Variable names.
const (
	AppInterfaceBaseURL   = "APP_INTERFACE_BASE_URL"
	AppInterfaceUsername  = "APP_INTERFACE_USERNAME"
	AppInterfacePassword  = "APP_INTERFACE_PASSWORD"
	QontractBaseURL       = "QONTRACT_BASE_URL"
	QontractUsername      = "QONTRACT_USERNAME"
	QontractPassword      = "QONTRACT_PASSWORD"
	QontractToken         = "QONTRACT_TOKEN"
	BaseNamespacePath     = "BASE_NAMESPACE_PATH"
	EphemeralEnvName      = "EPHEMERAL_ENV_NAME"
	NSRequester           = "BONFIRE_NS_REQUESTER"
	Bot                   = "BONFIRE_BOT"
	DefaultPrefer         = "BONFIRE_DEFAULT_PREFER"
	DefaultRefEnv         = "BONFIRE_DEFAULT_REF_ENV"
	DefaultFallbackRefEnv = "BONFIRE_DEFAULT_FALLBACK_REF_ENV"
	TrustedApps           = "BONFIRE_TRUSTED_APPS"
	TrustedComponents     = "BONFIRE_TRUSTED_COMPONENTS"
	FrontendDependencies  = "BONFIRE_FRONTEND_DEPENDENCIES"
	ElasticsearchHost     = "ELASTICSEARCH_HOST"
	ElasticsearchIndex    = "ELASTICSEARCH_INDEX"
	ElasticsearchAPIKey   = "ELASTICSEARCH_APIKEY"
	EnableTelemetry       = "ENABLE_TELEMETRY"
	ClientID              = "CLIENT_ID"
	Editor                = "EDITOR"
)

// Table declares every setting bonfire reads from the environment.
var Table = []Descriptor{
	{Name: AppInterfaceBaseURL, NoDefault: true, Usage: "legacy app-interface host, used to derive QONTRACT_BASE_URL"},
	{Name: AppInterfaceUsername, NoDefault: true, Usage: "legacy app-interface username"},
	{Name: AppInterfacePassword, NoDefault: true, Secret: true, Usage: "legacy app-interface password"},
	{
		Name:         QontractBaseURL,
		Default:      defaults.GraphQLURL,
		Legacy:       AppInterfaceBaseURL,
		LegacyFormat: "https://%s/graphql",
		Usage:        "GraphQL endpoint of app-interface",
	},
	{Name: QontractUsername, NoDefault: true, Legacy: AppInterfaceUsername, Usage: "GraphQL basic auth username"},
	{Name: QontractPassword, NoDefault: true, Legacy: AppInterfacePassword, Secret: true, Usage: "GraphQL basic auth password"},
	{Name: QontractToken, NoDefault: true, Secret: true, Usage: "GraphQL bearer token"},
	{Name: BaseNamespacePath, Default: defaults.BaseNamespacePath, Usage: "path of the base namespace file in app-interface"},
	{Name: EphemeralEnvName, Default: defaults.EphemeralEnvName, Usage: "name of the ephemeral environment"},
	{Name: NSRequester, NoDefault: true, Usage: "requester recorded on namespace reservations"},
	{Name: Bot, Kind: KindBool, Default: "false", Usage: "set when running under an automation account"},
	{Name: DefaultPrefer, Kind: KindList, Default: defaults.DefaultPrefer, Usage: "deployment selection preferences"},
	{Name: DefaultRefEnv, Default: defaults.RefEnv, Usage: "reference environment for deployments"},
	{Name: DefaultFallbackRefEnv, Default: defaults.FallbackRefEnv, Usage: "fallback reference environment"},
	{Name: TrustedApps, Kind: KindList, NoDefault: true, Usage: "apps whose resource requests/limits are kept"},
	{Name: TrustedComponents, Kind: KindList, NoDefault: true, Usage: "components whose resource requests/limits are kept"},
	{
		Name:    FrontendDependencies,
		Kind:    KindList,
		Default: strings.Join(defaults.FrontendDependencies(), ","),
		Usage:   "frontend apps deployed automatically with frontends; replaces the default list",
	},
	{Name: ElasticsearchHost, Default: defaults.ElasticsearchHost, Usage: "telemetry Elasticsearch host"},
	{Name: ElasticsearchIndex, Default: defaults.ElasticsearchIndex, Usage: "telemetry Elasticsearch index"},
	{Name: ElasticsearchAPIKey, NoDefault: true, Secret: true, Usage: "telemetry Elasticsearch API key"},
	{Name: EnableTelemetry, Kind: KindBool, Default: strconv.FormatBool(defaults.EnableTelemetry), Usage: "send telemetry to Elasticsearch"},
	{Name: ClientID, Default: defaults.ClientID, Usage: "client identifier sent with requests"},
	{Name: Editor, NoDefault: true, Usage: "editor used by 'bonfire config edit'"},
}

// Lookup returns the descriptor for name.
func Lookup(name string) (Descriptor, bool) {
	for _, d := range Table {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

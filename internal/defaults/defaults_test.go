// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package defaults

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDashboardURL(t *testing.T) {
	got := DashboardURL("ephemeral-abc123")

	assert.Equal(t, "https://grafana.app-sre.devshift.net/d/jRY7KLnVz?var-namespace=ephemeral-abc123", got)
	assert.Contains(t, DashboardURLTemplate, "{namespace}")
}

func TestFrontendDependencies_IsCopy(t *testing.T) {
	deps := FrontendDependencies()
	require.Len(t, deps, 11)
	assert.Equal(t, "chrome-service", deps[0])

	deps[0] = "mutated"
	assert.Equal(t, "chrome-service", FrontendDependencies()[0])
}

func TestTrustedCheckKinds(t *testing.T) {
	kinds := TrustedCheckKinds()
	assert.Equal(t, []string{"ClowdApp", "ClowdJob", "ClowdJobInvocation"}, kinds)

	kinds[0] = "Deployment"
	assert.Equal(t, "ClowdApp", TrustedCheckKinds()[0])
}

func TestAssets_AllTemplatesParse(t *testing.T) {
	for _, name := range Templates() {
		t.Run(name, func(t *testing.T) {
			b, err := ReadAsset(nil, name)
			require.NoError(t, err)
			require.NotEmpty(t, b)

			var doc map[string]interface{}
			assert.NoError(t, yaml.Unmarshal(b, &doc))
		})
	}
}

func TestAssets_DefaultConfigShape(t *testing.T) {
	b, err := ReadAsset(Assets(), ConfigTemplate)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(b, &doc))

	appsFile, ok := doc["appsFile"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "gitlab", appsFile["host"])
	assert.Equal(t, []interface{}{}, doc["apps"])
}

func TestReadAsset_InjectedFS(t *testing.T) {
	fsys := fstest.MapFS{
		ConfigTemplate: &fstest.MapFile{Data: []byte("apps: [fixture]\n")},
	}

	b, err := ReadAsset(fsys, ConfigTemplate)
	require.NoError(t, err)
	assert.Equal(t, "apps: [fixture]\n", string(b))

	_, err = ReadAsset(fsys, ReservationTemplate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), ReservationTemplate)
}

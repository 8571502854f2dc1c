// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Query(t *testing.T) {
	doc := loadTestdata(t, "apps.yaml")

	tests := []struct {
		name   string
		path   string
		want   string
		exists bool
	}{
		{"indexed array", "apps[0].name", "advisor", true},
		{"nested indexes", "apps[0].components[1].repo", "RedHatInsights/advisor-frontend", true},
		{"single element array collapses", "apps[1].components.name", "rbac", true},
		{"parameter map", "apps[0].components[0].parameters.CPU_REQUEST_API", "250m", true},
		{"index out of range", "apps[5].name", "", false},
		{"index on non-array", "apps[0].name[0]", "", false},
		{"missing key", "apps[0].nope", "", false},
		{"malformed segment", "apps[x]", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := doc.Query(tt.path)
			assert.Equal(t, tt.exists, got.Exists())
			if tt.exists {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}

func TestDocument_QueryWholeArray(t *testing.T) {
	doc := loadTestdata(t, "apps.yaml")

	got := doc.Query("apps")
	require.True(t, got.IsArray())
	assert.Len(t, got.Array(), 2)

	got = doc.Query("apps[1].components[*]")
	require.True(t, got.IsArray())
	assert.Len(t, got.Array(), 1)
}

func TestDocument_QueryRoot(t *testing.T) {
	doc := loadTestdata(t, "simple.yaml")

	root := doc.Query("")
	assert.True(t, root.IsObject())
	assert.Equal(t, "default", root.Get("pool").String())
}

func TestDocument_JSON(t *testing.T) {
	doc := loadTestdata(t, "simple.yaml")

	b, err := doc.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"envName":"insights-ephemeral","pool":"default"}`, string(b))
}

func TestDocument_QueryNonStringKeys(t *testing.T) {
	doc := &Document{Data: map[string]interface{}{
		"ports": map[interface{}]interface{}{80: "http", true: "on"},
	}}

	res, err := doc.QueryE("ports.80")
	require.NoError(t, err)
	assert.Equal(t, "http", res.String())
	assert.Equal(t, "on", doc.Query("ports.true").String())
}

func TestDocument_QueryEncodeError(t *testing.T) {
	doc := &Document{Source: "/x/config.yaml", Data: map[string]interface{}{"ch": make(chan int)}}

	res, err := doc.QueryE("ch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode /x/config.yaml as json")
	assert.False(t, res.Exists())
	assert.False(t, doc.Query("ch").Exists())
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the in-memory representation of a loaded config file.
//
// Fields:
//   - Source: absolute path of the YAML file loaded.
//   - Data: raw key/value tree as returned by the file loader.
//
// Data is kept as map[string]interface{}; bonfire does not validate the
// schema. The typed getters and Query are the accessor API for code that
// consumes the deployment config.
type Document struct {
	Source string
	Data   map[string]interface{}
}

// LoadFile reads a YAML file into a generic key/value tree. An empty file
// yields a nil map. Nested maps with non-string keys are rekeyed by their
// string form so the tree can always be encoded as JSON.
func LoadFile(path string) (map[string]interface{}, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if data == nil {
		return nil, nil
	}
	return normalize(data).(map[string]interface{}), nil
}

// normalize converts map[interface{}]interface{} nodes, which yaml.v3
// produces for non-string keys, into map[string]interface{}.
func normalize(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, item := range v {
			out[k] = normalize(item)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, item := range v {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}

// GetInt returns the integer value for the given dotted key path. A single
// defaultValue may be provided and is returned when the key is missing.
// YAML numbers may decode as int, int64, or float64; common cases are handled.
func (d *Document) GetInt(key string, defaultValue ...int) (int, error) {
	val, err := d.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, errors.New("value is not an int")
	}
}

// GetString returns the string value for the given dotted key path. If the key
// is not found and a single defaultValue is provided, the default is returned.
// Returns an error if the value exists but is not a string.
func (d *Document) GetString(key string, defaultValue ...string) (string, error) {
	val, err := d.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}
	return s, nil
}

// GetStringSlice returns the string slice value for the given dotted key path.
// If the key is not found and a single default slice is provided, that default
// is returned. Returns an error if the value exists but is not a string slice.
func (d *Document) GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	val, err := d.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, err
	}

	switch v := val.(type) {
	case []string:
		return v, nil
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New("slice element is not a string")
			}
			result[i] = s
		}
		return result, nil
	default:
		return nil, errors.New("value is not a slice")
	}
}

// Has reports whether key resolves to a value.
func (d *Document) Has(key string) bool {
	_, err := d.get(key)
	return err == nil
}

// get traverses the tree using a dotted key path (e.g. "appsFile.repo").
func (d *Document) get(key string) (any, error) {
	var current interface{} = d.Data

	for _, k := range strings.Split(key, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("no value found at %q", key)
		}
		if current, ok = m[k]; !ok {
			return nil, fmt.Errorf("no value found at %q", key)
		}
	}

	return current, nil
}

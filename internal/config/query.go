// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/bonfirectl/bonfire/internal/log"
)

var segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d+|\*)?\])?$`)

// JSON renders the document data as JSON.
func (d *Document) JSON() ([]byte, error) {
	b, err := json.Marshal(normalize(d.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s as json: %w", d.Source, err)
	}
	return b, nil
}

// Query navigates the document with a dotted path where each segment may carry
// an array index, e.g. "apps[0].components[1].name". A bare array segment
// resolves to its only element when it has exactly one, otherwise to the
// whole array; "[*]" always keeps the whole array. A missing or malformed
// path returns a Result whose Exists() is false; QueryE also reports why the
// document could not be encoded.
func (d *Document) Query(path string) gjson.Result {
	res, err := d.QueryE(path)
	if err != nil {
		log.Warnf("%v", err)
	}
	return res
}

// QueryE is Query with the encode error returned.
func (d *Document) QueryE(path string) (gjson.Result, error) {
	raw, err := d.JSON()
	if err != nil {
		return gjson.Result{}, err
	}
	return query(gjson.ParseBytes(raw), path), nil
}

func query(current gjson.Result, path string) gjson.Result {
	if path == "" || path == "." {
		return current
	}

	for _, p := range strings.Split(path, ".") {
		matches := segmentRegex.FindStringSubmatch(p)
		if len(matches) == 0 {
			return gjson.Result{}
		}

		key := matches[1]
		index := -1
		if matches[3] != "" && matches[3] != "*" {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		val := current.Get(key)
		if val.IsArray() && matches[3] != "*" {
			arr := val.Array()
			switch {
			case index == -1:
				if len(arr) == 1 {
					val = arr[0]
				}
			case index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		} else if index >= 0 {
			return gjson.Result{}
		}

		current = val
	}

	return current
}

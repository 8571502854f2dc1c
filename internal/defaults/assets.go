// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package defaults

import (
	"embed"
	"fmt"
	"io/fs"
)

// Names of the packaged templates within the asset file system.
const (
	ConfigTemplate                   = "default_config.yaml"
	LocalClowdEnvTemplate            = "local-cluster-clowdenvironment.yaml"
	EphemeralClusterClowdEnvTemplate = "ephemeral-cluster-clowdenvironment.yaml"
	IQECJITemplate                   = "default-iqe-cji.yaml"
	ReservationTemplate              = "reservation-template.yaml"
)

//go:embed resources/*.yaml
var resources embed.FS

var assets = func() fs.FS {
	sub, err := fs.Sub(resources, "resources")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory exists
	}
	return sub
}()

// Assets returns the file system holding the packaged templates. It is
// compiled into the binary, so lookups never depend on the working directory.
// Callers that need fixtures inject their own fs.FS instead.
func Assets() fs.FS {
	return assets
}

// Templates lists every packaged template name.
func Templates() []string {
	return []string{
		ConfigTemplate,
		LocalClowdEnvTemplate,
		EphemeralClusterClowdEnvTemplate,
		IQECJITemplate,
		ReservationTemplate,
	}
}

// ReadAsset returns the bytes of name from fsys. A nil fsys reads from the
// packaged assets.
func ReadAsset(fsys fs.FS, name string) ([]byte, error) {
	if fsys == nil {
		fsys = assets
	}
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read packaged asset %s: %w", name, err)
	}
	return b, nil
}

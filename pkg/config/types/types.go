// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package types

// Config holds the tunable defaults for xcatctl.  The files the tool
// patches are deliberately not configurable; they are fixed paths that
// belong to the product.
type Config struct {
	// Version is the xCAT version selector handed to the installer
	// when no version argument is given on the command line.
	Version string `yaml:"version"`

	// Prerequisites are packages installed before the installer runs.
	Prerequisites []string `yaml:"prerequisites"`

	// Repositories are package repository IDs to enable.
	Repositories []string `yaml:"repositories"`

	// InstallerBundle is the directory holding the go-xcat payload.
	InstallerBundle string `yaml:"installerBundle"`
}

// MergeConfig overlays the fields set in overlay onto def and returns
// the result.
func MergeConfig(def *Config, overlay *Config) Config {
	ret := *def
	if overlay == nil {
		return ret
	}
	if overlay.Version != "" {
		ret.Version = overlay.Version
	}
	if len(overlay.Prerequisites) > 0 {
		ret.Prerequisites = overlay.Prerequisites
	}
	if len(overlay.Repositories) > 0 {
		ret.Repositories = overlay.Repositories
	}
	if overlay.InstallerBundle != "" {
		ret.InstallerBundle = overlay.InstallerBundle
	}
	return ret
}

// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/xcat2/xcatctl/pkg/config/types"
	"github.com/xcat2/xcatctl/pkg/constants"
	"github.com/xcat2/xcatctl/pkg/file"
	"github.com/xcat2/xcatctl/pkg/util/strutil"
)

// ParseConfig takes a yaml-encoded string and parses it
// into a Config structure.
func ParseConfig(in string) (*types.Config, error) {
	ret := &types.Config{}
	err := yaml.Unmarshal([]byte(in), ret)
	if err != nil {
		return nil, err
	}
	ret.Prerequisites = strutil.CompactArray(ret.Prerequisites)
	ret.Repositories = strutil.CompactArray(ret.Repositories)
	return ret, nil
}

// ParseConfigFile takes the path to a file, reads the contents,
// and parses it into a Config structure.
func ParseConfigFile(configPath string) (*types.Config, error) {
	configBytes, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	conf, err := ParseConfig(string(configBytes))
	if err != nil {
		return nil, fmt.Errorf("could not parse config file %s: %s", configPath, err.Error())
	}
	return conf, nil
}

// defaultsPath returns the location of the user overrides file.  The
// XCATCTL_DEFAULTS environment variable wins over ~/.xcatctl/defaults.yaml.
func defaultsPath() (string, error) {
	if path := os.Getenv(constants.UserConfigDefaultsEnvironmentVariable); path != "" {
		return path, nil
	}

	dir, err := file.GetXcatctlDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.UserConfigDefaults), nil
}

// GetDefaultConfig returns the global default config.  It starts with
// a hard-coded set of defaults.  It then attempts to read a global
// overrides file.  If such a file is found, the entries in that file
// are merged into the hard-coded defaults.
func GetDefaultConfig() (*types.Config, error) {
	defaultConfig := types.Config{
		Version:         constants.DefaultVersion,
		Prerequisites:   constants.DefaultPrerequisites,
		Repositories:    constants.DefaultRepositories,
		InstallerBundle: constants.InstallerBundleDir,
	}

	path, err := defaultsPath()
	if err != nil {
		return nil, err
	}

	conf := &defaultConfig
	_, err = os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		overrides, err := ParseConfigFile(path)
		if err != nil {
			return nil, err
		}
		merged := types.MergeConfig(&defaultConfig, overrides)
		conf = &merged
	}

	// A ~/-relative installer bundle is allowed in the overrides file
	conf.InstallerBundle, err = file.AbsDir(conf.InstallerBundle)
	if err != nil {
		return nil, err
	}
	return conf, nil
}

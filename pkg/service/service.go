// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package service

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/xcat2/xcatctl/pkg/constants"
	"github.com/xcat2/xcatctl/pkg/unix"
)

// Controller manages the xcatd daemon.  Every stage is best effort:
// failures are logged and reported, but callers are expected to keep
// going.  The daemon's own tools are preferred; systemd is the
// fallback when they are not installed.
type Controller struct {
	Runner unix.Runner

	// Profile is the environment file the product drops into
	// /etc/profile.d.  Its presence means the xCAT bin directories
	// should be put on the path.
	Profile string

	// BinDirs are prepended to PATH when Profile exists.
	BinDirs []string
}

// NewController creates a Controller for the standard install layout.
func NewController(runner unix.Runner) *Controller {
	return &Controller{
		Runner:  runner,
		Profile: constants.XcatProfile,
		BinDirs: []string{constants.XcatBinDir, constants.XcatSbinDir},
	}
}

// SetupEnv prepends the xCAT bin directories to PATH when the profile
// file exists, so later lookups find the freshly installed tools.
func (c *Controller) SetupEnv() {
	_, err := os.Stat(c.Profile)
	if err != nil {
		log.Debugf("Profile %s not found, not adjusting PATH", c.Profile)
		return
	}

	path := os.Getenv("PATH")
	entries := filepath.SplitList(path)
	for _, dir := range c.BinDirs {
		if slices.Contains(entries, dir) {
			continue
		}
		path = dir + ":" + path
		entries = append(entries, dir)
	}
	os.Setenv("PATH", path)
}

// Reinit regenerates the xCAT configuration if the tool to do so is
// installed.
func (c *Controller) Reinit() error {
	if _, ok := c.Runner.LookPath(constants.XcatConfigCommand); !ok {
		log.Infof("%s not found, skipping reinitialization", constants.XcatConfigCommand)
		return nil
	}

	log.Infof("Reinitializing xCAT")
	_, stderr, err := c.Runner.Run(constants.XcatConfigCommand, "-f")
	if err != nil {
		err = fmt.Errorf("%s failed: %v: %s", constants.XcatConfigCommand, err, stderr)
		log.Error(err)
	}
	return err
}

// Restart restarts xcatd.  The daemon's restart tool is preferred.
// When it is absent the registered systemd unit is used instead, and
// when neither exists there is nothing to do but say so.
func (c *Controller) Restart() error {
	if _, ok := c.Runner.LookPath(constants.XcatRestartCommand); ok {
		log.Infof("Restarting xcatd with %s", constants.XcatRestartCommand)
		_, stderr, err := c.Runner.Run(constants.XcatRestartCommand)
		if err != nil {
			err = fmt.Errorf("%s failed: %v: %s", constants.XcatRestartCommand, err, stderr)
			log.Error(err)
		}
		return err
	}

	if c.unitRegistered() {
		log.Infof("Restarting xcatd with systemctl")
		_, stderr, err := c.Runner.Run("systemctl", "restart", constants.XcatServiceName)
		if err != nil {
			err = fmt.Errorf("systemctl restart %s failed: %v: %s", constants.XcatServiceName, err, stderr)
			log.Error(err)
		}
		return err
	}

	log.Warnf("No known method to restart xcatd, skipping restart")
	return nil
}

// Status checks on the daemon if the status tool is installed.
func (c *Controller) Status() error {
	if _, ok := c.Runner.LookPath(constants.XcatStatusCommand); !ok {
		log.Infof("%s not found, skipping status check", constants.XcatStatusCommand)
		return nil
	}

	stdout, stderr, err := c.Runner.Run(constants.XcatStatusCommand, "-a")
	if err != nil {
		err = fmt.Errorf("%s failed: %v: %s", constants.XcatStatusCommand, err, stderr)
		log.Error(err)
		return err
	}

	log.Infof("xcatd is healthy")
	if stdout != "" {
		log.Debug(stdout)
	}
	return nil
}

func (c *Controller) unitRegistered() bool {
	if _, ok := c.Runner.LookPath("systemctl"); !ok {
		return false
	}

	stdout, _, err := c.Runner.Run("systemctl", "list-unit-files", constants.XcatServiceUnit)
	if err != nil {
		return false
	}
	return strings.Contains(stdout, constants.XcatServiceUnit)
}

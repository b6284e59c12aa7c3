// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package rpm

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/xcat2/xcatctl/pkg/unix"
)

const (
	toolDnf = "dnf"
	toolYum = "yum"
)

// Manager drives the system package manager.  All operations shell out
// through a unix.Runner so tests can run against a fake.
type Manager struct {
	tool   string
	runner unix.Runner
}

// Detect finds a supported package manager on the search path.  dnf is
// preferred; yum is accepted for older systems.
func Detect(runner unix.Runner) (*Manager, error) {
	for _, tool := range []string{toolDnf, toolYum} {
		if _, ok := runner.LookPath(tool); ok {
			return &Manager{tool: tool, runner: runner}, nil
		}
	}
	return nil, fmt.Errorf("no supported package manager found, need %s or %s", toolDnf, toolYum)
}

// Tool returns the name of the detected package manager.
func (m *Manager) Tool() string {
	return m.tool
}

// ListInstalled returns the names of all installed packages.
func (m *Manager) ListInstalled() ([]string, error) {
	stdout, stderr, err := m.runner.Run("rpm", "-qa", "--qf", "%{NAME}\\n")
	if err != nil {
		return nil, fmt.Errorf("could not list installed packages: %v: %s", err, stderr)
	}

	var names []string
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

// IsInstalled reports whether a package is installed.
func (m *Manager) IsInstalled(name string) bool {
	_, _, err := m.runner.Run("rpm", "-q", name)
	return err == nil
}

// Install installs the given packages in one transaction.
func (m *Manager) Install(names ...string) error {
	args := append([]string{"install", "-y"}, names...)
	_, stderr, err := m.runner.Run(m.tool, args...)
	if err != nil {
		return fmt.Errorf("could not install %s: %v: %s", strings.Join(names, " "), err, stderr)
	}
	return nil
}

// Remove removes the given packages in one transaction.
func (m *Manager) Remove(names ...string) error {
	args := append([]string{"remove", "-y"}, names...)
	_, stderr, err := m.runner.Run(m.tool, args...)
	if err != nil {
		return fmt.Errorf("could not remove %s: %v: %s", strings.Join(names, " "), err, stderr)
	}
	return nil
}

// Ensure installs a package if it is not already installed.  It is
// safe to call on every run.
func (m *Manager) Ensure(name string) error {
	if m.IsInstalled(name) {
		log.Infof("Package %s is already installed", name)
		return nil
	}

	log.Infof("Installing package %s", name)
	return m.Install(name)
}

// EnableRepos enables the given repository IDs.  dnf has config-manager
// built in; yum ships it as a separate command.
func (m *Manager) EnableRepos(ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	var cmdName string
	var args []string
	if m.tool == toolDnf {
		cmdName = toolDnf
		args = append([]string{"config-manager", "--set-enabled"}, ids...)
	} else {
		cmdName = "yum-config-manager"
		for _, id := range ids {
			args = append(args, "--enable", id)
		}
	}

	_, stderr, err := m.runner.Run(cmdName, args...)
	if err != nil {
		return fmt.Errorf("could not enable repositories %s: %v: %s", strings.Join(ids, " "), err, stderr)
	}
	return nil
}

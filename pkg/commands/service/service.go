// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package service

import (
	"github.com/xcat2/xcatctl/pkg/service"
	"github.com/xcat2/xcatctl/pkg/unix"
)

// Restart restarts the xcatd daemon.  The outcome is logged; the
// error is advisory only and never changes the exit code.
func Restart(runner unix.Runner) error {
	ctl := service.NewController(runner)
	ctl.SetupEnv()
	return ctl.Restart()
}

// Status reports on the xcatd daemon.
func Status(runner unix.Runner) error {
	ctl := service.NewController(runner)
	ctl.SetupEnv()
	return ctl.Status()
}

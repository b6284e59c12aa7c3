// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package info

import (
	"fmt"
	"io"

	"github.com/xcat2/xcatctl/pkg/constants"
	"github.com/xcat2/xcatctl/pkg/rpm"
	"github.com/xcat2/xcatctl/pkg/unix"
)

// Info writes a short report about the environment: the tool version,
// the detected package manager, and which of the xCAT commands are
// available on the path.
func Info(w io.Writer, runner unix.Runner) error {
	fmt.Fprintf(w, "xcatctl version: %s\n", constants.CliVersion)

	mgr, err := rpm.Detect(runner)
	if err != nil {
		fmt.Fprintln(w, "Package manager: none found")
	} else {
		fmt.Fprintf(w, "Package manager: %s\n", mgr.Tool())
	}

	tools := []string{
		constants.XcatConfigCommand,
		constants.XcatRestartCommand,
		constants.XcatStatusCommand,
		"systemctl",
	}
	for _, tool := range tools {
		path, ok := runner.LookPath(tool)
		if ok {
			fmt.Fprintf(w, "%s: %s\n", tool, path)
		} else {
			fmt.Fprintf(w, "%s: not found\n", tool)
		}
	}

	return nil
}

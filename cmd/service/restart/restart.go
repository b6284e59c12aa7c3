// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package restart

import (
	"github.com/spf13/cobra"

	"github.com/xcat2/xcatctl/pkg/cmdutil"
	"github.com/xcat2/xcatctl/pkg/commands/service"
	"github.com/xcat2/xcatctl/pkg/unix"
)

const (
	CommandName = "restart"
	helpShort   = "Restart the xcatd daemon"
	helpLong    = `Restart the xcatd daemon, preferring the daemon's own restart tool and
falling back to the registered systemd unit.`
	helpExample = `
xcatctl service restart
`
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   CommandName,
		Short: helpShort,
		Long:  helpLong,
		Args:  cobra.MatchAll(cobra.ExactArgs(0), cobra.OnlyValidArgs),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return RunCmd(cmd)
	}
	cmd.Example = helpExample
	cmdutil.SilenceUsage(cmd)

	return cmd
}

// RunCmd runs the "xcatctl service restart" command.  Failures are
// logged but do not change the exit code, matching the tolerance of
// the reinstall procedure.
func RunCmd(cmd *cobra.Command) error {
	service.Restart(unix.ExecRunner{})
	return nil
}

// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package status

import (
	"github.com/spf13/cobra"

	"github.com/xcat2/xcatctl/pkg/cmdutil"
	"github.com/xcat2/xcatctl/pkg/commands/service"
	"github.com/xcat2/xcatctl/pkg/unix"
)

const (
	CommandName = "status"
	helpShort   = "Check on the xcatd daemon"
	helpLong    = `Run the xCAT status tool if it is installed and report the outcome.`
	helpExample = `
xcatctl service status
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

// RunCmd runs the "xcatctl service status" command.  The outcome is
// logged either way and does not change the exit code.
func RunCmd(cmd *cobra.Command) error {
	service.Status(unix.ExecRunner{})
	return nil
}

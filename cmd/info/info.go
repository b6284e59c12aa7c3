// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package info

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/xcat2/xcatctl/pkg/cmdutil"
	"github.com/xcat2/xcatctl/pkg/commands/info"
	"github.com/xcat2/xcatctl/pkg/unix"
)

const (
	CommandName = "info"
	helpShort   = "Display information about the xCAT environment"
	helpLong    = `Display the xcatctl version, the detected package manager, and the
availability of the xCAT daemon tools.`
	helpExample = `
xcatctl info
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
	cmdutil.SilenceUsage(cmd)
	cmd.Example = helpExample

	return cmd
}

// RunCmd runs the "xcatctl info" command
func RunCmd(cmd *cobra.Command) error {
	return info.Info(os.Stdout, unix.ExecRunner{})
}

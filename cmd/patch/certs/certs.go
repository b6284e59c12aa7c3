// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package certs

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/xcat2/xcatctl/pkg/cmdutil"
	"github.com/xcat2/xcatctl/pkg/commands/patch"
	"github.com/xcat2/xcatctl/pkg/constants"
)

const (
	CommandName = "certs"
	helpShort   = "Patch the xCAT certificate configuration"
	helpLong    = `Comment out the authorityKeyIdentifier lines in the CA template and drop the
server extension from the dockerhost certificate script.  Originals are backed
up next to the patched files the first time they are changed.`
	helpExample = `
xcatctl patch certs
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

// RunCmd runs the "xcatctl patch certs" command
func RunCmd(cmd *cobra.Command) error {
	// The patched files live under /opt/xcat
	if os.Geteuid() != 0 {
		return cmdutil.Exitf(constants.ExitCodeNotRoot, "xcatctl patch certs must be run as root")
	}
	return patch.Certs(patch.DefaultTargets())
}

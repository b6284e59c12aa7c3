// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package reinstall

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/xcat2/xcatctl/pkg/cmdutil"
	"github.com/xcat2/xcatctl/pkg/commands/reinstall"
	"github.com/xcat2/xcatctl/pkg/config"
	"github.com/xcat2/xcatctl/pkg/installer"
	"github.com/xcat2/xcatctl/pkg/unix"
)

const (
	CommandName = "reinstall"
	helpShort   = "Reinstall the xCAT software stack"
	helpLong    = `Remove any installed xCAT packages, reinstall the requested version with the
go-xcat installer, patch the certificate configuration, and restart xcatd.
The version argument accepts "latest", "devel", or a specific version.`
	helpExample = `
xcatctl reinstall
xcatctl reinstall 2.16.5
`
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   CommandName + " [version]",
		Short: helpShort,
		Long:  helpLong,
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return RunCmd(cmd, args)
	}
	cmd.Example = helpExample
	cmdutil.SilenceUsage(cmd)

	return cmd
}

// RunCmd runs the "xcatctl reinstall" command
func RunCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetDefaultConfig()
	if err != nil {
		return err
	}

	version := cfg.Version
	if len(args) > 0 {
		version = args[0]
	}
	err = installer.ValidateVersion(version)
	if err != nil {
		return err
	}

	return reinstall.Reinstall(reinstall.Options{
		Config:  cfg,
		Version: version,
		Runner:  unix.ExecRunner{},
		Euid:    os.Geteuid(),
	})
}

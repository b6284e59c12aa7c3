// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package service

import (
	"github.com/spf13/cobra"

	"github.com/xcat2/xcatctl/cmd/common"
	"github.com/xcat2/xcatctl/cmd/service/restart"
	"github.com/xcat2/xcatctl/cmd/service/status"
)

const (
	CommandName = "service"
	helpShort   = "Manage the xcatd daemon"
	helpLong    = `Restart or check on the xcatd daemon.`
	helpExample = `
xcatctl service <subcommand>
`
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       CommandName,
		Short:     helpShort,
		Long:      helpLong,
		Args:      common.ArgsCheck,
		ValidArgs: []string{restart.CommandName, status.CommandName},
	}
	cmd.Example = helpExample
	cmd.SilenceUsage = true

	cmd.AddCommand(restart.NewCmd())
	cmd.AddCommand(status.NewCmd())
	return cmd
}

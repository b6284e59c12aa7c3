// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package patch

import (
	"github.com/spf13/cobra"

	"github.com/xcat2/xcatctl/cmd/common"
	"github.com/xcat2/xcatctl/cmd/patch/certs"
)

const (
	CommandName = "patch"
	helpShort   = "Patch an xCAT installation"
	helpLong    = `Apply post-install patches to an xCAT installation.`
	helpExample = `
xcatctl patch <subcommand>
`
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       CommandName,
		Short:     helpShort,
		Long:      helpLong,
		Args:      common.ArgsCheck,
		ValidArgs: []string{certs.CommandName},
	}
	cmd.Example = helpExample
	cmd.SilenceUsage = true

	cmd.AddCommand(certs.NewCmd())
	return cmd
}

// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"github.com/cooltrainer/xval/core"
	"github.com/cooltrainer/xval/internal/i18n"
	"github.com/spf13/cobra"
)

func newSerialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serial <serial>",
		Short: "Show manufacturing details encoded in a serial number",
		Long: `Decodes the production line, unit number, manufacture week and factory
country from a 12-digit console serial number. Manufacture dates are the
Monday of the ISO-8601 week.`,
		Example: "  xval serial 407513623105",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := core.DescribeSerial(args[0], i18n.CurrentRegions())
			if err != nil {
				return userError(err)
			}
			return renderSerial(cmd.OutOrStdout(), appConfig.Output, rep)
		},
	}
}

// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"github.com/cooltrainer/xval/core"
	"github.com/spf13/cobra"
)

func newFlagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flags <payload>",
		Short: "Interpret an already-decrypted X value",
		Long: `Interprets 16 hexadecimal digits of decrypted X value (high word first)
without needing the serial number.`,
		Example: "  xval flags 0000000000000801",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := core.Interpret(args[0])
			if err != nil {
				return userError(err)
			}
			return renderDecode(cmd.OutOrStdout(), appConfig.Output, res)
		},
	}
}

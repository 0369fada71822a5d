// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/cooltrainer/xval/core"
	"github.com/cooltrainer/xval/internal/i18n"
	"github.com/cooltrainer/xval/internal/logging"
	"github.com/cooltrainer/xval/internal/xval"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Swapped out by tests.
var (
	clipboardWrite  = clipboard.WriteAll
	stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [serial] [xvalue]",
		Short: "Decrypt an X value and show its secdata flags",
		Long: `Decrypts the X value from System Info using the console serial number and
reports whether the console's secdata is clean. The X value may be entered with
or without dashes. Missing arguments are prompted for when run interactively.`,
		Example: `  xval decode 123456789012 21FE-AAC9-F165-B606
  xval decode 123456789012 21feaac9f165b606 --output json`,
		Args: cobra.MaximumNArgs(2),
		RunE: runDecode,
	}
	cmd.Flags().Bool("copy", false, "copy the flags text to the clipboard")
	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	serial, xvalue, err := decodeArgs(cmd, args)
	if err != nil {
		return err
	}

	res, err := core.Decode(serial, xvalue)
	if err != nil {
		return userError(err)
	}

	if err := renderDecode(cmd.OutOrStdout(), appConfig.Output, res); err != nil {
		return err
	}

	if copyFlags, _ := cmd.Flags().GetBool("copy"); copyFlags {
		if err := clipboardWrite(res.FlagsText); err != nil {
			logging.Warnf("clipboard: %v", err)
			fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.decode.copy_failed", err))
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.decode.copied"))
		}
	}
	return nil
}

// decodeArgs returns the serial and X value from args, prompting for any
// that are missing when stdin is a terminal.
func decodeArgs(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 2 {
		return args[0], args[1], nil
	}
	if !stdinIsTerminal() {
		return "", "", errors.New(i18n.T("cli.error.missing_args"))
	}

	p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	values := append([]string{}, args...)
	for _, id := range []string{"cli.prompt.serial", "cli.prompt.xvalue"}[len(args):] {
		v, err := p.ask(i18n.T(id))
		if err != nil {
			return "", "", err
		}
		values = append(values, v)
	}
	return values[0], values[1], nil
}

// userError turns core errors into localized messages for the terminal.
func userError(err error) error {
	var ve *xval.ValidationError
	if errors.As(err, &ve) {
		switch ve.Field {
		case xval.FieldSerial:
			return errors.New(i18n.T("cli.error.invalid_serial", ve.Value))
		case xval.FieldXValue:
			return errors.New(i18n.T("cli.error.invalid_xvalue", ve.Value))
		}
		return err
	}
	var de *xval.DecodeError
	if errors.As(err, &de) {
		return errors.New(i18n.T("cli.error.decode", de))
	}
	return err
}

// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cooltrainer/xval/core"
	"github.com/cooltrainer/xval/internal/config"
	"github.com/cooltrainer/xval/internal/i18n"
	"github.com/cooltrainer/xval/internal/xval"
	"github.com/cooltrainer/xval/util/slicest"
	"gopkg.in/yaml.v3"
)

// styles holds the lipgloss styles for one output stream. Colors are
// dropped automatically when the stream is not a terminal.
type styles struct {
	key   lipgloss.Style
	good  lipgloss.Style
	bad   lipgloss.Style
	muted lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		key:   r.NewStyle().Bold(true),
		good:  r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		bad:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		muted: r.NewStyle().Faint(true),
	}
}

// field is one "Key: value" line of text output.
type field struct {
	key   string
	value string
}

func writeFields(w io.Writer, st styles, fields []field) error {
	width := 0
	for _, f := range fields {
		if n := lipgloss.Width(f.key); n > width {
			width = n
		}
	}
	indent := strings.Repeat(" ", width+2)
	for _, f := range fields {
		pad := strings.Repeat(" ", width-lipgloss.Width(f.key))
		value := strings.ReplaceAll(f.value, "\n", "\n"+indent)
		if _, err := fmt.Fprintf(w, "%s:%s %s\n", st.key.Render(f.key), pad, value); err != nil {
			return err
		}
	}
	return nil
}

// localizedLabels translates each label, falling back to its English text.
func localizedLabels(labels []xval.Label) []string {
	return slicest.Map(labels, func(l xval.Label) string {
		return i18n.TOr(string(l), l.String())
	})
}

func yesNo(b bool) string {
	if b {
		return i18n.T("cli.yes")
	}
	return i18n.T("cli.no")
}

func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// renderDecode writes a decode result in the configured format.
func renderDecode(w io.Writer, format string, res core.DecodeResult) error {
	if format != config.OutputText {
		return writeStructured(w, format, res)
	}

	st := newStyles(w)
	statusStyle := st.bad
	if res.Status == xval.StatusClean {
		statusStyle = st.good
	}
	labels := localizedLabels(res.Labels)
	flags := strings.Join(labels, "\n")
	if len(labels) == 0 {
		flags = st.muted.Render(i18n.T("cli.none"))
	}

	fields := []field{
		{i18n.T("cli.decode.status"), statusStyle.Render(i18n.TOr(res.Status.MessageID(), res.Status.String()))},
		{i18n.T("cli.decode.valid_pair"), yesNo(res.IsValidPair)},
	}
	if res.Status == xval.StatusFlagged {
		fields = append(fields, field{i18n.T("cli.decode.flags"), flags})
	}
	fields = append(fields, field{i18n.T("cli.decode.payload"), st.muted.Render(res.Payload.String())})
	if err := writeFields(w, st, fields); err != nil {
		return err
	}
	if !res.IsValidPair {
		_, err := fmt.Fprintln(w, st.muted.Render(i18n.T("cli.decode.mismatch_hint")))
		return err
	}
	return nil
}

// renderSerial writes a serial report in the configured format.
func renderSerial(w io.Writer, format string, rep core.SerialReport) error {
	if format != config.OutputText {
		return writeStructured(w, format, rep)
	}

	st := newStyles(w)
	country := st.muted.Render(i18n.T("cli.serial.unknown"))
	if rep.Country != "" {
		country = fmt.Sprintf("%s (%s)", rep.FactoryName, rep.Country)
	}
	return writeFields(w, st, []field{
		{i18n.T("cli.serial.line"), fmt.Sprint(rep.Line)},
		{i18n.T("cli.serial.number"), fmt.Sprintf("%06d", rep.Number)},
		{i18n.T("cli.serial.year"), fmt.Sprint(rep.Year)},
		{i18n.T("cli.serial.week"), fmt.Sprintf("%02d", rep.Week)},
		{i18n.T("cli.serial.date"), rep.MfgDateText},
		{i18n.T("cli.serial.factory"), fmt.Sprintf("%02d", rep.Factory)},
		{i18n.T("cli.serial.country"), country},
	})
}

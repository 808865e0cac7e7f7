package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// renderTable lays rows out under headers. Missing cells render empty.
func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	if len(headers) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	configs := make([]table.ColumnConfig, len(headers))
	for i, h := range headers {
		header[i] = h
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range r {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}
	return tw.Render()
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type statusKind int

const (
	statusOK statusKind = iota
	statusWarn
	statusError
)

const statusLabelWidth = 18

var statusStyles = map[statusKind]struct {
	tag   string
	color color.Attribute
}{
	statusOK:    {"OK", color.FgGreen},
	statusWarn:  {"WARN", color.FgYellow},
	statusError: {"ERROR", color.FgRed},
}

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	style := statusStyles[kind]
	line := fmt.Sprintf("  %-*s [%s]", statusLabelWidth, label+":", style.tag)
	if message != "" {
		line += " " + message
	}
	painter := color.New(style.color)
	if colorize {
		painter.EnableColor()
	} else {
		painter.DisableColor()
	}
	return painter.Sprint(line)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 0, 64)
}

func formatConfidence(confidence float64) string {
	return strconv.FormatFloat(confidence, 'f', 2, 64)
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

package io

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/haijima/pairchain/internal/pair"
	"github.com/jedib0t/go-pretty/v6/table"
)

var Formats = []string{"text", "table", "md", "csv", "tsv", "html", "simple"}

const rule = "------------------------------------"

func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.Newf("unknown format: %s", format)
	}
	return nil
}

// PrintPairs writes pairs in the given format. The title is only used by the text format.
func PrintPairs(w io.Writer, title string, pairs []pair.Pair, format string) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}
	if format == "text" {
		return printText(w, title, pairs)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "First", "Second"})
	for i, p := range pairs {
		t.AppendRow(table.Row{i + 1, p.First, p.Second})
	}

	switch format {
	case "table":
		t.Render()
	case "md":
		t.RenderMarkdown()
	case "csv":
		t.RenderCSV()
	case "tsv":
		t.RenderTSV()
	case "html":
		t.RenderHTML()
	case "simple":
		t.Style().Options.DrawBorder = false
		t.Style().Options.SeparateHeader = false
		t.Style().Options.SeparateRows = false
		t.Style().Box.MiddleVertical = " "
		t.Render()
	}
	return nil
}

func printText(w io.Writer, title string, pairs []pair.Pair) error {
	var sb strings.Builder
	fmt.Fprintln(&sb, title)
	fmt.Fprintln(&sb, rule)
	for _, p := range pairs {
		fmt.Fprintln(&sb, p.String())
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

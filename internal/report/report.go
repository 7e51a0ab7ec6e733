// Package report renders aggregation results for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/specialistvlad/schematicgo/internal/registry"
)

// Output formats.
const (
	FormatPlain = "plain"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Formats lists every supported output format.
var Formats = []string{FormatPlain, FormatTable, FormatJSON}

// Entry is the result of one schematic.
type Entry struct {
	Name      string            `json:"name"`
	Path      string            `json:"path"`
	Aggregate string            `json:"aggregate"`
	Value     uint64            `json:"value"`
	Details   []registry.Detail `json:"details,omitempty"`
}

// Render writes entries to w in the given format.
func Render(w io.Writer, format string, entries []Entry) error {
	switch format {
	case FormatPlain:
		return renderPlain(w, entries)
	case FormatTable:
		return renderTable(w, entries)
	case FormatJSON:
		return renderJSON(w, entries)
	default:
		return fmt.Errorf("unknown output format '%s' (known: %s)", format, strings.Join(Formats, ", "))
	}
}

// renderPlain prints the bare value for a single entry and "name: value"
// lines otherwise.
func renderPlain(w io.Writer, entries []Entry) error {
	if len(entries) == 1 {
		_, err := fmt.Fprintln(w, entries[0].Value)
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s: %d\n", e.Name, e.Value); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, entries []Entry) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Schematic", "Aggregate", "Value"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Name, e.Aggregate, e.Value})
	}
	t.Render()

	for _, e := range entries {
		if len(e.Details) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(w, "\n%s:\n", e.Name)

		d := table.NewWriter()
		d.SetOutputMirror(w)
		d.SetStyle(table.StyleLight)
		d.AppendHeader(table.Row{"Symbol", "Column", "Row", "Numbers", "Contribution"})
		for _, detail := range e.Details {
			d.AppendRow(table.Row{detail.Symbol, detail.Column, detail.Row, joinNumbers(detail.Numbers), detail.Contribution})
		}
		d.AppendFooter(table.Row{"", "", "", "Total", e.Value})
		d.Render()
	}
	return nil
}

func renderJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func joinNumbers(numbers []uint64) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, " × ")
}

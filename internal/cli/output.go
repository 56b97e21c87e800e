package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pfrederiksen/hof-voting/internal/voting"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatTable OutputFormat = "table"
)

// WriteOutput writes the result set in the specified format
func WriteOutput(w io.Writer, results *voting.ResultSet, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, results)
	case FormatTable:
		return writeTable(w, results)
	case FormatText:
		return writeText(w, results)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the result set as indented JSON
func writeJSON(w io.Writer, results *voting.ResultSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

// writeText outputs the result set as human-readable text
func writeText(w io.Writer, results *voting.ResultSet) error {
	fmt.Fprintf(w, "%d Hall of Fame voting: %d ballots cast, %d entrants\n\n",
		results.Year, results.TotalBallots, len(results.Records))

	for _, record := range results.Records {
		fields := make([]string, 0, len(record.Fields))
		for _, field := range record.Fields {
			fields = append(fields, strings.TrimSpace(field))
		}

		if record.PlayerID != "" {
			fmt.Fprintf(w, "%s [%s]\n", strings.Join(fields, " | "), record.PlayerID)
		} else {
			fmt.Fprintf(w, "%s\n", strings.Join(fields, " | "))
		}
	}

	return nil
}

// writeTable outputs the result set as a rendered table
func writeTable(w io.Writer, results *voting.ResultSet) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	// Header cells render uppercased by default; keep the column names as
	// parsed, including the derived "playerId".
	t.Style().Format.Header = text.FormatDefault
	t.SetTitle(fmt.Sprintf("%d Hall of Fame voting (%d ballots cast)", results.Year, results.TotalBallots))

	header := table.Row{}
	for _, column := range results.ColumnNames() {
		header = append(header, column)
	}
	t.AppendHeader(header)

	for _, record := range results.Records {
		row := table.Row{}
		for _, field := range record.Fields {
			row = append(row, strings.TrimSpace(field))
		}
		row = append(row, record.PlayerID)
		t.AppendRow(row)
	}

	t.Render()
	return nil
}

package frame

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Render writes the frame to w in the given format: "table" (default),
// "json", "csv", or "md"/"markdown".
func (df *DataFrame) Render(w io.Writer, format string) error {
	switch format {
	case "json":
		return df.renderJSON(w)
	case "csv":
		return df.renderCSV(w)
	case "md", "markdown":
		return df.renderMarkdown(w)
	default:
		return df.renderTable(w)
	}
}

// String renders the frame as a bordered table.
func (df *DataFrame) String() string {
	var sb strings.Builder
	_ = df.renderTable(&sb)
	return sb.String()
}

func (df *DataFrame) renderTable(w io.Writer) error {
	if df.NumRows() == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	names := df.Names()
	headerRow := make(table.Row, len(names))
	for i, name := range names {
		headerRow[i] = name
	}
	t.AppendHeader(headerRow)

	for r := 0; r < df.NumRows(); r++ {
		row := make(table.Row, len(df.cols))
		for c := range df.cols {
			row[c] = formatValue(df.cols[c].Values[r])
		}
		t.AppendRow(row)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", df.NumRows())
	return nil
}

func (df *DataFrame) renderJSON(w io.Writer) error {
	names := df.Names()
	records := make([]map[string]any, df.NumRows())
	for r := range records {
		record := make(map[string]any, len(names))
		for c, name := range names {
			record[name] = df.cols[c].Values[r]
		}
		records[r] = record
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func (df *DataFrame) renderCSV(w io.Writer) error {
	names := df.Names()
	_, _ = fmt.Fprintln(w, strings.Join(names, ","))

	for r := 0; r < df.NumRows(); r++ {
		values := make([]string, len(df.cols))
		for c := range df.cols {
			values[c] = escapeCSV(formatValue(df.cols[c].Values[r]))
		}
		_, _ = fmt.Fprintln(w, strings.Join(values, ","))
	}
	return nil
}

func (df *DataFrame) renderMarkdown(w io.Writer) error {
	if df.NumRows() == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	names := df.Names()
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(names, " | "))

	seps := make([]string, len(names))
	for i := range seps {
		seps[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))

	for r := 0; r < df.NumRows(); r++ {
		values := make([]string, len(df.cols))
		for c := range df.cols {
			values[c] = formatValue(df.cols[c].Values[r])
		}
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(values, " | "))
	}
	return nil
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

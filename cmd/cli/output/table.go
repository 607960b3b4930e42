package output

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable prints headers and rows as an ASCII table on stdout.
func RenderTable(headers []string, rows [][]interface{}) {
	RenderTableTo(os.Stdout, headers, rows)
}

// RenderTableTo writes the table to an arbitrary writer.
func RenderTableTo(w io.Writer, headers []string, rows [][]interface{}) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	t.AppendHeader(header)

	for _, row := range rows {
		t.AppendRow(table.Row(row))
	}

	t.Render()
}

package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// renderTable writes a bordered table to out. Short rows are padded so every
// row has a cell per header.
func renderTable(out io.Writer, headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleLight)

	header := make(table.Row, len(headers))
	for i, name := range headers {
		header[i] = name
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		cells := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				cells[i] = row[i]
			} else {
				cells[i] = ""
			}
		}
		tw.AppendRow(cells)
	}

	tw.Render()
}

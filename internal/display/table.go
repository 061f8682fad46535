package display

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Align selects column alignment for [RenderTable].
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

func (a Align) text() text.Align {
	if a == AlignRight {
		return text.AlignRight
	}
	return text.AlignLeft
}

// Column describes one table column. The header and its cells share Align.
type Column struct {
	Header string
	Align  Align
}

// RenderTable renders rows in a rounded box under columns. Headers are
// printed as given, not upper-cased. Short rows are padded with empty cells
// and cells beyond the last column are dropped.
func RenderTable(columns []Column, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, c := range columns {
		header[i] = c.Header
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       c.Align.text(),
			AlignHeader: c.Align.text(),
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, cells := range rows {
		row := make(table.Row, len(columns))
		for i := range row {
			row[i] = ""
			if i < len(cells) {
				row[i] = cells[i]
			}
		}
		tw.AppendRow(row)
	}
	return tw.Render()
}

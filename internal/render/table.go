package render

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"regcli/internal/config"
)

// Alignment controls how a column's cells are aligned.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// TableOptions selects the border style and whether headers are coloured.
type TableOptions struct {
	Style string
	Color bool
}

// Table renders rows under headers. Short rows are padded; extra cells are
// dropped.
func Table(headers []string, rows [][]string, aligns []Alignment, opts TableOptions) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(tableStyle(opts))

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == AlignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func tableStyle(opts TableOptions) table.Style {
	var style table.Style
	switch opts.Style {
	case config.TableStyleLight:
		style = table.StyleLight
	case config.TableStyleASCII:
		style = table.StyleDefault
	default:
		style = table.StyleRounded
	}
	if opts.Color {
		style.Color.Header = text.Colors{text.Bold, text.FgCyan}
	}
	return style
}

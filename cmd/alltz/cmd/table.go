package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Column styles for CLI listings
var (
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	plainStyle = lipgloss.NewStyle()
)

// listTable returns a borderless table whose columns use the given styles.
// Columns beyond the styles are plain; headers are bold.
func listTable(columns ...lipgloss.Style) *table.Table {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			if col < len(columns) {
				return columns[col].PaddingRight(2)
			}
			return plainStyle.PaddingRight(2)
		})
}

func writeTable(w io.Writer, t *table.Table) error {
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

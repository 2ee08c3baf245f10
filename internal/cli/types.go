package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pipseed/pipseed/internal/seed"
)

// Types prints the available data types with their fields.
func Types(out io.Writer) error {
	r := lipgloss.NewRenderer(out)
	header := r.NewStyle().Bold(true).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Faint(true)).
		Headers("TYPE", "DESCRIPTION", "FIELDS").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, spec := range seed.Specs() {
		t.Row(string(spec.Type), spec.Description, strings.Join(spec.Fields, ", "))
	}

	_, err := fmt.Fprintln(out, t.Render())
	return err
}

package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pipseed/pipseed/internal/command"
)

// Separator closes every block of the help table.
const Separator = "----------------------"

// view renders shell text. Styles are bound to the output writer, so
// anything that is not a terminal gets plain text.
type view struct {
	out io.Writer

	title   lipgloss.Style
	label   lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

func newView(out io.Writer) *view {
	r := lipgloss.NewRenderer(out)
	return &view{
		out:     out,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label:   r.NewStyle().Foreground(lipgloss.Color("241")),
		warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (v *view) banner(text string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintln(v.out, v.title.Render(line))
	}
	fmt.Fprintln(v.out)
}

func (v *view) prompt(text string) {
	fmt.Fprint(v.out, text+" ")
}

func (v *view) blank() {
	fmt.Fprintln(v.out)
}

func (v *view) line(text string) {
	fmt.Fprintln(v.out, text)
}

func (v *view) problem(text string) {
	fmt.Fprintln(v.out, v.warning.Render(text))
}

func (v *view) failed(err error) {
	fmt.Fprintln(v.out, v.failure.Render("Error: "+err.Error()))
}

func (v *view) help(descriptors []command.Descriptor) {
	for _, d := range descriptors {
		fmt.Fprintln(v.out, v.label.Render("Short command :")+" "+d.Short)
		fmt.Fprintln(v.out, v.label.Render("Long command  :")+" "+d.Long)
		fmt.Fprintln(v.out, v.label.Render("Description   :")+" "+d.Description)
		fmt.Fprintln(v.out, Separator)
	}
}

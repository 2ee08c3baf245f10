package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Render renders the status data to a string
func Render(data *Data) string {
	sections := []string{
		renderHeader(data),
		renderConfigFiles(data),
		renderGenerate(data),
		renderLog(data),
		renderTypes(data),
	}
	return strings.Join(sections, "\n\n") + "\n"
}

func renderHeader(data *Data) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📂 Current directory: ") + valueStyle.Render(data.CurrentDir) + "\n")
	b.WriteString(titleStyle.Render("📦 Version: ") + valueStyle.Render(data.Version))
	return b.String()
}

func renderConfigFiles(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("📝 Configuration layers:") + "\n")
	b.WriteString("   0. " + subtleStyle.Render("built-in defaults") + " " + successStyle.Render("✓"))

	for i, file := range data.ConfigFiles {
		mark := successStyle.Render("✓")
		note := ""
		switch {
		case !file.Exists:
			mark = errorStyle.Render("✗")
			note = subtleStyle.Render(" (not found)")
		case !file.Loaded:
			mark = errorStyle.Render("✗")
			note = subtleStyle.Render(" (not loaded)")
		}
		b.WriteString(fmt.Sprintf("\n   %d. %s %s%s",
			i+1,
			valueStyle.Render(file.Path+" ("+file.Scope+")"),
			mark,
			note))
	}

	return b.String()
}

func renderGenerate(data *Data) string {
	g := data.Generate
	seed := "random"
	if g.Seed != 0 {
		seed = fmt.Sprintf("%d", g.Seed)
	}
	output := "stdout"
	if g.Output != "" {
		output = g.Output
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render("🌱 Generate defaults:") + "\n")
	b.WriteString(keyValue("Count", fmt.Sprintf("%d", g.Count)) + "\n")
	b.WriteString(keyValue("Format", g.Format) + "\n")
	b.WriteString(keyValue("Pretty", fmt.Sprintf("%t", g.Pretty)) + "\n")
	b.WriteString(keyValue("Table", g.Table) + "\n")
	b.WriteString(keyValue("Seed", seed) + "\n")
	b.WriteString(keyValue("Output", output))
	return b.String()
}

func renderLog(data *Data) string {
	target := "stderr"
	if data.Log.File != "" {
		target = fmt.Sprintf("%s (rotated at %d MB, %d backups)", data.Log.File, data.Log.MaxSizeMB, data.Log.MaxBackups)
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render("📜 Logging:") + "\n")
	b.WriteString(keyValue("Level", data.Log.Level) + "\n")
	b.WriteString(keyValue("Target", target))
	return b.String()
}

func renderTypes(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(fmt.Sprintf("🗂  Data types (%d):", len(data.Types))))
	for _, t := range data.Types {
		b.WriteString(fmt.Sprintf("\n   %s %s", valueStyle.Render(t.Name), subtleStyle.Render(fmt.Sprintf("(%d fields)", t.Fields))))
	}
	return b.String()
}

func keyValue(key, value string) string {
	return "   " + keyStyle.Render(key+": ") + valueStyle.Render(value)
}

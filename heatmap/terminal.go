package heatmap

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	terminalBlock      = "■"
	terminalLabelWidth = 4
)

var terminalLabelStyle = lipgloss.NewStyle().
	Width(terminalLabelWidth).
	Foreground(lipgloss.Color("#888888"))

// RenderTerminal draws the grid with colored blocks, one character column
// pair per week.
func RenderTerminal(g *Grid) string {
	var sb strings.Builder

	// month header
	header := []rune(strings.Repeat(" ", g.WeekCount*2))
	next := 0
	for _, m := range g.Months {
		pos := m.Column * 2
		text := []rune(m.Text)
		if pos < next || pos+len(text) > len(header) {
			continue
		}
		copy(header[pos:], text)
		next = pos + len(text) + 1
	}
	sb.WriteString(terminalLabelStyle.Render(""))
	sb.WriteString(strings.TrimRight(string(header), " "))
	sb.WriteString("\n")

	labels := make(map[int]string, len(g.Weekdays))
	for _, w := range g.Weekdays {
		labels[w.Row] = w.Text
	}

	for row := range 7 {
		sb.WriteString(terminalLabelStyle.Render(labels[row]))
		for col := range g.WeekCount {
			i := col*7 + row
			if i >= len(g.Cells) {
				break
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(g.Cells[i].Fill))
			sb.WriteString(style.Render(terminalBlock))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	if len(g.Legend) > 0 {
		sb.WriteString("\n")
		sb.WriteString(terminalLabelStyle.Render(""))
		for i, e := range g.Legend {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render(terminalBlock))
			sb.WriteString(" ")
			sb.WriteString(e.Label)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

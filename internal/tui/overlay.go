package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlayCentered draws box over the middle of base, line by line, keeping
// the base visible on either side. The result is exactly height lines.
func overlayCentered(base, box string, width, height int) string {
	boxWidth, boxHeight := lipgloss.Size(box)
	rows := strings.Split(base, "\n")
	for len(rows) < height {
		rows = append(rows, "")
	}
	rows = rows[:height]

	x := max((width-boxWidth)/2, 0)
	y := max((height-boxHeight)/2, 0)
	for i, line := range strings.Split(box, "\n") {
		row := y + i
		if row >= height {
			break
		}
		under := lipgloss.PlaceHorizontal(width, lipgloss.Left, rows[row])
		left := lipgloss.PlaceHorizontal(x, lipgloss.Left, ansi.Truncate(under, x, ""))
		line = lipgloss.PlaceHorizontal(boxWidth, lipgloss.Left, line)
		rows[row] = left + line + ansi.TruncateLeft(under, x+boxWidth, "")
	}
	return strings.Join(rows, "\n")
}

// clip shortens s to width cells, marking the cut with an ellipsis.
func clip(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

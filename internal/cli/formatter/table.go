package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders an aligned table with a header separator line. Columns
// whose index is listed in rightAlign are padded on the left, which suits
// hours, money and percentages.
func RenderTable(headers []string, rows [][]string, rightAlign ...int) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	right := make([]bool, cols)
	for _, i := range rightAlign {
		if i >= 0 && i < cols {
			right[i] = true
		}
	}

	// Widths are measured on visible text so ANSI sequences don't count.
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2

	var b strings.Builder
	writeCell := func(i int, text, styled string) {
		pad := max(widths[i]-lipgloss.Width(text), 0)
		if right[i] {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(styled)
		} else {
			b.WriteString(styled)
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}

	for i, h := range headers {
		writeCell(i, h, StyleHeader.Render(h))
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			writeCell(i, cell, cell)
		}
		b.WriteString("\n")
	}

	return b.String()
}

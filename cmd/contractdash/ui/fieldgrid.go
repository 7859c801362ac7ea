package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FieldGrid renders labeled values in aligned columns, used for the
// contract metadata block on the detail page.
type FieldGrid struct {
	fields [][2]string
}

// NewFieldGrid creates an empty grid.
func NewFieldGrid() *FieldGrid {
	return &FieldGrid{}
}

// Add appends one label/value pair.
func (g *FieldGrid) Add(label, value string) {
	g.fields = append(g.fields, [2]string{label, value})
}

// View renders the grid using the provided styles.
func (g *FieldGrid) View(styles Styles) string {
	if len(g.fields) == 0 {
		return ""
	}

	labelWidth := 0
	for _, f := range g.fields {
		if w := lipgloss.Width(f[0]); w > labelWidth {
			labelWidth = w
		}
	}

	labelStyle := styles.Muted.Width(labelWidth + 2)
	valueStyle := styles.Bold

	var sb strings.Builder
	for _, f := range g.fields {
		sb.WriteString(labelStyle.Render(f[0]))
		sb.WriteString(valueStyle.Render(f[1]))
		sb.WriteString("\n")
	}
	return sb.String()
}

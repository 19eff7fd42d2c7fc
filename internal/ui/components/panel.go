package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmaths/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked sections
// so that boxes line up inside a Panel.
func ContentWidth(frameWidth int) int {
	// Leave room for the panel border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Panel wraps content in a double-border frame filling width x height,
// with the content centered both ways.
func Panel(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded-border box cw columns wide. The border
// and padding leave cw-6 columns for content.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Align(lipgloss.Center).
		Padding(0, 2).
		Render(content)
}

// Centered renders s centered in a line cw columns wide.
func Centered(s string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(s)
}

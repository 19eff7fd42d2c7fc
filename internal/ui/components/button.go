package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmaths/internal/ui/theme"
)

// ButtonWidth is the fixed width of menu buttons.
const ButtonWidth = 22

// ButtonState selects how a button is drawn.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonSelected
	ButtonDisabled
)

// RenderButton draws a bordered button of the given width.
func RenderButton(label string, state ButtonState, width int) string {
	switch state {
	case ButtonSelected:
		return theme.ButtonActive.Width(width).Align(lipgloss.Center).Render("▸ " + label)
	case ButtonDisabled:
		return theme.ButtonDisabled.Width(width).Align(lipgloss.Center).Render(label)
	default:
		return theme.ButtonInactive.Width(width).Align(lipgloss.Center).Render(label)
	}
}

package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmaths/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██╗   ██╗██╗ ██████╗██╗  ██╗
 ██╔═══██╗██║   ██║██║██╔════╝██║ ██╔╝
 ██║   ██║██║   ██║██║██║     █████╔╝
 ██║▄▄ ██║██║   ██║██║██║     ██╔═██╗
 ╚██████╔╝╚██████╔╝██║╚██████╗██║  ██╗
  ╚══▀▀═╝  ╚═════╝ ╚═╝ ╚═════╝╚═╝  ╚═╝
 ███╗   ███╗ █████╗ ████████╗██╗  ██╗███████╗
 ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║██╔════╝
 ██╔████╔██║███████║   ██║   ███████║███████╗
 ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║╚════██║
 ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║███████║
 ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚══════╝`

const bannerCompact = "Q U I C K   M A T H S"

// Banner art needs 46 columns and 13 rows.
const (
	bannerMinWidth  = 48
	bannerMinHeight = 13
)

// RenderBanner returns the QUICK MATHS banner styled in the primary color.
// It falls back to a one-line title when the area is too small for the art.
func RenderBanner(width, height int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth || height < bannerMinHeight {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

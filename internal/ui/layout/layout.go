package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmaths/internal/ui/theme"
)

// MinWidth and MinHeight are the smallest terminal the frame is drawn in.
const (
	MinWidth  = 80
	MinHeight = 24
)

const appName = "Quick Maths"

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Frame is the chrome drawn around every screen: a header bar with the app
// name, the screen title and a status, and a footer bar of key hints.
type Frame struct {
	Title  string
	Status string
	Hints  []KeyHint
	Width  int
	Height int
}

// TooSmall reports whether the terminal is below the minimum size.
func (f Frame) TooSmall() bool {
	return f.Width < MinWidth || f.Height < MinHeight
}

// Render draws the frame. body is called with the space left between the
// header and the footer. A terminal below the minimum size gets a resize
// message instead.
func (f Frame) Render(body func(width, height int) string) string {
	if f.TooSmall() {
		return f.tooSmall()
	}

	header := f.header()
	footer := f.footer()
	height := max(f.Height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := lipgloss.NewStyle().
		Width(f.Width).
		Height(height).
		MaxHeight(height).
		Render(body(f.Width, height))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (f Frame) tooSmall() string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(f.Width).
		Height(f.Height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, f.Width, f.Height,
		))
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// header puts the app name on the left, the title in the middle and the
// status on the right.
func (f Frame) header() string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  " + appName)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(f.Title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(f.Status)

	inner := max(f.Width-4, 0)
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	return bar(left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right, f.Width)
}

func (f Frame) footer() string {
	parts := make([]string, 0, len(f.Hints))
	for _, h := range f.Hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	return bar("  "+strings.Join(parts, "   "), f.Width)
}

package help

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmaths/internal/screen"
	"github.com/abhisek/quickmaths/internal/ui/components"
	"github.com/abhisek/quickmaths/internal/ui/theme"
)

type entry struct {
	key, desc string
}

var sections = []struct {
	title   string
	entries []entry
}{
	{"Menus", []entry{
		{"↑ ↓", "move"},
		{"Enter", "select"},
		{"Esc", "go back"},
		{"Ctrl+C", "quit at any time"},
	}},
	{"Questions", []entry{
		{"1-4", "pick a choice"},
		{"Enter", "submit, then go to the next question"},
		{"← →", "revisit answered questions"},
		{"PgUp", "previous question while typing"},
		{"Esc", "leave the test"},
	}},
	{"Answers", []entry{
		{"Whole numbers", "type digits, with - for negatives"},
		{"Decimals", "give the number of places asked for"},
	}},
}

// HelpScreen lists the controls.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)

// New creates a new HelpScreen.
func New() *HelpScreen {
	return &HelpScreen{}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return h, nil
}

func (h *HelpScreen) Title() string {
	return "Help"
}

func (h *HelpScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	keyStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)

	var lines []string
	for i, sec := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, theme.Title.Render(sec.title))
		for _, e := range sec.entries {
			lines = append(lines, fmt.Sprintf("  %s %s",
				keyStyle.Render(fmt.Sprintf("%-14s", e.key)),
				theme.Body.Render(e.desc)))
		}
	}

	body := lipgloss.NewStyle().Width(cw).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

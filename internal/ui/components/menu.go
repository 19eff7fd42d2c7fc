package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmaths/internal/ui/theme"
)

// MenuItem is one entry in a Menu. A disabled item is drawn greyed out and
// cannot be selected.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions. Arrow keys move the selection, Enter
// runs the selected item and the digits 1-9 run an item directly.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu returns a menu with its first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// Init implements the bubbletea component convention.
func (m Menu) Init() tea.Cmd {
	return nil
}

// move selects the next enabled item in direction dir, staying put at
// either end.
func (m *Menu) move(dir int) {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m *Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) || m.Items[i].Disabled {
		return nil
	}
	m.Selected = i
	if m.Items[i].Action == nil {
		return nil
	}
	return m.Items[i].Action()
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k", "shift+tab":
		m.move(-1)
	case "down", "j", "tab":
		m.move(1)
	case "enter":
		return m, m.activate(m.Selected)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			return m, m.activate(int(key[0] - '1'))
		}
	}
	return m, nil
}

// View renders the menu as plain lines.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			b.WriteString(theme.Disabled.Render("    " + item.Label))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ " + item.Label))
		default:
			b.WriteString(theme.Unselected.Render("    " + item.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ButtonView renders each item as a bordered button, centered in cw
// columns.
func (m Menu) ButtonView(cw int) string {
	buttons := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		state := ButtonNormal
		switch {
		case item.Disabled:
			state = ButtonDisabled
		case i == m.Selected:
			state = ButtonSelected
		}
		buttons = append(buttons, RenderButton(item.Label, state, ButtonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

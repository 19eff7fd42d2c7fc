package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quickmaths/internal/ui/theme"
)

// MultiChoice is a numbered multiple-choice selector. Once Locked it shows
// the correct option in green and a wrong chosen option in red.
type MultiChoice struct {
	Options      []string
	Selected     int
	Locked       bool
	ChosenIndex  int
	CorrectIndex int
}

// NewMultiChoice creates an unlocked selector with the first option selected.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options:      options,
		ChosenIndex:  -1,
		CorrectIndex: -1,
	}
}

// Lock freezes the selector on chosen and marks correct.
func (m *MultiChoice) Lock(chosen, correct int) {
	m.Locked = true
	m.ChosenIndex = chosen
	m.CorrectIndex = correct
	if chosen >= 0 {
		m.Selected = chosen
	}
}

// Update moves the selection with arrow keys. Choosing is left to the
// caller so it can grade the answer.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	}

	return m, nil
}

// IndexForKey maps the digit keys "1".."n" to an option index.
func (m MultiChoice) IndexForKey(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	idx := int(key[0] - '1')
	return idx, idx < len(m.Options)
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		switch {
		case m.Locked && i == m.CorrectIndex:
			b.WriteString(theme.Correct.Render(line + "  ✓"))
		case m.Locked && i == m.ChosenIndex:
			b.WriteString(theme.Incorrect.Render(line + "  ✗"))
		case m.Locked:
			b.WriteString(theme.Disabled.Render(line))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

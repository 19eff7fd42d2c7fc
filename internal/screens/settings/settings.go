package settings

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmaths/internal/problemgen"
	"github.com/abhisek/quickmaths/internal/screen"
	"github.com/abhisek/quickmaths/internal/session"
	"github.com/abhisek/quickmaths/internal/ui/components"
	"github.com/abhisek/quickmaths/internal/ui/layout"
	"github.com/abhisek/quickmaths/internal/ui/theme"
)

// Rows, top to bottom: difficulty, one per content area, question count.
const (
	rowDifficulty = 0
	rowFirstArea  = 1
)

// SettingsScreen edits the test settings. Every change is reported through
// onChange, so leaving the screen needs no save step.
type SettingsScreen struct {
	settings session.Settings
	onChange func(session.Settings)
	areas    []problemgen.ContentArea
	cursor   int
	notice   string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a settings screen starting from current.
func New(current session.Settings, onChange func(session.Settings)) *SettingsScreen {
	return &SettingsScreen{
		settings: current,
		onChange: onChange,
		areas:    problemgen.AllContentAreas(),
	}
}

// Settings returns the settings as currently edited.
func (s *SettingsScreen) Settings() session.Settings {
	return s.settings
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "←→/Space", Description: "Change"},
		{Key: "Esc", Description: "Done"},
	}
}

func (s *SettingsScreen) rowCount() int {
	return len(s.areas) + 2
}

func (s *SettingsScreen) countRow() int {
	return rowFirstArea + len(s.areas)
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		s.notice = ""
	case "down", "j", "tab":
		if s.cursor < s.rowCount()-1 {
			s.cursor++
		}
		s.notice = ""
	case "left", "h":
		s.change(-1)
	case "right", "l", "enter", "space":
		s.change(1)
	}
	return s, nil
}

// change adjusts the value under the cursor. dir is -1 or +1 and only
// matters for the question count.
func (s *SettingsScreen) change(dir int) {
	next := s.settings
	s.notice = ""

	switch {
	case s.cursor == rowDifficulty:
		if next.Difficulty == problemgen.Normal {
			next.Difficulty = problemgen.Hard
		} else {
			next.Difficulty = problemgen.Normal
		}

	case s.cursor == s.countRow():
		if dir > 0 {
			next.QuestionCount = session.NextQuestionCount(next.QuestionCount)
		} else {
			next.QuestionCount = previousQuestionCount(next.QuestionCount)
		}

	default:
		area := s.areas[s.cursor-rowFirstArea]
		updated, ok := next.WithArea(area, !next.Enabled(area))
		if !ok {
			s.notice = "At least one content area must stay selected."
			return
		}
		next = updated
	}

	s.settings = next
	if s.onChange != nil {
		s.onChange(next)
	}
}

func previousQuestionCount(n int) int {
	counts := session.QuestionCounts
	i := slices.Index(counts, n)
	if i <= 0 {
		return counts[len(counts)-1]
	}
	return counts[i-1]
}

func (s *SettingsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var rows []string
	rows = append(rows, s.renderRow(rowDifficulty, "Difficulty", "‹ "+s.settings.Difficulty.DisplayName()+" ›"))
	rows = append(rows, "", theme.Subtitle.Render("Content areas"))
	for i, area := range s.areas {
		box := "[ ]"
		if s.settings.Enabled(area) {
			box = "[x]"
		}
		rows = append(rows, s.renderRow(rowFirstArea+i, area.DisplayName(), box))
	}
	rows = append(rows, "")
	rows = append(rows, s.renderRow(s.countRow(), "Questions", fmt.Sprintf("‹ %d ›", s.settings.QuestionCount)))

	body := lipgloss.NewStyle().Width(cw - 6).Render(strings.Join(rows, "\n"))

	sections := []string{
		components.Centered(theme.Title.Render("Test settings"), cw),
		components.Card(body, cw),
	}
	if s.notice != "" {
		sections = append(sections, components.Centered(
			lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice), cw))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

func (s *SettingsScreen) renderRow(row int, label, value string) string {
	labelStyle := theme.Unselected
	prefix := "  "
	if row == s.cursor {
		labelStyle = theme.Selected
		prefix = "▸ "
	}
	return labelStyle.Render(fmt.Sprintf("%s%-16s", prefix, label)) + " " + theme.Value.Render(value)
}

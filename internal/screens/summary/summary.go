package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmaths/internal/display"
	"github.com/abhisek/quickmaths/internal/router"
	"github.com/abhisek/quickmaths/internal/screen"
	"github.com/abhisek/quickmaths/internal/session"
	"github.com/abhisek/quickmaths/internal/ui/components"
	"github.com/abhisek/quickmaths/internal/ui/layout"
	"github.com/abhisek/quickmaths/internal/ui/theme"
)

// Actions build the screen that replaces the summary when a retry is
// chosen. RetryIncorrect is nil when every answer was correct. A nil
// screen leaves the summary in place.
type Actions struct {
	RetryAll       func() screen.Screen
	RetryIncorrect func() screen.Screen
}

// SummaryScreen displays the result of a finished test.
type SummaryScreen struct {
	summary *session.Summary
	menu    components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary, actions Actions) *SummaryScreen {
	replaceWith := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			next := build()
			if next == nil {
				return nil
			}
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	}

	items := []components.MenuItem{
		{Label: "RETRY ALL", Action: replaceWith(actions.RetryAll)},
		{Label: "RETRY INCORRECT", Disabled: actions.RetryIncorrect == nil},
		{Label: "MENU", Action: func() tea.Cmd {
			return func() tea.Msg { return router.HomeMsg{} }
		}},
	}
	if actions.RetryIncorrect != nil {
		items[1].Action = replaceWith(actions.RetryIncorrect)
	}

	return &SummaryScreen{
		summary: summary,
		menu:    components.NewMenu(items),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	cw := components.ContentWidth(width)
	var sections []string

	sections = append(sections, components.Centered(theme.Title.Render("Test complete!"), cw))

	scoreStyle := theme.Correct
	if sum.Accuracy < 0.5 {
		scoreStyle = theme.Incorrect
	}
	stats := fmt.Sprintf("%s   %s   %s",
		scoreStyle.Render(fmt.Sprintf("Score %d/%d", sum.Correct, sum.Total)),
		theme.Body.Render(fmt.Sprintf("Accuracy %.0f%%", sum.Accuracy*100)),
		theme.Subtitle.Render("Time "+display.FormatElapsed(sum.Elapsed)))
	if sum.BestStreak > 1 {
		stats += "\n" + theme.Hint.Render(fmt.Sprintf("Best streak %d in a row", sum.BestStreak))
	}
	sections = append(sections, components.Card(stats, cw))

	// Buttons take four rows each; keep room for the missed list above.
	room := height - 8 - 4*len(s.menu.Items)
	if missed := renderMissed(sum.Missed, cw, room); missed != "" {
		sections = append(sections, missed)
	}

	if height < 8+4*len(s.menu.Items) {
		sections = append(sections, components.Centered(s.menu.View(), cw))
	} else {
		sections = append(sections, s.menu.ButtonView(cw))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

// renderMissed lists missed questions in at most rows lines, noting how
// many did not fit.
func renderMissed(missed []session.MissedQuestion, cw, rows int) string {
	if len(missed) == 0 || rows < 2 {
		return ""
	}

	lines := []string{theme.Subtitle.Render("Missed questions")}
	shown := min(len(missed), rows-1)
	if shown < len(missed) {
		shown--
	}
	for _, m := range missed[:max(shown, 0)] {
		prompt := m.Prompt
		if limit := cw - 20; limit > 8 && lipgloss.Width(prompt) > limit {
			prompt = string([]rune(prompt)[:limit-1]) + "…"
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s",
			theme.Subtitle.Render(fmt.Sprintf("%2d.", m.Number)),
			theme.Body.Render(prompt),
			theme.Correct.Render("→ "+m.Correct)))
	}
	if rest := len(missed) - max(shown, 0); rest > 0 {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("…and %d more", rest)))
	}
	return lipgloss.NewStyle().Width(cw).Render(strings.Join(lines, "\n"))
}

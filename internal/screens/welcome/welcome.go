package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmaths/internal/router"
	"github.com/abhisek/quickmaths/internal/screen"
	"github.com/abhisek/quickmaths/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

const tagline = "Sharpen your maths, one question at a time."

// operators light up one by one during the first phase, then cycle colors.
var operators = []string{"+", "−", "×", "÷", "√", "²", "π"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before handing over to the next
// screen. Any key skips the animation.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will be replaced by the screen produced
// by next. next is called once, on the first key press.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		next: next,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	if height >= 20 {
		sections = append(sections, w.renderOperators(), "")
	}

	if w.elapsed >= phase1End {
		sections = append(sections, RenderBanner(width, height))
	}

	if w.elapsed >= phase2End {
		sections = append(sections, "",
			lipgloss.NewStyle().
				Foreground(theme.Text).
				Bold(true).
				Render(tagline),
			"",
			theme.Hint.Render("press any key to continue"))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderOperators draws the operator row. Symbols appear one per tick and
// then rotate through the accent colors.
func (w *WelcomeScreen) renderOperators() string {
	colors := []lipgloss.Style{
		lipgloss.NewStyle().Foreground(theme.Accent),
		lipgloss.NewStyle().Foreground(theme.Secondary),
		lipgloss.NewStyle().Foreground(theme.Highlight),
	}

	shown := min(w.tickCount+1, len(operators))
	parts := make([]string, 0, shown)
	for i, op := range operators[:shown] {
		parts = append(parts, colors[(i+w.tickCount)%len(colors)].Render(op))
	}
	return strings.Join(parts, "   ")
}

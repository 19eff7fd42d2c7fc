package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/quickmaths/internal/router"
	"github.com/abhisek/quickmaths/internal/screen"
	"github.com/abhisek/quickmaths/internal/screens/help"
	"github.com/abhisek/quickmaths/internal/screens/quiz"
	settingsscreen "github.com/abhisek/quickmaths/internal/screens/settings"
	"github.com/abhisek/quickmaths/internal/screens/welcome"
	"github.com/abhisek/quickmaths/internal/session"
	"github.com/abhisek/quickmaths/internal/ui/components"
	"github.com/abhisek/quickmaths/internal/ui/theme"
)

// SettingsSaver stores the last used test settings.
type SettingsSaver interface {
	SaveSettings(ctx context.Context, settings session.Settings) error
}

// Options carries the home screen's collaborators.
type Options struct {
	Username string
	Settings session.Settings
	Source   session.QuestionSource

	// Prefs may be nil, in which case settings changes last for this run.
	Prefs  SettingsSaver
	Quiz   quiz.Options
	Logger zerolog.Logger
}

// HomeScreen is the main menu.
type HomeScreen struct {
	opts     Options
	settings session.Settings
	menu     components.Menu
	log      zerolog.Logger
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	h := &HomeScreen{
		opts:     opts,
		settings: opts.Settings,
		log:      opts.Logger.With().Str("component", "home").Logger(),
	}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			next := build()
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "START", Action: push(func() screen.Screen {
			return quiz.New(h.opts.Source, h.settings, h.opts.Quiz)
		})},
		{Label: "SETTINGS", Action: push(func() screen.Screen {
			return settingsscreen.New(h.settings, h.applySettings)
		})},
		{Label: "HELP", Action: push(func() screen.Screen {
			return help.New()
		})},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return h
}

// Settings returns the settings the next test will use.
func (h *HomeScreen) Settings() session.Settings {
	return h.settings
}

func (h *HomeScreen) applySettings(s session.Settings) {
	h.settings = s
	if h.opts.Prefs == nil {
		return
	}
	if err := h.opts.Prefs.SaveSettings(context.Background(), s); err != nil {
		h.log.Warn().Err(err).Msg("failed to save settings")
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Status() string {
	return h.opts.Username
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	// Bordered buttons need 24 rows alongside the greeting and the panel.
	buttons := height >= 24

	var sections []string

	bannerRoom := height - 24
	if !buttons {
		bannerRoom = 0
	}
	sections = append(sections, components.Centered(welcome.RenderBanner(cw, bannerRoom), cw))

	greeting := "Ready for a test?"
	if h.opts.Username != "" {
		greeting = fmt.Sprintf("Ready for a test, %s?", h.opts.Username)
	}
	sections = append(sections,
		components.Centered(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(greeting), cw)+"\n"+
			components.Centered(theme.Subtitle.Render(describe(h.settings)), cw))

	if buttons {
		sections = append(sections, h.menu.ButtonView(cw))
	} else {
		sections = append(sections, components.Centered(h.menu.View(), cw))
	}

	return components.Panel(strings.Join(sections, "\n\n"), width, height)
}

// describe summarises settings in one line, for example
// "Normal · 15 questions · Algebra, Geometry".
func describe(s session.Settings) string {
	names := make([]string, len(s.ContentAreas))
	for i, a := range s.ContentAreas {
		names[i] = a.DisplayName()
	}
	return fmt.Sprintf("%s · %d questions · %s",
		s.Difficulty.DisplayName(), s.QuestionCount, strings.Join(names, ", "))
}

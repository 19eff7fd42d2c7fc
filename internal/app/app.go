package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/quickmaths/internal/router"
	"github.com/abhisek/quickmaths/internal/screen"
	"github.com/abhisek/quickmaths/internal/screens/home"
	"github.com/abhisek/quickmaths/internal/screens/quiz"
	"github.com/abhisek/quickmaths/internal/screens/username"
	"github.com/abhisek/quickmaths/internal/screens/welcome"
	"github.com/abhisek/quickmaths/internal/session"
	"github.com/abhisek/quickmaths/internal/store"
	"github.com/abhisek/quickmaths/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	// Prefs may be nil; the app then forgets the name and settings on exit.
	Prefs    store.PreferenceRepo
	Source   session.QuestionSource
	Settings session.Settings

	// Username skips the name prompt when set.
	Username string

	Logger zerolog.Logger
	Clock  func() time.Time
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel that opens on the welcome screen, then
// asks for a name if none is known, then shows the home menu.
func newAppModel(opts Options) AppModel {
	quizOpts := quiz.Options{Clock: opts.Clock, Logger: opts.Logger}

	homeFor := func(name string) screen.Screen {
		h := home.Options{
			Username: name,
			Settings: opts.Settings,
			Source:   opts.Source,
			Quiz:     quizOpts,
			Logger:   opts.Logger,
		}
		if opts.Prefs != nil {
			h.Prefs = opts.Prefs
		}
		return home.New(h)
	}

	next := func() screen.Screen {
		if opts.Username != "" {
			return homeFor(opts.Username)
		}
		var saver username.NameSaver
		if opts.Prefs != nil {
			saver = opts.Prefs
		}
		return username.New(saver, homeFor, opts.Logger)
	}

	return AppModel{
		router: router.New(welcome.New(next)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the full frame. It is empty until the first WindowSizeMsg.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	active := m.router.Active()
	f := layout.Frame{
		Hints:  m.footerHints(active),
		Width:  m.width,
		Height: m.height,
	}
	if active != nil {
		f.Title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			f.Status = sp.Status()
		}
	}
	return f.Render(m.router.View)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		if hints := kp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	return err
}

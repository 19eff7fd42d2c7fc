package username

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/quickmaths/internal/router"
	"github.com/abhisek/quickmaths/internal/screen"
	"github.com/abhisek/quickmaths/internal/ui/components"
	"github.com/abhisek/quickmaths/internal/ui/layout"
	"github.com/abhisek/quickmaths/internal/ui/theme"
)

const maxNameLength = 24

// NameSaver stores the player's name.
type NameSaver interface {
	SetUsername(ctx context.Context, name string) error
}

// UsernameScreen asks for the player's name and then replaces itself with
// the screen built by next.
type UsernameScreen struct {
	input  components.TextInput
	saver  NameSaver
	next   func(name string) screen.Screen
	log    zerolog.Logger
	notice string
	done   bool
}

var _ screen.Screen = (*UsernameScreen)(nil)
var _ screen.KeyHintProvider = (*UsernameScreen)(nil)

// New creates a UsernameScreen. saver may be nil, in which case the name
// only lasts for this run.
func New(saver NameSaver, next func(name string) screen.Screen, log zerolog.Logger) *UsernameScreen {
	return &UsernameScreen{
		input: components.NewTextInput("Your name", false, maxNameLength),
		saver: saver,
		next:  next,
		log:   log.With().Str("component", "username").Logger(),
	}
}

func (u *UsernameScreen) Init() tea.Cmd {
	return u.input.Init()
}

func (u *UsernameScreen) Title() string {
	return "Welcome"
}

func (u *UsernameScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (u *UsernameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if u.done {
		return u, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return u, u.submit()
	}

	var cmd tea.Cmd
	u.input, cmd = u.input.Update(msg)
	return u, cmd
}

func (u *UsernameScreen) submit() tea.Cmd {
	name := strings.TrimSpace(u.input.Value())
	if name == "" {
		u.notice = "Please type your name."
		return nil
	}

	if u.saver != nil {
		if err := u.saver.SetUsername(context.Background(), name); err != nil {
			u.log.Warn().Err(err).Msg("failed to save username")
		}
	}
	u.log.Info().Str("username", name).Msg("username set")

	u.done = true
	next := u.next(name)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (u *UsernameScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		components.Centered(theme.Title.Render("What should we call you?"), cw),
		components.Card(u.input.View(), cw),
	}
	if u.notice != "" {
		sections = append(sections, components.Centered(
			lipgloss.NewStyle().Foreground(theme.Accent).Render(u.notice), cw))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

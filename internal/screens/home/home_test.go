package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quickmaths/internal/problemgen"
	"github.com/abhisek/quickmaths/internal/router"
	"github.com/abhisek/quickmaths/internal/screen"
	"github.com/abhisek/quickmaths/internal/screens/help"
	"github.com/abhisek/quickmaths/internal/screens/quiz"
	settingsscreen "github.com/abhisek/quickmaths/internal/screens/settings"
	"github.com/abhisek/quickmaths/internal/session"
)

type memPrefs struct {
	saved []session.Settings
}

func (m *memPrefs) SaveSettings(_ context.Context, s session.Settings) error {
	m.saved = append(m.saved, s)
	return nil
}

func press(h *HomeScreen, codes ...rune) tea.Cmd {
	var cmd tea.Cmd
	for _, c := range codes {
		_, cmd = h.Update(tea.KeyPressMsg{Code: c})
	}
	return cmd
}

func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	return msg.Screen
}

func newTestHome() (*HomeScreen, *memPrefs) {
	prefs := &memPrefs{}
	h := New(Options{
		Username: "Ada",
		Settings: session.DefaultSettings(),
		Prefs:    prefs,
	})
	return h, prefs
}

func TestMenu_Start(t *testing.T) {
	h, _ := newTestHome()
	if _, ok := pushed(t, press(h, tea.KeyEnter)).(*quiz.QuizScreen); !ok {
		t.Error("START should push the quiz screen")
	}
}

func TestMenu_Help(t *testing.T) {
	h, _ := newTestHome()
	if _, ok := pushed(t, press(h, tea.KeyDown, tea.KeyDown, tea.KeyEnter)).(*help.HelpScreen); !ok {
		t.Error("HELP should push the help screen")
	}
}

func TestMenu_Quit(t *testing.T) {
	h, _ := newTestHome()
	cmd := press(h, tea.KeyDown, tea.KeyDown, tea.KeyDown, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("QUIT should quit, got %T", cmd())
	}
}

func TestSettingsChangesPropagate(t *testing.T) {
	h, prefs := newTestHome()
	s, ok := pushed(t, press(h, tea.KeyDown, tea.KeyEnter)).(*settingsscreen.SettingsScreen)
	if !ok {
		t.Fatal("SETTINGS should push the settings screen")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if h.Settings().Difficulty != problemgen.Hard {
		t.Errorf("home difficulty = %v, want Hard", h.Settings().Difficulty)
	}
	if len(prefs.saved) != 1 || prefs.saved[0].Difficulty != problemgen.Hard {
		t.Errorf("saved = %+v", prefs.saved)
	}
	if !strings.Contains(h.View(100, 40), "Hard · 15 questions") {
		t.Error("home view should describe the new settings")
	}
}

func TestView(t *testing.T) {
	h, _ := newTestHome()
	if h.Status() != "Ada" {
		t.Errorf("Status = %q, want Ada", h.Status())
	}

	for _, size := range [][2]int{{100, 40}, {80, 18}} {
		view := h.View(size[0], size[1])
		for _, want := range []string{"Ready for a test, Ada?", "START", "QUIT", "Number theory, Algebra, Geometry"} {
			if !strings.Contains(view, want) {
				t.Errorf("view %dx%d missing %q", size[0], size[1], want)
			}
		}
	}
}

package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quickmaths/internal/router"
	"github.com/abhisek/quickmaths/internal/screen"
)

type menuStub struct{}

func (menuStub) Init() tea.Cmd                            { return nil }
func (m menuStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return m, nil }
func (menuStub) View(int, int) string                     { return "menu" }
func (menuStub) Title() string                            { return "Home" }

// newWelcome returns a welcome screen and a pointer to how many times it
// built the next screen.
func newWelcome() (*WelcomeScreen, *int) {
	built := 0
	return New(func() screen.Screen {
		built++
		return menuStub{}
	}), &built
}

func advance(w *WelcomeScreen, ticks int) tea.Cmd {
	var cmd tea.Cmd
	for range ticks {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestWelcome_Stages(t *testing.T) {
	tests := []struct {
		ticks       int
		allOps      bool
		banner      bool
		tagline     bool
		wantElapsed time.Duration
	}{
		{ticks: 0},
		{ticks: 4, wantElapsed: 400 * time.Millisecond},
		{ticks: 5, banner: true, wantElapsed: phase1End},
		{ticks: 6, allOps: true, banner: true, wantElapsed: 600 * time.Millisecond},
		{ticks: 15, allOps: true, banner: true, tagline: true, wantElapsed: phase2End},
		{ticks: 200, allOps: true, banner: true, tagline: true, wantElapsed: totalDur},
	}

	for _, tt := range tests {
		w, built := newWelcome()
		advance(w, tt.ticks)

		if w.elapsed != tt.wantElapsed {
			t.Errorf("%d ticks: elapsed = %v, want %v", tt.ticks, w.elapsed, tt.wantElapsed)
		}

		// 40 columns is too narrow for the block art.
		view := w.View(40, 24)
		if got := strings.Contains(view, operators[len(operators)-1]); got != tt.allOps {
			t.Errorf("%d ticks: every operator shown = %v, want %v", tt.ticks, got, tt.allOps)
		}
		if got := strings.Contains(view, bannerCompact); got != tt.banner {
			t.Errorf("%d ticks: banner shown = %v, want %v", tt.ticks, got, tt.banner)
		}
		if got := strings.Contains(view, tagline); got != tt.tagline {
			t.Errorf("%d ticks: tagline shown = %v, want %v", tt.ticks, got, tt.tagline)
		}
		if *built != 0 {
			t.Errorf("%d ticks: next screen built without a key press", tt.ticks)
		}
	}
}

func TestWelcome_ShortTerminalHidesOperators(t *testing.T) {
	w, _ := newWelcome()
	advance(w, 10)

	if strings.Contains(w.View(40, 18), operators[0]) {
		t.Error("operator row should be dropped below 20 rows")
	}
}

func TestWelcome_BannerSize(t *testing.T) {
	w, _ := newWelcome()
	advance(w, 5)

	if !strings.Contains(w.View(bannerMinWidth-1, 24), bannerCompact) {
		t.Error("narrow terminal should get the compact banner")
	}
	if strings.Contains(w.View(bannerMinWidth, 24), bannerCompact) {
		t.Error("wide terminal should get the block banner")
	}
}

func TestWelcome_KeyReplacesScreen(t *testing.T) {
	for _, ticks := range []int{0, 3, 45} {
		w, built := newWelcome()
		advance(w, ticks)

		_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		if cmd == nil {
			t.Fatalf("%d ticks: key press returned no command", ticks)
		}
		msg, ok := cmd().(router.ReplaceScreenMsg)
		if !ok {
			t.Fatalf("%d ticks: got %T, want ReplaceScreenMsg", ticks, cmd())
		}
		if msg.Screen.Title() != "Home" {
			t.Errorf("%d ticks: replaced with %q", ticks, msg.Screen.Title())
		}
		if *built != 1 {
			t.Errorf("%d ticks: next built %d times, want 1", ticks, *built)
		}
	}
}

func TestWelcome_AfterTransition(t *testing.T) {
	w, built := newWelcome()
	w.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})

	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("second key press should do nothing")
	}
	if cmd := advance(w, 1); cmd != nil {
		t.Error("ticks should stop once the screen has been replaced")
	}
	if *built != 1 {
		t.Errorf("next built %d times, want 1", *built)
	}
	if w.Title() != "" {
		t.Errorf("Title = %q, want empty", w.Title())
	}
}

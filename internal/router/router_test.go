package router

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quickmaths/internal/screen"
)

type fakeScreen struct {
	name  string
	inits int
	seen  []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.seen = append(f.seen, msg)
	return f, nil
}

func (f *fakeScreen) View(w, h int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

// names lists the stack from bottom to top.
func names(r *Router) string {
	parts := make([]string, len(r.stack))
	for i, s := range r.stack {
		parts[i] = s.Title()
	}
	return strings.Join(parts, ">")
}

func TestRouter_Navigation(t *testing.T) {
	home := &fakeScreen{name: "home"}
	quiz := &fakeScreen{name: "quiz"}
	summary := &fakeScreen{name: "summary"}
	settings := &fakeScreen{name: "settings"}

	tests := []struct {
		msg  tea.Msg
		want string
	}{
		{PopScreenMsg{}, "home"},
		{PushScreenMsg{Screen: quiz}, "home>quiz"},
		{ReplaceScreenMsg{Screen: summary}, "home>summary"},
		{PushScreenMsg{Screen: settings}, "home>summary>settings"},
		{PopScreenMsg{}, "home>summary"},
		{PushScreenMsg{Screen: settings}, "home>summary>settings"},
		{HomeMsg{}, "home"},
		{HomeMsg{}, "home"},
	}

	r := New(home)
	for i, tt := range tests {
		r.Update(tt.msg)
		if got := names(r); got != tt.want {
			t.Fatalf("step %d (%T): stack = %s, want %s", i, tt.msg, got, tt.want)
		}
		if got := r.View(80, 24); got != r.Active().Title() {
			t.Fatalf("step %d: View = %q, want the active screen", i, got)
		}
	}

	if quiz.inits != 1 || summary.inits != 1 || settings.inits != 2 {
		t.Errorf("inits quiz=%d summary=%d settings=%d, want 1 1 2",
			quiz.inits, summary.inits, settings.inits)
	}
	if home.inits != 0 {
		t.Errorf("returning home should not re-init it, got %d", home.inits)
	}
	if len(home.seen) != 0 {
		t.Errorf("navigation messages leaked to the screen: %v", home.seen)
	}
}

func TestRouter_ForwardsToActive(t *testing.T) {
	home := &fakeScreen{name: "home"}
	quiz := &fakeScreen{name: "quiz"}
	r := New(home)
	r.Push(quiz)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if len(quiz.seen) != 1 {
		t.Errorf("active screen got %d messages, want 1", len(quiz.seen))
	}
	if len(home.seen) != 0 {
		t.Errorf("inactive screen got %d messages, want 0", len(home.seen))
	}
}

func TestRouter_ReplaceRoot(t *testing.T) {
	welcome := &fakeScreen{name: "welcome"}
	home := &fakeScreen{name: "home"}
	r := New(welcome)

	r.Replace(home)
	r.Pop()

	if got := names(r); got != "home" {
		t.Errorf("stack = %s, want home", got)
	}
	if r.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", r.Depth())
	}
}

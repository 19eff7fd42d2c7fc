// Package router keeps the stack of screens the app navigates through.
// Screens never hold a reference to the router; they ask for navigation by
// returning one of the messages below from a tea.Cmd.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quickmaths/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the current screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the current screen for Screen, so going back skips
// the screen being replaced.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// HomeMsg closes every screen above the root one.
type HomeMsg struct{}

// Router is a stack of screens. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
}

// New creates a Router with root at the bottom of the stack.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) top() int { return len(r.stack) - 1 }

// Active returns the screen on top of the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[r.top()]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int { return len(r.stack) }

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the active screen unless it is the root.
func (r *Router) Pop() {
	if len(r.stack) > 1 {
		r.stack[r.top()] = nil
		r.stack = r.stack[:r.top()]
	}
}

// PopToRoot closes every screen but the root.
func (r *Router) PopToRoot() {
	if len(r.stack) > 1 {
		clear(r.stack[1:])
		r.stack = r.stack[:1]
	}
}

// Replace swaps the active screen for s and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		r.stack = []screen.Screen{s}
	} else {
		r.stack[r.top()] = s
	}
	return s.Init()
}

// Update applies navigation messages and hands everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case PopScreenMsg:
		r.Pop()
		return nil
	case HomeMsg:
		r.PopToRoot()
		return nil
	}

	if len(r.stack) == 0 {
		return nil
	}
	next, cmd := r.stack[r.top()].Update(msg)
	r.stack[r.top()] = next
	return cmd
}

// View draws the active screen into a width x height area.
func (r *Router) View(width, height int) string {
	if s := r.Active(); s != nil {
		return s.View(width, height)
	}
	return ""
}

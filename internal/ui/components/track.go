package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmaths/internal/ui/theme"
)

// Mark is the state of one question on an AnswerTrack.
type Mark int

const (
	MarkPending Mark = iota
	MarkCorrect
	MarkIncorrect
)

const (
	trackPending = "·"
	trackAnswer  = "■"
	trackCursor  = "◆"
)

// AnswerTrack draws one cell per question, coloured by result, followed by
// an "answered/total" count. When there are more questions than Width
// cells, each cell covers a run of questions and shows the worst mark in it.
type AnswerTrack struct {
	Marks  []Mark
	Cursor int
	Width  int
}

// cells returns the mark of each cell and the cell holding the cursor.
func (t AnswerTrack) cells() ([]Mark, int) {
	n := len(t.Marks)
	width := max(t.Width, 1)
	per := (n + width - 1) / width
	if per < 1 {
		per = 1
	}

	cells := make([]Mark, 0, (n+per-1)/per)
	for start := 0; start < n; start += per {
		cells = append(cells, worst(t.Marks[start:min(start+per, n)]))
	}
	return cells, t.Cursor / per
}

// worst ranks incorrect over pending over correct.
func worst(marks []Mark) Mark {
	out := MarkCorrect
	for _, m := range marks {
		switch m {
		case MarkIncorrect:
			return MarkIncorrect
		case MarkPending:
			out = MarkPending
		}
	}
	return out
}

func (t AnswerTrack) answered() int {
	n := 0
	for _, m := range t.Marks {
		if m != MarkPending {
			n++
		}
	}
	return n
}

// View renders the track.
func (t AnswerTrack) View() string {
	cells, cursor := t.cells()

	var b strings.Builder
	for i, m := range cells {
		switch {
		case i == cursor:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Highlight).Render(trackCursor))
		case m == MarkCorrect:
			b.WriteString(theme.Correct.Render(trackAnswer))
		case m == MarkIncorrect:
			b.WriteString(theme.Incorrect.Render(trackAnswer))
		default:
			b.WriteString(theme.Disabled.Render(trackPending))
		}
	}

	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %d/%d", t.answered(), len(t.Marks))))
	return b.String()
}

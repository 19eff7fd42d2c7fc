package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmaths/internal/session"
	"github.com/abhisek/quickmaths/internal/ui/components"
	"github.com/abhisek/quickmaths/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	switch {
	case q.errMsg != "":
		return renderError(width, q.errMsg)
	case !q.ready:
		return renderLoading(width)
	case q.confirm:
		return renderQuitConfirm(width)
	case q.test.Phase() != session.PhaseInProgress:
		return renderLoading(width)
	}
	return q.renderQuestion(width)
}

func (q *QuizScreen) renderQuestion(width int) string {
	tq := q.current()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	// Position and progress line.
	pos := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", q.test.Current()+1, q.test.Len()))
	bar := components.AnswerTrack{
		Marks:  marks(q.test),
		Cursor: q.test.Current(),
		Width:  min(30, width-lipgloss.Width(pos)-12),
	}.View()

	line := pos
	if pad := width - lipgloss.Width(pos) - lipgloss.Width(bar) - 2; pad > 0 {
		line += strings.Repeat(" ", pad) + bar
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	prompt := theme.Prompt.Width(min(width-8, 70)).Render(tq.Question.Text())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	if q.isMC {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, q.choices.View()))
	} else {
		b.WriteString(center.Render("Answer: " + q.input.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if tq.State.Answered() {
		b.WriteString(center.Render(renderVerdict(tq)))
		b.WriteString("\n\n")
		b.WriteString(center.Render(theme.Hint.Render("Press Enter for the next question")))
	}

	if q.notice != "" {
		b.WriteString("\n")
		b.WriteString(center.Render(lipgloss.NewStyle().Foreground(theme.Accent).Render(q.notice)))
	}

	return b.String()
}

func marks(t session.Test) []components.Mark {
	out := make([]components.Mark, t.Len())
	for i := range out {
		switch t.Question(i).State.Status {
		case session.AnsweredCorrect:
			out[i] = components.MarkCorrect
		case session.AnsweredIncorrect:
			out[i] = components.MarkIncorrect
		}
	}
	return out
}

func renderVerdict(tq session.TestQuestion) string {
	if tq.State.Status == session.AnsweredCorrect {
		return theme.Correct.Render("Correct!")
	}
	return theme.Incorrect.Render("Not quite.") +
		theme.Subtitle.Render(" The answer is ") +
		theme.Body.Bold(true).Render(tq.Question.CorrectAnswer())
}

// renderQuitConfirm renders the leave-test confirmation dialog.
func renderQuitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Leave this test?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Your answers will not be kept."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Error).Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your questions...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

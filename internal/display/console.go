package display

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmaths/internal/problemgen"
	"github.com/abhisek/quickmaths/internal/session"
	"github.com/abhisek/quickmaths/internal/ui/theme"
)

// Console is a line-oriented Display over a reader and a writer.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	styled bool
}

var (
	_ Display  = (*Console)(nil)
	_ Reporter = (*Console)(nil)
)

// NewConsole creates a Console. When styled is false no ANSI sequences are
// written, which suits pipes and tests.
func NewConsole(in io.Reader, out io.Writer, styled bool) *Console {
	return &Console{in: bufio.NewScanner(in), out: out, styled: styled}
}

func (c *Console) render(style lipgloss.Style, s string) string {
	if !c.styled {
		return s
	}
	return style.Render(s)
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// readLine prompts and reads one trimmed line. ok is false once the input
// is exhausted.
func (c *Console) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, c.render(theme.Hint, prompt))
	if !c.in.Scan() {
		c.println()
		c.println(c.render(theme.Hint, "(input closed)"))
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) ShowProgress(number, total int) {
	c.println(c.render(theme.Subtitle, fmt.Sprintf("── Question %d/%d ──", number, total)))
}

func (c *Console) ShowResult(result problemgen.ValidationResult, correctAnswer string) {
	if result.IsCorrect() {
		c.println(c.render(theme.Correct, "✓ Correct!"))
	} else {
		c.println(c.render(theme.Incorrect, "✗ Wrong.") + " Answer: " + correctAnswer)
	}
	c.println()
}

func (c *Console) PresentChoices(prompt string, choices []string, onChosen func(index int)) {
	c.println(c.render(theme.Body, prompt))
	for i, choice := range choices {
		c.println(fmt.Sprintf("  %d) %s", i+1, choice))
	}
	c.println()

	for {
		line, ok := c.readLine("Your choice: ")
		if !ok {
			return
		}
		if idx, ok := resolveChoice(choices, line); ok {
			onChosen(idx)
			return
		}
		c.println(c.render(theme.Incorrect, fmt.Sprintf("Please enter a number from 1 to %d.", len(choices))))
	}
}

// resolveChoice accepts a 1-based option number or the option text.
func resolveChoice(choices []string, line string) (int, bool) {
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(choices) {
		return n - 1, true
	}
	for i, choice := range choices {
		if line != "" && strings.EqualFold(choice, line) {
			return i, true
		}
	}
	return -1, false
}

func (c *Console) PresentInput(prompt string, onSubmit func(text string) problemgen.ValidationResult) {
	c.println(c.render(theme.Body, prompt))
	c.println()

	for {
		line, ok := c.readLine("Your answer: ")
		if !ok {
			return
		}
		res := onSubmit(line)
		if !res.IsInvalid() {
			return
		}
		c.println(c.render(theme.Incorrect, res.Reason))
	}
}

func (c *Console) PresentSummary(summary *session.Summary, actions SummaryActions) {
	c.println(c.render(theme.Title, "── Summary ──"))
	c.println(fmt.Sprintf("Score: %d/%d (%d%%)", summary.Correct, summary.Total, int(summary.Accuracy*100+0.5)))
	c.println("Time:  " + FormatElapsed(summary.Elapsed))
	c.println(fmt.Sprintf("Best streak: %d", summary.BestStreak))

	if len(summary.Missed) > 0 {
		c.println()
		c.println(c.render(theme.Subtitle, "Missed questions"))
		for _, m := range summary.Missed {
			c.println(fmt.Sprintf("  %d. %s", m.Number, m.Prompt))
			c.println(fmt.Sprintf("     you said %s, answer %s",
				c.render(theme.Incorrect, m.Chosen), c.render(theme.Correct, m.Correct)))
		}
	}
	c.println()

	type option struct {
		label string
		run   func()
	}
	options := []option{{"Retry all", actions.RetryAll}}
	if actions.RetryIncorrect != nil {
		options = append(options, option{"Retry incorrect", actions.RetryIncorrect})
	}
	options = append(options, option{"Menu", actions.ToMenu})

	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = o.label
		c.println(fmt.Sprintf("  %d) %s", i+1, o.label))
	}

	for {
		line, ok := c.readLine("Next: ")
		if !ok {
			actions.ToMenu()
			return
		}
		if idx, ok := resolveChoice(labels, line); ok {
			options[idx].run()
			return
		}
		c.println(c.render(theme.Incorrect, fmt.Sprintf("Please enter a number from 1 to %d.", len(options))))
	}
}

// FormatElapsed renders a duration as "1m 05s", or "42s" under a minute.
func FormatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d / time.Minute)
	s := int((d % time.Minute) / time.Second)
	if m == 0 {
		return fmt.Sprintf("%ds", s)
	}
	return fmt.Sprintf("%dm %02ds", m, s)
}

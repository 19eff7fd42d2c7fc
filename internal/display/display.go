// Package display defines the boundary between a test and whatever
// presents it, and drives a test through that boundary.
package display

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/quickmaths/internal/problemgen"
	"github.com/abhisek/quickmaths/internal/session"
)

// ErrAbandoned is returned by Run when the display returns without
// invoking the callback it was given, e.g. because its input was closed.
var ErrAbandoned = errors.New("display: test abandoned")

// Display shows questions and summaries and reports the user's answers
// through callbacks.
type Display interface {
	// PresentChoices shows a prompt with labelled options and calls
	// onChosen once with the selected index.
	PresentChoices(prompt string, choices []string, onChosen func(index int))

	// PresentInput shows a prompt with a free-text field. It calls
	// onSubmit for every committed response; while the result is Invalid
	// it must re-prompt, and once it is Correct or Incorrect the field is
	// locked and PresentInput returns.
	PresentInput(prompt string, onSubmit func(text string) problemgen.ValidationResult)

	// PresentSummary shows the end-of-test summary and calls exactly one
	// of the offered actions.
	PresentSummary(summary *session.Summary, actions SummaryActions)
}

// SummaryActions are the follow-ups offered on the summary.
type SummaryActions struct {
	RetryAll func()

	// RetryIncorrect is nil when every question was answered correctly.
	RetryIncorrect func()

	ToMenu func()
}

// Reporter is implemented by displays that show progress and per-question
// feedback. Run calls it when available.
type Reporter interface {
	// ShowProgress is called before each question; number is 1-based.
	ShowProgress(number, total int)

	// ShowResult is called once a question has been graded.
	ShowResult(result problemgen.ValidationResult, correctAnswer string)
}

type summaryChoice int

const (
	choiceNone summaryChoice = iota
	choiceRetryAll
	choiceRetryIncorrect
	choiceMenu
)

// Run presents test on d until the user picks "menu" on a summary.
// Questions that already have an answer are skipped, so a test produced by
// RetryIncorrect only asks the questions that were missed. clock supplies
// the time for scoring and for restarting the test on "retry all".
//
// Run returns the last test it drove, which is finished unless an error is
// returned.
func Run(d Display, test session.Test, clock func() time.Time, log zerolog.Logger) (session.Test, error) {
	reporter, _ := d.(Reporter)

	for {
		var err error
		test, err = runQuestions(d, reporter, test, log)
		if err != nil {
			return test, err
		}

		summary, err := session.BuildSummary(test, clock())
		if err != nil {
			return test, err
		}
		log.Info().
			Str("test_id", test.ID()).
			Int("correct", summary.Correct).
			Int("total", summary.Total).
			Dur("elapsed", summary.Elapsed).
			Msg("test finished")

		choice := choiceNone
		actions := SummaryActions{
			RetryAll: func() { choice = choiceRetryAll },
			ToMenu:   func() { choice = choiceMenu },
		}
		if summary.CanRetryIncorrect {
			actions.RetryIncorrect = func() { choice = choiceRetryIncorrect }
		}
		d.PresentSummary(summary, actions)

		switch choice {
		case choiceRetryAll:
			test, err = test.RetryAll(clock())
		case choiceRetryIncorrect:
			test, err = test.RetryIncorrect()
		case choiceMenu:
			return test, nil
		default:
			return test, ErrAbandoned
		}
		if err != nil {
			return test, err
		}
		log.Debug().Str("test_id", test.ID()).Int("current", test.Current()).Msg("retrying test")
	}
}

func runQuestions(d Display, reporter Reporter, test session.Test, log zerolog.Logger) (session.Test, error) {
	for test.Phase() == session.PhaseInProgress {
		tq, _ := test.CurrentQuestion()
		if tq.State.Answered() {
			next, err := test.AdvanceUnanswered()
			if err != nil {
				return test, err
			}
			test = next
			continue
		}

		if reporter != nil {
			reporter.ShowProgress(test.Current()+1, test.Len())
		}

		var (
			answered bool
			result   problemgen.ValidationResult
			opErr    error
		)
		record := func(next session.Test, res problemgen.ValidationResult, err error) {
			if err != nil {
				opErr = err
				return
			}
			if res.IsInvalid() {
				return
			}
			test, result, answered = next, res, true
		}

		switch q := tq.Question.(type) {
		case *problemgen.MultipleChoice:
			d.PresentChoices(q.Prompt, q.Choices, func(index int) {
				if answered {
					return
				}
				record(test.Choose(index))
			})
		case *problemgen.Input:
			d.PresentInput(q.Prompt, func(text string) problemgen.ValidationResult {
				if answered {
					return result
				}
				next, res, err := test.Answer(text)
				record(next, res, err)
				return res
			})
		}
		if opErr != nil {
			return test, opErr
		}
		if !answered {
			return test, ErrAbandoned
		}

		log.Debug().
			Str("test_id", test.ID()).
			Int("question", test.Current()+1).
			Bool("correct", result.IsCorrect()).
			Msg("question answered")
		if reporter != nil {
			reporter.ShowResult(result, tq.Question.CorrectAnswer())
		}

		next, err := test.AdvanceUnanswered()
		if err != nil {
			return test, err
		}
		test = next
	}
	return test, nil
}

package session

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quickmaths/internal/problemgen"
)

// QuestionSource builds the question list for a new test.
// *problemgen.Bank implements it.
type QuestionSource interface {
	Build(difficulty problemgen.Difficulty, areas []problemgen.ContentArea, count int) ([]problemgen.Question, error)
}

var _ QuestionSource = (*problemgen.Bank)(nil)

// Test is one play-through of a question list. It is a value: every
// operation returns a new Test and leaves the receiver untouched, so
// earlier snapshots stay valid.
type Test struct {
	id        string
	settings  Settings
	startedAt time.Time
	questions []TestQuestion
	current   int
}

// Start builds a new test with settings.QuestionCount questions, all
// NotAnswered, positioned on the first question.
func Start(src QuestionSource, settings Settings, now time.Time) (Test, error) {
	if err := settings.Validate(); err != nil {
		return Test{}, err
	}
	qs, err := src.Build(settings.Difficulty, settings.ContentAreas, settings.QuestionCount)
	if err != nil {
		return Test{}, fmt.Errorf("building questions: %w", err)
	}
	if len(qs) != settings.QuestionCount {
		return Test{}, fmt.Errorf("building questions: got %d, want %d", len(qs), settings.QuestionCount)
	}

	questions := make([]TestQuestion, len(qs))
	for i, q := range qs {
		questions[i] = TestQuestion{Question: q}
	}
	return Test{
		id:        uuid.NewString(),
		settings:  settings,
		startedAt: now,
		questions: questions,
	}, nil
}

// ID uniquely identifies this play-through. Retries get a new ID.
func (t Test) ID() string { return t.id }

// Settings returns the settings the test was started with.
func (t Test) Settings() Settings { return t.settings }

// StartedAt returns the time the play-through started.
func (t Test) StartedAt() time.Time { return t.startedAt }

// Len returns the number of questions.
func (t Test) Len() int { return len(t.questions) }

// Question returns the i-th question and its answer state.
func (t Test) Question(i int) TestQuestion { return t.questions[i] }

// Questions returns a copy of the question list.
func (t Test) Questions() []TestQuestion { return slices.Clone(t.questions) }

// Current returns the zero-based position of the current question.
// It equals Len when the test is finished.
func (t Test) Current() int { return t.current }

// CurrentQuestion returns the current question. ok is false unless the
// test is in progress.
func (t Test) CurrentQuestion() (TestQuestion, bool) {
	if t.Phase() != PhaseInProgress {
		return TestQuestion{}, false
	}
	return t.questions[t.current], true
}

// Phase derives the lifecycle phase from the position.
func (t Test) Phase() Phase {
	switch {
	case len(t.questions) == 0:
		return PhaseNotStarted
	case t.current >= len(t.questions):
		return PhaseFinished
	default:
		return PhaseInProgress
	}
}

func (t Test) count(status AnswerStatus) int {
	n := 0
	for _, q := range t.questions {
		if q.State.Status == status {
			n++
		}
	}
	return n
}

// CorrectCount returns the number of questions answered correctly.
func (t Test) CorrectCount() int { return t.count(AnsweredCorrect) }

// IncorrectCount returns the number of questions answered incorrectly.
func (t Test) IncorrectCount() int { return t.count(AnsweredIncorrect) }

// AnsweredCount returns the number of questions with a recorded answer.
func (t Test) AnsweredCount() int { return len(t.questions) - t.count(NotAnswered) }

// HasIncorrect reports whether RetryIncorrect has anything to retry.
func (t Test) HasIncorrect() bool { return t.IncorrectCount() > 0 }

// withState returns a copy of t with question i's state replaced.
func (t Test) withState(i int, state AnswerState) Test {
	t.questions = slices.Clone(t.questions)
	t.questions[i].State = state
	return t
}

// Answer grades response against the current question.
//
// An Invalid result leaves the test unchanged and is not an error; the
// host should re-prompt. Answering a question that already has an answer,
// or answering when no question is current, returns the unchanged test and
// an OperationError.
func (t Test) Answer(response string) (Test, problemgen.ValidationResult, error) {
	tq, ok := t.CurrentQuestion()
	if !ok {
		return t, problemgen.ValidationResult{}, invalidOp("answer", "no question is current")
	}
	if tq.State.Answered() {
		return t, problemgen.ValidationResult{}, invalidOp("answer",
			fmt.Sprintf("question %d is already answered", t.current+1))
	}

	res := tq.Question.Validate(response)
	if res.IsInvalid() {
		return t, res, nil
	}

	chosen := strings.TrimSpace(response)
	if mc, ok := tq.Question.(*problemgen.MultipleChoice); ok {
		if idx, ok := mc.Resolve(response); ok {
			chosen = mc.Choices[idx]
		}
	}
	status := AnsweredIncorrect
	if res.IsCorrect() {
		status = AnsweredCorrect
	}
	return t.withState(t.current, AnswerState{Status: status, Chosen: chosen}), res, nil
}

// Choose answers the current multiple-choice question with the choice at
// index. It is a convenience for hosts that present choices by position.
func (t Test) Choose(index int) (Test, problemgen.ValidationResult, error) {
	tq, ok := t.CurrentQuestion()
	if !ok {
		return t, problemgen.ValidationResult{}, invalidOp("choose", "no question is current")
	}
	mc, ok := tq.Question.(*problemgen.MultipleChoice)
	if !ok {
		return t, problemgen.ValidationResult{}, invalidOp("choose", "current question is not multiple choice")
	}
	if index < 0 || index >= len(mc.Choices) {
		return t, problemgen.ValidationResult{}, invalidOp("choose",
			fmt.Sprintf("choice %d out of range [0, %d)", index, len(mc.Choices)))
	}
	return t.Answer(mc.Choices[index])
}

// Advance moves to the next question. Advancing past the last question
// finishes the test.
func (t Test) Advance() (Test, error) {
	if t.Phase() != PhaseInProgress {
		return t, invalidOp("advance", "test is "+t.Phase().String())
	}
	t.current++
	return t, nil
}

// AdvanceUnanswered moves to the next question without an answer, or
// finishes the test when every later question is answered. After
// RetryIncorrect this steps over questions that were already correct.
func (t Test) AdvanceUnanswered() (Test, error) {
	if t.Phase() != PhaseInProgress {
		return t, invalidOp("advance", "test is "+t.Phase().String())
	}
	t.current++
	for t.current < len(t.questions) && t.questions[t.current].State.Answered() {
		t.current++
	}
	return t, nil
}

// Retreat moves to the previous question. It is rejected on the first
// question and once the test has finished.
func (t Test) Retreat() (Test, error) {
	if t.Phase() != PhaseInProgress {
		return t, invalidOp("retreat", "test is "+t.Phase().String())
	}
	if t.current == 0 {
		return t, invalidOp("retreat", "already on the first question")
	}
	t.current--
	return t, nil
}

// RetryAll starts a new play-through of the same questions with every
// answer cleared, the first question current and the clock restarted.
func (t Test) RetryAll(now time.Time) (Test, error) {
	if t.Phase() != PhaseFinished {
		return t, invalidOp("retry all", "test is "+t.Phase().String())
	}
	questions := make([]TestQuestion, len(t.questions))
	for i, q := range t.questions {
		questions[i] = TestQuestion{Question: q.Question}
	}
	return Test{
		id:        uuid.NewString(),
		settings:  t.settings,
		startedAt: now,
		questions: questions,
	}, nil
}

// RetryIncorrect starts a new play-through in which only the incorrectly
// answered questions are cleared. Correct answers are kept, the first
// cleared question becomes current and the original start time is kept.
func (t Test) RetryIncorrect() (Test, error) {
	if t.Phase() != PhaseFinished {
		return t, invalidOp("retry incorrect", "test is "+t.Phase().String())
	}
	first := -1
	questions := slices.Clone(t.questions)
	for i, q := range questions {
		if q.State.Status != AnsweredIncorrect {
			continue
		}
		questions[i].State = AnswerState{}
		if first < 0 {
			first = i
		}
	}
	if first < 0 {
		return t, invalidOp("retry incorrect", "no incorrect answers")
	}
	return Test{
		id:        uuid.NewString(),
		settings:  t.settings,
		startedAt: t.startedAt,
		questions: questions,
		current:   first,
	}, nil
}

// Score is the result of a finished test.
type Score struct {
	Correct int
	Total   int
	Elapsed time.Duration
}

// Score returns the result of a finished test. Elapsed is measured from
// StartedAt to now.
func (t Test) Score(now time.Time) (Score, error) {
	if t.Phase() != PhaseFinished {
		return Score{}, invalidOp("score", "test is "+t.Phase().String())
	}
	return Score{
		Correct: t.CorrectCount(),
		Total:   len(t.questions),
		Elapsed: now.Sub(t.startedAt),
	}, nil
}

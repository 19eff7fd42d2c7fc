package quiz

import (
	"fmt"
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/quickmaths/internal/problemgen"
	"github.com/abhisek/quickmaths/internal/router"
	"github.com/abhisek/quickmaths/internal/screen"
	"github.com/abhisek/quickmaths/internal/screens/summary"
	"github.com/abhisek/quickmaths/internal/session"
	"github.com/abhisek/quickmaths/internal/ui/components"
	"github.com/abhisek/quickmaths/internal/ui/layout"
)

// Options carries the quiz screen's collaborators.
type Options struct {
	Clock  func() time.Time
	Logger zerolog.Logger
}

func (o Options) now() time.Time {
	if o.Clock == nil {
		return time.Now()
	}
	return o.Clock()
}

// QuizScreen administers one test. Answered questions stay visible, locked
// with their result, and can be revisited with the arrow keys.
type QuizScreen struct {
	src      session.QuestionSource
	settings session.Settings
	opts     Options
	log      zerolog.Logger

	test  session.Test
	ready bool

	choices components.MultiChoice
	input   components.TextInput
	isMC    bool

	// result is the grade of the answer given on this screen visit, shown
	// as feedback until the player moves on.
	result  *problemgen.ValidationResult
	notice  string
	confirm bool
	errMsg  string
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
	_ screen.EscapeHandler   = (*QuizScreen)(nil)
	_ screen.StatusProvider  = (*QuizScreen)(nil)
)

// New creates a quiz screen that generates a fresh test from src when it
// is initialized.
func New(src session.QuestionSource, settings session.Settings, opts Options) *QuizScreen {
	return &QuizScreen{
		src:      src,
		settings: settings,
		opts:     opts,
		log:      opts.Logger.With().Str("component", "quiz").Logger(),
	}
}

// Resume creates a quiz screen for a test that is already in progress,
// such as one returned by a retry.
func Resume(test session.Test, opts Options) *QuizScreen {
	q := &QuizScreen{
		settings: test.Settings(),
		opts:     opts,
		log:      opts.Logger.With().Str("component", "quiz").Logger(),
	}
	q.setTest(test)
	return q
}

func (q *QuizScreen) Init() tea.Cmd {
	if q.ready {
		return q.syncQuestion()
	}
	src, settings, now := q.src, q.settings, q.opts.now()
	return func() tea.Msg {
		t, err := session.Start(src, settings, now)
		return testReadyMsg{Test: t, Err: err}
	}
}

func (q *QuizScreen) Title() string {
	return "Test"
}

func (q *QuizScreen) Status() string {
	if !q.ready {
		return ""
	}
	return fmt.Sprintf("✓ %d  ✗ %d", q.test.CorrectCount(), q.test.IncorrectCount())
}

func (q *QuizScreen) HandlesEscape() bool {
	return q.ready && q.errMsg == ""
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case !q.ready || q.errMsg != "":
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case q.confirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave test"},
			{Key: "N", Description: "Keep going"},
		}
	case q.answered():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "←→", Description: "Prev/Next"},
			{Key: "Esc", Description: "Quit"},
		}
	case q.isMC:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Choose"},
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter", Description: "Choose"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "PgUp", Description: "Prev"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case testReadyMsg:
		if msg.Err != nil {
			q.log.Error().Err(msg.Err).Msg("failed to start test")
			q.errMsg = msg.Err.Error()
			return q, nil
		}
		q.log.Info().
			Str("test_id", msg.Test.ID()).
			Str("difficulty", msg.Test.Settings().Difficulty.String()).
			Int("questions", msg.Test.Len()).
			Msg("test started")
		q.setTest(msg.Test)
		return q, q.syncQuestion()

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	if q.ready && !q.isMC && !q.answered() {
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		return q, cmd
	}
	return q, nil
}

func (q *QuizScreen) setTest(t session.Test) {
	q.test = t
	q.ready = true
}

// current returns the question under the cursor. It must only be called
// while the test is in progress.
func (q *QuizScreen) current() session.TestQuestion {
	tq, _ := q.test.CurrentQuestion()
	return tq
}

func (q *QuizScreen) answered() bool {
	tq, ok := q.test.CurrentQuestion()
	return ok && tq.State.Answered()
}

// syncQuestion rebuilds the answer widgets for the current question.
func (q *QuizScreen) syncQuestion() tea.Cmd {
	tq, ok := q.test.CurrentQuestion()
	if !ok {
		return nil
	}

	if mc, ok := tq.Question.(*problemgen.MultipleChoice); ok {
		q.isMC = true
		q.choices = components.NewMultiChoice(mc.Choices)
		if tq.State.Answered() {
			q.choices.Lock(slices.Index(mc.Choices, tq.State.Chosen), mc.CorrectIndex)
		}
		return nil
	}

	q.isMC = false
	q.input = components.NewTextInput("Type your answer...", true, 24)
	if tq.State.Answered() {
		q.input.SetValue(tq.State.Chosen)
		q.input.Submit(tq.State.Status == session.AnsweredCorrect)
		return nil
	}
	return q.input.Init()
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if q.errMsg != "" {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if !q.ready {
		return q, nil
	}

	if q.confirm {
		switch key {
		case "y", "Y":
			q.log.Info().Str("test_id", q.test.ID()).
				Int("answered", q.test.AnsweredCount()).
				Msg("test abandoned")
			return q, func() tea.Msg { return router.HomeMsg{} }
		case "n", "N", "esc":
			q.confirm = false
		}
		return q, nil
	}

	switch key {
	case "esc":
		q.confirm = true
		return q, nil
	case "pgup":
		return q.retreat()
	case "pgdown":
		return q.advance()
	}

	if q.answered() {
		switch key {
		case "enter", "space":
			return q.next()
		case "left":
			return q.retreat()
		case "right":
			return q.advance()
		}
		return q, nil
	}

	if q.isMC {
		if idx, ok := q.choices.IndexForKey(key); ok {
			return q.choose(idx)
		}
		switch key {
		case "enter":
			return q.choose(q.choices.Selected)
		case "left":
			return q.retreat()
		}
		var cmd tea.Cmd
		q.choices, cmd = q.choices.Update(msg)
		return q, cmd
	}

	if key == "enter" {
		return q.submit()
	}
	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return q, cmd
}

func (q *QuizScreen) choose(idx int) (screen.Screen, tea.Cmd) {
	t, res, err := q.test.Choose(idx)
	return q.record(t, res, err)
}

func (q *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	value := q.input.Value()
	if value == "" {
		return q, nil
	}
	t, res, err := q.test.Answer(value)
	return q.record(t, res, err)
}

func (q *QuizScreen) record(t session.Test, res problemgen.ValidationResult, err error) (screen.Screen, tea.Cmd) {
	if err != nil {
		q.log.Error().Err(err).Msg("answer rejected")
		return q, nil
	}
	if res.IsInvalid() {
		q.notice = res.Reason
		return q, nil
	}

	q.log.Debug().
		Str("test_id", t.ID()).
		Int("question", t.Current()+1).
		Bool("correct", res.IsCorrect()).
		Msg("question answered")

	q.test = t
	q.result = &res
	q.notice = ""
	if n := t.Streak(t.Current()); res.IsCorrect() && session.IsStreakMilestone(n) {
		q.notice = fmt.Sprintf("%d in a row!", n)
	}
	return q, q.syncQuestion()
}

// next moves to the next unanswered question, finishing the test when
// none is left.
func (q *QuizScreen) next() (screen.Screen, tea.Cmd) {
	t, err := q.test.AdvanceUnanswered()
	if err != nil {
		q.log.Error().Err(err).Msg("advance rejected")
		return q, nil
	}
	return q.moveTo(t)
}

// advance steps forward one question. Unanswered questions cannot be
// skipped, so every question before the cursor always has an answer.
func (q *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	if !q.answered() {
		q.notice = "Answer this question first."
		return q, nil
	}
	t, err := q.test.Advance()
	if err != nil {
		return q, nil
	}
	return q.moveTo(t)
}

func (q *QuizScreen) retreat() (screen.Screen, tea.Cmd) {
	t, err := q.test.Retreat()
	if err != nil {
		q.notice = "This is the first question."
		return q, nil
	}
	return q.moveTo(t)
}

func (q *QuizScreen) moveTo(t session.Test) (screen.Screen, tea.Cmd) {
	q.test = t
	q.result = nil
	q.notice = ""
	if t.Phase() == session.PhaseFinished {
		return q, q.finish()
	}
	return q, q.syncQuestion()
}

// finish swaps this screen for the summary of the finished test.
func (q *QuizScreen) finish() tea.Cmd {
	now := q.opts.now()
	sum, err := session.BuildSummary(q.test, now)
	if err != nil {
		q.log.Error().Err(err).Msg("build summary")
		q.errMsg = err.Error()
		return nil
	}

	q.log.Info().
		Str("test_id", q.test.ID()).
		Int("correct", sum.Correct).
		Int("total", sum.Total).
		Dur("elapsed", sum.Elapsed).
		Msg("test finished")

	finished := q.test
	actions := summary.Actions{
		RetryAll: func() screen.Screen {
			t, err := finished.RetryAll(q.opts.now())
			if err != nil {
				q.log.Error().Err(err).Msg("retry all")
				return nil
			}
			q.log.Info().Str("test_id", t.ID()).Str("mode", "all").Msg("retrying test")
			return Resume(t, q.opts)
		},
	}
	if finished.HasIncorrect() {
		actions.RetryIncorrect = func() screen.Screen {
			t, err := finished.RetryIncorrect()
			if err != nil {
				q.log.Error().Err(err).Msg("retry incorrect")
				return nil
			}
			q.log.Info().Str("test_id", t.ID()).Str("mode", "incorrect").Msg("retrying test")
			return Resume(t, q.opts)
		}
	}

	next := summary.New(sum, actions)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

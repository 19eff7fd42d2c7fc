package session

import "github.com/abhisek/quickmaths/internal/problemgen"

// Phase is the lifecycle phase of a test.
type Phase int

const (
	PhaseNotStarted Phase = iota // Zero Test, no questions yet
	PhaseInProgress              // Current points at a question
	PhaseFinished                // Current is one past the last question
)

func (p Phase) String() string {
	switch p {
	case PhaseInProgress:
		return "in progress"
	case PhaseFinished:
		return "finished"
	default:
		return "not started"
	}
}

// AnswerStatus records whether and how a question was answered.
type AnswerStatus int

const (
	NotAnswered AnswerStatus = iota
	AnsweredCorrect
	AnsweredIncorrect
)

func (s AnswerStatus) String() string {
	switch s {
	case AnsweredCorrect:
		return "correct"
	case AnsweredIncorrect:
		return "incorrect"
	default:
		return "not answered"
	}
}

// AnswerState is the answer recorded against one question.
type AnswerState struct {
	Status AnswerStatus

	// Chosen is the answer as the user gave it. For multiple-choice
	// questions it is the text of the selected choice. Empty when
	// NotAnswered.
	Chosen string
}

// Answered reports whether a terminal answer has been recorded.
func (s AnswerState) Answered() bool { return s.Status != NotAnswered }

// TestQuestion pairs a generated question with its answer state. The
// question itself is shared between retries; only State changes.
type TestQuestion struct {
	Question problemgen.Question
	State    AnswerState
}

package problemgen

import (
	"strconv"
	"strings"
)

// Question is a generated question ready for display. It is a closed set:
// the only implementations are *MultipleChoice and *Input, and hosts
// dispatch on them with a type switch.
//
// A Question is immutable once constructed.
type Question interface {
	// Text is the prompt shown to the user.
	Text() string

	// CorrectAnswer is the canonical correct answer as displayed text.
	CorrectAnswer() string

	// Validate grades a submitted response.
	Validate(response string) ValidationResult

	question()
}

var (
	_ Question = (*MultipleChoice)(nil)
	_ Question = (*Input)(nil)
)

// MultipleChoice is a question answered by picking one of a fixed set of
// pairwise distinct choices.
type MultipleChoice struct {
	Prompt       string
	Choices      []string
	CorrectIndex int
}

func (q *MultipleChoice) question() {}

func (q *MultipleChoice) Text() string { return q.Prompt }

func (q *MultipleChoice) CorrectAnswer() string { return q.Choices[q.CorrectIndex] }

// Resolve maps a response onto a choice index. A response may be the
// choice text (case-insensitive) or the 1-based index of the choice. Text
// wins when both match, since numeric choices are common.
func (q *MultipleChoice) Resolve(response string) (int, bool) {
	response = strings.TrimSpace(response)
	if response == "" {
		return -1, false
	}
	for i, c := range q.Choices {
		if strings.EqualFold(strings.TrimSpace(c), response) {
			return i, true
		}
	}
	if idx, err := strconv.Atoi(response); err == nil && idx >= 1 && idx <= len(q.Choices) {
		return idx - 1, true
	}
	return -1, false
}

// Validate implements Question.
func (q *MultipleChoice) Validate(response string) ValidationResult {
	idx, ok := q.Resolve(response)
	if !ok {
		return Invalid("Please choose one of the options.")
	}
	if idx == q.CorrectIndex {
		return Correct
	}
	return Incorrect
}

// Input is a question answered with free text.
type Input struct {
	Prompt string
	Answer string
	check  func(string) ValidationResult
}

// NewInput creates a free-input question whose responses are graded by check.
func NewInput(prompt, answer string, check func(string) ValidationResult) *Input {
	return &Input{Prompt: prompt, Answer: answer, check: check}
}

func (q *Input) question() {}

func (q *Input) Text() string { return q.Prompt }

func (q *Input) CorrectAnswer() string { return q.Answer }

// Validate implements Question.
func (q *Input) Validate(response string) ValidationResult {
	return q.check(response)
}

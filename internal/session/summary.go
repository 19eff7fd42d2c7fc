package session

import "time"

// Summary holds the data displayed at the end of a test.
type Summary struct {
	Correct  int
	Total    int
	Elapsed  time.Duration
	Accuracy float64
	Missed   []MissedQuestion

	// BestStreak is the longest run of consecutive correct answers.
	BestStreak int

	// CanRetryIncorrect is false when every question was answered correctly.
	CanRetryIncorrect bool
}

// MissedQuestion is a question answered incorrectly.
type MissedQuestion struct {
	Number  int // 1-based position in the test
	Prompt  string
	Chosen  string
	Correct string
}

// BuildSummary creates a Summary from a finished test.
func BuildSummary(t Test, now time.Time) (*Summary, error) {
	score, err := t.Score(now)
	if err != nil {
		return nil, err
	}

	var missed []MissedQuestion
	for i, q := range t.questions {
		if q.State.Status != AnsweredIncorrect {
			continue
		}
		missed = append(missed, MissedQuestion{
			Number:  i + 1,
			Prompt:  q.Question.Text(),
			Chosen:  q.State.Chosen,
			Correct: q.Question.CorrectAnswer(),
		})
	}

	var accuracy float64
	if score.Total > 0 {
		accuracy = float64(score.Correct) / float64(score.Total)
	}

	return &Summary{
		Correct:           score.Correct,
		Total:             score.Total,
		Elapsed:           score.Elapsed,
		Accuracy:          accuracy,
		Missed:            missed,
		BestStreak:        t.BestStreak(),
		CanRetryIncorrect: len(missed) > 0,
	}, nil
}

package problemgen

import "math/rand/v2"

const (
	// ChoiceCount is the number of options in a multiple-choice question.
	ChoiceCount = 4

	// distractorAttemptsPerWidth is how many consecutive rejected draws are
	// tolerated before the sampling range is widened.
	distractorAttemptsPerWidth = 200
)

// Distractors returns count distinct values, none equal to correct, by
// rejection sampling from draw.
//
// draw receives a widening factor that starts at 1 and doubles after every
// distractorAttemptsPerWidth consecutive rejections. Draw functions scale
// their range by it, so the distribution is unchanged unless the initial
// range is too narrow to yield count distinct values.
func Distractors[T comparable](correct T, count int, draw func(widen int) T) []T {
	out := make([]T, 0, count)
	seen := map[T]bool{correct: true}
	widen, misses := 1, 0
	for len(out) < count {
		candidate := draw(widen)
		if seen[candidate] {
			misses++
			if misses >= distractorAttemptsPerWidth {
				widen *= 2
				misses = 0
			}
			continue
		}
		seen[candidate] = true
		out = append(out, candidate)
		misses = 0
	}
	return out
}

// shuffleChoices shuffles the correct answer in with the wrong ones and
// returns the post-shuffle index of the correct answer.
func shuffleChoices(rng *rand.Rand, correct string, wrong []string) ([]string, int) {
	choices := make([]string, 0, len(wrong)+1)
	choices = append(choices, correct)
	choices = append(choices, wrong...)
	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	for i, c := range choices {
		if c == correct {
			return choices, i
		}
	}
	return choices, 0
}

// newMultipleChoice builds a multiple-choice question from a correct answer
// and its distractors.
func newMultipleChoice(rng *rand.Rand, prompt, correct string, wrong []string) *MultipleChoice {
	choices, idx := shuffleChoices(rng, correct, wrong)
	return &MultipleChoice{Prompt: prompt, Choices: choices, CorrectIndex: idx}
}

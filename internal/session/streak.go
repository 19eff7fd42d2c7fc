package session

// streakMilestones are the first streak lengths worth calling out. Beyond
// the last one, every multiple of five is a milestone.
var streakMilestones = []int{5, 10, 15, 20}

// NextStreakMilestone returns the next milestone above the current streak
// length.
func NextStreakMilestone(current int) int {
	for _, m := range streakMilestones {
		if m > current {
			return m
		}
	}
	return ((current / 5) + 1) * 5
}

// IsStreakMilestone reports whether a streak of length n has just reached
// a milestone.
func IsStreakMilestone(n int) bool {
	return n > 0 && NextStreakMilestone(n-1) == n
}

// Streak returns the number of consecutive correct answers ending at
// question i, counting backwards in test order. It is 0 when question i is
// not correct or out of range.
func (t Test) Streak(i int) int {
	if i < 0 || i >= len(t.questions) {
		return 0
	}
	n := 0
	for j := i; j >= 0 && t.questions[j].State.Status == AnsweredCorrect; j-- {
		n++
	}
	return n
}

// BestStreak returns the longest run of consecutive correct answers in test
// order.
func (t Test) BestStreak() int {
	best, run := 0, 0
	for _, q := range t.questions {
		if q.State.Status != AnsweredCorrect {
			run = 0
			continue
		}
		run++
		best = max(best, run)
	}
	return best
}

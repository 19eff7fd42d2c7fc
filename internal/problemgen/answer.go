package problemgen

import (
	"math"
	"strconv"
	"strings"
)

// Verdict is the outcome of validating a response.
type Verdict int

const (
	// VerdictInvalid means the response could not be understood. The user
	// should be asked again; nothing about the test changes.
	VerdictInvalid Verdict = iota
	VerdictCorrect
	VerdictIncorrect
)

// ValidationResult is returned by Question.Validate.
type ValidationResult struct {
	Verdict Verdict
	Reason  string // set only for VerdictInvalid
}

var (
	Correct   = ValidationResult{Verdict: VerdictCorrect}
	Incorrect = ValidationResult{Verdict: VerdictIncorrect}
)

// Invalid returns a result asking the user to correct their input.
func Invalid(reason string) ValidationResult {
	return ValidationResult{Verdict: VerdictInvalid, Reason: reason}
}

// IsInvalid reports whether the response was rejected without grading.
func (r ValidationResult) IsInvalid() bool { return r.Verdict == VerdictInvalid }

// IsCorrect reports whether the response was graded correct.
func (r ValidationResult) IsCorrect() bool { return r.Verdict == VerdictCorrect }

// integerCheck grades responses against an exact integer answer.
//
// Normalization: whitespace is trimmed and leading zeros are ignored
// (e.g., "007" matches "7").
func integerCheck(answer int64) func(string) ValidationResult {
	return func(response string) ValidationResult {
		n, err := strconv.ParseInt(strings.TrimSpace(response), 10, 64)
		if err != nil {
			return Invalid("Please enter an integer.")
		}
		if n == answer {
			return Correct
		}
		return Incorrect
	}
}

// decimalCheck grades responses against an answer already rounded to dp
// decimal places. The response is rounded to the same precision before
// comparison, so "3.14159" matches "3.14" at dp=2.
func decimalCheck(answer string, dp int) func(string) ValidationResult {
	return func(response string) ValidationResult {
		f, err := strconv.ParseFloat(strings.TrimSpace(response), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Invalid("Please enter a valid number.")
		}
		if formatDecimal(f, dp) == answer {
			return Correct
		}
		return Incorrect
	}
}

// roundTo rounds x to dp decimal places.
func roundTo(x float64, dp int) float64 {
	p := math.Pow(10, float64(dp))
	return math.Round(x*p) / p
}

// formatDecimal renders x rounded to exactly dp decimal places.
// Negative zero is normalised to zero.
func formatDecimal(x float64, dp int) string {
	r := roundTo(x, dp)
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', dp, 64)
}

// isWhole reports whether x is an integer to within float tolerance.
func isWhole(x float64) bool {
	return math.Abs(x-math.Round(x)) < 1e-9
}

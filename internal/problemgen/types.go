package problemgen

import (
	"fmt"
	"strings"
)

// Difficulty selects the number ranges and operation counts a generator uses.
type Difficulty int

const (
	Normal Difficulty = iota
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Hard:
		return "hard"
	default:
		return "normal"
	}
}

// DisplayName returns the capitalised label shown in the UI.
func (d Difficulty) DisplayName() string {
	if d == Hard {
		return "Hard"
	}
	return "Normal"
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDifficulty parses "normal" or "hard" (case-insensitive).
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return Normal, nil
	case "hard":
		return Hard, nil
	}
	return Normal, fmt.Errorf("invalid difficulty %q: must be normal or hard", s)
}

// ContentArea groups generators by mathematical topic.
type ContentArea int

const (
	NumberTheory ContentArea = iota
	Algebra
	Geometry
)

// AllContentAreas returns every content area in display order.
func AllContentAreas() []ContentArea {
	return []ContentArea{NumberTheory, Algebra, Geometry}
}

func (a ContentArea) String() string {
	switch a {
	case Algebra:
		return "algebra"
	case Geometry:
		return "geometry"
	default:
		return "number-theory"
	}
}

// DisplayName returns the label shown in the UI.
func (a ContentArea) DisplayName() string {
	switch a {
	case Algebra:
		return "Algebra"
	case Geometry:
		return "Geometry"
	default:
		return "Number theory"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a ContentArea) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *ContentArea) UnmarshalText(text []byte) error {
	parsed, err := ParseContentArea(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseContentArea accepts the slug form ("number-theory") as well as
// "number_theory" and "numbertheory".
func ParseContentArea(s string) (ContentArea, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	switch key {
	case "numbertheory", "number", "bodmas":
		return NumberTheory, nil
	case "algebra":
		return Algebra, nil
	case "geometry":
		return Geometry, nil
	}
	return NumberTheory, fmt.Errorf("invalid content area %q: must be number-theory, algebra or geometry", s)
}

// GenerateInput holds everything a generator needs to produce one question.
type GenerateInput struct {
	// Difficulty is the test-wide difficulty setting.
	Difficulty Difficulty

	// Index is the zero-based position of the question within the test.
	Index int

	// Count is the total number of questions in the test.
	Count int
}

// Progress returns the position of the question within its test in [0, 1].
// Single-question inputs are treated as the start of a test.
func (in GenerateInput) Progress() float64 {
	if in.Count < 2 {
		return 0
	}
	return Progress(in.Index, in.Count)
}

// multiplier returns hard when the input is Hard, otherwise 1.
func (in GenerateInput) multiplier(hard float64) float64 {
	if in.Difficulty == Hard {
		return hard
	}
	return 1
}

// Generator produces questions for a single kind of problem.
type Generator interface {
	// Name returns a short identifier used in logs and previews.
	Name() string

	// Generate produces a single question. It never fails: inapplicable
	// random draws are retried internally.
	Generate(input GenerateInput) Question
}

package session

import (
	"fmt"
	"slices"

	"github.com/abhisek/quickmaths/internal/problemgen"
)

// QuestionCounts are the allowed test lengths.
var QuestionCounts = []int{15, 30, 60}

// DefaultQuestionCount is the test length used when none is configured.
const DefaultQuestionCount = 15

// Settings configures a test.
type Settings struct {
	Difficulty    problemgen.Difficulty    `json:"difficulty"`
	ContentAreas  []problemgen.ContentArea `json:"content_areas"`
	QuestionCount int                      `json:"question_count"`
}

// DefaultSettings returns a Normal test over every content area.
func DefaultSettings() Settings {
	return Settings{
		Difficulty:    problemgen.Normal,
		ContentAreas:  problemgen.AllContentAreas(),
		QuestionCount: DefaultQuestionCount,
	}
}

// Validate checks the settings invariants: at least one content area, no
// duplicates, and a question count from QuestionCounts.
func (s Settings) Validate() error {
	if len(s.ContentAreas) == 0 {
		return &SettingsError{Field: "content areas", Reason: "at least one content area must be enabled"}
	}
	seen := make(map[problemgen.ContentArea]bool, len(s.ContentAreas))
	for _, a := range s.ContentAreas {
		if !slices.Contains(problemgen.AllContentAreas(), a) {
			return &SettingsError{Field: "content areas", Reason: fmt.Sprintf("unknown content area %d", int(a))}
		}
		if seen[a] {
			return &SettingsError{Field: "content areas", Reason: fmt.Sprintf("%s listed twice", a)}
		}
		seen[a] = true
	}
	if !slices.Contains(QuestionCounts, s.QuestionCount) {
		return &SettingsError{
			Field:  "question count",
			Reason: fmt.Sprintf("%d is not one of %v", s.QuestionCount, QuestionCounts),
		}
	}
	if s.Difficulty != problemgen.Normal && s.Difficulty != problemgen.Hard {
		return &SettingsError{Field: "difficulty", Reason: fmt.Sprintf("unknown difficulty %d", int(s.Difficulty))}
	}
	return nil
}

// Enabled reports whether area is part of the test.
func (s Settings) Enabled(area problemgen.ContentArea) bool {
	return slices.Contains(s.ContentAreas, area)
}

// WithArea returns a copy of s with area toggled on or off. Areas keep
// their canonical order. Turning off the last enabled area is refused and
// returns s unchanged with ok=false.
func (s Settings) WithArea(area problemgen.ContentArea, on bool) (Settings, bool) {
	var areas []problemgen.ContentArea
	for _, a := range problemgen.AllContentAreas() {
		enabled := s.Enabled(a)
		if a == area {
			enabled = on
		}
		if enabled {
			areas = append(areas, a)
		}
	}
	if len(areas) == 0 {
		return s, false
	}
	s.ContentAreas = areas
	return s, true
}

// NextQuestionCount returns the count after n in QuestionCounts, wrapping
// around. Unknown values restart at the first count.
func NextQuestionCount(n int) int {
	i := slices.Index(QuestionCounts, n)
	return QuestionCounts[(i+1)%len(QuestionCounts)]
}

package session

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quickmaths/internal/problemgen"
)

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"defaults", func(*Settings) {}, ""},
		{"no areas", func(s *Settings) { s.ContentAreas = nil }, "content areas"},
		{"duplicate area", func(s *Settings) {
			s.ContentAreas = []problemgen.ContentArea{problemgen.Algebra, problemgen.Algebra}
		}, "content areas"},
		{"bad count", func(s *Settings) { s.QuestionCount = 20 }, "question count"},
		{"bad difficulty", func(s *Settings) { s.Difficulty = 7 }, "difficulty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var serr *SettingsError
			require.True(t, errors.As(err, &serr), "got %v", err)
			assert.Equal(t, tt.wantErr, serr.Field)
		})
	}
}

func TestSettings_WithArea(t *testing.T) {
	s := DefaultSettings()

	s, ok := s.WithArea(problemgen.Algebra, false)
	require.True(t, ok)
	assert.Equal(t, []problemgen.ContentArea{problemgen.NumberTheory, problemgen.Geometry}, s.ContentAreas)

	s, ok = s.WithArea(problemgen.NumberTheory, false)
	require.True(t, ok)
	s, ok = s.WithArea(problemgen.Geometry, false)
	assert.False(t, ok, "last area cannot be disabled")
	assert.Equal(t, []problemgen.ContentArea{problemgen.Geometry}, s.ContentAreas)

	s, ok = s.WithArea(problemgen.Algebra, true)
	require.True(t, ok)
	assert.Equal(t, []problemgen.ContentArea{problemgen.Algebra, problemgen.Geometry}, s.ContentAreas)
}

func TestNextQuestionCount(t *testing.T) {
	assert.Equal(t, 30, NextQuestionCount(15))
	assert.Equal(t, 60, NextQuestionCount(30))
	assert.Equal(t, 15, NextQuestionCount(60))
	assert.Equal(t, 15, NextQuestionCount(7))
}

func TestSettings_JSON(t *testing.T) {
	s := Settings{
		Difficulty:    problemgen.Hard,
		ContentAreas:  []problemgen.ContentArea{problemgen.NumberTheory, problemgen.Geometry},
		QuestionCount: 60,
	}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"difficulty":"hard","content_areas":["number-theory","geometry"],"question_count":60}`,
		string(data))

	var got Settings
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, s, got)
}

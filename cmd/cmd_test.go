package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quickmaths/internal/app"
	"github.com/abhisek/quickmaths/internal/config"
	"github.com/abhisek/quickmaths/internal/problemgen"
	"github.com/abhisek/quickmaths/internal/session"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"QUICKMATHS_DB", "QUICKMATHS_LOG_FILE", "QUICKMATHS_LOG_LEVEL", "QUICKMATHS_LOG_FORMAT",
		"QUICKMATHS_SEED", "QUICKMATHS_MAX_LEG", "QUICKMATHS_DIFFICULTY", "QUICKMATHS_AREAS",
		"QUICKMATHS_QUESTION_COUNT",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigSettings(t *testing.T) {
	s, err := configSettings(&config.Config{})
	require.NoError(t, err)
	assert.Equal(t, session.DefaultSettings(), s)

	s, err = configSettings(&config.Config{
		Difficulty:    "Hard",
		Areas:         []string{"geometry", "algebra", "geometry"},
		QuestionCount: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, problemgen.Hard, s.Difficulty)
	assert.Equal(t, []problemgen.ContentArea{problemgen.Geometry, problemgen.Algebra}, s.ContentAreas)
	assert.Equal(t, 30, s.QuestionCount)
}

func TestConfigSettings_Invalid(t *testing.T) {
	_, err := configSettings(&config.Config{Difficulty: "extreme"})
	assert.Error(t, err)

	_, err = configSettings(&config.Config{Areas: []string{"calculus"}})
	assert.Error(t, err)

	_, err = configSettings(&config.Config{QuestionCount: 20})
	var serr *session.SettingsError
	assert.True(t, errors.As(err, &serr), "got %v", err)
}

func newFlagCmd() *cobra.Command {
	c := &cobra.Command{Use: "quiz"}
	c.Flags().String("difficulty", "", "")
	c.Flags().StringSlice("areas", nil, "")
	c.Flags().Int("count", 0, "")
	return c
}

func TestApplySettingsFlags(t *testing.T) {
	c := newFlagCmd()
	require.NoError(t, c.Flags().Parse([]string{"--difficulty", "hard", "--areas", "number-theory", "--count", "60"}))

	s, err := applySettingsFlags(c, session.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, problemgen.Hard, s.Difficulty)
	assert.Equal(t, []problemgen.ContentArea{problemgen.NumberTheory}, s.ContentAreas)
	assert.Equal(t, 60, s.QuestionCount)
}

func TestApplySettingsFlags_UnsetKeepsBase(t *testing.T) {
	c := newFlagCmd()
	require.NoError(t, c.Flags().Parse(nil))

	base := session.DefaultSettings()
	base.Difficulty = problemgen.Hard
	s, err := applySettingsFlags(c, base)
	require.NoError(t, err)
	assert.Equal(t, base, s)
}

func TestApplySettingsFlags_RejectsBadCount(t *testing.T) {
	c := newFlagCmd()
	require.NoError(t, c.Flags().Parse([]string{"--count", "7"}))

	_, err := applySettingsFlags(c, session.DefaultSettings())
	assert.Error(t, err)
}

type memPrefs struct {
	name     string
	settings session.Settings
	saved    bool
	err      error
}

func (m *memPrefs) Username(context.Context) (string, error) { return m.name, m.err }
func (m *memPrefs) SetUsername(_ context.Context, name string) error {
	m.name = name
	return nil
}
func (m *memPrefs) Settings(context.Context) (session.Settings, bool, error) {
	return m.settings, m.saved, m.err
}
func (m *memPrefs) SaveSettings(context.Context, session.Settings) error { return nil }
func (m *memPrefs) Reset(context.Context) error                         { return nil }

func TestLoadPreferences(t *testing.T) {
	e := &env{cfg: &config.Config{}, log: zerolog.Nop()}
	saved := session.Settings{
		Difficulty:    problemgen.Hard,
		ContentAreas:  []problemgen.ContentArea{problemgen.Algebra},
		QuestionCount: 30,
	}

	opts := app.Options{Settings: session.DefaultSettings()}
	loadPreferences(context.Background(), &opts, &memPrefs{name: "Ada", settings: saved, saved: true}, e)
	assert.Equal(t, "Ada", opts.Username)
	assert.Equal(t, saved, opts.Settings)

	opts = app.Options{Settings: session.DefaultSettings()}
	loadPreferences(context.Background(), &opts, &memPrefs{err: errors.New("locked")}, e)
	assert.Equal(t, "", opts.Username)
	assert.Equal(t, session.DefaultSettings(), opts.Settings)
}

func TestNewBank_SeedIsReproducible(t *testing.T) {
	e := &env{cfg: &config.Config{Seed: 42, MaxLeg: 200}, log: zerolog.Nop()}

	build := func() []string {
		qs, err := newBank(e).Build(problemgen.Normal, problemgen.AllContentAreas(), 10)
		require.NoError(t, err)
		texts := make([]string, len(qs))
		for i, q := range qs {
			texts[i] = q.Text()
		}
		return texts
	}
	assert.Equal(t, build(), build())
}

func TestWritePreview(t *testing.T) {
	questions := []problemgen.Question{
		&problemgen.MultipleChoice{Prompt: "Pick 4", Choices: []string{"1", "4"}, CorrectIndex: 1},
		problemgen.NewInput("Simplify a + a", "2a", nil),
	}
	var buf bytes.Buffer
	writePreview(&buf, problemgen.Hard, questions)

	out := buf.String()
	for _, want := range []string{
		"Difficulty: Hard",
		"── Question 1/2 ──",
		"Pick 4",
		"  1) 1",
		" *2) 4",
		"Answer: 4",
		"Simplify a + a",
		"Answer: 2a",
	} {
		assert.Contains(t, out, want)
	}
}

func TestPreviewCommand(t *testing.T) {
	clearEnv(t)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"preview", "--generator", "linear", "--count", "3", "--seed", "7"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "Answer: "))
	assert.Contains(t, out, "── Question 3/3 ──")
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "quickmaths (devel)\n", buf.String())
}

package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/abhisek/quickmaths/internal/display"
	"github.com/abhisek/quickmaths/internal/problemgen"
	"github.com/abhisek/quickmaths/internal/session"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take a test line by line, without the full-screen interface",
	Long: `Take a test in plain question-and-answer form.

Answers are read one line at a time from standard input, so a test can be
scripted or piped. Colours are only used when standard output is a terminal.`,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().String("difficulty", "", "Difficulty: normal or hard")
	quizCmd.Flags().StringSlice("areas", nil, "Content areas: number-theory, algebra, geometry")
	quizCmd.Flags().Int("count", 0, "Number of questions: 15, 30 or 60")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	settings, err := configSettings(e.cfg)
	if err != nil {
		return err
	}
	settings, err = applySettingsFlags(cmd, settings)
	if err != nil {
		return err
	}

	test, err := session.Start(newBank(e), settings, time.Now())
	if err != nil {
		return fmt.Errorf("start test: %w", err)
	}
	e.log.Info().
		Str("test_id", test.ID()).
		Str("difficulty", settings.Difficulty.String()).
		Int("questions", settings.QuestionCount).
		Msg("test started")

	styled := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	console := display.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout(), styled)

	_, err = display.Run(console, test, time.Now, e.log)
	if errors.Is(err, display.ErrAbandoned) {
		e.log.Info().Str("test_id", test.ID()).Msg("test abandoned")
		return nil
	}
	return err
}

// applySettingsFlags overrides settings with the flags the user set.
func applySettingsFlags(cmd *cobra.Command, s session.Settings) (session.Settings, error) {
	flags := cmd.Flags()
	if flags.Changed("difficulty") {
		v, _ := flags.GetString("difficulty")
		d, err := problemgen.ParseDifficulty(v)
		if err != nil {
			return s, err
		}
		s.Difficulty = d
	}
	if flags.Changed("areas") {
		v, _ := flags.GetStringSlice("areas")
		areas, err := parseAreas(v)
		if err != nil {
			return s, err
		}
		s.ContentAreas = areas
	}
	if flags.Changed("count") {
		s.QuestionCount, _ = flags.GetInt("count")
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickmaths/internal/app"
	"github.com/abhisek/quickmaths/internal/config"
	"github.com/abhisek/quickmaths/internal/problemgen"
	"github.com/abhisek/quickmaths/internal/session"
	"github.com/abhisek/quickmaths/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	settings, err := configSettings(e.cfg)
	if err != nil {
		return err
	}

	opts := app.Options{
		Source:   newBank(e),
		Settings: settings,
		Logger:   e.log,
		Clock:    time.Now,
	}

	// The quiz works without the store; only the name and settings are lost.
	st, err := openStore(e.cfg)
	if err != nil {
		e.log.Warn().Err(err).Msg("preferences unavailable")
	} else {
		defer st.Close()
		opts.Prefs = st.Preferences()
		loadPreferences(cmd.Context(), &opts, opts.Prefs, e)
	}

	e.log.Info().
		Str("difficulty", opts.Settings.Difficulty.String()).
		Int("questions", opts.Settings.QuestionCount).
		Bool("known_user", opts.Username != "").
		Msg("starting app")

	return app.Run(opts)
}

// loadPreferences fills in the saved name and settings. Saved settings win
// over the configured ones.
func loadPreferences(ctx context.Context, opts *app.Options, prefs store.PreferenceRepo, e *env) {
	name, err := prefs.Username(ctx)
	if err != nil {
		e.log.Warn().Err(err).Msg("failed to load username")
	}
	opts.Username = name

	saved, ok, err := prefs.Settings(ctx)
	switch {
	case err != nil:
		e.log.Warn().Err(err).Msg("failed to load settings")
	case ok:
		opts.Settings = saved
	}
}

// newBank builds the question bank with a generator seeded from the
// configuration, or randomly when no seed is set.
func newBank(e *env) *problemgen.Bank {
	seed := e.cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	e.log.Debug().Uint64("seed", seed).Int("max_leg", e.cfg.MaxLeg).Msg("building question bank")

	rng := rand.New(rand.NewPCG(seed, seed))
	return problemgen.NewBank(rng, problemgen.NewTriples(e.cfg.MaxLeg))
}

// configSettings returns the default test settings with any configured
// difficulty, areas and question count applied.
func configSettings(cfg *config.Config) (session.Settings, error) {
	s := session.DefaultSettings()
	if cfg.Difficulty != "" {
		d, err := problemgen.ParseDifficulty(cfg.Difficulty)
		if err != nil {
			return s, fmt.Errorf("QUICKMATHS_DIFFICULTY: %w", err)
		}
		s.Difficulty = d
	}
	if len(cfg.Areas) > 0 {
		areas, err := parseAreas(cfg.Areas)
		if err != nil {
			return s, fmt.Errorf("QUICKMATHS_AREAS: %w", err)
		}
		s.ContentAreas = areas
	}
	if cfg.QuestionCount != 0 {
		s.QuestionCount = cfg.QuestionCount
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// parseAreas parses content area names, dropping duplicates.
func parseAreas(names []string) ([]problemgen.ContentArea, error) {
	areas := make([]problemgen.ContentArea, 0, len(names))
	seen := make(map[problemgen.ContentArea]bool)
	for _, n := range names {
		a, err := problemgen.ParseContentArea(n)
		if err != nil {
			return nil, err
		}
		if seen[a] {
			continue
		}
		seen[a] = true
		areas = append(areas, a)
	}
	return areas, nil
}

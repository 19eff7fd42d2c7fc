package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/quickmaths/internal/config"
	"github.com/abhisek/quickmaths/internal/logger"
	"github.com/abhisek/quickmaths/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quickmaths",
	Short: "Maths quiz for the terminal",
	Long:  "Quick Maths — timed terminal tests in number theory, algebra and geometry.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUICKMATHS_DB env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (overrides QUICKMATHS_LOG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides QUICKMATHS_LOG_LEVEL env var)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for question generation; 0 picks a random seed (overrides QUICKMATHS_SEED env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// env is the configuration and logger shared by every subcommand.
type env struct {
	cfg    *config.Config
	log    zerolog.Logger
	closer io.Closer
}

func (e *env) Close() error {
	return e.closer.Close()
}

// setup loads configuration, applies the persistent flags on top of it and
// opens the log destination.
func setup(cmd *cobra.Command) (*env, error) {
	cfg := config.Load()
	flags := cmd.Flags()
	if p, _ := flags.GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := flags.GetString("log-file"); p != "" {
		cfg.LogFile = p
	}
	if l, _ := flags.GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}

	w, err := logger.Open(cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, w).
		With().Str("command", cmd.Name()).Logger()

	return &env{cfg: cfg, log: log, closer: w}, nil
}

// resolveDBPath returns the database path using --db / QUICKMATHS_DB
// (highest priority), then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore opens the preference store. Callers that can run without it
// log the error and carry on.
func openStore(cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// DBPath overrides the preference database location. Empty means the
	// default XDG path.
	DBPath string

	// LogFile receives structured logs. Empty disables logging, since the
	// terminal belongs to the quiz.
	LogFile   string
	LogLevel  string
	LogFormat string

	// Seed makes question generation reproducible when non-zero.
	Seed uint64

	// MaxLeg bounds the legs of the Pythagorean triple table.
	MaxLeg int

	// Difficulty, Areas and QuestionCount seed the test settings when no
	// saved preferences exist. Empty values fall back to the defaults.
	Difficulty    string
	Areas         []string
	QuestionCount int
}

// Load reads configuration from QUICKMATHS_* environment variables with
// sensible defaults. It loads a .env file if present but does not fail if
// it is missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		DBPath:        getEnv("QUICKMATHS_DB", ""),
		LogFile:       getEnv("QUICKMATHS_LOG_FILE", ""),
		LogLevel:      getEnv("QUICKMATHS_LOG_LEVEL", "info"),
		LogFormat:     getEnv("QUICKMATHS_LOG_FORMAT", "pretty"),
		Seed:          getEnvUint64("QUICKMATHS_SEED", 0),
		MaxLeg:        getEnvInt("QUICKMATHS_MAX_LEG", 2000),
		Difficulty:    getEnv("QUICKMATHS_DIFFICULTY", ""),
		Areas:         splitList(getEnv("QUICKMATHS_AREAS", "")),
		QuestionCount: getEnvInt("QUICKMATHS_QUESTION_COUNT", 0),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvUint64(key string, fallback uint64) uint64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// splitList splits a comma-separated string into trimmed, non-empty parts.
// Returns nil if the input is empty.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

package store

import (
	"context"

	"github.com/abhisek/quickmaths/internal/session"
)

// PreferenceRepo persists the player's name and last used test settings.
// Test results are never stored.
type PreferenceRepo interface {
	// Username returns the saved name, or "" if none is saved.
	Username(ctx context.Context) (string, error)

	// SetUsername saves the player's name.
	SetUsername(ctx context.Context, name string) error

	// Settings returns the saved test settings. ok is false when nothing
	// valid is saved.
	Settings(ctx context.Context) (settings session.Settings, ok bool, err error)

	// SaveSettings stores settings after validating them.
	SaveSettings(ctx context.Context, settings session.Settings) error

	// Reset deletes every saved preference.
	Reset(ctx context.Context) error
}

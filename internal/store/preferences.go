package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/quickmaths/internal/session"
)

const (
	keyUsername = "username"
	keySettings = "settings"
)

// preferenceRepo implements PreferenceRepo as a key/value table.
type preferenceRepo struct {
	db *sql.DB
}

func (r *preferenceRepo) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query preference %q: %w", key, err)
	}
	return value, true, nil
}

func (r *preferenceRepo) put(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save preference %q: %w", key, err)
	}
	return nil
}

func (r *preferenceRepo) Username(ctx context.Context) (string, error) {
	name, _, err := r.get(ctx, keyUsername)
	return name, err
}

func (r *preferenceRepo) SetUsername(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("username must not be empty")
	}
	return r.put(ctx, keyUsername, name)
}

func (r *preferenceRepo) Settings(ctx context.Context) (session.Settings, bool, error) {
	raw, ok, err := r.get(ctx, keySettings)
	if err != nil || !ok {
		return session.Settings{}, false, err
	}
	var s session.Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return session.Settings{}, false, nil
	}
	if s.Validate() != nil {
		return session.Settings{}, false, nil
	}
	return s, true, nil
}

func (r *preferenceRepo) SaveSettings(ctx context.Context, s session.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return r.put(ctx, keySettings, string(data))
}

func (r *preferenceRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM preferences`); err != nil {
		return fmt.Errorf("reset preferences: %w", err)
	}
	return nil
}

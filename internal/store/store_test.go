package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/abhisek/quickmaths/internal/problemgen"
	"github.com/abhisek/quickmaths/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if v, err := s.SchemaVersion(ctx); err != nil || v != len(migrations) {
		t.Errorf("SchemaVersion = %d, %v; want %d", v, err, len(migrations))
	}
	if err := s.Preferences().SetUsername(ctx, "Ada"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopening leaves an up to date schema and its data alone.
	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if name, _ := s.Preferences().Username(ctx); name != "Ada" {
		t.Errorf("Username after reopen = %q", name)
	}

	if _, err := s.DB().Exec("PRAGMA user_version = 99"); err != nil {
		t.Fatal(err)
	}
	s.Close()
	if _, err := Open(path); err == nil {
		t.Error("Open should refuse a schema newer than the build")
	}
}

func TestUsername(t *testing.T) {
	repo := openTestStore(t).Preferences()
	ctx := context.Background()

	name, err := repo.Username(ctx)
	if err != nil {
		t.Fatalf("Username: %v", err)
	}
	if name != "" {
		t.Errorf("Username = %q, want empty", name)
	}

	if err := repo.SetUsername(ctx, "  Ada "); err != nil {
		t.Fatalf("SetUsername: %v", err)
	}
	if err := repo.SetUsername(ctx, "Grace"); err != nil {
		t.Fatalf("SetUsername overwrite: %v", err)
	}
	name, _ = repo.Username(ctx)
	if name != "Grace" {
		t.Errorf("Username = %q, want Grace", name)
	}

	if err := repo.SetUsername(ctx, "   "); err == nil {
		t.Error("expected error for blank username")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	repo := openTestStore(t).Preferences()
	ctx := context.Background()

	if _, ok, err := repo.Settings(ctx); err != nil || ok {
		t.Fatalf("Settings on empty store = ok %v, err %v", ok, err)
	}

	want := session.Settings{
		Difficulty:    problemgen.Hard,
		ContentAreas:  []problemgen.ContentArea{problemgen.Algebra},
		QuestionCount: 30,
	}
	if err := repo.SaveSettings(ctx, want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	got, ok, err := repo.Settings(ctx)
	if err != nil || !ok {
		t.Fatalf("Settings = ok %v, err %v", ok, err)
	}
	if got.Difficulty != want.Difficulty || got.QuestionCount != want.QuestionCount ||
		len(got.ContentAreas) != 1 || got.ContentAreas[0] != problemgen.Algebra {
		t.Errorf("Settings = %+v, want %+v", got, want)
	}
}

func TestSaveSettings_RejectsInvalid(t *testing.T) {
	repo := openTestStore(t).Preferences()
	err := repo.SaveSettings(context.Background(), session.Settings{QuestionCount: 15})

	var serr *session.SettingsError
	if !errors.As(err, &serr) {
		t.Fatalf("SaveSettings = %v, want SettingsError", err)
	}
}

func TestSettings_IgnoresCorruptValue(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if _, err := s.DB().Exec(
		`INSERT INTO preferences (key, value, updated_at) VALUES ('settings', 'not json', CURRENT_TIMESTAMP)`); err != nil {
		t.Fatal(err)
	}

	if _, ok, err := s.Preferences().Settings(ctx); err != nil || ok {
		t.Errorf("Settings = ok %v, err %v; want ok false, nil", ok, err)
	}
}

func TestReset(t *testing.T) {
	repo := openTestStore(t).Preferences()
	ctx := context.Background()

	_ = repo.SetUsername(ctx, "Ada")
	_ = repo.SaveSettings(ctx, session.DefaultSettings())
	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if name, _ := repo.Username(ctx); name != "" {
		t.Errorf("Username after reset = %q", name)
	}
	if _, ok, _ := repo.Settings(ctx); ok {
		t.Error("Settings survived reset")
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("QUICKMATHS_DB", filepath.Join(dir, "env", "q.db"))
	p, err := DefaultDBPath()
	if err != nil || p != filepath.Join(dir, "env", "q.db") {
		t.Errorf("DefaultDBPath = %q, %v", p, err)
	}

	t.Setenv("QUICKMATHS_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	if err != nil || p != filepath.Join(dir, "quickmaths", "quickmaths.db") {
		t.Errorf("DefaultDBPath = %q, %v", p, err)
	}
}

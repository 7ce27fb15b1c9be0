package adduser

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/abismo-rpg/comandos/internal/storage"
	"github.com/abismo-rpg/comandos/internal/storage/sqlite"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.DatabasePath != "comandos.db" {
		t.Fatalf("DatabasePath = %q, want %q", cfg.DatabasePath, "comandos.db")
	}
	if cfg.Role != storage.RoleAdmin {
		t.Fatalf("Role = %q, want %q", cfg.Role, storage.RoleAdmin)
	}
}

func TestRunCreatesProfile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "site.db")
	out := &bytes.Buffer{}

	cfg := Config{
		DatabasePath: dbPath,
		Email:        "admin@example.com",
		Password:     "correct-horse",
		Role:         storage.RoleAdmin,
	}
	if err := Run(context.Background(), cfg, out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "admin@example.com") {
		t.Fatalf("output = %q", out.String())
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	profile, err := store.GetProfileByEmail(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("GetProfileByEmail() error = %v", err)
	}
	if profile.Role != storage.RoleAdmin {
		t.Fatalf("Role = %q, want %q", profile.Role, storage.RoleAdmin)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte("correct-horse")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRunRequiresEmail(t *testing.T) {
	cfg := Config{DatabasePath: "x.db", Password: "pw", Role: storage.RoleAdmin}
	if err := Run(context.Background(), cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("Run() error = nil, want error")
	}
}

func TestRunRequiresPassword(t *testing.T) {
	cfg := Config{DatabasePath: "x.db", Email: "a@b.c", Role: storage.RoleAdmin}
	if err := Run(context.Background(), cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("Run() error = nil, want error")
	}
}

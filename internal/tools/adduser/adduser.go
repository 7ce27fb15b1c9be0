// Package adduser bootstraps admin profiles for the site.
package adduser

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/abismo-rpg/comandos/internal/platform/id"
	"github.com/abismo-rpg/comandos/internal/storage"
	"github.com/abismo-rpg/comandos/internal/storage/sqlite"
)

// Config holds configuration for profile creation.
type Config struct {
	DatabasePath string
	Email        string
	Password     string
	Role         string
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		DatabasePath: "comandos.db",
		Role:         storage.RoleAdmin,
	}
	fs.StringVar(&cfg.DatabasePath, "db-path", cfg.DatabasePath, "SQLite database path")
	fs.StringVar(&cfg.Email, "email", cfg.Email, "login email")
	fs.StringVar(&cfg.Password, "password", cfg.Password, "login password")
	fs.StringVar(&cfg.Role, "role", cfg.Role, "profile role")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run creates the profile and reports the assigned user id to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	email := strings.TrimSpace(cfg.Email)
	if email == "" {
		return errors.New("email is required")
	}
	if cfg.Password == "" {
		return errors.New("password is required")
	}
	if strings.TrimSpace(cfg.Role) == "" {
		return errors.New("role is required")
	}
	if out == nil {
		return errors.New("output is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	userID, err := id.NewID()
	if err != nil {
		return fmt.Errorf("assign user id: %w", err)
	}

	store, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.Close()

	if err := store.PutProfile(ctx, storage.Profile{
		UserID:       userID,
		Email:        email,
		PasswordHash: string(hash),
		Role:         strings.TrimSpace(cfg.Role),
	}); err != nil {
		return fmt.Errorf("store profile: %w", err)
	}

	_, err = fmt.Fprintf(out, "created profile %s (%s)\n", userID, email)
	return err
}

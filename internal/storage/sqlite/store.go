// Package sqlite provides a SQLite-backed site storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/abismo-rpg/comandos/internal/command"
	"github.com/abismo-rpg/comandos/internal/platform/id"
	"github.com/abismo-rpg/comandos/internal/platform/storage/sqlitemigrate"
	"github.com/abismo-rpg/comandos/internal/storage"
	"github.com/abismo-rpg/comandos/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists command records and profiles in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite store at the provided path and applies embedded
// migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ListCommands returns every command record, most recently created first.
func (s *Store) ListCommands(ctx context.Context) ([]command.Command, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, command, title, categoria, response, created_at
		 FROM comandos
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list commands: %w", err)
	}
	defer rows.Close()

	return scanCommands(rows)
}

// ListPublicCommands returns commands outside the default category, ordered
// by category then title for the public grouped view.
func (s *Store) ListPublicCommands(ctx context.Context) ([]command.Command, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, command, title, categoria, response, created_at
		 FROM comandos
		 WHERE categoria != ?
		 ORDER BY categoria ASC, title ASC`,
		command.DefaultCategory,
	)
	if err != nil {
		return nil, fmt.Errorf("list public commands: %w", err)
	}
	defer rows.Close()

	return scanCommands(rows)
}

// GetCommand fetches one command record by id.
func (s *Store) GetCommand(ctx context.Context, commandID string) (command.Command, error) {
	if err := ctx.Err(); err != nil {
		return command.Command{}, err
	}
	if s == nil || s.sqlDB == nil {
		return command.Command{}, fmt.Errorf("storage is not configured")
	}
	commandID = strings.TrimSpace(commandID)
	if commandID == "" {
		return command.Command{}, fmt.Errorf("command id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, command, title, categoria, response, created_at
		 FROM comandos
		 WHERE id = ?`,
		commandID,
	)
	return scanCommand(row, "get command")
}

// GetCommandByName fetches one command record by its command name.
func (s *Store) GetCommandByName(ctx context.Context, name string) (command.Command, error) {
	if err := ctx.Err(); err != nil {
		return command.Command{}, err
	}
	if s == nil || s.sqlDB == nil {
		return command.Command{}, fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return command.Command{}, fmt.Errorf("command name is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, command, title, categoria, response, created_at
		 FROM comandos
		 WHERE command = ?
		 ORDER BY created_at DESC
		 LIMIT 1`,
		name,
	)
	return scanCommand(row, "get command by name")
}

// DistinctCategories returns the category labels currently in use, ascending.
func (s *Store) DistinctCategories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT DISTINCT categoria FROM comandos ORDER BY categoria ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// InsertCommand stores a new record, assigning its id and creation time.
func (s *Store) InsertCommand(ctx context.Context, cmd command.Command) (command.Command, error) {
	if err := ctx.Err(); err != nil {
		return command.Command{}, err
	}
	if s == nil || s.sqlDB == nil {
		return command.Command{}, fmt.Errorf("storage is not configured")
	}
	if err := cmd.Validate(); err != nil {
		return command.Command{}, err
	}

	commandID, err := id.NewID()
	if err != nil {
		return command.Command{}, fmt.Errorf("assign command id: %w", err)
	}
	cmd.ID = commandID
	cmd.Command = strings.TrimSpace(cmd.Command)
	cmd.Title = strings.TrimSpace(cmd.Title)
	cmd.Category = strings.TrimSpace(cmd.Category)
	if cmd.CreatedAt.IsZero() {
		cmd.CreatedAt = time.Now().UTC()
	}
	cmd.CreatedAt = fromMillis(toMillis(cmd.CreatedAt))

	if _, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO comandos (id, command, title, categoria, response, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		cmd.ID,
		cmd.Command,
		cmd.Title,
		cmd.Category,
		cmd.Response,
		toMillis(cmd.CreatedAt),
	); err != nil {
		return command.Command{}, fmt.Errorf("insert command: %w", err)
	}
	return cmd, nil
}

// UpdateCommand replaces the four content fields of the record with cmd.ID.
func (s *Store) UpdateCommand(ctx context.Context, cmd command.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(cmd.ID) == "" {
		return fmt.Errorf("command id is required")
	}
	if err := cmd.Validate(); err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE comandos
		 SET command = ?, title = ?, categoria = ?, response = ?
		 WHERE id = ?`,
		strings.TrimSpace(cmd.Command),
		strings.TrimSpace(cmd.Title),
		strings.TrimSpace(cmd.Category),
		cmd.Response,
		strings.TrimSpace(cmd.ID),
	)
	if err != nil {
		return fmt.Errorf("update command: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update command rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteCommand removes the record with the given id.
func (s *Store) DeleteCommand(ctx context.Context, commandID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	commandID = strings.TrimSpace(commandID)
	if commandID == "" {
		return fmt.Errorf("command id is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM comandos WHERE id = ?`, commandID)
	if err != nil {
		return fmt.Errorf("delete command: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete command rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// PutProfile upserts an identity-to-role mapping.
func (s *Store) PutProfile(ctx context.Context, profile storage.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	userID := strings.TrimSpace(profile.UserID)
	email := strings.TrimSpace(profile.Email)
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(profile.Role) == "" {
		return fmt.Errorf("role is required")
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	if _, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO profiles (user_id, email, password_hash, role, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   email = excluded.email,
		   password_hash = excluded.password_hash,
		   role = excluded.role`,
		userID,
		email,
		profile.PasswordHash,
		strings.TrimSpace(profile.Role),
		toMillis(profile.CreatedAt),
	); err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	return nil
}

// GetProfile fetches a profile by user id.
func (s *Store) GetProfile(ctx context.Context, userID string) (storage.Profile, error) {
	if err := ctx.Err(); err != nil {
		return storage.Profile{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Profile{}, fmt.Errorf("storage is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return storage.Profile{}, fmt.Errorf("user id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT user_id, email, password_hash, role, created_at
		 FROM profiles
		 WHERE user_id = ?`,
		userID,
	)
	return scanProfile(row, "get profile")
}

// GetProfileByEmail fetches a profile by its login email.
func (s *Store) GetProfileByEmail(ctx context.Context, email string) (storage.Profile, error) {
	if err := ctx.Err(); err != nil {
		return storage.Profile{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Profile{}, fmt.Errorf("storage is not configured")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return storage.Profile{}, fmt.Errorf("email is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT user_id, email, password_hash, role, created_at
		 FROM profiles
		 WHERE email = ?`,
		email,
	)
	return scanProfile(row, "get profile by email")
}

func scanCommand(row *sql.Row, op string) (command.Command, error) {
	var cmd command.Command
	var createdAt int64
	if err := row.Scan(&cmd.ID, &cmd.Command, &cmd.Title, &cmd.Category, &cmd.Response, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return command.Command{}, storage.ErrNotFound
		}
		return command.Command{}, fmt.Errorf("%s: %w", op, err)
	}
	cmd.CreatedAt = fromMillis(createdAt)
	return cmd, nil
}

func scanCommands(rows *sql.Rows) ([]command.Command, error) {
	var commands []command.Command
	for rows.Next() {
		var cmd command.Command
		var createdAt int64
		if err := rows.Scan(&cmd.ID, &cmd.Command, &cmd.Title, &cmd.Category, &cmd.Response, &createdAt); err != nil {
			return nil, fmt.Errorf("scan command: %w", err)
		}
		cmd.CreatedAt = fromMillis(createdAt)
		commands = append(commands, cmd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate commands: %w", err)
	}
	return commands, nil
}

func scanProfile(row *sql.Row, op string) (storage.Profile, error) {
	var profile storage.Profile
	var createdAt int64
	if err := row.Scan(&profile.UserID, &profile.Email, &profile.PasswordHash, &profile.Role, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Profile{}, storage.ErrNotFound
		}
		return storage.Profile{}, fmt.Errorf("%s: %w", op, err)
	}
	profile.CreatedAt = fromMillis(createdAt)
	return profile, nil
}

var _ storage.Store = (*Store)(nil)

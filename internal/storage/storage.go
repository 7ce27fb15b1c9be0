// Package storage defines the persistence contracts for command records and
// admin profiles.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/abismo-rpg/comandos/internal/command"
)

// ErrNotFound reports that a requested record does not exist.
var ErrNotFound = errors.New("not found")

// RoleAdmin is the role required to pass the admin access gate.
const RoleAdmin = "ADMIN"

// Profile maps a user identity to its role and login credentials.
type Profile struct {
	UserID       string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// CommandStore persists command records.
type CommandStore interface {
	// ListCommands returns every command, most recently created first.
	ListCommands(ctx context.Context) ([]command.Command, error)
	// ListPublicCommands returns non-default-category commands ordered by
	// category then title, for the public grouped view.
	ListPublicCommands(ctx context.Context) ([]command.Command, error)
	// GetCommand fetches one record by id.
	GetCommand(ctx context.Context, id string) (command.Command, error)
	// GetCommandByName fetches one record by its command name.
	GetCommandByName(ctx context.Context, name string) (command.Command, error)
	// DistinctCategories returns the set of category labels in use.
	DistinctCategories(ctx context.Context) ([]string, error)
	// InsertCommand stores a new record, assigning id and creation time.
	InsertCommand(ctx context.Context, cmd command.Command) (command.Command, error)
	// UpdateCommand replaces the four content fields of the record with the
	// given id.
	UpdateCommand(ctx context.Context, cmd command.Command) error
	// DeleteCommand removes the record with the given id.
	DeleteCommand(ctx context.Context, id string) error
}

// ProfileStore persists identity-to-role mappings.
type ProfileStore interface {
	PutProfile(ctx context.Context, profile Profile) error
	GetProfile(ctx context.Context, userID string) (Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (Profile, error)
}

// Store is the composite contract for site persistence.
type Store interface {
	CommandStore
	ProfileStore
	Close() error
}

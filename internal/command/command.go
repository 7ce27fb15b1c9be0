// Package command holds the command record domain model and its invariants.
package command

import (
	"sort"
	"strings"
	"time"

	apperrors "github.com/abismo-rpg/comandos/internal/platform/errors"
)

// DefaultCategory is pinned first in every grouped view.
const DefaultCategory = "Geral"

// HistoryCommand names the record whose response feeds the public history section.
const HistoryCommand = "historia"

// Command is a single categorized command record.
type Command struct {
	// ID is assigned by the store on insert and is empty until persisted.
	ID        string
	Command   string
	Title     string
	Category  string
	Response  string
	CreatedAt time.Time
}

// ImageKey derives the object-store key for a command's screenshot.
//
// The key is a convention, not a stored field: re-uploads overwrite the same
// object and renderers reconstruct the URL from the command name alone.
func ImageKey(commandName string) string {
	return "assets/" + strings.TrimSpace(commandName) + ".jpg"
}

// CategoryChoice is the tagged category input: an existing selection or new
// free text. Non-empty new text always wins over the selection.
type CategoryChoice struct {
	Existing string
	New      string
}

// Resolve collapses the choice into the effective category string.
func (c CategoryChoice) Resolve() string {
	if newCategory := strings.TrimSpace(c.New); newCategory != "" {
		return newCategory
	}
	return strings.TrimSpace(c.Existing)
}

// Validate checks the four required fields before any write is attempted.
func (c Command) Validate() error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"command", c.Command},
		{"title", c.Title},
		{"category", c.Category},
		{"response", c.Response},
	} {
		if strings.TrimSpace(field.value) == "" {
			return apperrors.WithMetadata(
				apperrors.CodeCommandFieldRequired,
				"command "+field.name+" is required",
				map[string]string{"Field": field.name},
			)
		}
	}
	return nil
}

// GroupByCategory buckets commands by category, preserving fetch order
// inside each bucket. Every command lands in exactly one bucket.
func GroupByCategory(commands []Command) map[string][]Command {
	grouped := make(map[string][]Command, len(commands))
	for _, cmd := range commands {
		grouped[cmd.Category] = append(grouped[cmd.Category], cmd)
	}
	return grouped
}

// SortedCategories returns category names ascending with DefaultCategory
// pinned first when present.
func SortedCategories(grouped map[string][]Command) []string {
	categories := make([]string, 0, len(grouped))
	for category := range grouped {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i] == DefaultCategory {
			return true
		}
		if categories[j] == DefaultCategory {
			return false
		}
		return categories[i] < categories[j]
	})
	return categories
}

// Paragraphs splits a response body into renderable paragraphs on newlines.
// Blank lines are dropped rather than rendered as empty blocks.
func Paragraphs(response string) []string {
	lines := strings.Split(response, "\n")
	paragraphs := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}

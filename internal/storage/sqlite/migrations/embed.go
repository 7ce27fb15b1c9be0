package migrations

import "embed"

// FS contains embedded SQLite migrations for site storage.
//
//go:embed *.sql
var FS embed.FS

package migrations

import "embed"

// FS contains embedded SQLite migrations for the symbol dataset.
//
//go:embed *.sql
var FS embed.FS

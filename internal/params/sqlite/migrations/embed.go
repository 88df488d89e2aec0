// Package migrations embeds the SQLite schema for the parameter catalog store.
package migrations

import "embed"

// FS contains embedded SQLite migrations for parameter catalog storage.
//
//go:embed *.sql
var FS embed.FS

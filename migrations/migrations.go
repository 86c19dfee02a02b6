// Package migrations embeds the schema migrations of both supported stores.
package migrations

import "embed"

// Postgres holds the migrations for DATA_BACKEND=postgres, under "postgres/".
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLite holds the migrations for DATA_BACKEND=sqlite, under "sqlite/".
//
//go:embed sqlite/*.sql
var SQLite embed.FS

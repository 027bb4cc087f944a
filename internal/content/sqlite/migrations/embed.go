// Package migrations embeds the content store schema and seed data.
package migrations

import "embed"

// FS exposes the SQL migration files for the content store.
//
//go:embed *.sql
var FS embed.FS

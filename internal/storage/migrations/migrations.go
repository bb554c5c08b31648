// Package migrations embeds the SQL schema migrations for the SQLite
// storage backend.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

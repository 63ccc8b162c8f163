// Package migrations embeds the SQL schema files so a standalone binary
// can migrate a fresh database on startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

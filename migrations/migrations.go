// Package migrations embeds the SQL migration files for the quote store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Package migrations embeds the server database schema migrations for goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

// Package migrations embeds the goose migrations of the local snapshot DB.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

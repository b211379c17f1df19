// Package migrations embeds the goose migrations of the shared document store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

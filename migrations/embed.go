// Package migrations embeds the PostgreSQL schema migrations so binaries and
// tests can apply them without a checkout.
package migrations

import "embed"

// FS holds every *.up.sql and *.down.sql file of this directory
//
//go:embed *.sql
var FS embed.FS

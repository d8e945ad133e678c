// Package migrations embeds the schema migration files so a deployed binary
// carries its own schema history.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version is the schema version the code in this build expects.
const Version = 1

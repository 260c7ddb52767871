package auraya

import "embed"

// MigrationsFS embeds SQL migrations so the binary carries its own schema.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

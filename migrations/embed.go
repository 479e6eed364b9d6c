package migrations

import "embed"

// PostgresFS embeds all PostgreSQL migration files.
//
//go:embed postgres/*.sql
var PostgresFS embed.FS

// PostgresDir is the directory of PostgresFS holding the migration files.
const PostgresDir = "postgres"

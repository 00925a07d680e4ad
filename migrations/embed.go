// Package migrations embeds the SQL schema migrations for each supported database.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

// Sub returns the migration files for one dialect ("sqlite" or "postgres")
func Sub(dialect string) (fs.FS, error) {
	return fs.Sub(FS, dialect)
}

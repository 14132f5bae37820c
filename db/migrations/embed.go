// Package migrations embeds the goose SQL migrations for each supported database.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

// For returns the migration directory for a dialect ("sqlite3" or "postgres").
func For(dialect string) (fs.FS, error) {
	switch dialect {
	case "sqlite3", "sqlite":
		return fs.Sub(files, "sqlite")
	case "postgres":
		return fs.Sub(files, "postgres")
	default:
		return nil, fmt.Errorf("no migrations for dialect %q", dialect)
	}
}

package repository

import (
	"context"
	"log/slog"

	"entgo.io/ent/dialect"
	"github.com/pressly/goose/v3"

	"github.com/joseph-ayodele/paystubs-tracker/db/migrations"
	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
)

// Migrate applies all pending migrations for the database's dialect and
// returns the number applied.
func Migrate(ctx context.Context, db *DB, logger *slog.Logger) (int, error) {
	fsys, err := migrations.For(db.Dialect())
	if err != nil {
		return 0, err
	}

	gd := goose.DialectSQLite3
	if db.Dialect() == dialect.Postgres {
		gd = goose.DialectPostgres
	}
	provider, err := goose.NewProvider(gd, db.SQL(), fsys)
	if err != nil {
		return 0, common.DatabaseError("init migrations", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		logger.Error("migrate.failed", "dialect", db.Dialect(), "error", err)
		return 0, common.DatabaseError("apply migrations", err)
	}
	for _, r := range results {
		logger.Info("migrate.applied", "version", r.Source.Version, "path", r.Source.Path, "duration", r.Duration)
	}
	return len(results), nil
}

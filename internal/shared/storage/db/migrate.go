package db

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

// Schema changes ship inside the binary; migrations/*.sql holds one
// goose file per change, starting with the full resume schema.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations brings the connected database up to the embedded schema
// version. A nil database (memory mode) is a no-op.
func RunMigrations(ctx context.Context, database *sql.DB) error {
	if database == nil {
		return nil
	}
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, database, "migrations")
}

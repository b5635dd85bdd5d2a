// Package migrations embeds the goose SQL migrations of the catalog schema.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const dir = "sql"

// Provider builds a goose provider over the embedded files.
func Provider(db *sql.DB) (*goose.Provider, error) {
	p, err := goose.NewProvider(goose.DialectPostgres, db, subFS())
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return p, nil
}

// Up applies every pending migration and logs each applied version.
func Up(ctx context.Context, db *sql.DB) error {
	p, err := Provider(db)
	if err != nil {
		return err
	}

	results, err := p.Up(ctx)
	for _, r := range results {
		xlog.LogMigration(ctx, "up", r.Source.Version, r.Error)
	}
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Down rolls back the latest applied migration.
func Down(ctx context.Context, db *sql.DB) error {
	p, err := Provider(db)
	if err != nil {
		return err
	}

	r, err := p.Down(ctx)
	if r != nil {
		xlog.LogMigration(ctx, "down", r.Source.Version, r.Error)
	}
	if err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

// Status lists every known migration with its applied state.
func Status(ctx context.Context, db *sql.DB) ([]*goose.MigrationStatus, error) {
	p, err := Provider(db)
	if err != nil {
		return nil, err
	}
	return p.Status(ctx)
}

// Version is the latest applied migration, 0 on an empty database.
func Version(ctx context.Context, db *sql.DB) (int64, error) {
	p, err := Provider(db)
	if err != nil {
		return 0, err
	}
	return p.GetDBVersion(ctx)
}

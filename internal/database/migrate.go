package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/pkordes/shiptrack/migrations"
)

// Migrator applies the embedded SQL migrations with goose.
type Migrator struct {
	provider *goose.Provider
}

// NewMigrator builds a Migrator over db. The caller owns db.
func NewMigrator(db *sql.DB) (*Migrator, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("database.NewMigrator: %w", err)
	}
	return &Migrator{provider: provider}, nil
}

// OpenSQL opens a database/sql handle using the pgx driver, for callers
// that have no pool to share.
func OpenSQL(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("database.OpenSQL: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database.OpenSQL: ping: %w", err)
	}
	return db, nil
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) ([]*goose.MigrationResult, error) {
	res, err := m.provider.Up(ctx)
	if err != nil {
		return res, fmt.Errorf("database.Migrator.Up: %w", err)
	}
	return res, nil
}

// Down rolls back the most recently applied migration.
func (m *Migrator) Down(ctx context.Context) (*goose.MigrationResult, error) {
	res, err := m.provider.Down(ctx)
	if err != nil {
		return res, fmt.Errorf("database.Migrator.Down: %w", err)
	}
	return res, nil
}

// Status reports every known migration and whether it is applied.
func (m *Migrator) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	res, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("database.Migrator.Status: %w", err)
	}
	return res, nil
}

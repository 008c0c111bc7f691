// Package testutil provides shared helpers for the Postgres-backed tests.
// Every helper that takes a *testing.T skips the test when TEST_DATABASE_URL
// is not set, so unit tests run without a database.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/shiptrack/internal/database"
	"github.com/pkordes/shiptrack/internal/domain"
	"github.com/pkordes/shiptrack/internal/repo"
)

// DSNEnv names the environment variable holding the test database URL.
const DSNEnv = "TEST_DATABASE_URL"

// NewPool connects to the test database the way the API does, through
// database.Connect, with a single attempt. The pool closes with the test.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := database.Connect(context.Background(), requireDSN(t), 1, slog.New(slog.DiscardHandler))
	require.NoError(t, err, "testutil.NewPool")

	t.Cleanup(pool.Close)
	return pool
}

// NewTx opens a transaction on a fresh pool and rolls it back when the test
// finishes, so each test sees only its own rows. Repos accept the pgx.Tx
// directly.
func NewTx(t *testing.T) pgx.Tx {
	t.Helper()

	tx, err := NewPool(t).Begin(context.Background())
	require.NoError(t, err, "testutil.NewTx: begin")

	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
	return tx
}

// NewOwner registers a user named username inside tx and returns its id,
// for tests that need a shipment owner. The credential is a placeholder.
func NewOwner(t *testing.T, tx pgx.Tx, username string) uuid.UUID {
	t.Helper()

	u, err := repo.NewUserRepo(tx).Create(context.Background(), domain.User{
		Username:     username,
		PasswordHash: []byte("hash"),
		PasswordSalt: []byte("salt"),
	})
	require.NoError(t, err, "testutil.NewOwner: %s", username)
	return u.ID
}

// NewSQLDB opens a database/sql handle on the test database through
// database.OpenSQL, for goose-driven tests. It closes with the test.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenSQL(context.Background(), requireDSN(t))
	require.NoError(t, err, "testutil.NewSQLDB")

	t.Cleanup(func() { db.Close() })
	return db
}

// MigrateUp applies every pending migration to the test database. It is
// for TestMain, which has no *testing.T; ok is false when no test database
// is configured.
func MigrateUp(ctx context.Context) (ok bool, err error) {
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		return false, nil
	}

	db, err := database.OpenSQL(ctx, dsn)
	if err != nil {
		return true, fmt.Errorf("testutil.MigrateUp: %w", err)
	}
	defer db.Close()

	m, err := database.NewMigrator(db)
	if err != nil {
		return true, fmt.Errorf("testutil.MigrateUp: %w", err)
	}
	if _, err := m.Up(ctx); err != nil {
		return true, fmt.Errorf("testutil.MigrateUp: %w", err)
	}
	return true, nil
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skip(DSNEnv + " not set; skipping database test")
	}
	return dsn
}

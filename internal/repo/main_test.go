package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pkordes/shiptrack/testutil"
)

// TestMain migrates the shared test database once for the whole package.
// Without TEST_DATABASE_URL the database tests skip themselves and only the
// pgxmock tests run.
func TestMain(m *testing.M) {
	if _, err := testutil.MigrateUp(context.Background()); err != nil {
		log.Fatalf("repo_test: %v", err)
	}
	os.Exit(m.Run())
}

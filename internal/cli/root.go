// Package cli implements shipctl, the operator command line for the
// shipment tracker.
package cli

import (
	"context"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/pkordes/shiptrack/internal/database"
)

var (
	version = "dev"
	commit  = "none"
)

// Migrator is the set of schema operations shipctl drives.
// *database.Migrator satisfies it.
type Migrator interface {
	Up(ctx context.Context) ([]*goose.MigrationResult, error)
	Down(ctx context.Context) (*goose.MigrationResult, error)
	Status(ctx context.Context) ([]*goose.MigrationStatus, error)
}

// OpenFunc connects to dsn and returns a Migrator plus a func releasing
// the connection.
type OpenFunc func(ctx context.Context, dsn string) (Migrator, func() error, error)

func openPostgres(ctx context.Context, dsn string) (Migrator, func() error, error) {
	db, err := database.OpenSQL(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	m, err := database.NewMigrator(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return m, db.Close, nil
}

func newRootCmd(open OpenFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "shipctl",
		Short:         "Operate the shipment tracker",
		Long:          "shipctl manages the shipment tracker's database schema.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newMigrateCmd(open))
	return cmd
}

// NewRootCmdForTest returns the root command with open in place of the
// Postgres connector.
func NewRootCmdForTest(open OpenFunc) *cobra.Command {
	return newRootCmd(open)
}

func Execute() error {
	return newRootCmd(openPostgres).Execute()
}

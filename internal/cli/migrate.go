package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

func newMigrateCmd(open OpenFunc) *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply, roll back or inspect schema migrations",
	}
	cmd.PersistentFlags().StringVar(&dsn, "database-url", "", "Postgres connection string (default $DATABASE_URL)")

	// withMigrator resolves the DSN, connects, and runs fn.
	withMigrator := func(cmd *cobra.Command, fn func(Migrator) error) (err error) {
		if dsn == "" {
			dsn = os.Getenv("DATABASE_URL")
		}
		if dsn == "" {
			return errors.New("no database: pass --database-url or set DATABASE_URL")
		}
		m, release, err := open(cmd.Context(), dsn)
		if err != nil {
			return fmt.Errorf("connecting: %w", err)
		}
		defer func() {
			if cerr := release(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		return fn(m)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd, func(m Migrator) error {
				results, err := m.Up(cmd.Context())
				printResults(cmd.OutOrStdout(), results)
				if err != nil {
					return err
				}
				if len(results) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd, func(m Migrator) error {
				result, err := m.Down(cmd.Context())
				if errors.Is(err, goose.ErrNoNextVersion) {
					fmt.Fprintln(cmd.OutOrStdout(), "nothing to roll back")
					return nil
				}
				if result != nil {
					printResults(cmd.OutOrStdout(), []*goose.MigrationResult{result})
				}
				return err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether each is applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd, func(m Migrator) error {
				statuses, err := m.Status(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, s := range statuses {
					applied := "pending"
					if s.State == goose.StateApplied {
						applied = s.AppliedAt.UTC().Format(time.RFC3339)
					}
					fmt.Fprintf(out, "%-8s %-40s %s\n", s.State, sourceName(s.Source), applied)
				}
				return nil
			})
		},
	})

	return cmd
}

func printResults(w io.Writer, results []*goose.MigrationResult) {
	for _, r := range results {
		if r == nil {
			continue
		}
		mark := "OK"
		if r.Error != nil {
			mark = "FAIL"
		}
		fmt.Fprintf(w, "%-4s %-5s %s (%s)\n", mark, r.Direction, sourceName(r.Source), r.Duration.Round(time.Millisecond))
	}
}

func sourceName(s *goose.Source) string {
	if s == nil {
		return "?"
	}
	return filepath.Base(s.Path)
}

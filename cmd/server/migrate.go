package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"

	"customer-records/internal/config"
	"customer-records/internal/database"
	"customer-records/internal/logging"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the PostgreSQL schema",
	Long: `Manage the PostgreSQL schema with the SQL files in DB_MIGRATIONS_PATH.

Examples:
  customer-records migrate up
  customer-records migrate down 1
  customer-records migrate status
  customer-records migrate seed`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRunner(cmd.Context(), false, func(runner *database.MigrationRunner) error {
			ran, err := runner.RunMigrations()
			if err != nil {
				return err
			}
			if !ran {
				return database.ErrMigrationsNotFound
			}
			return nil
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Revert applied migrations (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("steps must be a number: %w", err)
			}
			steps = n
		}

		return withRunner(cmd.Context(), false, func(runner *database.MigrationRunner) error {
			return runner.Rollback(steps)
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the applied migration version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRunner(cmd.Context(), false, func(runner *database.MigrationRunner) error {
			version, dirty, err := runner.GetMigrationStatus()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version: %d\ndirty: %v\n", version, dirty)
			return nil
		})
	},
}

var migrateSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the SQL seed files in DB_SEEDS_PATH",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRunner(cmd.Context(), true, func(runner *database.MigrationRunner) error {
			return runner.LoadSeeds(cmd.Context())
		})
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd, migrateSeedCmd)
}

// withRunner opens a bare database/sql connection through lib/pq and hands a
// migration runner to fn once the database answers
func withRunner(ctx context.Context, seed bool, fn func(*database.MigrationRunner) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrate requires DB_DRIVER=%s, got %q", config.DriverPostgres, cfg.Database.Driver)
	}
	cfg.Database.SeedDatabase = seed

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if ctx == nil {
		ctx = context.Background()
	}

	runner := database.NewMigrationRunner(db, &cfg.Database).WithLogger(logging.NewLogger(cfg.Logging, os.Stderr))
	if err := runner.WaitForDatabase(ctx); err != nil {
		return err
	}

	return fn(runner)
}

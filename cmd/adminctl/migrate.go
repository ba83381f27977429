package main

import (
	"fmt"
	"log/slog"

	"autobid/internal/infra/persistence/migration"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const migrationsDir = "./internal/infra/persistence/migration/scripts"

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back, inspect and create the versioned SQL migrations.`,
	}

	cmd.AddCommand(
		newMigrateUpCommand(),
		newMigrateDownCommand(),
		newMigrateStatusCommand(),
		newMigrateCreateCommand(),
	)

	return cmd
}

func newMigrateUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(m *migration.Migrator) error {
				return m.Up(cmd.Context())
			})
		},
	}
}

func newMigrateDownCommand() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps < 1 {
				return errors.New("steps must be at least 1")
			}

			return withMigrator(cmd, func(m *migration.Migrator) error {
				return m.Down(cmd.Context(), steps)
			})
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to roll back")

	return cmd
}

func newMigrateStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(m *migration.Migrator) error {
				version, err := m.Version(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Current version: %d\n", version)

				return m.Status(cmd.Context())
			})
		},
	}
}

func newMigrateCreateCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new SQL migration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return migration.Create(dir, args[0])
		},
	}
	cmd.Flags().StringVar(&dir, "dir", migrationsDir, "Directory the migration file is written to")

	return cmd
}

func withMigrator(cmd *cobra.Command, run func(*migration.Migrator) error) error {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	stop, err := startApp(cmd.Context(), &db, &logger)
	if err != nil {
		return err
	}
	defer stop()

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	migrator, err := migration.New(sqlDB, logger)
	if err != nil {
		return err
	}

	return run(migrator)
}

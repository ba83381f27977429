// Package migration applies the versioned SQL schema with goose.
package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"

	"autobid/internal/errors"

	"github.com/pressly/goose/v3"
)

const (
	dialect    = "postgres"
	scriptsDir = "scripts"
)

//go:embed scripts/*.sql
var scripts embed.FS

// Migrator runs the embedded migrations against one database.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
}

// New prepares goose for the embedded scripts.
func New(db *sql.DB, logger *slog.Logger) (*Migrator, error) {
	goose.SetBaseFS(scripts)
	goose.SetLogger(&gooseLogger{logger: logger})
	if err := goose.SetDialect(dialect); err != nil {
		return nil, errors.Wrap(err, "failed to set goose dialect")
	}

	return &Migrator{db: db, logger: logger}, nil
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	from, err := m.Version(ctx)
	if err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, scriptsDir); err != nil {
		return errors.Wrap(err, "failed to run up migrations")
	}

	to, err := m.Version(ctx)
	if err != nil {
		return err
	}
	m.logger.Info("Migrations applied", slog.Int64("fromVersion", from), slog.Int64("toVersion", to))

	return nil
}

// Down rolls back the given number of migrations.
func (m *Migrator) Down(ctx context.Context, steps int) error {
	for i := 0; i < steps; i++ {
		if err := goose.DownContext(ctx, m.db, scriptsDir); err != nil {
			return errors.Wrapf(err, "failed to roll back migration %d of %d", i+1, steps)
		}
	}
	m.logger.Info("Migrations rolled back", slog.Int("steps", steps))

	return nil
}

// Status logs the state of every migration.
func (m *Migrator) Status(ctx context.Context) error {
	if err := goose.StatusContext(ctx, m.db, scriptsDir); err != nil {
		return errors.Wrap(err, "failed to get migration status")
	}

	return nil
}

// Version returns the current schema version.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get schema version")
	}

	return version, nil
}

// Create writes a new empty SQL migration into dir on disk.
func Create(dir, name string) error {
	goose.SetBaseFS(nil)
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return errors.Wrap(err, "failed to create migration")
	}

	return nil
}

// gooseLogger routes goose output through slog.
type gooseLogger struct {
	logger *slog.Logger
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/mctelektrik41-blip/sozluk-backend/migrations"
)

// MigrationStatus describes one migration known to goose.
type MigrationStatus struct {
	Version int64
	Source  string
	Applied bool
}

// newProvider opens a database/sql handle (goose requires *sql.DB) and a
// goose provider over fsys. The caller closes the returned DB.
func newProvider(dsn string, fsys fs.FS) (*sql.DB, *goose.Provider, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("sql.Open: %w", err)
	}

	// goose.NewProvider handles $$-delimited PL/pgSQL bodies correctly,
	// unlike the legacy goose.Up which splits on semicolons.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("goose new provider: %w", err)
	}
	return db, provider, nil
}

// Migrate applies all pending embedded migrations.
func Migrate(ctx context.Context, dsn string, log *slog.Logger) error {
	return MigrateFS(ctx, dsn, migrations.FS, log)
}

// MigrateFS applies all pending migrations found in fsys.
func MigrateFS(ctx context.Context, dsn string, fsys fs.FS, log *slog.Logger) error {
	db, provider, err := newProvider(dsn, fsys)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", markUnavailable(err))
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	for _, r := range results {
		log.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("source", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

// MigrationStatuses lists the embedded migrations and whether each is applied.
func MigrationStatuses(ctx context.Context, dsn string) ([]MigrationStatus, error) {
	db, provider, err := newProvider(dsn, migrations.FS)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose status: %w", err)
	}

	out := make([]MigrationStatus, len(statuses))
	for i, s := range statuses {
		out[i] = MigrationStatus{
			Version: s.Source.Version,
			Source:  s.Source.Path,
			Applied: s.State == goose.StateApplied,
		}
	}
	return out, nil
}

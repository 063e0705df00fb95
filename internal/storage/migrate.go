package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// InitSchema creates the expenses table for the Postgres backend. With force
// it drops the table (and migration bookkeeping) first, then recreates it.
func (s *PostgresStore) InitSchema(ctx context.Context, force bool) error {
	// Separate connection for migrations so the driver can own its lifecycle.
	db, err := sql.Open("pgx", s.dsn)
	if err != nil {
		return fmt.Errorf("%w: open migration connection: %v", ErrUnavailable, err)
	}
	defer db.Close()

	if force {
		if err := dropSchema(ctx, db); err != nil {
			return err
		}
	}

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("create pgx migration driver: %w", err)
	}
	return runMigrations("migrations/postgres", driver)
}

// InitSchema creates the expenses table for the SQLite backend. With force it
// drops and recreates it.
func (s *SQLiteStore) InitSchema(ctx context.Context, force bool) error {
	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return fmt.Errorf("%w: open migration connection: %v", ErrUnavailable, err)
	}
	defer db.Close()

	if force {
		if err := dropSchema(ctx, db); err != nil {
			return err
		}
	}

	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite migration driver: %w", err)
	}
	return runMigrations("migrations/sqlite", driver)
}

func runMigrations(path string, driver database.Driver) error {
	src, err := iofs.New(migrationsFS, path)
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "expenses", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func dropSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{
		`DROP TABLE IF EXISTS expenses`,
		`DROP TABLE IF EXISTS schema_migrations`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("drop schema: %w", err)
		}
	}
	return nil
}

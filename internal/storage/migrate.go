package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"slices"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const (
	upSuffix   = ".up.sql"
	downSuffix = ".down.sql"
)

// MigrateUp applies every up migration in name order. Migrations are written
// to be re-runnable.
func MigrateUp(db *sql.DB) error {
	names, err := migrationNames(upSuffix)
	if err != nil {
		return err
	}
	return runMigrations(db, names)
}

// MigrateDown applies down migrations newest first.
func MigrateDown(db *sql.DB) error {
	names, err := migrationNames(downSuffix)
	if err != nil {
		return err
	}
	slices.Reverse(names)
	return runMigrations(db, names)
}

func migrationNames(suffix string) ([]string, error) {
	names, err := fs.Glob(migrationFiles, "migrations/*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("glob migrations: %w", err)
	}
	slices.Sort(names)
	return names, nil
}

// runMigrations executes each file in its own transaction so a failing file
// leaves earlier ones applied and itself untouched.
func runMigrations(db *sql.DB, names []string) error {
	for _, name := range names {
		body, err := migrationFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", name, err)
		}
		if _, err := tx.Exec(string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", name, err)
		}
	}
	return nil
}

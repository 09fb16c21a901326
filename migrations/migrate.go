// Package migrations embeds the schema migrations and applies them with
// goose. Each supported database driver has its own directory of SQL files.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

var (
	errNilDB              = errors.New("db is nil")
	errUnsupportedDialect = errors.New("unsupported migration dialect")
)

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// dialects maps a database/sql driver name to the goose dialect and the
// directory holding its migrations.
var dialects = map[string]struct {
	gooseDialect string
	dir          string
}{
	"sqlite3": {gooseDialect: "sqlite3", dir: "sqlite"},
	"pgx":     {gooseDialect: "pgx", dir: "postgres"},
}

// Migrate brings the schema of db up to date. driver is the database/sql
// driver name db was opened with ("sqlite3" or "pgx").
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", errUnsupportedDialect, driver)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(d.gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-projects-api/internal/logger"
	"github.com/MKhiriev/go-projects-api/migrations"
)

// DB wraps the connection pool with driver-specific query building, error
// classification and a single-writer lock.
//
// Every statement that modifies data runs under writeMu, so at most one
// write is in flight per process. Reads are not serialized.
type DB struct {
	*sql.DB
	driver             string
	placeholder        squirrel.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	writeMu sync.Mutex
}

// querier is satisfied by both *sql.DB and *sql.Conn.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sessionCtxKey struct{}

// Migrate applies the embedded schema migrations for the DB's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the database/sql driver name.
func (db *DB) Driver() string {
	return db.driver
}

// builder returns a squirrel statement builder using the driver's
// placeholder format.
func (db *DB) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// conn returns the session connection stored in ctx, or the pool when the
// caller has no session.
func (db *DB) conn(ctx context.Context) querier {
	if c, ok := ctx.Value(sessionCtxKey{}).(*sql.Conn); ok {
		return c
	}

	return db.DB
}

// write runs fn while holding the write lock.
func (db *DB) write(fn func() error) error {
	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	return fn()
}

// classify reports how err should be treated. A DB without a classifier
// reports every error as [Unclassified].
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}

	return db.errorClassificator.Classify(err)
}

// Open implements [Sessions].
func (db *DB) Open(ctx context.Context) (context.Context, func(), error) {
	c, err := db.DB.Conn(ctx)
	if err != nil {
		return ctx, func() {}, fmt.Errorf("%w: %w", ErrOpeningSession, err)
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			if closeErr := c.Close(); closeErr != nil {
				logger.FromContext(ctx).Err(closeErr).
					Str("func", "DB.Open").
					Msg("failed to release database session")
			}
		})
	}

	return context.WithValue(ctx, sessionCtxKey{}, c), release, nil
}

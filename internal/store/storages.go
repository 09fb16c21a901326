package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-projects-api/internal/config"
	"github.com/MKhiriev/go-projects-api/internal/logger"
)

// Storages groups the repositories and the session source built on one
// database connection pool.
type Storages struct {
	UserRepository    UserRepository
	ProjectRepository ProjectRepository
	Sessions          Sessions

	db *DB
}

// NewStorages connects to the database configured in cfg, applies the
// schema migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		_ = db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories on an already opened and
// migrated DB.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProjectRepository: NewProjectRepository(db, log),
		Sessions:          db,
		db:                db,
	}
}

// SQL returns the underlying connection pool, e.g. for pool statistics.
func (s *Storages) SQL() *sql.DB {
	if s.db == nil {
		return nil
	}

	return s.db.DB
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

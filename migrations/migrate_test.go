// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: every statement goose sends fails
	err = Migrate(db, "pgx")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "sqlite3")

	require.ErrorIs(t, err, errNilDB)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "mysql")

	assert.ErrorIs(t, err, errUnsupportedDialect)
}

func TestMigrate_SQLiteCreatesTables(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, "sqlite3"))
	// second run is a no-op
	require.NoError(t, Migrate(db, "sqlite3"))

	for _, table := range []string{"users", "projects"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	_, err = db.Exec(`INSERT INTO users (email, password_hash) VALUES ('a@b.com', 'x')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO users (email, password_hash) VALUES ('a@b.com', 'y')`)
	assert.Error(t, err, "email must be unique")

	var active bool
	require.NoError(t, db.QueryRow(`SELECT is_active FROM users WHERE email = 'a@b.com'`).Scan(&active))
	assert.True(t, active)
}

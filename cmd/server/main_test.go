package main

import (
	"context"
	"net"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-projects-api/internal/config"
	"github.com/MKhiriev/go-projects-api/internal/logger"
	"github.com/MKhiriev/go-projects-api/models"
)

func testConfig(t *testing.T, address string) config.StructuredConfig {
	t.Helper()

	var cfg config.StructuredConfig
	cfg.App = config.App{
		SecretKey:                "secret",
		Algorithm:                "HS256",
		AccessTokenExpireMinutes: 60,
		BcryptCost:               bcrypt.MinCost,
		Version:                  "test",
		SeedDemoUser:             true,
	}
	cfg.Storage.DB = config.DB{Driver: config.DriverSQLite, DSN: filepath.Join(t.TempDir(), "app.db")}
	cfg.Server.HTTPAddress = address

	return cfg
}

func TestRun_ReturnsServerError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := testConfig(t, busy.Addr().String())

	err = run(context.Background(), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.ErrorContains(t, err, "error listening on")
}

func TestRun_StorageError(t *testing.T) {
	cfg := testConfig(t, "127.0.0.1:0")
	cfg.Storage.DB.Driver = "mysql"

	err := run(context.Background(), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.ErrorContains(t, err, "error creating storages")
}

func TestRun_InvalidAlgorithm(t *testing.T) {
	cfg := testConfig(t, "127.0.0.1:0")
	cfg.App.Algorithm = "RS256"

	err := run(context.Background(), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.ErrorContains(t, err, "error creating services")
}

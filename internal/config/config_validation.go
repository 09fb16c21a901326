// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

var (
	supportedAlgorithms = []string{"HS256", "HS384", "HS512"}
	supportedDBDrivers  = []string{DriverSQLite, DriverPostgres}
)

// Database driver names accepted in [DB.Driver].
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. A server must not serve traffic when this fails.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SecretKey == "" {
		return ErrMissingSecretKey
	}

	if !slices.Contains(supportedAlgorithms, cfg.App.Algorithm) {
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, cfg.App.Algorithm)
	}

	if cfg.App.AccessTokenExpireMinutes <= 0 {
		return ErrInvalidTokenTTL
	}

	if !slices.Contains(supportedDBDrivers, cfg.Storage.DB.Driver) || cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

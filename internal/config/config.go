// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"
	"time"
)

// DeployedFrontendOrigin is the hosted frontend.
const DeployedFrontendOrigin = "https://proiectcolectivai-frontend.onrender.com"

// defaultCORSOrigins are the frontend origins that are always allowed:
// the local Vite dev server over plain HTTP and HTTPS, and the hosted
// frontend.
var defaultCORSOrigins = []string{
	"http://localhost:5173",
	"https://localhost:5173",
	DeployedFrontendOrigin,
}

// StructuredConfig is the top-level configuration container. It is built
// once at startup by merging defaults, environment variables, command-line
// flags and an optional JSON file, validated, and then passed by value to
// the components that need a part of it.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, hashing and build settings.
	App App

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// CORS holds the extra allowed cross-origin callers.
	CORS CORS

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// signing, password hashing and versioning.
type App struct {
	// SecretKey signs and verifies access tokens. Required.
	// Env: SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// Algorithm is the JWT HMAC signing method name (HS256, HS384, HS512).
	// Env: ALGORITHM
	Algorithm string `env:"ALGORITHM" envDefault:"HS256"`

	// AccessTokenExpireMinutes is the lifetime of an issued access token.
	// Env: ACCESS_TOKEN_EXPIRE_MINUTES
	AccessTokenExpireMinutes int `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"60"`

	// BcryptCost is the adaptive cost factor used for new password hashes.
	// Env: BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// Version is reported by GET /version.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION" envDefault:"dev"`

	// SeedDemoUser creates the demo account on startup when it is missing.
	// Env: SEED_DEMO_USER
	SeedDemoUser bool `env:"SEED_DEMO_USER" envDefault:"true"`
}

// TokenTTL converts AccessTokenExpireMinutes to a [time.Duration].
func (a App) TokenTTL() time.Duration {
	return time.Duration(a.AccessTokenExpireMinutes) * time.Minute
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8000"`

	// RequestTimeout is the maximum duration of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// CORS holds cross-origin settings.
type CORS struct {
	// AllowedOrigins is a comma-separated list of extra origins.
	// Env: CORS_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// FrontendOrigin is the deployed frontend origin.
	// Env: FRONTEND_ORIGIN
	FrontendOrigin string `env:"FRONTEND_ORIGIN"`
}

// Origins returns the built-in origins followed by AllowedOrigins and
// FrontendOrigin, without duplicates or empty entries.
func (c CORS) Origins() []string {
	origins := slices.Clone(defaultCORSOrigins)

	extra := append(slices.Clone(c.AllowedOrigins), c.FrontendOrigin)
	for _, origin := range extra {
		if origin == "" || slices.Contains(origins, origin) {
			continue
		}
		origins = append(origins, origin)
	}

	return origins
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver is either "sqlite3" (default, local file) or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER" envDefault:"sqlite3"`

	// DSN is the sqlite file path or the PostgreSQL connection string.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN" envDefault:"./app.db"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" envDefault:"debug"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables (with defaults)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// Package config provides configuration loading, merging, and validation
// facilities for the server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (defaults come from envDefault tags)
//  2. Command-line flags
//  3. JSON config file
//
// The entry point is [GetStructuredConfig]. The result is validated once;
// a missing SECRET_KEY is a startup error.
package config

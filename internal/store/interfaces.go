// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the persistence layer: connection setup for SQLite and
// PostgreSQL, per-request database sessions, and the user and project
// repositories.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-projects-api/models"
)

// UserRepository persists accounts in the users table.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned ID.
	// Returns ErrEmailAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with exactly this email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with this id or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// ProjectRepository persists rows of the projects table.
type ProjectRepository interface {
	// CreateProject inserts project and returns the stored row.
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)

	// ListProjects returns every project ordered by id.
	ListProjects(ctx context.Context) ([]models.Project, error)

	// GetProject returns the project with this id or ErrProjectNotFound.
	GetProject(ctx context.Context, id int64) (models.Project, error)

	// UpdateProject applies the supplied fields of update and returns the
	// resulting row, or ErrProjectNotFound.
	UpdateProject(ctx context.Context, update models.ProjectUpdate) (models.Project, error)
}

// Sessions hands out per-request database sessions.
type Sessions interface {
	// Open takes a dedicated connection from the pool and returns a context
	// carrying it. Repositories called with that context run on the
	// connection. release must be called exactly once on every exit path.
	Open(ctx context.Context) (sessionCtx context.Context, release func(), err error)
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

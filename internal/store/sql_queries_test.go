// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-projects-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildCreateUserQuery_Placeholders(t *testing.T) {
	tests := []struct {
		name        string
		placeholder squirrel.PlaceholderFormat
		wantQuery   string
	}{
		{
			name:        "sqlite",
			placeholder: squirrel.Question,
			wantQuery:   "INSERT INTO users (email,password_hash,is_active) VALUES (?,?,?) RETURNING id",
		},
		{
			name:        "postgres",
			placeholder: squirrel.Dollar,
			wantQuery:   "INSERT INTO users (email,password_hash,is_active) VALUES ($1,$2,$3) RETURNING id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &DB{placeholder: tt.placeholder}

			query, args, err := db.buildCreateUserQuery(models.User{Email: "a@b.com", PasswordHash: "h", IsActive: true})

			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, []any{"a@b.com", "h", true}, args)
		})
	}
}

func Test_buildFindUserQuery(t *testing.T) {
	db := &DB{placeholder: squirrel.Dollar}

	query, args, err := db.buildFindUserQuery(squirrel.Eq{"email": "a@b.com"})

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, email, password_hash, is_active FROM users WHERE email = $1", query)
	assert.Equal(t, []any{"a@b.com"}, args)
}

func Test_buildSelectProjectsQuery(t *testing.T) {
	db := &DB{placeholder: squirrel.Question}

	all, args, err := db.buildSelectProjectsQuery(nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name, description, start_date, created_at FROM projects ORDER BY id", all)
	assert.Empty(t, args)

	one, args, err := db.buildSelectProjectsQuery(squirrel.Eq{"id": int64(3)})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name, description, start_date, created_at FROM projects WHERE id = ? ORDER BY id", one)
	assert.Equal(t, []any{int64(3)}, args)
}

func Test_buildUpdateProjectQuery(t *testing.T) {
	name := "Q"
	empty := ""
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		update    models.ProjectUpdate
		wantSet   []string
		wantArgs  int
		wantError bool
	}{
		{
			name:     "name only",
			update:   models.ProjectUpdate{ID: 1, Name: &name},
			wantSet:  []string{"name = $1"},
			wantArgs: 2,
		},
		{
			name:     "name and start date",
			update:   models.ProjectUpdate{ID: 1, Name: &name, StartDate: &start},
			wantSet:  []string{"name = $1", "start_date = $2"},
			wantArgs: 3,
		},
		{
			name:      "nothing to set",
			update:    models.ProjectUpdate{ID: 1, Name: &empty},
			wantError: true,
		},
	}

	db := &DB{placeholder: squirrel.Dollar}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := db.buildUpdateProjectQuery(tt.update)
			if tt.wantError {
				assert.ErrorIs(t, err, ErrBuildingSQLQuery)
				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(query, "UPDATE projects SET "))
			for _, set := range tt.wantSet {
				assert.Contains(t, query, set)
			}
			assert.Contains(t, query, "WHERE id = ")
			assert.NotContains(t, query, "description")
			assert.Len(t, args, tt.wantArgs)
			assert.Equal(t, int64(1), args[len(args)-1])
		})
	}
}

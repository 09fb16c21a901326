// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account entity used for authentication.
// PasswordHash is a bcrypt digest and never leaves the server.
type User struct {
	// ID is the storage-assigned unique identifier of the user.
	// It is embedded as the "sub" claim of every access token.
	ID int64 `json:"id"`

	// Email is the unique login of the user. Comparison is exact and
	// case-sensitive, matching the stored value.
	Email string `json:"email"`

	// PasswordHash is the self-describing bcrypt digest of the password.
	PasswordHash string `json:"-"`

	// IsActive is persisted with every account. No flow checks it yet.
	IsActive bool `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// CurrentUser is the public view of the authenticated caller returned by
// GET /auth/me.
type CurrentUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// NewCurrentUser strips everything but the identity fields from u.
func NewCurrentUser(u User) CurrentUser {
	return CurrentUser{ID: u.ID, Email: u.Email}
}

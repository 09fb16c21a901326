// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /auth/register.
//
// Validation tags are evaluated by the validators package before any
// storage access happens.
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,password_policy"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// RegisterResponse is returned with 201 Created after a successful
// registration. It never carries the password hash.
type RegisterResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// LoginRequest is the body of POST /auth/login. The form-encoded variant
// uses "username" instead of "email".
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccessTokenResponse is returned by a successful login.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Project is the stored project row.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	StartDate   time.Time `json:"start_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}

// CreateProjectRequest is the body of POST /projects/.
type CreateProjectRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date" validate:"required"`
}

// UnmarshalJSON accepts any start_date format understood by [Timestamp].
func (r *CreateProjectRequest) UnmarshalJSON(data []byte) error {
	type plain CreateProjectRequest
	aux := struct {
		*plain
		StartDate *Timestamp `json:"start_date"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.StartDate = aux.StartDate.timePtr()
	return nil
}

// ProjectUpdate describes a partial update of a project.
//
// A nil field is left unchanged. A field holding its zero value (empty
// string, zero time) is treated the same way: PATCH never clears a column.
type ProjectUpdate struct {
	// ID is taken from the URL, not from the body.
	ID int64 `json:"-"`

	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
}

// UnmarshalJSON accepts any start_date format understood by [Timestamp].
func (u *ProjectUpdate) UnmarshalJSON(data []byte) error {
	type plain ProjectUpdate
	aux := struct {
		*plain
		StartDate *Timestamp `json:"start_date,omitempty"`
	}{plain: (*plain)(u)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	u.StartDate = aux.StartDate.timePtr()
	return nil
}

// IsEmpty reports whether the update would change nothing.
func (u ProjectUpdate) IsEmpty() bool {
	return !u.HasName() && !u.HasDescription() && !u.HasStartDate()
}

// HasName reports whether Name is supplied and non-empty.
func (u ProjectUpdate) HasName() bool {
	return u.Name != nil && *u.Name != ""
}

// HasDescription reports whether Description is supplied and non-empty.
func (u ProjectUpdate) HasDescription() bool {
	return u.Description != nil && *u.Description != ""
}

// HasStartDate reports whether StartDate is supplied and non-zero.
func (u ProjectUpdate) HasStartDate() bool {
	return u.StartDate != nil && !u.StartDate.IsZero()
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Role represents a user's permission level in the system.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleAuthor Role = "author"
)

// User is a content author. Term is the public profile slug; lifecycle flags
// follow the same semantics as the other entities so users participate in
// the shared batch action processing.
type User struct {
	ID           int64      `json:"id"`
	Term         string     `json:"term"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Never serialize the hash
	DisplayName  string     `json:"display_name"`
	Role         Role       `json:"role"`
	IsEnabled    Flag       `json:"is_enabled"`
	IsApproved   Flag       `json:"is_approved"`
	IsFeatured   Featured   `json:"is_featured"`
	IsArchive    Flag       `json:"is_archive"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	ArchiveAt    *time.Time `json:"archive_at,omitempty"`
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserSummary is the owner projection attached to wide content listings.
type UserSummary struct {
	ID          int64  `json:"id"`
	Term        string `json:"term"`
	DisplayName string `json:"display_name"`
}

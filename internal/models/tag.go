// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Tag is a flat label attached to content. Tags have no translation rows;
// Title is the display form and Term the URL slug.
type Tag struct {
	ID         int64       `json:"id"`
	Term       string      `json:"term"`
	Title      string      `json:"title"`
	Type       ContentType `json:"type"`
	IsEnabled  Flag        `json:"is_enabled"`
	IsApproved Flag        `json:"is_approved"`
	IsFeatured Featured    `json:"is_featured"`
	IsArchive  Flag        `json:"is_archive"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

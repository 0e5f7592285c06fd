// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Category represents a hierarchical content category. ParentID == 0 means
// root. Display titles live in per-culture Translation rows. Cycles are the
// caller's responsibility; the tree builder does not detect them.
type Category struct {
	ID         int64       `json:"id"`
	Term       string      `json:"term"`
	ParentID   int64       `json:"parent_id"`
	Priority   int         `json:"priority"`
	Type       ContentType `json:"type"`
	IsEnabled  Flag        `json:"is_enabled"`
	IsApproved Flag        `json:"is_approved"`
	IsFeatured Featured    `json:"is_featured"`
	IsArchive  Flag        `json:"is_archive"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`

	// Virtual fields populated by store methods.
	Translations []Translation `json:"translations,omitempty"`
	Children     []Category    `json:"children,omitempty"`
	Depth        int           `json:"depth"`
	ContentCount int           `json:"content_count"`

	// Projection of the culture-matched translation row on wide listings.
	Title string `json:"title,omitempty"`
}

// CategoryLink attaches a category to a piece of content. No duplicate
// (ContentID, CategoryID, Type) triple may exist.
type CategoryLink struct {
	ID         int64       `json:"id"`
	ContentID  int64       `json:"content_id"`
	CategoryID int64       `json:"category_id"`
	Type       ContentType `json:"type"`
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Blog is the primary content entity. Display text lives in per-culture
// Translation rows; the blog row itself carries only the language-neutral
// term (URL slug), lifecycle flags, and ownership.
type Blog struct {
	ID         int64      `json:"id"`
	Term       string     `json:"term"`
	UserID     int64      `json:"user_id"`
	Tags       string     `json:"tags,omitempty"`
	IsEnabled  Flag       `json:"is_enabled"`
	IsApproved Flag       `json:"is_approved"`
	IsFeatured Featured   `json:"is_featured"`
	IsArchive  Flag       `json:"is_archive"`
	IsDraft    Flag       `json:"is_draft"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ArchiveAt  *time.Time `json:"archive_at,omitempty"`

	// Virtual fields populated by store methods.
	Translations []Translation `json:"translations,omitempty"`
	Author       *UserSummary  `json:"author,omitempty"`
	CategoryIDs  []int64       `json:"category_ids,omitempty"`

	// Projection of the culture-matched translation row on wide listings.
	Title            string `json:"title,omitempty"`
	ShortDescription string `json:"short_description,omitempty"`
	Description      string `json:"description,omitempty"`
}

// IsPublic reports whether the blog is visible to anonymous readers.
func (b *Blog) IsPublic() bool {
	return b.IsEnabled == Enabled && b.IsApproved == Enabled && b.IsArchive == Disabled
}

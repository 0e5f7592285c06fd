// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package query

import (
	"time"

	"polypress/internal/models"
)

// Table aliases shared by the composer and the store SQL:
//
//	e — the entity table (blogs, categories, ...)
//	t — the entity's per-culture translation table
//	u — the owning user
//
// Category filters run as EXISTS subqueries over category_contents so the
// outer query stays one row per entity and never needs DISTINCT.
//
// Compose appends predicate clauses for the joined row shape in this
// precedence: an explicit id wins over everything except culture, a slug or
// slug prefix wins over the advanced filters, and the advanced filters are
// ANDed together with every "All" sentinel skipped. The composer never
// errors; it only appends or skips clauses.
func Compose(b *Builder, p Params, now time.Time) {
	if p.ID > 0 {
		b.Add("e.id = ?", p.ID)
		culture(b, p)
		return
	}
	if p.Slug != "" {
		b.Add("e.term = ?", p.Slug)
		culture(b, p)
		return
	}
	if p.SlugPrefix != "" {
		b.Add("e.term LIKE ?", p.SlugPrefix+"%")
		culture(b, p)
		return
	}
	if !p.Advanced {
		return
	}

	culture(b, p)
	composeCategory(b, p)

	if p.Tag != "" {
		b.Add("e.tags ILIKE ?", "%"+p.Tag+"%")
	}

	ComposeStatus(b, p)

	if p.UserID > 0 {
		b.Add("e.user_id = ?", p.UserID)
	}
	if p.UserSlug != "" {
		b.Add("u.term = ?", p.UserSlug)
	}

	if from, to, ok := Window(p.DateFilter, now); ok {
		b.Add("e.created_at >= ?", from)
		b.Add("e.created_at < ?", to)
	}
	if p.ArchiveExpired {
		b.Add("e.archive_at IS NOT NULL")
		b.Add("e.archive_at <= ?", now)
	}

	if p.Term != "" {
		b.Add("(t.title ILIKE ? OR t.short_description ILIKE ? OR t.description ILIKE ? OR e.id::text = ?)",
			"%"+p.Term+"%", "%"+p.Term+"%", "%"+p.Term+"%", p.Term)
	}
}

// ComposeStatus appends the lifecycle flag clauses. The public shortcut
// overrides the three individual status filters with the fixed
// enabled-approved-not-archived condition; otherwise every filter left at
// its "All" sentinel is skipped. Exported separately because entities
// without translation tables (tags, users) reuse it with their own term
// search clauses.
func ComposeStatus(b *Builder, p Params) {
	if p.IsPublic {
		b.Add("e.is_enabled = ?", models.Enabled)
		b.Add("e.is_approved = ?", models.Enabled)
		b.Add("e.is_archive = ?", models.Disabled)
	} else {
		if p.IsEnabled != models.FlagAll {
			b.Add("e.is_enabled = ?", p.IsEnabled)
		}
		if p.IsApproved != models.FlagAll {
			b.Add("e.is_approved = ?", p.IsApproved)
		}
		if p.IsArchive != models.FlagAll {
			b.Add("e.is_archive = ?", p.IsArchive)
		}
	}
	if p.IsFeatured != models.FeaturedAll {
		b.Add("e.is_featured = ?", p.IsFeatured)
	}
}

// culture restricts the joined translation row when a culture is requested.
func culture(b *Builder, p Params) {
	if p.Culture != "" {
		b.Add("t.culture = ?", p.Culture)
	}
}

// composeCategory requires a matching category link, plus a category
// translation in the requested culture when filtering by name. A set of ids
// beats a single id; the name variant reaches through category_data.
func composeCategory(b *Builder, p Params) {
	if !p.HasCategoryFilter() {
		return
	}
	switch {
	case p.CategoryName != "" && p.Culture != "":
		b.Add(`EXISTS (SELECT 1 FROM category_contents cc
			JOIN category_data cd ON cd.category_id = cc.category_id
			WHERE cc.content_id = e.id AND cc.type = ? AND cd.title = ? AND cd.culture = ?)`,
			string(p.ContentType), p.CategoryName, p.Culture)
	case p.CategoryName != "":
		b.Add(`EXISTS (SELECT 1 FROM category_contents cc
			JOIN category_data cd ON cd.category_id = cc.category_id
			WHERE cc.content_id = e.id AND cc.type = ? AND cd.title = ?)`,
			string(p.ContentType), p.CategoryName)
	case len(p.CategoryIDs) > 0:
		b.Add(`EXISTS (SELECT 1 FROM category_contents cc
			WHERE cc.content_id = e.id AND cc.type = ? AND cc.category_id = ANY(?))`,
			string(p.ContentType), p.CategoryIDs)
	case p.CategoryID > 0:
		b.Add(`EXISTS (SELECT 1 FROM category_contents cc
			WHERE cc.content_id = e.id AND cc.type = ? AND cc.category_id = ?)`,
			string(p.ContentType), p.CategoryID)
	}
}

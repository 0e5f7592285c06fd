// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package query builds SQL predicates, ordering, and paging from a
// caller-constructed parameter object. Composition is purely declarative:
// invalid values never raise errors, they simply produce predicates that
// match nothing or are skipped.
package query

import "polypress/internal/models"

// DefaultPageSize bounds listings when the caller gives no page size.
const DefaultPageSize = 20

// DefaultCulture is the translation culture assumed when none is requested.
const DefaultCulture = "en"

// Params is the ephemeral filter/sort/paging descriptor for one query.
// It is never persisted.
type Params struct {
	// Identity filters. A positive ID wins over everything except culture;
	// a slug (or slug prefix, for collision probing) wins over the
	// advanced filters below.
	ID         int64
	Slug       string
	SlugPrefix string

	// Advanced filters, each independently skippable.
	Culture      string
	Term         string
	CategoryID   int64
	CategoryIDs  []int64
	CategoryName string
	Tag          string
	IsEnabled    models.Flag
	IsApproved   models.Flag
	IsArchive    models.Flag
	IsFeatured   models.Featured
	IsPublic     bool
	UserID       int64
	UserSlug     string
	DateFilter   models.DateFilter
	// ArchiveExpired restricts to archived rows whose archive timestamp
	// has passed, for the purge/restore maintenance flow.
	ArchiveExpired bool

	// ContentType scopes category-link joins and appears in cache keys.
	ContentType models.ContentType

	// Paging and ordering.
	PageNumber int
	PageSize   int
	LoadAll    bool
	Order      string

	// Execution options.
	Cached   bool
	Columns  models.ColumnSet
	Advanced bool
}

// NewParams returns a Params with the neutral defaults: English culture,
// first page, all status filters at their "All" sentinel, advanced
// filtering on.
func NewParams() Params {
	return Params{
		Culture:    DefaultCulture,
		IsEnabled:  models.FlagAll,
		IsApproved: models.FlagAll,
		IsArchive:  models.FlagAll,
		IsFeatured: models.FeaturedAll,
		PageNumber: 1,
		PageSize:   DefaultPageSize,
		Advanced:   true,
	}
}

// HasCategoryFilter reports whether any category restriction is present,
// which decides whether the executor joins the category link tables.
func (p Params) HasCategoryFilter() bool {
	return p.CategoryID > 0 || len(p.CategoryIDs) > 0 || p.CategoryName != ""
}

// ByIdentity reports whether the query targets a single row, which disables
// paging and widens the projection.
func (p Params) ByIdentity() bool {
	return p.ID > 0 || p.Slug != ""
}

// Limits returns the LIMIT/OFFSET pair for the query, or apply == false when
// paging is disabled (single-row fetch or load-all).
func (p Params) Limits() (limit, offset int, apply bool) {
	if p.ByIdentity() || p.LoadAll {
		return 0, 0, false
	}
	size := p.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	page := p.PageNumber
	if page <= 0 {
		page = 1
	}
	return size, (page - 1) * size, true
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the entities stored by the content engine and the
// closed enums used for filtering, batch actions, and report grouping.
package models

// Flag is a stored two-state lifecycle field. FlagAll is a filter-only
// sentinel: a query parameter set to FlagAll adds no predicate clause for
// that field. It is never written to the database.
type Flag int16

const (
	Disabled Flag = 0
	Enabled  Flag = 1
	FlagAll  Flag = 2
)

// Featured marks promoted content. FeaturedAll is the filter sentinel.
type Featured int16

const (
	FeaturedOff Featured = 0
	FeaturedOn  Featured = 1
	FeaturedAll Featured = 2
)

// ContentType discriminates category links, which can attach a category to
// any kind of content.
type ContentType string

const (
	ContentBlog ContentType = "blog"
	ContentUser ContentType = "user"
)

// DateFilter selects a relative date window computed against a single "now"
// reference taken once per query.
type DateFilter int

const (
	DateAll DateFilter = iota
	DateToday
	DateThisWeek
	DateThisMonth
	DatePrevMonth
	DatePrev3Months
	DatePrev6Months
	DatePrev12Months
	DateThisYear
	DatePrevYear
	DateLast24Hours
	DateLast48Hours
)

// GroupBy selects the bucketing mode for report aggregation.
// GroupNone falls back to monthly grouping.
type GroupBy int

const (
	GroupNone GroupBy = iota
	GroupHour
	GroupDay
	GroupMonth
	GroupYear
	GroupCategories
)

// ColumnSet gates how wide a projection the query executor returns.
// Summary keeps list endpoints cheap; List and Profile add the translation
// payload and owner summary.
type ColumnSet int

const (
	ColumnsSummary ColumnSet = iota
	ColumnsList
	ColumnsProfile
)

// Batch action names. Unknown action strings are no-ops.
const (
	ActionEnable          = "enable"
	ActionDisable         = "disable"
	ActionApprove         = "approve"
	ActionFeatured        = "featured"
	ActionNormal          = "normal"
	ActionRestore         = "restore"
	ActionDelete          = "delete"
	ActionPermanentDelete = "permanent_delete"
)

// BatchItem is one entry in a bulk lifecycle request.
type BatchItem struct {
	ID           int64  `json:"id"`
	ActionStatus string `json:"action_status"`
}

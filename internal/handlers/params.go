// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"polypress/internal/models"
	"polypress/internal/query"
)

const maxPageSize = 100

// listParams translates URL query values into query parameters. Unparseable
// values keep their defaults; paging is clamped so a caller can never pull
// the whole table through a list endpoint.
func listParams(r *http.Request) query.Params {
	p := query.NewParams()
	q := r.URL.Query()

	if v := q.Get("culture"); v != "" {
		p.Culture = v
	}
	if v := q.Get("q"); v != "" {
		p.Term = v
	}
	if v := q.Get("tag"); v != "" {
		p.Tag = v
	}
	if v := q.Get("category"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil && id > 0 {
			p.CategoryID = id
		} else {
			p.CategoryName = v
		}
	}
	if v := q.Get("featured"); v == "1" || v == "true" {
		p.IsFeatured = models.FeaturedOn
	}
	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.PageNumber = n
		}
	}
	if v := q.Get("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.PageSize = min(n, maxPageSize)
		}
	}
	if v := q.Get("order"); v != "" {
		p.Order = v
	}

	return p
}

// groupFrom maps the report grouping parameter, defaulting to monthly.
func groupFrom(r *http.Request) models.GroupBy {
	switch r.URL.Query().Get("group") {
	case "hour":
		return models.GroupHour
	case "day":
		return models.GroupDay
	case "month":
		return models.GroupMonth
	case "year":
		return models.GroupYear
	case "categories":
		return models.GroupCategories
	default:
		return models.GroupNone
	}
}

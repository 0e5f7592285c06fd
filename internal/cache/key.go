// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"fmt"
	"strings"

	"polypress/internal/models"
	"polypress/internal/query"
)

// Key builds the canonical cache key for a parameter set:
//
//	{prefix}_{pageNumber}{pageSize}{featured}{categoryIdOrType}[{order}][{categoryName}]
//
// The order and category-name segments are hyphenated, lower-cased, and
// appended only when present. Any process sharing the cache must build keys
// the same way, so the format is fixed.
func Key(prefix string, p query.Params) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s_%d%d%d", prefix, p.PageNumber, p.PageSize, p.IsFeatured)
	if p.CategoryID > 0 {
		fmt.Fprintf(&sb, "%d", p.CategoryID)
	} else {
		sb.WriteString(string(p.ContentType))
	}
	if p.Order != "" {
		sb.WriteString(hyphenate(p.Order))
	}
	if p.CategoryName != "" {
		sb.WriteString(hyphenate(p.CategoryName))
	}
	return sb.String()
}

// hyphenate lower-cases a key segment and joins its words with hyphens.
func hyphenate(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

// Cacheable reports whether Key can fully distinguish p. The key format is
// frozen for cross-process compatibility and omits the culture, term, tag,
// id-set, date-window, and owner filters, so two parameter sets differing
// only there collide under one key. Callers must not cache such listings:
// a hit would serve one filter's rows to the other.
func Cacheable(p query.Params) bool {
	return p.Culture == query.DefaultCulture &&
		p.Term == "" &&
		p.Tag == "" &&
		len(p.CategoryIDs) == 0 &&
		p.DateFilter == models.DateAll &&
		p.UserID == 0 &&
		p.UserSlug == "" &&
		!p.ArchiveExpired
}

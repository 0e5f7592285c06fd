// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package query

import "strings"

// orderColumns whitelists the sortable columns of the joined row shape.
// Order expressions arrive as caller-supplied strings, so anything outside
// this map is dropped rather than interpolated into SQL.
var orderColumns = map[string]string{
	"id":         "e.id",
	"term":       "e.term",
	"created_at": "e.created_at",
	"updated_at": "e.updated_at",
	"priority":   "e.priority",
	"title":      "t.title",
}

// Order parses a "column direction[, column direction]" expression against
// the whitelist and renders an ORDER BY clause. Unknown columns and
// directions are skipped; when nothing survives, the fallback expression
// (already trusted SQL) is used. A deterministic "e.id ASC" tiebreak is
// always appended so paging concatenation is stable.
func Order(expr, fallback string) string {
	var parts []string
	for _, piece := range strings.Split(expr, ",") {
		fields := strings.Fields(strings.ToLower(piece))
		if len(fields) == 0 {
			continue
		}
		col, ok := orderColumns[fields[0]]
		if !ok {
			continue
		}
		dir := "ASC"
		if len(fields) > 1 && fields[1] == "desc" {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
	}
	if len(parts) == 0 {
		parts = append(parts, fallback)
	}
	if !strings.Contains(strings.Join(parts, " "), "e.id") {
		parts = append(parts, "e.id ASC")
	}
	return "ORDER BY " + strings.Join(parts, ", ")
}

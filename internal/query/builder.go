// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package query

import (
	"fmt"
	"strings"
)

// Builder collects WHERE condition fragments and their arguments. Fragments
// use "?" placeholders which Where rewrites to PostgreSQL's positional
// $1..$n form, so conditions can be appended in any order without tracking
// argument indexes.
type Builder struct {
	conds []string
	args  []any
}

// Add appends one condition fragment and its arguments.
func (b *Builder) Add(cond string, args ...any) {
	b.conds = append(b.conds, cond)
	b.args = append(b.args, args...)
}

// Args returns the collected arguments in placeholder order.
func (b *Builder) Args() []any {
	return b.args
}

// NextArg returns the positional index the next appended argument would get.
// Used by callers that tack LIMIT/OFFSET onto the statement.
func (b *Builder) NextArg() int {
	return len(b.args) + 1
}

// Where renders the collected conditions as a WHERE clause, or returns the
// empty string when no condition was added.
func (b *Builder) Where() string {
	if len(b.conds) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("WHERE ")
	n := 0
	for i, cond := range b.conds {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		for _, r := range cond {
			if r == '?' {
				n++
				fmt.Fprintf(&sb, "$%d", n)
				continue
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

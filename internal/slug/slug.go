// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings,
// including best-effort collision-free slugs probed against a store.
package slug

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Make generates a slug truncated to at most maxLen bytes, without leaving
// a trailing hyphen. maxLen <= 0 means unlimited.
func Make(s string, maxLen int) string {
	result := Generate(s)
	if maxLen > 0 && len(result) > maxLen {
		result = strings.TrimRight(result[:maxLen], "-")
	}
	return result
}

// Counter probes existing slugs in a store. The entity stores implement it
// over their term column.
type Counter interface {
	// CountExact returns how many rows carry exactly this slug.
	CountExact(ctx context.Context, slug string) (int, error)
	// CountPrefix returns how many rows carry a slug starting with prefix.
	CountPrefix(ctx context.Context, prefix string) (int, error)
}

// Unique derives a slug from title and, when unique is requested, probes the
// store for collisions: an untaken base slug is returned as-is; otherwise a
// "-{n+1}" suffix derived from the prefix count forms a candidate that is
// re-checked. If the candidate is itself taken (a concurrent writer or an
// alias collision), a ten-digit fragment of the current tick count forces
// uniqueness.
//
// The check-then-insert sequence is not transactional: two concurrent
// callers can both pass the probe and insert the same slug. The unique
// index on the term column is the backstop.
func Unique(ctx context.Context, title string, maxLen int, unique bool, c Counter) (string, error) {
	base := Make(title, maxLen)
	if !unique || c == nil {
		return base, nil
	}

	n, err := c.CountExact(ctx, base)
	if err != nil {
		return "", fmt.Errorf("slug count: %w", err)
	}
	if n == 0 {
		return base, nil
	}

	taken, err := c.CountPrefix(ctx, base)
	if err != nil {
		return "", fmt.Errorf("slug prefix count: %w", err)
	}
	candidate := fmt.Sprintf("%s-%d", base, taken+1)

	n, err = c.CountExact(ctx, candidate)
	if err != nil {
		return "", fmt.Errorf("slug recheck: %w", err)
	}
	if n == 0 {
		return candidate, nil
	}

	return fmt.Sprintf("%s-%010d", base, time.Now().UnixNano()%1e10), nil
}

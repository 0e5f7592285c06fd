// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"polypress/internal/models"
)

// reconcileLinks makes the stored category links of one content row equal
// the wanted id set. Like translation sync, row failures are logged and
// skipped. The unique (content_id, category_id, type) index makes replays
// of the same insert harmless.
func reconcileLinks(ctx context.Context, db *sql.DB, contentID int64, ct models.ContentType, want []int64) {
	existing, err := linkedCategoryIDs(ctx, db, contentID, ct)
	if err != nil {
		slog.Warn("category link sync: list failed", "content", contentID, "type", ct, "error", err)
		return
	}

	current := make(map[int64]bool, len(existing))
	for _, id := range existing {
		current[id] = true
	}
	wanted := make(map[int64]bool, len(want))
	for _, id := range want {
		if id <= 0 {
			continue
		}
		wanted[id] = true
		if current[id] {
			continue
		}
		_, err := db.ExecContext(ctx, `
			INSERT INTO category_contents (content_id, category_id, type)
			VALUES ($1, $2, $3)
			ON CONFLICT (content_id, category_id, type) DO NOTHING
		`, contentID, id, ct)
		if err != nil {
			slog.Warn("category link insert failed", "content", contentID, "category", id, "error", err)
		}
	}

	var stale []int64
	for _, id := range existing {
		if !wanted[id] {
			stale = append(stale, id)
		}
	}
	if len(stale) > 0 {
		_, err := db.ExecContext(ctx, `
			DELETE FROM category_contents
			WHERE content_id = $1 AND type = $2 AND category_id = ANY($3)
		`, contentID, ct, stale)
		if err != nil {
			slog.Warn("category link delete failed", "content", contentID, "error", err)
		}
	}
}

// linkedCategoryIDs returns the category ids linked to one content row.
func linkedCategoryIDs(ctx context.Context, db *sql.DB, contentID int64, ct models.ContentType) ([]int64, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT category_id FROM category_contents
		WHERE content_id = $1 AND type = $2
		ORDER BY category_id
	`, contentID, ct)
	if err != nil {
		return nil, fmt.Errorf("list category links: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan category link: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

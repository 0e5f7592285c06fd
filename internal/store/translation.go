// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// translation.go reconciles the per-culture translation rows of one parent
// entity against a caller-submitted list. The diff is computed as a pure
// plan (insert/update/delete) and applied best-effort: a failing row write
// is logged and skipped so it never aborts the parent entity's own update.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"polypress/internal/models"
)

// translationTable names a translation table and its parent foreign key.
// The set is closed; table names never come from callers.
type translationTable struct {
	name string
	fk   string
}

var (
	blogData     = translationTable{name: "blog_data", fk: "blog_id"}
	categoryData = translationTable{name: "category_data", fk: "category_id"}
)

// syncPlan is the computed difference between stored and submitted rows.
type syncPlan struct {
	inserts []models.Translation
	updates []models.Translation // carry the stored row's ID
	deletes []int64
}

// planSync computes the reconciliation plan. With replace unset (create
// path) only rows for cultures not yet stored are inserted; duplicate
// cultures in the submitted list are ignored after the first. With replace
// set (update path) the plan makes the stored culture set exactly equal the
// submitted culture set: matching cultures are overwritten in place, extra
// stored cultures are deleted, and an empty submitted list retracts
// everything. Identity and culture of a stored row never change.
func planSync(existing, submitted []models.Translation, replace bool) syncPlan {
	var plan syncPlan

	current := make(map[string]models.Translation, len(existing))
	for _, row := range existing {
		current[row.Culture] = row
	}

	seen := make(map[string]bool, len(submitted))
	for _, row := range submitted {
		if row.Culture == "" || seen[row.Culture] {
			continue
		}
		seen[row.Culture] = true

		stored, ok := current[row.Culture]
		if !ok {
			plan.inserts = append(plan.inserts, row)
			continue
		}
		if replace {
			row.ID = stored.ID
			row.ParentID = stored.ParentID
			plan.updates = append(plan.updates, row)
		}
	}

	if replace {
		for _, row := range existing {
			if !seen[row.Culture] {
				plan.deletes = append(plan.deletes, row.ID)
			}
		}
	}

	return plan
}

// syncTranslations applies planSync against the given table. Row-level
// failures are swallowed after a warning; callers treat the parent write as
// the unit of success and may re-query to confirm translation state.
func syncTranslations(ctx context.Context, db *sql.DB, tt translationTable, parentID int64, submitted []models.Translation, replace bool) {
	existing, err := listTranslations(ctx, db, tt, parentID)
	if err != nil {
		slog.Warn("translation sync: list failed", "table", tt.name, "parent", parentID, "error", err)
		return
	}

	plan := planSync(existing, submitted, replace)

	for _, row := range plan.inserts {
		q := fmt.Sprintf(`
			INSERT INTO %s (%s, culture, title, sub_title, short_description, description, meta_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, tt.name, tt.fk)
		_, err := db.ExecContext(ctx, q, parentID, row.Culture,
			row.Title, row.SubTitle, row.ShortDescription, row.Description, row.MetaDescription)
		if err != nil {
			slog.Warn("translation insert failed", "table", tt.name, "parent", parentID, "culture", row.Culture, "error", err)
		}
	}

	for _, row := range plan.updates {
		q := fmt.Sprintf(`
			UPDATE %s
			SET title = $1, sub_title = $2, short_description = $3, description = $4, meta_description = $5
			WHERE id = $6
		`, tt.name)
		_, err := db.ExecContext(ctx, q,
			row.Title, row.SubTitle, row.ShortDescription, row.Description, row.MetaDescription, row.ID)
		if err != nil {
			slog.Warn("translation update failed", "table", tt.name, "parent", parentID, "culture", row.Culture, "error", err)
		}
	}

	if len(plan.deletes) > 0 {
		q := fmt.Sprintf(`DELETE FROM %s WHERE id = ANY($1)`, tt.name)
		if _, err := db.ExecContext(ctx, q, plan.deletes); err != nil {
			slog.Warn("translation delete failed", "table", tt.name, "parent", parentID, "error", err)
		}
	}
}

// listTranslations returns all stored translation rows for one parent,
// ordered by culture for deterministic output.
func listTranslations(ctx context.Context, db *sql.DB, tt translationTable, parentID int64) ([]models.Translation, error) {
	q := fmt.Sprintf(`
		SELECT id, %s, culture, title, sub_title, short_description, description, meta_description
		FROM %s
		WHERE %s = $1
		ORDER BY culture
	`, tt.fk, tt.name, tt.fk)

	rows, err := db.QueryContext(ctx, q, parentID)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	defer rows.Close()

	var items []models.Translation
	for rows.Next() {
		var tr models.Translation
		if err := rows.Scan(
			&tr.ID, &tr.ParentID, &tr.Culture,
			&tr.Title, &tr.SubTitle, &tr.ShortDescription, &tr.Description, &tr.MetaDescription,
		); err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		items = append(items, tr)
	}
	return items, rows.Err()
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"polypress/internal/models"
)

// actionTarget binds the batch action applier to one entity table. purge is
// the store's hard-delete, responsible for cascading into dependent rows.
// archiveAt marks tables that carry an archive expiry column.
type actionTarget struct {
	table     string
	archiveAt bool
	purge     func(ctx context.Context, id int64) error
}

// applyActions runs a batch of moderation actions item by item. Items with
// a non-positive id are skipped, unknown actions are no-ops, and a failing
// item is logged and does not stop the rest of the batch.
func applyActions(ctx context.Context, db *sql.DB, target actionTarget, items []models.BatchItem) {
	for _, item := range items {
		if item.ID <= 0 {
			continue
		}
		if err := applyAction(ctx, db, target, item); err != nil {
			slog.Warn("batch action failed",
				"table", target.table, "id", item.ID, "action", item.ActionStatus, "error", err)
		}
	}
}

func applyAction(ctx context.Context, db *sql.DB, target actionTarget, item models.BatchItem) error {
	switch strings.ToLower(item.ActionStatus) {
	case models.ActionEnable:
		return setFlag(ctx, db, target.table, "is_enabled", item.ID, models.Enabled)
	case models.ActionDisable:
		return setFlag(ctx, db, target.table, "is_enabled", item.ID, models.Disabled)
	case models.ActionApprove:
		return setFlag(ctx, db, target.table, "is_approved", item.ID, models.Enabled)
	case models.ActionFeatured:
		return setFlag(ctx, db, target.table, "is_featured", item.ID, models.Enabled)
	case models.ActionNormal:
		return setFlag(ctx, db, target.table, "is_featured", item.ID, models.Disabled)
	case models.ActionRestore:
		return restore(ctx, db, target, item.ID)
	case models.ActionDelete:
		return softOrPurge(ctx, db, target, item.ID)
	case models.ActionPermanentDelete:
		return target.purge(ctx, item.ID)
	default:
		return nil
	}
}

// setFlag flips one lifecycle column. Column names are fixed by the
// callers above, never caller input.
func setFlag(ctx context.Context, db *sql.DB, table, column string, id int64, value models.Flag) error {
	q := fmt.Sprintf(`UPDATE %s SET %s = $1, updated_at = NOW() WHERE id = $2`, table, column)
	if _, err := db.ExecContext(ctx, q, value, id); err != nil {
		return fmt.Errorf("set %s: %w", column, err)
	}
	return nil
}

// restore re-enables an archived row, lifting the soft delete and clearing
// its expiry.
func restore(ctx context.Context, db *sql.DB, target actionTarget, id int64) error {
	set := "is_enabled = $1, is_archive = $2, updated_at = NOW()"
	if target.archiveAt {
		set += ", archive_at = NULL"
	}
	q := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $3`, target.table, set)
	if _, err := db.ExecContext(ctx, q, models.Enabled, models.Disabled, id); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	return nil
}

// softOrPurge archives a live row; a row that is already archived is
// removed for good through the target's cascading purge.
func softOrPurge(ctx context.Context, db *sql.DB, target actionTarget, id int64) error {
	var archived models.Flag
	q := fmt.Sprintf(`SELECT is_archive FROM %s WHERE id = $1`, target.table)
	err := db.QueryRowContext(ctx, q, id).Scan(&archived)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load archive flag: %w", err)
	}

	if archived == models.Enabled {
		return target.purge(ctx, id)
	}

	set := "is_archive = $1, updated_at = NOW()"
	if target.archiveAt {
		set += ", archive_at = NOW()"
	}
	q = fmt.Sprintf(`UPDATE %s SET %s WHERE id = $2`, target.table, set)
	if _, err := db.ExecContext(ctx, q, models.Enabled, id); err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	return nil
}

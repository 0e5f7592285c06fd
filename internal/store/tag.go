// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"polypress/internal/models"
	"polypress/internal/query"
	"polypress/internal/slug"
)

const tagSlugMaxLen = 40

// TagStore reads and writes flat tags. Tags have no translation table, so
// their predicates reuse only the shared status composition plus their own
// identity and search clauses.
type TagStore struct {
	db *sql.DB
}

func NewTagStore(db *sql.DB) *TagStore {
	return &TagStore{db: db}
}

// List returns the tags matching p.
func (s *TagStore) List(ctx context.Context, p query.Params) ([]models.Tag, error) {
	var b query.Builder
	switch {
	case p.ID > 0:
		b.Add("e.id = ?", p.ID)
	case p.Slug != "":
		b.Add("e.term = ?", p.Slug)
	default:
		if p.ContentType != "" {
			b.Add("e.type = ?", string(p.ContentType))
		}
		if p.Term != "" {
			b.Add("(e.title ILIKE ? OR e.term ILIKE ?)", "%"+p.Term+"%", "%"+p.Term+"%")
		}
		query.ComposeStatus(&b, p)
	}

	q := fmt.Sprintf(`
		SELECT e.id, e.term, e.title, e.type,
			e.is_enabled, e.is_approved, e.is_featured, e.is_archive,
			e.created_at, e.updated_at
		FROM tags e
		%s
		%s
	`, b.Where(), query.Order(p.Order, "e.title ASC"))

	args := b.Args()
	if limit, offset, apply := p.Limits(); apply {
		q += fmt.Sprintf(" LIMIT $%d OFFSET $%d", b.NextArg(), b.NextArg()+1)
		args = append(args, limit, offset)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(
			&t.ID, &t.Term, &t.Title, &t.Type,
			&t.IsEnabled, &t.IsApproved, &t.IsFeatured, &t.IsArchive,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// Find returns one tag by the identity in p, or nil when no row matches.
func (s *TagStore) Find(ctx context.Context, p query.Params) (*models.Tag, error) {
	p.PageNumber = 1
	p.PageSize = 1
	tags, err := s.List(ctx, p)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, nil
	}
	return &tags[0], nil
}

// Create inserts a tag with a slug derived from its title.
func (s *TagStore) Create(ctx context.Context, t *models.Tag) error {
	source := t.Term
	if source == "" {
		source = t.Title
	}
	term, err := slug.Unique(ctx, source, tagSlugMaxLen, true, s)
	if err != nil {
		return fmt.Errorf("create tag: %w", err)
	}
	t.Term = term

	err = s.db.QueryRowContext(ctx, `
		INSERT INTO tags (term, title, type, is_enabled, is_approved, is_featured, is_archive)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, t.Term, t.Title, t.Type,
		t.IsEnabled, t.IsApproved, t.IsFeatured, t.IsArchive,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create tag: %w", err)
	}
	return nil
}

// ApplyActions processes a moderation batch against tags.
func (s *TagStore) ApplyActions(ctx context.Context, items []models.BatchItem) {
	applyActions(ctx, s.db, actionTarget{table: "tags", purge: s.purge}, items)
}

func (s *TagStore) purge(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id); err != nil {
		return fmt.Errorf("purge tag: %w", err)
	}
	return nil
}

// CountExact implements slug.Counter over the term column.
func (s *TagStore) CountExact(ctx context.Context, term string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tags WHERE term = $1`, term).Scan(&n)
	return n, err
}

// CountPrefix implements slug.Counter over the term column.
func (s *TagStore) CountPrefix(ctx context.Context, prefix string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tags WHERE term LIKE $1`, prefix+"%").Scan(&n)
	return n, err
}

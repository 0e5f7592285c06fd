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

const userSlugMaxLen = 40

// UserStore reads and writes authors. Users share the lifecycle flags of
// the other entities so admin listings and batch moderation work the same
// way, but they have no translation table.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// List returns the users matching p.
func (s *UserStore) List(ctx context.Context, p query.Params) ([]models.User, error) {
	var b query.Builder
	switch {
	case p.ID > 0:
		b.Add("e.id = ?", p.ID)
	case p.Slug != "":
		b.Add("e.term = ?", p.Slug)
	default:
		if p.Term != "" {
			b.Add("(e.display_name ILIKE ? OR e.email ILIKE ? OR e.term ILIKE ?)",
				"%"+p.Term+"%", "%"+p.Term+"%", "%"+p.Term+"%")
		}
		query.ComposeStatus(&b, p)
	}

	q := fmt.Sprintf(`
		SELECT e.id, e.term, e.email, e.password_hash, e.display_name, e.role,
			e.is_enabled, e.is_approved, e.is_featured, e.is_archive,
			e.created_at, e.updated_at, e.archive_at
		FROM users e
		%s
		%s
	`, b.Where(), query.Order(p.Order, "e.created_at DESC"))

	args := b.Args()
	if limit, offset, apply := p.Limits(); apply {
		q += fmt.Sprintf(" LIMIT $%d OFFSET $%d", b.NextArg(), b.NextArg()+1)
		args = append(args, limit, offset)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		var archiveAt sql.NullTime
		if err := rows.Scan(
			&u.ID, &u.Term, &u.Email, &u.PasswordHash, &u.DisplayName, &u.Role,
			&u.IsEnabled, &u.IsApproved, &u.IsFeatured, &u.IsArchive,
			&u.CreatedAt, &u.UpdatedAt, &archiveAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		if archiveAt.Valid {
			t := archiveAt.Time
			u.ArchiveAt = &t
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Find returns one user by the identity in p, or nil when no row matches.
func (s *UserStore) Find(ctx context.Context, p query.Params) (*models.User, error) {
	p.PageNumber = 1
	p.PageSize = 1
	users, err := s.List(ctx, p)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// FindByEmail returns one user by email, or nil when no row matches.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	var archiveAt sql.NullTime
	err := s.db.QueryRowContext(ctx, `
		SELECT id, term, email, password_hash, display_name, role,
			is_enabled, is_approved, is_featured, is_archive,
			created_at, updated_at, archive_at
		FROM users WHERE email = $1
	`, email).Scan(
		&u.ID, &u.Term, &u.Email, &u.PasswordHash, &u.DisplayName, &u.Role,
		&u.IsEnabled, &u.IsApproved, &u.IsFeatured, &u.IsArchive,
		&u.CreatedAt, &u.UpdatedAt, &archiveAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if archiveAt.Valid {
		t := archiveAt.Time
		u.ArchiveAt = &t
	}
	return &u, nil
}

// Create inserts a user with a profile slug derived from the display name.
// PasswordHash must already be hashed by the caller.
func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	source := u.Term
	if source == "" {
		source = u.DisplayName
	}
	term, err := slug.Unique(ctx, source, userSlugMaxLen, true, s)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	u.Term = term

	err = s.db.QueryRowContext(ctx, `
		INSERT INTO users (term, email, password_hash, display_name, role, is_enabled, is_approved, is_featured, is_archive)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, u.Term, u.Email, u.PasswordHash, u.DisplayName, u.Role,
		u.IsEnabled, u.IsApproved, u.IsFeatured, u.IsArchive,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// ApplyActions processes a moderation batch against users.
func (s *UserStore) ApplyActions(ctx context.Context, items []models.BatchItem) {
	applyActions(ctx, s.db, actionTarget{table: "users", archiveAt: true, purge: s.purge}, items)
}

// purge hard-deletes a user. Their blogs cascade away, so the blogs'
// category links are removed first.
func (s *UserStore) purge(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM category_contents
		WHERE type = $1 AND content_id IN (SELECT id FROM blogs WHERE user_id = $2)
	`, models.ContentBlog, id); err != nil {
		return fmt.Errorf("purge user blog links: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("purge user: %w", err)
	}
	return nil
}

// CountExact implements slug.Counter over the term column.
func (s *UserStore) CountExact(ctx context.Context, term string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE term = $1`, term).Scan(&n)
	return n, err
}

// CountPrefix implements slug.Counter over the term column.
func (s *UserStore) CountPrefix(ctx context.Context, prefix string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE term LIKE $1`, prefix+"%").Scan(&n)
	return n, err
}

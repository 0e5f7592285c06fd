// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store executes queries and writes against PostgreSQL, with an
// optional Valkey read-through cache on listings and counts. Each entity
// gets its own store; predicate composition, ordering, and paging live in
// the query package so all stores filter the same way.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"polypress/internal/cache"
	"polypress/internal/models"
	"polypress/internal/query"
	"polypress/internal/slug"
)

const blogSlugMaxLen = 60

// BlogStore reads and writes blogs with their translations and category
// links. The cache may be nil or disabled; every cached path degrades to a
// direct query.
type BlogStore struct {
	db    *sql.DB
	cache *cache.QueryCache
}

func NewBlogStore(db *sql.DB, qc *cache.QueryCache) *BlogStore {
	return &BlogStore{db: db, cache: qc}
}

const blogSummaryColumns = `
	e.id, e.term, e.user_id, e.tags,
	e.is_enabled, e.is_approved, e.is_featured, e.is_archive, e.is_draft,
	e.created_at, e.updated_at, e.archive_at`

const blogWideColumns = blogSummaryColumns + `,
	t.title, t.short_description, t.description,
	u.id, u.term, u.display_name`

// List returns the blogs matching p. When p.Cached is set and the cache is
// enabled, the result is served read-through under the canonical key for p.
func (s *BlogStore) List(ctx context.Context, p query.Params) ([]models.Blog, error) {
	p.ContentType = models.ContentBlog

	var key string
	if p.Cached && s.cache.Enabled() {
		key = cache.Key("blogs", p)
		var cached []models.Blog
		if s.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
	}

	blogs, err := s.list(ctx, p)
	if err != nil {
		return nil, err
	}

	if key != "" {
		s.cache.Set(ctx, key, blogs)
	}
	return blogs, nil
}

// Count returns how many blogs match p, ignoring paging.
func (s *BlogStore) Count(ctx context.Context, p query.Params) (int64, error) {
	p.ContentType = models.ContentBlog

	var key string
	if p.Cached && s.cache.Enabled() {
		key = cache.Key("blogs_count", p)
		var cached int64
		if s.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
	}

	var b query.Builder
	query.Compose(&b, p, time.Now())

	q := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM blogs e
		JOIN blog_data t ON t.blog_id = e.id
		LEFT JOIN users u ON u.id = e.user_id
		%s
	`, b.Where())

	var count int64
	if err := s.db.QueryRowContext(ctx, q, b.Args()...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count blogs: %w", err)
	}

	if key != "" {
		s.cache.Set(ctx, key, count)
	}
	return count, nil
}

// Find returns a single blog by the identity in p (id or slug) with its
// full translation set and category links attached, or nil when no row
// matches.
func (s *BlogStore) Find(ctx context.Context, p query.Params) (*models.Blog, error) {
	p.Columns = models.ColumnsProfile
	p.LoadAll = false
	p.PageNumber = 1
	p.PageSize = 1

	blogs, err := s.list(ctx, p)
	if err != nil {
		return nil, err
	}
	if len(blogs) == 0 {
		return nil, nil
	}
	blog := blogs[0]

	blog.Translations, err = listTranslations(ctx, s.db, blogData, blog.ID)
	if err != nil {
		return nil, err
	}
	blog.CategoryIDs, err = linkedCategoryIDs(ctx, s.db, blog.ID, models.ContentBlog)
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (s *BlogStore) list(ctx context.Context, p query.Params) ([]models.Blog, error) {
	var b query.Builder
	query.Compose(&b, p, time.Now())

	columns := blogSummaryColumns
	wide := p.Columns != models.ColumnsSummary || p.ByIdentity()
	if wide {
		columns = blogWideColumns
	}

	q := fmt.Sprintf(`
		SELECT %s
		FROM blogs e
		JOIN blog_data t ON t.blog_id = e.id
		LEFT JOIN users u ON u.id = e.user_id
		%s
		%s
	`, columns, b.Where(), query.Order(p.Order, "e.created_at DESC"))

	args := b.Args()
	if limit, offset, apply := p.Limits(); apply {
		q += fmt.Sprintf(" LIMIT $%d OFFSET $%d", b.NextArg(), b.NextArg()+1)
		args = append(args, limit, offset)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	var blogs []models.Blog
	for rows.Next() {
		var blog models.Blog
		var archiveAt sql.NullTime
		dest := []any{
			&blog.ID, &blog.Term, &blog.UserID, &blog.Tags,
			&blog.IsEnabled, &blog.IsApproved, &blog.IsFeatured, &blog.IsArchive, &blog.IsDraft,
			&blog.CreatedAt, &blog.UpdatedAt, &archiveAt,
		}
		var title, short, desc sql.NullString
		var authorID sql.NullInt64
		var authorTerm, authorName sql.NullString
		if wide {
			dest = append(dest, &title, &short, &desc, &authorID, &authorTerm, &authorName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		if archiveAt.Valid {
			t := archiveAt.Time
			blog.ArchiveAt = &t
		}
		if wide {
			blog.Title = title.String
			blog.ShortDescription = short.String
			blog.Description = desc.String
			if authorID.Valid {
				blog.Author = &models.UserSummary{
					ID:          authorID.Int64,
					Term:        authorTerm.String,
					DisplayName: authorName.String,
				}
			}
		}
		blogs = append(blogs, blog)
	}
	return blogs, rows.Err()
}

// Create inserts a blog with a slug derived from its first translation's
// title (or from Term when preset), syncs the translation rows, and links
// the wanted categories. The stored row is written back onto blog.
func (s *BlogStore) Create(ctx context.Context, blog *models.Blog) error {
	source := blog.Term
	if source == "" && len(blog.Translations) > 0 {
		source = blog.Translations[0].Title
	}
	term, err := slug.Unique(ctx, source, blogSlugMaxLen, true, s)
	if err != nil {
		return fmt.Errorf("create blog: %w", err)
	}
	blog.Term = term

	err = s.db.QueryRowContext(ctx, `
		INSERT INTO blogs (term, user_id, tags, is_enabled, is_approved, is_featured, is_archive, is_draft, archive_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, blog.Term, blog.UserID, blog.Tags,
		blog.IsEnabled, blog.IsApproved, blog.IsFeatured, blog.IsArchive, blog.IsDraft,
		blog.ArchiveAt,
	).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create blog: %w", err)
	}

	syncTranslations(ctx, s.db, blogData, blog.ID, blog.Translations, false)
	reconcileLinks(ctx, s.db, blog.ID, models.ContentBlog, blog.CategoryIDs)
	return nil
}

// Update rewrites a blog's own row, replaces its translation set with the
// submitted one, and reconciles its category links. Term never changes.
func (s *BlogStore) Update(ctx context.Context, blog *models.Blog) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE blogs
		SET user_id = $1, tags = $2,
			is_enabled = $3, is_approved = $4, is_featured = $5, is_archive = $6, is_draft = $7,
			archive_at = $8, updated_at = NOW()
		WHERE id = $9
	`, blog.UserID, blog.Tags,
		blog.IsEnabled, blog.IsApproved, blog.IsFeatured, blog.IsArchive, blog.IsDraft,
		blog.ArchiveAt, blog.ID)
	if err != nil {
		return fmt.Errorf("update blog: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update blog %d: %w", blog.ID, sql.ErrNoRows)
	}

	syncTranslations(ctx, s.db, blogData, blog.ID, blog.Translations, true)
	reconcileLinks(ctx, s.db, blog.ID, models.ContentBlog, blog.CategoryIDs)
	return nil
}

// ApplyActions processes a moderation batch against blogs.
func (s *BlogStore) ApplyActions(ctx context.Context, items []models.BatchItem) {
	applyActions(ctx, s.db, actionTarget{table: "blogs", archiveAt: true, purge: s.purge}, items)
}

// purge hard-deletes a blog with its translations and category links.
func (s *BlogStore) purge(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM blog_data WHERE blog_id = $1`, id); err != nil {
		return fmt.Errorf("purge blog data: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM category_contents WHERE content_id = $1 AND type = $2
	`, id, models.ContentBlog); err != nil {
		return fmt.Errorf("purge blog links: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("purge blog: %w", err)
	}
	return nil
}

// CountExact implements slug.Counter over the term column.
func (s *BlogStore) CountExact(ctx context.Context, term string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blogs WHERE term = $1`, term).Scan(&n)
	return n, err
}

// CountPrefix implements slug.Counter over the term column.
func (s *BlogStore) CountPrefix(ctx context.Context, prefix string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blogs WHERE term LIKE $1`, prefix+"%").Scan(&n)
	return n, err
}

// ListExpired returns archived blogs whose expiry timestamp has passed,
// for the restore-or-purge maintenance flow. Queried without the
// translation join so each blog appears once regardless of its cultures.
func (s *BlogStore) ListExpired(ctx context.Context, now time.Time) ([]models.Blog, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM blogs e
		WHERE e.is_archive = $1 AND e.archive_at IS NOT NULL AND e.archive_at <= $2
		ORDER BY e.archive_at ASC
	`, blogSummaryColumns)

	rows, err := s.db.QueryContext(ctx, q, models.Enabled, now)
	if err != nil {
		return nil, fmt.Errorf("list expired blogs: %w", err)
	}
	defer rows.Close()

	var blogs []models.Blog
	for rows.Next() {
		var blog models.Blog
		var archiveAt sql.NullTime
		if err := rows.Scan(
			&blog.ID, &blog.Term, &blog.UserID, &blog.Tags,
			&blog.IsEnabled, &blog.IsApproved, &blog.IsFeatured, &blog.IsArchive, &blog.IsDraft,
			&blog.CreatedAt, &blog.UpdatedAt, &archiveAt,
		); err != nil {
			return nil, fmt.Errorf("scan expired blog: %w", err)
		}
		if archiveAt.Valid {
			t := archiveAt.Time
			blog.ArchiveAt = &t
		}
		blogs = append(blogs, blog)
	}
	return blogs, rows.Err()
}

// Report aggregates matching blogs into buckets. Time groupings load the
// creation timestamps and bucket them in memory; the category grouping
// counts per linked category in SQL, labeled in the requested culture.
func (s *BlogStore) Report(ctx context.Context, p query.Params, group models.GroupBy, now time.Time) ([]ReportRow, error) {
	p.ContentType = models.ContentBlog

	if group == models.GroupCategories {
		return s.reportByCategory(ctx, p, now)
	}

	var b query.Builder
	query.Compose(&b, p, now)

	q := fmt.Sprintf(`
		SELECT e.created_at
		FROM blogs e
		JOIN blog_data t ON t.blog_id = e.id
		LEFT JOIN users u ON u.id = e.user_id
		%s
	`, b.Where())

	rows, err := s.db.QueryContext(ctx, q, b.Args()...)
	if err != nil {
		return nil, fmt.Errorf("report blogs: %w", err)
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var ts time.Time
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		times = append(times, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return GroupTimes(times, group), nil
}

func (s *BlogStore) reportByCategory(ctx context.Context, p query.Params, now time.Time) ([]ReportRow, error) {
	var b query.Builder
	query.Compose(&b, p, now)
	if p.Culture != "" {
		b.Add("cd.culture = ?", p.Culture)
	}

	q := fmt.Sprintf(`
		SELECT c.id, c.term, cd.title, COUNT(DISTINCT e.id)
		FROM blogs e
		JOIN blog_data t ON t.blog_id = e.id
		LEFT JOIN users u ON u.id = e.user_id
		JOIN category_contents link ON link.content_id = e.id AND link.type = 'blog'
		JOIN categories c ON c.id = link.category_id
		JOIN category_data cd ON cd.category_id = c.id
		%s
		GROUP BY c.id, c.term, cd.title
		ORDER BY cd.title ASC
	`, b.Where())

	rows, err := s.db.QueryContext(ctx, q, b.Args()...)
	if err != nil {
		return nil, fmt.Errorf("report blogs by category: %w", err)
	}
	defer rows.Close()

	var report []ReportRow
	for rows.Next() {
		var row ReportRow
		if err := rows.Scan(&row.CategoryID, &row.Term, &row.Label, &row.Count); err != nil {
			return nil, fmt.Errorf("scan category report row: %w", err)
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"polypress/internal/cache"
	"polypress/internal/models"
	"polypress/internal/query"
	"polypress/internal/slug"
)

const categorySlugMaxLen = 50

// CategoryStore reads and writes the category hierarchy.
type CategoryStore struct {
	db    *sql.DB
	cache *cache.QueryCache
}

func NewCategoryStore(db *sql.DB, qc *cache.QueryCache) *CategoryStore {
	return &CategoryStore{db: db, cache: qc}
}

// BuildTree nests a flat category list under parentID. Children are ordered
// by ascending priority, then id. Rows whose parent is absent from the input
// are dropped, so filtering before building prunes whole subtrees. Depth is
// filled relative to the requested root. Cycles are not detected.
func BuildTree(flat []models.Category, parentID int64) []models.Category {
	byParent := make(map[int64][]models.Category, len(flat))
	for _, c := range flat {
		byParent[c.ParentID] = append(byParent[c.ParentID], c)
	}
	for _, siblings := range byParent {
		sort.SliceStable(siblings, func(i, j int) bool {
			if siblings[i].Priority != siblings[j].Priority {
				return siblings[i].Priority < siblings[j].Priority
			}
			return siblings[i].ID < siblings[j].ID
		})
	}

	var build func(parent int64, depth int) []models.Category
	build = func(parent int64, depth int) []models.Category {
		var out []models.Category
		for _, c := range byParent[parent] {
			c.Depth = depth
			c.Children = build(c.ID, depth+1)
			out = append(out, c)
		}
		return out
	}
	return build(parentID, 0)
}

// FlatTree returns the tree in depth-first pre-order as a single list, the
// shape select widgets want. Depth is preserved for indentation.
func FlatTree(tree []models.Category) []models.Category {
	var out []models.Category
	var walk func(nodes []models.Category)
	walk = func(nodes []models.Category) {
		for _, c := range nodes {
			children := c.Children
			c.Children = nil
			out = append(out, c)
			walk(children)
		}
	}
	walk(tree)
	return out
}

const categoryColumns = `
	e.id, e.term, e.parent_id, e.priority, e.type,
	e.is_enabled, e.is_approved, e.is_featured, e.is_archive,
	e.created_at, e.updated_at`

// List returns the categories matching p as a flat list, each carrying its
// culture-matched title and, for wide projections, its linked content count.
func (s *CategoryStore) List(ctx context.Context, p query.Params) ([]models.Category, error) {
	var key string
	if p.Cached && s.cache.Enabled() {
		key = cache.Key("categories", p)
		var cached []models.Category
		if s.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
	}

	cats, err := s.list(ctx, p)
	if err != nil {
		return nil, err
	}

	if key != "" {
		s.cache.Set(ctx, key, cats)
	}
	return cats, nil
}

// Tree loads the categories matching p and nests them under parentID.
func (s *CategoryStore) Tree(ctx context.Context, p query.Params, parentID int64) ([]models.Category, error) {
	p.LoadAll = true
	flat, err := s.List(ctx, p)
	if err != nil {
		return nil, err
	}
	return BuildTree(flat, parentID), nil
}

func (s *CategoryStore) list(ctx context.Context, p query.Params) ([]models.Category, error) {
	var b query.Builder
	query.Compose(&b, p, time.Now())

	columns := categoryColumns + ", t.title"
	wide := p.Columns != models.ColumnsSummary || p.ByIdentity()
	if wide {
		columns += `, (SELECT COUNT(*) FROM category_contents link WHERE link.category_id = e.id) AS content_count`
	}

	q := fmt.Sprintf(`
		SELECT %s
		FROM categories e
		JOIN category_data t ON t.category_id = e.id
		%s
		%s
	`, columns, b.Where(), query.Order(p.Order, "e.priority ASC"))

	args := b.Args()
	if limit, offset, apply := p.Limits(); apply {
		q += fmt.Sprintf(" LIMIT $%d OFFSET $%d", b.NextArg(), b.NextArg()+1)
		args = append(args, limit, offset)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var cats []models.Category
	for rows.Next() {
		var c models.Category
		var title sql.NullString
		dest := []any{
			&c.ID, &c.Term, &c.ParentID, &c.Priority, &c.Type,
			&c.IsEnabled, &c.IsApproved, &c.IsFeatured, &c.IsArchive,
			&c.CreatedAt, &c.UpdatedAt, &title,
		}
		if wide {
			dest = append(dest, &c.ContentCount)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Title = title.String
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// Find returns a single category by the identity in p with its full
// translation set attached, or nil when no row matches.
func (s *CategoryStore) Find(ctx context.Context, p query.Params) (*models.Category, error) {
	p.Columns = models.ColumnsProfile
	p.LoadAll = false
	p.PageNumber = 1
	p.PageSize = 1

	cats, err := s.list(ctx, p)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, nil
	}
	c := cats[0]

	c.Translations, err = listTranslations(ctx, s.db, categoryData, c.ID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a category with a slug derived from its first translation's
// title and syncs the translation rows.
func (s *CategoryStore) Create(ctx context.Context, c *models.Category) error {
	source := c.Term
	if source == "" && len(c.Translations) > 0 {
		source = c.Translations[0].Title
	}
	term, err := slug.Unique(ctx, source, categorySlugMaxLen, true, s)
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	c.Term = term

	err = s.db.QueryRowContext(ctx, `
		INSERT INTO categories (term, parent_id, priority, type, is_enabled, is_approved, is_featured, is_archive)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, c.Term, c.ParentID, c.Priority, c.Type,
		c.IsEnabled, c.IsApproved, c.IsFeatured, c.IsArchive,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}

	syncTranslations(ctx, s.db, categoryData, c.ID, c.Translations, false)
	return nil
}

// Update rewrites a category's own row and replaces its translation set.
// A category cannot become its own parent.
func (s *CategoryStore) Update(ctx context.Context, c *models.Category) error {
	if c.ParentID == c.ID {
		return fmt.Errorf("update category %d: parent must differ", c.ID)
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE categories
		SET parent_id = $1, priority = $2, type = $3,
			is_enabled = $4, is_approved = $5, is_featured = $6, is_archive = $7,
			updated_at = NOW()
		WHERE id = $8
	`, c.ParentID, c.Priority, c.Type,
		c.IsEnabled, c.IsApproved, c.IsFeatured, c.IsArchive, c.ID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update category %d: %w", c.ID, sql.ErrNoRows)
	}

	syncTranslations(ctx, s.db, categoryData, c.ID, c.Translations, true)
	return nil
}

// ApplyActions processes a moderation batch against categories.
func (s *CategoryStore) ApplyActions(ctx context.Context, items []models.BatchItem) {
	applyActions(ctx, s.db, actionTarget{table: "categories", purge: s.purge}, items)
}

// purge hard-deletes a category with its translations and links. Children
// are re-rooted rather than deleted so a purge never cascades down the tree.
func (s *CategoryStore) purge(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE categories SET parent_id = 0 WHERE parent_id = $1`, id); err != nil {
		return fmt.Errorf("reroot children: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM category_data WHERE category_id = $1`, id); err != nil {
		return fmt.Errorf("purge category data: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM category_contents WHERE category_id = $1`, id); err != nil {
		return fmt.Errorf("purge category links: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("purge category: %w", err)
	}
	return nil
}

// CountExact implements slug.Counter over the term column.
func (s *CategoryStore) CountExact(ctx context.Context, term string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories WHERE term = $1`, term).Scan(&n)
	return n, err
}

// CountPrefix implements slug.Counter over the term column.
func (s *CategoryStore) CountPrefix(ctx context.Context, prefix string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories WHERE term LIKE $1`, prefix+"%").Scan(&n)
	return n, err
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Store tests split in two: pure logic (diff planning, tree building, time
// bucketing) runs everywhere; SQL paths are integration tests that skip
// when PostgreSQL is not reachable.
package store

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"polypress/internal/database"
	"polypress/internal/models"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "polypress")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "polypress")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

// testDB connects and migrates, or skips the test when no DB is reachable.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// testUser inserts a throwaway author and returns its id. The row and its
// dependents are removed on cleanup.
func testUser(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	ctx := context.Background()

	var id int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO users (term, email, password_hash, display_name, role)
		VALUES ($1, $2, 'x', 'Test Author', 'author')
		RETURNING id
	`, "test-author-"+t.Name(), t.Name()+"@test.local").Scan(&id)
	if err != nil {
		t.Fatalf("insert test user: %v", err)
	}
	t.Cleanup(func() {
		db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	})
	return id
}

// testBlog inserts a minimal blog row owned by userID.
func testBlog(t *testing.T, db *sql.DB, userID int64, term string) int64 {
	t.Helper()
	ctx := context.Background()

	var id int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO blogs (term, user_id, is_enabled, is_approved)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, term, userID, models.Enabled, models.Enabled).Scan(&id)
	if err != nil {
		t.Fatalf("insert test blog: %v", err)
	}
	t.Cleanup(func() {
		db.ExecContext(ctx, `DELETE FROM category_contents WHERE content_id = $1 AND type = 'blog'`, id)
		db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	})
	return id
}

// testCategory inserts a category row with an English title.
func testCategory(t *testing.T, db *sql.DB, term string, parentID int64) int64 {
	t.Helper()
	ctx := context.Background()

	var id int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO categories (term, parent_id) VALUES ($1, $2) RETURNING id
	`, term, parentID).Scan(&id)
	if err != nil {
		t.Fatalf("insert test category: %v", err)
	}
	if _, err := db.ExecContext(ctx, `
		INSERT INTO category_data (category_id, culture, title) VALUES ($1, 'en', $2)
	`, id, term); err != nil {
		t.Fatalf("insert test category data: %v", err)
	}
	t.Cleanup(func() {
		db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	})
	return id
}

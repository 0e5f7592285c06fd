// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: a default
// admin user and a pair of root categories with English translations.
// It is a no-op when users already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	// Hash the default admin password.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (term, email, password_hash, display_name, role, is_enabled, is_approved)
		VALUES ($1, $2, $3, $4, $5, 1, 1)
	`, "admin", "admin@polypress.local", string(hash), "Admin", "admin")
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	// Two root categories so list and tree endpoints have something to show.
	for i, seed := range []struct {
		term, title string
	}{
		{"news", "News"},
		{"guides", "Guides"},
	} {
		var id int64
		err := db.QueryRow(`
			INSERT INTO categories (term, parent_id, priority, type)
			VALUES ($1, 0, $2, 'blog')
			RETURNING id
		`, seed.term, i).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed insert category %s: %w", seed.term, err)
		}
		_, err = db.Exec(`
			INSERT INTO category_data (category_id, culture, title)
			VALUES ($1, 'en', $2)
		`, id, seed.title)
		if err != nil {
			return fmt.Errorf("seed insert category data %s: %w", seed.term, err)
		}
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@polypress.local",
		"password", "admin",
	)

	return nil
}

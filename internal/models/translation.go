// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Translation is one per-culture row owned by a parent entity (blog or
// category). At most one row exists per (parent id, culture) pair; the pair
// is immutable once created, only the text fields may change.
type Translation struct {
	ID               int64  `json:"id"`
	ParentID         int64  `json:"parent_id"`
	Culture          string `json:"culture"`
	Title            string `json:"title"`
	SubTitle         string `json:"sub_title,omitempty"`
	ShortDescription string `json:"short_description,omitempty"`
	Description      string `json:"description,omitempty"`
	MetaDescription  string `json:"meta_description,omitempty"`
}

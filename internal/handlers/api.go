// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers serves the JSON API. Public endpoints only ever see
// enabled, approved, non-archived content; the admin group exposes the full
// listings, writes, and the batch moderation endpoint.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"polypress/internal/cache"
	"polypress/internal/models"
	"polypress/internal/query"
	"polypress/internal/store"
)

// API groups the HTTP handlers over the entity stores.
type API struct {
	blogs      *store.BlogStore
	categories *store.CategoryStore
	tags       *store.TagStore
	users      *store.UserStore
}

func NewAPI(blogs *store.BlogStore, categories *store.CategoryStore, tags *store.TagStore, users *store.UserStore) *API {
	return &API{blogs: blogs, categories: categories, tags: tags, users: users}
}

// listResponse is the envelope for paged listings.
type listResponse struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ListBlogs serves the public blog listing: paged, cached, wide projection.
// Only listings the canonical cache key can distinguish are cached; a
// culture, search, or tag variant always goes to the database.
func (a *API) ListBlogs(w http.ResponseWriter, r *http.Request) {
	p := listParams(r)
	p.IsPublic = true
	p.Cached = cache.Cacheable(p)
	p.Columns = models.ColumnsList

	blogs, err := a.blogs.List(r.Context(), p)
	if err != nil {
		slog.Error("list blogs failed", "error", err)
		writeError(w, http.StatusInternalServerError, "listing unavailable")
		return
	}
	total, err := a.blogs.Count(r.Context(), p)
	if err != nil {
		slog.Error("count blogs failed", "error", err)
		writeError(w, http.StatusInternalServerError, "listing unavailable")
		return
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}
	writeJSON(w, http.StatusOK, listResponse{Items: blogs, Total: total, Page: p.PageNumber, Size: p.PageSize})
}

// GetBlog serves one public blog by slug with its full translation set.
func (a *API) GetBlog(w http.ResponseWriter, r *http.Request) {
	p := query.NewParams()
	p.Slug = chi.URLParam(r, "slug")
	if c := r.URL.Query().Get("culture"); c != "" {
		p.Culture = c
	}

	blog, err := a.blogs.Find(r.Context(), p)
	if err != nil {
		slog.Error("find blog failed", "slug", p.Slug, "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if blog == nil || !blog.IsPublic() {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, blog)
}

// CategoryTree serves the nested public category hierarchy.
func (a *API) CategoryTree(w http.ResponseWriter, r *http.Request) {
	p := listParams(r)
	p.IsPublic = true
	p.Cached = cache.Cacheable(p)

	var parentID int64
	if v := r.URL.Query().Get("parent"); v != "" {
		parentID, _ = strconv.ParseInt(v, 10, 64)
	}

	tree, err := a.categories.Tree(r.Context(), p, parentID)
	if err != nil {
		slog.Error("category tree failed", "error", err)
		writeError(w, http.StatusInternalServerError, "tree unavailable")
		return
	}
	if tree == nil {
		tree = []models.Category{}
	}
	writeJSON(w, http.StatusOK, tree)
}

// ListTags serves the public tag listing.
func (a *API) ListTags(w http.ResponseWriter, r *http.Request) {
	p := listParams(r)
	p.IsPublic = true
	p.ContentType = models.ContentBlog

	tags, err := a.tags.List(r.Context(), p)
	if err != nil {
		slog.Error("list tags failed", "error", err)
		writeError(w, http.StatusInternalServerError, "listing unavailable")
		return
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	writeJSON(w, http.StatusOK, tags)
}

// GetAuthor serves a public author profile by slug.
func (a *API) GetAuthor(w http.ResponseWriter, r *http.Request) {
	p := query.NewParams()
	p.Slug = chi.URLParam(r, "slug")

	user, err := a.users.Find(r.Context(), p)
	if err != nil {
		slog.Error("find author failed", "slug", p.Slug, "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if user == nil || user.IsEnabled != models.Enabled || user.IsArchive != models.Disabled {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, models.UserSummary{ID: user.ID, Term: user.Term, DisplayName: user.DisplayName})
}

// AdminListBlogs serves the unfiltered blog listing for the admin UI.
func (a *API) AdminListBlogs(w http.ResponseWriter, r *http.Request) {
	p := listParams(r)
	p.Columns = models.ColumnsList

	q := r.URL.Query()
	if v := q.Get("enabled"); v != "" {
		p.IsEnabled = flagFrom(v)
	}
	if v := q.Get("approved"); v != "" {
		p.IsApproved = flagFrom(v)
	}
	if v := q.Get("archived"); v != "" {
		p.IsArchive = flagFrom(v)
	}

	blogs, err := a.blogs.List(r.Context(), p)
	if err != nil {
		slog.Error("admin list blogs failed", "error", err)
		writeError(w, http.StatusInternalServerError, "listing unavailable")
		return
	}
	total, err := a.blogs.Count(r.Context(), p)
	if err != nil {
		slog.Error("admin count blogs failed", "error", err)
		writeError(w, http.StatusInternalServerError, "listing unavailable")
		return
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}
	writeJSON(w, http.StatusOK, listResponse{Items: blogs, Total: total, Page: p.PageNumber, Size: p.PageSize})
}

func flagFrom(v string) models.Flag {
	switch v {
	case "1", "true":
		return models.Enabled
	case "0", "false":
		return models.Disabled
	default:
		return models.FlagAll
	}
}

// CreateBlog inserts a blog from a JSON body carrying the entity with its
// translations and category ids.
func (a *API) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var blog models.Blog
	if err := json.NewDecoder(r.Body).Decode(&blog); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if len(blog.Translations) == 0 && blog.Term == "" {
		writeError(w, http.StatusUnprocessableEntity, "a title or term is required")
		return
	}
	if err := a.blogs.Create(r.Context(), &blog); err != nil {
		slog.Error("create blog failed", "error", err)
		writeError(w, http.StatusInternalServerError, "create failed")
		return
	}
	writeJSON(w, http.StatusCreated, blog)
}

// UpdateBlog rewrites a blog from a JSON body. The id comes from the URL.
func (a *API) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var blog models.Blog
	if err := json.NewDecoder(r.Body).Decode(&blog); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	blog.ID = id
	if err := a.blogs.Update(r.Context(), &blog); err != nil {
		slog.Error("update blog failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "update failed")
		return
	}
	writeJSON(w, http.StatusOK, blog)
}

// CreateCategory inserts a category from a JSON body.
func (a *API) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if len(c.Translations) == 0 && c.Term == "" {
		writeError(w, http.StatusUnprocessableEntity, "a title or term is required")
		return
	}
	if err := a.categories.Create(r.Context(), &c); err != nil {
		slog.Error("create category failed", "error", err)
		writeError(w, http.StatusInternalServerError, "create failed")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// UpdateCategory rewrites a category from a JSON body.
func (a *API) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var c models.Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	c.ID = id
	if err := a.categories.Update(r.Context(), &c); err != nil {
		slog.Error("update category failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "update failed")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// BatchActions applies a moderation batch to one entity kind. The body is a
// JSON array of {id, action_status} items; processing is best-effort, so
// the endpoint always answers 202 once the batch has been run.
func (a *API) BatchActions(w http.ResponseWriter, r *http.Request) {
	var items []models.BatchItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	switch chi.URLParam(r, "entity") {
	case "blogs":
		a.blogs.ApplyActions(r.Context(), items)
	case "categories":
		a.categories.ApplyActions(r.Context(), items)
	case "tags":
		a.tags.ApplyActions(r.Context(), items)
	case "users":
		a.users.ApplyActions(r.Context(), items)
	default:
		writeError(w, http.StatusNotFound, "unknown entity")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]int{"processed": len(items)})
}

// BlogReport serves aggregate counts of blogs bucketed by time or category.
func (a *API) BlogReport(w http.ResponseWriter, r *http.Request) {
	p := listParams(r)
	p.LoadAll = true

	rows, err := a.blogs.Report(r.Context(), p, groupFrom(r), time.Now())
	if err != nil {
		slog.Error("blog report failed", "error", err)
		writeError(w, http.StatusInternalServerError, "report unavailable")
		return
	}
	if rows == nil {
		rows = []store.ReportRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

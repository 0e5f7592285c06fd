// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router wires the HTTP routes into public and admin groups with
// the shared middleware stack.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"polypress/internal/handlers"
	"polypress/internal/middleware"
)

// New creates the configured Chi router.
func New(api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Public read endpoints.
		r.Get("/blogs", api.ListBlogs)
		r.Get("/blogs/{slug}", api.GetBlog)
		r.Get("/categories/tree", api.CategoryTree)
		r.Get("/tags", api.ListTags)
		r.Get("/authors/{slug}", api.GetAuthor)

		// Admin endpoints. Authentication sits in front of this group at
		// the proxy; the service itself is deployed on a private network.
		r.Route("/admin", func(r chi.Router) {
			r.Get("/blogs", api.AdminListBlogs)
			r.Post("/blogs", api.CreateBlog)
			r.Put("/blogs/{id}", api.UpdateBlog)
			r.Post("/categories", api.CreateCategory)
			r.Put("/categories/{id}", api.UpdateCategory)
			r.Post("/{entity}/actions", api.BatchActions)
			r.Get("/reports/blogs", api.BlogReport)
		})
	})

	return r
}

// healthHandler responds to health checks from load balancers and
// orchestrators.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

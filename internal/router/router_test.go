// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"polypress/internal/handlers"
)

func testRouter() http.Handler {
	// Nil stores are fine for routes that fail before touching them.
	return New(handlers.NewAPI(nil, nil, nil, nil))
}

func TestHealthEndpoint(t *testing.T) {
	rr := httptest.NewRecorder()
	testRouter().ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
	if rr.Body.String() != "OK" {
		t.Errorf("body: got %q", rr.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	rr := httptest.NewRecorder()
	testRouter().ServeHTTP(rr, httptest.NewRequest("GET", "/nope", nil))

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	rr := httptest.NewRecorder()
	testRouter().ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestBatchActionsRejectsBadInput(t *testing.T) {
	h := testRouter()

	// Malformed body.
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/api/admin/blogs/actions", strings.NewReader("{not json")))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad body status: got %d, want 400", rr.Code)
	}

	// Unknown entity.
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/api/admin/widgets/actions", strings.NewReader("[]")))
	if rr.Code != http.StatusNotFound {
		t.Errorf("unknown entity status: got %d, want 404", rr.Code)
	}
}

func TestCreateBlogRejectsEmptyPayload(t *testing.T) {
	rr := httptest.NewRecorder()
	testRouter().ServeHTTP(rr, httptest.NewRequest("POST", "/api/admin/blogs", strings.NewReader("{}")))

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("status: got %d, want 422", rr.Code)
	}
}

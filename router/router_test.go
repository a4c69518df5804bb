// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mirrorwell/archetype-api/router"
	"github.com/mirrorwell/archetype-api/session"
	"github.com/mirrorwell/archetype-api/store"
	"github.com/mirrorwell/archetype-api/testutil"
)

func testMux() http.Handler {
	return router.NewRouter(store.NewMemStore(), session.NewMemoryStore(time.Minute), testutil.GetTestConfig())
}

func TestHealthEndpoint(t *testing.T) {
	w := httptest.NewRecorder()
	testMux().ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("expected OK body, got %q", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	w := httptest.NewRecorder()
	testMux().ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()
	testMux().ServeHTTP(w, httptest.NewRequest("DELETE", "/quiz/submissions", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCatalogIsPublic(t *testing.T) {
	w := httptest.NewRecorder()
	testMux().ServeHTTP(w, httptest.NewRequest("GET", "/archetypes", nil))

	if w.Code != http.StatusOK {
		t.Errorf("catalog should not require a token, got %d", w.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	mux := testMux()

	for _, route := range []struct{ method, path string }{
		{"POST", "/quiz/submissions"},
		{"GET", "/profile"},
		{"POST", "/sessions"},
		{"GET", "/sessions/some-id"},
	} {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(route.method, route.path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401 without token, got %d", route.method, route.path, w.Code)
		}
	}
}

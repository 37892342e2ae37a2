package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resume-builder/internal/shared/config"
)

// Without DATABASE_URL the router falls back to in-memory repositories,
// which is enough to exercise route registration end to end.
func TestLookupRoutesArePublic(t *testing.T) {
	r := NewRouter(config.Config{Port: "8080"})

	req := httptest.NewRequest(http.MethodGet, "/user/nonexistent@x.com/education", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "User not found") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/resume/nonexistent@x.com", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404: %s", w.Code, w.Body.String())
	}
}

func TestOwnerRoutesRequireSession(t *testing.T) {
	r := NewRouter(config.Config{Port: "8080"})

	for _, path := range []string{"/show_resume", "/download_resume", "/logout"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: got status %d, want 401: %s", path, w.Code, w.Body.String())
		}
	}
}

package comments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/profile"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/server/middleware"
)

type stubResolver struct {
	identities map[string]middleware.Identity
}

func (s stubResolver) ResolveSession(ctx context.Context, token string) (middleware.Identity, error) {
	ident, ok := s.identities[token]
	if !ok {
		return middleware.Identity{}, errors.New("no session")
	}
	return ident, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *resumes.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resumeRepo := resumes.NewMemoryRepo(profile.NewMemoryRepo())
	svc := NewService(NewMemoryRepo(), resumeRepo)
	handler := NewHandler(svc, resumeRepo)

	resolver := stubResolver{identities: map[string]middleware.Identity{
		"reviewer-token": {UserID: "rev1", Email: "reviewer@eagles.oc.edu", Reviewer: true},
		"student-token":  {UserID: "stu1", Email: "student@eagles.oc.edu", Reviewer: false},
	}}

	r := gin.New()
	handler.RegisterRoutes(r.Group("/", middleware.Session(resolver)))
	return r, resumeRepo
}

func seedResume(t *testing.T, repo *resumes.MemoryRepo) resumes.Resume {
	t.Helper()
	res := resumes.Resume{ID: "r1", UserID: "stu1", FirstName: "Ada", LastName: "Lovelace", Email: "student@eagles.oc.edu"}
	if err := repo.CreateGeneration(context.Background(), resumes.Generation{Resume: res}); err != nil {
		t.Fatalf("seed resume: %v", err)
	}
	return res
}

func doRequest(r http.Handler, method, path, token string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNonReviewerForbidden(t *testing.T) {
	r, repo := newTestRouter(t)
	seedResume(t, repo)

	w := doRequest(r, http.MethodGet, "/reviewer/resumes", "student-token", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("got status %d, want 403", w.Code)
	}
	if !strings.Contains(w.Body.String(), "forbidden") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestMissingSessionUnauthorized(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doRequest(r, http.MethodGet, "/reviewer/resumes", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", w.Code)
	}
}

func TestCommentLifecycle(t *testing.T) {
	r, repo := newTestRouter(t)
	res := seedResume(t, repo)

	w := doRequest(r, http.MethodPost, "/resumes/"+res.ID+"/comments", "reviewer-token",
		url.Values{"comment": {"Tighten the summary section."}})
	if w.Code != http.StatusCreated {
		t.Fatalf("add: got status %d, want 201: %s", w.Code, w.Body.String())
	}
	var created Comment
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ReviewerID != "rev1" || created.ResumeID != res.ID {
		t.Fatalf("unexpected comment: %+v", created)
	}

	w = doRequest(r, http.MethodPut, "/comments/"+created.ID, "reviewer-token",
		url.Values{"comment": {"Summary looks good now."}})
	if w.Code != http.StatusOK {
		t.Fatalf("update: got status %d, want 200: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Summary looks good now.") {
		t.Fatalf("update not applied: %s", w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/reviewer/resumes", "reviewer-token", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard: got status %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Summary looks good now.") {
		t.Fatalf("dashboard missing comment: %s", w.Body.String())
	}

	w = doRequest(r, http.MethodDelete, "/comments/"+created.ID, "reviewer-token", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: got status %d, want 200", w.Code)
	}

	w = doRequest(r, http.MethodDelete, "/comments/"+created.ID, "reviewer-token", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: got status %d, want 404", w.Code)
	}
}

func TestAddCommentValidation(t *testing.T) {
	r, repo := newTestRouter(t)
	res := seedResume(t, repo)

	w := doRequest(r, http.MethodPost, "/resumes/"+res.ID+"/comments", "reviewer-token",
		url.Values{"comment": {"   "}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}

	w = doRequest(r, http.MethodPost, "/resumes/missing/comments", "reviewer-token",
		url.Values{"comment": {"hello"}})
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
}

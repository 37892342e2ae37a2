package resumes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/export"
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

type stubComments struct{}

func (stubComments) CommentsForResume(ctx context.Context, resumeID string) ([]CommentView, error) {
	return nil, nil
}

func newHandlerEnv(t *testing.T, llmReply func(string) (string, error), exporter export.Exporter) (*gin.Engine, *testEnv) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := newEnv(t, llmReply, exporter)
	resolver := stubResolver{identities: map[string]middleware.Identity{
		"token-u1": {UserID: "u1", Email: env.user.Email},
	}}

	r := gin.New()
	h := NewHandler(env.svc, stubComments{})
	h.RegisterPublic(r.Group("/"))
	h.RegisterAuthed(r.Group("/", middleware.Session(resolver)))
	return r, env
}

func generateForm() url.Values {
	return url.Values{
		"degree":                {"BS"},
		"institution":           {"OC"},
		"startDate":             {"2019"},
		"endDate":               {"2023"},
		"company_name":          {"Acme"},
		"role":                  {"Engineer"},
		"experience_start_date": {"2021"},
		"experience_end_date":   {"2024"},
		"description":           {"built internal tools"},
		"skills":                {"Go:expert"},
		"linkedUrl":             {"https://linkedin.com/in/ada"},
		"jobDescription":        {"backend engineer role"},
	}
}

func postGenerate(r http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generate_resume", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Session-Token", "token-u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authedGet(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("X-Session-Token", "token-u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateResumeEndpoint(t *testing.T) {
	r, _ := newHandlerEnv(t, func(prompt string) (string, error) {
		return "- Led X.\n- Built Y", nil
	}, export.Disabled{})

	w := postGenerate(r, generateForm())
	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, `"resumeId"`) {
		t.Fatalf("response missing resumeId: %s", body)
	}
	// The resume comes back nested, entity groups expanded.
	if !strings.Contains(body, `"degree":"BS"`) {
		t.Fatalf("response missing nested education: %s", body)
	}
	if !strings.Contains(body, `"description":"Led X.; Built Y."`) {
		t.Fatalf("response missing augmented experience: %s", body)
	}
}

func TestGenerateResumeRequiresSession(t *testing.T) {
	r, _ := newHandlerEnv(t, func(prompt string) (string, error) {
		return "- ok", nil
	}, export.Disabled{})

	req := httptest.NewRequest(http.MethodPost, "/generate_resume", strings.NewReader(generateForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", w.Code)
	}
}

func TestGenerateResumeUpstreamFailure(t *testing.T) {
	r, _ := newHandlerEnv(t, func(prompt string) (string, error) {
		return "", errors.New("provider down")
	}, export.Disabled{})

	w := postGenerate(r, generateForm())
	if w.Code != http.StatusBadGateway {
		t.Fatalf("got status %d, want 502: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "upstream_error") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestGenerateResumeValidation(t *testing.T) {
	r, _ := newHandlerEnv(t, func(prompt string) (string, error) {
		return "- ok", nil
	}, export.Disabled{})

	form := generateForm()
	form.Del("jobDescription")
	w := postGenerate(r, form)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestResumeByEmailEndpoint(t *testing.T) {
	r, _ := newHandlerEnv(t, func(prompt string) (string, error) {
		return "- ok", nil
	}, export.Disabled{})

	if w := authedGet(r, "/resume/ada@eagles.oc.edu"); w.Code != http.StatusNotFound {
		t.Fatalf("empty lookup: got status %d, want 404", w.Code)
	}

	postGenerate(r, generateForm())

	w := authedGet(r, "/resume/ada@eagles.oc.edu")
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "BS from OC (2019 to 2023)") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestDownloadResumeEndpoint(t *testing.T) {
	r, _ := newHandlerEnv(t, func(prompt string) (string, error) {
		return "- ok", nil
	}, fakeExporter{})

	if w := authedGet(r, "/download_resume"); w.Code != http.StatusNotFound {
		t.Fatalf("no resume yet: got status %d, want 404", w.Code)
	}

	postGenerate(r, generateForm())

	w := authedGet(r, "/download_resume")
	if w.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); !strings.HasPrefix(loc, "https://files.test/resumes/") {
		t.Fatalf("unexpected redirect: %q", loc)
	}
}

func TestShowResumeEndpoint(t *testing.T) {
	r, _ := newHandlerEnv(t, func(prompt string) (string, error) {
		return "- ok", nil
	}, export.Disabled{})

	w := authedGet(r, "/show_resume")
	if w.Code != http.StatusOK {
		t.Fatalf("empty show: got status %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"resumeId":null`) {
		t.Fatalf("unexpected empty body: %s", w.Body.String())
	}

	postGenerate(r, generateForm())

	w = authedGet(r, "/show_resume")
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"comments":[]`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestResumeByEmailIsPublic(t *testing.T) {
	r, _ := newHandlerEnv(t, func(prompt string) (string, error) {
		return "- ok", nil
	}, export.Disabled{})

	postGenerate(r, generateForm())

	// No session token on the request.
	req := httptest.NewRequest(http.MethodGet, "/resume/ada@eagles.oc.edu", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestEditResumeEndpoint(t *testing.T) {
	r, env := newHandlerEnv(t, func(prompt string) (string, error) {
		return "- Led X.\n- Built Y", nil
	}, export.Disabled{})

	if w := authedGet(r, "/edit_resume/missing"); w.Code != http.StatusNotFound {
		t.Fatalf("unknown id: got status %d, want 404", w.Code)
	}

	postGenerate(r, generateForm())
	res, err := env.repo.LatestByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("LatestByUser: %v", err)
	}

	w := authedGet(r, "/edit_resume/"+res.ID)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"institution":"OC"`) {
		t.Fatalf("response missing nested education: %s", w.Body.String())
	}
}

func TestUpdateGeneratedResumeEndpoint(t *testing.T) {
	r, env := newHandlerEnv(t, func(prompt string) (string, error) {
		return "- ok", nil
	}, export.Disabled{})

	postGenerate(r, generateForm())
	res, err := env.repo.LatestByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("LatestByUser: %v", err)
	}

	form := url.Values{
		"firstName": {"Ada"},
		"lastName":  {"King"},
		"email":     {"ada@eagles.oc.edu"},
		"phone":     {"555-0199"},
		"linkedUrl": {"https://linkedin.com/in/ada-king"},
		"skills":    {"Go:expert"},
	}
	req := httptest.NewRequest(http.MethodPost, "/update_generated_resume/"+res.ID, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Session-Token", "token-u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"lastName":"King"`) {
		t.Fatalf("update not reflected: %s", w.Body.String())
	}

	stored, err := env.repo.GetByID(context.Background(), res.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Phone != "555-0199" {
		t.Fatalf("row not updated: %+v", stored)
	}
}

func TestDeleteResumeEndpoint(t *testing.T) {
	r, env := newHandlerEnv(t, func(prompt string) (string, error) {
		return "- ok", nil
	}, export.Disabled{})

	postGenerate(r, generateForm())
	res, err := env.repo.LatestByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("LatestByUser: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/delete_resume/"+res.ID, nil)
	req.Header.Set("X-Session-Token", "token-u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}

	if _, err := env.repo.LatestByUser(context.Background(), "u1"); !errors.Is(err, ErrNotFound) {
		t.Fatal("resume still present after delete")
	}
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/dashboard/config"
	"github.com/ncobase/dashboard/consts"
	"github.com/ncobase/dashboard/ctxutil"
	"github.com/ncobase/dashboard/ecode"
	"github.com/ncobase/dashboard/graphql"
	"github.com/ncobase/dashboard/net/cookie"
	"github.com/ncobase/dashboard/net/resp"
	"github.com/ncobase/dashboard/service"
	"github.com/ncobase/dashboard/session"
	"github.com/ncobase/dashboard/structs"
	"github.com/ncobase/dashboard/web"
)

const cookieName = "dashboard_session"

type fakeRepo struct {
	mu        sync.Mutex
	lists     []structs.ListPostsParams
	deletes   []string
	cookies   []string
	deleteErr error
}

func (f *fakeRepo) List(ctx context.Context, params *structs.ListPostsParams, _ graphql.FetchPolicy) (*structs.PostList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, params.Clone())
	f.cookies = append(f.cookies, ctxutil.GetCookieHeader(ctx))
	page := 1
	if params.Page != nil {
		page = *params.Page
	}
	return &structs.PostList{
		Items:      []*structs.Post{{ID: "p1", Title: "First post", Author: structs.PostAuthor{Username: "ann"}, CreatedAt: "1700000000000", UpdatedAt: "1700000000000"}},
		TotalItems: 60,
		Page:       page,
	}, nil
}

func (f *fakeRepo) Delete(_ context.Context, params *structs.DeletePostParams) (*structs.DeletePostResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, params.PostID)
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &structs.DeletePostResult{ID: params.PostID}, nil
}

type testServer struct {
	engine *gin.Engine
	repo   *fakeRepo
	cookie *http.Cookie
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		BackendDomain:   "https://api.proza.dev",
		DashboardDomain: "https://admin.proza.dev",
	}
	repo := &fakeRepo{}
	svc := service.New(cfg, nil, repo)

	renderer, err := web.NewRenderer(web.NewFormatter(&config.Display{TimeLayout: config.DefaultTimeLayout, Location: time.UTC}))
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	sessions := session.NewManager(svc.NewPostListView, session.Options{TTL: time.Hour}, nil)
	t.Cleanup(sessions.Close)

	r := gin.New()
	r.HTMLRender = renderer
	r.Use(Trace())
	New(svc, nil, nil).RegisterRoutes(r, Session(sessions, cookie.SessionOptions{Name: cookieName, MaxAge: time.Hour}))

	return &testServer{engine: r, repo: repo}
}

func (s *testServer) do(t *testing.T, method, target string, form url.Values, extraCookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}
	for _, c := range extraCookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			s.cookie = c
		}
	}
	return rec
}

func (s *testServer) snapshot(t *testing.T) service.ViewSnapshot {
	t.Helper()
	rec := s.do(t, http.MethodGet, "/api/posts/view", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("view: status %d", rec.Code)
	}
	var snap service.ViewSnapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	return snap
}

func TestRootRedirects(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/", nil)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/posts" {
		t.Errorf("got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestLoginPage(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/login", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	for _, want := range []string{"Login with github", "Login with OIDC", "Test login as moderator"} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestLoginRedirects(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		path string
		want string
	}{
		{"/login/github", "https://api.proza.dev/auth/github?redirectTo=https://admin.proza.dev"},
		{"/login/oidc", "https://api.proza.dev/auth/oidc?redirectTo=https://admin.proza.dev"},
		{"/login/test?user=admin", "https://api.proza.dev/auth/test?redirectTo=https://admin.proza.dev&user=admin"},
	}
	for _, tt := range tests {
		rec := s.do(t, http.MethodGet, tt.path, nil)
		if rec.Code != http.StatusFound {
			t.Errorf("%s: status %d", tt.path, rec.Code)
		}
		if got := rec.Header().Get("Location"); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestLoginUnknownProvider(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/login/facebook", "/login/test?user=root"} {
		rec := s.do(t, http.MethodGet, path, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, rec.Code)
		}
	}
}

func TestPostsPageCreatesSession(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/posts", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if s.cookie == nil || s.cookie.Value == "" {
		t.Fatal("expected a session cookie")
	}
	body := rec.Body.String()
	if !strings.Contains(body, "First post") || !strings.Contains(body, "11/14/2023, 10:13:20 PM") {
		t.Errorf("unexpected body %s", body)
	}
	if rec.Header().Get(consts.TraceKey) == "" {
		t.Error("expected trace id header")
	}

	first := s.cookie.Value
	s.do(t, http.MethodGet, "/posts", nil)
	if s.cookie.Value != first {
		t.Error("session must be reused")
	}
}

func TestForwardsBrowserCookies(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/posts", nil)
	s.do(t, http.MethodGet, "/posts", nil, &http.Cookie{Name: "qid", Value: "backend-session"})

	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()
	got := s.repo.cookies[len(s.repo.cookies)-1]
	if got != "qid=backend-session" {
		t.Errorf("expected only the backend cookie to be forwarded, got %q", got)
	}
}

func TestChangePageAction(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/posts", nil)

	rec := s.do(t, http.MethodPost, "/posts/actions/page", url.Values{"page": {"1"}})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/posts" {
		t.Fatalf("got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	s.repo.mu.Lock()
	last := s.repo.lists[len(s.repo.lists)-1]
	s.repo.mu.Unlock()
	if last.Limit != 25 || last.Page == nil || *last.Page != 2 {
		t.Errorf("expected {limit:25, page:2}, got %+v", last)
	}
	if snap := s.snapshot(t); snap.PageIndex != 1 {
		t.Errorf("expected page index 1, got %d", snap.PageIndex)
	}

	if rec := s.do(t, http.MethodPost, "/posts/actions/page", url.Values{"page": {"-1"}}); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for negative page, got %d", rec.Code)
	}
}

func TestChangeRowsAction(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/posts", nil)

	if rec := s.do(t, http.MethodPost, "/posts/actions/rows", url.Values{"rows": {"50"}}); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if rec := s.do(t, http.MethodPost, "/posts/actions/rows", url.Values{"rows": {"10"}}); rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if snap := s.snapshot(t); snap.RowsPerPage != 10 || snap.PageIndex != 0 {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}

func TestMenuEditAndDeleteFlow(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/posts", nil)

	s.do(t, http.MethodPost, "/posts/actions/open-menu", url.Values{"post_id": {"p1"}, "anchor": {"post-p1"}})
	if snap := s.snapshot(t); !snap.MenuOpen || snap.SelectedPost != "p1" {
		t.Fatalf("menu not open: %+v", snap)
	}

	rec := s.do(t, http.MethodPost, "/posts/actions/edit", url.Values{})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/post/edit/p1" {
		t.Fatalf("edit: got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	if rec := s.do(t, http.MethodGet, "/post/edit/p1", nil); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "p1") {
		t.Errorf("edit page: %d", rec.Code)
	}

	s.do(t, http.MethodPost, "/posts/actions/open-menu", url.Values{"post_id": {"p1"}})
	s.do(t, http.MethodPost, "/posts/actions/delete", url.Values{})
	if snap := s.snapshot(t); snap.MenuOpen || !snap.DialogOpen {
		t.Fatalf("dialog not open: %+v", snap)
	}

	s.repo.mu.Lock()
	before := len(s.repo.lists)
	s.repo.mu.Unlock()

	s.do(t, http.MethodPost, "/posts/actions/confirm-delete", url.Values{})

	s.repo.mu.Lock()
	deletes := append([]string(nil), s.repo.deletes...)
	after := len(s.repo.lists)
	s.repo.mu.Unlock()
	if len(deletes) != 1 || deletes[0] != "p1" {
		t.Errorf("expected one delete of p1, got %v", deletes)
	}
	if after != before+1 {
		t.Errorf("expected one refetch, got %d", after-before)
	}
	if snap := s.snapshot(t); snap.DialogOpen || snap.SelectedPost != "" {
		t.Errorf("expected idle state, got %+v", snap)
	}
}

func TestCancelAndCloseActions(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/posts", nil)

	s.do(t, http.MethodPost, "/posts/actions/open-menu", url.Values{"post_id": {"p1"}})
	s.do(t, http.MethodPost, "/posts/actions/close-menu", url.Values{})
	if snap := s.snapshot(t); snap.MenuOpen || snap.SelectedPost != "" {
		t.Errorf("close-menu: %+v", snap)
	}

	s.do(t, http.MethodPost, "/posts/actions/open-menu", url.Values{"post_id": {"p1"}})
	s.do(t, http.MethodPost, "/posts/actions/delete", url.Values{})
	s.do(t, http.MethodPost, "/posts/actions/cancel-delete", url.Values{})
	if snap := s.snapshot(t); snap.DialogOpen || snap.SelectedPost != "" {
		t.Errorf("cancel-delete: %+v", snap)
	}
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()
	if len(s.repo.deletes) != 0 {
		t.Errorf("cancel must not delete, got %v", s.repo.deletes)
	}
}

func decodeException(t *testing.T, rec *httptest.ResponseRecorder) resp.Exception {
	t.Helper()
	var body resp.Exception
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body
}

func TestOpenMenuRequiresPostID(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodPost, "/posts/actions/open-menu", url.Values{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeException(t, rec); body.Code != ecode.ParamErr || body.Message != "post_id required" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestInvalidFormFieldsAreNamed(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		path string
		form url.Values
		want string
	}{
		{"/posts/actions/page", url.Values{"page": {"-1"}}, "page invalid"},
		{"/posts/actions/page", url.Values{}, "page required"},
		{"/posts/actions/page", url.Values{"page": {"abc"}}, "invalid"},
		{"/posts/actions/rows", url.Values{"rows": {"50"}}, "rows invalid"},
	}
	for _, tt := range tests {
		rec := s.do(t, http.MethodPost, tt.path, tt.form)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s %v: expected 400, got %d", tt.path, tt.form, rec.Code)
			continue
		}
		if body := decodeException(t, rec); body.Message != tt.want {
			t.Errorf("%s %v: expected %q, got %q", tt.path, tt.form, tt.want, body.Message)
		}
	}
}

func TestUnknownRouteAndMethod(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if body := decodeException(t, rec); body.Code != ecode.NothingFound {
		t.Errorf("unexpected body %+v", body)
	}

	rec = s.do(t, http.MethodGet, "/posts/actions/confirm-delete", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
	if body := decodeException(t, rec); body.Code != ecode.MethodNotAllowed {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestConfirmDeleteFailureRedirectsWithDialogOpen(t *testing.T) {
	s := newTestServer(t)
	s.repo.deleteErr = errors.New("backend down")
	s.do(t, http.MethodGet, "/posts", nil)
	s.do(t, http.MethodPost, "/posts/actions/open-menu", url.Values{"post_id": {"p1"}})
	s.do(t, http.MethodPost, "/posts/actions/delete", url.Values{})

	rec := s.do(t, http.MethodPost, "/posts/actions/confirm-delete", url.Values{})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/posts" {
		t.Fatalf("got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	if snap := s.snapshot(t); !snap.DialogOpen || snap.Mutating {
		t.Errorf("expected the dialog to stay open, got %+v", snap)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status %d", rec.Code)
	}
}

type degraded struct{}

func (degraded) Health(context.Context) map[string]any {
	return map[string]any{"status": "degraded"}
}

func TestHealthDegraded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(nil, degraded{}, nil).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Trace(), Recovery(nil))
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Error("panic value must not leak to the client")
	}
}

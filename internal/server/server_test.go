package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ncobase/dashboard/config"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Query string `json:"query"`
		}
		_ = json.Unmarshal(body, &req)
		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(req.Query, "listPosts") {
			_, _ = io.WriteString(w, `{"data":{"listPosts":{"items":[{"id":"p1","title":"Hello","author":{"username":"ann"},"createdAt":"1700000000000","updatedAt":"1700000000000"}],"totalItems":1,"page":1}}}`)
			return
		}
		_, _ = io.WriteString(w, `{"data":{"deletePost":{"id":"p1"}}}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(endpoint string) *config.Config {
	return &config.Config{
		AppName:         "dashboard",
		RunMode:         "test",
		Host:            "127.0.0.1",
		Port:            0,
		BackendDomain:   "https://api.proza.dev",
		DashboardDomain: "https://admin.proza.dev",
		GraphQL:         &config.GraphQL{Endpoint: endpoint, Timeout: 5 * time.Second},
		Display:         &config.Display{TimeLayout: config.DefaultTimeLayout, Location: time.UTC},
		Session:         &config.Session{CookieName: "sid", TTL: time.Hour},
		Data:            &config.Data{Cache: &config.Cache{TTL: time.Minute}},
	}
}

func TestServerServesPosts(t *testing.T) {
	backend := newBackend(t)
	s, cleanup, err := New(testConfig(backend.URL), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cleanup()

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Hello") {
		t.Errorf("expected the post title in the page")
	}

	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "sid" && c.MaxAge == int(time.Hour.Seconds()) {
			found = true
		}
	}
	if !found {
		t.Error("expected the configured session cookie")
	}
}

func TestServerHealth(t *testing.T) {
	s, cleanup, err := New(testConfig("http://127.0.0.1:1/graphql"), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cleanup()

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status %d", rec.Code)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s, cleanup, err := New(testConfig("http://127.0.0.1:1/graphql"), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

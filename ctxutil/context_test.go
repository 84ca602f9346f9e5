package ctxutil

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestEnsureTraceID(t *testing.T) {
	ctx, id := EnsureTraceID(context.Background())
	if id == "" {
		t.Fatalf("expected generated trace id")
	}
	if got := GetTraceID(ctx); got != id {
		t.Errorf("expected %q, got %q", id, got)
	}

	same, again := EnsureTraceID(ctx)
	if again != id || same != ctx {
		t.Errorf("expected existing trace id to be reused")
	}
}

func TestSessionAndCookie(t *testing.T) {
	ctx := SetSessionID(context.Background(), "abc")
	ctx = SetCookieHeader(ctx, "access_token=t")

	if got := GetSessionID(ctx); got != "abc" {
		t.Errorf("expected session abc, got %q", got)
	}
	if got := GetCookieHeader(ctx); got != "access_token=t" {
		t.Errorf("unexpected cookie header %q", got)
	}
	if got := GetSessionID(context.Background()); got != "" {
		t.Errorf("expected empty session id, got %q", got)
	}
}

func TestValuesMirroredIntoGinContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	ctx := WithGinContext(context.Background(), c)
	SetSessionID(ctx, "from-ctx")

	if v, ok := c.Get(sessionIDKey); !ok || v != "from-ctx" {
		t.Errorf("expected value mirrored into gin context, got %v", v)
	}

	got, ok := GetGinContext(ctx)
	if !ok || got != c {
		t.Errorf("expected embedded gin context")
	}
}

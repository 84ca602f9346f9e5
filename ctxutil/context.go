package ctxutil

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ncobase/dashboard/consts"
)

const (
	ginContextKey = consts.GinContextKey
	sessionIDKey  = consts.SessionKey
	cookieKey     = consts.CookieHeaderKey
	TraceIDKey    = "trace_id"
)

// FromGinContext extracts the context.Context from *gin.Context.
func FromGinContext(c *gin.Context) context.Context {
	return c.Request.Context()
}

// WithGinContext returns a context.Context that embeds the *gin.Context.
func WithGinContext(ctx context.Context, c *gin.Context) context.Context {
	return context.WithValue(ctx, ginContextKey, c)
}

// GetGinContext extracts *gin.Context from context.Context if it exists.
func GetGinContext(ctx context.Context) (*gin.Context, bool) {
	if c, ok := ctx.Value(ginContextKey).(*gin.Context); ok {
		return c, ok
	}
	return nil, false
}

// GetValue retrieves a value from the context.
func GetValue(ctx context.Context, key string) any {
	if c, ok := GetGinContext(ctx); ok {
		if val, exists := c.Get(key); exists {
			return val
		}
	}
	return ctx.Value(key)
}

// SetValue sets a value to the context.
func SetValue(ctx context.Context, key string, val any) context.Context {
	if c, ok := GetGinContext(ctx); ok {
		c.Set(key, val)
	}
	return context.WithValue(ctx, key, val)
}

// GetTraceID gets a trace ID from the context.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := GetValue(ctx, TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// SetTraceID sets a trace ID to the context.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return SetValue(ctx, TraceIDKey, traceID)
}

// EnsureTraceID ensures that a trace ID exists in the context.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if traceID := GetTraceID(ctx); traceID != "" {
		return ctx, traceID
	}
	traceID := uuid.NewString()
	return SetTraceID(ctx, traceID), traceID
}

// SetSessionID sets the dashboard session id to context.Context.
func SetSessionID(ctx context.Context, id string) context.Context {
	return SetValue(ctx, sessionIDKey, id)
}

// GetSessionID gets the dashboard session id from context.Context.
func GetSessionID(ctx context.Context) string {
	if id, ok := GetValue(ctx, sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// SetCookieHeader stores the browser's Cookie header so it can be forwarded upstream.
func SetCookieHeader(ctx context.Context, header string) context.Context {
	return SetValue(ctx, cookieKey, header)
}

// GetCookieHeader returns the forwarded Cookie header.
func GetCookieHeader(ctx context.Context) string {
	if h, ok := GetValue(ctx, cookieKey).(string); ok {
		return h
	}
	return ""
}

package handler

import (
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/ncobase/dashboard/consts"
	"github.com/ncobase/dashboard/ctxutil"
	"github.com/ncobase/dashboard/logging/logger"
	"github.com/ncobase/dashboard/net/cookie"
	"github.com/ncobase/dashboard/net/resp"
	"github.com/ncobase/dashboard/session"
	"github.com/sirupsen/logrus"
)

// sessionKey stores the *session.Session on the gin context
const sessionKey = "dashboard.session"

// Trace ensures every request carries a trace id and echoes it back.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if id := c.GetHeader(consts.TraceKey); id != "" {
			ctx = ctxutil.SetTraceID(ctx, id)
		}
		ctx, traceID := ctxutil.EnsureTraceID(ctx)
		c.Request = c.Request.WithContext(ctx)
		c.Header(consts.TraceKey, traceID)
		c.Next()
	}
}

// Session attaches the browser's session, creating it and setting the cookie
// when needed. The browser's other cookies are kept on the context so the
// GraphQL client can forward them.
func Session(m *session.Manager, opts cookie.SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := cookie.GetSessionID(c.Request, opts.Name)
		s, created := m.Get(id)
		if created {
			_ = cookie.SetSessionID(c.Writer, s.ID, opts)
		}

		ctx := ctxutil.SetSessionID(c.Request.Context(), s.ID)
		ctx = ctxutil.SetCookieHeader(ctx, cookie.ForwardHeader(c.Request, opts.Name))
		c.Request = c.Request.WithContext(ctx)
		c.Set(sessionKey, s)
		c.Next()
	}
}

// Logger logs one line per request.
func Logger(l *logger.Logger) gin.HandlerFunc {
	if l == nil {
		l = logger.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		l.EntryWithFields(c.Request.Context(), logrus.Fields{
			"method":   method,
			"path":     path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"ip":       c.ClientIP(),
		}).Info("HTTP request")
	}
}

// Recovery turns panics into 500 responses and reports them to Sentry.
func Recovery(l *logger.Logger) gin.HandlerFunc {
	if l == nil {
		l = logger.NewNop()
	}
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				ctx := c.Request.Context()
				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetTag("trace_id", ctxutil.GetTraceID(ctx))
				hub.Scope().SetRequest(c.Request)
				hub.RecoverWithContext(ctx, r)

				l.Errorf(ctx, "panic recovered: %v", r)
				resp.Fail(c.Writer, resp.InternalServer(http.StatusText(http.StatusInternalServerError)))
				c.Abort()
			}
		}()
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}

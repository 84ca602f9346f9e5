package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/dashboard/logging/logger"
	"github.com/ncobase/dashboard/net/resp"
	"github.com/ncobase/dashboard/service"
)

// HealthChecker reports the state of the data layer.
type HealthChecker interface {
	Health(ctx context.Context) map[string]any
}

// Handler serves the dashboard pages and actions.
type Handler struct {
	svc    *service.Service
	health HealthChecker
	logger *logger.Logger
}

// New creates a new handler.
func New(svc *service.Service, health HealthChecker, l *logger.Logger) *Handler {
	if l == nil {
		l = logger.NewNop()
	}
	return &Handler{svc: svc, health: health, logger: l}
}

// RegisterRoutes registers the public routes. Session-bound routes go under
// the given group, which is expected to run the Session middleware.
func (h *Handler) RegisterRoutes(r *gin.Engine, withSession ...gin.HandlerFunc) {
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		resp.Fail(c.Writer, resp.NotFound(""))
	})
	r.NoMethod(func(c *gin.Context) {
		resp.Fail(c.Writer, resp.NotAllowed(""))
	})

	r.GET("/health", h.Health)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/posts")
	})
	r.GET("/login", h.LoginPage)
	r.GET("/login/:provider", h.Login)

	s := r.Group("", withSession...)
	s.GET("/posts", h.PostsPage)
	s.GET("/api/posts/view", h.PostsView)
	s.GET("/post/edit/:id", h.EditPage)

	actions := s.Group("/posts/actions")
	actions.POST("/page", h.ChangePage)
	actions.POST("/rows", h.ChangeRowsPerPage)
	actions.POST("/open-menu", h.OpenMenu)
	actions.POST("/close-menu", h.CloseMenu)
	actions.POST("/edit", h.EditPost)
	actions.POST("/delete", h.OpenDeleteDialog)
	actions.POST("/cancel-delete", h.CancelDelete)
	actions.POST("/confirm-delete", h.ConfirmDelete)
}

// Health reports service health.
func (h *Handler) Health(c *gin.Context) {
	if h.health == nil {
		resp.Success(c.Writer, map[string]string{"status": "healthy"})
		return
	}
	report := h.health.Health(c.Request.Context())
	if report["status"] != "healthy" {
		resp.Fail(c.Writer, resp.ServiceUnavailable("service degraded", report))
		return
	}
	resp.Success(c.Writer, report)
}

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/dashboard/config"
	"github.com/ncobase/dashboard/data"
	"github.com/ncobase/dashboard/data/repository"
	"github.com/ncobase/dashboard/handler"
	"github.com/ncobase/dashboard/logging/logger"
	"github.com/ncobase/dashboard/net/cookie"
	"github.com/ncobase/dashboard/service"
	"github.com/ncobase/dashboard/session"
	"github.com/ncobase/dashboard/web"
)

// shutdownTimeout bounds graceful shutdown
const shutdownTimeout = 30 * time.Second

// Server wires the dashboard together and serves it over HTTP.
type Server struct {
	config   *config.Config
	logger   *logger.Logger
	data     *data.Data
	sessions *session.Manager
	engine   *gin.Engine
	server   *http.Server
}

// New builds the data layer, the services and the router.
// The returned cleanup releases everything New acquired.
func New(cfg *config.Config, l *logger.Logger, opts ...data.Option) (*Server, func(), error) {
	if l == nil {
		l = logger.NewNop()
	}

	d, cleanupData, err := data.New(cfg, l, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init data layer: %w", err)
	}

	svc := service.New(cfg, l, repository.NewPostRepository(d, l))

	sopts := session.Options{
		OnEvict: func(ctx context.Context, id string) {
			if err := d.Cache.Evict(ctx, id, repository.ListPostsOp.Field, nil); err != nil {
				l.Warnf(ctx, "evict query cache of session %s: %v", id, err)
			}
		},
	}
	cookieOpts := cookie.SessionOptions{Name: "dashboard_session"}
	if cfg.Session != nil {
		sopts.TTL = cfg.Session.TTL
		sopts.SweepInterval = cfg.Session.SweepInterval
		cookieOpts.Name = cfg.Session.CookieName
		cookieOpts.MaxAge = cfg.Session.TTL
		cookieOpts.Secure = cfg.Session.Secure
	}
	sessions := session.NewManager(svc.NewPostListView, sopts, l)

	engine, err := newEngine(cfg, l)
	if err != nil {
		sessions.Close()
		cleanupData()
		return nil, nil, err
	}
	handler.New(svc, d, l).RegisterRoutes(engine, handler.Session(sessions, cookieOpts))

	s := &Server{
		config:   cfg,
		logger:   l,
		data:     d,
		sessions: sessions,
		engine:   engine,
	}
	cleanup := func() {
		sessions.Close()
		cleanupData()
	}
	return s, cleanup, nil
}

func newEngine(cfg *config.Config, l *logger.Logger) (*gin.Engine, error) {
	if cfg.RunMode != "" {
		gin.SetMode(cfg.RunMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	renderer, err := web.NewRenderer(web.NewFormatter(cfg.Display))
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	engine := gin.New()
	engine.HTMLRender = renderer
	engine.Use(handler.Trace(), handler.Recovery(l), handler.Logger(l))
	return engine, nil
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.Addr(),
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof(context.Background(), "Starting server on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info(context.Background(), "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.logger.Errorf(context.Background(), "Server forced to shutdown: %v", err)
		return err
	}

	s.logger.Info(context.Background(), "Server exited")
	return nil
}

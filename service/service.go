// Package service contains the dashboard's view logic: login URLs and the
// per-session posts list state machine.
package service

import (
	"github.com/ncobase/dashboard/config"
	"github.com/ncobase/dashboard/data/repository"
	"github.com/ncobase/dashboard/logging/logger"
)

// Service groups the dashboard services.
type Service struct {
	Login  *LoginService
	posts  repository.PostRepositoryInterface
	logger *logger.Logger
}

// New creates the services.
func New(cfg *config.Config, l *logger.Logger, posts repository.PostRepositoryInterface) *Service {
	return &Service{
		Login:  NewLoginService(cfg),
		posts:  posts,
		logger: l,
	}
}

// NewPostListView creates a fresh posts list for a new session.
func (s *Service) NewPostListView() *PostListView {
	return NewPostListView(s.posts, s.logger)
}

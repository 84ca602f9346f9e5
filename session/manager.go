package session

import (
	"context"
	"sync"
	"time"

	"github.com/ncobase/dashboard/logging/logger"
	"github.com/ncobase/dashboard/nanoid"
	"github.com/ncobase/dashboard/service"
)

// Session is one browser session and its posts list.
type Session struct {
	ID        string
	View      *service.PostListView
	createdAt time.Time
	lastSeen  time.Time
}

// Options configures a Manager
type Options struct {
	TTL           time.Duration                        // Idle time after which a session is dropped
	SweepInterval time.Duration                        // Interval of the cleanup routine, zero disables it
	OnEvict       func(ctx context.Context, id string) // Callback when a session is dropped
}

// Manager keeps the sessions in memory.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	newView  func() *service.PostListView
	opts     Options
	logger   *logger.Logger
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewManager creates a Manager; newView builds the view of each new session.
func NewManager(newView func() *service.PostListView, opts Options, l *logger.Logger) *Manager {
	if l == nil {
		l = logger.NewNop()
	}
	m := &Manager{
		sessions: make(map[string]*Session),
		newView:  newView,
		opts:     opts,
		logger:   l,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	if opts.SweepInterval > 0 && opts.TTL > 0 {
		go m.startCleanup(opts.SweepInterval)
	}
	return m
}

// Get returns the session for id, creating a new one when id is unknown,
// malformed or expired. The bool reports whether a session was created.
func (m *Manager) Get(id string) (*Session, bool) {
	now := m.now()

	m.mu.Lock()
	if s, ok := m.sessions[id]; ok && !m.expired(s, now) {
		s.lastSeen = now
		m.mu.Unlock()
		return s, false
	}
	m.mu.Unlock()

	s := &Session{
		ID:        nanoid.SessionID(),
		View:      m.newView(),
		createdAt: now,
		lastSeen:  now,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, true
}

// Delete drops the session.
func (m *Manager) Delete(ctx context.Context, id string) {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok && m.opts.OnEvict != nil {
		m.opts.OnEvict(ctx, id)
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return m.opts.TTL > 0 && now.Sub(s.lastSeen) >= m.opts.TTL
}

// Sweep drops idle sessions and returns how many were dropped.
func (m *Manager) Sweep(ctx context.Context) int {
	now := m.now()

	m.mu.Lock()
	var evicted []string
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			evicted = append(evicted, id)
		}
	}
	m.mu.Unlock()

	if m.opts.OnEvict != nil {
		for _, id := range evicted {
			m.opts.OnEvict(ctx, id)
		}
	}
	if len(evicted) > 0 {
		m.logger.Debugf(ctx, "evicted %d idle sessions", len(evicted))
	}
	return len(evicted)
}

func (m *Manager) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.Sweep(context.Background())
		case <-m.stop:
			return
		}
	}
}

// Close stops the cleanup routine.
func (m *Manager) Close() {
	m.stopOnce.Do(func() { close(m.stop) })
}

package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc-dev/url-shortener-ui/internal/metrics"
	"github.com/avc-dev/url-shortener-ui/internal/usecase"
	"go.uber.org/zap"
)

// ErrClosed возвращается при обращении к закрытому реестру
var ErrClosed = errors.New("session registry is closed")

const minSweepInterval = time.Second

// Factory создает новую сессию для идентификатора
type Factory func(id string) *usecase.Session

type slot struct {
	session  *usecase.Session
	lastSeen time.Time
}

// Registry хранит сессии пользователей и закрывает неактивные
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*slot
	factory  Factory
	idle     time.Duration
	now      func() time.Time
	logger   *zap.Logger
	closed   bool
}

// NewRegistry создает реестр, закрывающий сессии после idle без обращений
func NewRegistry(factory Factory, idle time.Duration, logger *zap.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*slot),
		factory:  factory,
		idle:     idle,
		now:      time.Now,
		logger:   logger,
	}
}

// Get возвращает сессию по идентификатору, создавая и открывая её при первом обращении
func (r *Registry) Get(id string) (*usecase.Session, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrClosed
	}

	if s, ok := r.sessions[id]; ok {
		s.lastSeen = r.now()
		r.mu.Unlock()
		return s.session, nil
	}

	s := &slot{session: r.factory(id), lastSeen: r.now()}
	r.sessions[id] = s
	metrics.ActiveSessions.Inc()
	r.mu.Unlock()

	r.logger.Info("session opened", zap.String("session_id", id))
	s.session.Open()

	return s.session, nil
}

// EvictIdle закрывает сессии, к которым не обращались дольше idle. Возвращает их количество
func (r *Registry) EvictIdle() int {
	r.mu.Lock()
	deadline := r.now().Add(-r.idle)
	var expired []*usecase.Session
	for id, s := range r.sessions {
		if s.lastSeen.Before(deadline) {
			expired = append(expired, s.session)
			delete(r.sessions, id)
			metrics.ActiveSessions.Dec()
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		r.logger.Info("closing idle session", zap.String("session_id", s.ID()))
		s.Close()
	}
	return len(expired)
}

// Run периодически закрывает неактивные сессии, пока не отменён ctx, затем закрывает все
func (r *Registry) Run(ctx context.Context) error {
	interval := r.idle / 4
	if interval < minSweepInterval {
		interval = minSweepInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.CloseAll()
			return nil
		case <-ticker.C:
			if n := r.EvictIdle(); n > 0 {
				r.logger.Debug("idle sessions evicted", zap.Int("count", n))
			}
		}
	}
}

// CloseAll закрывает все сессии. Новые сессии после этого не создаются
func (r *Registry) CloseAll() {
	r.mu.Lock()
	r.closed = true
	sessions := r.sessions
	r.sessions = make(map[string]*slot)
	r.mu.Unlock()

	for _, s := range sessions {
		s.session.Close()
		metrics.ActiveSessions.Dec()
	}
	if len(sessions) > 0 {
		r.logger.Info("all sessions closed", zap.Int("count", len(sessions)))
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/renomarket/scoping-engine/pkg/apperrors"
	"github.com/renomarket/scoping-engine/pkg/models"
)

// SessionService manages the in-memory session registry. Sessions are
// ephemeral by design: persistence is the UI collaborator's concern.
type SessionService interface {
	// Create creates and starts a new session.
	Create() (*Session, error)

	// Get returns the session with the given id.
	Get(id uuid.UUID) (*Session, error)

	// Delete removes a session from the registry.
	Delete(id uuid.UUID) error

	// Sweep removes sessions idle for longer than maxIdle and returns how
	// many were removed.
	Sweep(maxIdle time.Duration) int

	// Count returns the number of live sessions.
	Count() int
}

type sessionService struct {
	graph  *models.Graph
	dict   *models.Dictionary
	logger *zap.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewSessionService creates a session registry over the loaded content.
func NewSessionService(graph *models.Graph, dict *models.Dictionary, logger *zap.Logger) SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &sessionService{
		graph:    graph,
		dict:     dict,
		logger:   logger,
		sessions: make(map[uuid.UUID]*Session),
	}
}

func (s *sessionService) Create() (*Session, error) {
	sess := NewSession(s.graph, s.dict, s.logger)
	if err := sess.Start(); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	s.mu.Lock()
	s.sessions[sess.ID()] = sess
	s.mu.Unlock()

	s.logger.Info("Session created", zap.String("session_id", sess.ID().String()))
	return sess, nil
}

func (s *sessionService) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return sess, nil
}

func (s *sessionService) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return apperrors.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *sessionService) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.UpdatedAt().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Info("Swept idle sessions", zap.Int("removed", removed))
	}
	return removed
}

func (s *sessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

package session

import (
	"sync"
	"time"

	"monplanting/models"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Store keeps login sessions in memory. Sessions end after ttl of inactivity.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	ttl      time.Duration
	now      func() time.Time

	cron *cron.Cron
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*models.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create opens a session for an authenticated account
func (s *Store) Create(account *models.Account) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess := &models.Session{
		ID:         uuid.New().String(),
		AccountID:  account.ID,
		Username:   account.Username,
		Email:      account.Email,
		ExpiresAt:  now.Add(s.ttl),
		CreatedAt:  now,
		LastUsedAt: now,
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns a live session, or nil when it is unknown or expired
func (s *Store) Get(sessionID string) *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok || s.now().After(sess.ExpiresAt) {
		return nil
	}
	copied := *sess
	return &copied
}

// Touch extends a live session by the store TTL
func (s *Store) Touch(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	now := s.now()
	if now.After(sess.ExpiresAt) {
		return
	}
	sess.LastUsedAt = now
	sess.ExpiresAt = now.Add(s.ttl)
}

func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
}

// CleanupExpired drops expired sessions and returns how many were removed
func (s *Store) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartCleanup runs CleanupExpired on a cron schedule such as "@hourly".
func (s *Store) StartCleanup(schedule string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if n := s.CleanupExpired(); n > 0 {
			logger.Info("expired sessions removed", zap.Int("count", n))
		}
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cron = c
	s.mu.Unlock()

	c.Start()
	logger.Info("session cleanup scheduled", zap.String("schedule", schedule))
	return nil
}

// StopCleanup stops the cleanup job and waits for a running pass to finish
func (s *Store) StopCleanup() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
}

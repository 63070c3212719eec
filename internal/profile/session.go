package profile

import (
	"github.com/charmbracelet/log"
)

// Saver is the slice of the store the session needs, split out so tests
// can inject failures.
type Saver interface {
	Save(username, passwordHash string, balance int) error
}

// Session mirrors an authenticated record in memory for the duration of
// a play session. Every round-ending operation persists through it, so
// the balance on disk always matches the balance in memory.
type Session struct {
	Username     string
	PasswordHash string
	Balance      int

	store  Saver
	logger *log.Logger
}

// NewSession creates a session for a loaded or freshly created record.
func NewSession(rec *Record, store Saver, logger *log.Logger) *Session {
	return &Session{
		Username:     rec.Username,
		PasswordHash: rec.PasswordHash,
		Balance:      rec.Balance,
		store:        store,
		logger:       logger,
	}
}

// Apply adjusts the balance by delta. The caller persists afterwards.
func (s *Session) Apply(delta int) {
	s.Balance += delta
}

// Persist writes the session state through the store. A failed save is
// retried once; if the retry also fails the error is returned so the
// operator can be told, rather than losing the update silently.
func (s *Session) Persist() error {
	err := s.store.Save(s.Username, s.PasswordHash, s.Balance)
	if err == nil {
		return nil
	}

	s.logger.Warn("profile save failed, retrying", "username", s.Username, "err", err)
	if err := s.store.Save(s.Username, s.PasswordHash, s.Balance); err != nil {
		s.logger.Error("profile save failed after retry", "username", s.Username, "err", err)
		return err
	}
	return nil
}

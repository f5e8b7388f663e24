package store

import "sync"

// sessionRepository keeps the unlocked session material in memory only. The
// encryption key derived from the master password must never be written to
// disk; locking or logging out wipes it.
type sessionRepository struct {
	mu            sync.RWMutex
	encryptionKey []byte
	token         string
}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{}
}

func (s *sessionRepository) EncryptionKey() ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.encryptionKey) == 0 {
		return nil, false
	}
	key := make([]byte, len(s.encryptionKey))
	copy(key, s.encryptionKey)
	return key, true
}

func (s *sessionRepository) SetEncryptionKey(key []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.encryptionKey = make([]byte, len(key))
	copy(s.encryptionKey, key)
}

func (s *sessionRepository) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, s.token != ""
}

func (s *sessionRepository) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

func (s *sessionRepository) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.encryptionKey {
		s.encryptionKey[i] = 0
	}
	s.encryptionKey = nil
	s.token = ""
}

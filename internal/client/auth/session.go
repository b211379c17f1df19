package auth

import (
	"strings"
	"sync"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
)

// Session is the process-wide current identity. The zero value is signed out.
type Session struct {
	mu      sync.RWMutex
	current *models.Identity
}

// NewSession starts signed in as id, or signed out when id is nil.
func NewSession(id *models.Identity) *Session {
	return &Session{current: id.Clone()}
}

// Current returns a copy of the signed-in identity, or nil.
func (s *Session) Current() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

func (s *Session) SignIn(id models.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &id
}

func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// IsAdmin reports whether id is the administrator. Emails compare case-insensitively.
func IsAdmin(id *models.Identity, adminEmail string) bool {
	if id == nil || adminEmail == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(id.Email), strings.TrimSpace(adminEmail))
}

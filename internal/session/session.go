// ABOUTME: Per-conversation state: the cart, the remembered name and a session id
// ABOUTME: Lives for the process lifetime; the name can be forgotten without a restart

package session

import (
	"github.com/google/uuid"
	"github.com/mauromedda/grocer-go/internal/cart"
)

// Session is the mutable state of one conversation.
type Session struct {
	ID   string
	Cart *cart.Cart

	name      string
	nameGiven bool
}

// New creates a session with an empty cart and no name.
func New() *Session {
	return &Session{
		ID:   uuid.NewString(),
		Cart: cart.New(),
	}
}

// Name returns the remembered name and whether one is set.
func (s *Session) Name() (string, bool) {
	return s.name, s.nameGiven
}

// Remember stores a confirmed name.
func (s *Session) Remember(name string) {
	s.name = name
	s.nameGiven = true
}

// Forget drops the remembered name. The last value is kept so a later
// greeting can still address the user the way it did before.
func (s *Session) Forget() {
	s.nameGiven = false
}

// DisplayName returns the remembered name or "guest".
func (s *Session) DisplayName() string {
	if s.nameGiven {
		return s.name
	}
	return "guest"
}

// Package session holds the client-side signed-in state: a flag plus the
// signed-in email. A single Session is created by the app shell and handed
// to every flow; there are no package-level singletons.
package session

import "sync"

type Session struct {
	mu       sync.Mutex
	loggedIn bool
	email    string
}

func New() *Session {
	return &Session{}
}

// SignIn records a successful authentication for email.
func (s *Session) SignIn(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = true
	s.email = email
}

// SignOut resets the session to the signed-out state.
func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = false
	s.email = ""
}

func (s *Session) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

// Email returns the signed-in email, or "" when signed out.
func (s *Session) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email
}

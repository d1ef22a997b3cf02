// Package session holds the process-wide bearer token. The browser app this
// replaces kept the token in localStorage and relied on storage events to
// keep multiple tabs consistent; here a single mutation point plus a
// broadcast channel gives every subscribed surface the same view.
package session

import "sync"

// State is the current session. An empty token means unauthenticated.
type State struct {
	Token string
	Email string
}

func (s State) Authenticated() bool {
	return s.Token != ""
}

type Store struct {
	mu    sync.Mutex
	state State
	subs  map[int]chan State
	next  int
}

func NewStore() *Store {
	return &Store{subs: make(map[int]chan State)}
}

// Set installs a token after successful login.
func (s *Store) Set(token, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{Token: token, Email: email}
	s.broadcastLocked()
}

// Clear drops the session. Any component may call this on an auth rejection;
// clearing an already-empty store is a no-op, so concurrent observers of the
// same 401 don't stampede subscribers.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Authenticated() {
		return
	}
	s.state = State{}
	s.broadcastLocked()
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

func (s *Store) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Email
}

func (s *Store) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers an observer of session changes. The returned cancel
// func must be called when the surface goes away. The channel is buffered;
// a slow subscriber loses intermediate states, never the latest one relative
// to a fresh Current() read.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	ch := make(chan State, 4)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

func (s *Store) broadcastLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- s.state:
		default:
		}
	}
}

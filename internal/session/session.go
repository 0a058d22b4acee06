// Package session keeps per-visitor storefront state: the cart and the
// checkout in progress. Each session handles one event at a time.
package session

import (
	"sync"
	"time"

	"sialkot-shop/internal/cart"
	"sialkot-shop/internal/checkout"
)

// State is the mutable state owned by one session
type State struct {
	Cart     *cart.Cart
	Checkout *checkout.Session
}

// Session serializes every mutation of its State
type Session struct {
	ID string

	mu       sync.Mutex
	state    State
	lastSeen time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:       id,
		state:    State{Cart: cart.New()},
		lastSeen: now,
	}
}

// Do runs fn with exclusive access to the session state. fn must not block
// on I/O; long operations run outside and apply their result with a second Do.
func (s *Session) Do(fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

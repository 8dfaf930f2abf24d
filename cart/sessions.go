package cart

import (
	"sync"
	"time"
)

// Sessions maps browser session ids to their carts. It is the process-wide
// registry the HTTP layer resolves carts through; tests construct their own
// isolated instances instead of sharing ambient state.
type Sessions struct {
	mu    sync.RWMutex
	carts map[string]*sessionEntry
	ttl   time.Duration
}

type sessionEntry struct {
	cart     *Cart
	lastSeen time.Time
}

// NewSessions builds a registry whose carts expire after ttl of inactivity.
func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		carts: make(map[string]*sessionEntry),
		ttl:   ttl,
	}
}

// Get returns the session's cart bound to the given store, creating it on
// first use. An existing cart is rebound (and cleared if the store differs).
func (s *Sessions) Get(sessionID, storeID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[sessionID]
	if !ok {
		entry = &sessionEntry{cart: New(storeID)}
		s.carts[sessionID] = entry
	}
	entry.lastSeen = time.Now()
	entry.cart.SetStoreID(storeID)
	return entry.cart
}

// Drop removes a session's cart outright (used after checkout hand-off when
// the session will not continue shopping).
func (s *Sessions) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Sweep evicts carts idle past the ttl and reports how many were removed.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-s.ttl)
	removed := 0
	for id, entry := range s.carts {
		if entry.lastSeen.Before(cutoff) {
			delete(s.carts, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live session carts.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}

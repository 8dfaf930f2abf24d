package shell

import "sync"

// FetchGuard discards stale async fetch results. A fetch started for
// product A that resolves after the user has navigated to product B must
// not overwrite B's view; results are accepted only when the requested id
// is still the current one. The request itself is not cancelled, only its
// result ignored on arrival.
type FetchGuard struct {
	mu      sync.Mutex
	current string
}

// Begin marks id as the in-flight interest and returns an accept func that
// reports whether the completed fetch is still wanted.
func (g *FetchGuard) Begin(id string) (accept func() bool) {
	g.mu.Lock()
	g.current = id
	g.mu.Unlock()
	return func() bool {
		g.mu.Lock()
		defer g.mu.Unlock()
		return g.current == id
	}
}

// Reset clears the in-flight interest (navigating away from any detail view).
func (g *FetchGuard) Reset() {
	g.mu.Lock()
	g.current = ""
	g.mu.Unlock()
}

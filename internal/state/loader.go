// ABOUTME: Generation-guarded load cycle shared by all state holders.
// ABOUTME: Responses from superseded cycles are discarded, never applied.
package state

import "sync"

// loader holds one entity's state across load cycles. Every cycle takes a
// generation token; a cycle that finishes after a newer one has started
// may not write its result. This closes the stale-response race when the
// signed-in user changes mid-flight.
type loader[T any] struct {
	mu      sync.Mutex
	gen     uint64
	data    T
	loaded  bool
	loading bool
}

// begin starts a new load cycle and returns its generation token.
func (l *loader[T]) begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	l.loading = true
	return l.gen
}

// finish applies data for the given cycle. It reports false, leaving
// state untouched, when a newer cycle has started since.
func (l *loader[T]) finish(gen uint64, data T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return false
	}
	l.data = data
	l.loaded = true
	l.loading = false
	return true
}

// fail ends the cycle without touching data, keeping the last-known value.
func (l *loader[T]) fail(gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return false
	}
	l.loading = false
	return true
}

// get returns the current value and whether any cycle has completed.
func (l *loader[T]) get() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.data, l.loaded
}

// isLoading reports whether a cycle is in flight.
func (l *loader[T]) isLoading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}
